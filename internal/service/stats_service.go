package service

import (
	"context"
	"time"

	"invoicing-be/internal/dto"
	"invoicing-be/internal/repository/unitofwork"

	"github.com/patrickmn/go-cache"
)

const statsCacheKey = "invoice_stats"

type IStatsService interface {
	GetStats(ctx context.Context) (dto.StatsResponse, error)
	// Invalidate drops the cached snapshot. Called by the event consumer
	// after any invoice mutation.
	Invalidate()
}

type statsService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *cache.Cache
}

func NewStatsService(uowFactory unitofwork.RepositoryFactory, ttl time.Duration) IStatsService {
	return &statsService{
		uowFactory: uowFactory,
		cache:      cache.New(ttl, 2*ttl),
	}
}

func (s *statsService) GetStats(ctx context.Context) (dto.StatsResponse, error) {
	if cached, found := s.cache.Get(statsCacheKey); found {
		if stats, ok := cached.(dto.StatsResponse); ok {
			return stats, nil
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rows, err := uow.InvoiceRepository().StatsByStatus(ctx)
	if err != nil {
		return nil, err
	}

	// Statuses with zero rows are simply absent from the mapping.
	stats := make(dto.StatsResponse, len(rows))
	for _, row := range rows {
		stats[string(row.Status)] = dto.StatsEntry{
			Count:       row.Count,
			TotalAmount: row.TotalAmount.InexactFloat64(),
		}
	}

	s.cache.Set(statsCacheKey, stats, cache.DefaultExpiration)
	return stats, nil
}

func (s *statsService) Invalidate() {
	s.cache.Delete(statsCacheKey)
}
