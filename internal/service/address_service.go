package service

import (
	"context"

	"invoicing-be/internal/dto"
	"invoicing-be/internal/entity"
	"invoicing-be/internal/pkg/logger"
	"invoicing-be/internal/repository/unitofwork"

	"github.com/samber/lo"
)

type IAddressService interface {
	Cleanup(ctx context.Context) (*dto.CleanupAddressesResponse, error)
}

type addressService struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewAddressService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IAddressService {
	return &addressService{
		uowFactory: uowFactory,
		log:        log,
	}
}

// Cleanup removes every address no invoice references in either slot.
// Running it again right away deletes nothing.
func (s *addressService) Cleanup(ctx context.Context) (*dto.CleanupAddressesResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	orphans, err := uow.AddressRepository().FindOrphans(ctx)
	if err != nil {
		return nil, err
	}

	ids := lo.Map(orphans, func(a *entity.Address, _ int) uint {
		return a.Id
	})

	if err := uow.AddressRepository().DeleteByIds(ctx, ids); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		s.log.Info("address", "orphaned addresses removed", map[string]interface{}{
			"deleted_count": len(ids),
		})
	}

	return &dto.CleanupAddressesResponse{DeletedCount: len(ids)}, nil
}
