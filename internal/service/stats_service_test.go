package service

import (
	"context"
	"testing"
	"time"

	"invoicing-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStats(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc IInvoiceService, status string, total float64) {
		req := validCreateRequest()
		req.Status = status
		req.Total = total
		req.Items = []dto.InvoiceItemPayload{
			{Name: "Work", Quantity: 1, Price: total, Total: total},
		}
		_, err := svc.Create(ctx, req)
		require.NoError(t, err)
	}

	t.Run("groups by status and omits empty statuses", func(t *testing.T) {
		factory, _ := setupFactory(t)
		invoiceSvc := NewInvoiceService(factory, &recordingPublisher{}, noopLogger{})
		statsSvc := NewStatsService(factory, time.Minute)

		seed(t, invoiceSvc, "paid", 100)
		seed(t, invoiceSvc, "paid", 150)
		seed(t, invoiceSvc, "pending", 75)

		stats, err := statsSvc.GetStats(ctx)
		require.NoError(t, err)

		require.Contains(t, stats, "paid")
		assert.EqualValues(t, 2, stats["paid"].Count)
		assert.InDelta(t, 250, stats["paid"].TotalAmount, 0.001)

		require.Contains(t, stats, "pending")
		assert.EqualValues(t, 1, stats["pending"].Count)
		assert.InDelta(t, 75, stats["pending"].TotalAmount, 0.001)

		assert.NotContains(t, stats, "draft")
	})

	t.Run("returns an empty mapping with no invoices", func(t *testing.T) {
		factory, _ := setupFactory(t)
		statsSvc := NewStatsService(factory, time.Minute)

		stats, err := statsSvc.GetStats(ctx)
		require.NoError(t, err)
		assert.Empty(t, stats)
	})

	t.Run("serves from cache until invalidated", func(t *testing.T) {
		factory, _ := setupFactory(t)
		invoiceSvc := NewInvoiceService(factory, &recordingPublisher{}, noopLogger{})
		statsSvc := NewStatsService(factory, time.Minute)

		seed(t, invoiceSvc, "paid", 100)

		stats, err := statsSvc.GetStats(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, stats["paid"].Count)

		seed(t, invoiceSvc, "paid", 100)

		// Still the cached snapshot.
		stats, err = statsSvc.GetStats(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, stats["paid"].Count)

		statsSvc.Invalidate()

		stats, err = statsSvc.GetStats(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, stats["paid"].Count)
	})
}
