package service

import (
	"context"
	"testing"

	"invoicing-be/internal/dto"
	"invoicing-be/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupAddresses(t *testing.T) {
	ctx := context.Background()

	t.Run("removes only orphaned addresses", func(t *testing.T) {
		factory, db := setupFactory(t)
		invoiceSvc := NewInvoiceService(factory, &recordingPublisher{}, noopLogger{})
		addressSvc := NewAddressService(factory, noopLogger{})

		// Two referenced addresses via a real invoice, two orphans.
		_, err := invoiceSvc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		require.NoError(t, db.Create(&model.Address{Street: "1 Orphan Lane", City: "Nowhere", PostCode: "0000", Country: "UK"}).Error)
		require.NoError(t, db.Create(&model.Address{Street: "2 Orphan Lane", City: "Nowhere", PostCode: "0000", Country: "UK"}).Error)

		res, err := addressSvc.Cleanup(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, res.DeletedCount)
		assert.EqualValues(t, 2, countRows(t, db, &model.Address{}))
	})

	t.Run("is idempotent", func(t *testing.T) {
		factory, db := setupFactory(t)
		addressSvc := NewAddressService(factory, noopLogger{})

		require.NoError(t, db.Create(&model.Address{Street: "1 Orphan Lane", City: "Nowhere", PostCode: "0000", Country: "UK"}).Error)

		first, err := addressSvc.Cleanup(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, first.DeletedCount)

		second, err := addressSvc.Cleanup(ctx)
		require.NoError(t, err)
		assert.Equal(t, &dto.CleanupAddressesResponse{DeletedCount: 0}, second)
	})

	t.Run("reports zero on an empty database", func(t *testing.T) {
		factory, _ := setupFactory(t)
		addressSvc := NewAddressService(factory, noopLogger{})

		res, err := addressSvc.Cleanup(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, res.DeletedCount)
	})
}
