package service

import (
	"context"
	"testing"

	"invoicing-be/internal/dto"
	"invoicing-be/internal/model"
	"invoicing-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newInvoiceService(t *testing.T) (IInvoiceService, *gorm.DB, *recordingPublisher) {
	t.Helper()
	factory, db := setupFactory(t)
	publisher := &recordingPublisher{}
	return NewInvoiceService(factory, publisher, noopLogger{}), db, publisher
}

func validCreateRequest() *dto.CreateInvoiceRequest {
	return &dto.CreateInvoiceRequest{
		PaymentDue:   "2026-10-01",
		Description:  "Graphic Design",
		PaymentTerms: 30,
		ClientName:   "Alex Grim",
		ClientEmail:  "alexgrim@mail.com",
		Status:       "pending",
		Total:        250,
		SenderAddress: dto.AddressPayload{
			Street:   "19 Union Terrace",
			City:     "London",
			PostCode: "E1 3EZ",
			Country:  "United Kingdom",
		},
		ClientAddress: dto.AddressPayload{
			Street:   "84 Church Way",
			City:     "Bradford",
			PostCode: "BD1 9PB",
			Country:  "United Kingdom",
		},
		Items: []dto.InvoiceItemPayload{
			{Name: "Banner Design", Quantity: 1, Price: 100, Total: 100},
			{Name: "Email Design", Quantity: 3, Price: 50, Total: 150},
		},
	}
}

func TestCreateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("succeeds when item totals match the declared total", func(t *testing.T) {
		svc, db, publisher := newInvoiceService(t)

		res, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.NotZero(t, res.Id)
		assert.NotZero(t, res.SenderAddressId)
		assert.NotZero(t, res.ClientAddressId)

		assert.EqualValues(t, 1, countRows(t, db, &model.Invoice{}))
		assert.EqualValues(t, 2, countRows(t, db, &model.Address{}))
		assert.EqualValues(t, 2, countRows(t, db, &model.InvoiceItem{}))

		var items []model.InvoiceItem
		require.NoError(t, db.Where("invoice_id = ?", res.Id).Find(&items).Error)
		assert.Len(t, items, 2)

		var invoice model.Invoice
		require.NoError(t, db.First(&invoice, res.Id).Error)
		require.NotNil(t, invoice.SenderAddressId)
		assert.Equal(t, res.SenderAddressId, *invoice.SenderAddressId)
		require.NotNil(t, invoice.ClientAddressId)
		assert.Equal(t, res.ClientAddressId, *invoice.ClientAddressId)

		assert.Equal(t, []string{dto.EventInvoiceCreated}, publisher.Events())
	})

	t.Run("fails with a validation error on total mismatch and persists nothing", func(t *testing.T) {
		svc, db, _ := newInvoiceService(t)

		req := validCreateRequest()
		req.Total = 260 // items sum to 250

		_, err := svc.Create(ctx, req)
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)

		assert.EqualValues(t, 0, countRows(t, db, &model.Invoice{}))
		assert.EqualValues(t, 0, countRows(t, db, &model.Address{}))
		assert.EqualValues(t, 0, countRows(t, db, &model.InvoiceItem{}))
	})

	t.Run("tolerates sub-cent drift between total and item sum", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		req := validCreateRequest()
		req.Total = 250.01

		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("defaults status to draft", func(t *testing.T) {
		svc, db, _ := newInvoiceService(t)

		req := validCreateRequest()
		req.Status = ""

		res, err := svc.Create(ctx, req)
		require.NoError(t, err)

		var invoice model.Invoice
		require.NoError(t, db.First(&invoice, res.Id).Error)
		assert.Equal(t, "draft", invoice.Status)
	})

	t.Run("rejects a malformed payment due date", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		req := validCreateRequest()
		req.PaymentDue = "01/10/2026"

		_, err := svc.Create(ctx, req)
		var validationErr *apperror.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestGetInvoiceById(t *testing.T) {
	ctx := context.Background()

	t.Run("returns invoice with items and both addresses", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		res, err := svc.GetById(ctx, created.Id)
		require.NoError(t, err)
		assert.Equal(t, created.Id, res.Id)
		assert.Equal(t, "2026-10-01", res.PaymentDue)
		assert.Len(t, res.Items, 2)
		require.NotNil(t, res.SenderAddress)
		assert.Equal(t, "19 Union Terrace", res.SenderAddress.Street)
		require.NotNil(t, res.ClientAddress)
		assert.Equal(t, "Bradford", res.ClientAddress.City)
		assert.InDelta(t, 250, res.Total, 0.001)
	})

	t.Run("fails with not found for an unknown id", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		_, err := svc.GetById(ctx, 9999)
		var notFoundErr *apperror.NotFoundError
		assert.ErrorAs(t, err, &notFoundErr)
	})

	t.Run("masks a dangling address reference instead of failing", func(t *testing.T) {
		svc, db, _ := newInvoiceService(t)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		// Remove the sender address row behind the invoice's back.
		require.NoError(t, db.Delete(&model.Address{}, created.SenderAddressId).Error)

		res, err := svc.GetById(ctx, created.Id)
		require.NoError(t, err)
		assert.Nil(t, res.SenderAddress)
		assert.NotNil(t, res.ClientAddress)
	})
}

func TestUpdateInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("fails with an integrity error for a missing invoice", func(t *testing.T) {
		svc, db, _ := newInvoiceService(t)

		status := "paid"
		_, err := svc.Update(ctx, &dto.UpdateInvoiceRequest{Id: 42, Status: &status})
		var integrityErr *apperror.IntegrityError
		require.ErrorAs(t, err, &integrityErr)
		assert.Equal(t, "invoice", integrityErr.Entity)

		assert.EqualValues(t, 0, countRows(t, db, &model.Invoice{}))
	})

	t.Run("applies only the supplied fields", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		status := "paid"
		res, err := svc.Update(ctx, &dto.UpdateInvoiceRequest{Id: created.Id, Status: &status})
		require.NoError(t, err)
		assert.Equal(t, "paid", res.Status)
		assert.Equal(t, "Alex Grim", res.ClientName)
		assert.InDelta(t, 250, res.Total, 0.001)
	})

	t.Run("detaches an address on explicit null", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		res, err := svc.Update(ctx, &dto.UpdateInvoiceRequest{
			Id:              created.Id,
			SenderAddressId: dto.Optional[uint]{Set: true, Valid: false},
		})
		require.NoError(t, err)
		assert.Nil(t, res.SenderAddressId)
		require.NotNil(t, res.ClientAddressId)
		assert.Equal(t, created.ClientAddressId, *res.ClientAddressId)
	})

	t.Run("fails with an integrity error for a missing address reference", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = svc.Update(ctx, &dto.UpdateInvoiceRequest{
			Id:              created.Id,
			SenderAddressId: dto.Optional[uint]{Set: true, Valid: true, Value: 9999},
		})
		var integrityErr *apperror.IntegrityError
		require.ErrorAs(t, err, &integrityErr)
		assert.EqualValues(t, 9999, integrityErr.Id)

		// Nothing was mutated.
		res, err := svc.GetById(ctx, created.Id)
		require.NoError(t, err)
		require.NotNil(t, res.SenderAddress)
		assert.Equal(t, created.SenderAddressId, res.SenderAddress.Id)
	})

	t.Run("does not re-validate the item sum on total change", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		newTotal := 9000.0
		res, err := svc.Update(ctx, &dto.UpdateInvoiceRequest{Id: created.Id, Total: &newTotal})
		require.NoError(t, err)
		assert.InDelta(t, 9000, res.Total, 0.001)
	})
}

func TestDeleteInvoice(t *testing.T) {
	ctx := context.Background()

	t.Run("fails with an integrity error for a missing invoice", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)

		_, err := svc.Delete(ctx, 42)
		var integrityErr *apperror.IntegrityError
		assert.ErrorAs(t, err, &integrityErr)
	})

	t.Run("removes items, invoice and unreferenced addresses", func(t *testing.T) {
		svc, db, publisher := newInvoiceService(t)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		res, err := svc.Delete(ctx, created.Id)
		require.NoError(t, err)
		assert.True(t, res.Success)

		assert.EqualValues(t, 0, countRows(t, db, &model.Invoice{}))
		assert.EqualValues(t, 0, countRows(t, db, &model.InvoiceItem{}))
		assert.EqualValues(t, 0, countRows(t, db, &model.Address{}))

		assert.Contains(t, publisher.Events(), dto.EventInvoiceDeleted)
	})

	t.Run("retains an address still referenced by another invoice", func(t *testing.T) {
		svc, db, _ := newInvoiceService(t)

		first, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		second, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		// Point the second invoice at the first invoice's sender address.
		_, err = svc.Update(ctx, &dto.UpdateInvoiceRequest{
			Id:              second.Id,
			SenderAddressId: dto.Optional[uint]{Set: true, Valid: true, Value: first.SenderAddressId},
		})
		require.NoError(t, err)

		_, err = svc.Delete(ctx, first.Id)
		require.NoError(t, err)

		// The shared sender address survives, the first invoice's client
		// address does not.
		var shared model.Address
		assert.NoError(t, db.First(&shared, first.SenderAddressId).Error)
		err = db.First(&model.Address{}, first.ClientAddressId).Error
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestAddInvoiceItem(t *testing.T) {
	ctx := context.Background()

	t.Run("fails with an integrity error for a missing invoice", func(t *testing.T) {
		svc, db, _ := newInvoiceService(t)

		_, err := svc.AddItem(ctx, &dto.AddInvoiceItemRequest{
			InvoiceId: 42,
			Item:      dto.InvoiceItemPayload{Name: "Extra", Quantity: 1, Price: 10, Total: 10},
		})
		var integrityErr *apperror.IntegrityError
		require.ErrorAs(t, err, &integrityErr)

		assert.EqualValues(t, 0, countRows(t, db, &model.InvoiceItem{}))
	})

	t.Run("appends the item without touching the invoice total", func(t *testing.T) {
		svc, db, _ := newInvoiceService(t)

		created, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		item, err := svc.AddItem(ctx, &dto.AddInvoiceItemRequest{
			InvoiceId: created.Id,
			Item:      dto.InvoiceItemPayload{Name: "Revision Round", Quantity: 2, Price: 25, Total: 50},
		})
		require.NoError(t, err)
		assert.NotZero(t, item.Id)
		assert.Equal(t, created.Id, item.InvoiceId)

		assert.EqualValues(t, 3, countRows(t, db, &model.InvoiceItem{}))

		// The recorded total drifts from the item sum on this path.
		res, err := svc.GetById(ctx, created.Id)
		require.NoError(t, err)
		assert.InDelta(t, 250, res.Total, 0.001)
	})
}

func TestGetAllInvoices(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T, svc IInvoiceService, status string, total float64) uint {
		req := validCreateRequest()
		req.Status = status
		req.Total = total
		req.Items = []dto.InvoiceItemPayload{
			{Name: "Work", Quantity: 1, Price: total, Total: total},
		}
		res, err := svc.Create(ctx, req)
		require.NoError(t, err)
		return res.Id
	}

	t.Run("sorts by total ascending", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)
		seed(t, svc, "draft", 300)
		seed(t, svc, "pending", 100)
		seed(t, svc, "paid", 200)

		res, err := svc.GetAll(ctx, &dto.ListInvoicesRequest{SortBy: "total", SortOrder: "asc"})
		require.NoError(t, err)
		require.Len(t, res, 3)
		for i := 1; i < len(res); i++ {
			assert.LessOrEqual(t, res[i-1].Total, res[i].Total)
		}
	})

	t.Run("filters by status", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)
		seed(t, svc, "paid", 100)
		seed(t, svc, "draft", 200)
		seed(t, svc, "paid", 300)

		res, err := svc.GetAll(ctx, &dto.ListInvoicesRequest{Status: "paid"})
		require.NoError(t, err)
		require.Len(t, res, 2)
		for _, item := range res {
			assert.Equal(t, "paid", item.Status)
		}
	})

	t.Run("applies limit and offset with defaults", func(t *testing.T) {
		svc, _, _ := newInvoiceService(t)
		for i := 0; i < 12; i++ {
			seed(t, svc, "draft", float64(100+i))
		}

		res, err := svc.GetAll(ctx, &dto.ListInvoicesRequest{})
		require.NoError(t, err)
		assert.Len(t, res, 10) // default page size

		rest, err := svc.GetAll(ctx, &dto.ListInvoicesRequest{Limit: 100, Offset: 10})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})

	t.Run("includes the sender address via the left join", func(t *testing.T) {
		svc, db, _ := newInvoiceService(t)
		id := seed(t, svc, "pending", 150)

		res, err := svc.GetAll(ctx, &dto.ListInvoicesRequest{})
		require.NoError(t, err)
		require.Len(t, res, 1)
		require.NotNil(t, res[0].SenderAddress)
		assert.Equal(t, "19 Union Terrace", res[0].SenderAddress.Street)

		// An invoice with a dangling sender reference still comes back.
		require.NoError(t, db.Model(&model.Invoice{}).Where("id = ?", id).Update("sender_address_id", nil).Error)
		res, err = svc.GetAll(ctx, &dto.ListInvoicesRequest{})
		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.Nil(t, res[0].SenderAddress)
	})
}

func TestConcreteScenario(t *testing.T) {
	// Create with items [100, 150] and declared total 250 → success; the
	// same payload with 260 → rejected with nothing persisted; deleting the
	// created invoice removes items, invoice and both addresses.
	ctx := context.Background()
	factory, db := setupFactory(t)
	svc := NewInvoiceService(factory, &recordingPublisher{}, noopLogger{})

	ok, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	bad := validCreateRequest()
	bad.Total = 260
	_, err = svc.Create(ctx, bad)
	var validationErr *apperror.ValidationError
	require.ErrorAs(t, err, &validationErr)

	assert.EqualValues(t, 1, countRows(t, db, &model.Invoice{}))
	assert.EqualValues(t, 2, countRows(t, db, &model.Address{}))
	assert.EqualValues(t, 2, countRows(t, db, &model.InvoiceItem{}))

	_, err = svc.Delete(ctx, ok.Id)
	require.NoError(t, err)

	assert.EqualValues(t, 0, countRows(t, db, &model.Invoice{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.Address{}))
	assert.EqualValues(t, 0, countRows(t, db, &model.InvoiceItem{}))
}
