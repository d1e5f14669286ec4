package serverutils

import (
	"testing"

	"invoicing-be/internal/dto"
	"invoicing-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	t.Run("accepts a well-formed create request", func(t *testing.T) {
		req := dto.CreateInvoiceRequest{
			PaymentDue:   "2026-10-01",
			PaymentTerms: 30,
			ClientName:   "Alex Grim",
			ClientEmail:  "alexgrim@mail.com",
			Total:        250,
			SenderAddress: dto.AddressPayload{
				Street: "19 Union Terrace", City: "London", PostCode: "E1 3EZ", Country: "United Kingdom",
			},
			ClientAddress: dto.AddressPayload{
				Street: "84 Church Way", City: "Bradford", PostCode: "BD1 9PB", Country: "United Kingdom",
			},
			Items: []dto.InvoiceItemPayload{
				{Name: "Banner Design", Quantity: 1, Price: 250, Total: 250},
			},
		}
		assert.NoError(t, ValidateRequest(req))
	})

	t.Run("rejects an empty item list", func(t *testing.T) {
		req := dto.CreateInvoiceRequest{
			PaymentDue:   "2026-10-01",
			PaymentTerms: 30,
			ClientName:   "Alex Grim",
			ClientEmail:  "alexgrim@mail.com",
			Total:        250,
			SenderAddress: dto.AddressPayload{
				Street: "19 Union Terrace", City: "London", PostCode: "E1 3EZ", Country: "United Kingdom",
			},
			ClientAddress: dto.AddressPayload{
				Street: "84 Church Way", City: "Bradford", PostCode: "BD1 9PB", Country: "United Kingdom",
			},
			Items: []dto.InvoiceItemPayload{},
		}
		err := ValidateRequest(req)
		var validationErr *apperror.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Message, "Items")
	})

	t.Run("rejects non-positive item quantity", func(t *testing.T) {
		req := dto.AddInvoiceItemRequest{
			Item: dto.InvoiceItemPayload{Name: "Extra", Quantity: 0, Price: 10, Total: 10},
		}
		err := ValidateRequest(req)
		var validationErr *apperror.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		err := ValidateRequest(dto.ListInvoicesRequest{Status: "archived"})
		var validationErr *apperror.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("rejects out-of-range limit", func(t *testing.T) {
		err := ValidateRequest(dto.ListInvoicesRequest{Limit: 101})
		var validationErr *apperror.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}
