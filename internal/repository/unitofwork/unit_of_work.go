package unitofwork

import (
	"context"

	"invoicing-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	InvoiceRepository() contract.InvoiceRepository
	InvoiceItemRepository() contract.InvoiceItemRepository
	AddressRepository() contract.AddressRepository
}
