package contract

import (
	"context"

	"invoicing-be/internal/entity"
	"invoicing-be/internal/repository/specification"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Invoice, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error)
	// FindAllWithSender preloads the sender address; invoices with a missing
	// or detached sender still come back with SenderAddress == nil.
	FindAllWithSender(ctx context.Context, specs ...specification.Specification) ([]*entity.Invoice, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	StatsByStatus(ctx context.Context) ([]*entity.StatusStat, error)
}
