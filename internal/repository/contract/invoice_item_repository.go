package contract

import (
	"context"

	"invoicing-be/internal/entity"
	"invoicing-be/internal/repository/specification"
)

type InvoiceItemRepository interface {
	Create(ctx context.Context, item *entity.InvoiceItem) error
	CreateBatch(ctx context.Context, items []*entity.InvoiceItem) error
	DeleteByInvoiceId(ctx context.Context, invoiceId uint) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InvoiceItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
