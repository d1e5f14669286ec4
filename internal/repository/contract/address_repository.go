package contract

import (
	"context"

	"invoicing-be/internal/entity"
	"invoicing-be/internal/repository/specification"
)

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uint) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Address, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Address, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// FindOrphans returns addresses referenced by no invoice in either slot.
	FindOrphans(ctx context.Context) ([]*entity.Address, error)
	DeleteByIds(ctx context.Context, ids []uint) error
}
