package implementation

import (
	"context"

	"invoicing-be/internal/entity"
	"invoicing-be/internal/mapper"
	"invoicing-be/internal/model"
	"invoicing-be/internal/repository/contract"
	"invoicing-be/internal/repository/specification"

	"gorm.io/gorm"
)

type InvoiceItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InvoiceItemMapper
}

func NewInvoiceItemRepository(db *gorm.DB) contract.InvoiceItemRepository {
	return &InvoiceItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewInvoiceItemMapper(),
	}
}

func (r *InvoiceItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *InvoiceItemRepositoryImpl) Create(ctx context.Context, item *entity.InvoiceItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *InvoiceItemRepositoryImpl) CreateBatch(ctx context.Context, items []*entity.InvoiceItem) error {
	if len(items) == 0 {
		return nil
	}
	models := r.mapper.ToModels(items)
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return err
	}
	for i, m := range models {
		*items[i] = *r.mapper.ToEntity(m)
	}
	return nil
}

func (r *InvoiceItemRepositoryImpl) DeleteByInvoiceId(ctx context.Context, invoiceId uint) error {
	return r.db.WithContext(ctx).Where("invoice_id = ?", invoiceId).Delete(&model.InvoiceItem{}).Error
}

func (r *InvoiceItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.InvoiceItem, error) {
	var models []*model.InvoiceItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *InvoiceItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.InvoiceItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
