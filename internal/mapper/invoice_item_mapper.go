package mapper

import (
	"time"

	"invoicing-be/internal/entity"
	"invoicing-be/internal/model"

	"github.com/samber/lo"
)

type InvoiceItemMapper struct{}

func NewInvoiceItemMapper() *InvoiceItemMapper {
	return &InvoiceItemMapper{}
}

func (m *InvoiceItemMapper) ToEntity(i *model.InvoiceItem) *entity.InvoiceItem {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.InvoiceItem{
		Id:        i.Id,
		InvoiceId: i.InvoiceId,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     i.Price,
		Total:     i.Total,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InvoiceItemMapper) ToModel(i *entity.InvoiceItem) *model.InvoiceItem {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.InvoiceItem{
		Id:        i.Id,
		InvoiceId: i.InvoiceId,
		Name:      i.Name,
		Quantity:  i.Quantity,
		Price:     i.Price,
		Total:     i.Total,
		CreatedAt: i.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *InvoiceItemMapper) ToEntities(items []*model.InvoiceItem) []*entity.InvoiceItem {
	return lo.Map(items, func(i *model.InvoiceItem, _ int) *entity.InvoiceItem {
		return m.ToEntity(i)
	})
}

func (m *InvoiceItemMapper) ToModels(items []*entity.InvoiceItem) []*model.InvoiceItem {
	return lo.Map(items, func(i *entity.InvoiceItem, _ int) *model.InvoiceItem {
		return m.ToModel(i)
	})
}
