package mapper

import (
	"time"

	"invoicing-be/internal/entity"
	"invoicing-be/internal/model"

	"github.com/samber/lo"
	"gorm.io/datatypes"
)

type InvoiceMapper struct {
	addressMapper *AddressMapper
}

func NewInvoiceMapper() *InvoiceMapper {
	return &InvoiceMapper{
		addressMapper: NewAddressMapper(),
	}
}

func (m *InvoiceMapper) ToEntity(i *model.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}

	var updatedAt *time.Time
	if !i.UpdatedAt.IsZero() {
		t := i.UpdatedAt
		updatedAt = &t
	}

	return &entity.Invoice{
		Id:              i.Id,
		PaymentDue:      time.Time(i.PaymentDue),
		Description:     i.Description,
		PaymentTerms:    i.PaymentTerms,
		ClientName:      i.ClientName,
		ClientEmail:     i.ClientEmail,
		Status:          entity.InvoiceStatus(i.Status),
		Total:           i.Total,
		SenderAddressId: i.SenderAddressId,
		ClientAddressId: i.ClientAddressId,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       updatedAt,
		SenderAddress:   m.addressMapper.ToEntity(i.SenderAddress),
	}
}

func (m *InvoiceMapper) ToModel(i *entity.Invoice) *model.Invoice {
	if i == nil {
		return nil
	}

	var updatedAt time.Time
	if i.UpdatedAt != nil {
		updatedAt = *i.UpdatedAt
	}

	return &model.Invoice{
		Id:              i.Id,
		PaymentDue:      datatypes.Date(i.PaymentDue),
		Description:     i.Description,
		PaymentTerms:    i.PaymentTerms,
		ClientName:      i.ClientName,
		ClientEmail:     i.ClientEmail,
		Status:          string(i.Status),
		Total:           i.Total,
		SenderAddressId: i.SenderAddressId,
		ClientAddressId: i.ClientAddressId,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *InvoiceMapper) ToEntities(invoices []*model.Invoice) []*entity.Invoice {
	return lo.Map(invoices, func(i *model.Invoice, _ int) *entity.Invoice {
		return m.ToEntity(i)
	})
}
