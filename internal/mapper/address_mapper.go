package mapper

import (
	"time"

	"invoicing-be/internal/entity"
	"invoicing-be/internal/model"

	"github.com/samber/lo"
)

type AddressMapper struct{}

func NewAddressMapper() *AddressMapper {
	return &AddressMapper{}
}

func (m *AddressMapper) ToEntity(a *model.Address) *entity.Address {
	if a == nil {
		return nil
	}

	var updatedAt *time.Time
	if !a.UpdatedAt.IsZero() {
		t := a.UpdatedAt
		updatedAt = &t
	}

	return &entity.Address{
		Id:        a.Id,
		Street:    a.Street,
		City:      a.City,
		PostCode:  a.PostCode,
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *AddressMapper) ToModel(a *entity.Address) *model.Address {
	if a == nil {
		return nil
	}

	var updatedAt time.Time
	if a.UpdatedAt != nil {
		updatedAt = *a.UpdatedAt
	}

	return &model.Address{
		Id:        a.Id,
		Street:    a.Street,
		City:      a.City,
		PostCode:  a.PostCode,
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *AddressMapper) ToEntities(addresses []*model.Address) []*entity.Address {
	return lo.Map(addresses, func(a *model.Address, _ int) *entity.Address {
		return m.ToEntity(a)
	})
}
