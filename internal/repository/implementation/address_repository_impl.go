package implementation

import (
	"context"
	"errors"

	"invoicing-be/internal/entity"
	"invoicing-be/internal/mapper"
	"invoicing-be/internal/model"
	"invoicing-be/internal/repository/contract"
	"invoicing-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AddressRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AddressMapper
}

func NewAddressRepository(db *gorm.DB) contract.AddressRepository {
	return &AddressRepositoryImpl{
		db:     db,
		mapper: mapper.NewAddressMapper(),
	}
}

func (r *AddressRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AddressRepositoryImpl) Create(ctx context.Context, address *entity.Address) error {
	m := r.mapper.ToModel(address)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*address = *r.mapper.ToEntity(m)
	return nil
}

func (r *AddressRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Address{}, id).Error
}

func (r *AddressRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Address, error) {
	var m model.Address
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AddressRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Address, error) {
	var models []*model.Address
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AddressRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Address{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *AddressRepositoryImpl) FindOrphans(ctx context.Context) ([]*entity.Address, error) {
	var models []*model.Address
	err := r.db.WithContext(ctx).
		Model(&model.Address{}).
		Joins("LEFT JOIN invoices ON invoices.sender_address_id = addresses.id OR invoices.client_address_id = addresses.id").
		Where("invoices.id IS NULL").
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AddressRepositoryImpl) DeleteByIds(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Address{}).Error
}
