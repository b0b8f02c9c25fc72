package repository

import (
	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

type OptionRepository struct{ DB *gorm.DB }

func NewOptionRepository(db *gorm.DB) *OptionRepository { return &OptionRepository{DB: db} }

func (r *OptionRepository) FindAll() ([]entity.Option, error) {
	var opts []entity.Option
	err := r.DB.Order("category, sort_order, id").Find(&opts).Error
	return opts, err
}

func (r *OptionRepository) FindByCategory(category string) ([]entity.Option, error) {
	var opts []entity.Option
	err := r.DB.Where("category = ?", category).Order("sort_order, id").Find(&opts).Error
	return opts, err
}

func (r *OptionRepository) FindByID(id uint) (*entity.Option, error) {
	var o entity.Option
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OptionRepository) FindByIDs(ids []uint) ([]entity.Option, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var opts []entity.Option
	err := r.DB.Where("id IN ?", ids).Find(&opts).Error
	return opts, err
}

func (r *OptionRepository) Create(o *entity.Option) error { return r.DB.Create(o).Error }
func (r *OptionRepository) Update(o *entity.Option) error { return r.DB.Save(o).Error }

func (r *OptionRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Option{}, id).Error
}
