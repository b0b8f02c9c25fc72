package repository

import (
	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

type BranchRepository struct{ DB *gorm.DB }

func NewBranchRepository(db *gorm.DB) *BranchRepository { return &BranchRepository{DB: db} }

func (r *BranchRepository) FindAll() ([]entity.Branch, error) {
	var branches []entity.Branch
	err := r.DB.Order("branch_name").Find(&branches).Error
	return branches, err
}

func (r *BranchRepository) FindByID(id uint) (*entity.Branch, error) {
	var b entity.Branch
	if err := r.DB.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BranchRepository) Exists(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.Branch{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *BranchRepository) Create(b *entity.Branch) error { return r.DB.Create(b).Error }
func (r *BranchRepository) Update(b *entity.Branch) error { return r.DB.Save(b).Error }

func (r *BranchRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Branch{}, id).Error
}
