package repository

import (
	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

func (r *MenuRepository) FindAll(category string) ([]entity.Menu, error) {
	var menus []entity.Menu
	q := r.DB.Order("category, menu_name")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	err := q.Find(&menus).Error
	return menus, err
}

func (r *MenuRepository) FindByID(id uint) (*entity.Menu, error) {
	var m entity.Menu
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// GetMenuBasics reads only the columns pricing needs.
func (r *MenuRepository) GetMenuBasics(id uint) (entity.Menu, error) {
	var m entity.Menu
	err := r.DB.Select("id, menu_name, category, price, description, image").First(&m, id).Error
	return m, err
}

func (r *MenuRepository) Create(m *entity.Menu) error { return r.DB.Create(m).Error }
func (r *MenuRepository) Update(m *entity.Menu) error { return r.DB.Save(m).Error }

func (r *MenuRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Menu{}, id).Error
}

// FindOptionsByMenu returns the menu's attached options in catalog sort order.
func (r *MenuRepository) FindOptionsByMenu(menuID uint) ([]entity.Option, error) {
	var opts []entity.Option
	err := r.DB.
		Joins("JOIN menu_options mo ON mo.option_id = options.id").
		Where("mo.menu_id = ?", menuID).
		Order("mo.sort_order, options.sort_order, options.id").
		Find(&opts).Error
	return opts, err
}

func (r *MenuRepository) AttachOption(menuID, optionID uint, sortOrder int) error {
	link := entity.MenuOption{MenuID: menuID, OptionID: optionID, SortOrder: sortOrder}
	return r.DB.Where(entity.MenuOption{MenuID: menuID, OptionID: optionID}).
		FirstOrCreate(&link).Error
}

func (r *MenuRepository) DetachOption(menuID, optionID uint) error {
	return r.DB.Where("menu_id = ? AND option_id = ?", menuID, optionID).
		Delete(&entity.MenuOption{}).Error
}
