package services

import (
	"errors"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/repository"
)

var ErrInvalidCategory = errors.New("invalid category")

type MenuService struct {
	Repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) List(category string) ([]entity.Menu, error) {
	if category != "" && !entity.IsMenuCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.Repo.FindAll(category)
}

func (s *MenuService) GetByID(id uint) (*entity.Menu, error) {
	return s.Repo.FindByID(id)
}

// OptionsFor loads a menu's option catalog in display order.
func (s *MenuService) OptionsFor(menuID uint) ([]entity.Option, error) {
	return s.Repo.FindOptionsByMenu(menuID)
}

func (s *MenuService) Create(m *entity.Menu) error {
	if !entity.IsMenuCategory(m.Category) {
		return ErrInvalidCategory
	}
	if m.Price < 0 {
		return errors.New("price must be non-negative")
	}
	return s.Repo.Create(m)
}

func (s *MenuService) Update(m *entity.Menu) error {
	if !entity.IsMenuCategory(m.Category) {
		return ErrInvalidCategory
	}
	if m.Price < 0 {
		return errors.New("price must be non-negative")
	}
	return s.Repo.Update(m)
}

func (s *MenuService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func (s *MenuService) AttachOption(menuID, optionID uint, sortOrder int) error {
	return s.Repo.AttachOption(menuID, optionID, sortOrder)
}

func (s *MenuService) DetachOption(menuID, optionID uint) error {
	return s.Repo.DetachOption(menuID, optionID)
}
