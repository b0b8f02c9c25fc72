package services

import (
	"errors"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/repository"
)

type OptionService struct {
	Repo *repository.OptionRepository
}

func NewOptionService(repo *repository.OptionRepository) *OptionService {
	return &OptionService{Repo: repo}
}

func (s *OptionService) GetAll() ([]entity.Option, error) {
	return s.Repo.FindAll()
}

func (s *OptionService) GetByCategory(category string) ([]entity.Option, error) {
	if !entity.IsOptionCategory(category) {
		return nil, ErrInvalidCategory
	}
	return s.Repo.FindByCategory(category)
}

func (s *OptionService) GetByID(id uint) (*entity.Option, error) {
	return s.Repo.FindByID(id)
}

func (s *OptionService) Create(o *entity.Option) error {
	if err := validateOption(o); err != nil {
		return err
	}
	return s.Repo.Create(o)
}

func (s *OptionService) Update(o *entity.Option) error {
	if err := validateOption(o); err != nil {
		return err
	}
	return s.Repo.Update(o)
}

func (s *OptionService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

func validateOption(o *entity.Option) error {
	if !entity.IsOptionCategory(o.Category) {
		return ErrInvalidCategory
	}
	if o.Price < 0 {
		return errors.New("price must be non-negative")
	}
	if o.QuantityPriced && o.MaxQuantity < 1 {
		return errors.New("quantity-priced options need a cap of at least 1")
	}
	if !o.QuantityPriced {
		o.MaxQuantity = 1
	}
	return nil
}
