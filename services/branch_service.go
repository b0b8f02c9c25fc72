package services

import (
	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/repository"
)

type BranchService struct {
	Repo *repository.BranchRepository
}

func NewBranchService(repo *repository.BranchRepository) *BranchService {
	return &BranchService{Repo: repo}
}

func (s *BranchService) GetAll() ([]entity.Branch, error) {
	return s.Repo.FindAll()
}

func (s *BranchService) GetByID(id uint) (*entity.Branch, error) {
	return s.Repo.FindByID(id)
}

func (s *BranchService) Create(b *entity.Branch) error {
	return s.Repo.Create(b)
}

func (s *BranchService) Update(b *entity.Branch) error {
	return s.Repo.Update(b)
}

func (s *BranchService) Delete(id uint) error {
	return s.Repo.Delete(id)
}
