package services

import (
	"time"

	"github.com/shstksdbs/ERP-Project-sub001/repository"
)

type ReportService struct {
	Repo     *repository.ReportRepository
	OrderSvc *OrderService
}

func NewReportService(repo *repository.ReportRepository, orderSvc *OrderService) *ReportService {
	return &ReportService{Repo: repo, OrderSvc: orderSvc}
}

// DailySales returns per-day order counts and revenue for a branch over
// [from, to). Cancelled orders are excluded.
func (s *ReportService) DailySales(branchID uint, from, to time.Time) ([]repository.DailySalesRow, error) {
	return s.Repo.DailySales(branchID, from, to, s.OrderSvc.Status.Cancelled)
}
