package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

type ReportRepository struct{ DB *gorm.DB }

func NewReportRepository(db *gorm.DB) *ReportRepository { return &ReportRepository{DB: db} }

type DailySalesRow struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Orders int64  `json:"orders"`
	Total  int64  `json:"total"`
}

// DailySales aggregates per-day order counts and revenue for a branch,
// excluding cancelled orders.
func (r *ReportRepository) DailySales(branchID uint, from, to time.Time, cancelledID uint) ([]DailySalesRow, error) {
	var rows []DailySalesRow
	err := r.DB.Model(&entity.Order{}).
		Select("date(created_at) AS date, COUNT(*) AS orders, SUM(total_amount) AS total").
		Where("branch_id = ? AND created_at >= ? AND created_at < ? AND order_status_id <> ?",
			branchID, from, to, cancelledID).
		Group("date(created_at)").
		Order("date").
		Scan(&rows).Error
	return rows, err
}
