package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// CreateOrder persists the order tree (items + selections) in one go.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) SetOrderNo(tx *gorm.DB, orderID uint, orderNo string) error {
	return tx.Model(&entity.Order{}).Where("id = ?", orderID).Update("order_no", orderNo).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /api/orders?branchId= → branch console listing
type OrderSummary struct {
	ID            uint      `json:"id"`
	OrderNo       string    `json:"orderNo"`
	TotalAmount   int64     `json:"totalAmount"`
	CustomerName  string    `json:"customerName"`
	OrderType     string    `json:"orderType"`
	OrderStatusID uint      `json:"orderStatusId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (r *OrderRepository) ListForBranch(branchID uint, statusID *uint, page, limit int) ([]OrderSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}
	offset := (page - 1) * limit

	var total int64
	count := r.DB.Model(&entity.Order{}).Where("branch_id = ?", branchID)
	if statusID != nil && *statusID != 0 {
		count = count.Where("order_status_id = ?", *statusID)
	}
	if err := count.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []OrderSummary
	q := r.DB.Model(&entity.Order{}).
		Select("id, order_no, total_amount, customer_name, order_type, order_status_id, created_at").
		Where("branch_id = ?", branchID)
	if statusID != nil && *statusID != 0 {
		q = q.Where("order_status_id = ?", *statusID)
	}
	err := q.Order("id DESC").Limit(limit).Offset(offset).Scan(&out).Error
	return out, total, err
}

func (r *OrderRepository) GetForBranch(branchID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Where("id = ? AND branch_id = ?", orderID, branchID).
		Preload("Items").
		Preload("Items.Selections").
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard transitions only when the current status matches fromID,
// so concurrent console actions cannot skip states.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Update("order_status_id", toID)
	return res.RowsAffected, res.Error
}

// ---------------- Lookups ----------------

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var row struct{ ID uint }
	err := r.DB.Model(&entity.OrderStatus{}).
		Select("id").Where("status_name = ?", name).First(&row).Error
	return row.ID, err
}
