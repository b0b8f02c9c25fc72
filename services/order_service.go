package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/repository"
)

var (
	ErrBranchNotFound      = errors.New("branch not found")
	ErrInvalidSecurityHash = errors.New("security hash mismatch")
	ErrPriceMismatch       = errors.New("order prices do not match the catalog")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrOrderNotFound       = errors.New("order not found")
)

type StatusIDs struct {
	Pending   uint
	Preparing uint
	Completed uint
	Cancelled uint
}

// OrderService is the server side of POST /api/orders/create plus the branch
// console's order views and status transitions. It is the pricing authority:
// the client hash and every price in the payload are re-verified here.
type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	MenuRepo   *repository.MenuRepository
	OptionRepo *repository.OptionRepository
	BranchRepo *repository.BranchRepository
	Secret     string
	Status     StatusIDs

	notify func(*entity.Order)
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	menuRepo *repository.MenuRepository,
	optionRepo *repository.OptionRepository,
	branchRepo *repository.BranchRepository,
	secret string,
) *OrderService {
	s := &OrderService{
		DB: db, Repo: repo, MenuRepo: menuRepo, OptionRepo: optionRepo,
		BranchRepo: branchRepo, Secret: secret,
	}
	if id, err := repo.GetStatusIDByName("Pending"); err == nil {
		s.Status.Pending = id
	}
	if id, err := repo.GetStatusIDByName("Preparing"); err == nil {
		s.Status.Preparing = id
	}
	if id, err := repo.GetStatusIDByName("Completed"); err == nil {
		s.Status.Completed = id
	}
	if id, err := repo.GetStatusIDByName("Cancelled"); err == nil {
		s.Status.Cancelled = id
	}
	return s
}

// SetNotify registers the new-order callback (the websocket hub); wired in
// routes to avoid an import cycle.
func (s *OrderService) SetNotify(fn func(*entity.Order)) { s.notify = fn }

type CreateOrderRes struct {
	ID          uint   `json:"id"`
	OrderNo     string `json:"orderNo"`
	TotalAmount int64  `json:"totalAmount"`
}

// Create validates and persists an incoming OrderRequest.
func (s *OrderService) Create(req *OrderRequest) (*CreateOrderRes, error) {
	ok, err := s.BranchRepo.Exists(req.BranchID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBranchNotFound
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if SecurityHash(req, s.Secret) != req.SecurityHash {
		return nil, ErrInvalidSecurityHash
	}
	if err := s.verifyPrices(req); err != nil {
		return nil, err
	}

	var out CreateOrderRes
	var created entity.Order
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			BranchID:      req.BranchID,
			TotalAmount:   req.TotalAmount,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			OrderType:     req.OrderType,
			PaymentMethod: req.PaymentMethod,
			SecurityHash:  req.SecurityHash,
			RequestedAt:   req.Timestamp,
			OrderStatusID: s.Status.Pending,
			Items:         orderItems(req.Items),
		}
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		orderNo := fmt.Sprintf("ORD-%s-%06d", time.Now().Format("20060102"), order.ID)
		if err := s.Repo.SetOrderNo(tx, order.ID, orderNo); err != nil {
			return err
		}
		order.OrderNo = orderNo

		out = CreateOrderRes{ID: order.ID, OrderNo: orderNo, TotalAmount: order.TotalAmount}
		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	if s.notify != nil {
		s.notify(&created)
	}
	return &out, nil
}

// verifyPrices recomputes every line from the catalog. Option ids unknown to
// the catalog contribute zero, mirroring the pricer's defensive default.
func (s *OrderService) verifyPrices(req *OrderRequest) error {
	optIDs := make([]uint, 0)
	for _, it := range req.Items {
		for _, o := range it.Options {
			if o.Action == "add" {
				optIDs = append(optIDs, o.OptionID)
			}
		}
	}
	opts, err := s.OptionRepo.FindByIDs(optIDs)
	if err != nil {
		return err
	}
	priceOf := make(map[uint]int64, len(opts))
	for _, o := range opts {
		priceOf[o.ID] = o.Price
	}

	var sum int64
	for _, it := range req.Items {
		m, err := s.MenuRepo.GetMenuBasics(it.MenuID)
		if err != nil {
			return fmt.Errorf("menu %d: %w", it.MenuID, err)
		}
		unit := m.Price
		for _, o := range it.Options {
			if o.Action != "add" {
				continue
			}
			p, ok := priceOf[o.OptionID]
			if !ok {
				log.Printf("order: unknown option id %d on menu %d, pricing it as zero", o.OptionID, it.MenuID)
				continue
			}
			unit += p * int64(o.Quantity)
		}
		if unit != it.UnitPrice {
			return fmt.Errorf("%w: item %q unit %d, expected %d", ErrPriceMismatch, it.MenuName, it.UnitPrice, unit)
		}
		if it.TotalPrice != it.UnitPrice*int64(it.Quantity) {
			return fmt.Errorf("%w: item %q total %d, expected %d", ErrPriceMismatch, it.MenuName, it.TotalPrice, it.UnitPrice*int64(it.Quantity))
		}
		sum += it.TotalPrice
	}
	if sum != req.TotalAmount {
		return fmt.Errorf("%w: total %d, items sum to %d", ErrPriceMismatch, req.TotalAmount, sum)
	}
	return nil
}

func orderItems(items []OrderRequestItem) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(items))
	for _, it := range items {
		sel := make([]entity.OrderItemOption, 0, len(it.Options))
		for _, o := range it.Options {
			sel = append(sel, entity.OrderItemOption{
				OptionID: o.OptionID, OptionName: o.OptionName,
				Quantity: o.Quantity, UnitPrice: o.UnitPrice, Action: o.Action,
			})
		}
		out = append(out, entity.OrderItem{
			MenuID: it.MenuID, MenuName: it.MenuName,
			Qty: it.Quantity, UnitPrice: it.UnitPrice, Total: it.TotalPrice,
			DisplayName: it.DisplayName, ItemType: it.ItemType,
			Selections: sel,
		})
	}
	return out
}

// ----- branch console views -----

type OrderListOut struct {
	Items []repository.OrderSummary `json:"items"`
	Total int64                     `json:"total"`
	Page  int                       `json:"page"`
	Limit int                       `json:"limit"`
}

func (s *OrderService) ListForBranch(branchID uint, statusID *uint, page, limit int) (*OrderListOut, error) {
	items, total, err := s.Repo.ListForBranch(branchID, statusID, page, limit)
	if err != nil {
		return nil, err
	}
	return &OrderListOut{Items: items, Total: total, Page: page, Limit: limit}, nil
}

func (s *OrderService) DetailForBranch(branchID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetForBranch(branchID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}
