package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

var (
	ErrNoBranchSelected       = errors.New("no branch selected")
	ErrEmptyCart              = errors.New("cart is empty")
	ErrIncompleteCustomerInfo = errors.New("customer name and phone are required")
)

// ----- order submission wire contract -----

type OrderRequestOption struct {
	OptionID   uint   `json:"optionId"`
	OptionName string `json:"optionName"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	Action     string `json:"action"` // add | remove
}

type OrderRequestItem struct {
	MenuID         uint                 `json:"menuId"`
	MenuName       string               `json:"menuName"`
	Quantity       int                  `json:"quantity"`
	UnitPrice      int64                `json:"unitPrice"`
	TotalPrice     int64                `json:"totalPrice"`
	DisplayName    string               `json:"displayName"`
	DisplayOptions []string             `json:"displayOptions"`
	Options        []OrderRequestOption `json:"options"`
	ItemType       string               `json:"itemType"`
}

type OrderRequest struct {
	BranchID      uint               `json:"branchId"`
	TotalAmount   int64              `json:"totalAmount"`
	Items         []OrderRequestItem `json:"items"`
	CustomerName  string             `json:"customerName"`
	CustomerPhone string             `json:"customerPhone"`
	OrderType     string             `json:"orderType"` // takeout | dine-in
	PaymentMethod string             `json:"paymentMethod"`
	SecurityHash  string             `json:"securityHash"`
	Timestamp     int64              `json:"timestamp"` // ms
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderSubmitter hands a built request to the order endpoint and returns the
// assigned order number.
type OrderSubmitter interface {
	Submit(ctx context.Context, req *OrderRequest) (string, error)
}

// CheckoutService turns a cart into an OrderRequest and drives submission
// through the cart's state machine.
type CheckoutService struct {
	Submitter OrderSubmitter
	Secret    string

	now func() time.Time
}

func NewCheckoutService(sub OrderSubmitter, secret string) *CheckoutService {
	return &CheckoutService{Submitter: sub, Secret: secret, now: time.Now}
}

// BuildOrderRequest serializes the cart. It never mutates the cart, and fails
// up front on a missing branch, an empty cart, or blank customer fields.
func (s *CheckoutService) BuildOrderRequest(cart *Cart, customer CustomerInfo, orderType, paymentMethod string) (*OrderRequest, error) {
	if cart.BranchID() == 0 {
		return nil, ErrNoBranchSelected
	}
	lines := cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	name := strings.TrimSpace(customer.Name)
	phone := strings.TrimSpace(customer.Phone)
	if name == "" || phone == "" {
		return nil, ErrIncompleteCustomerInfo
	}

	items := make([]OrderRequestItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, OrderRequestItem{
			MenuID:         l.MenuID,
			MenuName:       l.MenuName,
			Quantity:       l.Qty,
			UnitPrice:      l.UnitPrice,
			TotalPrice:     l.Total,
			DisplayName:    l.DisplayName,
			DisplayOptions: l.Labels,
			Options:        flattenOptions(l.Options),
			ItemType:       itemType(l),
		})
	}

	req := &OrderRequest{
		BranchID:      cart.BranchID(),
		TotalAmount:   cart.Total(),
		Items:         items,
		CustomerName:  name,
		CustomerPhone: phone,
		OrderType:     orderType,
		PaymentMethod: paymentMethod,
		Timestamp:     s.now().UnixMilli(),
	}
	req.SecurityHash = SecurityHash(req, s.Secret)
	return req, nil
}

// Checkout builds the request and submits it. Exactly one submission may be in
// flight per cart; on any failure the cart returns to building untouched, so
// the user can retry without recomputation.
//
// The cart enters checkingOut before the request is serialized: a line added
// between build and submit would otherwise be cleared on success without ever
// reaching the order endpoint.
func (s *CheckoutService) Checkout(ctx context.Context, cart *Cart, customer CustomerInfo, orderType, paymentMethod string) (string, error) {
	if err := cart.beginCheckout(); err != nil {
		return "", err
	}
	req, err := s.BuildOrderRequest(cart, customer, orderType, paymentMethod)
	if err != nil {
		cart.finishCheckout(false)
		return "", err
	}

	orderNo, err := s.Submitter.Submit(ctx, req)
	if err != nil {
		cart.finishCheckout(false)
		return "", fmt.Errorf("order submission failed: %w", err)
	}
	cart.finishCheckout(true)
	return orderNo, nil
}

// SecurityHash is the tamper-evidence marker over the canonical concatenation
// of the order fields, the serialized items and the shared secret. The order
// endpoint recomputes it over the received payload.
func SecurityHash(req *OrderRequest, secret string) string {
	items, _ := json.Marshal(req.Items)
	payload := fmt.Sprintf("%d%s%s%s%s%s%d%s",
		req.BranchID, req.OrderType, req.CustomerName, req.CustomerPhone,
		req.PaymentMethod, items, req.Timestamp, secret)
	sum := sha256.Sum256([]byte(payload))
	return hex.EncodeToString(sum[:])
}

func flattenOptions(opts DisplayOptions) []OrderRequestOption {
	out := []OrderRequestOption{}
	for _, t := range opts.Added {
		out = append(out, OrderRequestOption{
			OptionID: t.OptionID, OptionName: t.Name, Quantity: t.Quantity, UnitPrice: t.Price, Action: "add",
		})
	}
	for _, t := range opts.Removed {
		out = append(out, OrderRequestOption{
			OptionID: t.OptionID, OptionName: t.Name, Quantity: 1, UnitPrice: 0, Action: "remove",
		})
	}
	if opts.Side != nil {
		out = append(out, OrderRequestOption{
			OptionID: opts.Side.OptionID, OptionName: opts.Side.Name, Quantity: 1, UnitPrice: opts.Side.Price, Action: "add",
		})
	}
	if opts.Drink != nil {
		out = append(out, OrderRequestOption{
			OptionID: opts.Drink.OptionID, OptionName: opts.Drink.Name, Quantity: 1, UnitPrice: opts.Drink.Price, Action: "add",
		})
	}
	return out
}

// itemType resolves the category for the wire. Lines built by AddLine always
// carry one, but bare side/drink quick-adds historically did not, so the
// fixed fallback stays.
func itemType(l *CartLine) string {
	if l.Category != "" {
		return l.Category
	}
	return entity.CategorySide
}
