package services

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrCheckoutInFlight = errors.New("checkout already in progress")
	ErrLineNotFound     = errors.New("cart line not found")
)

type CartState int

const (
	CartEmpty CartState = iota
	CartBuilding
	CartCheckingOut
	CartSubmitted
)

func (s CartState) String() string {
	switch s {
	case CartEmpty:
		return "empty"
	case CartBuilding:
		return "building"
	case CartCheckingOut:
		return "checkingOut"
	case CartSubmitted:
		return "submitted"
	}
	return "unknown"
}

// CartLine is one priced entry. Everything except Qty/Total is frozen at add
// time: the adapter in AddLine builds the one canonical shape, so readers never
// fall back between a nested menu object and flat fields.
type CartLine struct {
	ID          string         `json:"id"`
	MenuID      uint           `json:"menuId"`
	MenuName    string         `json:"menuName"`
	Category    string         `json:"category"`
	BasePrice   int64          `json:"basePrice"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Qty         int            `json:"qty"`
	UnitPrice   int64          `json:"unitPrice"`
	Total       int64          `json:"total"`
	DisplayName string         `json:"displayName"`
	Labels      []string       `json:"labels"`
	Options     DisplayOptions `json:"options"`
}

// Cart holds one kiosk session's lines and drives the checkout state machine:
// empty -> building -> checkingOut -> submitted, with failed checkouts dropping
// back to building with the lines untouched.
type Cart struct {
	mu       sync.Mutex
	branchID uint
	lines    []*CartLine
	state    CartState
}

func NewCart(branchID uint) *Cart {
	return &Cart{branchID: branchID}
}

func (c *Cart) BranchID() uint { return c.branchID }

func (c *Cart) State() CartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Lines returns a snapshot copy of the line list.
func (c *Cart) Lines() []*CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is recomputed from the lines on every call; it is never cached.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalLocked()
}

func (c *Cart) totalLocked() int64 {
	var sum int64
	for _, l := range c.lines {
		sum += l.Total
	}
	return sum
}

// AddLine prices the selection and appends a frozen line. Unknown option ids
// price as zero and are logged as a data-integrity warning.
func (c *Cart) AddLine(menu *entity.Menu, sel *OptionSelection, catalog OptionCatalog, qty int) (*CartLine, error) {
	if qty <= 0 {
		qty = 1
	}
	if missing := MissingOptionIDs(sel, catalog); len(missing) > 0 {
		log.Printf("cart: menu %d references unknown option ids %v, pricing them as zero", menu.ID, missing)
	}

	unit := ComputeUnitPrice(menu, sel, catalog)
	opts := NormalizeSelection(menu, sel, catalog)

	line := &CartLine{
		ID:          uuid.NewString(),
		MenuID:      menu.ID,
		MenuName:    menu.MenuName,
		Category:    menu.Category,
		BasePrice:   menu.Price,
		Description: menu.Description,
		Image:       menu.Image,
		Qty:         qty,
		UnitPrice:   unit,
		Total:       ComputeTotalPrice(unit, qty),
		DisplayName: menu.MenuName,
		Labels:      optionLabels(opts),
		Options:     opts,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == CartCheckingOut {
		return nil, ErrCheckoutInFlight
	}
	c.lines = append(c.lines, line)
	c.state = CartBuilding
	return line, nil
}

// UpdateQuantity applies a delta to a line's quantity. A result of zero or less
// removes the line; the unit price is never recomputed here.
func (c *Cart) UpdateQuantity(lineID string, delta int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == CartCheckingOut {
		return ErrCheckoutInFlight
	}
	for i, l := range c.lines {
		if l.ID != lineID {
			continue
		}
		q := l.Qty + delta
		if q <= 0 {
			c.removeAtLocked(i)
			return nil
		}
		l.Qty = q
		l.Total = ComputeTotalPrice(l.UnitPrice, q)
		return nil
	}
	return ErrLineNotFound
}

func (c *Cart) RemoveLine(lineID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == CartCheckingOut {
		return ErrCheckoutInFlight
	}
	for i, l := range c.lines {
		if l.ID == lineID {
			c.removeAtLocked(i)
			return nil
		}
	}
	return ErrLineNotFound
}

func (c *Cart) removeAtLocked(i int) {
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	if len(c.lines) == 0 {
		c.state = CartEmpty
	}
}

// beginCheckout moves building -> checkingOut. Only one checkout may be in
// flight; re-entrant calls fail without touching the cart.
func (c *Cart) beginCheckout() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == CartCheckingOut {
		return ErrCheckoutInFlight
	}
	if len(c.lines) == 0 {
		return ErrEmptyCart
	}
	c.state = CartCheckingOut
	return nil
}

// finishCheckout resolves an in-flight checkout. Success clears the lines and
// parks the cart in submitted; failure returns to building with the lines intact.
func (c *Cart) finishCheckout(ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != CartCheckingOut {
		return
	}
	if ok {
		c.lines = nil
		c.state = CartSubmitted
		return
	}
	c.state = CartBuilding
}

func optionLabels(opts DisplayOptions) []string {
	labels := []string{}
	for _, t := range opts.Added {
		if t.Quantity > 1 {
			labels = append(labels, fmt.Sprintf("+%s x%d", t.Name, t.Quantity))
		} else {
			labels = append(labels, "+"+t.Name)
		}
	}
	for _, t := range opts.Removed {
		labels = append(labels, "-"+t.Name)
	}
	if opts.Side != nil {
		labels = append(labels, opts.Side.Name)
	}
	if opts.Drink != nil {
		labels = append(labels, opts.Drink.Name)
	}
	return labels
}

// CartService keeps one cart per kiosk session. Sessions are identified by an
// opaque token; no cart is ever shared across sessions.
type CartService struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[string]*Cart)}
}

// CreateSession opens a new cart bound to a branch and returns its token.
func (s *CartService) CreateSession(branchID uint) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.carts[id] = NewCart(branchID)
	s.mu.Unlock()
	return id
}

func (s *CartService) Get(sessionID string) (*Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return c, nil
}

// Drop discards a session, e.g. when the kiosk flow is abandoned.
func (s *CartService) Drop(sessionID string) {
	s.mu.Lock()
	delete(s.carts, sessionID)
	s.mu.Unlock()
}
