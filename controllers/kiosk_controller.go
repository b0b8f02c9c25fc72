package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/pkg/resp"
	"github.com/shstksdbs/ERP-Project-sub001/services"
)

// KioskController exposes the session cart to the kiosk UI: open a session,
// build the cart, check out.
type KioskController struct {
	Carts    *services.CartService
	Menus    *services.MenuService
	Checkout *services.CheckoutService
}

func NewKioskController(carts *services.CartService, menus *services.MenuService, checkout *services.CheckoutService) *KioskController {
	return &KioskController{Carts: carts, Menus: menus, Checkout: checkout}
}

// POST /api/kiosk/sessions
func (ctl *KioskController) StartSession(c *gin.Context) {
	var in struct {
		BranchID uint `json:"branchId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	id := ctl.Carts.CreateSession(in.BranchID)
	resp.Created(c, gin.H{"sessionId": id, "branchId": in.BranchID})
}

// DELETE /api/kiosk/sessions/:sid
func (ctl *KioskController) EndSession(c *gin.Context) {
	ctl.Carts.Drop(c.Param("sid"))
	resp.OK(c, gin.H{"ended": true})
}

// GET /api/kiosk/sessions/:sid/cart
func (ctl *KioskController) GetCart(c *gin.Context) {
	cart, err := ctl.Carts.Get(c.Param("sid"))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}
	resp.OK(c, gin.H{
		"branchId": cart.BranchID(),
		"state":    cart.State().String(),
		"lines":    cart.Lines(),
		"total":    cart.Total(),
	})
}

type addLineIn struct {
	MenuID   uint `json:"menuId" binding:"required"`
	Qty      int  `json:"qty"`
	Toppings []struct {
		OptionID uint   `json:"optionId" binding:"required"`
		Action   string `json:"action" binding:"required,oneof=add remove"`
		Quantity int    `json:"quantity"`
	} `json:"toppings"`
	SideID  uint `json:"sideId"`
	DrinkID uint `json:"drinkId"`
}

// POST /api/kiosk/sessions/:sid/cart/lines
func (ctl *KioskController) AddLine(c *gin.Context) {
	cart, err := ctl.Carts.Get(c.Param("sid"))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}

	var in addLineIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	menu, err := ctl.Menus.GetByID(in.MenuID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	// The option catalog must be loaded before the selection is applied, so
	// unknown ids surface as warnings instead of silently mispricing.
	opts, err := ctl.Menus.OptionsFor(menu.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	catalog := services.NewOptionCatalog(opts)

	sel := services.NewOptionSelection()
	for _, t := range in.Toppings {
		switch t.Action {
		case "add":
			sel.ToggleAdd(t.OptionID)
			if opt, ok := catalog[t.OptionID]; ok && t.Quantity > 0 {
				sel.SetQuantity(&opt, t.Quantity)
			}
		case "remove":
			sel.ToggleRemove(t.OptionID)
		}
	}
	sel.SideID = in.SideID
	sel.DrinkID = in.DrinkID

	line, err := cart.AddLine(menu, sel, catalog, in.Qty)
	if errors.Is(err, services.ErrCheckoutInFlight) {
		resp.Conflict(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, line)
}

// PATCH /api/kiosk/sessions/:sid/cart/lines/:lineId
func (ctl *KioskController) UpdateLine(c *gin.Context) {
	cart, err := ctl.Carts.Get(c.Param("sid"))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}

	var in struct {
		Delta int `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err = cart.UpdateQuantity(c.Param("lineId"), in.Delta)
	switch {
	case errors.Is(err, services.ErrLineNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCheckoutInFlight):
		resp.Conflict(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"lines": cart.Lines(), "total": cart.Total()})
	}
}

// DELETE /api/kiosk/sessions/:sid/cart/lines/:lineId
func (ctl *KioskController) RemoveLine(c *gin.Context) {
	cart, err := ctl.Carts.Get(c.Param("sid"))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}

	err = cart.RemoveLine(c.Param("lineId"))
	switch {
	case errors.Is(err, services.ErrLineNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCheckoutInFlight):
		resp.Conflict(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"lines": cart.Lines(), "total": cart.Total()})
	}
}

type checkoutIn struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerPhone string `json:"customerPhone" binding:"required"`
	OrderType     string `json:"orderType" binding:"required,oneof=takeout dine-in"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// POST /api/kiosk/sessions/:sid/checkout
func (ctl *KioskController) CheckoutCart(c *gin.Context) {
	cart, err := ctl.Carts.Get(c.Param("sid"))
	if err != nil {
		resp.NotFound(c, err.Error())
		return
	}

	var in checkoutIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	customer := services.CustomerInfo{Name: in.CustomerName, Phone: in.CustomerPhone}
	orderNo, err := ctl.Checkout.Checkout(c.Request.Context(), cart, customer, in.OrderType, in.PaymentMethod)
	switch {
	case errors.Is(err, services.ErrNoBranchSelected),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrIncompleteCustomerInfo):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCheckoutInFlight):
		resp.Conflict(c, err.Error())
	case err != nil:
		// submission failure: the cart is preserved for retry
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"orderNo": orderNo})
	}
}
