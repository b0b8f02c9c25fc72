package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/shstksdbs/ERP-Project-sub001/pkg/resp"
	"github.com/shstksdbs/ERP-Project-sub001/services"
	"github.com/shstksdbs/ERP-Project-sub001/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /api/orders/create — the order submission endpoint the kiosk posts to.
func (ctl *OrderController) Create(c *gin.Context) {
	var req services.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.Create(&req)
	switch {
	case errors.Is(err, services.ErrBranchNotFound),
		errors.Is(err, services.ErrEmptyCart):
		resp.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrInvalidSecurityHash),
		errors.Is(err, services.ErrPriceMismatch):
		resp.Forbidden(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, out)
	}
}

// branchScope resolves which branch the caller may see: branch accounts are
// pinned to their own branch, hq picks via ?branchId=.
func branchScope(c *gin.Context) uint {
	if utils.CurrentRole(c) == "hq" {
		id, _ := strconv.Atoi(c.Query("branchId"))
		return uint(id)
	}
	return utils.CurrentBranchID(c)
}

// GET /api/orders?status=&page=&limit= (console)
func (ctl *OrderController) List(c *gin.Context) {
	branchID := branchScope(c)
	if branchID == 0 {
		resp.BadRequest(c, "branchId is required")
		return
	}

	var statusID *uint
	if s, err := strconv.Atoi(c.Query("status")); err == nil && s > 0 {
		v := uint(s)
		statusID = &v
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	out, err := ctl.Svc.ListForBranch(branchID, statusID, page, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /api/orders/:id (console)
func (ctl *OrderController) Detail(c *gin.Context) {
	branchID := branchScope(c)
	if branchID == 0 {
		resp.BadRequest(c, "branchId is required")
		return
	}
	id, _ := strconv.Atoi(c.Param("id"))

	o, err := ctl.Svc.DetailForBranch(branchID, uint(id))
	if errors.Is(err, services.ErrOrderNotFound) {
		resp.NotFound(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"order": o, "items": o.Items})
}

// PATCH /api/orders/:id/accept | /complete | /cancel (console)
func (ctl *OrderController) Accept(c *gin.Context)   { ctl.transition(c, ctl.Svc.Accept) }
func (ctl *OrderController) Complete(c *gin.Context) { ctl.transition(c, ctl.Svc.Complete) }
func (ctl *OrderController) Cancel(c *gin.Context)   { ctl.transition(c, ctl.Svc.Cancel) }

func (ctl *OrderController) transition(c *gin.Context, fn func(branchID, orderID uint) error) {
	id, _ := strconv.Atoi(c.Param("id"))
	branchID := uint(0)
	if utils.CurrentRole(c) != "hq" {
		branchID = utils.CurrentBranchID(c)
	}

	err := fn(branchID, uint(id))
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		resp.Conflict(c, err.Error())
	case err != nil:
		resp.ServerError(c, err)
	default:
		resp.OK(c, gin.H{"id": id})
	}
}
