package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shstksdbs/ERP-Project-sub001/entity"
	"github.com/shstksdbs/ERP-Project-sub001/pkg/resp"
	"github.com/shstksdbs/ERP-Project-sub001/services"
)

type OptionController struct {
	Svc *services.OptionService
}

func NewOptionController(s *services.OptionService) *OptionController {
	return &OptionController{Svc: s}
}

// GET /api/menu-options
func (ctl *OptionController) List(c *gin.Context) {
	opts, err := ctl.Svc.GetAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": opts})
}

// GET /api/menu-options/category/:category (topping|side|drink)
func (ctl *OptionController) ListByCategory(c *gin.Context) {
	opts, err := ctl.Svc.GetByCategory(c.Param("category"))
	if errors.Is(err, services.ErrInvalidCategory) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": opts})
}

type optionIn struct {
	OptionName     string `json:"optionName" binding:"required"`
	Category       string `json:"category" binding:"required"`
	Price          int64  `json:"price" binding:"min=0"`
	QuantityPriced bool   `json:"quantityPriced"`
	MaxQuantity    int    `json:"maxQuantity"`
	IsDefault      bool   `json:"isDefault"`
	SortOrder      int    `json:"sortOrder"`
}

// POST /api/menu-options (hq)
func (ctl *OptionController) Create(c *gin.Context) {
	var in optionIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o := entity.Option{
		OptionName: in.OptionName, Category: in.Category, Price: in.Price,
		QuantityPriced: in.QuantityPriced, MaxQuantity: in.MaxQuantity,
		IsDefault: in.IsDefault, SortOrder: in.SortOrder,
	}
	if err := ctl.Svc.Create(&o); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, o)
}

// PATCH /api/menu-options/:id (hq)
func (ctl *OptionController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	o, err := ctl.Svc.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "option not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var in optionIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o.OptionName = in.OptionName
	o.Category = in.Category
	o.Price = in.Price
	o.QuantityPriced = in.QuantityPriced
	o.MaxQuantity = in.MaxQuantity
	o.IsDefault = in.IsDefault
	o.SortOrder = in.SortOrder
	if err := ctl.Svc.Update(o); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, o)
}

// DELETE /api/menu-options/:id (hq)
func (ctl *OptionController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
