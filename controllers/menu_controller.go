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

type MenuController struct {
	Svc *services.MenuService
}

func NewMenuController(s *services.MenuService) *MenuController {
	return &MenuController{Svc: s}
}

// GET /api/menus?category=
func (ctl *MenuController) List(c *gin.Context) {
	menus, err := ctl.Svc.List(c.Query("category"))
	if errors.Is(err, services.ErrInvalidCategory) {
		resp.BadRequest(c, err.Error())
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, menus)
}

// GET /api/menus/:id
func (ctl *MenuController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := ctl.Svc.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, m)
}

// GET /api/menu-categories
func (ctl *MenuController) Categories(c *gin.Context) {
	resp.OK(c, entity.MenuCategories)
}

// GET /api/menus/:id/options
func (ctl *MenuController) ListOptions(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	opts, err := ctl.Svc.OptionsFor(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": opts})
}

type menuIn struct {
	MenuName    string `json:"menuName" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Price       int64  `json:"price" binding:"min=0"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// POST /api/menus (hq)
func (ctl *MenuController) Create(c *gin.Context) {
	var in menuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m := entity.Menu{
		MenuName: in.MenuName, Category: in.Category, Price: in.Price,
		Description: in.Description, Image: in.Image,
	}
	if err := ctl.Svc.Create(&m); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, m)
}

// PATCH /api/menus/:id (hq)
func (ctl *MenuController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	m, err := ctl.Svc.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "menu not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var in menuIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	m.MenuName = in.MenuName
	m.Category = in.Category
	m.Price = in.Price
	m.Description = in.Description
	m.Image = in.Image
	if err := ctl.Svc.Update(m); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, m)
}

// DELETE /api/menus/:id (hq)
func (ctl *MenuController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}

// POST /api/menus/:id/options/:optionId (hq)
func (ctl *MenuController) AttachOption(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("id"))
	optID, _ := strconv.Atoi(c.Param("optionId"))

	// body is optional and may only carry a sort order
	var body struct {
		SortOrder int `json:"sortOrder"`
	}
	_ = c.ShouldBindJSON(&body)

	if err := ctl.Svc.AttachOption(uint(menuID), uint(optID), body.SortOrder); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "option attached"})
}

// DELETE /api/menus/:id/options/:optionId (hq)
func (ctl *MenuController) DetachOption(c *gin.Context) {
	menuID, _ := strconv.Atoi(c.Param("id"))
	optID, _ := strconv.Atoi(c.Param("optionId"))

	if err := ctl.Svc.DetachOption(uint(menuID), uint(optID)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "option detached"})
}
