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

type BranchController struct {
	Svc *services.BranchService
}

func NewBranchController(s *services.BranchService) *BranchController {
	return &BranchController{Svc: s}
}

// GET /api/branches
func (ctl *BranchController) List(c *gin.Context) {
	branches, err := ctl.Svc.GetAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, branches)
}

// GET /api/branches/:id
func (ctl *BranchController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	b, err := ctl.Svc.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "branch not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

type branchIn struct {
	BranchName string `json:"branchName" binding:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
}

// POST /api/branches (hq)
func (ctl *BranchController) Create(c *gin.Context) {
	var in branchIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b := entity.Branch{BranchName: in.BranchName, Address: in.Address, Phone: in.Phone, Status: in.Status}
	if b.Status == "" {
		b.Status = "open"
	}
	if err := ctl.Svc.Create(&b); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, b)
}

// PATCH /api/branches/:id (hq)
func (ctl *BranchController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	b, err := ctl.Svc.GetByID(uint(id))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.NotFound(c, "branch not found")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	var in branchIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	b.BranchName = in.BranchName
	b.Address = in.Address
	b.Phone = in.Phone
	if in.Status != "" {
		b.Status = in.Status
	}
	if err := ctl.Svc.Update(b); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, b)
}

// DELETE /api/branches/:id (hq)
func (ctl *BranchController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Svc.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
