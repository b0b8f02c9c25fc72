package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/shstksdbs/ERP-Project-sub001/pkg/resp"
	"github.com/shstksdbs/ERP-Project-sub001/services"
	"github.com/shstksdbs/ERP-Project-sub001/utils"
)

type AuthController struct {
	Svc *services.AuthService
}

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ctl.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

// GET /api/auth/me
func (ctl *AuthController) Me(c *gin.Context) {
	user, err := ctl.Svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	resp.OK(c, user)
}
