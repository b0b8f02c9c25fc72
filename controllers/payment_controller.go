package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/shstksdbs/ERP-Project-sub001/pkg/resp"
	"github.com/shstksdbs/ERP-Project-sub001/services"
)

type PaymentController struct {
	Svc *services.PaymentService
}

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

// POST /api/payments/ready — hands the priced order to the gateway and
// returns the redirect URL the kiosk sends the customer to.
func (ctl *PaymentController) Ready(c *gin.Context) {
	var in services.PaymentReadyIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.Ready(c.Request.Context(), &in)
	if errors.Is(err, services.ErrPaymentUnavailable) {
		// blocking for checkout: there is no fallback payment path
		resp.ServerError(c, err)
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}
