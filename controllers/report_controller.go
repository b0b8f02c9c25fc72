package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shstksdbs/ERP-Project-sub001/pkg/resp"
	"github.com/shstksdbs/ERP-Project-sub001/services"
	"github.com/shstksdbs/ERP-Project-sub001/utils"
)

type ReportController struct {
	Svc *services.ReportService
}

func NewReportController(s *services.ReportService) *ReportController {
	return &ReportController{Svc: s}
}

// GET /api/reports/sales?branchId=&from=&to= (console)
// from/to are YYYY-MM-DD; to is exclusive and defaults to tomorrow.
func (ctl *ReportController) Sales(c *gin.Context) {
	branchID := utils.CurrentBranchID(c)
	if utils.CurrentRole(c) == "hq" {
		id, _ := strconv.Atoi(c.Query("branchId"))
		branchID = uint(id)
	}
	if branchID == 0 {
		resp.BadRequest(c, "branchId is required")
		return
	}

	from, err := time.Parse("2006-01-02", c.DefaultQuery("from", time.Now().AddDate(0, 0, -30).Format("2006-01-02")))
	if err != nil {
		resp.BadRequest(c, "invalid from date")
		return
	}
	to, err := time.Parse("2006-01-02", c.DefaultQuery("to", time.Now().AddDate(0, 0, 1).Format("2006-01-02")))
	if err != nil {
		resp.BadRequest(c, "invalid to date")
		return
	}

	rows, err := ctl.Svc.DailySales(branchID, from, to)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"branchId": branchID, "rows": rows})
}
