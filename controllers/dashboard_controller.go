package controllers

import (
	"github.com/SARVESHYOGI/store-rating-system/pkg/resp"
	"github.com/SARVESHYOGI/store-rating-system/services"
	"github.com/SARVESHYOGI/store-rating-system/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	dashboards *services.DashboardService
}

func NewDashboardController(dashboards *services.DashboardService) *DashboardController {
	return &DashboardController{dashboards: dashboards}
}

// GET /dashboard/admin (admin, via route guard)
func (dc *DashboardController) Admin(c *gin.Context) {
	overview, err := dc.dashboards.Admin()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, overview)
}

// GET /dashboard/store-owner (owner or admin, via route guard; scoped
// to the requester's own stores)
func (dc *DashboardController) Owner(c *gin.Context) {
	ident, ok := utils.CurrentIdentity(c)
	if !ok {
		resp.Unauthorized(c, "missing or invalid token")
		return
	}
	overview, err := dc.dashboards.Owner(ident)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, overview)
}
