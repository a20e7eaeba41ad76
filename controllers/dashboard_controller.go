package controllers

import (
	"net/http"

	"bonrecords/app"

	"github.com/gin-gonic/gin"
)

type DashboardController struct{ *Srv }

func NewDashboardController(s *Srv) *DashboardController { return &DashboardController{Srv: s} }

// GET /api/dashboard
func (dc *DashboardController) Stats(c *gin.Context) {
	stats, err := dc.Repo.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, app.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}
