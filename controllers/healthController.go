package controllers

import (
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
)

// HealthController proxies the auxiliary upstream endpoints.
type HealthController struct {
	svc services.DenunciasService
}

func NewHealthController(svc services.DenunciasService) *HealthController {
	return &HealthController{svc: svc}
}

func (hc *HealthController) Health(c *gin.Context) {
	respond(c, hc.svc.CheckHealth(c.Request.Context()))
}

func (hc *HealthController) Docs(c *gin.Context) {
	respond(c, hc.svc.FetchAPIDocs(c.Request.Context()))
}
