package routes

import (
	"ecodenuncias-web/controllers"
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
)

// AdminRoutes sets up the status-management routes.
func AdminRoutes(r *gin.Engine, svc services.DenunciasService) {
	ac := controllers.NewAdminController(svc)

	admin := r.Group("/api/denuncias")
	{
		admin.PUT("/:id/estado", ac.ActualizarEstado)
		admin.GET("/:id/historial", ac.ObtenerHistorial)
	}
}
