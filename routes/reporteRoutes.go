package routes

import (
	"ecodenuncias-web/controllers"
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
)

// ReporteRoutes sets up the analytics and auxiliary routes.
func ReporteRoutes(r *gin.Engine, svc services.DenunciasService) {
	rc := controllers.NewReporteController(svc)
	hc := controllers.NewHealthController(svc)

	reportes := r.Group("/api/reportes")
	{
		reportes.GET("", rc.General)
		reportes.GET("/categorias", rc.Categorias)
		reportes.GET("/ubicaciones", rc.Ubicaciones)
		reportes.GET("/dashboard", rc.Dashboard)
		reportes.GET("/exportar", rc.Exportar)
	}

	r.GET("/api/health", hc.Health)
	r.GET("/api/docs", hc.Docs)
}
