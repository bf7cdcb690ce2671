package routes

import (
	"ecodenuncias-web/controllers"
	"ecodenuncias-web/middlewares"
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
)

// DenunciaRoutes sets up the citizen-facing report routes.
func DenunciaRoutes(r *gin.Engine, svc services.DenunciasService, rateLimit int) {
	dc := controllers.NewDenunciaController(svc)
	cc := controllers.NewCalendarioController(svc)
	limiter := middlewares.DenunciaRateLimiter(rateLimit)

	denuncias := r.Group("/api/denuncias")
	{
		denuncias.GET("/resumen-semanal", dc.ResumenSemanal)
		denuncias.GET("/:id", dc.ObtenerDenuncia)
		denuncias.POST("", limiter, dc.CrearDenuncia)
	}

	comentarios := r.Group("/api/comentarios")
	{
		comentarios.GET("/:id", dc.ObtenerComentarios)
		comentarios.POST("", limiter, dc.CrearComentario)
	}

	r.GET("/api/calendario", cc.Semanal)
	r.GET("/api/catalogos", dc.Etiquetas)
}
