package controllers

import (
	"strconv"
	"strings"

	"ecodenuncias-web/models"
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
)

// AdminController serves the status-management panel: updating a report's
// lifecycle state and reading its append-only status history.
type AdminController struct {
	svc services.DenunciasService
}

func NewAdminController(svc services.DenunciasService) *AdminController {
	return &AdminController{svc: svc}
}

// ActualizarEstado handles PUT /denuncias/:id/estado. The new estado must name
// a lifecycle state; notes and responsible user are optional. Every accepted
// update appends one history entry server-side and overwrites the current
// status (last write wins; there is no optimistic-concurrency check).
func (ac *AdminController) ActualizarEstado(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respond(c, models.ErrorDeValidacion[models.CreacionResultado]("Identificador de denuncia inválido", "id"))
		return
	}

	var cambio models.CambioEstado
	if err := c.ShouldBindJSON(&cambio); err != nil {
		respond(c, models.ErrorDeValidacion[models.CreacionResultado]("Debe indicar el nuevo estado", "estado"))
		return
	}
	if !models.EstadoValido(cambio.Estado) {
		env := models.ErrorDeValidacion[models.CreacionResultado]("Estado no válido", "estado")
		env.Errores = []string{"estado debe ser " + strings.Join([]string{
			string(models.Pendiente), string(models.EnProceso), string(models.Resuelta),
		}, ", ")}
		respond(c, env)
		return
	}

	respond(c, ac.svc.ActualizarEstado(c.Request.Context(), id, cambio))
}

// ObtenerHistorial handles GET /denuncias/:id/historial. Entries arrive in
// chronological order of creation.
func (ac *AdminController) ObtenerHistorial(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respond(c, models.ErrorDeValidacion[models.HistorialResponse]("Identificador de denuncia inválido", "id"))
		return
	}
	respond(c, ac.svc.FetchHistorial(c.Request.Context(), id))
}
