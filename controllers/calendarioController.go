package controllers

import (
	"time"

	"ecodenuncias-web/calendar"
	"ecodenuncias-web/models"
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
)

// CalendarioController serves the weekly calendar view: the weekly summary
// list organized into Monday-to-Sunday day buckets.
type CalendarioController struct {
	svc services.DenunciasService
}

func NewCalendarioController(svc services.DenunciasService) *CalendarioController {
	return &CalendarioController{svc: svc}
}

// CalendarioSemanal is the calendar page payload.
type CalendarioSemanal struct {
	Resumen      models.Resumen           `json:"resumen"`
	SemanaInicio string                   `json:"semana_inicio"`
	Dias         []calendar.DiaCalendario `json:"dias"`
}

// Semanal handles GET /calendario?fecha=YYYY-MM-DD. The reference date anchors
// the week; it defaults to today. Week navigation in the UI is just this
// endpoint called with a date seven days earlier or later.
func (cc *CalendarioController) Semanal(c *gin.Context) {
	referencia := time.Now()
	if v := c.Query("fecha"); v != "" {
		f, err := time.ParseInLocation(models.FormatoFechaISO, v, time.Local)
		if err != nil {
			respond(c, models.ErrorDeValidacion[CalendarioSemanal]("Fecha de referencia inválida, use YYYY-MM-DD", "fecha"))
			return
		}
		referencia = f
	}

	env := cc.svc.FetchResumenSemanal(c.Request.Context(), services.ResumenParams{Limite: 50})
	if !env.Success || env.Data == nil {
		respond(c, models.Envelope[CalendarioSemanal]{
			Success:   false,
			Message:   env.Message,
			ErrorCode: env.ErrorCode,
			Errores:   env.Errores,
		})
		return
	}

	dias := calendar.OrganizarPorDias(env.Data.Denuncias, referencia)
	respond(c, models.Ok("Calendario semanal generado exitosamente", CalendarioSemanal{
		Resumen:      env.Data.Resumen,
		SemanaInicio: calendar.InicioDeSemana(referencia).Format(models.FormatoFechaISO),
		Dias:         dias,
	}))
}
