package controllers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"ecodenuncias-web/models"
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ReporteController serves the analytics dashboard and the export endpoint.
type ReporteController struct {
	svc services.DenunciasService
}

func NewReporteController(svc services.DenunciasService) *ReporteController {
	return &ReporteController{svc: svc}
}

func periodoDeQuery(c *gin.Context) services.PeriodoParams {
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "0"))
	if limite < 0 {
		limite = 0
	}
	return services.PeriodoParams{
		FechaInicio: c.Query("fecha_inicio"),
		FechaFin:    c.Query("fecha_fin"),
		Limite:      limite,
	}
}

// General handles GET /reportes.
func (rc *ReporteController) General(c *gin.Context) {
	respond(c, rc.svc.FetchReporteGeneral(c.Request.Context(), periodoDeQuery(c)))
}

// Categorias handles GET /reportes/categorias.
func (rc *ReporteController) Categorias(c *gin.Context) {
	respond(c, rc.svc.FetchReporteCategorias(c.Request.Context(), periodoDeQuery(c)))
}

// Ubicaciones handles GET /reportes/ubicaciones.
func (rc *ReporteController) Ubicaciones(c *gin.Context) {
	respond(c, rc.svc.FetchReporteUbicaciones(c.Request.Context(), periodoDeQuery(c)))
}

// Dashboard handles GET /reportes/dashboard: the three analytics reports are
// fetched concurrently and joined when all settle. A failed fetch does not
// discard the others; each section carries its own envelope.
func (rc *ReporteController) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	p := periodoDeQuery(c)

	var (
		general     models.Envelope[models.ReporteGeneral]
		categorias  models.Envelope[models.ReporteCategorias]
		ubicaciones models.Envelope[models.ReporteUbicaciones]
	)
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		general = rc.svc.FetchReporteGeneral(ctx, p)
	}()
	go func() {
		defer wg.Done()
		categorias = rc.svc.FetchReporteCategorias(ctx, p)
	}()
	go func() {
		defer wg.Done()
		ubicaciones = rc.svc.FetchReporteUbicaciones(ctx, p)
	}()
	wg.Wait()

	for _, fallo := range []struct {
		nombre  string
		success bool
		mensaje string
	}{
		{"general", general.Success, general.Message},
		{"categorias", categorias.Success, categorias.Message},
		{"ubicaciones", ubicaciones.Success, ubicaciones.Message},
	} {
		if !fallo.success {
			log.Printf("reporte %s no disponible: %s", fallo.nombre, fallo.mensaje)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     general.Success || categorias.Success || ubicaciones.Success,
		"message":     "Panel de reportes generado",
		"general":     general,
		"categorias":  categorias,
		"ubicaciones": ubicaciones,
	})
}

// Exportar handles GET /reportes/exportar?formato=json|csv|xlsx&tipo=general.
// json relays the structured envelope, csv streams the upstream's opaque blob,
// and xlsx is rendered locally from the general report.
func (rc *ReporteController) Exportar(c *gin.Context) {
	formato := c.DefaultQuery("formato", "json")
	tipo := c.DefaultQuery("tipo", "general")

	switch formato {
	case "xlsx":
		rc.exportarXLSX(c)
	case "csv":
		env := rc.svc.ExportarReporte(c.Request.Context(), services.ExportParams{
			Formato:     "csv",
			Tipo:        tipo,
			FechaInicio: c.Query("fecha_inicio"),
			FechaFin:    c.Query("fecha_fin"),
		})
		if !env.Success || len(env.File) == 0 {
			respond(c, env)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=reporte_%s_%s.csv", tipo, time.Now().Format("20060102")))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", env.File)
	default:
		respond(c, rc.svc.ExportarReporte(c.Request.Context(), services.ExportParams{
			Formato:     "json",
			Tipo:        tipo,
			FechaInicio: c.Query("fecha_inicio"),
			FechaFin:    c.Query("fecha_fin"),
		}))
	}
}

func (rc *ReporteController) exportarXLSX(c *gin.Context) {
	env := rc.svc.FetchReporteGeneral(c.Request.Context(), services.PeriodoParams{
		FechaInicio: c.Query("fecha_inicio"),
		FechaFin:    c.Query("fecha_fin"),
	})
	if !env.Success || env.Data == nil {
		respond(c, models.Envelope[models.CreacionResultado]{
			Success:   false,
			Message:   env.Message,
			ErrorCode: env.ErrorCode,
		})
		return
	}

	datos, err := reporteGeneralXLSX(*env.Data)
	if err != nil {
		log.Printf("error generando XLSX: %v", err)
		respond(c, models.Envelope[models.CreacionResultado]{
			Success: false,
			Message: "No se pudo generar el archivo XLSX",
		})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=reporte_general_%s.xlsx", time.Now().Format("20060102")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", datos)
}

// reporteGeneralXLSX renders the general analytics report into a workbook:
// one sheet of overall statistics plus category and location breakdowns.
func reporteGeneralXLSX(r models.ReporteGeneral) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const hoja = "Reporte General"
	f.SetSheetName("Sheet1", hoja)

	filas := [][]any{
		{"Reporte General de Denuncias"},
		{"Período", r.Periodo.FechaInicio + " a " + r.Periodo.FechaFin},
		{"Generado", r.Periodo.FechaGeneracion},
		{},
		{"Total denuncias", r.EstadisticasGenerales.TotalDenuncias},
		{"Pendientes", r.EstadisticasGenerales.DenunciasPendientes},
		{"En proceso", r.EstadisticasGenerales.DenunciasEnProceso},
		{"Resueltas", r.EstadisticasGenerales.DenunciasResueltas},
		{"Promedio días de resolución", r.EstadisticasGenerales.PromedioDiasResolucion},
		{"Tasa de resolución", r.EstadisticasGenerales.TasaResolucion},
	}
	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(hoja, celda, &fila); err != nil {
			return nil, err
		}
	}

	const categorias = "Categorías"
	if _, err := f.NewSheet(categorias); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(categorias, "A1", &[]any{"Categoría", "Total"}); err != nil {
		return nil, err
	}
	for i, cat := range r.TopCategorias {
		fila := []any{models.CategoriaLabel(cat.Categoria), cat.Total}
		if err := f.SetSheetRow(categorias, fmt.Sprintf("A%d", i+2), &fila); err != nil {
			return nil, err
		}
	}

	const ubicaciones = "Ubicaciones"
	if _, err := f.NewSheet(ubicaciones); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(ubicaciones, "A1", &[]any{"Ubicación", "Total"}); err != nil {
		return nil, err
	}
	for i, ub := range r.TopUbicaciones {
		fila := []any{ub.Ubicacion, ub.Total}
		if err := f.SetSheetRow(ubicaciones, fmt.Sprintf("A%d", i+2), &fila); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
