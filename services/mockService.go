package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"ecodenuncias-web/models"
)

// MockService stands in for the real API with identical signatures and
// envelope shapes, so the mock/real toggle is invisible to callers. Every
// operation first waits a randomized artificial delay (fixed when min == max)
// to emulate network latency for UI-state handling. Write operations persist
// nothing: each returns a freshly fabricated success envelope and leaves
// subsequent reads untouched.
type MockService struct {
	delayMin time.Duration
	delayMax time.Duration
}

func NewMockService(delayMin, delayMax time.Duration) *MockService {
	if delayMax < delayMin {
		delayMax = delayMin
	}
	return &MockService{delayMin: delayMin, delayMax: delayMax}
}

func (m *MockService) delay(ctx context.Context) {
	d := m.delayMin
	if span := m.delayMax - m.delayMin; span > 0 {
		d += time.Duration(rand.Int63n(int64(span) + 1))
	}
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// FetchResumenSemanal filters the canned dataset: case-insensitive substring
// match on zona, exact match on categoria, truncation to limite. The summary
// counters and the derived date fields (dias_transcurridos, fecha_relativa)
// are recomputed at read time; the authored dataset values never leak out.
func (m *MockService) FetchResumenSemanal(ctx context.Context, p ResumenParams) models.Envelope[models.ResumenSemanal] {
	m.delay(ctx)

	ahora := time.Now()
	denuncias := make([]models.DenunciaResumen, 0, len(mockDenuncias))
	zona := strings.ToLower(strings.TrimSpace(p.Zona))
	for _, d := range mockDenuncias {
		if zona != "" && !strings.Contains(strings.ToLower(d.Ubicacion), zona) {
			continue
		}
		if p.Categoria != "" && d.TipoProblema != p.Categoria {
			continue
		}
		d.DiasTranscurridos = models.DiasDesde(d.Fecha, ahora)
		d.FechaRelativa = models.FechaRelativaLabel(d.DiasTranscurridos)
		denuncias = append(denuncias, d)
	}
	if p.Limite > 0 && len(denuncias) > p.Limite {
		denuncias = denuncias[:p.Limite]
	}

	resumen := models.Resumen{
		Periodo:       "Últimos 7 días",
		FechaConsulta: time.Now().Format("2006-01-02 15:04:05"),
	}
	for _, d := range denuncias {
		resumen.TotalDenuncias++
		switch models.Estado(d.Estado) {
		case models.Pendiente:
			resumen.Pendientes++
		case models.EnProceso:
			resumen.EnProceso++
		case models.Resuelta:
			resumen.Resueltas++
		}
	}

	env := models.Ok("Resumen semanal obtenido exitosamente", models.ResumenSemanal{
		Resumen: resumen,
		FiltrosAplicados: models.FiltrosAplicados{
			Zona:      p.Zona,
			Categoria: p.Categoria,
			Limite:    p.Limite,
		},
		Denuncias: denuncias,
	})
	env.Meta = map[string]any{
		"categorias_disponibles": models.CategoriasDisponibles(),
		"zonas_disponibles":      mockZonas,
	}
	return env
}

func (m *MockService) FetchDenuncia(ctx context.Context, id int) models.Envelope[models.DenunciaDetalle] {
	m.delay(ctx)
	detalle := mockDetalle
	detalle.ID = id
	return models.Ok("Denuncia obtenida exitosamente", detalle)
}

func (m *MockService) FetchComentarios(ctx context.Context, denunciaID, pagina, limite int) models.Envelope[models.ComentariosResponse] {
	m.delay(ctx)
	if pagina < 1 {
		pagina = 1
	}
	if limite < 1 {
		limite = 20
	}

	total := len(mockComentarios)
	totalPaginas := (total + limite - 1) / limite
	if totalPaginas < 1 {
		totalPaginas = 1
	}
	desde := (pagina - 1) * limite
	if desde > total {
		desde = total
	}
	hasta := desde + limite
	if hasta > total {
		hasta = total
	}

	resp := models.ComentariosResponse{
		DenunciaID:  denunciaID,
		Comentarios: append([]models.Comentario{}, mockComentarios[desde:hasta]...),
		Estadisticas: models.EstadisticasComentarios{
			TotalComentarios: total,
			UltimoComentario: mockComentarios[total-1].Fecha,
			PrimerComentario: mockComentarios[0].Fecha,
		},
		Paginacion: models.Paginacion{
			PaginaActual:    pagina,
			TotalPaginas:    totalPaginas,
			LimitePorPagina: limite,
			TotalElementos:  total,
			TieneSiguiente:  pagina < totalPaginas,
			TieneAnterior:   pagina > 1,
		},
	}
	return models.Ok("Comentarios obtenidos exitosamente", resp)
}

func fabricarCreacion(mensaje string) models.Envelope[models.CreacionResultado] {
	return models.Ok(mensaje, models.CreacionResultado{
		ID:        rand.Intn(1000) + 100,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (m *MockService) CrearComentario(ctx context.Context, nc models.NuevoComentario) models.Envelope[models.CreacionResultado] {
	m.delay(ctx)
	if strings.TrimSpace(nc.NombreUsuario) == "" || strings.TrimSpace(nc.Comentario) == "" {
		return models.ErrorDeValidacion[models.CreacionResultado](
			"Nombre de usuario y comentario son obligatorios",
			"nombre_usuario", "comentario",
		)
	}
	return fabricarCreacion("Comentario creado exitosamente")
}

func (m *MockService) CrearDenuncia(ctx context.Context, d models.NuevaDenuncia) models.Envelope[models.CreacionResultado] {
	m.delay(ctx)
	if faltantes := camposFaltantes(d); len(faltantes) > 0 {
		return models.ErrorDeValidacion[models.CreacionResultado](
			"Por favor completa todos los campos obligatorios", faltantes...)
	}
	return fabricarCreacion("Denuncia registrada exitosamente")
}

func (m *MockService) ActualizarEstado(ctx context.Context, id int, cambio models.CambioEstado) models.Envelope[models.CreacionResultado] {
	m.delay(ctx)
	if !models.EstadoValido(cambio.Estado) {
		return models.Envelope[models.CreacionResultado]{
			Success:   false,
			Message:   fmt.Sprintf("Estado no válido: %s", cambio.Estado),
			ErrorCode: models.ErrorValidacion,
			Errores:   []string{"estado debe ser pendiente, en_proceso o resuelta"},
		}
	}
	env := fabricarCreacion("Estado actualizado exitosamente")
	env.Data.ID = id
	return env
}

func (m *MockService) FetchHistorial(ctx context.Context, id int) models.Envelope[models.HistorialResponse] {
	m.delay(ctx)
	return models.Ok("Historial obtenido exitosamente", models.HistorialResponse{
		DenunciaID: id,
		Historial:  append([]models.HistorialEstado{}, mockHistorial...),
	})
}

func (m *MockService) FetchReporteGeneral(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteGeneral] {
	m.delay(ctx)
	return models.Ok("Reporte general generado exitosamente", mockReporteGeneral)
}

func (m *MockService) FetchReporteCategorias(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteCategorias] {
	m.delay(ctx)
	return models.Ok("Reporte por categorías generado exitosamente", mockReporteCategorias)
}

func (m *MockService) FetchReporteUbicaciones(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteUbicaciones] {
	m.delay(ctx)
	return models.Ok("Reporte por ubicaciones generado exitosamente", mockReporteUbicaciones)
}

func (m *MockService) ExportarReporte(ctx context.Context, p ExportParams) models.Envelope[map[string]any] {
	m.delay(ctx)
	if p.Formato == "csv" {
		var b strings.Builder
		b.WriteString("categoria,total\n")
		for _, c := range mockReporteCategorias.Categorias {
			fmt.Fprintf(&b, "%s,%d\n", c.Categoria, c.Total)
		}
		return models.Envelope[map[string]any]{
			Success: true,
			Message: "Archivo CSV generado",
			File:    []byte(b.String()),
		}
	}
	return models.Ok("Datos exportados exitosamente", map[string]any{
		"export_url": "#",
		"format":     p.Formato,
		"timestamp":  time.Now().Format(time.RFC3339),
	})
}

func (m *MockService) CheckHealth(ctx context.Context) models.Envelope[map[string]any] {
	m.delay(ctx)
	return models.Ok("Servicio operativo", map[string]any{"status": "ok", "modo": "mock"})
}

func (m *MockService) FetchAPIDocs(ctx context.Context) models.Envelope[map[string]any] {
	m.delay(ctx)
	return models.Ok("Documentación disponible", map[string]any{
		"endpoints": []string{
			"GET /denuncias/resumen-semanal",
			"GET /denuncias/{id}",
			"POST /denuncias",
			"PUT /denuncias/{id}/estado",
			"GET /denuncias/{id}/historial",
			"GET /comentarios/{id}",
			"POST /comentarios",
			"GET /reportes",
			"GET /reportes/categorias",
			"GET /reportes/ubicaciones",
			"GET /reportes/exportar",
		},
	})
}
