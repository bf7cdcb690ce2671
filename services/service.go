package services

import (
	"context"

	"ecodenuncias-web/config"
	"ecodenuncias-web/models"
)

// ResumenParams filters the weekly summary listing.
type ResumenParams struct {
	Zona      string
	Categoria string
	Limite    int
}

// PeriodoParams bounds an analytics report by date range (YYYY-MM-DD).
type PeriodoParams struct {
	FechaInicio string
	FechaFin    string
	Limite      int
}

// ExportParams selects the export format and period.
type ExportParams struct {
	Formato     string // "json" or "csv"
	Tipo        string // only "general" is defined
	FechaInicio string
	FechaFin    string
}

// DenunciasService is the single data-access surface of the application.
// The real API client and the mock provider implement it with identical
// envelope semantics, so callers are agnostic to which is active.
type DenunciasService interface {
	FetchResumenSemanal(ctx context.Context, p ResumenParams) models.Envelope[models.ResumenSemanal]
	FetchDenuncia(ctx context.Context, id int) models.Envelope[models.DenunciaDetalle]
	FetchComentarios(ctx context.Context, denunciaID, pagina, limite int) models.Envelope[models.ComentariosResponse]
	CrearComentario(ctx context.Context, c models.NuevoComentario) models.Envelope[models.CreacionResultado]
	CrearDenuncia(ctx context.Context, d models.NuevaDenuncia) models.Envelope[models.CreacionResultado]
	ActualizarEstado(ctx context.Context, id int, cambio models.CambioEstado) models.Envelope[models.CreacionResultado]
	FetchHistorial(ctx context.Context, id int) models.Envelope[models.HistorialResponse]
	FetchReporteGeneral(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteGeneral]
	FetchReporteCategorias(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteCategorias]
	FetchReporteUbicaciones(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteUbicaciones]
	ExportarReporte(ctx context.Context, p ExportParams) models.Envelope[map[string]any]
	CheckHealth(ctx context.Context) models.Envelope[map[string]any]
	FetchAPIDocs(ctx context.Context) models.Envelope[map[string]any]
}

// New selects the provider once at construction time from the mock flag.
// The choice is not runtime-toggleable.
func New(cfg *config.AppConfig) DenunciasService {
	if cfg.UseMockData {
		return NewMockService(cfg.MockDelayMin, cfg.MockDelayMax)
	}
	return NewClient(cfg.APIBaseURL, nil)
}
