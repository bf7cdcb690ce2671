package models

// Analytics report payloads served by the /reportes family of endpoints.

type PeriodoGeneral struct {
	FechaInicio     string `json:"fecha_inicio"`
	FechaFin        string `json:"fecha_fin"`
	FechaGeneracion string `json:"fecha_generacion"`
}

type PeriodoRango struct {
	Inicio string `json:"inicio"`
	Fin    string `json:"fin"`
}

type EstadisticasGenerales struct {
	TotalDenuncias         int     `json:"total_denuncias"`
	DenunciasPendientes    int     `json:"denuncias_pendientes"`
	DenunciasEnProceso     int     `json:"denuncias_en_proceso"`
	DenunciasResueltas     int     `json:"denuncias_resueltas"`
	PromedioDiasResolucion float64 `json:"promedio_dias_resolucion"`
	TasaResolucion         string  `json:"tasa_resolucion"`
}

type TotalPorCategoria struct {
	Categoria string `json:"categoria"`
	Total     int    `json:"total"`
}

type TotalPorUbicacion struct {
	Ubicacion string `json:"ubicacion"`
	Total     int    `json:"total"`
}

type ReporteGeneral struct {
	Periodo               PeriodoGeneral        `json:"periodo"`
	EstadisticasGenerales EstadisticasGenerales `json:"estadisticas_generales"`
	DistribucionEstados   map[string]int        `json:"distribucion_estados"`
	TopCategorias         []TotalPorCategoria   `json:"top_categorias"`
	TopUbicaciones        []TotalPorUbicacion   `json:"top_ubicaciones"`
	Explicacion           string                `json:"explicacion"`
}

type ReporteCategorias struct {
	Periodo     PeriodoRango        `json:"periodo"`
	Categorias  []TotalPorCategoria `json:"categorias"`
	Explicacion string              `json:"explicacion"`
}

type ReporteUbicaciones struct {
	Periodo     PeriodoRango        `json:"periodo"`
	Ubicaciones []TotalPorUbicacion `json:"ubicaciones"`
	Explicacion string              `json:"explicacion"`
}
