package models

import (
	"fmt"
	"time"
)

// Categoria enum (tipo_problema)
type Categoria string

const (
	ContaminacionAgua  Categoria = "contaminacion_agua"
	ContaminacionAire  Categoria = "contaminacion_aire"
	Deforestacion      Categoria = "deforestacion"
	ManejoResiduos     Categoria = "manejo_residuos"
	RuidoExcesivo      Categoria = "ruido_excesivo"
	ContaminacionSuelo Categoria = "contaminacion_suelo"
	Otros              Categoria = "otros"
)

// Estado enum
type Estado string

const (
	Pendiente Estado = "pendiente"
	EnProceso Estado = "en_proceso"
	Resuelta  Estado = "resuelta"
)

// Prioridad enum, assigned by the backend
type Prioridad string

const (
	Baja  Prioridad = "baja"
	Media Prioridad = "media"
	Alta  Prioridad = "alta"
)

var categoriaLabels = map[Categoria]string{
	ContaminacionAgua:  "Contaminación de Agua",
	ContaminacionAire:  "Contaminación de Aire",
	Deforestacion:      "Deforestación",
	ManejoResiduos:     "Manejo de Residuos",
	RuidoExcesivo:      "Ruido Excesivo",
	ContaminacionSuelo: "Contaminación de Suelo",
	Otros:              "Otros",
}

// Legacy category values still present in old records.
var categoriasLegadas = map[Categoria]Categoria{
	"incendio":       Deforestacion,
	"contaminacion":  ContaminacionAgua,
	"mineria_ilegal": ContaminacionSuelo,
	"otro":           Otros,
}

var estadoLabels = map[Estado]string{
	Pendiente: "Pendiente",
	EnProceso: "En Proceso",
	Resuelta:  "Resuelta",
}

var prioridadLabels = map[Prioridad]string{
	Baja:  "Baja",
	Media: "Media",
	Alta:  "Alta",
}

// NormalizarCategoria resolves a raw category value (including legacy aliases)
// to its canonical form. Reports false for values outside the enumeration.
func NormalizarCategoria(s string) (Categoria, bool) {
	c := Categoria(s)
	if alias, ok := categoriasLegadas[c]; ok {
		c = alias
	}
	_, ok := categoriaLabels[c]
	return c, ok
}

// CategoriaLabel returns the display label for any category value. The mapping
// is total: unknown values yield "Desconocido" instead of failing.
func CategoriaLabel(s string) string {
	c, ok := NormalizarCategoria(s)
	if !ok {
		return "Desconocido"
	}
	return categoriaLabels[c]
}

func EstadoLabel(s string) string {
	if label, ok := estadoLabels[Estado(s)]; ok {
		return label
	}
	return "Desconocido"
}

func PrioridadLabel(s string) string {
	if label, ok := prioridadLabels[Prioridad(s)]; ok {
		return label
	}
	return "Desconocido"
}

// EstadoValido reports whether s names a lifecycle state.
func EstadoValido(s string) bool {
	_, ok := estadoLabels[Estado(s)]
	return ok
}

// CategoriasDisponibles lists the canonical categories in presentation order.
func CategoriasDisponibles() []string {
	return []string{
		string(ContaminacionAgua),
		string(ContaminacionAire),
		string(Deforestacion),
		string(ManejoResiduos),
		string(RuidoExcesivo),
		string(ContaminacionSuelo),
		string(Otros),
	}
}

// FechaRelativaLabel renders the human-relative phrase for a day distance
// ("Hoy", "Hace N días"). Negative distances are future-dated records.
func FechaRelativaLabel(dias int) string {
	switch {
	case dias < 0:
		return "Mañana"
	case dias == 0:
		return "Hoy"
	case dias == 1:
		return "Hace 1 día"
	default:
		return fmt.Sprintf("Hace %d días", dias)
	}
}

// DenunciaResumen is the list/summary view of a report as served by the
// weekly summary endpoint. Fecha carries the backend's "DD/MM/YYYY HH:mm"
// display format.
type DenunciaResumen struct {
	ID                  int     `json:"id"`
	TipoProblema        string  `json:"tipo_problema"`
	DescripcionCorta    string  `json:"descripcion_corta"`
	DescripcionCompleta string  `json:"descripcion_completa"`
	Ubicacion           string  `json:"ubicacion"`
	Estado              string  `json:"estado"`
	Fecha               string  `json:"fecha"`
	FechaRelativa       string  `json:"fecha_relativa"`
	DiasTranscurridos   int     `json:"dias_transcurridos"`
	Imagen              *string `json:"imagen"`
	Prioridad           string  `json:"prioridad"`
}

// Resumen holds the weekly summary counters.
type Resumen struct {
	TotalDenuncias int    `json:"total_denuncias"`
	Pendientes     int    `json:"pendientes"`
	EnProceso      int    `json:"en_proceso"`
	Resueltas      int    `json:"resueltas"`
	Periodo        string `json:"periodo"`
	FechaConsulta  string `json:"fecha_consulta"`
}

type FiltrosAplicados struct {
	Zona      string `json:"zona,omitempty"`
	Categoria string `json:"categoria,omitempty"`
	Limite    int    `json:"limite,omitempty"`
}

type ResumenSemanal struct {
	Resumen          Resumen           `json:"resumen"`
	FiltrosAplicados FiltrosAplicados  `json:"filtros_aplicados"`
	Denuncias        []DenunciaResumen `json:"denuncias"`
}

// DenunciaDetalle is the single-report view.
type DenunciaDetalle struct {
	ID                 int      `json:"id"`
	TipoProblema       string   `json:"tipo_problema"`
	Descripcion        string   `json:"descripcion"`
	UbicacionDireccion string   `json:"ubicacion_direccion"`
	UbicacionLat       *float64 `json:"ubicacion_lat,omitempty"`
	UbicacionLng       *float64 `json:"ubicacion_lng,omitempty"`
	ImagenURL          *string  `json:"imagen_url,omitempty"`
	Estado             string   `json:"estado"`
	FechaCreacion      string   `json:"fecha_creacion"`
	FechaActualizacion *string  `json:"fecha_actualizacion"`
	DiasTranscurridos  int      `json:"dias_transcurridos"`
	TotalComentarios   int      `json:"total_comentarios"`
}

// NuevaDenuncia is the citizen submission payload. An attached image switches
// the transport to multipart form-data.
type NuevaDenuncia struct {
	Descripcion        string   `json:"descripcion"`
	Categoria          string   `json:"categoria"`
	Ubicacion          string   `json:"ubicacion"`
	Latitud            *float64 `json:"latitud,omitempty"`
	Longitud           *float64 `json:"longitud,omitempty"`
	Imagen             []byte   `json:"-"`
	ImagenNombre       string   `json:"-"`
	NombreReportante   string   `json:"nombre_reportante,omitempty"`
	EmailReportante    string   `json:"email_reportante,omitempty"`
	TelefonoReportante string   `json:"telefono_reportante,omitempty"`
}

type Comentario struct {
	ID                 int    `json:"id"`
	NombreUsuario      string `json:"nombre_usuario"`
	Comentario         string `json:"comentario"`
	Fecha              string `json:"fecha"`
	FechaISO           string `json:"fecha_iso"`
	TiempoTranscurrido string `json:"tiempo_transcurrido"`
}

type EstadisticasComentarios struct {
	TotalComentarios int    `json:"total_comentarios"`
	UltimoComentario string `json:"ultimo_comentario"`
	PrimerComentario string `json:"primer_comentario"`
}

type Paginacion struct {
	PaginaActual    int  `json:"pagina_actual"`
	TotalPaginas    int  `json:"total_paginas"`
	LimitePorPagina int  `json:"limite_por_pagina"`
	TotalElementos  int  `json:"total_elementos"`
	TieneSiguiente  bool `json:"tiene_siguiente"`
	TieneAnterior   bool `json:"tiene_anterior"`
}

type ComentariosResponse struct {
	DenunciaID   int                     `json:"denuncia_id"`
	Comentarios  []Comentario            `json:"comentarios"`
	Estadisticas EstadisticasComentarios `json:"estadisticas"`
	Paginacion   Paginacion              `json:"paginacion"`
}

// NuevoComentario is the comment creation payload. Comments are immutable
// once created.
type NuevoComentario struct {
	DenunciaID    int    `json:"denuncia_id" binding:"required"`
	NombreUsuario string `json:"nombre_usuario" binding:"required"`
	Comentario    string `json:"comentario" binding:"required"`
}

// HistorialEstado is one append-only audit record of a status change.
type HistorialEstado struct {
	ID                 int     `json:"id"`
	EstadoAnterior     string  `json:"estado_anterior"`
	EstadoNuevo        string  `json:"estado_nuevo"`
	FechaCambio        string  `json:"fecha_cambio"`
	UsuarioResponsable string  `json:"usuario_responsable"`
	Notas              *string `json:"notas"`
	TiempoTranscurrido string  `json:"tiempo_transcurrido"`
}

type HistorialResponse struct {
	DenunciaID int               `json:"denuncia_id"`
	Historial  []HistorialEstado `json:"historial"`
}

// CambioEstado is the admin status update payload. Every accepted update
// appends exactly one history entry server-side.
type CambioEstado struct {
	Estado             string `json:"estado" binding:"required"`
	Notas              string `json:"notas,omitempty"`
	UsuarioResponsable string `json:"usuario_responsable,omitempty"`
}

// CreacionResultado is the data payload returned by successful write operations.
type CreacionResultado struct {
	ID        int    `json:"id"`
	Timestamp string `json:"timestamp"`
}

// FormatoFecha is the backend's display-date layout (DD/MM/YYYY HH:mm).
const FormatoFecha = "02/01/2006 15:04"

// FormatoFechaISO is the layout of plain calendar dates in query parameters.
const FormatoFechaISO = "2006-01-02"

// DiasDesde computes whole calendar days elapsed from a display-formatted
// date up to now. Malformed dates report zero.
func DiasDesde(fecha string, ahora time.Time) int {
	t, err := time.ParseInLocation(FormatoFecha, fecha, ahora.Location())
	if err != nil {
		return 0
	}
	a := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, ahora.Location())
	b := time.Date(ahora.Year(), ahora.Month(), ahora.Day(), 0, 0, 0, 0, ahora.Location())
	return int(b.Sub(a).Hours() / 24)
}
