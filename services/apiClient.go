package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"ecodenuncias-web/models"
)

// Client speaks the denuncias backend contract. Every operation resolves to a
// uniform envelope: transport failures (DNS, refused connection, timeouts,
// non-JSON bodies) become NETWORK_ERROR envelopes, never returned errors.
// There are no retries, no caching and no request deduplication.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client against baseURL. A nil httpClient falls back to
// http.DefaultClient, leaving timeouts to the transport's defaults.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) endpoint(path string, q url.Values) string {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

func do[T any](c *Client, req *http.Request) models.Envelope[T] {
	resp, err := c.http.Do(req)
	if err != nil {
		return models.ErrorDeRed[T](err)
	}
	defer resp.Body.Close()

	var env models.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return models.ErrorDeRed[T](err)
	}
	return env
}

func apiGet[T any](c *Client, ctx context.Context, path string, q url.Values) models.Envelope[T] {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, q), nil)
	if err != nil {
		return models.ErrorDeRed[T](err)
	}
	req.Header.Set("Content-Type", "application/json")
	return do[T](c, req)
}

func apiSend[T any](c *Client, ctx context.Context, method, path string, payload any) models.Envelope[T] {
	body, err := json.Marshal(payload)
	if err != nil {
		return models.ErrorDeRed[T](err)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, nil), bytes.NewReader(body))
	if err != nil {
		return models.ErrorDeRed[T](err)
	}
	req.Header.Set("Content-Type", "application/json")
	return do[T](c, req)
}

// FetchResumenSemanal retrieves the weekly summary plus the matching report
// list, optionally filtered by zona substring, categoria and result limit.
func (c *Client) FetchResumenSemanal(ctx context.Context, p ResumenParams) models.Envelope[models.ResumenSemanal] {
	q := url.Values{}
	if p.Zona != "" {
		q.Set("zona", p.Zona)
	}
	if p.Categoria != "" {
		q.Set("categoria", p.Categoria)
	}
	if p.Limite > 0 {
		q.Set("limite", strconv.Itoa(p.Limite))
	}
	return apiGet[models.ResumenSemanal](c, ctx, "/denuncias/resumen-semanal", q)
}

func (c *Client) FetchDenuncia(ctx context.Context, id int) models.Envelope[models.DenunciaDetalle] {
	return apiGet[models.DenunciaDetalle](c, ctx, fmt.Sprintf("/denuncias/%d", id), nil)
}

func (c *Client) FetchComentarios(ctx context.Context, denunciaID, pagina, limite int) models.Envelope[models.ComentariosResponse] {
	q := url.Values{}
	q.Set("pagina", strconv.Itoa(pagina))
	q.Set("limite", strconv.Itoa(limite))
	return apiGet[models.ComentariosResponse](c, ctx, fmt.Sprintf("/comentarios/%d", denunciaID), q)
}

// CrearComentario posts a new comment. Empty author or body (after trimming)
// is rejected locally without a network round trip.
func (c *Client) CrearComentario(ctx context.Context, nc models.NuevoComentario) models.Envelope[models.CreacionResultado] {
	if strings.TrimSpace(nc.NombreUsuario) == "" || strings.TrimSpace(nc.Comentario) == "" {
		return models.ErrorDeValidacion[models.CreacionResultado](
			"Nombre de usuario y comentario son obligatorios",
			"nombre_usuario", "comentario",
		)
	}
	return apiSend[models.CreacionResultado](c, ctx, http.MethodPost, "/comentarios", nc)
}

// CrearDenuncia submits a citizen report. With an attached image the request
// is encoded as multipart form-data; otherwise as JSON with the image field
// dropped entirely.
func (c *Client) CrearDenuncia(ctx context.Context, d models.NuevaDenuncia) models.Envelope[models.CreacionResultado] {
	if faltantes := camposFaltantes(d); len(faltantes) > 0 {
		return models.ErrorDeValidacion[models.CreacionResultado](
			"Por favor completa todos los campos obligatorios", faltantes...)
	}

	if len(d.Imagen) == 0 {
		return apiSend[models.CreacionResultado](c, ctx, http.MethodPost, "/denuncias", d)
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	campos := map[string]string{
		"descripcion":         d.Descripcion,
		"categoria":           d.Categoria,
		"ubicacion":           d.Ubicacion,
		"nombre_reportante":   d.NombreReportante,
		"email_reportante":    d.EmailReportante,
		"telefono_reportante": d.TelefonoReportante,
	}
	if d.Latitud != nil {
		campos["latitud"] = strconv.FormatFloat(*d.Latitud, 'f', -1, 64)
	}
	if d.Longitud != nil {
		campos["longitud"] = strconv.FormatFloat(*d.Longitud, 'f', -1, 64)
	}
	for nombre, valor := range campos {
		if valor == "" {
			continue
		}
		if err := w.WriteField(nombre, valor); err != nil {
			return models.ErrorDeRed[models.CreacionResultado](err)
		}
	}

	nombre := d.ImagenNombre
	if nombre == "" {
		nombre = "imagen"
	}
	parte, err := w.CreateFormFile("imagen", nombre)
	if err != nil {
		return models.ErrorDeRed[models.CreacionResultado](err)
	}
	if _, err := parte.Write(d.Imagen); err != nil {
		return models.ErrorDeRed[models.CreacionResultado](err)
	}
	if err := w.Close(); err != nil {
		return models.ErrorDeRed[models.CreacionResultado](err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/denuncias", nil), &buf)
	if err != nil {
		return models.ErrorDeRed[models.CreacionResultado](err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return do[models.CreacionResultado](c, req)
}

func camposFaltantes(d models.NuevaDenuncia) []string {
	var faltantes []string
	if strings.TrimSpace(d.Categoria) == "" {
		faltantes = append(faltantes, "categoria")
	}
	if strings.TrimSpace(d.Descripcion) == "" {
		faltantes = append(faltantes, "descripcion")
	}
	if strings.TrimSpace(d.Ubicacion) == "" {
		faltantes = append(faltantes, "ubicacion")
	}
	return faltantes
}

// ActualizarEstado overwrites the report's status; the backend appends one
// history entry per accepted update.
func (c *Client) ActualizarEstado(ctx context.Context, id int, cambio models.CambioEstado) models.Envelope[models.CreacionResultado] {
	return apiSend[models.CreacionResultado](c, ctx, http.MethodPut, fmt.Sprintf("/denuncias/%d/estado", id), cambio)
}

func (c *Client) FetchHistorial(ctx context.Context, id int) models.Envelope[models.HistorialResponse] {
	return apiGet[models.HistorialResponse](c, ctx, fmt.Sprintf("/denuncias/%d/historial", id), nil)
}

func periodoQuery(p PeriodoParams) url.Values {
	q := url.Values{}
	if p.FechaInicio != "" {
		q.Set("fecha_inicio", p.FechaInicio)
	}
	if p.FechaFin != "" {
		q.Set("fecha_fin", p.FechaFin)
	}
	if p.Limite > 0 {
		q.Set("limite", strconv.Itoa(p.Limite))
	}
	return q
}

func (c *Client) FetchReporteGeneral(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteGeneral] {
	return apiGet[models.ReporteGeneral](c, ctx, "/reportes", periodoQuery(p))
}

func (c *Client) FetchReporteCategorias(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteCategorias] {
	return apiGet[models.ReporteCategorias](c, ctx, "/reportes/categorias", periodoQuery(p))
}

func (c *Client) FetchReporteUbicaciones(ctx context.Context, p PeriodoParams) models.Envelope[models.ReporteUbicaciones] {
	return apiGet[models.ReporteUbicaciones](c, ctx, "/reportes/ubicaciones", periodoQuery(p))
}

// ExportarReporte downloads an export. The CSV path is the only operation
// whose success carries an opaque binary payload instead of structured data.
func (c *Client) ExportarReporte(ctx context.Context, p ExportParams) models.Envelope[map[string]any] {
	q := url.Values{}
	q.Set("formato", p.Formato)
	q.Set("tipo", p.Tipo)
	if p.FechaInicio != "" {
		q.Set("fecha_inicio", p.FechaInicio)
	}
	if p.FechaFin != "" {
		q.Set("fecha_fin", p.FechaFin)
	}

	if p.Formato != "csv" {
		return apiGet[map[string]any](c, ctx, "/reportes/exportar", q)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/reportes/exportar", q), nil)
	if err != nil {
		return models.ErrorDeRed[map[string]any](err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return models.ErrorDeRed[map[string]any](err)
	}
	defer resp.Body.Close()

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.ErrorDeRed[map[string]any](err)
	}
	env := models.Envelope[map[string]any]{File: blob}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		env.Success = true
		env.Message = "Archivo CSV generado"
	} else {
		env.Message = "Error al generar CSV"
	}
	return env
}

func (c *Client) CheckHealth(ctx context.Context) models.Envelope[map[string]any] {
	return apiGet[map[string]any](c, ctx, "/health", nil)
}

func (c *Client) FetchAPIDocs(ctx context.Context) models.Envelope[map[string]any] {
	return apiGet[map[string]any](c, ctx, "/docs", nil)
}
