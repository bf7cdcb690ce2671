package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecodenuncias-web/models"
)

func TestCrearDenunciaSinImagenUsaJSON(t *testing.T) {
	var gotContentType string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &gotBody)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Denuncia registrada exitosamente",
			"data":    map[string]any{"id": 101, "timestamp": "2025-01-17T16:30:00Z"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	lat := -2.1894
	env := c.CrearDenuncia(context.Background(), models.NuevaDenuncia{
		Descripcion: "Vertido de químicos",
		Categoria:   "contaminacion_agua",
		Ubicacion:   "Río Guayas, Guayaquil",
		Latitud:     &lat,
	})

	if !env.Success || env.Data == nil || env.Data.ID != 101 {
		t.Fatalf("expected relayed success envelope, got %+v", env)
	}
	if !strings.HasPrefix(gotContentType, "application/json") {
		t.Errorf("imageless creation must use JSON, got Content-Type %q", gotContentType)
	}
	if _, presente := gotBody["imagen"]; presente {
		t.Error("absent image field must be dropped entirely from the JSON payload")
	}
	if gotBody["categoria"] != "contaminacion_agua" || gotBody["ubicacion"] != "Río Guayas, Guayaquil" {
		t.Errorf("payload fields do not match what was supplied: %v", gotBody)
	}
	if gotBody["latitud"] != -2.1894 {
		t.Errorf("latitud = %v, want -2.1894", gotBody["latitud"])
	}
}

func TestCrearDenunciaConImagenUsaMultipart(t *testing.T) {
	var gotContentType string
	var gotCampos map[string]string
	var gotImagen []byte
	var gotNombre string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		gotCampos = map[string]string{}
		for k := range r.MultipartForm.Value {
			gotCampos[k] = r.FormValue(k)
		}
		f, hdr, err := r.FormFile("imagen")
		if err == nil {
			defer f.Close()
			gotImagen, _ = io.ReadAll(f)
			gotNombre = hdr.Filename
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	env := c.CrearDenuncia(context.Background(), models.NuevaDenuncia{
		Descripcion:      "Tala ilegal",
		Categoria:        "deforestacion",
		Ubicacion:        "Manglares Churute",
		Imagen:           []byte("PNGDATA"),
		ImagenNombre:     "evidencia.png",
		NombreReportante: "María González",
	})

	if !env.Success {
		t.Fatalf("expected success, got %+v", env)
	}
	if !strings.HasPrefix(gotContentType, "multipart/form-data") {
		t.Errorf("image attachment must switch to multipart, got %q", gotContentType)
	}
	if gotCampos["descripcion"] != "Tala ilegal" || gotCampos["categoria"] != "deforestacion" ||
		gotCampos["ubicacion"] != "Manglares Churute" || gotCampos["nombre_reportante"] != "María González" {
		t.Errorf("multipart fields do not match supplied payload: %v", gotCampos)
	}
	if string(gotImagen) != "PNGDATA" || gotNombre != "evidencia.png" {
		t.Errorf("image part = %q (%s), want PNGDATA (evidencia.png)", gotImagen, gotNombre)
	}
}

func TestFallaDeTransporteDevuelveNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, nil)
	env := c.FetchResumenSemanal(context.Background(), ResumenParams{})

	if env.Success {
		t.Fatal("transport failure must not produce a success envelope")
	}
	if env.ErrorCode != models.ErrorRed {
		t.Errorf("error_code = %q, want %q", env.ErrorCode, models.ErrorRed)
	}
	if !strings.HasPrefix(env.Message, "Error de conexión") {
		t.Errorf("message should carry the diagnostic text, got %q", env.Message)
	}
}

func TestCuerpoNoJSONDevuelveNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	env := c.FetchDenuncia(context.Background(), 1)
	if env.Success || env.ErrorCode != models.ErrorRed {
		t.Errorf("non-JSON body must fold into NETWORK_ERROR, got %+v", env)
	}
}

func TestCrearComentarioValidaLocalmente(t *testing.T) {
	// Base URL points at a dead server: a request would fail as NETWORK_ERROR,
	// so a VALIDATION_ERROR proves no round trip happened.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewClient(srv.URL, nil)
	env := c.CrearComentario(context.Background(), models.NuevoComentario{
		DenunciaID:    1,
		NombreUsuario: "  ",
		Comentario:    "",
	})
	if env.ErrorCode != models.ErrorValidacion {
		t.Errorf("empty trimmed fields must fail locally, got %+v", env)
	}
}

func TestResumenSemanalPropagaFiltros(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("zona") != "Guayaquil" || q.Get("categoria") != "deforestacion" || q.Get("limite") != "5" {
			t.Errorf("query = %v", q)
		}
		if r.URL.Path != "/denuncias/resumen-semanal" {
			t.Errorf("path = %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "ok"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	c.FetchResumenSemanal(context.Background(), ResumenParams{Zona: "Guayaquil", Categoria: "deforestacion", Limite: 5})
}

func TestExportarCSVDevuelveBlob(t *testing.T) {
	csv := "categoria,total\ncontaminacion_agua,15\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("formato") != "csv" {
			t.Errorf("formato = %s", r.URL.Query().Get("formato"))
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(csv))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	env := c.ExportarReporte(context.Background(), ExportParams{Formato: "csv", Tipo: "general"})

	if !env.Success {
		t.Fatalf("expected success, got %+v", env)
	}
	if string(env.File) != csv {
		t.Errorf("File = %q, want the raw CSV bytes", env.File)
	}
}

func TestExportarJSONRelayaEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"message": "Datos exportados exitosamente",
			"data":    map[string]any{"format": "json"},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, nil)
	env := c.ExportarReporte(context.Background(), ExportParams{Formato: "json", Tipo: "general"})
	if !env.Success || env.Data == nil || (*env.Data)["format"] != "json" {
		t.Errorf("json export should return the structured envelope, got %+v", env)
	}
	if len(env.File) != 0 {
		t.Error("json export must not carry a binary blob")
	}
}
