package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecodenuncias-web/routes"
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
)

func nuevoServidor() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	svc := services.NewMockService(0, 0)
	routes.DenunciaRoutes(r, svc, 100)
	routes.AdminRoutes(r, svc)
	routes.ReporteRoutes(r, svc)
	return r
}

func hacer(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
	return w, decoded
}

func TestCrearDenunciaCamposRequeridos(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodPost, "/api/denuncias", `{"descripcion":"solo descripcion"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["success"] != false {
		t.Error("validation failure must report success=false")
	}
	campos, _ := resp["campos_requeridos"].([]any)
	if len(campos) == 0 {
		t.Error("validation failure should list the required fields")
	}
}

func TestCrearDenunciaCategoriaInvalida(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodPost, "/api/denuncias",
		`{"descripcion":"x","categoria":"magia_negra","ubicacion":"Quito"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["error_code"] != "VALIDATION_ERROR" {
		t.Errorf("error_code = %v", resp["error_code"])
	}
}

func TestCrearDenunciaJSONValida(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodPost, "/api/denuncias",
		`{"descripcion":"Humo industrial","categoria":"contaminacion_aire","ubicacion":"Durán","latitud":-2.17}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %v", w.Code, resp)
	}
	if resp["success"] != true {
		t.Errorf("success = %v", resp["success"])
	}
	data, _ := resp["data"].(map[string]any)
	if data == nil || data["id"] == nil {
		t.Error("creation should return the fabricated id")
	}
}

func TestCrearDenunciaCategoriaLegadaSeNormaliza(t *testing.T) {
	r := nuevoServidor()
	for _, alias := range []string{"incendio", "contaminacion", "mineria_ilegal", "otro"} {
		w, resp := hacer(t, r, http.MethodPost, "/api/denuncias",
			`{"descripcion":"quema","categoria":"`+alias+`","ubicacion":"Cuenca"}`)
		if w.Code != http.StatusOK || resp["success"] != true {
			t.Fatalf("legacy alias %q should be accepted and normalized, got %d %v", alias, w.Code, resp)
		}
	}
}

func TestObtenerDenunciaIDInvalido(t *testing.T) {
	r := nuevoServidor()
	w, _ := hacer(t, r, http.MethodGet, "/api/denuncias/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestObtenerDenunciaConComentarios(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodGet, "/api/denuncias/3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	den, _ := resp["denuncia"].(map[string]any)
	com, _ := resp["comentarios"].(map[string]any)
	if den == nil || den["success"] != true {
		t.Error("detail envelope missing")
	}
	if com == nil || com["success"] != true {
		t.Error("comments envelope missing")
	}
}

func TestActualizarEstadoInvalido(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodPut, "/api/denuncias/1/estado", `{"estado":"archivada"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if resp["success"] != false {
		t.Error("invalid estado must be rejected")
	}
}

func TestActualizarEstadoValido(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodPut, "/api/denuncias/1/estado",
		`{"estado":"en_proceso","notas":"asignada a inspección","usuario_responsable":"Inspector García"}`)
	if w.Code != http.StatusOK || resp["success"] != true {
		t.Fatalf("valid update rejected: %d %v", w.Code, resp)
	}
}

func TestCalendarioSemanal(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodGet, "/api/calendario?fecha=2025-01-17", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	data, _ := resp["data"].(map[string]any)
	if data == nil {
		t.Fatal("missing data")
	}
	if data["semana_inicio"] != "2025-01-13" {
		t.Errorf("semana_inicio = %v, want 2025-01-13", data["semana_inicio"])
	}
	dias, _ := data["dias"].([]any)
	if len(dias) != 7 {
		t.Fatalf("dias = %d, want 7", len(dias))
	}

	// The mock dataset puts report 3 (15/01/2025) on Wednesday and leaves
	// Saturday empty but present.
	miercoles := dias[2].(map[string]any)
	if miercoles["dia_semana"] != "Miércoles" {
		t.Errorf("bucket 2 = %v", miercoles["dia_semana"])
	}
	if den := miercoles["denuncias"].([]any); len(den) == 0 {
		t.Error("Wednesday bucket should not be empty with the mock dataset")
	}
	sabado := dias[5].(map[string]any)
	if den, ok := sabado["denuncias"].([]any); !ok || len(den) != 0 {
		t.Error("Saturday must render as explicitly empty")
	}
}

func TestCalendarioFechaInvalida(t *testing.T) {
	r := nuevoServidor()
	w, _ := hacer(t, r, http.MethodGet, "/api/calendario?fecha=17-01-2025", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestDashboardJuntaLosTresReportes(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodGet, "/api/reportes/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	for _, seccion := range []string{"general", "categorias", "ubicaciones"} {
		env, _ := resp[seccion].(map[string]any)
		if env == nil || env["success"] != true {
			t.Errorf("section %s missing or failed", seccion)
		}
	}
}

func TestExportarXLSX(t *testing.T) {
	r := nuevoServidor()
	req := httptest.NewRequest(http.MethodGet, "/api/reportes/exportar?formato=xlsx", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "spreadsheetml") {
		t.Errorf("Content-Type = %q", ct)
	}
	// XLSX files are zip archives.
	if body := w.Body.Bytes(); len(body) < 4 || body[0] != 'P' || body[1] != 'K' {
		t.Error("body does not look like a zip archive")
	}
}

func TestExportarCSVStream(t *testing.T) {
	r := nuevoServidor()
	req := httptest.NewRequest(http.MethodGet, "/api/reportes/exportar?formato=csv", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); !strings.Contains(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "attachment") {
		t.Errorf("Content-Disposition = %q", cd)
	}
	if !strings.Contains(w.Body.String(), "categoria,total") {
		t.Error("csv body missing header row")
	}
}

func TestCrearComentarioVacio(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodPost, "/api/comentarios",
		`{"denuncia_id":1,"nombre_usuario":"   ","comentario":"hola"}`)
	if w.Code != http.StatusBadRequest || resp["success"] != false {
		t.Errorf("blank author must be rejected before any upstream call: %d %v", w.Code, resp)
	}
}

func TestCrearComentarioValido(t *testing.T) {
	r := nuevoServidor()
	w, resp := hacer(t, r, http.MethodPost, "/api/comentarios",
		`{"denuncia_id":1,"nombre_usuario":"Ana Rodríguez","comentario":"Tengo fotos adicionales"}`)
	if w.Code != http.StatusOK || resp["success"] != true {
		t.Errorf("valid comment rejected: %d %v", w.Code, resp)
	}
}
