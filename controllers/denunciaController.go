package controllers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"ecodenuncias-web/models"
	"ecodenuncias-web/services"

	"github.com/gin-gonic/gin"
)

// DenunciaController serves the citizen-facing report views: list/search,
// detail with comments, and report creation.
type DenunciaController struct {
	svc services.DenunciasService
}

func NewDenunciaController(svc services.DenunciasService) *DenunciaController {
	return &DenunciaController{svc: svc}
}

// ResumenSemanal handles GET /denuncias/resumen-semanal with optional
// zona/categoria/limite filters.
func (dc *DenunciaController) ResumenSemanal(c *gin.Context) {
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "0"))
	if limite < 0 {
		limite = 0
	}
	env := dc.svc.FetchResumenSemanal(c.Request.Context(), services.ResumenParams{
		Zona:      c.Query("zona"),
		Categoria: c.Query("categoria"),
		Limite:    limite,
	})
	respond(c, env)
}

// ObtenerDenuncia handles GET /denuncias/:id. The detail and the first page of
// comments are fetched independently; one failing does not drop the other.
func (dc *DenunciaController) ObtenerDenuncia(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respond(c, models.ErrorDeValidacion[models.DenunciaDetalle]("Identificador de denuncia inválido", "id"))
		return
	}

	ctx := c.Request.Context()
	detalle := dc.svc.FetchDenuncia(ctx, id)
	comentarios := dc.svc.FetchComentarios(ctx, id, 1, 20)

	c.JSON(statusFor(detalle.Success, detalle.ErrorCode), gin.H{
		"denuncia":    detalle,
		"comentarios": comentarios,
	})
}

// CrearDenuncia handles POST /denuncias. The browser form arrives either as
// JSON (no image) or multipart form-data (image attached); required fields are
// checked before any upstream call.
func (dc *DenunciaController) CrearDenuncia(c *gin.Context) {
	ct := c.GetHeader("Content-Type")
	var nueva models.NuevaDenuncia
	var ok bool
	switch {
	case strings.HasPrefix(ct, "multipart/form-data"):
		nueva, ok = dc.leerDenunciaMultipart(c)
	default:
		nueva, ok = dc.leerDenunciaJSON(c)
	}
	if !ok {
		return
	}

	var faltantes []string
	for _, campo := range []struct{ nombre, valor string }{
		{"categoria", nueva.Categoria},
		{"descripcion", nueva.Descripcion},
		{"ubicacion", nueva.Ubicacion},
	} {
		if strings.TrimSpace(campo.valor) == "" {
			faltantes = append(faltantes, campo.nombre)
		}
	}
	if len(faltantes) > 0 {
		respond(c, models.ErrorDeValidacion[models.CreacionResultado](
			"Por favor completa todos los campos obligatorios", faltantes...))
		return
	}

	categoria, valida := models.NormalizarCategoria(nueva.Categoria)
	if !valida {
		env := models.ErrorDeValidacion[models.CreacionResultado]("Categoría no válida", "categoria")
		env.Errores = []string{"categoria debe ser una de: " + strings.Join(models.CategoriasDisponibles(), ", ")}
		respond(c, env)
		return
	}
	nueva.Categoria = string(categoria)

	respond(c, dc.svc.CrearDenuncia(c.Request.Context(), nueva))
}

func (dc *DenunciaController) leerDenunciaJSON(c *gin.Context) (models.NuevaDenuncia, bool) {
	var input struct {
		Descripcion        string   `json:"descripcion"`
		Categoria          string   `json:"categoria"`
		Ubicacion          string   `json:"ubicacion"`
		Latitud            *float64 `json:"latitud"`
		Longitud           *float64 `json:"longitud"`
		NombreReportante   string   `json:"nombre_reportante"`
		EmailReportante    string   `json:"email_reportante"`
		TelefonoReportante string   `json:"telefono_reportante"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, models.ErrorDeValidacion[models.CreacionResultado]("Cuerpo de la solicitud inválido"))
		return models.NuevaDenuncia{}, false
	}
	return models.NuevaDenuncia{
		Descripcion:        input.Descripcion,
		Categoria:          input.Categoria,
		Ubicacion:          input.Ubicacion,
		Latitud:            input.Latitud,
		Longitud:           input.Longitud,
		NombreReportante:   input.NombreReportante,
		EmailReportante:    input.EmailReportante,
		TelefonoReportante: input.TelefonoReportante,
	}, true
}

func (dc *DenunciaController) leerDenunciaMultipart(c *gin.Context) (models.NuevaDenuncia, bool) {
	nueva := models.NuevaDenuncia{
		Descripcion:        c.PostForm("descripcion"),
		Categoria:          c.PostForm("categoria"),
		Ubicacion:          c.PostForm("ubicacion"),
		NombreReportante:   c.PostForm("nombre_reportante"),
		EmailReportante:    c.PostForm("email_reportante"),
		TelefonoReportante: c.PostForm("telefono_reportante"),
	}
	if v := c.PostForm("latitud"); v != "" {
		if lat, err := strconv.ParseFloat(v, 64); err == nil {
			nueva.Latitud = &lat
		}
	}
	if v := c.PostForm("longitud"); v != "" {
		if lng, err := strconv.ParseFloat(v, 64); err == nil {
			nueva.Longitud = &lng
		}
	}

	archivo, err := c.FormFile("imagen")
	if err == nil && archivo != nil {
		f, err := archivo.Open()
		if err != nil {
			respond(c, models.ErrorDeValidacion[models.CreacionResultado]("No se pudo leer la imagen adjunta", "imagen"))
			return models.NuevaDenuncia{}, false
		}
		defer f.Close()
		datos, err := io.ReadAll(f)
		if err != nil {
			respond(c, models.ErrorDeValidacion[models.CreacionResultado]("No se pudo leer la imagen adjunta", "imagen"))
			return models.NuevaDenuncia{}, false
		}
		nueva.Imagen = datos
		nueva.ImagenNombre = archivo.Filename
	}
	return nueva, true
}

// ObtenerComentarios handles GET /comentarios/:id with pagina/limite paging.
func (dc *DenunciaController) ObtenerComentarios(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		respond(c, models.ErrorDeValidacion[models.ComentariosResponse]("Identificador de denuncia inválido", "id"))
		return
	}
	pagina, _ := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "20"))
	if pagina < 1 {
		pagina = 1
	}
	if limite < 1 || limite > 100 {
		limite = 20
	}
	respond(c, dc.svc.FetchComentarios(c.Request.Context(), id, pagina, limite))
}

// CrearComentario handles POST /comentarios. Author and body must be non-empty
// after trimming; comments are immutable once created.
func (dc *DenunciaController) CrearComentario(c *gin.Context) {
	var input models.NuevoComentario
	if err := c.ShouldBindJSON(&input); err != nil {
		respond(c, models.ErrorDeValidacion[models.CreacionResultado](
			"Nombre de usuario y comentario son obligatorios",
			"denuncia_id", "nombre_usuario", "comentario"))
		return
	}
	if strings.TrimSpace(input.NombreUsuario) == "" || strings.TrimSpace(input.Comentario) == "" {
		respond(c, models.ErrorDeValidacion[models.CreacionResultado](
			"Nombre de usuario y comentario son obligatorios",
			"nombre_usuario", "comentario"))
		return
	}
	respond(c, dc.svc.CrearComentario(c.Request.Context(), input))
}

// Etiquetas handles GET /catalogos: the label mappings the presentation layer
// resolves categories, states and priorities through.
func (dc *DenunciaController) Etiquetas(c *gin.Context) {
	categorias := make(map[string]string)
	for _, cat := range models.CategoriasDisponibles() {
		categorias[cat] = models.CategoriaLabel(cat)
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Catálogos obtenidos exitosamente",
		"data": gin.H{
			"categorias": categorias,
			"estados": gin.H{
				string(models.Pendiente): models.EstadoLabel(string(models.Pendiente)),
				string(models.EnProceso): models.EstadoLabel(string(models.EnProceso)),
				string(models.Resuelta):  models.EstadoLabel(string(models.Resuelta)),
			},
			"prioridades": gin.H{
				string(models.Baja):  models.PrioridadLabel(string(models.Baja)),
				string(models.Media): models.PrioridadLabel(string(models.Media)),
				string(models.Alta):  models.PrioridadLabel(string(models.Alta)),
			},
		},
	})
}
