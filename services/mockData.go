package services

import "ecodenuncias-web/models"

// Hand-authored dataset backing the mock provider. The dates cluster around
// the week of 13–19 January 2025 so the weekly calendar has material to show.

func ptr[T any](v T) *T { return &v }

var mockDenuncias = []models.DenunciaResumen{
	// Lunes 13/01/2025
	{
		ID:                  1,
		TipoProblema:        "manejo_residuos",
		DescripcionCorta:    "Botadero clandestino en zona urbana",
		DescripcionCompleta: "Acumulación de basura y desechos industriales en terreno baldío del norte de la ciudad. La comunidad reporta malos olores y presencia de roedores.",
		Ubicacion:           "Av. Francisco de Orellana, Km 5.5, Guayaquil",
		Estado:              "pendiente",
		Fecha:               "13/01/2025 18:45",
		FechaRelativa:       "Hace 4 días",
		DiasTranscurridos:   4,
		Imagen:              ptr("/placeholder.svg"),
		Prioridad:           "media",
	},
	// Martes 14/01/2025
	{
		ID:                  2,
		TipoProblema:        "deforestacion",
		DescripcionCorta:    "Tala ilegal en bosque protegido",
		DescripcionCompleta: "Maquinaria pesada realizando tala indiscriminada en zona de reserva ecológica. Se han derribado aproximadamente 50 árboles nativos de gran tamaño.",
		Ubicacion:           "Reserva Ecológica Manglares Churute",
		Estado:              "en_proceso",
		Fecha:               "14/01/2025 14:15",
		FechaRelativa:       "Hace 3 días",
		DiasTranscurridos:   3,
		Prioridad:           "alta",
	},
	{
		ID:                  7,
		TipoProblema:        "contaminacion_aire",
		DescripcionCorta:    "Humo industrial nocturno",
		DescripcionCompleta: "Fábrica de productos químicos emitiendo gases tóxicos durante la noche, violando horarios permitidos.",
		Ubicacion:           "Parque Industrial Pascuales, Guayaquil",
		Estado:              "pendiente",
		Fecha:               "14/01/2025 23:30",
		FechaRelativa:       "Hace 3 días",
		DiasTranscurridos:   3,
		Prioridad:           "alta",
	},
	// Miércoles 15/01/2025
	{
		ID:                  3,
		TipoProblema:        "contaminacion_agua",
		DescripcionCorta:    "Vertido de químicos en el río Guayas",
		DescripcionCompleta: "Se observó una empresa descargando líquidos de color rojizo directamente al río Guayas, causando mal olor y muerte de peces en la zona. El vertido ocurrió durante la madrugada del 15 de enero.",
		Ubicacion:           "Río Guayas, sector Malecón 2000, Guayaquil",
		Estado:              "pendiente",
		Fecha:               "15/01/2025 06:30",
		FechaRelativa:       "Hace 2 días",
		DiasTranscurridos:   2,
		Imagen:              ptr("/placeholder.svg"),
		Prioridad:           "alta",
	},
	// Jueves 16/01/2025
	{
		ID:                  4,
		TipoProblema:        "contaminacion_aire",
		DescripcionCorta:    "Emisiones tóxicas de fábrica",
		DescripcionCompleta: "Fábrica textil emitiendo humo negro constante sin filtros aparentes. Los vecinos reportan irritación en ojos y garganta.",
		Ubicacion:           "Zona Industrial Las Lojas, Durán",
		Estado:              "resuelta",
		Fecha:               "16/01/2025 09:20",
		FechaRelativa:       "Hace 1 día",
		DiasTranscurridos:   1,
		Prioridad:           "alta",
	},
	{
		ID:                  8,
		TipoProblema:        "ruido_excesivo",
		DescripcionCorta:    "Construcción nocturna ilegal",
		DescripcionCompleta: "Empresa de construcción operando maquinaria pesada durante horas no permitidas, afectando el descanso de la comunidad.",
		Ubicacion:           "Urbanización La Garzota, Samborondón",
		Estado:              "en_proceso",
		Fecha:               "16/01/2025 22:15",
		FechaRelativa:       "Hace 1 día",
		DiasTranscurridos:   1,
		Prioridad:           "media",
	},
	// Viernes 17/01/2025
	{
		ID:                  5,
		TipoProblema:        "contaminacion_suelo",
		DescripcionCorta:    "Derrame de combustible en zona agrícola",
		DescripcionCompleta: "Camión cisterna volcó derramando aproximadamente 5000 litros de diesel en terrenos de cultivo, afectando la producción de arroz de la zona.",
		Ubicacion:           "Vía Daule-Balzar, Km 45",
		Estado:              "pendiente",
		Fecha:               "17/01/2025 16:30",
		FechaRelativa:       "Hoy",
		DiasTranscurridos:   0,
		Imagen:              ptr("/placeholder.svg"),
		Prioridad:           "alta",
	},
	{
		ID:                  9,
		TipoProblema:        "contaminacion_agua",
		DescripcionCorta:    "Descarga de aguas residuales sin tratamiento",
		DescripcionCompleta: "Hotel de lujo descargando aguas negras directamente al estero, sin pasar por planta de tratamiento.",
		Ubicacion:           "Estero Salado, Vía a la Costa",
		Estado:              "pendiente",
		Fecha:               "17/01/2025 11:45",
		FechaRelativa:       "Hoy",
		DiasTranscurridos:   0,
		Imagen:              ptr("/placeholder.svg"),
		Prioridad:           "alta",
	},
	// Sábado 18/01/2025 — sin denuncias
	// Domingo 19/01/2025
	{
		ID:                  6,
		TipoProblema:        "otros",
		DescripcionCorta:    "Actividad industrial en área protegida",
		DescripcionCompleta: "Empresa procesadora de camarón operando ilegalmente dentro de zona de manglar protegido.",
		Ubicacion:           "Manglares de Churute, El Oro",
		Estado:              "pendiente",
		Fecha:               "19/01/2025 12:15",
		FechaRelativa:       "Mañana",
		DiasTranscurridos:   -1,
		Prioridad:           "media",
	},
}

var mockZonas = []string{"Guayaquil", "Quito", "Cuenca", "Machala", "Durán", "Samborondón"}

var mockDetalle = models.DenunciaDetalle{
	ID:                 1,
	TipoProblema:       "contaminacion_agua",
	Descripcion:        "Se observó una empresa descargando líquidos de color rojizo directamente al río Guayas, causando mal olor y muerte de peces en la zona. El vertido ocurrió durante la madrugada del 15 de enero. Los residentes de la zona han reportado que esta no es la primera vez que ocurre.",
	UbicacionDireccion: "Río Guayas, sector Malecón 2000, Guayaquil",
	UbicacionLat:       ptr(-2.1894),
	UbicacionLng:       ptr(-79.8847),
	ImagenURL:          ptr("/placeholder.svg"),
	Estado:             "pendiente",
	FechaCreacion:      "2025-01-15 06:30:00",
	DiasTranscurridos:  2,
	TotalComentarios:   3,
}

var mockComentarios = []models.Comentario{
	{
		ID:                 1,
		NombreUsuario:      "María González",
		Comentario:         "Yo también he visto esto varias veces. Es urgente que las autoridades tomen medidas.",
		Fecha:              "16/01/2025 08:15",
		FechaISO:           "2025-01-16T08:15:00-05:00",
		TiempoTranscurrido: "Hace 1 día",
	},
	{
		ID:                 2,
		NombreUsuario:      "Carlos Mendoza",
		Comentario:         "Mi familia vive cerca y ya no podemos usar el agua del río. Los peces están muriendo.",
		Fecha:              "16/01/2025 14:30",
		FechaISO:           "2025-01-16T14:30:00-05:00",
		TiempoTranscurrido: "Hace 18 horas",
	},
	{
		ID:                 3,
		NombreUsuario:      "Ana Rodríguez",
		Comentario:         "Tengo fotos adicionales del vertido. ¿Cómo puedo contactar a las autoridades?",
		Fecha:              "17/01/2025 09:45",
		FechaISO:           "2025-01-17T09:45:00-05:00",
		TiempoTranscurrido: "Hace 5 horas",
	},
}

var mockHistorial = []models.HistorialEstado{
	{
		ID:                 1,
		EstadoAnterior:     "",
		EstadoNuevo:        "pendiente",
		FechaCambio:        "2025-01-15 06:30:00",
		UsuarioResponsable: "Sistema",
		TiempoTranscurrido: "Hace 2 días",
	},
	{
		ID:                 2,
		EstadoAnterior:     "pendiente",
		EstadoNuevo:        "en_proceso",
		FechaCambio:        "2025-01-16 10:15:00",
		UsuarioResponsable: "Inspector García",
		Notas:              ptr("Asignada a equipo de inspección ambiental para verificación en campo"),
		TiempoTranscurrido: "Hace 1 día",
	},
}

var mockReporteGeneral = models.ReporteGeneral{
	Periodo: models.PeriodoGeneral{
		FechaInicio:     "2025-01-01",
		FechaFin:        "2025-01-17",
		FechaGeneracion: "2025-01-17 14:30:15",
	},
	EstadisticasGenerales: models.EstadisticasGenerales{
		TotalDenuncias:         45,
		DenunciasPendientes:    18,
		DenunciasEnProceso:     15,
		DenunciasResueltas:     12,
		PromedioDiasResolucion: 4.2,
		TasaResolucion:         "26.7%",
	},
	DistribucionEstados: map[string]int{
		"pendiente":  18,
		"en_proceso": 15,
		"resuelta":   12,
	},
	TopCategorias: []models.TotalPorCategoria{
		{Categoria: "contaminacion_agua", Total: 15},
		{Categoria: "deforestacion", Total: 12},
		{Categoria: "manejo_residuos", Total: 8},
	},
	TopUbicaciones: []models.TotalPorUbicacion{
		{Ubicacion: "Guayaquil", Total: 18},
		{Ubicacion: "Quito", Total: 12},
		{Ubicacion: "Cuenca", Total: 7},
	},
	Explicacion: "Resumen general de denuncias en el período seleccionado",
}

var mockReporteCategorias = models.ReporteCategorias{
	Periodo: models.PeriodoRango{Inicio: "2025-01-01", Fin: "2025-01-17"},
	Categorias: []models.TotalPorCategoria{
		{Categoria: "contaminacion_agua", Total: 15},
		{Categoria: "deforestacion", Total: 12},
		{Categoria: "manejo_residuos", Total: 8},
		{Categoria: "contaminacion_aire", Total: 6},
		{Categoria: "contaminacion_suelo", Total: 3},
		{Categoria: "ruido_excesivo", Total: 1},
	},
	Explicacion: "Las categorías con mayor cantidad de denuncias en el período seleccionado",
}

var mockReporteUbicaciones = models.ReporteUbicaciones{
	Periodo: models.PeriodoRango{Inicio: "2025-01-01", Fin: "2025-01-17"},
	Ubicaciones: []models.TotalPorUbicacion{
		{Ubicacion: "Guayaquil", Total: 18},
		{Ubicacion: "Quito", Total: 12},
		{Ubicacion: "Cuenca", Total: 7},
		{Ubicacion: "Machala", Total: 4},
		{Ubicacion: "Durán", Total: 2},
		{Ubicacion: "Samborondón", Total: 2},
	},
	Explicacion: "Las ubicaciones con mayor cantidad de denuncias reportadas",
}
