package models

import (
	"testing"
	"time"
)

func TestCategoriaLabelEsTotal(t *testing.T) {
	tests := []struct {
		entrada string
		want    string
	}{
		{"contaminacion_agua", "Contaminación de Agua"},
		{"contaminacion_aire", "Contaminación de Aire"},
		{"deforestacion", "Deforestación"},
		{"manejo_residuos", "Manejo de Residuos"},
		{"ruido_excesivo", "Ruido Excesivo"},
		{"contaminacion_suelo", "Contaminación de Suelo"},
		{"otros", "Otros"},
		// legacy aliases resolve to the canonical category's label
		{"incendio", "Deforestación"},
		{"contaminacion", "Contaminación de Agua"},
		{"mineria_ilegal", "Contaminación de Suelo"},
		{"otro", "Otros"},
		// anything else falls back deterministically, never fails
		{"", "Desconocido"},
		{"basura_espacial", "Desconocido"},
		{"CONTAMINACION_AGUA", "Desconocido"},
	}
	for _, tt := range tests {
		if got := CategoriaLabel(tt.entrada); got != tt.want {
			t.Errorf("CategoriaLabel(%q) = %q, want %q", tt.entrada, got, tt.want)
		}
	}
}

func TestNormalizarCategoria(t *testing.T) {
	aliases := map[string]Categoria{
		"incendio":       Deforestacion,
		"contaminacion":  ContaminacionAgua,
		"mineria_ilegal": ContaminacionSuelo,
		"otro":           Otros,
	}
	for alias, want := range aliases {
		if c, ok := NormalizarCategoria(alias); !ok || c != want {
			t.Errorf("%s should normalize to %s, got %q ok=%v", alias, want, c, ok)
		}
	}
	if _, ok := NormalizarCategoria("no_existe"); ok {
		t.Error("unknown categories must not validate")
	}
}

func TestEstadoValido(t *testing.T) {
	for _, valido := range []string{"pendiente", "en_proceso", "resuelta"} {
		if !EstadoValido(valido) {
			t.Errorf("EstadoValido(%q) = false, want true", valido)
		}
	}
	for _, invalido := range []string{"", "cerrada", "Pendiente"} {
		if EstadoValido(invalido) {
			t.Errorf("EstadoValido(%q) = true, want false", invalido)
		}
	}
}

func TestEstadoYPrioridadLabels(t *testing.T) {
	if got := EstadoLabel("en_proceso"); got != "En Proceso" {
		t.Errorf("EstadoLabel = %q", got)
	}
	if got := EstadoLabel("otro"); got != "Desconocido" {
		t.Errorf("EstadoLabel fallback = %q", got)
	}
	if got := PrioridadLabel("alta"); got != "Alta" {
		t.Errorf("PrioridadLabel = %q", got)
	}
	if got := PrioridadLabel("urgente"); got != "Desconocido" {
		t.Errorf("PrioridadLabel fallback = %q", got)
	}
}

func TestFechaRelativaLabel(t *testing.T) {
	tests := []struct {
		dias int
		want string
	}{
		{0, "Hoy"},
		{1, "Hace 1 día"},
		{4, "Hace 4 días"},
		{-1, "Mañana"},
	}
	for _, tt := range tests {
		if got := FechaRelativaLabel(tt.dias); got != tt.want {
			t.Errorf("FechaRelativaLabel(%d) = %q, want %q", tt.dias, got, tt.want)
		}
	}
}

func TestDiasDesde(t *testing.T) {
	ahora := time.Date(2025, time.January, 17, 14, 30, 0, 0, time.Local)
	tests := []struct {
		fecha string
		want  int
	}{
		{"15/01/2025 06:30", 2},
		{"17/01/2025 11:45", 0},
		{"13/01/2025 23:59", 4}, // calendar days, not 24h periods
		{"malformada", 0},
	}
	for _, tt := range tests {
		if got := DiasDesde(tt.fecha, ahora); got != tt.want {
			t.Errorf("DiasDesde(%q) = %d, want %d", tt.fecha, got, tt.want)
		}
	}
}
