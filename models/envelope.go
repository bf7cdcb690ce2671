package models

// Envelope is the uniform response wrapper every API operation resolves to,
// success or failure. Transport failures never surface as errors; they are
// folded into an envelope with ErrorCode "NETWORK_ERROR".
type Envelope[T any] struct {
	Success          bool           `json:"success"`
	Message          string         `json:"message"`
	Data             *T             `json:"data,omitempty"`
	ErrorCode        string         `json:"error_code,omitempty"`
	Errores          []string       `json:"errores,omitempty"`
	CamposRequeridos []string       `json:"campos_requeridos,omitempty"`
	Meta             map[string]any `json:"meta,omitempty"`

	// File carries the opaque binary payload of binary exports (CSV/XLSX).
	// It never round-trips through JSON.
	File []byte `json:"-"`
}

const (
	ErrorRed        = "NETWORK_ERROR"
	ErrorValidacion = "VALIDATION_ERROR"
)

// Ok builds a success envelope around data.
func Ok[T any](message string, data T) Envelope[T] {
	return Envelope[T]{Success: true, Message: message, Data: &data}
}

// ErrorDeRed folds a transport failure into the uniform envelope shape.
func ErrorDeRed[T any](err error) Envelope[T] {
	msg := "Error desconocido"
	if err != nil {
		msg = err.Error()
	}
	return Envelope[T]{
		Success:   false,
		Message:   "Error de conexión: " + msg,
		ErrorCode: ErrorRed,
	}
}

// ErrorDeValidacion builds the client-side validation failure envelope; these
// never reach the network.
func ErrorDeValidacion[T any](message string, campos ...string) Envelope[T] {
	return Envelope[T]{
		Success:          false,
		Message:          message,
		ErrorCode:        ErrorValidacion,
		CamposRequeridos: campos,
	}
}
