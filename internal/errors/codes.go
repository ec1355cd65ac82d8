package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredParam ErrorCode = "VALIDATION_002"
	ValidationInvalidDate   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNoResults     ErrorCode = "TRANSACTION_001"
	TransactionInvalidFilter ErrorCode = "TRANSACTION_002"
)

// Upstream error codes (UPSTREAM_*)
const (
	UpstreamFetchFailed ErrorCode = "UPSTREAM_001"
	UpstreamBadPayload  ErrorCode = "UPSTREAM_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default user-facing messages.
// User-facing copy is Spanish, matching the dashboard frontend.
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Parámetros inválidos",
	ValidationRequiredParam: "Falta un parámetro obligatorio",
	ValidationInvalidDate:   "Formato de fecha inválido",
	ValidationOutOfRange:    "Valor fuera de rango",

	TransactionNoResults:     "No hay transacciones en el rango de fechas seleccionado",
	TransactionInvalidFilter: "Filtro de transacciones inválido",

	UpstreamFetchFailed: "Error interno del servidor",
	UpstreamBadPayload:  "Error interno del servidor",

	SystemInternalError:      "Error interno del servidor",
	SystemServiceUnavailable: "Servicio temporalmente no disponible",
	SystemRateLimitExceeded:  "Demasiadas solicitudes. Intentá nuevamente más tarde",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "Error interno del servidor"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
