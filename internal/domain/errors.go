package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). Cada APIError coincide con uno de ellos vía errors.Is.
var (
	ErrUnreachable = errors.New("servidor inalcanzable")
	ErrRejected    = errors.New("solicitud rechazada por el servidor")
	ErrMalformed   = errors.New("respuesta malformada")
	ErrValidation  = errors.New("entrada inválida")
	ErrStaging     = errors.New("no se pudo preparar el archivo local")
	ErrUnexpected  = errors.New("error inesperado")
)

// Kind clasifica el origen del fallo.
type Kind string

const (
	KindUnreachable Kind = "unreachable"
	KindRejected    Kind = "rejected"
	KindMalformed   Kind = "malformed"
	KindValidation  Kind = "validation"
	KindStaging     Kind = "staging"
	KindUnexpected  Kind = "unexpected"
)

// Mensajes fijos mostrados al usuario final.
const (
	MsgUnreachable = "Tidak dapat terhubung ke server. Periksa koneksi internet Anda."
	MsgMalformed   = "Respons server tidak valid."
	MsgStaging     = "Tidak dapat menyiapkan file lokal untuk diunggah."
)

// APIError es la única forma de error que ve quien llama a los módulos del cliente.
// Message siempre es legible y apto para mostrarse tal cual.
type APIError struct {
	Kind       Kind
	Message    string
	StatusCode int    // 0 si no hubo respuesta
	Action     string // descripción de la operación intentada ("mengambil daftar produk")
	Err        error  // causa técnica, para logs
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, domain.ErrRejected), etc.
func (e *APIError) Is(target error) bool {
	return target == e.Kind.sentinel()
}

func (k Kind) sentinel() error {
	switch k {
	case KindUnreachable:
		return ErrUnreachable
	case KindRejected:
		return ErrRejected
	case KindMalformed:
		return ErrMalformed
	case KindValidation:
		return ErrValidation
	case KindStaging:
		return ErrStaging
	default:
		return ErrUnexpected
	}
}

// Unreachable construye el error de "sin respuesta" (red caída, DNS, TLS, cancelación).
func Unreachable(cause error) *APIError {
	return &APIError{Kind: KindUnreachable, Message: MsgUnreachable, Err: cause}
}

// Rejected construye el error de respuesta no-2xx.
func Rejected(status int, message string) *APIError {
	return &APIError{Kind: KindRejected, Message: message, StatusCode: status}
}

// Malformed construye el error de cuerpo 2xx que no se pudo interpretar.
func Malformed(message string, cause error) *APIError {
	if message == "" {
		message = MsgMalformed
	}
	return &APIError{Kind: KindMalformed, Message: message, Err: cause}
}

// Validation construye un error de precondición local (no se envió nada a la red).
func Validation(message string) *APIError {
	return &APIError{Kind: KindValidation, Message: message}
}

// Staging construye el error del paso de preparación previo a la subida.
func Staging(cause error) *APIError {
	return &APIError{Kind: KindStaging, Message: MsgStaging, Err: cause}
}

// Normalize colapsa cualquier fallo en un *APIError con mensaje legible.
// Precedencia del mensaje: el que ya trae el error (servidor / status text) y, si está vacío,
// "Gagal <action>". Errores ajenos al cliente se reportan como inesperados.
func Normalize(err error, action string) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		out := *apiErr
		if out.Action == "" {
			out.Action = action
		}
		if out.Message == "" {
			out.Message = "Gagal " + action
		}
		return &out
	}
	return &APIError{
		Kind:    KindUnexpected,
		Message: fmt.Sprintf("Terjadi kesalahan tidak terduga saat %s.", action),
		Action:  action,
		Err:     err,
	}
}

// KindOf devuelve la clase del error, o "" si no es un APIError.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return ""
}
