package service

import "fmt"

// ErrorKind mengelompokkan kegagalan service supaya handler bisa memetakan
// ke status HTTP tanpa membongkar pesan.
type ErrorKind int

const (
	KindValidation ErrorKind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindInternal
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error adalah bentuk kegagalan seragam seluruh service. Operasi service
// tidak pernah melempar kegagalan terduga dalam bentuk lain.
type Error struct {
	Kind    ErrorKind    `json:"-"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s (%d field)", e.Message, len(e.Fields))
	}
	return e.Message
}

func ValidationError(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation Error", Fields: fields}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NotFound dipakai untuk id/natural-key yang tidak ada, dengan pesan generik
// supaya tidak membocorkan keberadaan resource.
func NotFound() *Error {
	return &Error{Kind: KindNotFound, Message: "Invalid ID"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal menyembunyikan detail error dari pemanggil; detail lengkap
// dicatat di log oleh pemanggil sebelum membungkus.
func Internal() *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error"}
}
