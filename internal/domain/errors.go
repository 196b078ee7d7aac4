package domain

import "errors"

// ErrorKind — класс ошибки, по которому вызывающая сторона может ветвиться.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindInvalidID
	KindNotFound
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidID:
		return "invalid_id"
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error — доменная ошибка: вид + сообщение для пользователя.
// Error() возвращает сообщение как есть, его можно отдавать клиенту напрямую.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is — сравнение по виду; если у target есть сообщение, оно тоже должно совпасть.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

func validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }

// Сентинелы по виду (без сообщения) — для errors.Is по классу ошибки.
var (
	ErrInvalid    = &Error{Kind: KindInvalidID}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrValidation = &Error{Kind: KindValidation}
)

// Конкретные ошибки реестра партий.
var (
	ErrInvalidID         = &Error{Kind: KindInvalidID, Message: "Invalid id"}
	ErrPartyNotFound     = &Error{Kind: KindNotFound, Message: "Party not found"}
	ErrCodeRequired      = validation("Code isRequired!")
	ErrNameRequired      = validation("Name isRequired!")
	ErrNumberRequired    = validation("Number isRequired!")
	ErrCodeUnavailable   = validation("Party code is unavailable")
	ErrNumberUnavailable = validation("Party number is unavailable")
	ErrNumberDigits      = validation("The number of a party must be composed of 2 digits")
	ErrNameTooShort      = validation("Name must be at least 5 letters")
	ErrMalformedInput    = validation("Malformed party payload")
)

// KindOf — вид доменной ошибки в цепочке; KindUnknown для инфраструктурных ошибок.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// IsUnavailable — конфликт уникальности (code или number уже заняты).
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrCodeUnavailable) || errors.Is(err, ErrNumberUnavailable)
}
