package domain

import (
	"errors"
	"sort"
	"strings"
)

// Базовые (sentinel) ошибки домена. Проверяются через errors.Is на границах (HTTP, CLI).
var (
	// ErrValidation — некорректный ввод пользователя; исправляется самим пользователем.
	ErrValidation = errors.New("validation failed")
	// ErrPrecondition — операция недоступна в текущем состоянии (например, пустая корзина).
	ErrPrecondition = errors.New("precondition failed")
	// ErrNotFound — запрошенная сущность отсутствует.
	ErrNotFound = errors.New("not found")
)

// ErrEmptyCart — оформление заказа с пустой корзиной недоступно.
var ErrEmptyCart = &PreconditionError{Reason: "cart is empty"}

// ValidationError — ошибка валидации с сообщениями по полям.
// Всегда разворачивается в ErrValidation.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError — ошибка для одного поля.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// Add — добавить сообщение для поля (первое сообщение по полю сохраняется).
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = msg
	}
}

// Empty — нет ни одной ошибки.
func (e *ValidationError) Empty() bool { return e == nil || len(e.Fields) == 0 }

func (e *ValidationError) Error() string {
	if e.Empty() {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	b.WriteString(": ")
	for i, k := range keys {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Fields[k])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// PreconditionError — нарушено предусловие операции; через форму не исправляется.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return ErrPrecondition.Error() + ": " + e.Reason }

func (e *PreconditionError) Unwrap() error { return ErrPrecondition }

// FieldErrors — достаёт сообщения по полям из цепочки ошибок (nil, если это не ValidationError).
func FieldErrors(err error) map[string]string {
	var ve *ValidationError
	if errors.As(err, &ve) && ve != nil {
		return ve.Fields
	}
	return nil
}
