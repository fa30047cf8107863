package validate

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
)

// Проверка, что CheckoutValidator удовлетворяет интерфейсу CheckoutValidator.
var _ ports.CheckoutValidator = (*CheckoutValidator)(nil)

// Сообщения об ошибках по полям.
const (
	MsgCEPRequired      = "CEP is required"
	MsgCEPInvalid       = "CEP is invalid"
	MsgStreetRequired   = "street is required"
	MsgNumberRequired   = "number is required"
	MsgNeighborhoodReq  = "neighborhood is required"
	MsgCityRequired     = "city is required"
	MsgStateRequired    = "state code is required"
	MsgPaymentInvalid   = "payment method is invalid"
	MsgFormRequired     = "form is required"
	fieldForm           = "form"
	cepDigits           = 8
	stateCodeCharacters = 2
)

// CEP: 8 цифр, допускается маска NNNNN-NNN.
var cepPattern = regexp.MustCompile(`^\d{5}-?\d{3}$`)

// CheckoutValidator — чистая проверка формы: без побочных эффектов и состояния.
// Проверяет все поля сразу и возвращает *domain.ValidationError со всеми сообщениями.
type CheckoutValidator struct{}

// NewCheckoutValidator — конструктор CheckoutValidator.
func NewCheckoutValidator() *CheckoutValidator { return &CheckoutValidator{} }

// Validate — проверяет форму и строит OrderDraft.
func (v *CheckoutValidator) Validate(_ context.Context, form *domain.CheckoutForm) (*domain.OrderDraft, error) {
	if form == nil {
		return nil, domain.NewValidationError(fieldForm, MsgFormRequired)
	}

	verr := &domain.ValidationError{}
	var draft domain.OrderDraft

	draft.Address.CEP = v.validateCEP(form.CEP, verr)
	draft.Address.Street = required(form.Street, domain.FieldStreet, MsgStreetRequired, verr)
	draft.Address.Number = v.validateNumber(string(form.Number), verr)
	draft.Address.Complement = strings.TrimSpace(form.Complement)
	draft.Address.Neighborhood = required(form.Neighborhood, domain.FieldNeighborhood, MsgNeighborhoodReq, verr)
	draft.Address.City = required(form.City, domain.FieldCity, MsgCityRequired, verr)
	draft.Address.State = v.validateState(form.State, verr)
	draft.PaymentMethod = v.validatePaymentMethod(form.PaymentMethod, verr)

	if !verr.Empty() {
		return nil, verr
	}
	return &draft, nil
}

// validateCEP — нормализует CEP к 8 цифрам.
func (v *CheckoutValidator) validateCEP(raw string, verr *domain.ValidationError) string {
	cep := strings.TrimSpace(raw)
	if cep == "" {
		verr.Add(domain.FieldCEP, MsgCEPRequired)
		return ""
	}
	if !cepPattern.MatchString(cep) {
		verr.Add(domain.FieldCEP, MsgCEPInvalid)
		return ""
	}
	cep = strings.ReplaceAll(cep, "-", "")
	if len(cep) != cepDigits {
		verr.Add(domain.FieldCEP, MsgCEPInvalid)
		return ""
	}
	return cep
}

// validateNumber — номер дома: целое ≥ 1.
func (v *CheckoutValidator) validateNumber(raw string, verr *domain.ValidationError) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		verr.Add(domain.FieldNumber, MsgNumberRequired)
		return 0
	}
	return n
}

// validateState — сигла штата: ровно 2 символа, приводится к верхнему регистру.
func (v *CheckoutValidator) validateState(raw string, verr *domain.ValidationError) string {
	state := strings.TrimSpace(raw)
	if utf8.RuneCountInString(state) != stateCodeCharacters {
		verr.Add(domain.FieldState, MsgStateRequired)
		return ""
	}
	return strings.ToUpper(state)
}

// validatePaymentMethod — пустое значение означает способ по умолчанию.
func (v *CheckoutValidator) validatePaymentMethod(raw string, verr *domain.ValidationError) domain.PaymentMethod {
	code := strings.TrimSpace(raw)
	if code == "" {
		return domain.DefaultPaymentMethod
	}
	pm, err := domain.ParsePaymentMethod(code)
	if err != nil {
		verr.Add(domain.FieldPaymentMethod, MsgPaymentInvalid)
		return 0
	}
	return pm
}

func required(raw, field, msg string, verr *domain.ValidationError) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		verr.Add(field, msg)
	}
	return value
}
