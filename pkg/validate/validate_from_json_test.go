package validate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
)

func TestValidateCheckoutFromJSON_OK(t *testing.T) {
	ctx := context.Background()
	validator := NewCheckoutValidator()

	draft, err := ValidateCheckoutFromJSON(ctx, validator, []byte(minimalValidFormJSON("01310100", "SP")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Address.CEP != "01310100" || draft.PaymentMethod != domain.Money {
		t.Fatalf("unexpected draft: %+v", draft)
	}
}

func TestValidateCheckoutFromJSON_DefaultPaymentMethod(t *testing.T) {
	ctx := context.Background()
	validator := NewCheckoutValidator()

	raw := `{"cep":"01310100","street":"Rua A","number":"10","neighborhood":"Centro","city":"Porto Alegre","state":"RS"}`
	draft, err := ValidateCheckoutFromJSON(ctx, validator, []byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.PaymentMethod != domain.CreditCard {
		t.Fatalf("missing paymentMethod must default to creditCard, got %v", draft.PaymentMethod)
	}
}

func TestValidateCheckoutFromJSON_NumericHouseNumber(t *testing.T) {
	ctx := context.Background()
	validator := NewCheckoutValidator()

	raw := strings.Replace(minimalValidFormJSON("01310100", "SP"), `"number": "1578"`, `"number": 1578`, 1)
	draft, err := ValidateCheckoutFromJSON(ctx, validator, []byte(raw))
	if err != nil {
		t.Fatalf("numeric number must be accepted: %v", err)
	}
	if draft.Address.Number != 1578 {
		t.Fatalf("unexpected number: %d", draft.Address.Number)
	}

	// дробное или нулевое число — ошибка поля, а не ошибка разбора
	for _, bad := range []string{`12.5`, `0`, `-3`} {
		raw := strings.Replace(minimalValidFormJSON("01310100", "SP"), `"number": "1578"`, `"number": `+bad, 1)
		_, err := ValidateCheckoutFromJSON(ctx, validator, []byte(raw))
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("number=%s: expected validation error, got %v", bad, err)
		}
		if _, ok := domain.FieldErrors(err)[domain.FieldNumber]; !ok {
			t.Fatalf("number=%s: expected error on field number, got %v", bad, domain.FieldErrors(err))
		}
	}

	raw = strings.Replace(minimalValidFormJSON("01310100", "SP"), `"number": "1578"`, `"number": true`, 1)
	if _, err := ValidateCheckoutFromJSON(ctx, validator, []byte(raw)); err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error for boolean number, got: %v", err)
	}
}

func TestValidateCheckoutFromJSON_UnknownField(t *testing.T) {
	ctx := context.Background()
	validator := NewCheckoutValidator()

	raw := `{"unknown":"x",` + minimalValidFormJSON("01310100", "SP")[1:]
	_, err := ValidateCheckoutFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got: %v", err)
	}
}

func TestValidateCheckoutFromJSON_TrailingData(t *testing.T) {
	ctx := context.Background()
	validator := NewCheckoutValidator()

	raw := minimalValidFormJSON("01310100", "SP") + "{}"
	_, err := ValidateCheckoutFromJSON(ctx, validator, []byte(raw))
	if err == nil || !strings.Contains(err.Error(), "trailing data") {
		t.Fatalf("expected trailing data error, got: %v", err)
	}
}

func TestValidateCheckoutFromJSON_DomainError(t *testing.T) {
	ctx := context.Background()
	validator := NewCheckoutValidator()

	// Не валиден: трёхбуквенный штат
	_, err := ValidateCheckoutFromJSON(ctx, validator, []byte(minimalValidFormJSON("01310100", "SAO")))
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected domain validation error, got %v", err)
	}
}

// ---- helpers ----

func minimalValidFormJSON(cep, state string) string {
	return `{
  "cep": "` + cep + `",
  "street": "Avenida Paulista",
  "number": "1578",
  "complement": "",
  "neighborhood": "Bela Vista",
  "city": "São Paulo",
  "state": "` + state + `",
  "paymentMethod": "money"
}`
}
