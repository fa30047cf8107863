package checkout_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/cart"
	"github.com/Gunvolt24/coffee_delivery/internal/catalog"
	"github.com/Gunvolt24/coffee_delivery/internal/checkout"
	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports/mocks"
	"github.com/Gunvolt24/coffee_delivery/pkg/validate"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newFlow(t *testing.T, sink *mocks.MockConfirmationSink) (*checkout.Flow, *cart.Store) {
	t.Helper()
	products := catalog.Builtin()
	store := cart.NewStore(products)
	flow := checkout.NewFlow(store, products, validate.NewCheckoutValidator(), sink, noopLogger{},
		checkout.WithClock(func() time.Time { return fixedNow }),
		checkout.WithIDGenerator(func() string { return "order-1" }),
	)
	return flow, store
}

func fillValid(t *testing.T, flow *checkout.Flow) {
	t.Helper()
	fields := map[string]string{
		domain.FieldCEP:           "01310-100",
		domain.FieldStreet:        "Avenida Paulista",
		domain.FieldNumber:        "1578",
		domain.FieldNeighborhood:  "Bela Vista",
		domain.FieldCity:          "São Paulo",
		domain.FieldState:         "sp",
		domain.FieldPaymentMethod: "money",
	}
	for k, v := range fields {
		require.NoError(t, flow.SetField(k, v))
	}
}

func TestSubmit_Accepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockConfirmationSink(ctrl)
	flow, store := newFlow(t, sink)

	_, err := store.AddItem(domain.CartItem{Type: "traditionalEspresso", Quantity: 1})
	require.NoError(t, err)
	_, err = store.AddItem(domain.CartItem{Type: "mocaccino", Quantity: 1})
	require.NoError(t, err)
	fillValid(t, flow)

	var delivered *domain.OrderConfirmation
	sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c *domain.OrderConfirmation) error {
			delivered = c
			return nil
		})

	conf, err := flow.Submit(context.Background())
	require.NoError(t, err)
	require.Same(t, delivered, conf)
	require.Equal(t, "order-1", conf.ID)
	require.Equal(t, fixedNow, conf.CreatedAt)
	require.Equal(t, "01310100", conf.Draft.Address.CEP)
	require.Equal(t, "SP", conf.Draft.Address.State)
	require.Equal(t, domain.Money, conf.Draft.PaymentMethod)
	require.Len(t, conf.Items, 2)
	require.True(t, conf.Totals.Items.Equal(decimal.RequireFromString("21.40")))
	require.True(t, conf.Totals.Delivery.Equal(decimal.RequireFromString("3.50")))
	require.True(t, conf.Totals.Total.Equal(decimal.RequireFromString("24.90")))

	require.Equal(t, checkout.Accepted, flow.State())
	require.Equal(t, 0, store.LineCount())
	require.Equal(t, domain.NewCheckoutForm(), flow.Form())

	_, err = flow.Submit(context.Background())
	require.ErrorIs(t, err, checkout.ErrFlowClosed)
	require.ErrorIs(t, flow.SetField(domain.FieldCity, "x"), domain.ErrPrecondition)
}

func TestSubmit_EmptyCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockConfirmationSink(ctrl)
	flow, _ := newFlow(t, sink)

	_, err := flow.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrEmptyCart)
	require.ErrorIs(t, err, domain.ErrPrecondition)
	require.Equal(t, checkout.Editing, flow.State())
	require.Nil(t, flow.Errors())

	// поля недоступны при пустой корзине
	require.ErrorIs(t, flow.SetField(domain.FieldCity, "Recife"), domain.ErrEmptyCart)
}

func TestSubmit_Rejected_ThenFixed(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockConfirmationSink(ctrl)
	flow, store := newFlow(t, sink)

	_, err := store.AddItem(domain.CartItem{Type: "latte", Quantity: 2})
	require.NoError(t, err)
	require.NoError(t, flow.SetField(domain.FieldStreet, "Rua A"))

	_, err = flow.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Equal(t, checkout.Editing, flow.State())

	errs := flow.Errors()
	require.Equal(t, "CEP is required", errs[domain.FieldCEP])
	require.Equal(t, "state code is required", errs[domain.FieldState])
	require.NotContains(t, errs, domain.FieldStreet)
	require.Equal(t, 1, store.LineCount(), "cart must survive a rejected submit")

	// правка поля снимает его ошибку
	require.NoError(t, flow.SetField(domain.FieldCEP, "01310100"))
	require.NotContains(t, flow.Errors(), domain.FieldCEP)

	fillValid(t, flow)
	sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)
	_, err = flow.Submit(context.Background())
	require.NoError(t, err)
	require.Nil(t, flow.Errors())
}

func TestSubmit_ReturnedFieldErrorsStayIntact(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow, store := newFlow(t, mocks.NewMockConfirmationSink(ctrl))
	_, err := store.AddItem(domain.CartItem{Type: "latte", Quantity: 1})
	require.NoError(t, err)

	_, err = flow.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)
	returned := domain.FieldErrors(err)
	want := make(map[string]string, len(returned))
	for k, v := range returned {
		want[k] = v
	}
	require.Contains(t, want, domain.FieldCEP)

	// ошибка у вызывающего читается параллельно с правкой полей
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			for range domain.FieldErrors(err) {
			}
		}
	}()
	require.NoError(t, flow.SetField(domain.FieldCEP, "01310100"))
	require.NoError(t, flow.SetField(domain.FieldCity, "São Paulo"))
	wg.Wait()

	require.Equal(t, want, domain.FieldErrors(err))
	require.NotContains(t, flow.Errors(), domain.FieldCEP)
	require.NotContains(t, flow.Errors(), domain.FieldCity)
}

func TestSubmit_HandOffFailureDoesNotRollBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockConfirmationSink(ctrl)
	flow, store := newFlow(t, sink)

	_, err := store.AddItem(domain.CartItem{Type: "irish", Quantity: 1})
	require.NoError(t, err)
	fillValid(t, flow)

	sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(errors.New("inbox full"))

	conf, err := flow.Submit(context.Background())
	require.NoError(t, err)
	require.NotNil(t, conf)
	require.Equal(t, 0, store.LineCount())
	require.Equal(t, domain.NewCheckoutForm(), flow.Form())
}

func TestSubmit_UsesConfiguredFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockConfirmationSink(ctrl)
	validator := mocks.NewMockCheckoutValidator(ctrl)
	products := catalog.Builtin()
	store := cart.NewStore(products)

	flow := checkout.NewFlow(store, products, validator, sink, noopLogger{},
		checkout.WithDeliveryFee(decimal.Zero))

	_, err := store.AddItem(domain.CartItem{Type: "cuban", Quantity: 1})
	require.NoError(t, err)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).
		Return(&domain.OrderDraft{PaymentMethod: domain.CreditCard}, nil)
	sink.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(nil)

	conf, err := flow.Submit(context.Background())
	require.NoError(t, err)
	require.True(t, conf.Totals.Total.Equal(decimal.RequireFromString("12.90")))
}

func TestSetField_UnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow, store := newFlow(t, mocks.NewMockConfirmationSink(ctrl))
	_, err := store.AddItem(domain.CartItem{Type: "latte", Quantity: 1})
	require.NoError(t, err)

	err = flow.SetField("email", "a@b.c")
	require.ErrorIs(t, err, domain.ErrValidation)
	require.Contains(t, domain.FieldErrors(err), "email")
}

func TestSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	flow, store := newFlow(t, mocks.NewMockConfirmationSink(ctrl))

	empty := flow.Summary()
	require.True(t, empty.Disabled)
	require.Empty(t, empty.Lines)
	require.Equal(t, "R$ 3,50", empty.TotalText)
	require.Len(t, empty.PaymentOptions, 3)
	require.Equal(t, "creditCard", empty.Form.PaymentMethod)

	_, err := store.AddItem(domain.CartItem{Type: "traditionalEspresso", Quantity: 2})
	require.NoError(t, err)

	s := flow.Summary()
	require.False(t, s.Disabled)
	require.Len(t, s.Lines, 1)
	require.Equal(t, "Expresso Tradicional", s.Lines[0].Name)
	require.Equal(t, "R$ 19,80", s.Lines[0].PriceText)
	require.Equal(t, "R$ 19,80", s.ItemsText)
	require.Equal(t, "R$ 3,50", s.DeliveryText)
	require.Equal(t, "R$ 23,30", s.TotalText)
	require.Equal(t, checkout.Editing, s.State)
}
