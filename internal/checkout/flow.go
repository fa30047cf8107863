// Пакет checkout — оформление заказа: черновик формы и отправка.
//
// Flow проходит состояния Editing → Validating → {Editing, Accepted}.
// Accepted конечное: после успешной отправки сессия создаёт новый Flow.
package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
	"github.com/Gunvolt24/coffee_delivery/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrFlowClosed — заказ уже принят, повторная отправка невозможна.
var ErrFlowClosed = &domain.PreconditionError{Reason: "order already submitted"}

// DefaultDeliveryFee — фиксированная стоимость доставки.
var DefaultDeliveryFee = decimal.RequireFromString("3.50")

// State — состояние отправки формы.
type State uint8

const (
	Editing State = iota
	Validating
	Accepted
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Validating:
		return "validating"
	case Accepted:
		return "accepted"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Cart — то, что Flow использует из корзины.
type Cart interface {
	Snapshot() domain.CartSnapshot
	WipeCart()
}

// Flow — черновик формы и машина состояний отправки для одной сессии.
type Flow struct {
	cart      Cart
	catalog   ports.ProductCatalog
	validator ports.CheckoutValidator
	sink      ports.ConfirmationSink
	log       ports.Logger

	deliveryFee decimal.Decimal
	now         func() time.Time
	newID       func() string

	mu        sync.Mutex
	form      *Form
	state     State
	fieldErrs map[string]string
}

// Option — настройка Flow.
type Option func(*Flow)

// WithDeliveryFee — стоимость доставки (по умолчанию DefaultDeliveryFee).
func WithDeliveryFee(fee decimal.Decimal) Option {
	return func(f *Flow) { f.deliveryFee = fee }
}

// WithClock — источник времени для CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) { f.now = now }
}

// WithIDGenerator — генератор id подтверждений.
func WithIDGenerator(gen func() string) Option {
	return func(f *Flow) { f.newID = gen }
}

// NewFlow — DI-конструктор.
func NewFlow(
	cart Cart,
	catalog ports.ProductCatalog,
	validator ports.CheckoutValidator,
	sink ports.ConfirmationSink,
	log ports.Logger,
	opts ...Option,
) *Flow {
	f := &Flow{
		cart:        cart,
		catalog:     catalog,
		validator:   validator,
		sink:        sink,
		log:         log,
		deliveryFee: DefaultDeliveryFee,
		now:         time.Now,
		newID:       uuid.NewString,
		form:        NewForm(),
		state:       Editing,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// State — текущее состояние.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Form — копия черновика.
func (f *Flow) Form() domain.CheckoutForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.form.Snapshot()
}

// Errors — сообщения по полям после последней отклонённой отправки.
func (f *Flow) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.fieldErrs)
}

// SetField — изменить поле черновика. При пустой корзине поля недоступны.
// Ошибка по изменённому полю сбрасывается до следующей отправки.
func (f *Flow) SetField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Accepted {
		return ErrFlowClosed
	}
	if f.cart.Snapshot().Lines == 0 {
		return domain.ErrEmptyCart
	}
	if err := f.form.Set(field, value); err != nil {
		return err
	}
	delete(f.fieldErrs, field)
	return nil
}

// Submit — отправка формы.
//
// Пустая корзина → domain.ErrEmptyCart, состояние не меняется.
// Ошибка валидации → возврат в Editing, сообщения доступны через Errors().
// Успех: итоги с доставкой, одноразовая передача подтверждения в sink,
// сброс формы и очистка корзины. Ошибка передачи только логируется.
func (f *Flow) Submit(ctx context.Context) (*domain.OrderConfirmation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == Accepted {
		return nil, ErrFlowClosed
	}
	snap := f.cart.Snapshot()
	if snap.Lines == 0 {
		metrics.CheckoutSubmissions.WithLabelValues("precondition").Inc()
		f.log.Warnf(ctx, "checkout submit rejected: cart is empty")
		return nil, domain.ErrEmptyCart
	}

	f.state = Validating
	form := f.form.Snapshot()
	draft, err := f.validator.Validate(ctx, &form)
	if err != nil {
		f.state = Editing
		// своя копия: Fields возвращённой ошибки принадлежат вызывающему
		f.fieldErrs = copyErrors(domain.FieldErrors(err))
		metrics.CheckoutSubmissions.WithLabelValues("rejected").Inc()
		if !errors.Is(err, domain.ErrValidation) {
			f.log.Errorf(ctx, "checkout validator failed err=%v", err)
		}
		return nil, err
	}

	confirmation := &domain.OrderConfirmation{
		ID:        f.newID(),
		Draft:     *draft,
		Items:     snap.Items,
		Totals:    domain.NewOrderTotals(snap.Subtotal, f.deliveryFee),
		CreatedAt: f.now().UTC(),
	}
	f.state = Accepted
	f.fieldErrs = nil

	if err := f.sink.Deliver(ctx, confirmation); err != nil {
		f.log.Errorf(ctx, "confirmation hand-off failed id=%s err=%v", confirmation.ID, err)
	}

	f.form.Reset()
	f.cart.WipeCart()

	metrics.CheckoutSubmissions.WithLabelValues("accepted").Inc()
	f.log.Infof(ctx, "order accepted id=%s lines=%d total=%s",
		confirmation.ID, len(confirmation.Items), confirmation.Totals.Total.StringFixed(2))
	return confirmation, nil
}

func copyErrors(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
