package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gunvolt24/coffee_delivery/internal/cart"
	"github.com/Gunvolt24/coffee_delivery/internal/checkout"
	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
)

var (
	// ErrSessionRequired — запрос без идентификатора сессии.
	ErrSessionRequired = &domain.PreconditionError{Reason: "session id is required"}
	// ErrConfirmationNotFound — подтверждения нет, оно уже показано или истекло.
	ErrConfirmationNotFound = fmt.Errorf("%w: confirmation", domain.ErrNotFound)
)

// Storefront — прикладная логика витрины (без знаний о транспорте).
type Storefront struct {
	catalog   ports.ProductCatalog    // каталог только для чтения
	validator ports.CheckoutValidator // проверка формы
	sink      ports.ConfirmationSink  // куда передаётся принятый заказ
	inbox     ports.ConfirmationInbox // откуда его забирает страница "успех"
	sessions  ports.Cache[*Session]   // сессии с вытеснением
	log       ports.Logger            // логгер
	flowOpts  []checkout.Option       // доставка, часы, генератор id
	cartOpts  []cart.Option           // генератор id строк
	createMu  sync.Mutex              // get-or-create сессии
}

// Option — настройка Storefront.
type Option func(*Storefront)

// WithFlowOptions — опции для каждого нового checkout.Flow.
func WithFlowOptions(opts ...checkout.Option) Option {
	return func(s *Storefront) { s.flowOpts = append(s.flowOpts, opts...) }
}

// WithCartOptions — опции для каждой новой корзины.
func WithCartOptions(opts ...cart.Option) Option {
	return func(s *Storefront) { s.cartOpts = append(s.cartOpts, opts...) }
}

// NewStorefront — DI-конструктор.
func NewStorefront(
	catalog ports.ProductCatalog,
	validator ports.CheckoutValidator,
	sink ports.ConfirmationSink,
	inbox ports.ConfirmationInbox,
	sessions ports.Cache[*Session],
	log ports.Logger,
	opts ...Option,
) *Storefront {
	s := &Storefront{
		catalog:   catalog,
		validator: validator,
		sink:      sink,
		inbox:     inbox,
		sessions:  sessions,
		log:       log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Products — каталог в порядке загрузки.
func (s *Storefront) Products() []domain.Product {
	return s.catalog.List()
}

// Cart — снимок корзины сессии.
func (s *Storefront) Cart(ctx context.Context, sessionID string) (domain.CartSnapshot, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return domain.CartSnapshot{}, err
	}
	return sess.cart.Snapshot(), nil
}

// AddItem — добавить товар в корзину (с объединением по ключу товара).
func (s *Storefront) AddItem(ctx context.Context, sessionID string, key domain.ProductKey, quantity int) (domain.CartItem, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return domain.CartItem{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	line, err := sess.cart.AddItem(domain.CartItem{Type: key, Quantity: quantity})
	if err != nil {
		s.log.Warnf(ctx, "add item rejected type=%s qty=%d err=%v", key, quantity, err)
		return domain.CartItem{}, err
	}
	return line, nil
}

// UpdateQuantity — изменить количество в строке.
func (s *Storefront) UpdateQuantity(ctx context.Context, sessionID, lineID string, quantity int) (domain.CartItem, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return domain.CartItem{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.cart.UpdateQuantity(lineID, quantity)
}

// RemoveItem — удалить строку; отсутствующая строка не ошибка.
func (s *Storefront) RemoveItem(ctx context.Context, sessionID, lineID string) error {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.cart.RemoveItem(lineID)
	return nil
}

// SubscribeCart — подписка на изменения корзины сессии (счётчик в навигации).
// Возвращает текущий снимок и функцию отписки.
func (s *Storefront) SubscribeCart(ctx context.Context, sessionID string, l cart.Listener) (domain.CartSnapshot, func(), error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return domain.CartSnapshot{}, nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	unsubscribe := sess.cart.Subscribe(l)
	return sess.cart.Snapshot(), unsubscribe, nil
}

// Checkout — представление страницы оформления.
func (s *Storefront) Checkout(ctx context.Context, sessionID string) (checkout.Summary, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return checkout.Summary{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.flow.Summary(), nil
}

// SetField — изменить поле формы.
func (s *Storefront) SetField(ctx context.Context, sessionID, field, value string) error {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.flow.SetField(field, value)
}

// Submit — отправить форму. После принятия заказа сессия получает новый Flow.
func (s *Storefront) Submit(ctx context.Context, sessionID string) (*domain.OrderConfirmation, error) {
	sess, err := s.session(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	confirmation, err := sess.flow.Submit(ctx)
	if err != nil {
		return nil, err
	}
	sess.flow = s.newFlow(sess.cart)
	return confirmation, nil
}

// TakeConfirmation — забрать подтверждение для страницы "успех" (один раз).
func (s *Storefront) TakeConfirmation(ctx context.Context, id string) (*domain.OrderConfirmation, error) {
	confirmation, ok := s.inbox.Take(ctx, id)
	if !ok {
		s.log.Infof(ctx, "confirmation id=%s not found or already taken", id)
		return nil, ErrConfirmationNotFound
	}
	return confirmation, nil
}

// session — найти сессию или создать новую (пустая корзина, чистая форма).
func (s *Storefront) session(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return nil, ErrSessionRequired
	}
	if sess, ok := s.sessions.Get(ctx, id); ok {
		return sess, nil
	}

	s.createMu.Lock()
	defer s.createMu.Unlock()
	if sess, ok := s.sessions.Get(ctx, id); ok {
		return sess, nil
	}

	c := cart.NewStore(s.catalog, s.cartOpts...)
	sess := &Session{cart: c, flow: s.newFlow(c)}
	if err := s.sessions.Set(ctx, id, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	s.log.Infof(ctx, "session created")
	return sess, nil
}

func (s *Storefront) newFlow(c *cart.Store) *checkout.Flow {
	return checkout.NewFlow(c, s.catalog, s.validator, s.sink, s.log, s.flowOpts...)
}
