// Пакет cart — хранилище корзины одной сессии.
//
// Store — единственный источник правды о содержимом корзины: его читают
// счётчик в навигации, страница оформления и каталог. Каждая изменяющая
// операция синхронно уведомляет подписчиков до возврата из метода.
package cart

import (
	"fmt"
	"sync"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
	"github.com/Gunvolt24/coffee_delivery/pkg/metrics"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrLineNotFound — строки с таким id нет в корзине.
var ErrLineNotFound = fmt.Errorf("%w: cart line", domain.ErrNotFound)

// MaxLineQuantity — предел количества в одной строке (в том числе после объединения).
const MaxLineQuantity = 999

// Listener — подписчик на изменения корзины. Получает копию состояния.
type Listener func(snapshot domain.CartSnapshot)

// Store — корзина. Политика добавления: товар с уже имеющимся ключом
// объединяется со строкой (количество суммируется, цена пересчитывается).
type Store struct {
	catalog ports.ProductCatalog
	newID   func() string

	mu        sync.Mutex
	items     []domain.CartItem
	listeners map[uint64]Listener
	order     []uint64 // порядок подписки
	nextSubID uint64
}

// Option — настройка Store.
type Option func(*Store)

// WithIDGenerator — генератор id строк (по умолчанию UUID).
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// NewStore — пустая корзина поверх каталога.
func NewStore(catalog ports.ProductCatalog, opts ...Option) *Store {
	s := &Store{
		catalog:   catalog,
		newID:     uuid.NewString,
		listeners: make(map[uint64]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddItem — добавить товар. Возвращает итоговую строку корзины.
func (s *Store) AddItem(item domain.CartItem) (domain.CartItem, error) {
	product, ok := s.catalog.Product(item.Type)
	if !ok {
		metrics.CartOperations.WithLabelValues("add", "invalid").Inc()
		return domain.CartItem{}, domain.NewValidationError("type", fmt.Sprintf("unknown product %q", item.Type))
	}
	if item.Quantity < 1 {
		metrics.CartOperations.WithLabelValues("add", "invalid").Inc()
		return domain.CartItem{}, domain.NewValidationError("quantity", "quantity must be at least 1")
	}
	if item.Quantity > MaxLineQuantity {
		metrics.CartOperations.WithLabelValues("add", "invalid").Inc()
		return domain.CartItem{}, errQuantityTooLarge()
	}

	s.mu.Lock()
	var line domain.CartItem
	if i := s.indexByType(item.Type); i >= 0 {
		if s.items[i].Quantity > MaxLineQuantity-item.Quantity {
			s.mu.Unlock()
			metrics.CartOperations.WithLabelValues("add", "invalid").Inc()
			return domain.CartItem{}, errQuantityTooLarge()
		}
		s.items[i].Quantity += item.Quantity
		s.items[i].Price = linePrice(product.UnitPrice, s.items[i].Quantity)
		line = s.items[i]
	} else {
		if item.ID == "" {
			item.ID = s.newID()
		} else if s.indexByID(item.ID) >= 0 {
			s.mu.Unlock()
			metrics.CartOperations.WithLabelValues("add", "invalid").Inc()
			return domain.CartItem{}, domain.NewValidationError("id", fmt.Sprintf("line id %q already in cart", item.ID))
		}
		line = domain.CartItem{
			ID:       item.ID,
			Type:     item.Type,
			Quantity: item.Quantity,
			Price:    linePrice(product.UnitPrice, item.Quantity),
		}
		s.items = append(s.items, line)
	}
	snap, listeners := s.snapshotLocked()
	s.mu.Unlock()

	metrics.CartOperations.WithLabelValues("add", "ok").Inc()
	notify(listeners, snap)
	return line, nil
}

// RemoveItem — удалить строку. Отсутствующий id — не ошибка (и без уведомления).
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	i := s.indexByID(id)
	if i < 0 {
		s.mu.Unlock()
		metrics.CartOperations.WithLabelValues("remove", "not_found").Inc()
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	snap, listeners := s.snapshotLocked()
	s.mu.Unlock()

	metrics.CartOperations.WithLabelValues("remove", "ok").Inc()
	notify(listeners, snap)
}

// UpdateQuantity — заменить количество в строке и пересчитать её цену.
// quantity вне [1, MaxLineQuantity] → ValidationError, состояние не меняется.
func (s *Store) UpdateQuantity(id string, quantity int) (domain.CartItem, error) {
	if quantity < 1 {
		metrics.CartOperations.WithLabelValues("update", "invalid").Inc()
		return domain.CartItem{}, domain.NewValidationError("quantity", "quantity must be at least 1")
	}
	if quantity > MaxLineQuantity {
		metrics.CartOperations.WithLabelValues("update", "invalid").Inc()
		return domain.CartItem{}, errQuantityTooLarge()
	}

	s.mu.Lock()
	i := s.indexByID(id)
	if i < 0 {
		s.mu.Unlock()
		metrics.CartOperations.WithLabelValues("update", "not_found").Inc()
		return domain.CartItem{}, ErrLineNotFound
	}
	product, ok := s.catalog.Product(s.items[i].Type)
	if !ok {
		// каталог неизменяем, строка могла появиться только из него
		s.mu.Unlock()
		return domain.CartItem{}, domain.NewValidationError("type", fmt.Sprintf("unknown product %q", s.items[i].Type))
	}
	s.items[i].Quantity = quantity
	s.items[i].Price = linePrice(product.UnitPrice, quantity)
	line := s.items[i]
	snap, listeners := s.snapshotLocked()
	s.mu.Unlock()

	metrics.CartOperations.WithLabelValues("update", "ok").Inc()
	notify(listeners, snap)
	return line, nil
}

// WipeCart — очистить корзину безусловно (после успешного оформления заказа).
func (s *Store) WipeCart() {
	s.mu.Lock()
	s.items = nil
	snap, listeners := s.snapshotLocked()
	s.mu.Unlock()

	metrics.CartOperations.WithLabelValues("wipe", "ok").Inc()
	notify(listeners, snap)
}

// TotalItemCount — сумма количеств по всем строкам.
func (s *Store) TotalItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalQuantity(s.items)
}

// LineCount — число строк в корзине.
func (s *Store) LineCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Subtotal — сумма цен строк.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return subtotal(s.items)
}

// Items — копия строк в порядке добавления.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.items...)
}

// Snapshot — согласованная копия состояния.
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, _ := s.snapshotLocked()
	return snap
}

// Subscribe — подписка на изменения; возвращает функцию отписки (идемпотентна).
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.listeners[id] = l
	s.order = append(s.order, id)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.listeners, id)
			for i, sid := range s.order {
				if sid == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}
