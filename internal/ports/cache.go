package ports

import "context"

// Cache — потокобезопасный кэш с вытеснением.
// Требования к реализации: доступ по ключу не хуже O(1); поддержка отмены контекста не обязательна.
type Cache[V any] interface {
	// Get — значение по ключу; (zero, false) при промахе/истечении.
	Get(ctx context.Context, key string) (V, bool)

	// Set — сохранить/обновить значение.
	Set(ctx context.Context, key string, value V) error

	// Take — вернуть и удалить значение (одноразовое чтение).
	Take(ctx context.Context, key string) (V, bool)
}
