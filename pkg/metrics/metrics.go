package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	CartOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart store operations",
		},
		[]string{"op", "result"}, // op: add|remove|update|wipe; result: ok|invalid|not_found
	)
	CheckoutSubmissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_submissions_total",
			Help: "Checkout submissions by outcome",
		},
		[]string{"outcome"}, // accepted|rejected|precondition
	)
	ConfirmationsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confirmations_published_total",
			Help: "Order confirmations handed off to external sinks",
		},
		[]string{"sink", "result"}, // result: ok|error
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"cache", "op"}, // op: hit|miss|evicted|expired|taken
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in cache",
		},
		[]string{"cache"},
	)
)

// MustRegister — регистрирует коллекторы в реестре по умолчанию.
// Повторный вызов не паникует: уже зарегистрированные коллекторы пропускаются.
func MustRegister() {
	for _, c := range []prometheus.Collector{
		CartOperations, CheckoutSubmissions, ConfirmationsPublished, CacheOps, CacheSize,
	} {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			panic(err)
		}
	}
}
