package confirmation

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/coffee_delivery/internal/domain"
	"github.com/Gunvolt24/coffee_delivery/internal/ports"
)

var _ ports.ConfirmationSink = (*Dispatcher)(nil)

// Dispatcher — доставляет подтверждение в основной sink и во вспомогательные.
// Ошибка основного возвращается, ошибки вспомогательных только логируются.
type Dispatcher struct {
	primary     ports.ConfirmationSink
	secondaries []ports.ConfirmationSink
	log         ports.Logger
}

// NewDispatcher — DI-конструктор; nil среди secondaries пропускаются.
func NewDispatcher(primary ports.ConfirmationSink, log ports.Logger, secondaries ...ports.ConfirmationSink) *Dispatcher {
	d := &Dispatcher{primary: primary, log: log}
	for _, s := range secondaries {
		if s != nil {
			d.secondaries = append(d.secondaries, s)
		}
	}
	return d
}

func (d *Dispatcher) Deliver(ctx context.Context, c *domain.OrderConfirmation) error {
	if err := d.primary.Deliver(ctx, c); err != nil {
		return fmt.Errorf("deliver confirmation: %w", err)
	}
	for _, s := range d.secondaries {
		if err := s.Deliver(ctx, c); err != nil {
			d.log.Warnf(ctx, "secondary confirmation sink failed id=%s err=%v", c.ID, err)
		}
	}
	return nil
}
