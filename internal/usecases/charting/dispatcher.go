package charting

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// EventRegionSelector é o evento emitido pelo controle de rádio de região
const EventRegionSelector = "region-selector"

// EventHandler recebe o novo valor de um controle e devolve a view pronta
type EventHandler func(ctx context.Context, value string) (*View, error)

// Dispatcher associa eventos da interface aos seus handlers
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]EventHandler
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]EventHandler)}
}

// On registra o handler de um evento, substituindo o anterior
func (d *Dispatcher) On(event string, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[event] = handler
}

// Dispatch entrega o valor ao handler registrado para o evento
func (d *Dispatcher) Dispatch(ctx context.Context, event, value string) (*View, error) {
	d.mu.RLock()
	handler, ok := d.handlers[event]
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}
	return handler(ctx, value)
}

// Events lista os eventos registrados em ordem alfabética
func (d *Dispatcher) Events() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	events := make([]string, 0, len(d.handlers))
	for event := range d.handlers {
		events = append(events, event)
	}
	sort.Strings(events)
	return events
}
