// Package events is the propagation boundary between write paths and the
// realtime fan-out. Every writer (sync pipeline and request handlers alike)
// publishes through the same Publisher so downstream consumers never depend
// on which path changed a row.
package events

import "context"

// Event names, one per consumer-facing channel.
const (
	ShipmentNew    = "shipment:new"
	ShipmentUpdate = "shipment:update"
	RouteUpdate    = "route:update"
	DriverUpdate   = "driver:update"
)

// Publisher fans one event out to the realtime layer. The key groups
// events of one entity onto one partition so consumers see its updates
// in order.
type Publisher interface {
	Publish(ctx context.Context, event, key string, payload any) error
	Close() error
}

// Nop discards every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, string, any) error { return nil }
func (Nop) Close() error                                       { return nil }
