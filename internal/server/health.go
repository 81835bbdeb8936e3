package server

import "context"

// HealthChecker reports whether the server's dependencies are usable.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker always reports healthy. It backs /healthz when the server
// runs without a history store.
type OkHealthChecker struct{}

func (OkHealthChecker) Healthy(context.Context) bool { return true }

// Pinger is anything with a Ping health probe, such as the history store.
type Pinger interface {
	Ping() error
}

// PingHealthChecker reports healthy while its Pinger responds.
type PingHealthChecker struct {
	P Pinger
}

func (hc PingHealthChecker) Healthy(context.Context) bool {
	return hc.P.Ping() == nil
}
