package httpclients

import (
	"time"

	"resty.dev/v3"
)

// NewClient builds a resty client with the shared defaults for outbound
// service calls. Per-call deadlines are owned by the resilience guard, so
// the client-level timeout is only a hard upper bound.
func NewClient(name string) *resty.Client {
	client := resty.New().
		SetHeader("User-Agent", name).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	return client
}
