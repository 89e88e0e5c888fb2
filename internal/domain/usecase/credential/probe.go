package credential

import (
	"context"

	"kma-forecast/internal/domain/usecase/weather"
)

// Probe validates a credential by requesting a live forecast with it. There is no
// local format check: even an empty key is sent and left to the provider to reject.
type Probe struct {
	service weather.UseCase
}

func NewProbe(service weather.UseCase) *Probe {
	return &Probe{service: service}
}

// Validate returns the weather use case bound to credential and whether the provider accepted it.
func (p *Probe) Validate(ctx context.Context, credential string) (weather.UseCase, bool) {
	bound := p.service.WithCredential(credential)
	return bound, bound.ProbeCredential(ctx, credential)
}

// IsValid reports whether the provider accepts credential.
func (p *Probe) IsValid(ctx context.Context, credential string) bool {
	_, ok := p.Validate(ctx, credential)
	return ok
}
