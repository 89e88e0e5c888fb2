package credential

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"kma-forecast/internal/domain/gateway/store"
	"kma-forecast/internal/domain/model"
	"kma-forecast/internal/domain/usecase/weather"
	"kma-forecast/pkg/log"
	"kma-forecast/pkg/msg"
)

// Session holds the credential the weather service is bound to.
//
//	AwaitingCredential --Submit/Start--> Validating --valid--> Ready
//	                                          \--invalid--> AwaitingCredential
//	Ready --Reset or rejected Revalidate--> AwaitingCredential
//
// Probes run without holding the lock. Every transition bumps a generation counter so a
// probe that finished after a newer Submit or Reset neither overwrites the newer state
// nor reaches the store.
type Session struct {
	mu         sync.Mutex
	state      model.CredentialState
	generation uint64
	keepLogin  bool
	service    weather.UseCase

	store       store.CredentialStore
	probe       *Probe
	fallbackKey string
}

// NewSession creates a session in the AwaitingCredential state. fallbackKey is tried by
// Start when the store holds no credential.
func NewSession(credentialStore store.CredentialStore, probe *Probe, fallbackKey string) *Session {
	return &Session{
		state:       model.StateAwaitingCredential,
		store:       credentialStore,
		probe:       probe,
		fallbackKey: fallbackKey,
	}
}

// Start validates the stored credential, if any.
func (s *Session) Start(ctx context.Context) error {
	stored, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored credential: %w", err)
	}
	if stored.ServiceKey == "" {
		stored.ServiceKey = s.fallbackKey
	}
	if stored.ServiceKey == "" {
		log.Info(msg.GetMessage("credential.required"))
		return nil
	}

	generation := s.begin()
	service, ok := s.probe.Validate(ctx, stored.ServiceKey)
	if !ok {
		s.finish(generation, stored, nil)
		log.Warn(msg.GetMessage("credential.invalid"))
		return nil
	}

	s.finish(generation, stored, service)
	log.Info(msg.GetMessage("credential.accepted"), zap.Bool("keep_login", stored.KeepLogin))
	return nil
}

// Submit validates a new credential and, when the provider accepts it, stores it and
// binds the weather service to it. A rejected credential returns model.ErrCredentialInvalid.
// A credential whose probe outlived a later Submit or Reset is neither stored nor bound
// and returns model.ErrCredentialSuperseded.
func (s *Session) Submit(ctx context.Context, serviceKey string, keepLogin bool) error {
	credential := model.Credential{ServiceKey: serviceKey, KeepLogin: keepLogin}

	generation := s.begin()
	service, ok := s.probe.Validate(ctx, serviceKey)
	if !ok {
		s.finish(generation, credential, nil)
		log.Warn(msg.GetMessage("credential.invalid"))
		return model.ErrCredentialInvalid
	}

	if err := s.commit(ctx, generation, credential, service); err != nil {
		return err
	}
	log.Info(msg.GetMessage("credential.accepted"), zap.Bool("keep_login", keepLogin))
	return nil
}

// commit stores an accepted credential and makes the session Ready, unless generation
// is no longer current. The lock is held across Save so a Reset cannot clear the store
// in between.
func (s *Session) commit(ctx context.Context, generation uint64, credential model.Credential, service weather.UseCase) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		log.Warn(msg.GetMessage("credential.superseded"))
		return model.ErrCredentialSuperseded
	}
	if err := s.store.Save(ctx, credential); err != nil {
		s.clear()
		return fmt.Errorf("failed to store credential: %w", err)
	}

	s.state = model.StateReady
	s.keepLogin = credential.KeepLogin
	s.service = service
	return nil
}

// Reset forgets the credential and deletes it from the store.
func (s *Session) Reset(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	s.clear()
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear stored credential: %w", err)
	}
	log.Info(msg.GetMessage("credential.cleared"))
	return nil
}

// Service returns the weather use case bound to the accepted credential.
func (s *Session) Service() (weather.UseCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != model.StateReady {
		return nil, model.ErrCredentialRequired
	}
	return s.service, nil
}

// Status returns the current state and keep-login preference.
func (s *Session) Status() model.CredentialStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return model.CredentialStatus{State: s.state, KeepLogin: s.keepLogin}
}

// Revalidate requests a forecast with the accepted credential and drops it only when the
// provider rejects the key. Transport and provider faults keep the session Ready. It
// reports whether the session still holds an accepted credential and does nothing unless
// the session is Ready.
func (s *Session) Revalidate(ctx context.Context) bool {
	s.mu.Lock()
	if s.state != model.StateReady {
		s.mu.Unlock()
		return false
	}
	generation := s.generation
	service := s.service
	s.mu.Unlock()

	err := service.CheckCredential(ctx)
	if err == nil {
		return true
	}
	if !errors.Is(err, model.ErrCredentialRejected) {
		log.Warn(msg.GetMessage("credential.revalidate-skip"), zap.Error(err))
		return true
	}

	s.mu.Lock()
	if s.generation == generation {
		s.generation++
		s.clear()
	}
	s.mu.Unlock()

	log.Warn(msg.GetMessage("credential.revalidate-fail"))
	return false
}

// Shutdown clears the stored credential unless it was saved with keep-login.
func (s *Session) Shutdown(ctx context.Context) error {
	stored, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load stored credential: %w", err)
	}
	if stored.KeepLogin {
		return nil
	}
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear stored credential: %w", err)
	}
	return nil
}

func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.state = model.StateValidating
	return s.generation
}

// finish applies the outcome of the probe started at generation. A nil service means
// the credential was not accepted.
func (s *Session) finish(generation uint64, credential model.Credential, service weather.UseCase) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != generation {
		return
	}
	if service == nil {
		s.clear()
		return
	}
	s.state = model.StateReady
	s.keepLogin = credential.KeepLogin
	s.service = service
}

func (s *Session) clear() {
	s.state = model.StateAwaitingCredential
	s.keepLogin = false
	s.service = nil
}
