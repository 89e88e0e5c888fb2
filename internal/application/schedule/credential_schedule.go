package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"kma-forecast/pkg/log"
)

// DefaultRevalidateCron is used when no cron expression is configured.
const DefaultRevalidateCron = "@every 1h"

// Revalidator re-probes the accepted credential.
type Revalidator interface {
	Revalidate(ctx context.Context) bool
}

// CredentialScheduler periodically checks that the provider still accepts the credential
type CredentialScheduler struct {
	cron           *cron.Cron
	revalidator    Revalidator
	cronExpression string
	ctx            context.Context
}

// NewCredentialScheduler creates a scheduler running revalidator on cronExpression
func NewCredentialScheduler(ctx context.Context, revalidator Revalidator, cronExpression string) *CredentialScheduler {
	if cronExpression == "" {
		cronExpression = DefaultRevalidateCron
	}
	return &CredentialScheduler{
		cron:           cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		revalidator:    revalidator,
		cronExpression: cronExpression,
		ctx:            ctx,
	}
}

// InitCredentialScheduleTasks registers the revalidation task and starts the scheduler
func (s *CredentialScheduler) InitCredentialScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		return fmt.Errorf("invalid credential revalidation cron %q: %w", s.cronExpression, err)
	}

	s.cron.Start()
	log.Infof("Credential revalidation scheduler started with cron expression: %s", s.cronExpression)
	return nil
}

// ExecuteScheduledTask revalidates the credential once
func (s *CredentialScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	log.Info("Credential revalidation triggered", zap.String("request_id", requestID))
	if !s.revalidator.Revalidate(s.ctx) {
		log.Info("Credential revalidation finished without an accepted credential", zap.String("request_id", requestID))
		return
	}

	log.Info("Credential revalidation completed successfully", zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *CredentialScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
