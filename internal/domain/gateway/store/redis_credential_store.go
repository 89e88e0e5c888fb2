package store

import (
	"context"
	"fmt"
	"strconv"

	"kma-forecast/internal/domain/model"
	"kma-forecast/pkg/redis"
)

type redisCredentialStore struct {
	client *redis.Client
	key    string
}

// NewRedisCredentialStore keeps the credential in the hash stored at key.
func NewRedisCredentialStore(client *redis.Client, key string) CredentialStore {
	return &redisCredentialStore{client: client, key: key}
}

func (s *redisCredentialStore) Load(ctx context.Context) (model.Credential, error) {
	fields, err := s.client.HGetAll(ctx, s.key)
	if err != nil {
		return model.Credential{}, fmt.Errorf("failed to read credential from redis: %w", err)
	}

	keepLogin, _ := strconv.ParseBool(fields[FieldKeepLogin])
	return model.Credential{
		ServiceKey: fields[FieldServiceKey],
		KeepLogin:  keepLogin,
	}, nil
}

func (s *redisCredentialStore) Save(ctx context.Context, credential model.Credential) error {
	err := s.client.HSet(ctx, s.key,
		FieldServiceKey, credential.ServiceKey,
		FieldKeepLogin, strconv.FormatBool(credential.KeepLogin),
	)
	if err != nil {
		return fmt.Errorf("failed to write credential to redis: %w", err)
	}
	return nil
}

func (s *redisCredentialStore) Clear(ctx context.Context) error {
	if err := s.client.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to delete credential from redis: %w", err)
	}
	return nil
}

func (s *redisCredentialStore) Health(ctx context.Context) model.ComponentHealthStatus {
	cfg := s.client.GetConfig()
	details := map[string]string{
		"backend":  "redis",
		"address":  cfg.Addr(),
		"database": strconv.Itoa(cfg.Database),
	}

	if err := s.client.Ping(ctx); err != nil {
		details["error"] = err.Error()
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
