package store

import (
	"context"

	"kma-forecast/internal/domain/model"
)

// Stored field names, shared by every backend.
const (
	FieldServiceKey = "SERVICE_KEY"
	FieldKeepLogin  = "KEEP_LOGIN"
)

// CredentialStore is the key/value source the credential is read from and written to.
// An absent credential is not an error: Load returns a zero Credential.
type CredentialStore interface {
	Load(ctx context.Context) (model.Credential, error)
	Save(ctx context.Context, credential model.Credential) error
	Clear(ctx context.Context) error
	Health(ctx context.Context) model.ComponentHealthStatus
}
