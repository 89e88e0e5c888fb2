package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"kma-forecast/internal/domain/model"
)

// DefaultCredentialFileName is created in the user's home directory when no path is configured.
const DefaultCredentialFileName = ".weather_config.yml"

type fileCredentialStore struct {
	path string
	mu   sync.Mutex
}

// NewFileCredentialStore keeps the credential in a YAML file. An empty path selects
// DefaultCredentialFileName in the home directory.
func NewFileCredentialStore(path string) (CredentialStore, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to locate home directory: %w", err)
		}
		path = filepath.Join(home, DefaultCredentialFileName)
	}
	return &fileCredentialStore{path: path}, nil
}

func (s *fileCredentialStore) Load(_ context.Context) (model.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yml")
	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.Credential{}, nil
		}
		return model.Credential{}, fmt.Errorf("failed to read credential file: %w", err)
	}

	return model.Credential{
		ServiceKey: v.GetString(strings.ToLower(FieldServiceKey)),
		KeepLogin:  v.GetBool(strings.ToLower(FieldKeepLogin)),
	}, nil
}

func (s *fileCredentialStore) Save(_ context.Context, credential model.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write(credential)
}

// Clear blanks the stored key but keeps the file.
func (s *fileCredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return s.write(model.Credential{})
}

func (s *fileCredentialStore) write(credential model.Credential) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create credential directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yml")
	v.Set(strings.ToLower(FieldServiceKey), credential.ServiceKey)
	v.Set(strings.ToLower(FieldKeepLogin), credential.KeepLogin)
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write credential file: %w", err)
	}
	return os.Chmod(s.path, 0o600)
}

func (s *fileCredentialStore) Health(_ context.Context) model.ComponentHealthStatus {
	details := map[string]string{
		"backend": "file",
		"path":    s.path,
	}

	info, err := os.Stat(filepath.Dir(s.path))
	if err != nil || !info.IsDir() {
		if err != nil {
			details["error"] = err.Error()
		}
		return model.ComponentHealthStatus{Status: model.StatusDown, Details: details}
	}
	return model.ComponentHealthStatus{Status: model.StatusUp, Details: details}
}
