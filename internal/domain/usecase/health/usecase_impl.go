package health

import (
	"context"
	"strconv"

	"kma-forecast/internal/domain/address"
	"kma-forecast/internal/domain/gateway/store"
	"kma-forecast/internal/domain/model"
)

// CredentialStatusProvider exposes the state of the credential session.
type CredentialStatusProvider interface {
	Status() model.CredentialStatus
}

type healthUseCase struct {
	credentialStore store.CredentialStore
	addressIndex    *address.Index
	credential      CredentialStatusProvider
}

func NewHealthUseCase(credentialStore store.CredentialStore, addressIndex *address.Index, credential CredentialStatusProvider) UseCase {
	return &healthUseCase{
		credentialStore: credentialStore,
		addressIndex:    addressIndex,
		credential:      credential,
	}
}

// CheckHealth reports DOWN when the credential store is unreachable or the address
// index is empty. A missing credential is reported but does not make the service DOWN.
func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	storeHealth := useCase.credentialStore.Health(ctx)
	indexHealth := useCase.addressIndexHealth()
	credentialHealth := useCase.credentialHealth()

	overallStatus := model.StatusUp
	if storeHealth.Status != model.StatusUp || indexHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:          overallStatus,
		CredentialStore: storeHealth,
		AddressIndex:    indexHealth,
		Credential:      credentialHealth,
	}
}

func (useCase *healthUseCase) addressIndexHealth() model.ComponentHealthStatus {
	places := 0
	if useCase.addressIndex != nil {
		places = useCase.addressIndex.Len()
	}

	status := model.StatusUp
	if places == 0 {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{
		Status:  status,
		Details: map[string]string{"places": strconv.Itoa(places)},
	}
}

func (useCase *healthUseCase) credentialHealth() model.ComponentHealthStatus {
	credentialStatus := useCase.credential.Status()

	status := model.StatusUnknown
	if credentialStatus.State == model.StateReady {
		status = model.StatusUp
	}
	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"state":     string(credentialStatus.State),
			"keepLogin": strconv.FormatBool(credentialStatus.KeepLogin),
		},
	}
}
