package model

// Credential is the provider service key plus the keep-login preference stored beside it.
// The key is opaque: it is only ever validated by a live provider call.
type Credential struct {
	ServiceKey string `json:"serviceKey"`
	KeepLogin  bool   `json:"keepLogin"`
}

// CredentialState is the state of the credential session.
type CredentialState string

const (
	StateAwaitingCredential CredentialState = "AWAITING_CREDENTIAL"
	StateValidating         CredentialState = "VALIDATING"
	StateReady              CredentialState = "READY"
)

// CredentialStatus is the externally visible view of the credential session.
type CredentialStatus struct {
	State     CredentialState `json:"state"`
	KeepLogin bool            `json:"keepLogin"`
}
