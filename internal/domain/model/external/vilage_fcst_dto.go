package external

// ResultCodeSuccess is the only header result code denoting a successful call.
const ResultCodeSuccess = "00"

// OpenAPIFault is the detail of the portal's XML fault envelope
// (<OpenAPI_ServiceResponse><cmmMsgHeader>...</cmmMsgHeader></OpenAPI_ServiceResponse>).
type OpenAPIFault struct {
	ErrMsg           string
	ReturnAuthMsg    string
	ReturnReasonCode string
}

// CredentialNotRegisteredMarker identifies a fault caused by an unknown service key.
const CredentialNotRegisteredMarker = "SERVICE_KEY_IS_NOT_REGISTERED_ERROR"
