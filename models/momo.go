package models

// RequestToPay is the payment received in the body of the incoming request. It is
// forwarded to MoMo unchanged as the body of the requesttopay call.
type RequestToPay struct {
	Amount       string `json:"amount"       validate:"required"`
	Currency     string `json:"currency"     validate:"required"`
	ExternalID   string `json:"externalId"`
	Payer        Payer  `json:"payer"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

// Payer identifies the party the money is requested from
type Payer struct {
	PartyIDType string `json:"partyIdType" validate:"required"`
	PartyID     string `json:"partyId"     validate:"required"`
}

// OutgoingAPIUserRequest is the body sent to MoMo when provisioning an API user
type OutgoingAPIUserRequest struct {
	ProviderCallbackHost string `json:"providerCallbackHost"`
}

// IncomingAPIKeyResponse is the response expected back from MoMo after generating an API key
type IncomingAPIKeyResponse struct {
	APIKey string `json:"apiKey"`
}

// APICredential is the API user and key pair used to obtain an access token
type APICredential struct {
	APIUser string
	APIKey  string
}

// AccessToken is the response expected back from the MoMo collection token endpoint
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// AccountBalance is the response expected back from the MoMo balance endpoint
type AccountBalance struct {
	AvailableBalance string `json:"availableBalance"`
	Currency         string `json:"currency"`
}

// UpstreamResult records the status of a single call to MoMo. Response bodies are not kept.
type UpstreamResult struct {
	Status     int    `json:"status"`
	StatusText string `json:"status_text"`
}

// RequestToPayResult holds what is known about a request to pay after the call chain has run,
// including when the chain stopped part way through.
type RequestToPayResult struct {
	CustomerReference string
	MerchantReference string
	// PaymentAccepted is set once MoMo has accepted the requesttopay call, even if the balance check later fails.
	PaymentAccepted bool
	Balance         *AccountBalance
	Calls           []UpstreamResult
}
