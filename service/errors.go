package service

import (
	"errors"
	"fmt"
)

// Errors identifying which step of the MoMo call chain failed. Use errors.Is against an
// error returned from RequestToPay.
var (
	ErrUpstreamProvisioning = errors.New("error provisioning MoMo API user")
	ErrUpstreamCredential   = errors.New("error generating MoMo API key")
	ErrUpstreamAuth         = errors.New("error exchanging MoMo credentials for access token")
	ErrUpstreamPayment      = errors.New("error requesting payment from MoMo")
	ErrUpstreamBalance      = errors.New("error getting MoMo account balance")
)

// Step is one of the calls made to MoMo, in the order they are made
type Step int

// Steps of the request to pay call chain
const (
	ProvisionAPIUser Step = iota
	GenerateAPIKey
	ExchangeToken
	SubmitPayment
	QueryBalance
)

var steps = [...]string{
	"provision-api-user",
	"generate-api-key",
	"exchange-token",
	"request-to-pay",
	"query-balance",
}

var stepErrors = [...]error{
	ErrUpstreamProvisioning,
	ErrUpstreamCredential,
	ErrUpstreamAuth,
	ErrUpstreamPayment,
	ErrUpstreamBalance,
}

func (s Step) String() string {
	return steps[s]
}

// Kind returns the sentinel error for a failure at this step
func (s Step) Kind() error {
	return stepErrors[s]
}

// UpstreamError is returned when a call to MoMo fails, either because it could not be made,
// because MoMo responded with a non-2xx status or because the response was missing a field.
// StatusCode is 0 when no response was received.
type UpstreamError struct {
	Step       Step
	StatusCode int
	StatusText string
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: [%v]", e.Step.Kind(), e.Err)
}

// Unwrap exposes both the step's sentinel and the underlying cause
func (e *UpstreamError) Unwrap() []error {
	return []error{e.Step.Kind(), e.Err}
}

func statusError(code int) error {
	return fmt.Errorf("request failed with status code %d", code)
}

func missingFieldError(field string) error {
	return fmt.Errorf("%s missing from response", field)
}
