package fixtures

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/jarcoal/httpmock"
	"github.com/momo-integration/momo-payments.api/models"
)

// Step names as recorded by FakeMoMo, matching service.Step.String()
const (
	StepProvision = "provision-api-user"
	StepAPIKey    = "generate-api-key"
	StepToken     = "exchange-token"
	StepPayment   = "request-to-pay"
	StepBalance   = "query-balance"
)

// Default responses returned by FakeMoMo
const (
	APIKey      = "key-123"
	AccessToken = "token-abc"
)

// GetRequestToPay returns the payment used across the tests
func GetRequestToPay() models.RequestToPay {
	return models.RequestToPay{
		Amount:     "100",
		Currency:   "EUR",
		ExternalID: "ext-1",
		Payer: models.Payer{
			PartyIDType: "MSISDN",
			PartyID:     "46733123450",
		},
		PayerMessage: "hi",
		PayeeNote:    "thanks",
	}
}

// RecordedCall is a request received by FakeMoMo
type RecordedCall struct {
	Step   string
	Method string
	Path   string
	Header http.Header
	Body   string
}

type fakeResponse struct {
	status int
	body   string
}

// FakeMoMo answers MoMo API calls through httpmock and records them in order. Every step
// succeeds unless overridden with Respond or Fail.
type FakeMoMo struct {
	mtx       sync.Mutex
	calls     []RecordedCall
	responses map[string]fakeResponse
	failures  map[string]error
	hangs     map[string]bool
}

// NewFakeMoMo returns a FakeMoMo with a 2xx response for every step
func NewFakeMoMo() *FakeMoMo {
	return &FakeMoMo{
		responses: map[string]fakeResponse{
			StepProvision: {status: http.StatusCreated},
			StepAPIKey:    {status: http.StatusCreated, body: `{"apiKey":"` + APIKey + `"}`},
			StepToken:     {status: http.StatusOK, body: `{"access_token":"` + AccessToken + `","token_type":"access_token","expires_in":3600}`},
			StepPayment:   {status: http.StatusAccepted},
			StepBalance:   {status: http.StatusOK, body: `{"availableBalance":"1000","currency":"EUR"}`},
		},
		failures: map[string]error{},
		hangs:    map[string]bool{},
	}
}

// Respond overrides the response for a step
func (f *FakeMoMo) Respond(step string, status int, body string) *FakeMoMo {
	f.responses[step] = fakeResponse{status: status, body: body}
	return f
}

// Fail makes a step return a transport error instead of a response
func (f *FakeMoMo) Fail(step string, err error) *FakeMoMo {
	f.failures[step] = err
	return f
}

// Hang makes a step block until the request's context is done, as an unresponsive MoMo would
func (f *FakeMoMo) Hang(step string) *FakeMoMo {
	f.hangs[step] = true
	return f
}

// Register installs the fake as httpmock's fallback responder. httpmock must already be activated.
func (f *FakeMoMo) Register() {
	httpmock.RegisterNoResponder(f.respond)
}

// Calls returns the recorded calls in the order they were made
func (f *FakeMoMo) Calls() []RecordedCall {
	f.mtx.Lock()
	defer f.mtx.Unlock()
	return append([]RecordedCall(nil), f.calls...)
}

// Steps returns the step names of the recorded calls in order
func (f *FakeMoMo) Steps() []string {
	var steps []string
	for _, call := range f.Calls() {
		steps = append(steps, call.Step)
	}
	return steps
}

func (f *FakeMoMo) respond(req *http.Request) (*http.Response, error) {
	step := stepFor(req)

	var body []byte
	if req.Body != nil {
		body, _ = io.ReadAll(req.Body)
	}

	f.mtx.Lock()
	f.calls = append(f.calls, RecordedCall{
		Step:   step,
		Method: req.Method,
		Path:   req.URL.Path,
		Header: req.Header.Clone(),
		Body:   string(body),
	})
	f.mtx.Unlock()

	if f.hangs[step] {
		<-req.Context().Done()
		return nil, req.Context().Err()
	}

	if err, ok := f.failures[step]; ok {
		return nil, err
	}

	response, ok := f.responses[step]
	if !ok {
		return httpmock.NewStringResponse(http.StatusNotFound, ""), nil
	}
	return httpmock.NewStringResponse(response.status, response.body), nil
}

func stepFor(req *http.Request) string {
	path := req.URL.Path
	switch {
	case req.Method == http.MethodPost && path == "/v1_0/apiuser":
		return StepProvision
	case req.Method == http.MethodPost && strings.HasPrefix(path, "/v1_0/apiuser/") && strings.HasSuffix(path, "/apikey"):
		return StepAPIKey
	case req.Method == http.MethodPost && path == "/collection/token/":
		return StepToken
	case req.Method == http.MethodPost && path == "/collection/v1_0/requesttopay":
		return StepPayment
	case req.Method == http.MethodGet && path == "/collection/v1_0/account/balance":
		return StepBalance
	default:
		return "unknown"
	}
}
