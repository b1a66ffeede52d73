package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/momo-integration/momo-payments.api/models"
)

const (
	headerSubscriptionKey   = "Ocp-Apim-Subscription-Key"
	headerReferenceID       = "X-Reference-Id"
	headerTargetEnvironment = "X-Target-Environment"
)

// NewHTTPClient returns the client used for every call to MoMo
func NewHTTPClient(timeoutSeconds int) *http.Client {
	return &http.Client{
		Timeout: time.Duration(timeoutSeconds) * time.Second,
	}
}

// createAPIUser registers a new API user under the merchant reference
func (s *MoMoService) createAPIUser(ctx context.Context, merchantReference string) (*models.UpstreamResult, error) {
	header := http.Header{}
	header.Set(headerReferenceID, merchantReference)

	body := models.OutgoingAPIUserRequest{ProviderCallbackHost: s.Config.ProviderCallbackHost}

	return s.call(ctx, ProvisionAPIUser, http.MethodPost, "/v1_0/apiuser", header, body, nil)
}

// createAPIKey generates a key for the API user created by createAPIUser
func (s *MoMoService) createAPIKey(ctx context.Context, merchantReference string) (*models.APICredential, *models.UpstreamResult, error) {
	path := "/v1_0/apiuser/" + url.PathEscape(merchantReference) + "/apikey"

	var keyResponse models.IncomingAPIKeyResponse
	result, err := s.call(ctx, GenerateAPIKey, http.MethodPost, path, http.Header{}, nil, &keyResponse)
	if err != nil {
		return nil, result, err
	}

	if keyResponse.APIKey == "" {
		return nil, result, upstreamFieldError(GenerateAPIKey, result, "apiKey")
	}

	return &models.APICredential{APIUser: merchantReference, APIKey: keyResponse.APIKey}, result, nil
}

// createAccessToken exchanges the API user and key for a bearer token using basic auth
func (s *MoMoService) createAccessToken(ctx context.Context, credential *models.APICredential) (*models.AccessToken, *models.UpstreamResult, error) {
	header := http.Header{}
	header.Set("Authorization", "Basic "+basicCredentials(credential))

	var token models.AccessToken
	result, err := s.call(ctx, ExchangeToken, http.MethodPost, "/collection/token/", header, nil, &token)
	if err != nil {
		return nil, result, err
	}

	if token.AccessToken == "" {
		return nil, result, upstreamFieldError(ExchangeToken, result, "access_token")
	}

	return &token, result, nil
}

// requestToPay submits the payment under the customer reference. MoMo accepts the request
// asynchronously so a 2xx only means the payer has been asked to pay.
func (s *MoMoService) requestToPay(ctx context.Context, token *models.AccessToken, customerReference string, payment models.RequestToPay) (*models.UpstreamResult, error) {
	header := http.Header{}
	header.Set(headerReferenceID, customerReference)
	header.Set(headerTargetEnvironment, s.Config.TargetEnvironment)
	header.Set("Authorization", "Bearer "+token.AccessToken)

	return s.call(ctx, SubmitPayment, http.MethodPost, "/collection/v1_0/requesttopay", header, payment, nil)
}

// getAccountBalance reads the collection account balance with the bearer token
func (s *MoMoService) getAccountBalance(ctx context.Context, token *models.AccessToken) (*models.AccountBalance, *models.UpstreamResult, error) {
	header := http.Header{}
	header.Set(headerTargetEnvironment, s.Config.TargetEnvironment)
	header.Set("Content-Type", "application/json")
	header.Set("Authorization", "Bearer "+token.AccessToken)

	var balance models.AccountBalance
	result, err := s.call(ctx, QueryBalance, http.MethodGet, "/collection/v1_0/account/balance", header, nil, &balance)
	if err != nil {
		return nil, result, err
	}

	return &balance, result, nil
}

// call makes a single request to MoMo. The subscription key is added to every call. A 2xx
// response body is decoded into out when out is not nil.
func (s *MoMoService) call(ctx context.Context, step Step, method, path string, header http.Header, body interface{}, out interface{}) (*models.UpstreamResult, error) {
	var requestBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &UpstreamError{Step: step, Err: fmt.Errorf("error encoding request body: [%w]", err)}
		}
		requestBody = bytes.NewReader(b)
	}

	request, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(s.Config.MoMoBaseURL, "/")+path, requestBody)
	if err != nil {
		return nil, &UpstreamError{Step: step, Err: fmt.Errorf("error generating request for MoMo: [%w]", err)}
	}

	for name, values := range header {
		for _, value := range values {
			request.Header.Add(name, value)
		}
	}
	request.Header.Set(headerSubscriptionKey, s.Config.SubscriptionKey)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := s.httpClient().Do(request)
	upstreamDuration.WithLabelValues(step.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		upstreamCalls.WithLabelValues(step.String(), "error").Inc()
		return nil, &UpstreamError{Step: step, Err: err}
	}

	defer resp.Body.Close()
	upstreamCalls.WithLabelValues(step.String(), strconv.Itoa(resp.StatusCode)).Inc()

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Step: step, StatusCode: resp.StatusCode, Err: fmt.Errorf("error reading response from MoMo: [%w]", err)}
	}

	result := &models.UpstreamResult{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, &UpstreamError{
			Step:       step,
			StatusCode: result.Status,
			StatusText: result.StatusText,
			Body:       string(responseBody),
			Err:        statusError(resp.StatusCode),
		}
	}

	// 2xx bodies can carry the api key or access token so they are never kept on errors
	if out != nil && len(responseBody) > 0 {
		if err = json.Unmarshal(responseBody, out); err != nil {
			return result, &UpstreamError{
				Step:       step,
				StatusCode: result.Status,
				StatusText: result.StatusText,
				Err:        fmt.Errorf("error reading response from MoMo: [%w]", err),
			}
		}
	}

	return result, nil
}

func (s *MoMoService) httpClient() *http.Client {
	if s.HTTPClient == nil {
		return http.DefaultClient
	}
	return s.HTTPClient
}

func upstreamFieldError(step Step, result *models.UpstreamResult, field string) error {
	return &UpstreamError{
		Step:       step,
		StatusCode: result.Status,
		StatusText: result.StatusText,
		Err:        missingFieldError(field),
	}
}

func basicCredentials(credential *models.APICredential) string {
	return base64.StdEncoding.EncodeToString([]byte(credential.APIUser + ":" + credential.APIKey))
}

// statusText strips the code from resp.Status, falling back to the standard text
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
