package service

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/momo-integration/momo-payments.api/config"
	"github.com/momo-integration/momo-payments.api/models"
)

// RequestToPayService is the interface the handlers use to request a payment
type RequestToPayService interface {
	RequestToPay(req *http.Request, payment models.RequestToPay) (*models.RequestToPayResult, ResponseType, error)
}

// MoMoService runs the MoMo call chain for a request to pay. Every request provisions its
// own API user, key and access token; nothing is cached between requests.
type MoMoService struct {
	Config     config.Config
	HTTPClient *http.Client
	// NewReference generates correlation ids, uuid.NewString when nil
	NewReference func() string
}

var validate = validator.New()

// RequestToPay provisions an API user, generates its key, exchanges them for an access token,
// submits the payment and then checks the account balance. The first failing step stops the
// chain and its error is returned. The returned result is non-nil once references have been
// generated so callers can tell whether MoMo accepted the payment before a later failure.
// The payment is forwarded as received; MoMo decides whether it is acceptable.
func (s *MoMoService) RequestToPay(req *http.Request, payment models.RequestToPay) (*models.RequestToPayResult, ResponseType, error) {
	result := &models.RequestToPayResult{
		MerchantReference: s.newReference(),
		CustomerReference: s.newReference(),
	}
	if result.MerchantReference == result.CustomerReference {
		return nil, Error, fmt.Errorf("customer and merchant references collided: [%s]", result.CustomerReference)
	}

	logData := log.Data{
		"customer_reference": result.CustomerReference,
		"merchant_reference": result.MerchantReference,
		"external_id":        payment.ExternalID,
	}
	log.TraceR(req, "starting MoMo request to pay", logData)

	if err := checkRequestToPay(payment); err != nil {
		log.InfoR(req, "request to pay looks invalid, forwarding to MoMo anyway", log.Data{
			"customer_reference": result.CustomerReference,
			"problem":            err.Error(),
		})
	}

	ctx := req.Context()

	upstream, err := s.createAPIUser(ctx, result.MerchantReference)
	if err = s.record(req, result, ProvisionAPIUser, upstream, err); err != nil {
		return result, Error, err
	}

	credential, upstream, err := s.createAPIKey(ctx, result.MerchantReference)
	if err = s.record(req, result, GenerateAPIKey, upstream, err); err != nil {
		return result, Error, err
	}

	token, upstream, err := s.createAccessToken(ctx, credential)
	if err = s.record(req, result, ExchangeToken, upstream, err); err != nil {
		return result, Error, err
	}

	upstream, err = s.requestToPay(ctx, token, result.CustomerReference, payment)
	if err = s.record(req, result, SubmitPayment, upstream, err); err != nil {
		return result, Error, err
	}
	result.PaymentAccepted = true

	balance, upstream, err := s.getAccountBalance(ctx, token)
	if err = s.record(req, result, QueryBalance, upstream, err); err != nil {
		if !s.Config.IgnoreBalanceFailure {
			return result, Error, err
		}
		log.ErrorR(req, fmt.Errorf("ignoring balance check failure after payment was accepted: [%v]", err), logData)
		return result, Success, nil
	}
	result.Balance = balance

	log.InfoR(req, "MoMo account balance", log.Data{
		"available_balance": balance.AvailableBalance,
		"currency":          balance.Currency,
	})
	log.InfoR(req, "MoMo request to pay completed", logData)

	return result, Success, nil
}

// record logs the outcome of a step and keeps its result
func (s *MoMoService) record(req *http.Request, result *models.RequestToPayResult, step Step, upstream *models.UpstreamResult, err error) error {
	data := log.Data{
		"step":               step.String(),
		"customer_reference": result.CustomerReference,
		"merchant_reference": result.MerchantReference,
	}

	if upstream != nil {
		result.Calls = append(result.Calls, *upstream)
		data["status"] = upstream.Status
		data["status_text"] = upstream.StatusText
	}

	if err != nil {
		var upstreamErr *UpstreamError
		if errors.As(err, &upstreamErr) && upstreamErr.Body != "" {
			data["response_body"] = upstreamErr.Body
		}
		log.ErrorR(req, err, data)
		return err
	}

	log.InfoR(req, "MoMo response", data)
	return nil
}

func (s *MoMoService) newReference() string {
	if s.NewReference != nil {
		return s.NewReference()
	}
	return uuid.NewString()
}

// checkRequestToPay reports a payment MoMo is likely to reject
func checkRequestToPay(payment models.RequestToPay) error {
	if err := validate.Struct(payment); err != nil {
		return err
	}

	amount, err := decimal.NewFromString(payment.Amount)
	if err != nil {
		return fmt.Errorf("amount [%s] is not a decimal: [%w]", payment.Amount, err)
	}
	if amount.Sign() <= 0 {
		return fmt.Errorf("amount [%s] must be greater than zero", payment.Amount)
	}

	return nil
}
