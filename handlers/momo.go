package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"

	"github.com/momo-integration/momo-payments.api/models"
	"github.com/momo-integration/momo-payments.api/utils"
)

// SuccessMessage is returned once every MoMo call has succeeded
const SuccessMessage = "All requests completed successfully"

// HandleRequestToPay asks MoMo to collect the payment in the request body from the payer
func HandleRequestToPay(w http.ResponseWriter, req *http.Request) {
	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse("request body empty"), http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var payment models.RequestToPay
	err := requestDecoder.Decode(&payment)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(fmt.Sprintf("request body invalid: [%v]", err)), http.StatusBadRequest)
		return
	}

	result, responseType, err := momoService.RequestToPay(req, payment)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error requesting payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
		utils.WriteJSONWithStatus(w, req, utils.NewErrorResponse(err.Error()), http.StatusInternalServerError)
	} else {
		utils.WriteJSONWithStatus(w, req, utils.NewMessageResponse(SuccessMessage), http.StatusOK)

		logData := log.Data{"external_id": payment.ExternalID, "status": http.StatusOK}
		if result != nil {
			logData["customer_reference"] = result.CustomerReference
		}
		log.InfoR(req, "Successful POST request to pay", logData)
	}

	// the payer has been asked to pay even if the balance check failed afterwards
	if result == nil || !result.PaymentAccepted {
		return
	}

	// the caller gets its response before the event is published
	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}
	if messageErr := handleRequestToPayMessage(result, payment); messageErr != nil {
		log.ErrorR(req, fmt.Errorf("error producing request to pay kafka message: [%v]", messageErr))
	}
}
