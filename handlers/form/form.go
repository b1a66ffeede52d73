// Package form serves the payment form used to submit a request to pay to /api/mtn.
package form

import (
	_ "embed"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

//go:embed index.html
var page []byte

// Register will register the form route mapping
func Register(r *mux.Router) {
	r.HandleFunc("/", getPaymentForm).Methods("GET").Name("get-payment-form")
}

func getPaymentForm(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(page); err != nil {
		log.ErrorR(req, fmt.Errorf("error writing payment form: %v", err))
	}
}
