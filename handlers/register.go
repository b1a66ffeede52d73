package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/momo-integration/momo-payments.api/config"
	"github.com/momo-integration/momo-payments.api/handlers/form"
	"github.com/momo-integration/momo-payments.api/service"
)

var momoService service.RequestToPayService

// Register defines the route mappings for the main router
func Register(mainRouter *mux.Router, cfg config.Config) {
	momoService = &service.MoMoService{
		Config:     cfg,
		HTTPClient: service.NewHTTPClient(cfg.UpstreamTimeoutSeconds),
	}

	handleRequestToPayMessage = requestToPayMessageProducer(cfg)

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")
	mainRouter.Handle("/metrics", promhttp.Handler()).Methods("GET").Name("get-metrics")
	mainRouter.HandleFunc("/api/mtn", HandleRequestToPay).Methods("POST").Name("request-to-pay")

	form.Register(mainRouter)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
