package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"max.ks1230/public24-bot/internal/logger"
	"max.ks1230/public24-bot/internal/model/webhook"
)

const (
	readHeaderTimeout = 5 * time.Second
)

type fulfiller interface {
	Fulfill(ctx context.Context, req webhook.Request) (webhook.MessageList, error)
}

type Server struct {
	srv *http.Server
}

func New(port int, fulfillment fulfiller) *Server {
	router := mux.NewRouter()

	h := &webhookHandler{fulfiller: fulfillment}
	router.HandleFunc("/webhook", h.fulfill).Methods(http.MethodPost)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

func (s *Server) Run() error {
	logger.Info("HTTP server listening on " + s.srv.Addr)
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrap(err, "serve http")
}

func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("HTTP server shutting down")
	return s.srv.Shutdown(ctx)
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
