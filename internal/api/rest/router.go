package rest

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	financialdata "github.com/quantra/financial-data-service/internal/domain/financialdata"
	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/logger"
	"github.com/quantra/financial-data-service/pkg/util"
)

// Handler serves the read endpoints backed by the financial data usecase.
type Handler struct {
	usecase financialdata.Usecase
	logger  logger.Interface
}

// NewHandler creates a new REST handler.
func NewHandler(usecase financialdata.Usecase, logger logger.Interface) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// NewRouter builds the HTTP router for the service.
func NewRouter(handler *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(requestID)

	r.Route("/api", func(r chi.Router) {
		r.Get("/financial_data", handler.FinancialData)
		r.Get("/statistics", handler.Statistics)
	})

	return r
}

// requestID attaches a request id to the request context, generating one
// when the caller did not send an X-Request-Id header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := util.WithRequestID(r.Context(), r.Header.Get("X-Request-Id"))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// writeJSON writes the response body. The status is already on the wire
// when encoding fails, so a failure can only be logged, not answered.
func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.ErrorContext(ctx, errors.TracerFromError(err))
	}
}
