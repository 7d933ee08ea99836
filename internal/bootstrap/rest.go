package bootstrap

import (
	"github.com/go-chi/chi/v5"
	"github.com/quantra/financial-data-service/internal/api/rest"
)

// REST is the HTTP surface for the financial data service.
type REST struct {
	Handler *rest.Handler
	Router  *chi.Mux
}

// registerREST registers the HTTP handler and router.
func (b *Bootstrap) registerREST() {
	b.REST.Handler = rest.NewHandler(b.Usecase.FinancialDataUsecase, b.Logger)
	b.REST.Router = rest.NewRouter(b.REST.Handler)
}
