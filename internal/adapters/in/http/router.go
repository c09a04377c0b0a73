// internal/adapters/in/http/router.go
package httpin

import (
	"net/http"

	"fencecalendar/internal/adapters/in/http/handlers"
	"fencecalendar/internal/adapters/in/http/middleware"
	usecase "fencecalendar/internal/application/usecase"
)

// RouterDeps collects all usecases (and other dependencies) injected from main.go.
type RouterDeps struct {
	BranchUC       *usecase.BranchUsecase
	OrderUC        *usecase.OrderUsecase
	CalendarViewUC *usecase.CalendarViewUsecase
	PlaceholderUC  *usecase.PlaceholderUsecase

	// Auth is optional; when nil (tests, local hacking) routes are mounted
	// unprotected.
	Auth *middleware.AuthMiddleware
}

// NewRouter sets up HTTP routing for all calendar endpoints.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Health check (always on, never behind auth)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	guard := func(h http.Handler) http.Handler {
		if deps.Auth == nil {
			return h
		}
		return deps.Auth.Handler(h)
	}

	if deps.BranchUC != nil {
		mux.Handle("/branches", guard(handlers.NewBranchHandler(deps.BranchUC)))
	}

	if deps.OrderUC != nil {
		mux.Handle("/orders/", guard(handlers.NewOrderHandler(deps.OrderUC)))
	}

	if deps.CalendarViewUC != nil {
		mux.Handle("/calendar-view/", guard(handlers.NewCalendarViewHandler(deps.CalendarViewUC)))
	}

	if deps.PlaceholderUC != nil {
		ph := guard(handlers.NewPlaceholderHandler(deps.PlaceholderUC))
		mux.Handle("/placeholders", ph)
		mux.Handle("/placeholders/", ph)
	}

	return middleware.Recover(mux)
}
