package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/adrianliechti/avatar/config"
	"github.com/adrianliechti/avatar/pkg/metrics"
	"github.com/adrianliechti/avatar/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// allowedMethods is every method a browser may send cross-origin; cors
// matches methods literally and has no wildcard for them.
var allowedMethods = []string{
	http.MethodHead,
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

type Server struct {
	*config.Config
	http.Handler

	api *api.Handler
}

func New(cfg *config.Config) (*Server, error) {
	relay, err := cfg.Relay()

	if err != nil {
		return nil, err
	}

	handler, err := api.New(relay, cfg.Voices)

	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	s := &Server{
		Config:  cfg,
		Handler: r,

		api: handler,
	}

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Handle("/metrics", metrics.Handler())

	s.api.AttachHealth(r)

	r.Group(func(r chi.Router) {
		r.Use(s.handleAuth)

		s.api.Attach(r)
	})

	return s, nil
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Address,
		Handler: otelhttp.NewHandler(s, "avatar"),

		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		srv.Shutdown(shutdownCtx)
	}()

	slog.Info("server listening", "address", s.Address, "origins", s.Origins)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.Authorizers) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		var lastErr error

		for _, a := range s.Authorizers {
			ctx, err := a.Authenticate(r.Context(), r)

			if err != nil {
				lastErr = err
				continue
			}

			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		slog.WarnContext(r.Context(), "unauthorized request", "path", r.URL.Path, "error", lastErr)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Unauthorized"}`))
	})
}
