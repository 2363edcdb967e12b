// Package http exposes the point-of-sale API over chi.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	"github.com/sarahbeaino/pharmapos/internal/apperr"
	"github.com/sarahbeaino/pharmapos/internal/auth"
	"github.com/sarahbeaino/pharmapos/internal/config"
	"github.com/sarahbeaino/pharmapos/internal/http/apierr"
	"github.com/sarahbeaino/pharmapos/internal/http/metric"
	"github.com/sarahbeaino/pharmapos/internal/http/middleware"
	"github.com/sarahbeaino/pharmapos/internal/http/swagger"
	"github.com/sarahbeaino/pharmapos/internal/service"
)

var tracer = otel.Tracer("internal/http")

// Service represents the HTTP service.
type Service struct {
	cfg     config.HTTP
	logger  *slog.Logger
	metrics *metric.Metrics

	pharmacy *service.Pharmacy
	authSvc  *auth.Service
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	reg prometheus.Registerer,
	pharmacy *service.Pharmacy,
	authSvc *auth.Service,
) *Service {
	return &Service{
		cfg:      cfg,
		logger:   log.With(slog.String("service", "http")),
		metrics:  metric.New(reg),
		pharmacy: pharmacy,
		authSvc:  authSvc,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	s.RegisterHandlers(r)

	return s.RunWithServer(ctx, r)
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(r chi.Router) {
	r.Get("/healthz", s.handleHealthz)
	r.Post("/auth/login", s.handleLogin)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.BearerAuth(s.authSvc))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", s.handleListProducts)
			r.Post("/", s.handleCreateProduct)
			r.Put("/{id}", s.handleUpdateProduct)
			r.Delete("/{id}", s.handleDeleteProduct)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Get("/", s.handleListClients)
			r.Post("/", s.handleCreateClient)
			r.Get("/balances", s.handleListClientBalances)
			r.Put("/{id}", s.handleUpdateClient)
			r.Delete("/{id}", s.handleDeleteClient)
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", s.handleListSales)
			r.Post("/", s.handleCreateSale)
			r.Patch("/{id}/status", s.handleUpdateSaleStatus)
			r.Delete("/{id}", s.handleDeleteSale)
		})

		r.Route("/purchase-orders", func(r chi.Router) {
			r.Get("/", s.handleListPurchaseOrders)
			r.Post("/", s.handleCreatePurchaseOrder)
			r.Post("/{id}/receive", s.handleReceivePurchaseOrderItems)
			r.Delete("/{id}", s.handleDeletePurchaseOrder)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", s.handleListNotifications)
			r.Delete("/", s.handleClearNotifications)
		})

		r.Get("/dashboard", s.handleDashboard)
		r.Get("/reports/low-stock", s.handleLowStockReport)

		r.Route("/export", func(r chi.Router) {
			r.Get("/inventory.csv", s.handleExportInventory)
			r.Get("/clients.csv", s.handleExportClients)
			r.Get("/sales.csv", s.handleExportSales)
		})
	})
}

func (s *Service) handleHealthz(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads a request body into dst, mapping malformed payloads to a
// validation error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.ValidationErr.WrapParent(fmt.Errorf("decode request body: %w", err))
	}
	return nil
}

func (s *Service) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding response",
			slog.Any("error", err))
	}
}

func (s *Service) respondError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}
