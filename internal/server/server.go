// Package server assembles the CellarCraft HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	anH "github.com/fekuna/omnipos-retail-service/internal/analytics/handler"
	anUCPkg "github.com/fekuna/omnipos-retail-service/internal/analytics/usecase"
	custH "github.com/fekuna/omnipos-retail-service/internal/customer/handler"
	custRepoPkg "github.com/fekuna/omnipos-retail-service/internal/customer/repository"
	custUCPkg "github.com/fekuna/omnipos-retail-service/internal/customer/usecase"
	"github.com/fekuna/omnipos-retail-service/internal/entity"
	evtH "github.com/fekuna/omnipos-retail-service/internal/event/handler"
	evtRepoPkg "github.com/fekuna/omnipos-retail-service/internal/event/repository"
	evtUCPkg "github.com/fekuna/omnipos-retail-service/internal/event/usecase"
	invH "github.com/fekuna/omnipos-retail-service/internal/inventory/handler"
	invUCPkg "github.com/fekuna/omnipos-retail-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-retail-service/internal/logger"
	"github.com/fekuna/omnipos-retail-service/internal/metrics"
	ooH "github.com/fekuna/omnipos-retail-service/internal/onlineorder/handler"
	ooRepoPkg "github.com/fekuna/omnipos-retail-service/internal/onlineorder/repository"
	ooUCPkg "github.com/fekuna/omnipos-retail-service/internal/onlineorder/usecase"
	prodH "github.com/fekuna/omnipos-retail-service/internal/product/handler"
	prodRepoPkg "github.com/fekuna/omnipos-retail-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-retail-service/internal/product/usecase"
	poH "github.com/fekuna/omnipos-retail-service/internal/purchaseorder/handler"
	poRepoPkg "github.com/fekuna/omnipos-retail-service/internal/purchaseorder/repository"
	poUCPkg "github.com/fekuna/omnipos-retail-service/internal/purchaseorder/usecase"
	"github.com/fekuna/omnipos-retail-service/internal/response"
	"github.com/fekuna/omnipos-retail-service/internal/sale"
	saleH "github.com/fekuna/omnipos-retail-service/internal/sale/handler"
	saleRepoPkg "github.com/fekuna/omnipos-retail-service/internal/sale/repository"
	saleUCPkg "github.com/fekuna/omnipos-retail-service/internal/sale/usecase"
	setH "github.com/fekuna/omnipos-retail-service/internal/settings/handler"
	setRepoPkg "github.com/fekuna/omnipos-retail-service/internal/settings/repository"
	setUCPkg "github.com/fekuna/omnipos-retail-service/internal/settings/usecase"
	staffH "github.com/fekuna/omnipos-retail-service/internal/staff/handler"
	staffRepoPkg "github.com/fekuna/omnipos-retail-service/internal/staff/repository"
	staffUCPkg "github.com/fekuna/omnipos-retail-service/internal/staff/usecase"
	supH "github.com/fekuna/omnipos-retail-service/internal/supplier/handler"
	supRepoPkg "github.com/fekuna/omnipos-retail-service/internal/supplier/repository"
	supUCPkg "github.com/fekuna/omnipos-retail-service/internal/supplier/usecase"
	"github.com/fekuna/omnipos-retail-service/internal/telemetry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const apiName = "CellarCraft API"

type Options struct {
	// Location is the store timezone used for seeded event dates and
	// analytics day buckets. Nil means UTC.
	Location *time.Location
	// Metrics, when set, instruments every request and serves /metrics.
	Metrics *metrics.Metrics
	// ServiceName names the server spans.
	ServiceName string
}

type seeder interface {
	Name() string
	EnsureSeed(ctx context.Context) (bool, error)
}

type Server struct {
	backend entity.Backend
	router  chi.Router
	seeders []seeder
	service string
	logger  logger.ZapLogger
}

func New(backend entity.Backend, opts Options, log logger.ZapLogger) *Server {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	// Repositories
	prodRepo := prodRepoPkg.NewEntityRepository(backend, log)
	custRepo := custRepoPkg.NewEntityRepository(backend, log)
	saleRepo := saleRepoPkg.NewEntityRepository(backend, log)
	supRepo := supRepoPkg.NewEntityRepository(backend, log)
	poRepo := poRepoPkg.NewEntityRepository(backend, log)
	ooRepo := ooRepoPkg.NewEntityRepository(backend, log)
	evtRepo := evtRepoPkg.NewEntityRepository(backend, loc, log)
	staffRepo := staffRepoPkg.NewEntityRepository(backend, log)
	setRepo := setRepoPkg.NewEntityRepository(backend)

	// UseCases
	var observers []sale.Observer
	if opts.Metrics != nil {
		observers = append(observers, opts.Metrics)
	}
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, log)
	invUC := invUCPkg.NewInventoryUseCase(prodRepo, log)
	saleUC := saleUCPkg.NewSaleUseCase(saleRepo, backend, invUC, log, observers...)
	anUC := anUCPkg.NewAnalyticsUseCase(prodRepo, saleRepo, loc, log)

	s := &Server{
		backend: backend,
		router:  chi.NewRouter(),
		seeders: []seeder{prodRepo, custRepo, saleRepo, supRepo, poRepo, ooRepo, evtRepo, staffRepo},
		service: opts.ServiceName,
		logger:  log,
	}

	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	an := anH.NewAnalyticsHandler(anUC, log)
	r.Route("/api", func(r chi.Router) {
		r.Get("/test", s.test)
		r.Delete("/all-data", s.resetAll)
		r.Get("/dashboard", an.Dashboard)
		r.Get("/analytics", an.Report)

		r.Route("/products", prodH.NewProductHandler(prodUC, log).RegisterRoutes)
		r.Route("/inventory", invH.NewInventoryHandler(invUC, log).RegisterRoutes)
		r.Route("/customers", custH.NewCustomerHandler(custUCPkg.NewCustomerUseCase(custRepo, log), log).RegisterRoutes)
		r.Route("/sales", saleH.NewSaleHandler(saleUC, log).RegisterRoutes)
		r.Route("/suppliers", supH.NewSupplierHandler(supUCPkg.NewSupplierUseCase(supRepo, log), log).RegisterRoutes)
		r.Route("/purchase-orders", poH.NewPurchaseOrderHandler(poUCPkg.NewPurchaseOrderUseCase(poRepo, log), log).RegisterRoutes)
		r.Route("/online-orders", ooH.NewOnlineOrderHandler(ooUCPkg.NewOnlineOrderUseCase(ooRepo, log), log).RegisterRoutes)
		r.Route("/events", evtH.NewEventHandler(evtUCPkg.NewEventUseCase(evtRepo, log), log).RegisterRoutes)
		r.Route("/staff", staffH.NewStaffHandler(staffUCPkg.NewStaffUseCase(staffRepo, log), log).RegisterRoutes)
		r.Route("/settings", setH.NewSettingsHandler(setUCPkg.NewSettingsUseCase(setRepo, log), log).RegisterRoutes)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Not found")
	})

	return s
}

// Handler returns the router wrapped in request tracing.
func (s *Server) Handler() http.Handler {
	return telemetry.Middleware(s.service)(s.router)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Seed fills every empty collection with its demo records.
func (s *Server) Seed(ctx context.Context) error {
	for _, sd := range s.seeders {
		seeded, err := sd.EnsureSeed(ctx)
		if err != nil {
			return err
		}
		if seeded {
			s.logger.Info("seeded collection", zap.String("kind", sd.Name()))
		}
	}
	return nil
}

func (s *Server) test(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"name": apiName})
}

func (s *Server) resetAll(w http.ResponseWriter, r *http.Request) {
	if err := s.backend.Reset(r.Context()); err != nil {
		s.logger.Error("failed to clear all data", zap.Error(err))
		response.Bad(w, "Failed to clear all data.")
		return
	}
	s.logger.Warn("all application data cleared", zap.String("request_id", middleware.GetReqID(r.Context())))
	response.OK(w, map[string]string{"message": "All application data has been cleared."})
}
