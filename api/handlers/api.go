package handlers

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/linesmerrill/dmv-records-api/api"
	"github.com/linesmerrill/dmv-records-api/api/scheduler"
	"github.com/linesmerrill/dmv-records-api/config"
	"github.com/linesmerrill/dmv-records-api/databases"
	"github.com/linesmerrill/dmv-records-api/records"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router   *mux.Router
	DB       *databases.Client
	Config   config.Config
	Registry *prometheus.Registry

	ctx       context.Context
	cancel    context.CancelFunc
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	if a.ctx == nil {
		a.ctx, a.cancel = context.WithCancel(context.Background())
	}

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(a.DB.DB.DB, a.DB.Driver()),
	)
	metrics := api.NewMetrics(a.Registry)

	// setup go-guardian for middleware
	m := api.NewAuthenticator(a.ctx, databases.NewUserDatabase(a.DB), &a.Config)

	svc := records.New(a.DB)
	h := Health{DB: a.DB}
	u := User{Auth: m}
	c := Character{Service: svc}
	v := Vehicle{Service: svc}
	rep := Report{Service: svc}
	w := Warrant{Service: svc}

	limiter := api.NewRateLimiter(a.Config.RateLimitRequests, a.Config.RateLimitWindow, a.Config.RateLimitTrustProxy)

	r := mux.NewRouter()
	r.NotFoundHandler = api.NotFoundHandler()
	r.MethodNotAllowedHandler = api.MethodNotAllowedHandler()
	r.Use(metrics.Middleware)
	r.Use(api.RecoverMiddleware)
	r.Use(limiter.Middleware)
	r.Use(api.TimeoutMiddleware(a.Config.RequestTimeout))

	// healthchex
	r.HandleFunc("/health", h.HealthCheckHandler).Methods("GET")
	r.Handle("/metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{})).Methods("GET")

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.NotFoundHandler = r.NotFoundHandler
	apiRouter.MethodNotAllowedHandler = r.MethodNotAllowedHandler
	apiRouter.Handle("/me", m.Middleware(http.HandlerFunc(u.MeHandler))).Methods("GET")
	apiRouter.Handle("/auth/token", m.Middleware(http.HandlerFunc(u.RevokeTokenHandler))).Methods("DELETE")

	dmv := apiRouter.PathPrefix("/dmv").Subrouter()
	dmv.NotFoundHandler = r.NotFoundHandler
	dmv.MethodNotAllowedHandler = r.MethodNotAllowedHandler
	dmv.Handle("/characters", m.Middleware(http.HandlerFunc(c.ListCharactersHandler))).Methods("GET")
	dmv.Handle("/characters", m.Middleware(http.HandlerFunc(c.CreateCharacterHandler))).Methods("POST")
	dmv.Handle("/characters/{character_id}", m.Middleware(http.HandlerFunc(c.CharacterByIDHandler))).Methods("GET")
	dmv.Handle("/characters/{character_id}", m.Middleware(http.HandlerFunc(c.UpdateCharacterHandler))).Methods("PUT")
	dmv.Handle("/characters/{character_id}/vehicles", m.Middleware(http.HandlerFunc(v.AddVehicleHandler))).Methods("POST")
	dmv.Handle("/characters/{character_id}/citations", m.Middleware(http.HandlerFunc(rep.CreateCitationHandler))).Methods("POST")
	dmv.Handle("/characters/{character_id}/arrests", m.Middleware(http.HandlerFunc(rep.CreateArrestHandler))).Methods("POST")
	dmv.Handle("/characters/{character_id}/warrants", m.Middleware(http.HandlerFunc(w.CreateWarrantHandler))).Methods("POST")
	dmv.Handle("/vehicles/{vehicle_id}", m.Middleware(http.HandlerFunc(v.UpdateVehicleHandler))).Methods("PUT")
	dmv.Handle("/vehicles/{vehicle_id}", m.Middleware(http.HandlerFunc(v.DeleteVehicleHandler))).Methods("DELETE")
	dmv.Handle("/warrants/{warrant_id}/complete", m.Middleware(http.HandlerFunc(w.CompleteWarrantHandler))).Methods("PUT")
	dmv.Handle("/search", m.Middleware(http.HandlerFunc(c.SearchHandler))).Methods("GET")

	return r
}

// Initialize is invoked by main to connect with the database, create a
// router and start the background jobs
func (a *App) Initialize(ctx context.Context) error {
	a.ctx, a.cancel = context.WithCancel(ctx)

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}
	if err := client.Connect(a.ctx); err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		_ = client.Close()
		return err
	}
	a.DB = client
	zap.S().Info("dmv-records-api has connected to the database")

	// initialize api router
	a.initializeRoutes()

	a.scheduler = scheduler.NewScheduler(client, a.Config.HealthCheckSchedule)
	if err := a.scheduler.Start(); err != nil {
		zap.S().Errorw("failed to start scheduler", "error", err)
		a.scheduler = nil
	}
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// Close stops the background jobs and releases the connection pool
func (a *App) Close() error {
	if a.scheduler != nil {
		a.scheduler.Stop()
	}
	if a.cancel != nil {
		a.cancel()
	}
	if a.DB == nil {
		return nil
	}
	zap.S().Info("closing database connection pool")
	return a.DB.Close()
}
