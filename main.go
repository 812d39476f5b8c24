package main

import (
	climate "Setpoint/internal/climate"
	config "Setpoint/internal/config"
	energy "Setpoint/internal/energy"
	logging "Setpoint/internal/logging"
	metrics "Setpoint/internal/metrics"
	middleware "Setpoint/internal/middleware"
	report "Setpoint/internal/report"
	repo "Setpoint/internal/repo"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

type App struct {
	Config  config.Config
	Logger  *zap.SugaredLogger
	Metrics *metrics.Metrics
	Model   *energy.Model
	Climate *climate.Handler
}

func HandleList(mux *mux.Router, app *App) {
	limiter := middleware.NewIPRateLimiter(rate.Limit(app.Config.RateLimitRPS), app.Config.RateLimitBurst)
	limiter.Metrics = app.Metrics

	savingsH := &energy.Handler{Model: app.Model, Logger: app.Logger, Metrics: app.Metrics}
	reportH := &report.Handler{Savings: savingsH}

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	api.HandleFunc("", savingsH.Calc).Methods("GET")
	api.HandleFunc("/report", reportH.Generate).Methods("GET")

	limited := func(h http.HandlerFunc) http.Handler { return limiter.LimitMiddleware(h) }
	mux.Handle("/climate", limited(app.Climate.Climate)).Methods("GET")
	mux.Handle("/city/{state}", limited(app.Climate.Cities)).Methods("GET")
	mux.Handle("/states", limited(app.Climate.States)).Methods("GET")

	mux.Handle("/metrics", app.Metrics.Handler()).Methods("GET")
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "dataset_rows": app.Model.Dataset().Len()})
	}).Methods("GET")

	if st, err := os.Stat(app.Config.StaticDir); err == nil && st.IsDir() {
		mux.PathPrefix("/").Handler(http.FileServer(http.Dir(app.Config.StaticDir)))
	}
}

// NewApp loads every reference table. Any failure means the process must not
// serve.
func NewApp(cfg config.Config, logger *zap.SugaredLogger) (*App, func(), error) {
	cleanup := func() {}

	data, err := energy.Load(cfg.DatasetPath)
	if err != nil {
		return nil, cleanup, fmt.Errorf("dataset: %w", err)
	}
	if err := data.Validate(); err != nil {
		return nil, cleanup, fmt.Errorf("dataset %s: %w", cfg.DatasetPath, err)
	}

	ashrae, err := climate.LoadASHRAE(cfg.ClimateZonesPath)
	if err != nil {
		return nil, cleanup, fmt.Errorf("climate zones: %w", err)
	}
	gazetteer, err := climate.LoadGazetteer(cfg.CitiesPath, cfg.MinPopulation)
	if err != nil {
		return nil, cleanup, fmt.Errorf("cities: %w", err)
	}

	var counties repo.Repository
	switch {
	case cfg.DatabaseURL != "":
		db, err := repo.InitDB(cfg.DatabaseURL)
		if err != nil {
			return nil, cleanup, err
		}
		cleanup = func() { db.Close() }
		counties = repo.NewPostgresCountyDB(db)
	case cfg.CountyZonesPath != "":
		csvRepo, err := repo.LoadCSVCountyDB(cfg.CountyZonesPath)
		if err != nil {
			return nil, cleanup, fmt.Errorf("county zones: %w", err)
		}
		for _, z := range csvRepo.Zones() {
			if _, err := climate.ParseZone(z); err != nil {
				return nil, cleanup, fmt.Errorf("county zones: %w", err)
			}
		}
		counties = csvRepo
	}

	m := metrics.New()
	m.SetDatasetRows(data.Len())

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: m,
		Model:   energy.NewModel(data, logger.Named("energy")),
		Climate: &climate.Handler{
			Gazetteer: gazetteer,
			ASHRAE:    ashrae,
			Counties:  counties,
			Logger:    logger.Named("climate"),
			Metrics:   m,
		},
	}
	logger.Infow("reference data loaded",
		"dataset", cfg.DatasetPath,
		"rows", data.Len(),
		"configurations", len(data.Configurations()),
		"county_lookup", counties != nil,
	)
	return app, cleanup, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config: ", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer logger.Sync()

	app, cleanup, err := NewApp(cfg, logger)
	if err != nil {
		logger.Fatalw("startup failed", "error", err)
	}
	defer cleanup()

	mux := mux.NewRouter()
	HandleList(mux, app)
	handler := middleware.CORS(mux)
	handler = middleware.AccessLog(logger.Named("http"))(handler)
	handler = handlers.CompressHandler(handler)
	handler = handlers.RecoveryHandler(handlers.RecoveryLogger(zap.NewStdLog(logger.Desugar())))(handler)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Infow("starting server", "addr", cfg.Addr, "tls", cfg.TLSCert != "")
		var err error
		if cfg.TLSCert != "" {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorw("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("shutdown failed", "error", err)
	}
	wg.Wait()
	logger.Info("server stopped")
}
