package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/villela/precificador/internal/config"
	"github.com/villela/precificador/internal/db"
	"github.com/villela/precificador/internal/logger"
	"github.com/villela/precificador/internal/migrations"
	"github.com/villela/precificador/internal/seed"
	"github.com/villela/precificador/internal/store"
)

type server struct {
	store *store.Store
	log   *slog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := migrations.Up(database.DB, "migrations"); err != nil {
		log.Error("failed to run database migrations", "err", err)
		os.Exit(1)
	}

	stats, err := seed.Run(database.DB)
	if err != nil {
		log.Error("failed to run startup seed", "err", err)
		os.Exit(1)
	}
	log.Info("startup seed complete", "inserts", stats.Inserts)

	srv := &server{store: store.New(database), log: log}

	r := chi.NewRouter()
	r.Use(countRequests)
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	r.Get("/health", handleHealth)
	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/produtos", http.StatusSeeOther)
	})

	r.Get("/custos", srv.handleCostsList)
	r.Get("/custos/adicionar", srv.handleCostAddForm)
	r.Post("/custos/adicionar", srv.handleCostAddSubmit)
	r.Get("/custos/{id}/editar", srv.handleCostEditForm)
	r.Post("/custos/{id}/editar", srv.handleCostEditSubmit)
	r.Post("/custos/{id}/remover", srv.handleCostRemove)

	r.Get("/jornada/editar", srv.handleScheduleForm)
	r.Post("/jornada/editar", srv.handleScheduleSubmit)

	r.Get("/materiais", srv.handleMaterialsList)
	r.Get("/materiais/adicionar", srv.handleMaterialAddForm)
	r.Post("/materiais/adicionar", srv.handleMaterialAddSubmit)
	r.Get("/materiais/{id}/editar", srv.handleMaterialEditForm)
	r.Post("/materiais/{id}/editar", srv.handleMaterialEditSubmit)
	r.Post("/materiais/{id}/remover", srv.handleMaterialRemove)

	r.Get("/produtos", srv.handleProductsList)
	r.Get("/produtos/adicionar", srv.handleProductAddForm)
	r.Post("/produtos/adicionar", srv.handleProductAddSubmit)
	r.Get("/produtos/{id}", srv.handleProductDetail)
	r.Get("/produtos/{id}/editar", srv.handleProductEditForm)
	r.Post("/produtos/{id}/editar", srv.handleProductEditSubmit)
	r.Post("/produtos/{id}/remover", srv.handleProductRemove)

	httpSrv := &http.Server{Addr: cfg.Addr, Handler: r}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("listening", "addr", cfg.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "err", err)
	}
	log.Info("graceful shutdown complete")
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
