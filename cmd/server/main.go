package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/AngelCh415/SDR_GO/internal/config"
	"github.com/AngelCh415/SDR_GO/internal/derive"
	"github.com/AngelCh415/SDR_GO/internal/generate"
	"github.com/AngelCh415/SDR_GO/internal/httpx"
	"github.com/AngelCh415/SDR_GO/internal/ingest"
	"github.com/AngelCh415/SDR_GO/internal/obs"
	"github.com/AngelCh415/SDR_GO/internal/store"
	"github.com/AngelCh415/SDR_GO/internal/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config error", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	st := store.NewStore()
	ds := generate.Dataset(cfg.DefaultSeed)
	st.Replace(ds, derive.Derive(ds.Events))
	obs.DatasetsGenerated.Inc()
	obs.DatasetEvents.Set(float64(len(ds.Events)))

	svc := summary.NewService(st)
	client := ingest.NewHTTPClient(cfg.HTTPTimeout())

	r := httpx.NewRouter(logger, st, svc, client)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("starting server", slog.String("port", cfg.Port), slog.String("seed", cfg.DefaultSeed), slog.Int("events", len(ds.Events)))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server error", slog.String("err", err.Error()))
		os.Exit(1)
	}
}
