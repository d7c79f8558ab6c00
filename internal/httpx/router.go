package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AngelCh415/SDR_GO/internal/csvio"
	"github.com/AngelCh415/SDR_GO/internal/derive"
	"github.com/AngelCh415/SDR_GO/internal/generate"
	"github.com/AngelCh415/SDR_GO/internal/ingest"
	"github.com/AngelCh415/SDR_GO/internal/models"
	"github.com/AngelCh415/SDR_GO/internal/obs"
	"github.com/AngelCh415/SDR_GO/internal/store"
	"github.com/AngelCh415/SDR_GO/internal/summary"
	"github.com/AngelCh415/SDR_GO/internal/utils"
)

const maxImportBytes = 32 << 20

type datasetInfo struct {
	Seed       string `json:"seed"`
	Events     int    `json:"events"`
	SDRs       int    `json:"sdrs"`
	Teams      int    `json:"teams"`
	Industries int    `json:"industries"`
	Companies  int    `json:"companies"`
}

func NewRouter(log *slog.Logger, st *store.Store, svc *summary.Service, client ingest.HTTPClient) http.Handler {
	mux := chi.NewRouter()
	mux.Use(utils.RequestID)
	mux.Use(utils.Logger(log))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ok")) })
	mux.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); w.Write([]byte("ready")) })
	mux.Handle("/metrics", promhttp.Handler())

	mux.Post("/dataset/generate", func(w http.ResponseWriter, r *http.Request) {
		seed := r.URL.Query().Get("seed")
		if seed == "" {
			http.Error(w, "seed required", 400)
			return
		}
		ds := generate.Dataset(seed)
		st.Replace(ds, derive.Derive(ds.Events))
		obs.DatasetsGenerated.Inc()
		obs.DatasetEvents.Set(float64(len(ds.Events)))
		log.Info("dataset generated", slog.String("seed", seed), slog.Int("events", len(ds.Events)))
		writeJSON(w, info(ds))
	})

	mux.Get("/dataset", func(w http.ResponseWriter, r *http.Request) {
		ds, _ := st.Snapshot()
		writeJSON(w, info(ds))
	})

	mux.Get("/summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, svc.Dashboard(r.URL.Query()))
	})

	mux.Get("/export/csv", func(w http.ResponseWriter, r *http.Request) {
		ds, derived := st.Snapshot()
		sum := summary.Build(derived, ds)
		body := csvio.Marshal(ds.Events, sum, ds.Seed, time.Now())
		obs.CSVExports.Inc()
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="outreach-events.csv"`)
		w.Write(body)
	})

	mux.Post("/import/csv", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, maxImportBytes))
		if err != nil {
			http.Error(w, "read body: "+err.Error(), 400)
			return
		}
		importCSV(log, st, w, body)
	})

	mux.Post("/import/run", func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if url == "" {
			http.Error(w, "url required", 400)
			return
		}
		body, err := ingest.FetchCSV(r.Context(), client, url)
		if err != nil {
			obs.CSVImports.WithLabelValues("fetch_error").Inc()
			http.Error(w, err.Error(), 502)
			return
		}
		importCSV(log, st, w, body)
	})

	return mux
}

// importCSV parses, reconstructs and swaps the dataset. On any parse failure
// the prior dataset stays active and the message is reported verbatim.
func importCSV(log *slog.Logger, st *store.Store, w http.ResponseWriter, body []byte) {
	res, err := csvio.Parse(body)
	if err != nil {
		obs.CSVImports.WithLabelValues("parse_error").Inc()
		var pe *csvio.ParseError
		if errors.As(err, &pe) {
			http.Error(w, pe.Message, 422)
			return
		}
		http.Error(w, err.Error(), 422)
		return
	}
	seed := res.Seed
	if seed == "" {
		seed = "imported"
	}
	ds := csvio.ReconstructDataset(res.Events, seed)
	st.Replace(ds, derive.Derive(ds.Events))
	obs.CSVImports.WithLabelValues("ok").Inc()
	obs.DatasetEvents.Set(float64(len(ds.Events)))
	log.Info("csv imported", slog.String("seed", seed), slog.Int("events", len(ds.Events)))
	writeJSON(w, info(ds))
}

func info(ds models.GeneratedDataset) datasetInfo {
	return datasetInfo{
		Seed:       ds.Seed,
		Events:     len(ds.Events),
		SDRs:       len(ds.SDRs),
		Teams:      len(ds.Teams),
		Industries: len(ds.Industries),
		Companies:  len(ds.Companies),
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", " ")
	enc.Encode(v)
}
