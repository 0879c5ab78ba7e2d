package handlers

import (
	"encoding/json"
	"net/http"

	"server/internal/imagemeta"
	"server/internal/infra"
	"server/internal/metrics"
	"server/internal/packstore"
	"server/internal/slotcheck"

	"github.com/rs/zerolog"
)

// App bundles the dependencies the HTTP handlers need.
type App struct {
	Config  *infra.Config
	Logger  zerolog.Logger
	Engine  *slotcheck.Engine
	Packs   *packstore.Store
	Prober  *imagemeta.Prober
	Metrics *metrics.Metrics
}

func NewApp(cfg *infra.Config, logger zerolog.Logger, engine *slotcheck.Engine, packs *packstore.Store, prober *imagemeta.Prober, m *metrics.Metrics) *App {
	return &App{
		Config:  cfg,
		Logger:  logger,
		Engine:  engine,
		Packs:   packs,
		Prober:  prober,
		Metrics: m,
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{"code": errCode, "message": message},
	})
}
