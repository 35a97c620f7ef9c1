package main

import (
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	jsonhandler "github.com/apex/log/handlers/json"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/finnstaeblein/cs448b-assignment2/internal/config"
	"github.com/finnstaeblein/cs448b-assignment2/internal/film"
	"github.com/finnstaeblein/cs448b-assignment2/internal/geo"
	"github.com/finnstaeblein/cs448b-assignment2/internal/query"
	"github.com/finnstaeblein/cs448b-assignment2/internal/tui"
)

func main() {
	cfg := config.Load()
	setupLog(cfg)

	path := cfg.DataPath
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	proj := geo.NewProjection(geo.SanFrancisco, query.CanvasWidth, query.CanvasHeight)
	catalog, err := film.Load(path, proj)
	if err != nil {
		log.WithError(err).Fatal("load dataset")
	}
	log.WithFields(log.Fields{
		"dataset":       catalog.Name,
		"records":       len(catalog.Records),
		"dropped":       catalog.Dropped,
		"locations":     len(catalog.Locations),
		"directors":     len(catalog.Directors),
		"neighborhoods": len(catalog.Neighborhoods),
		"span_km":       catalog.Extent.DiagonalKm(),
	}).Info("dataset loaded")

	m := tui.New(catalog, proj, query.NewSession())
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.WithError(err).Fatal("program")
	}
}

// setupLog sends structured logs to the configured file; the terminal itself belongs
// to the program view.
func setupLog(cfg config.Config) {
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}
	if cfg.LogPath == "" {
		log.SetHandler(discard.New())
		return
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Warn("log file unavailable")
		log.SetHandler(discard.New())
		return
	}
	log.SetHandler(jsonhandler.New(f))
}
