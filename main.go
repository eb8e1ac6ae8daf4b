package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"legiswatch/api"
	"legiswatch/config"
	"legiswatch/congress"
	"legiswatch/summarize"
	"legiswatch/tracker"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	mock := tracker.NewMockSource(cfg.CurrentCongress)
	var source tracker.BillSource = mock
	if cfg.CongressAPIKey != "" {
		source = congress.NewClient(cfg.CongressAPIKey, cfg.CurrentCongress, cfg.RequestTimeout)
	} else {
		log.Println("CONGRESS_API_KEY not set; serving mock bill data")
	}

	summarizer := summarize.NewDefaultProvider(cfg)
	if summarizer != nil {
		log.Printf("AI summaries enabled via %s", summarizer.Name())
	} else {
		log.Println("AI summaries disabled (no provider configured)")
	}

	t := tracker.New(source, mock, summarizer, cfg)
	r := api.NewRouter(cfg, t)

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /health")
	log.Println("  POST /api/search")
	log.Println("  POST /api/export")
	log.Println("  GET  /api/recent")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
