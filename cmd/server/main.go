// Package main - entry point for the fertcost HTTP server
package main

import (
	"flag"
	"fmt"
	"net/http"

	"fertcost/api"
	"fertcost/core/pricing"
	"fertcost/core/report"
	"fertcost/internal/config"
	"fertcost/internal/llm"
	"fertcost/internal/logging"
)

const version = "0.1.0"

func main() {
	addr := flag.String("addr", ":8080", "server address")
	cfgFile := flag.String("config", "", "config file path")
	flag.Parse()

	cfg := config.Get()
	if *cfgFile != "" {
		loaded, err := config.Load(*cfgFile)
		if err != nil {
			logging.Fatal("load config: " + err.Error())
		}
		config.Set(loaded)
		cfg = loaded
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Printf("initialize logging: %v\n", err)
	}
	defer logging.Sync()

	factory := llm.GeminiFactory(cfg.LLM.APIKeyEnv, cfg.LLM.Model)
	reports := report.NewService(factory, llm.Options{
		Temperature:    float32(cfg.LLM.Temperature),
		CandidateCount: int32(cfg.LLM.CandidateCount),
	}, cfg.LLM.Timeout())
	prices := pricing.NewService(pricing.UnavailableSource{}, cfg.Pricing.DefaultRegion)

	apiServer := api.NewServer(version, reports, prices)

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiServer))

	fmt.Printf("fertcost server v%s\n", version)
	fmt.Printf("  API: http://localhost%s/api\n", *addr)

	if err := http.ListenAndServe(*addr, mux); err != nil {
		logging.Fatal(err.Error())
	}
}
