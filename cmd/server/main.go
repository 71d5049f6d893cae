package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dakotahermes/brollbot22/api"
	"github.com/dakotahermes/brollbot22/broll"
	"github.com/dakotahermes/brollbot22/shared/ai"
	"github.com/dakotahermes/brollbot22/shared/cache"
	"github.com/dakotahermes/brollbot22/shared/config"
	"github.com/dakotahermes/brollbot22/shared/monitoring"
	"github.com/dakotahermes/brollbot22/shared/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client, err := ai.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}

	parser := broll.NewParser(client, cache.New(cfg.Cache.TTL()), cfg.AI.DecomposeTimeout())
	assessor := broll.NewAssessor(client, cfg.AI.FeasibilityTimeout())
	synthesizer := broll.NewSynthesizer(assessor, cfg.Output.ConfidenceThreshold)
	pipeline := broll.NewPipeline(parser, synthesizer)

	history, err := storage.NewGenerationHistory(cfg.History.DataDir, cfg.History.MaxAge())
	if err != nil {
		log.Fatalf("Failed to open generation history: %v", err)
	}
	log.Printf("Generation history loaded (%d runs tracked)", history.Count())

	monitor := monitoring.NewMonitor()
	server := api.NewServer(cfg, pipeline, history, monitor)

	// Periodic history sweep; overlapping sweeps are skipped.
	c := cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	if _, err := c.AddFunc(cfg.History.CleanupSchedule, func() {
		if err := history.Cleanup(); err != nil {
			log.Printf("Warning: history cleanup failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule history cleanup: %v", err)
	}
	c.Start()
	defer c.Stop()

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: server.Routes(),
	}

	go func() {
		log.Printf("B-roll server listening on port %d", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: shutdown incomplete: %v", err)
	}
}
