package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"gigflow/internal/config"
	hiring "gigflow/internal/hiringService"
	model "gigflow/internal/models"
	"gigflow/internal/notify"
	"gigflow/internal/repository"
	"gigflow/internal/server"
	"gigflow/utils"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}

	repo, err := buildRepo(cfg)
	if err != nil {
		utils.Fatal("failed to initialize storage", map[string]any{"error": err.Error()})
	}

	registry := notify.NewRegistry()
	dispatcher := notify.NewDispatcher(registry)
	hiringSvc := hiring.NewHiringService(repo)

	router := server.SetupRouter(hiringSvc, registry, dispatcher, cfg.NotifyBuffer)

	addr := ":" + cfg.Port
	fmt.Printf("Starting gigflow server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// buildRepo selects the storage backend: PostgreSQL when a DSN is
// configured, otherwise the in-memory store.
func buildRepo(cfg config.App) (repository.GigDB, error) {
	if cfg.GigDSN == "" {
		repo := repository.NewMemoryRepo()
		if cfg.SeedDemoData {
			prepopulateGigs(repo)
		}
		return repo, nil
	}

	ctx := context.Background()
	pool, err := repository.NewPostgresPool(ctx, cfg.GigDSN)
	if err != nil {
		return nil, err
	}
	repo := repository.NewPostgresRepo(pool)
	if err := repo.Migrate(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// prepopulateGigs adds sample gigs to the in-memory repo
func prepopulateGigs(repo *repository.MemoryRepo) {
	now := time.Now().UTC()
	gigs := []model.Gig{
		{GigID: "gig1", Title: "Landing page redesign", Description: "Rework our marketing site landing page", Budget: 500, OwnerID: "poster1", OwnerName: "Ada", Status: model.GigOpen, CreatedAt: now},
		{GigID: "gig2", Title: "REST API integration", Description: "Connect the shop to a payment provider", Budget: 1200, OwnerID: "poster1", OwnerName: "Ada", Status: model.GigOpen, CreatedAt: now.Add(time.Second)},
		{GigID: "gig3", Title: "Logo refresh", Description: "Modernize the company logo", Budget: 300, OwnerID: "poster2", OwnerName: "Grace", Status: model.GigOpen, CreatedAt: now.Add(2 * time.Second)},
	}

	for _, gig := range gigs {
		repo.AddGig(gig)
	}
}
