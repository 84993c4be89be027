package main

import (
	"os"

	"github.com/Zygu0805/betashift/internal/config"
	"github.com/Zygu0805/betashift/internal/database"
	"github.com/sirupsen/logrus"
)

// Seeds the reference data (airlines and carousels C1-C24). Safe to run
// repeatedly: rows that already exist are skipped.
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		logger.Fatalf("Failed to ensure database schema: %v", err)
	}

	airlineRepo := database.NewAirlineRepository(db)
	carouselRepo := database.NewCarouselRepository(db)

	airlines, err := airlineRepo.SeedDefaults()
	if err != nil {
		logger.Fatalf("Failed to seed airlines: %v", err)
	}
	logger.Infof("Seeded %d airlines", len(airlines))

	carousels, err := carouselRepo.SeedDefaults()
	if err != nil {
		logger.Fatalf("Failed to seed carousels: %v", err)
	}
	logger.Infof("Seeded %d carousels", len(carousels))

	logger.Info("Seed completed")
}
