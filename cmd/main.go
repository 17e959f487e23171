package main

import (
	"github.com/sirupsen/logrus"

	"diettracker/config"
	"diettracker/routes"
	"diettracker/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		logrus.Fatalf("failed to initialize database: %v", err)
	}

	tokens, err := services.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		logrus.Fatalf("failed to initialize token service: %v", err)
	}

	categories := services.NewCategoryService(db)
	if err := categories.Seed(); err != nil {
		logrus.Fatalf("failed to seed categories: %v", err)
	}

	r := routes.SetupRouter(routes.Deps{
		Auth:       services.NewAuthService(db),
		Tokens:     tokens,
		Entries:    services.NewEntryService(db),
		Migraines:  services.NewMigraineService(db),
		Categories: categories,
	})

	logrus.Infof("server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server failed: %v", err)
	}
}
