package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"palettehub/internal/config"
	"palettehub/internal/handler"
	"palettehub/internal/namer"
	"palettehub/internal/provider/colormagic"
	"palettehub/internal/repository/postgres"
	"palettehub/internal/router"
	"palettehub/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	paletteRepo := postgres.NewPaletteRepo(db)
	savedRepo := postgres.NewSavedPaletteRepo(db)
	folderRepo := postgres.NewFolderRepo(db)
	colorNameRepo := postgres.NewColorNameRepo(db)
	txManager := postgres.NewTxManager(db)

	// Color naming starts from the built-in table and grows with whatever
	// the seed job has loaded.
	colorNamer := namer.New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	seeded, err := colorNameRepo.ListAll(ctx)
	cancel()
	if err != nil {
		log.Printf("could not load seeded color names, using built-ins only: %v", err)
	} else {
		colorNamer.Extend(seeded)
	}

	// External catalog client
	provider := colormagic.NewClient(&cfg.ColorMagic)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	registrationSvc := service.NewRegistrationService(userRepo, folderRepo, txManager, authSvc)
	catalogSvc := service.NewCatalogService(paletteRepo, savedRepo, provider, colorNamer)
	savedSvc := service.NewSavedPaletteService(paletteRepo, savedRepo, folderRepo, catalogSvc, colorNamer, txManager)
	folderSvc := service.NewFolderService(folderRepo, savedRepo, txManager)
	popularitySvc := service.NewPopularityService(paletteRepo, savedRepo)
	userSvc := service.NewUserService(userRepo, paletteRepo, savedRepo, folderRepo)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc, registrationSvc)
	paletteH := handler.NewPaletteHandler(catalogSvc, popularitySvc)
	savedH := handler.NewSavedPaletteHandler(savedSvc)
	folderH := handler.NewFolderHandler(folderSvc)
	userH := handler.NewUserHandler(userSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, authH, paletteH, savedH, folderH, userH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
