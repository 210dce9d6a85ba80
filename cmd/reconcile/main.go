package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"palettehub/internal/config"
	"palettehub/internal/repository/postgres"
	"palettehub/internal/service"
)

// Recomputes folder palette counts and palette save/like counters from the
// saved-palette rows. Meant to run out of band, for example from cron.
func main() {
	foldersOnly := flag.Bool("folders", false, "reconcile folder counts only")
	palettesOnly := flag.Bool("palettes", false, "reconcile palette counters only")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	if err := run(*foldersOnly, *palettesOnly, *timeout); err != nil {
		log.Fatal(err)
	}
}

func run(foldersOnly, palettesOnly bool, timeout time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	svc := service.NewReconcileService(postgres.NewPaletteRepo(db), postgres.NewFolderRepo(db))

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var report *service.ReconcileReport
	switch {
	case foldersOnly:
		report, err = svc.ReconcileFolderCounts(ctx)
	case palettesOnly:
		report, err = svc.ReconcilePaletteCounters(ctx)
	default:
		report, err = svc.ReconcileAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}

	log.Printf("reconcile complete: %d folders drifted (%d fixed), %d palettes drifted (%d fixed)",
		report.FoldersChecked, report.FoldersFixed, report.PalettesChecked, report.PalettesFixed)
	return nil
}
