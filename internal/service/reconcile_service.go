package service

import (
	"context"
	"fmt"
	"log"

	"palettehub/internal/port"
)

// ReconcileReport summarizes one reconciliation run.
type ReconcileReport struct {
	FoldersChecked  int `json:"foldersChecked"`
	FoldersFixed    int `json:"foldersFixed"`
	PalettesChecked int `json:"palettesChecked"`
	PalettesFixed   int `json:"palettesFixed"`
}

// ReconcileService recomputes maintained counters from the saved-palette
// rows that back them. Counters are an optimization; the save rows are the
// source of truth.
type ReconcileService interface {
	// ReconcileFolderCounts rewrites palette_count on every drifted folder.
	ReconcileFolderCounts(ctx context.Context) (*ReconcileReport, error)
	// ReconcilePaletteCounters rewrites total_saves and total_likes on
	// every drifted palette.
	ReconcilePaletteCounters(ctx context.Context) (*ReconcileReport, error)
	// ReconcileAll runs both passes and merges the reports.
	ReconcileAll(ctx context.Context) (*ReconcileReport, error)
}

type reconcileService struct {
	paletteRepo port.PaletteRepository
	folderRepo  port.FolderRepository
}

// NewReconcileService creates a new ReconcileService implementation.
func NewReconcileService(paletteRepo port.PaletteRepository, folderRepo port.FolderRepository) ReconcileService {
	return &reconcileService{
		paletteRepo: paletteRepo,
		folderRepo:  folderRepo,
	}
}

func (s *reconcileService) ReconcileFolderCounts(ctx context.Context) (*ReconcileReport, error) {
	drifts, err := s.folderRepo.CountDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading folder drift: %w", err)
	}

	report := &ReconcileReport{FoldersChecked: len(drifts)}
	for _, d := range drifts {
		log.Printf("reconcile: folder %s count %d -> %d", d.FolderID, d.StoredCount, d.ActualCount)
		if err := s.folderRepo.SetPaletteCount(ctx, d.FolderID, d.ActualCount); err != nil {
			return report, fmt.Errorf("fixing folder %s: %w", d.FolderID, err)
		}
		report.FoldersFixed++
	}
	return report, nil
}

func (s *reconcileService) ReconcilePaletteCounters(ctx context.Context) (*ReconcileReport, error) {
	drifts, err := s.paletteRepo.SaveCountDrift(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading palette drift: %w", err)
	}

	report := &ReconcileReport{PalettesChecked: len(drifts)}
	for _, d := range drifts {
		log.Printf("reconcile: palette %s saves %d -> %d likes %d -> %d",
			d.PaletteID, d.StoredSaves, d.ActualSaves, d.StoredLikes, d.ActualLikes)
		if err := s.paletteRepo.SetCounters(ctx, d.PaletteID, d.ActualSaves, d.ActualLikes); err != nil {
			return report, fmt.Errorf("fixing palette %s: %w", d.PaletteID, err)
		}
		report.PalettesFixed++
	}
	return report, nil
}

func (s *reconcileService) ReconcileAll(ctx context.Context) (*ReconcileReport, error) {
	folders, err := s.ReconcileFolderCounts(ctx)
	if err != nil {
		return nil, err
	}
	palettes, err := s.ReconcilePaletteCounters(ctx)
	if err != nil {
		return nil, err
	}
	return &ReconcileReport{
		FoldersChecked:  folders.FoldersChecked,
		FoldersFixed:    folders.FoldersFixed,
		PalettesChecked: palettes.PalettesChecked,
		PalettesFixed:   palettes.PalettesFixed,
	}, nil
}
