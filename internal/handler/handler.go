package handler

import (
	"context"
	"fmt"
	"io"
	"log"

	"forhonor/internal/codec"
	"forhonor/internal/domain"
)

// ReportService is the read side consumed by the menu
type ReportService interface {
	FactionsReport(ctx context.Context) (*domain.Report, error)
	CharactersReport(ctx context.Context) (*domain.Report, error)
	RosterReport(ctx context.Context, factionID int64) (*domain.Report, error)
	BestAttackerReport(ctx context.Context, factionID int64) (*domain.Report, error)
	BestDefenderReport(ctx context.Context, factionID int64) (*domain.Report, error)
}

// ReportHandler runs one report and renders it to the output
type ReportHandler struct {
	svc      ReportService
	exporter codec.Exporter
	out      io.Writer
	logger   *log.Logger
}

// NewReportHandler creates a report handler writing to out
func NewReportHandler(svc ReportService, exporter codec.Exporter, out io.Writer) *ReportHandler {
	if exporter == nil {
		exporter = codec.NewTableCodec(codec.DefaultSummaryWidth)
	}
	return &ReportHandler{
		svc:      svc,
		exporter: exporter,
		out:      out,
		logger:   log.Default(),
	}
}

// SetLogger routes diagnostics to l
func (h *ReportHandler) SetLogger(l *log.Logger) {
	if l != nil {
		h.logger = l
	}
}

// ShowFactions renders the faction table
func (h *ReportHandler) ShowFactions(ctx context.Context) error {
	return h.show(ctx, "Failed to list factions", h.svc.FactionsReport)
}

// ShowCharacters renders the character table
func (h *ReportHandler) ShowCharacters(ctx context.Context) error {
	return h.show(ctx, "Failed to list characters", h.svc.CharactersReport)
}

// ShowRoster renders the characters of one faction
func (h *ReportHandler) ShowRoster(ctx context.Context, factionID int64) error {
	return h.show(ctx, "Failed to list characters by faction", func(ctx context.Context) (*domain.Report, error) {
		return h.svc.RosterReport(ctx, factionID)
	})
}

// ShowBestAttacker renders the faction's best attacker
func (h *ReportHandler) ShowBestAttacker(ctx context.Context, factionID int64) error {
	return h.show(ctx, "Failed to find best attacker", func(ctx context.Context) (*domain.Report, error) {
		return h.svc.BestAttackerReport(ctx, factionID)
	})
}

// ShowBestDefender renders the faction's best defender
func (h *ReportHandler) ShowBestDefender(ctx context.Context, factionID int64) error {
	return h.show(ctx, "Failed to find best defender", func(ctx context.Context) (*domain.Report, error) {
		return h.svc.BestDefenderReport(ctx, factionID)
	})
}

// show logs query failures and keeps going; only output errors are returned
func (h *ReportHandler) show(ctx context.Context, failure string, build func(context.Context) (*domain.Report, error)) error {
	report, err := build(ctx)
	if err != nil {
		h.logger.Printf("%s: %v", failure, err)
		fmt.Fprintf(h.out, "%s.\n", failure)
		return nil
	}

	if err := h.exporter.Export(report, h.out); err != nil {
		return fmt.Errorf("failed to render %s: %w", report.Kind, err)
	}
	return nil
}
