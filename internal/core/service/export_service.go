package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/inventory-console/inventory-api/internal/api/metrics"
	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

// ExportService selects products and hands them to the spreadsheet formatter.
type ExportService struct {
	repo     ports.CatalogRepository
	exporter ports.SpreadsheetExporter
	log      zerolog.Logger
}

func NewExportService(repo ports.CatalogRepository, exporter ports.SpreadsheetExporter, log zerolog.Logger) *ExportService {
	return &ExportService{repo: repo, exporter: exporter, log: log}
}

// Export renders the selected products in catalog order. Ids missing from
// the catalog are ignored.
func (s *ExportService) Export(ctx context.Context, productIDs []string) ([]byte, error) {
	if len(productIDs) == 0 {
		return nil, domain.ErrEmptySelection
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	wanted := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = struct{}{}
	}
	selected := make([]domain.Product, 0, len(productIDs))
	for _, p := range products {
		if _, ok := wanted[p.ID]; ok {
			selected = append(selected, p)
		}
	}

	data, err := s.exporter.Render(selected)
	if err != nil {
		return nil, fmt.Errorf("export: render: %w", err)
	}

	metrics.ExportRowsTotal.Add(float64(len(selected)))
	s.log.Info().Int("requested", len(productIDs)).Int("rows", len(selected)).Msg("products exported")
	return data, nil
}
