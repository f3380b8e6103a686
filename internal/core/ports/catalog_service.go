package ports

import (
	"context"

	"github.com/inventory-console/inventory-api/internal/core/domain"
)

// ProductFields are the raw form values of a product mutation.
type ProductFields struct {
	Name     string
	Category string
	Price    string
	Stock    string
}

// CatalogService defines the product catalog use cases.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, caller *domain.Identity, fields ProductFields, image *Upload) (*domain.Product, error)
	Update(ctx context.Context, caller *domain.Identity, id string, fields ProductFields, image *Upload) (*domain.Product, error)
	Delete(ctx context.Context, caller *domain.Identity, id string) error
}

// OrderService applies orders to catalog stock.
type OrderService interface {
	Apply(ctx context.Context, order domain.Order) (*domain.Receipt, error)
}

// SpreadsheetExporter renders products into a spreadsheet file.
type SpreadsheetExporter interface {
	Render(products []domain.Product) ([]byte, error)
}

// ExportService builds spreadsheet exports of selected products.
type ExportService interface {
	Export(ctx context.Context, productIDs []string) ([]byte, error)
}
