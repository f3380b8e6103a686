package service

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/inventory-console/inventory-api/internal/api/metrics"
	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
	"github.com/inventory-console/inventory-api/internal/pkg/validation"
)

var whitespace = regexp.MustCompile(`\s+`)

// productInput is a parsed and validated set of product fields.
type productInput struct {
	Name     string  `validate:"required"`
	Category string  `validate:"required"`
	Price    float64 `validate:"gte=0"`
	Stock    int     `validate:"gte=0"`
}

// CatalogService implements product listing and the admin-only mutations.
type CatalogService struct {
	repo     ports.CatalogRepository
	assets   ports.AssetStore
	guard    ports.AccessGuard
	validate *validator.Validate
	log      zerolog.Logger
	now      func() time.Time
}

func NewCatalogService(repo ports.CatalogRepository, assets ports.AssetStore, guard ports.AccessGuard, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		assets:   assets,
		guard:    guard,
		validate: validation.New(),
		log:      log,
		now:      time.Now,
	}
}

// List returns every product in catalog order.
func (s *CatalogService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

// Create validates the fields, stores the image and appends a new product.
func (s *CatalogService) Create(ctx context.Context, caller *domain.Identity, fields ports.ProductFields, image *ports.Upload) (*domain.Product, error) {
	if err := s.guard.Authorize(caller, domain.RoleAdmin); err != nil {
		return nil, err
	}

	in, err := s.parse(fields)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, domain.ValidationError("image is required")
	}

	ref, err := s.assets.Store(ctx, *image)
	if err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	p := domain.Product{
		ID:       productID(in.Name, s.now()),
		Name:     in.Name,
		Category: in.Category,
		Price:    in.Price,
		Stock:    in.Stock,
		Image:    ref,
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		s.tryDelete(ctx, ref)
		return nil, fmt.Errorf("insert product: %w", err)
	}

	metrics.ProductMutationsTotal.WithLabelValues("insert").Inc()
	s.log.Info().Str("product_id", p.ID).Str("by", caller.Username).Msg("product created")
	return &p, nil
}

// Update replaces every field except the id. When a new image is supplied
// the previous asset is removed once the new record is persisted.
func (s *CatalogService) Update(ctx context.Context, caller *domain.Identity, id string, fields ports.ProductFields, image *ports.Upload) (*domain.Product, error) {
	if err := s.guard.Authorize(caller, domain.RoleAdmin); err != nil {
		return nil, err
	}

	var newRef, oldRef string
	updated, err := s.repo.Update(ctx, id, func(p *domain.Product) error {
		in, err := s.parse(fields)
		if err != nil {
			return err
		}
		if image != nil {
			ref, err := s.assets.Store(ctx, *image)
			if err != nil {
				return fmt.Errorf("store image: %w", err)
			}
			newRef, oldRef = ref, p.Image
			p.Image = ref
		}
		p.Name = in.Name
		p.Category = in.Category
		p.Price = in.Price
		p.Stock = in.Stock
		return nil
	})
	if err != nil {
		if newRef != "" {
			s.tryDelete(ctx, newRef)
		}
		return nil, err
	}

	if oldRef != "" && oldRef != newRef {
		s.tryDelete(ctx, oldRef)
	}

	metrics.ProductMutationsTotal.WithLabelValues("update").Inc()
	s.log.Info().Str("product_id", id).Str("by", caller.Username).Msg("product updated")
	return updated, nil
}

// Delete removes the product and then its image asset.
func (s *CatalogService) Delete(ctx context.Context, caller *domain.Identity, id string) error {
	if err := s.guard.Authorize(caller, domain.RoleAdmin); err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	s.tryDelete(ctx, removed.Image)

	metrics.ProductMutationsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("product_id", id).Str("by", caller.Username).Msg("product deleted")
	return nil
}

// tryDelete removes an asset and swallows the outcome.
func (s *CatalogService) tryDelete(ctx context.Context, ref string) {
	if ref == "" {
		return
	}
	if err := s.assets.TryDelete(ctx, ref); err != nil {
		metrics.AssetDeleteFailuresTotal.Inc()
		s.log.Warn().Err(err).Str("asset", ref).Msg("asset deletion failed, ignoring")
	}
}

func (s *CatalogService) parse(f ports.ProductFields) (productInput, error) {
	in := productInput{
		Name:     strings.TrimSpace(f.Name),
		Category: strings.TrimSpace(f.Category),
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return in, domain.ValidationError("price must be a number")
	}
	stock, err := strconv.Atoi(strings.TrimSpace(f.Stock))
	if err != nil {
		return in, domain.ValidationError("stock must be an integer")
	}
	in.Price = price
	in.Stock = stock

	if err := s.validate.Struct(in); err != nil {
		return in, domain.ValidationError(validation.Describe(err).Error())
	}
	return in, nil
}

// productID slugifies the name and appends the creation time in milliseconds.
// Two products with the same name created in the same millisecond collide.
func productID(name string, at time.Time) string {
	return fmt.Sprintf("%s-%d", whitespace.ReplaceAllString(strings.ToLower(name), "-"), at.UnixMilli())
}
