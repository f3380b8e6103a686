package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/inventory-console/inventory-api/internal/api/metrics"
	"github.com/inventory-console/inventory-api/internal/core/domain"
	"github.com/inventory-console/inventory-api/internal/core/ports"
)

// OrderService decrements stock for settled orders.
type OrderService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

func NewOrderService(repo ports.CatalogRepository, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, log: log}
}

// Apply decrements the stock of every matching cart line, flooring at zero.
// Unknown product ids are skipped. Orders that are neither Paid nor COD
// succeed without touching the catalog. Overselling is not an error.
func (s *OrderService) Apply(ctx context.Context, order domain.Order) (*domain.Receipt, error) {
	receipt := &domain.Receipt{}
	if !order.DecrementsStock() {
		metrics.OrdersProcessedTotal.WithLabelValues(strconv.FormatBool(false)).Inc()
		s.log.Info().Str("payment_method", order.PaymentMethod).Msg("order accepted without stock change")
		return receipt, nil
	}

	err := s.repo.ApplyStock(ctx, func(products []domain.Product) bool {
		for _, line := range order.Cart {
			i := indexOfProduct(products, line.ProductID)
			if i < 0 {
				receipt.LinesSkipped++
				continue
			}
			remaining := products[i].Stock - line.Quantity
			if remaining < 0 {
				metrics.StockClampedTotal.Inc()
				s.log.Warn().
					Str("product_id", line.ProductID).
					Int("stock", products[i].Stock).
					Int("quantity", line.Quantity).
					Msg("order exceeds stock, clamping to zero")
				remaining = 0
			}
			products[i].Stock = remaining
			receipt.LinesApplied++
		}
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("apply order: %w", err)
	}

	receipt.StockUpdated = true
	metrics.OrdersProcessedTotal.WithLabelValues(strconv.FormatBool(true)).Inc()
	s.log.Info().
		Str("payment_method", order.PaymentMethod).
		Int("applied", receipt.LinesApplied).
		Int("skipped", receipt.LinesSkipped).
		Msg("order applied")
	return receipt, nil
}

func indexOfProduct(products []domain.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
