package reports

import (
	"math"

	"jennamart/internal/models"
)

// ProductKey identifies a product inside order items: the productId when
// present, otherwise the item name. Names are compared case-sensitively, so
// two differently-cased names count as distinct products.
type ProductKey string

func KeyForItem(item models.OrderItem) ProductKey {
	if item.ProductID != "" {
		return ProductKey(item.ProductID)
	}
	return ProductKey(item.Name)
}

// ProductSummary is the best-selling / highest-revenue entry inside Stats.
type ProductSummary struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// Stats is the sales overview for a set of orders already filtered by a
// window. Growth fields stay nil until ApplyGrowth is called with the
// preceding period's totals.
type Stats struct {
	TotalRevenue          float64         `json:"totalRevenue"`
	TotalOrders           int             `json:"totalOrders"`
	TotalItemsSold        int             `json:"totalItemsSold"`
	AverageOrderValue     float64         `json:"averageOrderValue"`
	UniqueProductsSold    int             `json:"uniqueProductsSold"`
	BestSellingProduct    *ProductSummary `json:"bestSellingProduct"`
	HighestRevenueProduct *ProductSummary `json:"highestRevenueProduct"`
	AverageItemsPerOrder  float64         `json:"averageItemsPerOrder"`
	RevenueGrowth         *float64        `json:"revenueGrowth"`
	OrdersGrowth          *float64        `json:"ordersGrowth"`
}

// SalesStats computes the overview statistics over the given orders. The
// input is never mutated.
func SalesStats(orders []models.Order) Stats {
	stats := Stats{TotalOrders: len(orders)}

	type productAgg struct {
		name     string
		quantity int
		revenue  float64
	}
	totalsByKey := map[ProductKey]*productAgg{}
	keyOrder := make([]ProductKey, 0)

	for _, order := range orders {
		stats.TotalRevenue += order.Total
		for _, item := range order.Items {
			stats.TotalItemsSold += item.Quantity

			key := KeyForItem(item)
			agg, ok := totalsByKey[key]
			if !ok {
				agg = &productAgg{name: item.Name}
				totalsByKey[key] = agg
				keyOrder = append(keyOrder, key)
			}
			agg.quantity += item.Quantity
			agg.revenue += item.Price * float64(item.Quantity)
		}
	}

	stats.UniqueProductsSold = len(totalsByKey)
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / float64(stats.TotalOrders)
		stats.AverageItemsPerOrder = float64(stats.TotalItemsSold) / float64(stats.TotalOrders)
	}

	var best, richest *productAgg
	for _, key := range keyOrder {
		agg := totalsByKey[key]
		if best == nil || agg.quantity > best.quantity {
			best = agg
		}
		if richest == nil || agg.revenue > richest.revenue {
			richest = agg
		}
	}
	if best != nil {
		stats.BestSellingProduct = &ProductSummary{Name: best.name, Quantity: best.quantity, Revenue: best.revenue}
	}
	if richest != nil {
		stats.HighestRevenueProduct = &ProductSummary{Name: richest.name, Quantity: richest.quantity, Revenue: richest.revenue}
	}

	return stats
}

// ApplyGrowth fills the growth percentages from the immediately preceding
// period's totals. A zero or missing predecessor leaves the figure nil.
func (s *Stats) ApplyGrowth(previousRevenue float64, previousOrders int) {
	s.RevenueGrowth = Growth(s.TotalRevenue, previousRevenue)
	s.OrdersGrowth = Growth(float64(s.TotalOrders), float64(previousOrders))
}

// Growth is the percent change against a previous value, rounded to one
// decimal place. Nil when the previous value is zero or negative.
func Growth(current, previous float64) *float64 {
	if previous <= 0 {
		return nil
	}
	g := round1((current - previous) / previous * 100)
	return &g
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
