package reports

import (
	"fmt"
	"sort"

	"jennamart/internal/models"
)

// TopProduct is one ranked row of the top-products report. OrderCount counts
// distinct orders containing the product, not line items.
type TopProduct struct {
	Rank                    int     `json:"rank"`
	Name                    string  `json:"name"`
	Price                   float64 `json:"price"`
	QuantitySold            int     `json:"quantitySold"`
	TotalRevenue            float64 `json:"totalRevenue"`
	OrderCount              int     `json:"orderCount"`
	AverageQuantityPerOrder string  `json:"averageQuantityPerOrder"`
}

// TopProducts ranks products by quantity sold, descending. The sort is
// stable: ties keep the order in which products first appeared in the input.
// limit <= 0 returns all products.
func TopProducts(orders []models.Order, limit int) []TopProduct {
	type productAgg struct {
		name     string
		price    float64
		quantity int
		revenue  float64
		orderIDs map[string]struct{}
	}

	totalsByKey := map[ProductKey]*productAgg{}
	keyOrder := make([]ProductKey, 0)

	for i, order := range orders {
		orderID := order.ID.Hex()
		if order.ID.IsZero() {
			orderID = fmt.Sprintf("order-%d", i)
		}
		for _, item := range order.Items {
			key := KeyForItem(item)
			agg, ok := totalsByKey[key]
			if !ok {
				agg = &productAgg{
					name:     item.Name,
					price:    item.Price,
					orderIDs: map[string]struct{}{},
				}
				totalsByKey[key] = agg
				keyOrder = append(keyOrder, key)
			}
			agg.quantity += item.Quantity
			agg.revenue += item.Price * float64(item.Quantity)
			agg.orderIDs[orderID] = struct{}{}
		}
	}

	ranked := make([]TopProduct, 0, len(keyOrder))
	for _, key := range keyOrder {
		agg := totalsByKey[key]
		row := TopProduct{
			Name:                    agg.name,
			Price:                   agg.price,
			QuantitySold:            agg.quantity,
			TotalRevenue:            agg.revenue,
			OrderCount:              len(agg.orderIDs),
			AverageQuantityPerOrder: "0.0",
		}
		if row.OrderCount > 0 {
			row.AverageQuantityPerOrder = fmt.Sprintf("%.1f", float64(agg.quantity)/float64(row.OrderCount))
		}
		ranked = append(ranked, row)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].QuantitySold > ranked[j].QuantitySold
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}
