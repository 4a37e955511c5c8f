package reports

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jennamart/internal/models"
)

func TestTopProductsRanking(t *testing.T) {
	orders := []models.Order{
		{ID: primitive.NewObjectID(), Items: []models.OrderItem{
			item("p1", "Kopi Susu", 15000, 2),
			item("p2", "Roti Bakar", 10000, 5),
		}},
		{ID: primitive.NewObjectID(), Items: []models.OrderItem{
			item("p1", "Kopi Susu", 15000, 1),
		}},
	}

	top := TopProducts(orders, 10)

	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[0].Name != "Roti Bakar" || top[0].QuantitySold != 5 {
		t.Errorf("top[0] = %+v, want Roti Bakar with 5 sold", top[0])
	}
	if top[0].Rank != 1 || top[1].Rank != 2 {
		t.Errorf("ranks = [%d, %d], want [1, 2]", top[0].Rank, top[1].Rank)
	}
	if top[1].OrderCount != 2 {
		t.Errorf("Kopi Susu OrderCount = %d, want 2 distinct orders", top[1].OrderCount)
	}
	if top[1].TotalRevenue != 45000 {
		t.Errorf("Kopi Susu TotalRevenue = %v, want 45000", top[1].TotalRevenue)
	}
	if top[1].AverageQuantityPerOrder != "1.5" {
		t.Errorf("AverageQuantityPerOrder = %q, want \"1.5\"", top[1].AverageQuantityPerOrder)
	}
}

func TestTopProductsTieKeepsFirstSeenOrder(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			item("p1", "Alpha", 1000, 3),
			item("p2", "Beta", 1000, 3),
			item("p3", "Gamma", 1000, 3),
		}},
	}

	top := TopProducts(orders, 10)

	want := []string{"Alpha", "Beta", "Gamma"}
	for i, name := range want {
		if top[i].Name != name {
			t.Errorf("top[%d] = %s, want %s (stable tie order)", i, top[i].Name, name)
		}
	}
}

func TestTopProductsLimit(t *testing.T) {
	orders := []models.Order{
		{Items: []models.OrderItem{
			item("p1", "Alpha", 1000, 5),
			item("p2", "Beta", 1000, 4),
			item("p3", "Gamma", 1000, 3),
		}},
	}

	top := TopProducts(orders, 2)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[1].Rank != 2 {
		t.Errorf("rank after cut = %d, want 2", top[1].Rank)
	}

	all := TopProducts(orders, 0)
	if len(all) != 3 {
		t.Errorf("limit 0 returned %d rows, want all 3", len(all))
	}
}

func TestTopProductsDistinctOrdersWithoutIDs(t *testing.T) {
	// Orders that never hit the database have zero IDs; each one must still
	// count as its own order.
	orders := []models.Order{
		{Items: []models.OrderItem{item("p1", "Kopi", 5000, 1)}},
		{Items: []models.OrderItem{item("p1", "Kopi", 5000, 1)}},
	}

	top := TopProducts(orders, 10)
	if top[0].OrderCount != 2 {
		t.Errorf("OrderCount = %d, want 2", top[0].OrderCount)
	}
}
