package reports

import (
	"testing"

	"jennamart/internal/models"
)

func order(total float64, items ...models.OrderItem) models.Order {
	return models.Order{Total: total, Items: items}
}

func item(id, name string, price float64, qty int) models.OrderItem {
	return models.OrderItem{ProductID: id, Name: name, Price: price, Quantity: qty}
}

func TestSalesStatsEmpty(t *testing.T) {
	stats := SalesStats(nil)
	if stats.TotalOrders != 0 || stats.TotalRevenue != 0 {
		t.Errorf("empty input: got %d orders, %v revenue", stats.TotalOrders, stats.TotalRevenue)
	}
	if stats.BestSellingProduct != nil || stats.HighestRevenueProduct != nil {
		t.Error("empty input should have no product summaries")
	}
	if stats.AverageOrderValue != 0 || stats.AverageItemsPerOrder != 0 {
		t.Error("averages over zero orders must stay zero")
	}
}

func TestSalesStats(t *testing.T) {
	orders := []models.Order{
		order(35000, item("p1", "Kopi Susu", 15000, 1), item("p2", "Roti Bakar", 10000, 2)),
		order(45000, item("p2", "Roti Bakar", 10000, 3), item("p3", "Es Teh", 5000, 3)),
	}

	stats := SalesStats(orders)

	if stats.TotalRevenue != 80000 {
		t.Errorf("TotalRevenue = %v, want 80000", stats.TotalRevenue)
	}
	if stats.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", stats.TotalOrders)
	}
	if stats.TotalItemsSold != 9 {
		t.Errorf("TotalItemsSold = %d, want 9", stats.TotalItemsSold)
	}
	if stats.UniqueProductsSold != 3 {
		t.Errorf("UniqueProductsSold = %d, want 3", stats.UniqueProductsSold)
	}
	if stats.AverageOrderValue != 40000 {
		t.Errorf("AverageOrderValue = %v, want 40000", stats.AverageOrderValue)
	}
	if stats.AverageItemsPerOrder != 4.5 {
		t.Errorf("AverageItemsPerOrder = %v, want 4.5", stats.AverageItemsPerOrder)
	}
	if stats.BestSellingProduct == nil || stats.BestSellingProduct.Name != "Roti Bakar" {
		t.Errorf("BestSellingProduct = %+v, want Roti Bakar", stats.BestSellingProduct)
	}
	if stats.HighestRevenueProduct == nil || stats.HighestRevenueProduct.Name != "Roti Bakar" {
		t.Errorf("HighestRevenueProduct = %+v, want Roti Bakar with 50000", stats.HighestRevenueProduct)
	}
	if stats.RevenueGrowth != nil || stats.OrdersGrowth != nil {
		t.Error("growth must stay nil until ApplyGrowth")
	}
}

func TestSalesStatsKeyFallsBackToName(t *testing.T) {
	orders := []models.Order{
		order(20000, item("", "Nasi Goreng", 10000, 1)),
		order(20000, item("", "Nasi Goreng", 10000, 1)),
		order(20000, item("", "nasi goreng", 10000, 1)),
	}

	stats := SalesStats(orders)
	if stats.UniqueProductsSold != 2 {
		t.Errorf("UniqueProductsSold = %d, want 2 (names compare case-sensitively)", stats.UniqueProductsSold)
	}
}

func TestApplyGrowth(t *testing.T) {
	stats := SalesStats([]models.Order{order(150000)})
	stats.ApplyGrowth(100000, 2)

	if stats.RevenueGrowth == nil || *stats.RevenueGrowth != 50.0 {
		t.Errorf("RevenueGrowth = %v, want 50.0", stats.RevenueGrowth)
	}
	if stats.OrdersGrowth == nil || *stats.OrdersGrowth != -50.0 {
		t.Errorf("OrdersGrowth = %v, want -50.0", stats.OrdersGrowth)
	}
}

func TestGrowth(t *testing.T) {
	cases := []struct {
		current, previous float64
		want              *float64
	}{
		{110, 100, ptr(10.0)},
		{100, 100, ptr(0.0)},
		{50, 100, ptr(-50.0)},
		{100, 0, nil},
		{100, -5, nil},
		{100, 30, ptr(233.3)},
	}
	for _, tc := range cases {
		got := Growth(tc.current, tc.previous)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("Growth(%v, %v) = %v, want nil", tc.current, tc.previous, *got)
		case tc.want != nil && got == nil:
			t.Errorf("Growth(%v, %v) = nil, want %v", tc.current, tc.previous, *tc.want)
		case tc.want != nil && *got != *tc.want:
			t.Errorf("Growth(%v, %v) = %v, want %v", tc.current, tc.previous, *got, *tc.want)
		}
	}
}

func ptr(v float64) *float64 { return &v }
