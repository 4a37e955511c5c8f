package export

import (
	"testing"
	"time"

	"jennamart/internal/models"
	"jennamart/internal/reports"
)

var exportNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func sampleOrders() []models.Order {
	return []models.Order{
		{
			OrderNumber:  "ORD-1",
			Total:        30000,
			CustomerName: "Budi",
			CreatedAt:    exportNow.AddDate(0, 0, -1),
			Items: []models.OrderItem{
				{ProductID: "p1", Name: "Kopi Susu", Price: 15000, Quantity: 2},
			},
		},
		{
			Total:     10000,
			CreatedAt: exportNow,
			Items: []models.OrderItem{
				{ProductID: "p2", Name: "Es Teh", Price: 5000, Quantity: 2},
			},
		},
	}
}

func TestSnapshotProductsOnly(t *testing.T) {
	products := []models.Product{{Name: "Kopi Susu", Price: 15000}}

	doc := Snapshot([]string{"products"}, products, sampleOrders(), exportNow)

	if _, ok := doc.Data["orders"]; ok {
		t.Error("products-only snapshot must not carry an orders key")
	}
	if _, ok := doc.Statistics["totalRevenue"]; ok {
		t.Error("products-only snapshot must not carry totalRevenue")
	}
	if doc.Statistics["totalProducts"] != 1 {
		t.Errorf("totalProducts = %v, want 1", doc.Statistics["totalProducts"])
	}
	if len(doc.Metadata.Collections) != 1 || doc.Metadata.Collections[0] != "products" {
		t.Errorf("collections = %v, want [products]", doc.Metadata.Collections)
	}
}

func TestSnapshotBothCollections(t *testing.T) {
	doc := Snapshot([]string{"products", "orders"}, nil, sampleOrders(), exportNow)

	if doc.Statistics["totalOrders"] != 2 {
		t.Errorf("totalOrders = %v, want 2", doc.Statistics["totalOrders"])
	}
	if doc.Statistics["totalRevenue"] != 40000.0 {
		t.Errorf("totalRevenue = %v, want 40000", doc.Statistics["totalRevenue"])
	}
}

func TestSnapshotFilename(t *testing.T) {
	got := SnapshotFilename([]string{"products", "orders"}, exportNow)
	want := "jennamart-products-orders-2025-03-15.json"
	if got != want {
		t.Errorf("filename = %q, want %q", got, want)
	}
}

func TestSalesReportOverview(t *testing.T) {
	report := SalesReport("overview", reports.Window{}, sampleOrders(), 5, exportNow)

	if report.Metadata.Period.FromDate != "All time" || report.Metadata.Period.ToDate != "All time" {
		t.Errorf("period = %+v, want All time", report.Metadata.Period)
	}
	if report.Metadata.TotalRecords.Orders != 2 || report.Metadata.TotalRecords.Products != 5 {
		t.Errorf("totalRecords = %+v, want 2 orders, 5 products", report.Metadata.TotalRecords)
	}
	if report.Summary.TotalRevenue != 40000 {
		t.Errorf("TotalRevenue = %v, want 40000", report.Summary.TotalRevenue)
	}
	if report.Summary.TotalRevenueFormatted != "Rp. 40.000" {
		t.Errorf("TotalRevenueFormatted = %q, want \"Rp. 40.000\"", report.Summary.TotalRevenueFormatted)
	}
	if report.DetailedOrders != nil {
		t.Error("overview report must not carry detailed orders")
	}
	if len(report.TopProducts) != 2 {
		t.Fatalf("topProducts len = %d, want 2", len(report.TopProducts))
	}
	if report.TopProducts[0].RevenuePercentage != "75.00" {
		t.Errorf("RevenuePercentage = %q, want \"75.00\"", report.TopProducts[0].RevenuePercentage)
	}
}

func TestSalesReportDetailedFallbacks(t *testing.T) {
	report := SalesReport("detailed", reports.Window{}, sampleOrders(), 0, exportNow)

	if len(report.DetailedOrders) != 2 {
		t.Fatalf("detailedOrders len = %d, want 2", len(report.DetailedOrders))
	}

	second := report.DetailedOrders[1]
	if second.CustomerName != "Guest" {
		t.Errorf("customerName = %q, want Guest fallback", second.CustomerName)
	}
	if second.TotalFormatted != "Rp. 10.000" {
		t.Errorf("totalFormatted = %q, want \"Rp. 10.000\"", second.TotalFormatted)
	}
	if second.Items[0].Subtotal != 10000 {
		t.Errorf("subtotal = %v, want 10000", second.Items[0].Subtotal)
	}
}

func TestSalesReportFilename(t *testing.T) {
	if got := SalesReportFilename("overview", reports.Window{}, exportNow); got != "sales-report-overview-2025-03-15.json" {
		t.Errorf("unbounded filename = %q", got)
	}

	from := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)
	window := reports.Window{From: &from, To: &to}
	if got := SalesReportFilename("detailed", window, exportNow); got != "sales-report-detailed-2025-03-01_to_2025-03-10.json" {
		t.Errorf("bounded filename = %q", got)
	}
}
