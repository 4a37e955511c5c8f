// Package export assembles downloadable snapshot and sales report documents.
package export

import (
	"fmt"
	"strings"
	"time"

	"jennamart/internal/currency"
	"jennamart/internal/models"
	"jennamart/internal/reports"
)

const (
	filePrefix    = "jennamart"
	exportVersion = "1.0"
	exportSource  = "Jennamart POS"
)

// Document is the full data snapshot. Data and Statistics only carry keys for
// the collections that were requested.
type Document struct {
	Metadata   Metadata               `json:"metadata"`
	Data       map[string]interface{} `json:"data"`
	Statistics map[string]interface{} `json:"statistics"`
}

type Metadata struct {
	ExportDate  string   `json:"exportDate"`
	Version     string   `json:"version"`
	Source      string   `json:"source"`
	Collections []string `json:"collections"`
}

// Snapshot builds the export document for the requested collections. The
// products and orders slices are only consulted when their collection is
// requested.
func Snapshot(collections []string, products []models.Product, orders []models.Order, now time.Time) Document {
	doc := Document{
		Metadata: Metadata{
			ExportDate:  now.Format(time.RFC3339),
			Version:     exportVersion,
			Source:      exportSource,
			Collections: collections,
		},
		Data:       map[string]interface{}{},
		Statistics: map[string]interface{}{},
	}

	for _, collection := range collections {
		switch collection {
		case "products":
			doc.Data["products"] = products
			doc.Statistics["totalProducts"] = len(products)
		case "orders":
			totalRevenue := 0.0
			for _, order := range orders {
				totalRevenue += order.Total
			}
			doc.Data["orders"] = orders
			doc.Statistics["totalOrders"] = len(orders)
			doc.Statistics["totalRevenue"] = totalRevenue
		}
	}
	return doc
}

// SnapshotFilename is deterministic for a given selection and day:
// jennamart-products-orders-2025-01-31.json
func SnapshotFilename(collections []string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s.json", filePrefix, strings.Join(collections, "-"), now.Format("2006-01-02"))
}

// Report is the sales report document. DetailedOrders is present only for the
// detailed report type.
type Report struct {
	Metadata       ReportMetadata        `json:"metadata"`
	Summary        Summary               `json:"summary"`
	TopProducts    []RankedProduct       `json:"topProducts"`
	DailySales     []reports.BreakdownDay `json:"dailySales"`
	DetailedOrders []DetailedOrder       `json:"detailedOrders,omitempty"`
}

type ReportMetadata struct {
	ReportType   string       `json:"reportType"`
	GeneratedAt  string       `json:"generatedAt"`
	Period       ReportPeriod `json:"period"`
	TotalRecords RecordCounts `json:"totalRecords"`
}

type ReportPeriod struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

type RecordCounts struct {
	Orders   int `json:"orders"`
	Products int `json:"products"`
}

type Summary struct {
	TotalRevenue          float64 `json:"totalRevenue"`
	TotalRevenueFormatted string  `json:"totalRevenueFormatted"`
	TotalOrders           int     `json:"totalOrders"`
	TotalItemsSold        int     `json:"totalItemsSold"`
	AverageOrderValue     float64 `json:"averageOrderValue"`
	UniqueProductsSold    int     `json:"uniqueProductsSold"`
	AverageItemsPerOrder  float64 `json:"averageItemsPerOrder"`
}

type RankedProduct struct {
	reports.TopProduct
	RevenuePercentage string `json:"revenuePercentage"`
}

type DetailedOrder struct {
	OrderNumber    string         `json:"orderNumber"`
	Date           time.Time      `json:"date"`
	CustomerName   string         `json:"customerName"`
	Total          float64        `json:"total"`
	TotalFormatted string         `json:"totalFormatted"`
	ItemCount      int            `json:"itemCount"`
	Items          []DetailedItem `json:"items"`
}

type DetailedItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
}

const topProductLimit = 20

// SalesReport combines the aggregation engine outputs into one document.
func SalesReport(reportType string, window reports.Window, orders []models.Order, productCount int, now time.Time) Report {
	stats := reports.SalesStats(orders)

	period := ReportPeriod{FromDate: "All time", ToDate: "All time"}
	if window.From != nil {
		period.FromDate = window.From.Format("2006-01-02")
	}
	if window.To != nil {
		period.ToDate = window.To.Format("2006-01-02")
	}

	top := reports.TopProducts(orders, topProductLimit)
	ranked := make([]RankedProduct, 0, len(top))
	for _, product := range top {
		row := RankedProduct{TopProduct: product, RevenuePercentage: "0"}
		if stats.TotalRevenue > 0 {
			row.RevenuePercentage = fmt.Sprintf("%.2f", product.TotalRevenue/stats.TotalRevenue*100)
		}
		ranked = append(ranked, row)
	}

	report := Report{
		Metadata: ReportMetadata{
			ReportType:  reportType,
			GeneratedAt: now.Format(time.RFC3339),
			Period:      period,
			TotalRecords: RecordCounts{
				Orders:   len(orders),
				Products: productCount,
			},
		},
		Summary: Summary{
			TotalRevenue:          stats.TotalRevenue,
			TotalRevenueFormatted: currency.Format(stats.TotalRevenue),
			TotalOrders:           stats.TotalOrders,
			TotalItemsSold:        stats.TotalItemsSold,
			AverageOrderValue:     stats.AverageOrderValue,
			UniqueProductsSold:    stats.UniqueProductsSold,
			AverageItemsPerOrder:  stats.AverageItemsPerOrder,
		},
		TopProducts: ranked,
		DailySales:  reports.DailyBreakdown(orders),
	}

	if reportType == "detailed" {
		report.DetailedOrders = detailOrders(orders)
	}
	return report
}

func detailOrders(orders []models.Order) []DetailedOrder {
	detailed := make([]DetailedOrder, 0, len(orders))
	for _, order := range orders {
		number := order.OrderNumber
		if number == "" && !order.ID.IsZero() {
			hex := order.ID.Hex()
			number = "ORD-" + hex[len(hex)-6:]
		}
		name := order.CustomerName
		if name == "" {
			name = "Guest"
		}

		items := make([]DetailedItem, 0, len(order.Items))
		for _, item := range order.Items {
			items = append(items, DetailedItem{
				Name:     item.Name,
				Quantity: item.Quantity,
				Price:    item.Price,
				Subtotal: item.Price * float64(item.Quantity),
			})
		}

		detailed = append(detailed, DetailedOrder{
			OrderNumber:    number,
			Date:           order.CreatedAt,
			CustomerName:   name,
			Total:          order.Total,
			TotalFormatted: currency.Format(order.Total),
			ItemCount:      len(order.Items),
			Items:          items,
		})
	}
	return detailed
}

// SalesReportFilename embeds the resolved range, or today's date for
// unbounded reports: sales-report-overview-2025-01-01_to_2025-01-31.json
func SalesReportFilename(reportType string, window reports.Window, now time.Time) string {
	period := now.Format("2006-01-02")
	if window.Bounded() {
		period = fmt.Sprintf("%s_to_%s", window.From.Format("2006-01-02"), window.To.Format("2006-01-02"))
	}
	return fmt.Sprintf("sales-report-%s-%s.json", reportType, period)
}
