package reports

import (
	"sort"
	"time"

	"jennamart/internal/models"
	"jennamart/internal/storage"
)

// DailySales is one calendar day of the daily rollup.
type DailySales struct {
	Date              string  `json:"date"`
	Revenue           float64 `json:"revenue"`
	Orders            int     `json:"orders"`
	TotalItems        int     `json:"totalItems"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// MonthlySales is one calendar month of the monthly rollup, oldest first.
type MonthlySales struct {
	Year                 int      `json:"year"`
	Month                int      `json:"month"`
	MonthName            string   `json:"monthName"`
	Revenue              float64  `json:"revenue"`
	Orders               int      `json:"orders"`
	TotalItems           int      `json:"totalItems"`
	UniqueCustomers      int      `json:"uniqueCustomers"`
	AverageOrderValue    float64  `json:"averageOrderValue"`
	AverageItemsPerOrder float64  `json:"averageItemsPerOrder"`
	RevenueGrowth        *float64 `json:"revenueGrowth"`
	OrdersGrowth         *float64 `json:"ordersGrowth"`
}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

const dateLayout = "2006-01-02"

// FillDaily expands grouped day buckets into a contiguous, gap-free sequence
// covering every calendar day from from to to inclusive. Days with no orders
// are zero-filled.
func FillDaily(buckets []storage.DayBucket, from, to time.Time) []DailySales {
	byDate := make(map[string]DailySales, len(buckets))
	for _, b := range buckets {
		date := time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, from.Location())
		day := DailySales{
			Date:       date.Format(dateLayout),
			Revenue:    b.Revenue,
			Orders:     b.Orders,
			TotalItems: b.TotalItems,
		}
		if b.Orders > 0 {
			day.AverageOrderValue = b.Revenue / float64(b.Orders)
		}
		byDate[day.Date] = day
	}

	days := make([]DailySales, 0)
	end := EndOfDay(to)
	for cur := StartOfDay(from); !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		date := cur.Format(dateLayout)
		if day, ok := byDate[date]; ok {
			days = append(days, day)
		} else {
			days = append(days, DailySales{Date: date})
		}
	}
	return days
}

// MonthlyWithGrowth formats month buckets (newest first, as queried) into a
// chronological sequence with growth percentages against the immediately
// preceding entry of the returned sequence.
func MonthlyWithGrowth(buckets []storage.MonthBucket) []MonthlySales {
	months := make([]MonthlySales, 0, len(buckets))
	for i := len(buckets) - 1; i >= 0; i-- {
		b := buckets[i]
		month := MonthlySales{
			Year:            b.Year,
			Month:           b.Month,
			Revenue:         b.Revenue,
			Orders:          b.Orders,
			TotalItems:      b.TotalItems,
			UniqueCustomers: b.UniqueCustomers,
		}
		if b.Month >= 1 && b.Month <= 12 {
			month.MonthName = monthNames[b.Month-1]
		}
		if b.Orders > 0 {
			month.AverageOrderValue = b.Revenue / float64(b.Orders)
			month.AverageItemsPerOrder = float64(b.TotalItems) / float64(b.Orders)
		}
		months = append(months, month)
	}

	for i := 1; i < len(months); i++ {
		prev := months[i-1]
		months[i].RevenueGrowth = Growth(months[i].Revenue, prev.Revenue)
		months[i].OrdersGrowth = Growth(float64(months[i].Orders), float64(prev.Orders))
	}
	return months
}

// BreakdownDay is one day of the in-memory breakdown used by sales report
// exports. Unlike FillDaily it only lists days that had orders.
type BreakdownDay struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
	Items   int     `json:"items"`
}

// DailyBreakdown groups orders by calendar day, sorted by date.
func DailyBreakdown(orders []models.Order) []BreakdownDay {
	byDate := map[string]*BreakdownDay{}
	for _, order := range orders {
		date := order.CreatedAt.Format(dateLayout)
		day, ok := byDate[date]
		if !ok {
			day = &BreakdownDay{Date: date}
			byDate[date] = day
		}
		day.Orders++
		day.Revenue += order.Total
		day.Items += order.ItemCount()
	}

	days := make([]BreakdownDay, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}
