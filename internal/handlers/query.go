package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"jennamart/internal/reports"
	"jennamart/internal/storage"
)

func parseLimitParam(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("limit must be a positive integer")
	}
	return limit, nil
}

// windowFromQuery reads the optional fromDate/toDate parameters shared by the
// reporting and retention routes.
func windowFromQuery(c *gin.Context) (reports.Window, error) {
	window, err := reports.WindowFromQuery(
		strings.TrimSpace(c.Query("fromDate")),
		strings.TrimSpace(c.Query("toDate")),
	)
	if err != nil {
		return reports.Window{}, fmt.Errorf("invalid date: %v", err)
	}
	return window, nil
}

// windowFilter translates a window into a createdAt range filter. Missing
// bounds leave that side unbounded; an empty window matches everything.
func windowFilter(window reports.Window) storage.Filter {
	if window.Empty() {
		return storage.Always()
	}
	var gte, lte interface{}
	if window.From != nil {
		gte = *window.From
	}
	if window.To != nil {
		lte = *window.To
	}
	return storage.Between("createdAt", gte, lte)
}

// parseCollectionsParam keeps only the known collection names, preserving the
// requested order.
func parseCollectionsParam(raw string) []string {
	selected := make([]string, 0, 2)
	for _, name := range strings.Split(raw, ",") {
		switch strings.TrimSpace(name) {
		case "products":
			selected = append(selected, "products")
		case "orders":
			selected = append(selected, "orders")
		}
	}
	return selected
}
