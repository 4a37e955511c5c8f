// Package cart holds the transient checkout state for one POS session. State
// transitions are pure: they return a new state and never mutate the input,
// and the total is always recomputed from the items.
package cart

import "jennamart/internal/models"

type State struct {
	Items []models.OrderItem `json:"items"`
	Total float64            `json:"total"`
}

func Empty() State {
	return State{Items: []models.OrderItem{}}
}

// AddItem merges the item into the cart: an existing line for the same
// product grows by the item's quantity, otherwise a new line is appended.
// Quantities below one count as one.
func AddItem(s State, item models.OrderItem) State {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	items := cloneItems(s.Items)
	merged := false
	for i := range items {
		if items[i].ProductID == item.ProductID && items[i].ProductID != "" {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}
	return withTotal(items)
}

// RemoveItem drops the line for the given product, if present.
func RemoveItem(s State, productID string) State {
	items := make([]models.OrderItem, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ProductID == productID {
			continue
		}
		items = append(items, item)
	}
	return withTotal(items)
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line.
func SetQuantity(s State, productID string, quantity int) State {
	if quantity <= 0 {
		return RemoveItem(s, productID)
	}

	items := cloneItems(s.Items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = quantity
			break
		}
	}
	return withTotal(items)
}

// Clear empties the cart.
func Clear(State) State {
	return Empty()
}

func cloneItems(items []models.OrderItem) []models.OrderItem {
	cloned := make([]models.OrderItem, len(items))
	copy(cloned, items)
	return cloned
}

func withTotal(items []models.OrderItem) State {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return State{Items: items, Total: total}
}
