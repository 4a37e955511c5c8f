package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a single line of an order. Price is the snapshot taken when
// the item was added to the cart; reports must never re-read the catalog.
type OrderItem struct {
	ProductID string  `bson:"productId,omitempty" json:"productId,omitempty"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Order is the persisted order document. Orders are immutable after checkout
// and may only be bulk-deleted once they are older than the safety boundary.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderNumber  string             `bson:"orderNumber" json:"orderNumber"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Total        float64            `bson:"total" json:"total"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Status       string             `bson:"status" json:"status"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// ItemCount returns the summed quantity over all lines.
func (o Order) ItemCount() int {
	count := 0
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
