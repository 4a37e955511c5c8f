package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jennamart/internal/models"
)

// Orders wraps the orders collection behind the Filter type.
type Orders struct {
	db *mongo.Database
}

func NewOrders(db *mongo.Database) *Orders {
	return &Orders{db: db}
}

func (o *Orders) collection() *mongo.Collection {
	return o.db.Collection("orders")
}

func (o *Orders) Find(ctx context.Context, filter Filter, opts ...*options.FindOptions) ([]models.Order, error) {
	cursor, err := o.collection().Find(ctx, filter.BSON(), opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := make([]models.Order, 0)
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (o *Orders) Count(ctx context.Context, filter Filter) (int64, error) {
	return o.collection().CountDocuments(ctx, filter.BSON())
}

func (o *Orders) Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error) {
	res, err := o.collection().InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (o *Orders) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	res, err := o.collection().DeleteMany(ctx, filter.BSON())
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Latest returns the most recently created order, or nil on an empty
// collection.
func (o *Orders) Latest(ctx context.Context) (*models.Order, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var order models.Order
	err := o.collection().FindOne(ctx, bson.M{}, opts).Decode(&order)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// DayBucket is one $group result keyed by calendar day.
type DayBucket struct {
	Year       int
	Month      int
	Day        int
	Revenue    float64
	Orders     int
	TotalItems int
}

// MonthBucket is one $group result keyed by calendar month.
type MonthBucket struct {
	Year            int
	Month           int
	Revenue         float64
	Orders          int
	TotalItems      int
	UniqueCustomers int
}

// itemQuantitySum folds items.quantity inside the pipeline so orders with no
// items contribute zero instead of failing the $sum.
var itemQuantitySum = bson.M{
	"$sum": bson.M{
		"$reduce": bson.M{
			"input":        bson.M{"$ifNull": []interface{}{"$items", []interface{}{}}},
			"initialValue": 0,
			"in":           bson.M{"$add": []interface{}{"$$value", "$$this.quantity"}},
		},
	},
}

// DailyBuckets groups matching orders by (year, month, day), summing revenue,
// order counts and item quantities, sorted chronologically.
func (o *Orders) DailyBuckets(ctx context.Context, filter Filter) ([]DayBucket, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: filter.BSON()}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
				"day":   bson.M{"$dayOfMonth": "$createdAt"},
			},
			"revenue":    bson.M{"$sum": "$total"},
			"orders":     bson.M{"$sum": 1},
			"totalItems": itemQuantitySum,
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
			{Key: "_id.day", Value: 1},
		}}},
	}

	cursor, err := o.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
			Day   int `bson:"day"`
		} `bson:"_id"`
		Revenue    float64 `bson:"revenue"`
		Orders     int     `bson:"orders"`
		TotalItems int     `bson:"totalItems"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	buckets := make([]DayBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, DayBucket{
			Year:       row.ID.Year,
			Month:      row.ID.Month,
			Day:        row.ID.Day,
			Revenue:    row.Revenue,
			Orders:     row.Orders,
			TotalItems: row.TotalItems,
		})
	}
	return buckets, nil
}

// MonthlyBuckets groups the whole collection by (year, month) and returns the
// most recent limit months, newest first.
func (o *Orders) MonthlyBuckets(ctx context.Context, limit int64) ([]MonthBucket, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
			},
			"revenue":         bson.M{"$sum": "$total"},
			"orders":          bson.M{"$sum": 1},
			"totalItems":      itemQuantitySum,
			"uniqueCustomers": bson.M{"$addToSet": "$customerName"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: -1},
			{Key: "_id.month", Value: -1},
		}}},
		bson.D{{Key: "$limit", Value: limit}},
	}

	cursor, err := o.collection().Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID struct {
			Year  int `bson:"year"`
			Month int `bson:"month"`
		} `bson:"_id"`
		Revenue         float64  `bson:"revenue"`
		Orders          int      `bson:"orders"`
		TotalItems      int      `bson:"totalItems"`
		UniqueCustomers []string `bson:"uniqueCustomers"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	buckets := make([]MonthBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, MonthBucket{
			Year:            row.ID.Year,
			Month:           row.ID.Month,
			Revenue:         row.Revenue,
			Orders:          row.Orders,
			TotalItems:      row.TotalItems,
			UniqueCustomers: len(row.UniqueCustomers),
		})
	}
	return buckets, nil
}
