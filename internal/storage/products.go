package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jennamart/internal/models"
)

// Products wraps the products collection behind the Filter type.
type Products struct {
	db *mongo.Database
}

func NewProducts(db *mongo.Database) *Products {
	return &Products{db: db}
}

func (p *Products) collection() *mongo.Collection {
	return p.db.Collection("products")
}

func (p *Products) Find(ctx context.Context, filter Filter, opts ...*options.FindOptions) ([]models.Product, error) {
	cursor, err := p.collection().Find(ctx, filter.BSON(), opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *Products) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := p.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (p *Products) Count(ctx context.Context, filter Filter) (int64, error) {
	return p.collection().CountDocuments(ctx, filter.BSON())
}

func (p *Products) Insert(ctx context.Context, product models.Product) (primitive.ObjectID, error) {
	res, err := p.collection().InsertOne(ctx, product)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// InsertMany inserts an imported batch and returns how many documents went in.
func (p *Products) InsertMany(ctx context.Context, products []models.Product) (int, error) {
	docs := make([]interface{}, 0, len(products))
	for _, product := range products {
		docs = append(docs, product)
	}
	res, err := p.collection().InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

func (p *Products) UpdateByID(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	res, err := p.collection().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (p *Products) DeleteByID(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := p.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (p *Products) DeleteMany(ctx context.Context, filter Filter) (int64, error) {
	res, err := p.collection().DeleteMany(ctx, filter.BSON())
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Latest returns the most recently created product, or nil on an empty
// collection.
func (p *Products) Latest(ctx context.Context) (*models.Product, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var product models.Product
	err := p.collection().FindOne(ctx, bson.M{}, opts).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}
