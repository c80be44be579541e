package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64            `bson:"price" json:"price"`
	Category    string             `bson:"category,omitempty" json:"category,omitempty"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	InStock     bool               `bson:"inStock" json:"inStock"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

func NewProductsRepository(s *Store) *ProductsRepository {
	return &ProductsRepository{s: s}
}

type ProductsRepository struct {
	s *Store
}

func (r *ProductsRepository) All(ctx context.Context) ([]Product, error) {
	coll, err := r.s.collection("products")
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	return products, nil
}

func (r *ProductsRepository) Create(ctx context.Context, p Product) (Product, error) {
	coll, err := r.s.collection("products")
	if err != nil {
		return p, err
	}

	p.CreatedAt = time.Now().UTC()

	result, err := coll.InsertOne(ctx, p)
	if err != nil {
		return p, fmt.Errorf("insert product: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}

	return p, nil
}

func (r *ProductsRepository) Update(ctx context.Context, id string, p Product) error {
	coll, err := r.s.collection("products")
	if err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"image":       p.Image,
		"inStock":     p.InStock,
	}}

	result, err := coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: product %s", ErrNotFound, id)
	}

	return nil
}

func (r *ProductsRepository) Delete(ctx context.Context, id string) error {
	coll, err := r.s.collection("products")
	if err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: product %s", ErrNotFound, id)
	}

	return nil
}
