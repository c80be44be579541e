package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mercantile/pkg/shipping"
)

type OrderItem struct {
	ProductID string  `bson:"productId,omitempty" json:"productId,omitempty"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

type Customer struct {
	Name    string           `bson:"name,omitempty" json:"name,omitempty"`
	Email   string           `bson:"email,omitempty" json:"email,omitempty"`
	Address shipping.Address `bson:"address,omitempty" json:"address,omitempty"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderNumber  string             `bson:"orderNumber" json:"orderNumber"`
	Customer     Customer           `bson:"customer,omitempty" json:"customer,omitempty"`
	Items        []OrderItem        `bson:"items,omitempty" json:"items,omitempty"`
	Subtotal     float64            `bson:"subtotal" json:"subtotal"`
	ShippingCost float64            `bson:"shippingCost" json:"shippingCost"`
	Total        float64            `bson:"total" json:"total"`
	Status       string             `bson:"status" json:"status"`
	PaymentID    string             `bson:"paymentId,omitempty" json:"paymentId,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

func NewOrdersRepository(s *Store) *OrdersRepository {
	return &OrdersRepository{s: s}
}

type OrdersRepository struct {
	s *Store
}

func (r *OrdersRepository) Create(ctx context.Context, o Order) (Order, error) {
	coll, err := r.s.collection("orders")
	if err != nil {
		return o, err
	}

	now := time.Now().UTC()
	if o.OrderNumber == "" {
		o.OrderNumber = fmt.Sprintf("ORD-%d", now.UnixMilli())
	}
	if o.Status == "" {
		o.Status = "pending"
	}
	o.CreatedAt = now

	result, err := coll.InsertOne(ctx, o)
	if err != nil {
		return o, fmt.Errorf("insert order: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		o.ID = oid
	}

	return o, nil
}

// All returns every order, newest first.
func (r *OrdersRepository) All(ctx context.Context) ([]Order, error) {
	return r.find(ctx, bson.M{})
}

func (r *OrdersRepository) ByStatus(ctx context.Context, status string) ([]Order, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *OrdersRepository) find(ctx context.Context, filter bson.M) ([]Order, error) {
	coll, err := r.s.collection("orders")
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	orders := []Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	return orders, nil
}

func (r *OrdersRepository) UpdateStatus(ctx context.Context, id, status string) error {
	coll, err := r.s.collection("orders")
	if err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := coll.UpdateByID(ctx, oid, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("%w: order %s", ErrNotFound, id)
	}

	return nil
}

func (r *OrdersRepository) Delete(ctx context.Context, id string) error {
	coll, err := r.s.collection("orders")
	if err != nil {
		return err
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("%w: order %s", ErrNotFound, id)
	}

	return nil
}
