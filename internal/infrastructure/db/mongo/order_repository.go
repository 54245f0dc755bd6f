package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/greenloop/waste-mgmt/internal/core/domain"
)

const ordersCollection = "orders"

// MongoOrderRepository persists pickup orders, one document per item line.
type MongoOrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{coll: db.Collection(ordersCollection)}
}

type mongoOrder struct {
	ID            string    `bson:"_id"`
	UserID        string    `bson:"user_id"`
	UserName      string    `bson:"user_name"`
	ItemType      string    `bson:"item_type"`
	Quantity      float64   `bson:"quantity"`
	PickupDate    time.Time `bson:"pickup_date"`
	OrderDate     time.Time `bson:"order_date"`
	PickupAddress string    `bson:"pickup_address"`
}

func (m mongoOrder) toDomain() *domain.Order {
	return &domain.Order{
		ID:            m.ID,
		UserID:        m.UserID,
		UserName:      m.UserName,
		ItemType:      m.ItemType,
		Quantity:      m.Quantity,
		PickupDate:    m.PickupDate,
		OrderDate:     m.OrderDate,
		PickupAddress: m.PickupAddress,
	}
}

// InsertMany persists an order batch as a single ordered insert; it
// stops at the first failed document and reports the error.
func (r *MongoOrderRepository) InsertMany(ctx context.Context, orders []*domain.Order) error {
	docs := make([]interface{}, 0, len(orders))
	for _, o := range orders {
		docs = append(docs, mongoOrder{
			ID:            o.ID,
			UserID:        o.UserID,
			UserName:      o.UserName,
			ItemType:      o.ItemType,
			Quantity:      o.Quantity,
			PickupDate:    o.PickupDate,
			OrderDate:     o.OrderDate,
			PickupAddress: o.PickupAddress,
		})
	}

	if _, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return fmt.Errorf("insert orders: %w", err)
	}
	return nil
}

func (r *MongoOrderRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Order, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*domain.Order
	for cursor.Next(ctx) {
		var mo mongoOrder
		if err := cursor.Decode(&mo); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, mo.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
