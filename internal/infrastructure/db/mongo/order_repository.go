package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/storefront/orders-api/internal/core/domain"
	"github.com/storefront/orders-api/internal/core/ports"
)

const ordersCollection = "orders"

// OrderRepository implements ports.OrderRepository on MongoDB.
type OrderRepository struct {
	coll *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{coll: db.Collection(ordersCollection)}
}

type orderDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	UserID        string             `bson:"userId"`
	Client        string             `bson:"client"`
	Products      []productRefDoc    `bson:"products"`
	Status        string             `bson:"status"`
	DateEntry     time.Time          `bson:"dateEntry"`
	DateProcessed *time.Time         `bson:"dateProcessed,omitempty"`
}

type productRefDoc struct {
	ProductID string `bson:"productId"`
	Qty       int    `bson:"qty"`
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc orderDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromDomain(order))
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *OrderRepository) Update(ctx context.Context, id string, order *domain.Order) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomain(order)
	update := bson.M{"$set": bson.M{
		"userId":        doc.UserID,
		"client":        doc.Client,
		"products":      doc.Products,
		"status":        doc.Status,
		"dateProcessed": doc.DateProcessed,
	}}
	res, err := r.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrOrderNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) List(ctx context.Context, filter ports.ListOrdersFilter) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(filter.Skip).
		SetLimit(filter.Limit)

	cursor, err := r.coll.Find(ctx, listFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*domain.Order
	for cursor.Next(ctx) {
		var doc orderDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, doc.toDomain())
	}
	return orders, cursor.Err()
}

func (r *OrderRepository) Count(ctx context.Context, filter ports.ListOrdersFilter) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.coll.CountDocuments(ctx, listFilter(filter))
}

// EnsureIndexes creates the indexes backing list queries.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func listFilter(filter ports.ListOrdersFilter) bson.M {
	q := bson.M{}
	if filter.Tags != "" {
		q["tags"] = filter.Tags
	}
	return q
}

func fromDomain(o *domain.Order) orderDoc {
	refs := make([]productRefDoc, len(o.Products))
	for i, ref := range o.Products {
		refs[i] = productRefDoc{ProductID: ref.ProductID, Qty: ref.Qty}
	}
	return orderDoc{
		UserID:        o.UserID,
		Client:        o.Client,
		Products:      refs,
		Status:        string(o.Status),
		DateEntry:     o.DateEntry,
		DateProcessed: o.DateProcessed,
	}
}

func (d orderDoc) toDomain() *domain.Order {
	refs := make([]domain.ProductRef, len(d.Products))
	for i, ref := range d.Products {
		refs[i] = domain.ProductRef{ProductID: ref.ProductID, Qty: ref.Qty}
	}
	return &domain.Order{
		ID:            d.ID.Hex(),
		UserID:        d.UserID,
		Client:        d.Client,
		Products:      refs,
		Status:        domain.OrderStatus(d.Status),
		DateEntry:     d.DateEntry,
		DateProcessed: d.DateProcessed,
	}
}
