package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/domain"
)

type OrderRepository struct {
	coll Collection
}

func NewOrderRepository(db Store) *OrderRepository {
	return &OrderRepository{coll: db.Collection(OrdersCollection)}
}

func (r *OrderRepository) Create(ctx context.Context, order *domain.Order) (*mongo.InsertOneResult, error) {
	return insert(ctx, r.coll, order, &order.Model)
}

// FindByUserEmail matches orders placed by email. An empty email is sent as
// null, which matches orders without a userEmail field.
func (r *OrderRepository) FindByUserEmail(ctx context.Context, email string) ([]domain.Order, error) {
	filter := bson.M{"userEmail": nil}
	if email != "" {
		filter["userEmail"] = email
	}
	return findAll[domain.Order](ctx, r.coll, filter)
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]domain.Order, error) {
	return findAll[domain.Order](ctx, r.coll, bson.M{})
}
