package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/domain"
)

type WishRepository struct {
	coll Collection
}

func NewWishRepository(db Store) *WishRepository {
	return &WishRepository{coll: db.Collection(WishlistCollection)}
}

func (r *WishRepository) Create(ctx context.Context, wish *domain.Wish) (*mongo.InsertOneResult, error) {
	return insert(ctx, r.coll, wish, &wish.Model)
}

func (r *WishRepository) FindAll(ctx context.Context) ([]domain.Wish, error) {
	return findAll[domain.Wish](ctx, r.coll, bson.M{})
}
