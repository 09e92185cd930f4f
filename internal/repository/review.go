package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/domain"
)

type ReviewRepository struct {
	coll Collection
}

func NewReviewRepository(db Store) *ReviewRepository {
	return &ReviewRepository{coll: db.Collection(ReviewsCollection)}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*mongo.InsertOneResult, error) {
	return insert(ctx, r.coll, review, &review.Model)
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	return findAll[domain.Review](ctx, r.coll, bson.M{})
}
