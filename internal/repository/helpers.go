package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/domain"
)

func findAll[T any](ctx context.Context, coll Collection, filter bson.M) ([]T, error) {
	items := make([]T, 0)
	if err := coll.Find(ctx, filter, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// insert stores doc and records the identifier the store assigned on m, the
// Model embedded in doc. Any identifier already set on m is discarded first.
func insert(ctx context.Context, coll Collection, doc any, m *domain.Model) (*mongo.InsertOneResult, error) {
	m.ID = primitive.NilObjectID

	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	m.ID, _ = res.InsertedID.(primitive.ObjectID)
	return res, nil
}

func byID(id string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": oid}, nil
}
