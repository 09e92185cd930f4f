package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/domain"
)

var ErrToolNotFound = errors.New("tool not found")

type ToolRepository struct {
	coll Collection
}

func NewToolRepository(db Store) *ToolRepository {
	return &ToolRepository{coll: db.Collection(ToolsCollection)}
}

func (r *ToolRepository) FindAll(ctx context.Context) ([]domain.Tool, error) {
	return findAll[domain.Tool](ctx, r.coll, bson.M{})
}

// FindByID returns ErrToolNotFound on a miss. A malformed id is returned
// as the parse error.
func (r *ToolRepository) FindByID(ctx context.Context, id string) (*domain.Tool, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}

	tool := &domain.Tool{}
	if err := r.coll.FindOne(ctx, filter, tool); err != nil {
		if errors.Is(err, ErrNoDocuments) {
			return nil, ErrToolNotFound
		}
		return nil, err
	}
	return tool, nil
}

func (r *ToolRepository) Create(ctx context.Context, tool *domain.Tool) (*mongo.InsertOneResult, error) {
	return insert(ctx, r.coll, tool, &tool.Model)
}

func (r *ToolRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.coll.DeleteOne(ctx, filter)
}
