package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/domain"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository struct {
	coll Collection
}

func NewUserRepository(db Store) *UserRepository {
	return &UserRepository{coll: db.Collection(UsersCollection)}
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	return findAll[domain.User](ctx, r.coll, bson.M{})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.coll.FindOne(ctx, bson.M{"email": email}, user); err != nil {
		if errors.Is(err, ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpsertByEmail sets the fields present in patch on the user with the given
// email, creating the document when none exists. The identifier and role are
// never taken from patch; role only changes through SetRole.
func (r *UserRepository) UpsertByEmail(ctx context.Context, email string, patch *domain.User) (*mongo.UpdateResult, error) {
	fields := *patch
	fields.ID = primitive.NilObjectID
	fields.Role = ""
	fields.Email = email

	return r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": fields}, true)
}

// SetRole does not upsert: promoting an unknown email matches nothing.
func (r *UserRepository) SetRole(ctx context.Context, email, role string) (*mongo.UpdateResult, error) {
	return r.coll.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": bson.M{"role": role}}, false)
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	filter, err := byID(id)
	if err != nil {
		return nil, err
	}
	return r.coll.DeleteOne(ctx, filter)
}
