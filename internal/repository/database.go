package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.opentelemetry.io/contrib/instrumentation/go.mongodb.org/mongo-driver/mongo/otelmongo"

	"toolhub/internal/config"
)

const (
	ToolsCollection    = "tools"
	UsersCollection    = "users"
	OrdersCollection   = "orders"
	ReviewsCollection  = "reviews"
	WishlistCollection = "wishlist"
)

// ErrNoDocuments is returned by FindOne when the filter matches nothing.
var ErrNoDocuments = mongo.ErrNoDocuments

// Collection is the set of primitives every handler is built on. None of
// them validate document shape.
type Collection interface {
	// Find decodes every matching document into results, which must be a
	// pointer to a slice.
	Find(ctx context.Context, filter any, results any) error
	FindOne(ctx context.Context, filter any, result any) error
	InsertOne(ctx context.Context, document any) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter, update any, upsert bool) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any) (*mongo.DeleteResult, error)
}

type Store interface {
	Collection(name string) Collection
}

type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

func New(ctx context.Context, cfg *config.Config) (*Database, error) {
	opts := options.Client().
		ApplyURI(cfg.Database.ConnectionURI()).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetMonitor(otelmongo.NewMonitor())

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Database{
		client: client,
		db:     client.Database(cfg.Database.Name),
	}, nil
}

func (d *Database) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

func (d *Database) DB() *mongo.Database {
	return d.db
}

func (d *Database) Collection(name string) Collection {
	return &mongoCollection{coll: d.db.Collection(name)}
}

type mongoCollection struct {
	coll *mongo.Collection
}

func (c *mongoCollection) Find(ctx context.Context, filter any, results any) error {
	cur, err := c.coll.Find(ctx, filter)
	if err != nil {
		return err
	}
	return cur.All(ctx, results)
}

func (c *mongoCollection) FindOne(ctx context.Context, filter any, result any) error {
	return c.coll.FindOne(ctx, filter).Decode(result)
}

func (c *mongoCollection) InsertOne(ctx context.Context, document any) (*mongo.InsertOneResult, error) {
	return c.coll.InsertOne(ctx, document)
}

func (c *mongoCollection) UpdateOne(ctx context.Context, filter, update any, upsert bool) (*mongo.UpdateResult, error) {
	return c.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(upsert))
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter any) (*mongo.DeleteResult, error) {
	return c.coll.DeleteOne(ctx, filter)
}
