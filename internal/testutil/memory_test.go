package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type item struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name,omitempty"`
	Owner string             `bson:"owner,omitempty"`
}

func TestMemoryCollection_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().C("items")

	res, err := coll.InsertOne(ctx, item{Name: "saw", Owner: "a"})
	require.NoError(t, err)
	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok)

	_, err = coll.InsertOne(ctx, item{Name: "drill", Owner: "b"})
	require.NoError(t, err)

	var all []item
	require.NoError(t, coll.Find(ctx, bson.M{}, &all))
	assert.Len(t, all, 2)

	var owned []item
	require.NoError(t, coll.Find(ctx, bson.M{"owner": "a"}, &owned))
	require.Len(t, owned, 1)
	assert.Equal(t, id, owned[0].ID)

	var one item
	require.NoError(t, coll.FindOne(ctx, bson.M{"_id": id}, &one))
	assert.Equal(t, "saw", one.Name)
}

func TestMemoryCollection_InsertDuplicateID(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().C("items")
	id := primitive.NewObjectID()

	_, err := coll.InsertOne(ctx, item{ID: id, Name: "saw"})
	require.NoError(t, err)

	_, err = coll.InsertOne(ctx, item{ID: id, Name: "drill"})
	require.Error(t, err)
	assert.True(t, mongo.IsDuplicateKeyError(err))
	assert.Equal(t, 1, coll.Len())

	var stored item
	require.NoError(t, coll.FindOne(ctx, bson.M{"_id": id}, &stored))
	assert.Equal(t, "saw", stored.Name)
}

func TestMemoryCollection_FindOneMiss(t *testing.T) {
	coll := NewMemoryStore().C("items")

	var one item
	err := coll.FindOne(context.Background(), bson.M{"name": "none"}, &one)
	assert.ErrorIs(t, err, mongo.ErrNoDocuments)
}

func TestMemoryCollection_NilFilterMatchesMissingField(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().C("items")

	_, err := coll.InsertOne(ctx, item{Name: "orphan"})
	require.NoError(t, err)
	_, err = coll.InsertOne(ctx, item{Name: "owned", Owner: "a"})
	require.NoError(t, err)

	var found []item
	require.NoError(t, coll.Find(ctx, bson.M{"owner": nil}, &found))
	require.Len(t, found, 1)
	assert.Equal(t, "orphan", found[0].Name)
}

func TestMemoryCollection_UpdateOne(t *testing.T) {
	ctx := context.Background()

	t.Run("upsert inserts once then updates", func(t *testing.T) {
		coll := NewMemoryStore().C("items")

		res, err := coll.UpdateOne(ctx, bson.M{"owner": "a"}, bson.M{"$set": bson.M{"name": "one"}}, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.UpsertedCount)
		assert.NotNil(t, res.UpsertedID)

		res, err = coll.UpdateOne(ctx, bson.M{"owner": "a"}, bson.M{"$set": bson.M{"name": "two"}}, true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)
		assert.Equal(t, 1, coll.Len())

		var got item
		require.NoError(t, coll.FindOne(ctx, bson.M{"owner": "a"}, &got))
		assert.Equal(t, "two", got.Name)
	})

	t.Run("no upsert leaves collection untouched", func(t *testing.T) {
		coll := NewMemoryStore().C("items")

		res, err := coll.UpdateOne(ctx, bson.M{"owner": "x"}, bson.M{"$set": bson.M{"name": "n"}}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(0), res.MatchedCount)
		assert.Equal(t, 0, coll.Len())
	})

	t.Run("unchanged value is not counted as modified", func(t *testing.T) {
		coll := NewMemoryStore().C("items")
		_, err := coll.InsertOne(ctx, item{Name: "same", Owner: "a"})
		require.NoError(t, err)

		res, err := coll.UpdateOne(ctx, bson.M{"owner": "a"}, bson.M{"$set": bson.M{"name": "same"}}, false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(0), res.ModifiedCount)
	})

	t.Run("rejects operators other than $set", func(t *testing.T) {
		coll := NewMemoryStore().C("items")
		_, err := coll.UpdateOne(ctx, bson.M{}, bson.M{"$inc": bson.M{"n": 1}}, false)
		assert.Error(t, err)
	})
}

func TestMemoryCollection_DeleteOne(t *testing.T) {
	ctx := context.Background()
	coll := NewMemoryStore().C("items")

	res, err := coll.InsertOne(ctx, item{Name: "saw"})
	require.NoError(t, err)

	del, err := coll.DeleteOne(ctx, bson.M{"_id": res.InsertedID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)

	del, err = coll.DeleteOne(ctx, bson.M{"_id": res.InsertedID})
	require.NoError(t, err)
	assert.Equal(t, int64(0), del.DeletedCount)
	assert.Equal(t, 0, coll.Len())
}

func TestMemoryCollection_FailWith(t *testing.T) {
	store := NewMemoryStore()
	coll := store.C("items")
	boom := errors.New("connection reset")
	coll.FailWith(boom)

	_, err := coll.InsertOne(context.Background(), item{Name: "saw"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, store.Calls())
}

func TestMemoryCollection_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out []item
	err := NewMemoryStore().C("items").Find(ctx, bson.M{}, &out)
	assert.ErrorIs(t, err, context.Canceled)
}
