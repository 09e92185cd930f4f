package testutil

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"toolhub/internal/repository"
)

// MemoryStore is an in-process repository.Store for handler and repository
// tests. Filters support top-level equality only; a nil filter value matches
// a missing or null field. Updates support $set only.
type MemoryStore struct {
	mu          sync.Mutex
	collections map[string]*MemoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*MemoryCollection)}
}

func (s *MemoryStore) Collection(name string) repository.Collection {
	return s.C(name)
}

// C returns the named collection with its concrete type so tests can
// inspect it.
func (s *MemoryStore) C(name string) *MemoryCollection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &MemoryCollection{}
		s.collections[name] = c
	}
	return c
}

// Calls sums the operations issued against every collection.
func (s *MemoryStore) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, c := range s.collections {
		total += c.Calls()
	}
	return total
}

type MemoryCollection struct {
	mu    sync.Mutex
	docs  []bson.M
	calls int
	err   error
}

// FailWith makes every following operation return err.
func (c *MemoryCollection) FailWith(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.err = err
}

func (c *MemoryCollection) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *MemoryCollection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func (c *MemoryCollection) begin(ctx context.Context) error {
	c.calls++
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.err
}

func (c *MemoryCollection) Find(ctx context.Context, filter any, results any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.begin(ctx); err != nil {
		return err
	}

	rv := reflect.ValueOf(results)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Slice {
		return errors.New("results argument must be a pointer to a slice")
	}

	f, err := toDoc(filter)
	if err != nil {
		return err
	}

	slice := rv.Elem()
	out := reflect.MakeSlice(slice.Type(), 0, len(c.docs))
	for _, doc := range c.docs {
		if !matches(doc, f) {
			continue
		}
		elem := reflect.New(slice.Type().Elem())
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		out = reflect.Append(out, elem.Elem())
	}
	slice.Set(out)
	return nil
}

func (c *MemoryCollection) FindOne(ctx context.Context, filter any, result any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.begin(ctx); err != nil {
		return err
	}

	f, err := toDoc(filter)
	if err != nil {
		return err
	}

	i := c.indexOf(f)
	if i < 0 {
		return mongo.ErrNoDocuments
	}
	return decode(c.docs[i], result)
}

func (c *MemoryCollection) InsertOne(ctx context.Context, document any) (*mongo.InsertOneResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	doc, err := toDoc(document)
	if err != nil {
		return nil, err
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	if c.indexOf(bson.M{"_id": doc["_id"]}) >= 0 {
		return nil, duplicateKeyError(doc["_id"])
	}

	c.docs = append(c.docs, doc)
	return &mongo.InsertOneResult{InsertedID: doc["_id"]}, nil
}

func (c *MemoryCollection) UpdateOne(ctx context.Context, filter, update any, upsert bool) (*mongo.UpdateResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	f, err := toDoc(filter)
	if err != nil {
		return nil, err
	}
	u, err := toDoc(update)
	if err != nil {
		return nil, err
	}
	set, ok := asMap(u["$set"])
	if !ok || len(u) != 1 {
		return nil, fmt.Errorf("unsupported update document: %v", u)
	}

	if i := c.indexOf(f); i >= 0 {
		doc := c.docs[i]
		modified := int64(0)
		for k, v := range set {
			if !reflect.DeepEqual(doc[k], v) {
				modified = 1
			}
			doc[k] = v
		}
		return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: modified}, nil
	}

	if !upsert {
		return &mongo.UpdateResult{}, nil
	}

	doc := bson.M{}
	for k, v := range f {
		if v != nil {
			doc[k] = v
		}
	}
	for k, v := range set {
		doc[k] = v
	}
	if _, ok := doc["_id"]; !ok {
		doc["_id"] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, doc)

	return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: doc["_id"]}, nil
}

func (c *MemoryCollection) DeleteOne(ctx context.Context, filter any) (*mongo.DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.begin(ctx); err != nil {
		return nil, err
	}

	f, err := toDoc(filter)
	if err != nil {
		return nil, err
	}

	i := c.indexOf(f)
	if i < 0 {
		return &mongo.DeleteResult{}, nil
	}
	c.docs = append(c.docs[:i], c.docs[i+1:]...)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (c *MemoryCollection) indexOf(filter bson.M) int {
	for i, doc := range c.docs {
		if matches(doc, filter) {
			return i
		}
	}
	return -1
}

// duplicateKeyError mirrors the write error the server returns when the
// unique _id index rejects an insert.
func duplicateKeyError(id any) error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{
			Index:   0,
			Code:    11000,
			Message: fmt.Sprintf("E11000 duplicate key error index: _id_ dup key: { _id: %v }", id),
		}},
	}
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if want == nil {
			if ok && got != nil {
				return false
			}
			continue
		}
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

// toDoc round-trips v through BSON so stored values have the same types
// the driver would produce.
func toDoc(v any) (bson.M, error) {
	if v == nil {
		return bson.M{}, nil
	}
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	doc := bson.M{}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decode(doc bson.M, out any) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

func asMap(v any) (bson.M, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]any:
		return m, true
	case primitive.D:
		out := bson.M{}
		for _, e := range m {
			out[e.Key] = e.Value
		}
		return out, true
	default:
		return nil, false
	}
}
