package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Model carries the store-assigned identifier. It is zero until the
// document has been inserted and never changes afterwards.
type Model struct {
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
}
