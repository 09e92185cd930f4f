package dto

import "go.mongodb.org/mongo-driver/mongo"

// InsertResult, UpdateResult and DeleteResult are the acknowledgement
// bodies returned by write routes.
type InsertResult struct {
	Acknowledged bool `json:"acknowledged"`
	InsertedID   any  `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
	UpsertedCount int64 `json:"upsertedCount"`
	UpsertedID    any   `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

func InsertResultFromMongo(res *mongo.InsertOneResult) *InsertResult {
	if res == nil {
		return nil
	}
	return &InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func UpdateResultFromMongo(res *mongo.UpdateResult) *UpdateResult {
	if res == nil {
		return nil
	}
	return &UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func DeleteResultFromMongo(res *mongo.DeleteResult) *DeleteResult {
	if res == nil {
		return nil
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}
