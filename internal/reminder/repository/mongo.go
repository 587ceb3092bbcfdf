package repository

import (
	"context"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/713zhao/aireminder/internal/reminder"
	"github.com/713zhao/aireminder/pkg/logger"
)

// MongoRepo implements a MongoDB-backed repository for reminders. Documents
// carry an "id" string field so ids stay opaque stable strings independent
// of Mongo's _id.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	// ensure an index on "id" for fast lookups (id is expected unique)
	idxModel := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := col.Indexes().CreateOne(context.Background(), idxModel); err != nil {
		logger.Warnf("could not ensure unique index on id: %v", err)
	}
	return &MongoRepo{col: col}
}

// notDeleted excludes soft-deleted records; "deleted" may be absent on
// documents written before the field existed.
func notDeleted() bson.M {
	return bson.M{"deleted": bson.M{"$ne": true}}
}

func (m *MongoRepo) Insert(ctx context.Context, r *reminder.Reminder) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if _, err := m.col.InsertOne(ctx, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

func (m *MongoRepo) GetByID(ctx context.Context, id string) (*reminder.Reminder, error) {
	var r reminder.Reminder
	err := m.col.FindOne(ctx, bson.M{"id": id}).Decode(&r)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (m *MongoRepo) ListByOwner(ctx context.Context, ownerID, status string) ([]reminder.Reminder, error) {
	return m.list(ctx, ownerFilter(ownerID, status))
}

// ownerFilter builds the query for ListByOwner. Pending matches documents
// whose completion flag is false or absent; other producers write into the
// same collection and may omit the flag entirely.
func ownerFilter(ownerID, status string) bson.M {
	filter := notDeleted()
	filter["ownerId"] = ownerID
	switch status {
	case reminder.StatusPending:
		filter["isCompleted"] = bson.M{"$ne": true}
	case reminder.StatusCompleted:
		filter["isCompleted"] = true
	}
	return filter
}

func (m *MongoRepo) ListSharedWith(ctx context.Context, userID string) ([]reminder.Reminder, error) {
	filter := notDeleted()
	// equality against an array field is Mongo's membership predicate
	filter["sharedWith"] = userID
	return m.list(ctx, filter)
}

func (m *MongoRepo) Update(ctx context.Context, id string, set Fields) error {
	if len(set) == 0 {
		return nil
	}
	res, err := m.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M(set)})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (m *MongoRepo) list(ctx context.Context, filter bson.M) ([]reminder.Reminder, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cur, err := m.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []reminder.Reminder{}
	for cur.Next(ctx) {
		var r reminder.Reminder
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
