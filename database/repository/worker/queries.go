// File: database/repository/worker/queries.go
package workerRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"crewly/models"
)

func (r *mongoWorkerRepo) SetWorkingHours(ctx context.Context, id string, rules []models.WorkingHoursRule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"workingHours": rules,
		"updatedAt":    time.Now(),
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set working hours: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// UpsertException replaces any existing exception for the same date, then
// appends the new one. Two steps, but on a single document.
func (r *mongoWorkerRepo) UpsertException(ctx context.Context, id string, exc models.AvailabilityException) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pull := bson.M{"$pull": bson.M{"exceptions": bson.M{"date": exc.Date}}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, pull); err != nil {
		return fmt.Errorf("failed to clear prior exception: %w", err)
	}

	push := bson.M{
		"$push": bson.M{"exceptions": exc},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, push)
	if err != nil {
		return fmt.Errorf("failed to upsert exception: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoWorkerRepo) ClearException(ctx context.Context, id, date string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"exceptions": bson.M{"date": date}},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to clear exception: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
