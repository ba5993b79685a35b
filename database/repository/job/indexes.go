// FILE: database/repository/job/indexes.go
package jobRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the jobs collection.
func (r *mongoJobRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on job ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for workerId and date (primary query pattern)
		{
			Keys:    bson.D{{Key: "workerId", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("worker_date_idx"),
		},
		// Full-day timeline query across all workers
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("date_start_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create job indexes: %w", err)
	}
	return nil
}
