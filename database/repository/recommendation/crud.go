// File: database/repository/recommendation/crud.go
package recommendationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"crewly/models"
)

func (r *mongoRecommendationRepo) GetByJobID(ctx context.Context, jobID string) (*models.RecommendationList, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var list models.RecommendationList
	if err := r.coll.FindOne(ctx, bson.M{"jobId": jobID}).Decode(&list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *mongoRecommendationRepo) Put(ctx context.Context, list *models.RecommendationList) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if list.GeneratedAt.IsZero() {
		list.GeneratedAt = time.Now()
	}
	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"jobId": list.JobID}, list, opts); err != nil {
		return fmt.Errorf("failed to store recommendation list: %w", err)
	}
	return nil
}
