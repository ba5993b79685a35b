// File: database/repository/recommendation/interface.go
package recommendationRepo

import (
	"context"

	"crewly/database"
	"crewly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RecommendationRepository reads the ranked worker lists the external scorer
// writes. Lists are pre-sorted and treated as opaque; this layer never
// reorders them.
type RecommendationRepository interface {
	GetByJobID(ctx context.Context, jobID string) (*models.RecommendationList, error)
	Put(ctx context.Context, list *models.RecommendationList) error
}

type mongoRecommendationRepo struct {
	coll *mongo.Collection
}

// NewMongoRecommendationRepo constructs a new MongoDB RecommendationRepository.
func NewMongoRecommendationRepo() RecommendationRepository {
	db := database.MongoClient.Database("crewly")
	return &mongoRecommendationRepo{
		coll: db.Collection("recommendations"),
	}
}
