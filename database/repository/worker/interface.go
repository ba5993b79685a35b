// File: database/repository/worker/interface.go
package workerRepo

import (
	"context"

	"crewly/database"
	"crewly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type WorkerRepository interface {
	Create(ctx context.Context, worker *models.Worker) error
	GetByID(ctx context.Context, id string) (*models.Worker, error)
	GetAllActive(ctx context.Context) ([]models.Worker, error)
	Update(ctx context.Context, worker *models.Worker) error
	Delete(ctx context.Context, id string) error

	SetWorkingHours(ctx context.Context, id string, rules []models.WorkingHoursRule) error
	UpsertException(ctx context.Context, id string, exc models.AvailabilityException) error
	ClearException(ctx context.Context, id, date string) error

	EnsureIndexes() error
}

type mongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo constructs a new MongoDB WorkerRepository.
func NewMongoWorkerRepo() WorkerRepository {
	db := database.MongoClient.Database("crewly")
	return &mongoWorkerRepo{
		coll: db.Collection("workers"),
	}
}
