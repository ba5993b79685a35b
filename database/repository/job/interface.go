// File: database/repository/job/interface.go
package jobRepo

import (
	"context"

	"crewly/database"
	"crewly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Update(ctx context.Context, job *models.Job) error
	Delete(ctx context.Context, id string) error

	// GetByDate returns every non-cancelled job scheduled for the date,
	// across all workers.
	GetByDate(ctx context.Context, date string) ([]models.Job, error)
	// GetBookedIntervals returns the authoritative booked intervals for one
	// worker and date, in start order.
	GetBookedIntervals(ctx context.Context, workerID, date string) ([]models.BookedInterval, error)
	// GetByWorkerBetween returns a worker's non-cancelled jobs for dates in
	// [from, to], inclusive, for period aggregates.
	GetByWorkerBetween(ctx context.Context, workerID, from, to string) ([]models.Job, error)

	EnsureIndexes() error
}

type mongoJobRepo struct {
	coll *mongo.Collection
}

// NewMongoJobRepo constructs a new MongoDB JobRepository.
func NewMongoJobRepo() JobRepository {
	db := database.MongoClient.Database("crewly")
	return &mongoJobRepo{
		coll: db.Collection("jobs"),
	}
}
