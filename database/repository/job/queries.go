// File: database/repository/job/queries.go
package jobRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"crewly/models"
)

func (r *mongoJobRepo) GetByDate(ctx context.Context, date string) ([]models.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"date":   date,
		"status": bson.M{"$ne": models.JobStatusCancelled},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs for date %s: %w", date, err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("error decoding jobs: %w", err)
	}
	return jobs, nil
}

func (r *mongoJobRepo) GetBookedIntervals(ctx context.Context, workerID, date string) ([]models.BookedInterval, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"workerId": workerID,
		"date":     date,
		"status":   bson.M{"$ne": models.JobStatusCancelled},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked intervals: %w", err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("error decoding booked intervals: %w", err)
	}

	booked := make([]models.BookedInterval, 0, len(jobs))
	for i := range jobs {
		booked = append(booked, models.BookedInterval{
			JobID:    jobs[i].ID,
			Title:    jobs[i].Title,
			Interval: jobs[i].Interval(),
		})
	}
	return booked, nil
}

func (r *mongoJobRepo) GetByWorkerBetween(ctx context.Context, workerID, from, to string) ([]models.Job, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"workerId": workerID,
		"date":     bson.M{"$gte": from, "$lte": to},
		"status":   bson.M{"$ne": models.JobStatusCancelled},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs between %s and %s: %w", from, to, err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("error decoding jobs: %w", err)
	}
	return jobs, nil
}
