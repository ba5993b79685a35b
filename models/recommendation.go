package models

import "time"

// RankedWorker is one entry of an externally scored recommendation list.
// The score and ordering come from the server-side recommender (skill match,
// client history, workload balance, rating) and are treated as opaque here;
// Schedulable and Reason are overlaid by the dispatch service after running
// the conflict detector for the job's interval.
type RankedWorker struct {
	WorkerID    string         `bson:"workerId" json:"workerId"`
	Name        string         `bson:"name" json:"name"`
	Score       float64        `bson:"score" json:"score"`
	Rank        int            `bson:"rank" json:"rank"`
	Schedulable bool           `bson:"-" json:"schedulable"`
	Reason      ConflictReason `bson:"-" json:"reason"`
}

// RecommendationList is the stored, pre-sorted recommendation output for one
// job, written by the external scorer.
type RecommendationList struct {
	JobID       string         `bson:"jobId" json:"jobId"`
	Workers     []RankedWorker `bson:"workers" json:"workers"`
	GeneratedAt time.Time      `bson:"generatedAt" json:"generatedAt"`
}
