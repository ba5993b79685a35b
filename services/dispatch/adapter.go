package dispatch

import (
	"fmt"

	"crewly/models"
	"crewly/utils"
)

// CandidateInput is the loosely shaped payload dashboards submit: start and
// end arrive as "HH:MM" wall-clock strings. It is normalized into the
// canonical CandidateBooking here, at the boundary, so the engine only ever
// sees canonical types.
type CandidateInput struct {
	WorkerID string `json:"workerId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
}

// NormalizeCandidate parses a CandidateInput into a CandidateBooking.
// Unparsable times and zero-length intervals are rejected here; an interval
// whose end precedes its start is passed through as an overnight candidate
// for the engine's overnight policy to classify.
func NormalizeCandidate(in CandidateInput) (models.CandidateBooking, error) {
	start, err := utils.ParseClock(in.Start)
	if err != nil {
		return models.CandidateBooking{}, err
	}
	end, err := utils.ParseClock(in.End)
	if err != nil {
		return models.CandidateBooking{}, err
	}
	if start == end {
		return models.CandidateBooking{}, fmt.Errorf("zero-duration booking %s-%s", in.Start, in.End)
	}
	return models.CandidateBooking{
		WorkerID: in.WorkerID,
		Date:     in.Date,
		Interval: models.Interval{Start: start, End: end},
	}, nil
}
