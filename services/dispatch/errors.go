package dispatch

import "fmt"

// DispatchError carries a stable code alongside the message so handlers can
// map failures to HTTP statuses without string matching.
type DispatchError struct {
	Code    string
	Message string
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	ErrWorkerNotFound    = &DispatchError{Code: "workerNotFound", Message: "worker not found"}
	ErrJobNotFound       = &DispatchError{Code: "jobNotFound", Message: "job not found"}
	ErrNoRecommendations = &DispatchError{Code: "noRecommendations", Message: "no recommendation list for job"}
)

// ErrInvalidDate reports a date string that is not in 2006-01-02 form.
func ErrInvalidDate(date string) error {
	return &DispatchError{Code: "invalidDate", Message: fmt.Sprintf("invalid date %q", date)}
}
