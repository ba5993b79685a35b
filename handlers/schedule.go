package handlers

import (
	"errors"
	"net/http"

	"crewly/services/dispatch"
	"crewly/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the scheduling engine's read surface: the day
// timeline, availability, candidate validation, utilization, and
// recommendation gating.
type ScheduleHandler struct {
	Svc dispatch.Service
}

func NewScheduleHandler(svc dispatch.Service) *ScheduleHandler {
	return &ScheduleHandler{Svc: svc}
}

func (h *ScheduleHandler) TimelineHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "date query parameter is required")
		return
	}
	timeline, err := h.Svc.Timeline(c.Request.Context(), date)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}

func (h *ScheduleHandler) AvailabilityHandler(c *gin.Context) {
	workerID := c.Param("workerId")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "date query parameter is required")
		return
	}
	availability, err := h.Svc.Availability(c.Request.Context(), workerID, date)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, availability)
}

func (h *ScheduleHandler) ValidateHandler(c *gin.Context) {
	var input dispatch.CandidateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid candidate payload", err.Error())
		return
	}
	cand, err := dispatch.NormalizeCandidate(input)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid candidate times", err.Error())
		return
	}
	cand.ExcludeJobID = c.Query("excludeJobId")

	result, err := h.Svc.Validate(c.Request.Context(), cand)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UtilizationHandler serves either a whole-day summary (?date=) or one
// worker's range summary (?workerId=&from=&to=).
func (h *ScheduleHandler) UtilizationHandler(c *gin.Context) {
	if workerID := c.Query("workerId"); workerID != "" {
		from, to := c.Query("from"), c.Query("to")
		if from == "" || to == "" {
			utils.JSONError(c, http.StatusBadRequest, "missing range", "from and to query parameters are required")
			return
		}
		metric, err := h.Svc.RangeUtilization(c.Request.Context(), workerID, from, to)
		if err != nil {
			respondDispatchError(c, err)
			return
		}
		c.JSON(http.StatusOK, metric)
		return
	}

	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "date query parameter is required")
		return
	}
	metrics, err := h.Svc.DayUtilization(c.Request.Context(), date)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "workers": metrics})
}

func (h *ScheduleHandler) RecommendationsHandler(c *gin.Context) {
	jobID := c.Param("jobId")
	ranked, err := h.Svc.Recommendations(c.Request.Context(), jobID)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobId": jobID, "workers": ranked})
}

// respondDispatchError maps service errors to HTTP statuses.
func respondDispatchError(c *gin.Context, err error) {
	var de *dispatch.DispatchError
	if errors.As(err, &de) {
		switch de {
		case dispatch.ErrWorkerNotFound, dispatch.ErrJobNotFound, dispatch.ErrNoRecommendations:
			utils.JSONError(c, http.StatusNotFound, de.Message, "")
		default:
			utils.JSONError(c, http.StatusBadRequest, de.Message, "")
		}
		return
	}
	utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
}
