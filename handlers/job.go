package handlers

import (
	"errors"
	"net/http"

	jobRepo "crewly/database/repository/job"
	"crewly/models"
	"crewly/services/dispatch"
	"crewly/services/tasks"
	"crewly/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// JobHandler serves job CRUD. Creates and reschedules run through the
// conflict detector first; a commit is refused with the classified reason,
// never silently double-booked.
type JobHandler struct {
	Repo      jobRepo.JobRepository
	Dispatch  dispatch.Service
	Reminders *tasks.ReminderScheduler
}

func NewJobHandler(repo jobRepo.JobRepository, svc dispatch.Service, reminders *tasks.ReminderScheduler) *JobHandler {
	return &JobHandler{Repo: repo, Dispatch: svc, Reminders: reminders}
}

// JobInput is the dashboard's job payload; times arrive as "HH:MM" strings
// and are normalized at the boundary.
type JobInput struct {
	Title      string `json:"title" binding:"required"`
	WorkerID   string `json:"workerId" binding:"required"`
	ClientID   string `json:"clientId"`
	ClientName string `json:"clientName"`
	Date       string `json:"date" binding:"required"`
	Start      string `json:"start" binding:"required"`
	End        string `json:"end" binding:"required"`
	Address    string `json:"address"`
	Notes      string `json:"notes"`
}

func (h *JobHandler) CreateJobHandler(c *gin.Context) {
	var input JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid job payload", err.Error())
		return
	}

	cand, err := dispatch.NormalizeCandidate(dispatch.CandidateInput{
		WorkerID: input.WorkerID,
		Date:     input.Date,
		Start:    input.Start,
		End:      input.End,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid job times", err.Error())
		return
	}

	result, err := h.Dispatch.Validate(c.Request.Context(), cand)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	if !result.Schedulable {
		c.JSON(http.StatusConflict, gin.H{"schedulable": false, "reason": result.Reason})
		return
	}

	job := models.Job{
		Title:      input.Title,
		WorkerID:   input.WorkerID,
		ClientID:   input.ClientID,
		ClientName: input.ClientName,
		Date:       input.Date,
		Start:      cand.Interval.Start,
		End:        cand.Interval.End,
		Address:    input.Address,
		Notes:      input.Notes,
	}
	if err := h.Repo.Create(c.Request.Context(), &job); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create job", err.Error())
		return
	}

	if h.Reminders != nil {
		if err := h.Reminders.ScheduleJobReminder(&job); err != nil {
			utils.GetLogger().Warn("failed to schedule job reminder",
				zap.String("jobID", job.ID), zap.Error(err))
		}
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) GetJobHandler(c *gin.Context) {
	job, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "job not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch job", err.Error())
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) ListJobsByDateHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing date", "date query parameter is required")
		return
	}
	jobs, err := h.Repo.GetByDate(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch jobs", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "jobs": jobs})
}

func (h *JobHandler) UpdateJobHandler(c *gin.Context) {
	id := c.Param("id")
	job, err := h.Repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "job not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch job", err.Error())
		return
	}

	var input JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid job payload", err.Error())
		return
	}

	cand, err := dispatch.NormalizeCandidate(dispatch.CandidateInput{
		WorkerID: input.WorkerID,
		Date:     input.Date,
		Start:    input.Start,
		End:      input.End,
	})
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid job times", err.Error())
		return
	}
	cand.ExcludeJobID = job.ID

	result, err := h.Dispatch.Validate(c.Request.Context(), cand)
	if err != nil {
		respondDispatchError(c, err)
		return
	}
	if !result.Schedulable {
		c.JSON(http.StatusConflict, gin.H{"schedulable": false, "reason": result.Reason})
		return
	}

	job.Title = input.Title
	job.WorkerID = input.WorkerID
	job.ClientID = input.ClientID
	job.ClientName = input.ClientName
	job.Date = input.Date
	job.Start = cand.Interval.Start
	job.End = cand.Interval.End
	job.Address = input.Address
	job.Notes = input.Notes

	if err := h.Repo.Update(c.Request.Context(), job); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update job", err.Error())
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) DeleteJobHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "job not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete job", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
