package handlers

import (
	"errors"
	"net/http"

	workerRepo "crewly/database/repository/worker"
	"crewly/models"
	"crewly/services/dispatch"
	"crewly/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// WorkerHandler serves worker CRUD plus working-hours and exception writes.
// Schedule-affecting writes invalidate the worker's cached availability.
type WorkerHandler struct {
	Repo     workerRepo.WorkerRepository
	Dispatch dispatch.Service
}

func NewWorkerHandler(repo workerRepo.WorkerRepository, svc dispatch.Service) *WorkerHandler {
	return &WorkerHandler{Repo: repo, Dispatch: svc}
}

func (h *WorkerHandler) RegisterWorkerHandler(c *gin.Context) {
	var worker models.Worker
	if err := c.ShouldBindJSON(&worker); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid worker payload", err.Error())
		return
	}
	if worker.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid worker payload", "name is required")
		return
	}
	if err := h.Repo.Create(c.Request.Context(), &worker); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create worker", err.Error())
		return
	}
	c.JSON(http.StatusCreated, worker)
}

func (h *WorkerHandler) GetWorkerHandler(c *gin.Context) {
	worker, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "worker not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch worker", err.Error())
		return
	}
	c.JSON(http.StatusOK, worker)
}

func (h *WorkerHandler) ListWorkersHandler(c *gin.Context) {
	workers, err := h.Repo.GetAllActive(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch workers", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"workers": workers})
}

func (h *WorkerHandler) UpdateWorkerHandler(c *gin.Context) {
	var worker models.Worker
	if err := c.ShouldBindJSON(&worker); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid worker payload", err.Error())
		return
	}
	worker.ID = c.Param("id")
	if err := h.Repo.Update(c.Request.Context(), &worker); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "worker not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update worker", err.Error())
		return
	}
	h.Dispatch.InvalidateAvailability(c.Request.Context(), worker.ID)
	c.JSON(http.StatusOK, worker)
}

func (h *WorkerHandler) DeleteWorkerHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "worker not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete worker", err.Error())
		return
	}
	h.Dispatch.InvalidateAvailability(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// SetWorkingHoursRequest sets a worker's full recurring schedule in one call.
type SetWorkingHoursRequest struct {
	Rules []models.WorkingHoursRule `json:"rules" binding:"required"`
}

func (h *WorkerHandler) SetWorkingHoursHandler(c *gin.Context) {
	id := c.Param("id")
	var req SetWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid working hours payload", err.Error())
		return
	}
	for _, rule := range req.Rules {
		if rule.Interval.Overnight() {
			utils.JSONError(c, http.StatusBadRequest, "invalid working hours payload",
				"working hours must not cross midnight")
			return
		}
	}
	if err := h.Repo.SetWorkingHours(c.Request.Context(), id, req.Rules); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "worker not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to set working hours", err.Error())
		return
	}
	h.Dispatch.InvalidateAvailability(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"workerId": id, "rules": req.Rules})
}

func (h *WorkerHandler) SetExceptionHandler(c *gin.Context) {
	id := c.Param("id")
	var exc models.AvailabilityException
	if err := c.ShouldBindJSON(&exc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid exception payload", err.Error())
		return
	}
	if exc.Date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid exception payload", "date is required")
		return
	}
	if !exc.AllDayUnavailable && exc.Override == nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid exception payload",
			"either allDayUnavailable or an override interval is required")
		return
	}
	if err := h.Repo.UpsertException(c.Request.Context(), id, exc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "worker not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to set exception", err.Error())
		return
	}
	h.Dispatch.InvalidateAvailability(c.Request.Context(), id)
	c.JSON(http.StatusOK, exc)
}

func (h *WorkerHandler) ClearExceptionHandler(c *gin.Context) {
	id := c.Param("id")
	date := c.Param("date")
	if err := h.Repo.ClearException(c.Request.Context(), id, date); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			utils.JSONError(c, http.StatusNotFound, "worker not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to clear exception", err.Error())
		return
	}
	h.Dispatch.InvalidateAvailability(c.Request.Context(), id)
	c.JSON(http.StatusOK, gin.H{"workerId": id, "date": date})
}
