package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gopher0727/StudyHub/internal/service"
	"github.com/Gopher0727/StudyHub/internal/store"
	logger "github.com/Gopher0727/StudyHub/middleware/log"
)

// TaskHandler serves the personal task list.
type TaskHandler struct {
	store *store.Store
	newID service.IDFunc
	log   *logger.Logger
}

// NewTaskHandler creates a task handler.
func NewTaskHandler(st *store.Store, newID service.IDFunc, log *logger.Logger) *TaskHandler {
	return &TaskHandler{store: st, newID: newID, log: log}
}

// ListTasks returns every task in insertion order.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	respondData(c, h.store.Snapshot().Tasks)
}

// CreateTask appends a pending task.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var req service.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("CreateTask: binding error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var res service.Result
	snap := h.store.Apply(func(cur store.Snapshot) store.Snapshot {
		next, r := service.CreateTask(cur, req, h.newID)
		res = r
		return next
	})
	if !res.Accepted() {
		h.log.Warn("task rejected", zap.String("reason", res.Reason))
		respondResult(c, res, nil)
		return
	}

	h.log.Info("task created", zap.String("title", req.Title))
	respondData(c, snap.Tasks[len(snap.Tasks)-1])
}

// ToggleTask flips a task between pending and completed.
func (h *TaskHandler) ToggleTask(c *gin.Context) {
	taskID := c.Param("id")

	var res service.Result
	snap := h.store.Apply(func(cur store.Snapshot) store.Snapshot {
		next, r := service.ToggleTask(cur, taskID)
		res = r
		return next
	})
	if !res.Accepted() {
		respondResult(c, res, nil)
		return
	}

	respondData(c, snap.TaskByID(taskID))
}

// DeleteTask removes a task by id.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")

	var res service.Result
	h.store.Apply(func(cur store.Snapshot) store.Snapshot {
		next, r := service.DeleteTask(cur, taskID)
		res = r
		return next
	})
	if !res.Accepted() {
		respondResult(c, res, nil)
		return
	}

	h.log.Info("task deleted", zap.String("task_id", taskID))
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
	})
}
