package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gopher0727/StudyHub/internal/service"
	"github.com/Gopher0727/StudyHub/internal/store"
	logger "github.com/Gopher0727/StudyHub/middleware/log"
)

// GroupHandler serves study groups and their sessions.
type GroupHandler struct {
	store *store.Store
	clock Clock
	newID service.IDFunc
	log   *logger.Logger
}

// NewGroupHandler creates a group handler.
func NewGroupHandler(st *store.Store, clock Clock, newID service.IDFunc, log *logger.Logger) *GroupHandler {
	return &GroupHandler{store: st, clock: clock, newID: newID, log: log}
}

// ListGroups returns every group in insertion order.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	respondData(c, h.store.Snapshot().Groups)
}

// GetGroup returns one group by id.
func (h *GroupHandler) GetGroup(c *gin.Context) {
	group := h.store.Snapshot().GroupByID(c.Param("id"))
	if group == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "group not found",
		})
		return
	}
	respondData(c, group)
}

// CreateGroup creates a group with the acting user as its sole admin.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("CreateGroup: binding error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	req.Creator = currentUser

	var res service.Result
	snap := h.store.Apply(func(cur store.Snapshot) store.Snapshot {
		next, r := service.CreateGroup(cur, req, h.clock(), h.newID)
		res = r
		return next
	})
	if !res.Accepted() {
		h.log.Warn("group rejected", zap.String("reason", res.Reason))
		respondResult(c, res, nil)
		return
	}

	h.log.Info("group created", zap.String("name", req.Name))
	respondData(c, snap.Groups[len(snap.Groups)-1])
}

// ScheduleSession appends a session to the group in the path.
func (h *GroupHandler) ScheduleSession(c *gin.Context) {
	var req service.ScheduleSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("ScheduleSession: binding error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	req.GroupID = c.Param("id")

	var res service.Result
	snap := h.store.Apply(func(cur store.Snapshot) store.Snapshot {
		next, r := service.ScheduleSession(cur, req, h.newID)
		res = r
		return next
	})
	if !res.Accepted() {
		h.log.Warn("session rejected",
			zap.String("group_id", req.GroupID),
			zap.String("reason", res.Reason),
		)
		respondResult(c, res, nil)
		return
	}

	group := snap.GroupByID(req.GroupID)
	h.log.Info("session scheduled",
		zap.String("group_id", req.GroupID),
		zap.String("title", req.Title),
	)
	respondData(c, group.Sessions[len(group.Sessions)-1])
}
