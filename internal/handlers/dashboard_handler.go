package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gopher0727/StudyHub/internal/service"
	"github.com/Gopher0727/StudyHub/internal/store"
	logger "github.com/Gopher0727/StudyHub/middleware/log"
)

// DashboardHandler serves the derived dashboard views.
type DashboardHandler struct {
	store *store.Store
	clock Clock
	log   *logger.Logger
}

// NewDashboardHandler creates a dashboard handler.
func NewDashboardHandler(st *store.Store, clock Clock, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{store: st, clock: clock, log: log}
}

// Overview returns the counters, the next-24-hours session window and
// the recent-activity feed, all computed from one snapshot so the
// numbers agree with each other.
func (h *DashboardHandler) Overview(c *gin.Context) {
	snap := h.store.Snapshot()
	now := h.clock()

	limit := service.DefaultActivityLimit
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	stats := service.ComputeStats(snap, now)
	upcoming := service.UpcomingSessions(snap, now)
	activities := service.RecentActivity(snap, now, limit)

	h.log.Debug("dashboard overview computed",
		zap.Int("upcoming", len(upcoming)),
		zap.Int("activities", len(activities)),
	)

	respondData(c, gin.H{
		"stats":             stats,
		"upcoming_sessions": upcoming,
		"recent_activities": activities,
	})
}
