// Package handlers exposes the read and write contracts over HTTP.
// Each user action maps to exactly one mutation; the mutation's
// returned snapshot replaces the stored one wholesale.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gopher0727/StudyHub/internal/model"
	"github.com/Gopher0727/StudyHub/internal/service"
)

// currentUser stands in for the acting local user. There is no
// authentication; the dataset has exactly one logical writer.
var currentUser = model.Member{
	ID:     "user1",
	Name:   "You",
	Avatar: "/avatars/user1.png",
}

// currentSender is the message-sender snapshot of the acting user.
var currentSender = model.Sender{
	ID:     currentUser.ID,
	Name:   currentUser.Name,
	Avatar: currentUser.Avatar,
}

// Clock supplies the wall-clock time handlers pass into mutations and
// aggregations. Injected so tests can pin time down.
type Clock func() time.Time

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    data,
	})
}

// respondResult maps a mutation result onto an HTTP status: accepted
// mutations return the payload, declined ones surface the reason.
func respondResult(c *gin.Context, res service.Result, data any) {
	switch res.Outcome {
	case service.OutcomeAccepted:
		respondData(c, data)
	case service.OutcomeRejectedNotFound:
		c.JSON(http.StatusNotFound, gin.H{
			"error": res.Reason,
		})
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": res.Reason,
		})
	}
}
