package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gopher0727/StudyHub/internal/service"
	"github.com/Gopher0727/StudyHub/internal/store"
	logger "github.com/Gopher0727/StudyHub/middleware/log"
)

// ChatHandler serves chats and their messages.
type ChatHandler struct {
	store *store.Store
	clock Clock
	newID service.IDFunc
	log   *logger.Logger
}

// NewChatHandler creates a chat handler.
func NewChatHandler(st *store.Store, clock Clock, newID service.IDFunc, log *logger.Logger) *ChatHandler {
	return &ChatHandler{store: st, clock: clock, newID: newID, log: log}
}

// ListChats returns chats, optionally filtered by the q query with a
// case-insensitive name match.
func (h *ChatHandler) ListChats(c *gin.Context) {
	respondData(c, service.SearchChats(h.store.Snapshot(), c.Query("q")))
}

// GetMessages returns the messages of one chat in insertion order.
func (h *ChatHandler) GetMessages(c *gin.Context) {
	snap := h.store.Snapshot()
	chatID := c.Param("id")

	if snap.ChatByID(chatID) == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "chat not found",
		})
		return
	}

	respondData(c, service.ChatMessages(snap, chatID))
}

// SendMessage appends a message to the chat in the path. The sender
// defaults to the acting user when the request does not carry one.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req service.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("SendMessage: binding error", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}
	req.ChatID = c.Param("id")
	if req.Sender.ID == "" {
		req.Sender = currentSender
	}

	var res service.Result
	snap := h.store.Apply(func(cur store.Snapshot) store.Snapshot {
		next, r := service.SendMessage(cur, req, h.clock(), h.newID)
		res = r
		return next
	})
	if !res.Accepted() {
		h.log.Warn("message rejected",
			zap.String("chat_id", req.ChatID),
			zap.String("reason", res.Reason),
		)
		respondResult(c, res, nil)
		return
	}

	h.log.Info("message sent", zap.String("chat_id", req.ChatID))
	respondData(c, snap.Messages[len(snap.Messages)-1])
}
