// Package service contains the mutation API and the aggregation engine.
// Mutations are pure: (snapshot, request) -> (snapshot, result). They
// never touch the collections of the snapshot they read; a declined
// request returns the input snapshot unchanged together with the
// rejection reason.
package service

import (
	"slices"
	"strings"
	"time"

	"github.com/Gopher0727/StudyHub/internal/model"
	"github.com/Gopher0727/StudyHub/internal/store"
)

// IDFunc generates a fresh opaque unique id. Injected so tests can pin
// ids down.
type IDFunc func() string

// CreateGroupRequest creates a study group.
type CreateGroupRequest struct {
	Name        string        `json:"name" binding:"required"`
	Subject     model.Subject `json:"subject" binding:"required"`
	Description string        `json:"description"`
	Creator     model.Member  `json:"-"`
}

// CreateGroup appends a new group whose member list holds exactly one
// admin member representing the acting user.
func CreateGroup(snap store.Snapshot, req CreateGroupRequest, now time.Time, newID IDFunc) (store.Snapshot, Result) {
	if strings.TrimSpace(req.Name) == "" {
		return snap, rejectValidation("group name is required")
	}
	if strings.TrimSpace(string(req.Subject)) == "" {
		return snap, rejectValidation("subject is required")
	}
	if !model.ValidSubject(req.Subject) {
		return snap, rejectValidation("unknown subject: " + string(req.Subject))
	}

	creator := req.Creator
	if creator.ID == "" {
		creator.ID = newID()
	}
	if creator.Name == "" {
		creator.Name = "You"
	}
	creator.Role = model.RoleAdmin

	group := model.StudyGroup{
		ID:          newID(),
		Name:        req.Name,
		Description: req.Description,
		Subject:     req.Subject,
		Members:     []model.Member{creator},
		Sessions:    []model.StudySession{},
		CreatedAt:   now,
	}

	snap.Groups = append(slices.Clone(snap.Groups), group)
	return snap, accepted()
}

// ScheduleSessionRequest schedules a session inside an existing group.
type ScheduleSessionRequest struct {
	GroupID  string    `json:"group_id"`
	Title    string    `json:"title" binding:"required"`
	Topic    string    `json:"topic" binding:"required"`
	Date     time.Time `json:"date" binding:"required"`
	Duration int       `json:"duration"`
}

// ScheduleSession appends a session to the owning group. The attendee
// set starts as the group's first member, the creator convention.
func ScheduleSession(snap store.Snapshot, req ScheduleSessionRequest, newID IDFunc) (store.Snapshot, Result) {
	if strings.TrimSpace(req.Title) == "" {
		return snap, rejectValidation("session title is required")
	}
	if strings.TrimSpace(req.Topic) == "" {
		return snap, rejectValidation("session topic is required")
	}

	idx := -1
	for i := range snap.Groups {
		if snap.Groups[i].ID == req.GroupID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return snap, rejectNotFound("group not found: " + req.GroupID)
	}

	duration := req.Duration
	if duration <= 0 {
		duration = 60
	}

	session := model.StudySession{
		ID:       newID(),
		Title:    req.Title,
		Date:     req.Date,
		Duration: duration,
		Topic:    req.Topic,
	}
	if members := snap.Groups[idx].Members; len(members) > 0 {
		session.Attendees = []string{members[0].ID}
	}

	groups := slices.Clone(snap.Groups)
	groups[idx].Sessions = append(slices.Clone(groups[idx].Sessions), session)
	snap.Groups = groups
	return snap, accepted()
}

// SendMessageRequest appends a message to a chat.
type SendMessageRequest struct {
	ChatID  string       `json:"chat_id"`
	Content string       `json:"content" binding:"required"`
	Sender  model.Sender `json:"sender"`
}

// SendMessage appends to the message sequence and refreshes the owning
// chat's cached last-message preview. Messages are scoped to their
// chat: an unknown chat id is rejected rather than producing an
// orphaned message.
func SendMessage(snap store.Snapshot, req SendMessageRequest, now time.Time, newID IDFunc) (store.Snapshot, Result) {
	if strings.TrimSpace(req.ChatID) == "" {
		return snap, rejectValidation("chat id is required")
	}
	if strings.TrimSpace(req.Content) == "" {
		return snap, rejectValidation("message content is required")
	}

	idx := -1
	for i := range snap.Chats {
		if snap.Chats[i].ID == req.ChatID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return snap, rejectNotFound("chat not found: " + req.ChatID)
	}

	message := model.Message{
		ID:        newID(),
		ChatID:    req.ChatID,
		Content:   req.Content,
		Sender:    req.Sender,
		Timestamp: now,
	}

	chats := slices.Clone(snap.Chats)
	chats[idx].LastMessage = req.Content
	snap.Chats = chats
	snap.Messages = append(slices.Clone(snap.Messages), message)
	return snap, accepted()
}

// CreateTaskRequest creates a personal task.
type CreateTaskRequest struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	DueDate     time.Time      `json:"due_date" binding:"required"`
	Priority    model.Priority `json:"priority"`
	Category    string         `json:"category"`
}

// CreateTask appends a pending task.
func CreateTask(snap store.Snapshot, req CreateTaskRequest, newID IDFunc) (store.Snapshot, Result) {
	if strings.TrimSpace(req.Title) == "" {
		return snap, rejectValidation("task title is required")
	}
	if req.DueDate.IsZero() {
		return snap, rejectValidation("due date is required")
	}

	priority := req.Priority
	if !model.ValidPriority(priority) {
		priority = model.PriorityMedium
	}
	category := req.Category
	if category == "" {
		category = "study"
	}

	task := model.Task{
		ID:          newID(),
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Priority:    priority,
		Status:      model.TaskPending,
		Category:    category,
	}

	snap.Tasks = append(slices.Clone(snap.Tasks), task)
	return snap, accepted()
}

// ToggleTask flips a task between pending and completed. Toggling
// twice restores the original status.
func ToggleTask(snap store.Snapshot, taskID string) (store.Snapshot, Result) {
	idx := -1
	for i := range snap.Tasks {
		if snap.Tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return snap, rejectNotFound("task not found: " + taskID)
	}

	tasks := slices.Clone(snap.Tasks)
	if tasks[idx].Status == model.TaskCompleted {
		tasks[idx].Status = model.TaskPending
	} else {
		tasks[idx].Status = model.TaskCompleted
	}
	snap.Tasks = tasks
	return snap, accepted()
}

// DeleteTask removes a task by id. Deleting an absent id declines and
// leaves the snapshot as it was.
func DeleteTask(snap store.Snapshot, taskID string) (store.Snapshot, Result) {
	idx := -1
	for i := range snap.Tasks {
		if snap.Tasks[i].ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return snap, rejectNotFound("task not found: " + taskID)
	}

	tasks := make([]model.Task, 0, len(snap.Tasks)-1)
	tasks = append(tasks, snap.Tasks[:idx]...)
	tasks = append(tasks, snap.Tasks[idx+1:]...)
	snap.Tasks = tasks
	return snap, accepted()
}
