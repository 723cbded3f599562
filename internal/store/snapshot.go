package store

import "github.com/Gopher0727/StudyHub/internal/model"

// Snapshot is a complete, immutable view of every collection at one
// instant. Readers must never mutate a snapshot in place; writers build
// a new one from the collections they read (copy-on-write), so a
// shallow identity change is an exact "something changed" signal.
type Snapshot struct {
	Groups   []model.StudyGroup `json:"groups"`
	Chats    []model.Chat       `json:"chats"`
	Messages []model.Message    `json:"messages"`
	Tasks    []model.Task       `json:"tasks"`
}

// GroupByID resolves a group in the snapshot, nil when absent.
func (s Snapshot) GroupByID(id string) *model.StudyGroup {
	for i := range s.Groups {
		if s.Groups[i].ID == id {
			return &s.Groups[i]
		}
	}
	return nil
}

// ChatByID resolves a chat in the snapshot, nil when absent.
func (s Snapshot) ChatByID(id string) *model.Chat {
	for i := range s.Chats {
		if s.Chats[i].ID == id {
			return &s.Chats[i]
		}
	}
	return nil
}

// TaskByID resolves a task in the snapshot, nil when absent.
func (s Snapshot) TaskByID(id string) *model.Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}
