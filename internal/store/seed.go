package store

import (
	"time"

	"github.com/Gopher0727/StudyHub/internal/model"
)

// SeedSnapshot builds the demo dataset the dashboard starts with: one
// calculus group holding a session 24 hours out, three chats with
// cached previews, no messages and no tasks.
func SeedSnapshot(now time.Time) Snapshot {
	return Snapshot{
		Groups: []model.StudyGroup{
			{
				ID:          "group1",
				Name:        "Advanced Calculus Study Group",
				Description: "Group for studying calculus topics including derivatives, integrals, and series.",
				Subject:     model.SubjectMathematics,
				Members: []model.Member{
					{ID: "user1", Name: "John Doe", Role: model.RoleAdmin},
					{ID: "user2", Name: "Jane Smith", Role: model.RoleMember},
				},
				Sessions: []model.StudySession{
					{
						ID:        "session1",
						Title:     "Limits and Continuity",
						Date:      now.Add(24 * time.Hour),
						Duration:  120,
						Topic:     "Understanding limits and continuous functions",
						Attendees: []string{"user1", "user2"},
					},
				},
				CreatedAt: now,
			},
		},
		Chats: []model.Chat{
			{
				ID:          "chat1",
				Name:        "Study Group - Math",
				Avatar:      "/groups/math.png",
				LastMessage: "When is the next meeting?",
				Unread:      2,
			},
			{
				ID:          "chat2",
				Name:        "Physics Project Team",
				Avatar:      "/groups/physics.png",
				LastMessage: "I've uploaded the report",
				Unread:      0,
			},
			{
				ID:          "chat3",
				Name:        "Literature Club",
				Avatar:      "/groups/literature.png",
				LastMessage: "Great discussion today!",
				Unread:      1,
			},
		},
	}
}
