package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gopher0727/StudyHub/internal/model"
	"github.com/Gopher0727/StudyHub/internal/store"
)

// groupWithSessions builds a snapshot with one group holding the given
// sessions, in order.
func groupWithSessions(sessions ...model.StudySession) store.Snapshot {
	return store.Snapshot{
		Groups: []model.StudyGroup{
			{
				ID:       "g1",
				Name:     "Calc",
				Subject:  model.SubjectMathematics,
				Members:  []model.Member{{ID: "u1", Name: "You", Role: model.RoleAdmin}},
				Sessions: sessions,
			},
		},
	}
}

func TestComputeStats(t *testing.T) {
	now := testNow()
	snap := store.SeedSnapshot(now)

	stats := ComputeStats(snap, now)

	assert.Equal(t, 1, stats.TotalGroups)
	assert.Equal(t, 2, stats.TotalMembers)
	assert.Equal(t, 1, stats.TotalSessions)
	assert.Equal(t, 3, stats.TotalChats)
	assert.Equal(t, 0, stats.TotalMessages)
	assert.Equal(t, 1, stats.UpcomingCount)
}

func TestUpcomingSessions(t *testing.T) {
	now := testNow()

	t.Run("window is (now, now+24h]", func(t *testing.T) {
		snap := groupWithSessions(
			model.StudySession{ID: "past", Title: "past", Date: now.Add(-time.Hour)},
			model.StudySession{ID: "at-now", Title: "at now", Date: now},
			model.StudySession{ID: "in-2h", Title: "soon", Date: now.Add(2 * time.Hour)},
			model.StudySession{ID: "at-24h", Title: "edge", Date: now.Add(24 * time.Hour)},
			model.StudySession{ID: "in-25h", Title: "late", Date: now.Add(25 * time.Hour)},
		)

		upcoming := UpcomingSessions(snap, now)

		require.Len(t, upcoming, 2)
		assert.Equal(t, "in-2h", upcoming[0].ID)
		assert.Equal(t, "at-24h", upcoming[1].ID)
		assert.Equal(t, "Calc", upcoming[0].GroupName)
	})

	t.Run("sorted ascending, insertion order on ties", func(t *testing.T) {
		tie := now.Add(3 * time.Hour)
		snap := groupWithSessions(
			model.StudySession{ID: "b", Date: now.Add(5 * time.Hour)},
			model.StudySession{ID: "tie1", Date: tie},
			model.StudySession{ID: "tie2", Date: tie},
			model.StudySession{ID: "a", Date: now.Add(time.Hour)},
		)

		upcoming := UpcomingSessions(snap, now)

		require.Len(t, upcoming, 4)
		assert.Equal(t, "a", upcoming[0].ID)
		assert.Equal(t, "tie1", upcoming[1].ID)
		assert.Equal(t, "tie2", upcoming[2].ID)
		assert.Equal(t, "b", upcoming[3].ID)
	})

	t.Run("empty window yields empty slice", func(t *testing.T) {
		snap := groupWithSessions(
			model.StudySession{ID: "past", Date: now.Add(-time.Hour)},
		)

		upcoming := UpcomingSessions(snap, now)
		assert.NotNil(t, upcoming)
		assert.Empty(t, upcoming)
	})

	t.Run("scheduled session enters then leaves the window", func(t *testing.T) {
		snap := store.SeedSnapshot(now)
		snap, res := CreateGroup(snap, CreateGroupRequest{
			Name:    "Calc",
			Subject: model.SubjectMathematics,
			Creator: model.Member{ID: "user1", Name: "You"},
		}, now, seqIDs("g"))
		require.True(t, res.Accepted())
		groupID := snap.Groups[len(snap.Groups)-1].ID

		snap, res = ScheduleSession(snap, ScheduleSessionRequest{
			GroupID:  groupID,
			Title:    "Limits",
			Topic:    "intro",
			Date:     now.Add(2 * time.Hour),
			Duration: 60,
		}, seqIDs("s"))
		require.True(t, res.Accepted())

		found := func(at time.Time) bool {
			for _, s := range UpcomingSessions(snap, at) {
				if s.Title == "Limits" {
					return true
				}
			}
			return false
		}

		assert.True(t, found(now))
		assert.False(t, found(now.Add(3*time.Hour)))
	})
}

func TestRecentActivity(t *testing.T) {
	now := testNow()
	sender := model.Sender{ID: "u1", Name: "You"}

	t.Run("merges past sessions and messages, most recent first", func(t *testing.T) {
		snap := groupWithSessions(
			model.StudySession{ID: "s1", Title: "Review", Date: now.Add(-2 * time.Hour)},
			model.StudySession{ID: "s2", Title: "Future", Date: now.Add(time.Hour)},
		)
		snap.Chats = []model.Chat{{ID: "c1", Name: "Math Chat"}}
		snap.Messages = []model.Message{
			{ID: "m1", ChatID: "c1", Content: "hi", Sender: sender, Timestamp: now.Add(-time.Hour)},
			{ID: "m2", ChatID: "c1", Content: "yo", Sender: sender, Timestamp: now.Add(-10 * time.Minute)},
		}

		feed := RecentActivity(snap, now, 5)

		require.Len(t, feed, 3)
		assert.Equal(t, "m2", feed[0].ID)
		assert.Equal(t, "m1", feed[1].ID)
		assert.Equal(t, "s1", feed[2].ID)
		assert.Equal(t, ActivityMessage, feed[0].Type)
		assert.Equal(t, "Message in Math Chat", feed[0].Title)
		assert.Equal(t, "You", feed[0].From)
		assert.Equal(t, ActivitySession, feed[2].Type)
		assert.Equal(t, "Calc", feed[2].Group)
	})

	t.Run("never exceeds limit and stays non-increasing", func(t *testing.T) {
		snap := store.Snapshot{Chats: []model.Chat{{ID: "c1", Name: "Chat"}}}
		for i := 0; i < 10; i++ {
			snap.Messages = append(snap.Messages, model.Message{
				ID:        string(rune('a' + i)),
				ChatID:    "c1",
				Content:   "msg",
				Sender:    sender,
				Timestamp: now.Add(-time.Duration(i) * time.Minute),
			})
		}

		feed := RecentActivity(snap, now, 5)

		require.Len(t, feed, 5)
		for i := 1; i < len(feed); i++ {
			assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp))
		}
	})

	t.Run("equal timestamps keep merge order", func(t *testing.T) {
		snap := groupWithSessions(
			model.StudySession{ID: "s1", Title: "Review", Date: now},
		)
		snap.Chats = []model.Chat{{ID: "c1", Name: "Chat"}}
		snap.Messages = []model.Message{
			{ID: "m1", ChatID: "c1", Content: "hi", Sender: sender, Timestamp: now},
		}

		feed := RecentActivity(snap, now, 5)

		require.Len(t, feed, 2)
		assert.Equal(t, "s1", feed[0].ID)
		assert.Equal(t, "m1", feed[1].ID)
	})

	t.Run("unresolved chat id falls back to the generic title", func(t *testing.T) {
		snap := store.Snapshot{
			Messages: []model.Message{
				{ID: "m1", ChatID: "ghost", Content: "hi", Sender: sender, Timestamp: now},
			},
		}

		feed := RecentActivity(snap, now, 5)

		require.Len(t, feed, 1)
		assert.Equal(t, "Message in Study Group", feed[0].Title)
	})

	t.Run("formats times the dashboard way", func(t *testing.T) {
		at := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
		snap := groupWithSessions(
			model.StudySession{ID: "s1", Title: "Review", Date: at},
		)

		feed := RecentActivity(snap, at, 5)

		require.Len(t, feed, 1)
		assert.Equal(t, "Mar 7, 2:30 PM", feed[0].Time)
	})
}

func TestSearchChats(t *testing.T) {
	now := testNow()
	snap := store.SeedSnapshot(now)

	t.Run("empty query returns all chats in original order", func(t *testing.T) {
		chats := SearchChats(snap, "")
		require.Len(t, chats, 3)
		assert.Equal(t, "chat1", chats[0].ID)
		assert.Equal(t, "chat2", chats[1].ID)
		assert.Equal(t, "chat3", chats[2].ID)
	})

	t.Run("matches case-insensitively on substring", func(t *testing.T) {
		chats := SearchChats(snap, "physics")
		require.Len(t, chats, 1)
		assert.Equal(t, "chat2", chats[0].ID)
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		chats := SearchChats(snap, "astronomy")
		assert.Empty(t, chats)
	})
}

func TestChatMessages(t *testing.T) {
	now := testNow()
	sender := model.Sender{ID: "u1", Name: "You"}
	snap := store.SeedSnapshot(now)

	var res Result
	snap, res = SendMessage(snap, SendMessageRequest{ChatID: "chat1", Content: "one", Sender: sender}, now, seqIDs("m"))
	require.True(t, res.Accepted())
	snap, res = SendMessage(snap, SendMessageRequest{ChatID: "chat2", Content: "two", Sender: sender}, now, seqIDs("n"))
	require.True(t, res.Accepted())
	snap, res = SendMessage(snap, SendMessageRequest{ChatID: "chat1", Content: "three", Sender: sender}, now, seqIDs("o"))
	require.True(t, res.Accepted())

	messages := ChatMessages(snap, "chat1")
	require.Len(t, messages, 2)
	assert.Equal(t, "one", messages[0].Content)
	assert.Equal(t, "three", messages[1].Content)

	assert.Empty(t, ChatMessages(snap, "chat3"))
}
