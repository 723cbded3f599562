package service

import (
	"slices"
	"strings"
	"time"

	"github.com/Gopher0727/StudyHub/internal/model"
	"github.com/Gopher0727/StudyHub/internal/store"
)

// The aggregation engine derives read-only views from a snapshot. It
// is stateless and deterministic: the wall-clock time is always an
// explicit parameter, never read from a global clock, and a malformed
// reference (an attendee or chat id that does not resolve) is
// tolerated by not resolving it, never by failing.

// ActivityTimeLayout renders timestamps the way the dashboard shows
// them, e.g. "Mar 7, 2:30 PM".
const ActivityTimeLayout = "Jan 2, 3:04 PM"

// DefaultActivityLimit caps the dashboard's recent-activity feed.
const DefaultActivityLimit = 5

// Stats are the global counters shown on the dashboard cards.
type Stats struct {
	TotalGroups   int `json:"total_groups"`
	TotalMembers  int `json:"total_members"`
	TotalSessions int `json:"total_sessions"`
	TotalChats    int `json:"total_chats"`
	TotalMessages int `json:"total_messages"`
	// UpcomingCount counts sessions still ahead of now, on any horizon.
	UpcomingCount int `json:"upcoming_count"`
}

// ComputeStats tallies the counters over one snapshot.
func ComputeStats(snap store.Snapshot, now time.Time) Stats {
	stats := Stats{
		TotalGroups:   len(snap.Groups),
		TotalChats:    len(snap.Chats),
		TotalMessages: len(snap.Messages),
	}
	for i := range snap.Groups {
		stats.TotalMembers += len(snap.Groups[i].Members)
		stats.TotalSessions += len(snap.Groups[i].Sessions)
		for _, session := range snap.Groups[i].Sessions {
			if session.Date.After(now) {
				stats.UpcomingCount++
			}
		}
	}
	return stats
}

// SessionView is a session cross-referenced with its owning group.
type SessionView struct {
	model.StudySession
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
}

// UpcomingSessions selects every session, across all groups, inside
// the half-open window (now, now+24h], earliest first. Ties keep
// insertion order. An empty window yields an empty slice, not an
// error.
func UpcomingSessions(snap store.Snapshot, now time.Time) []SessionView {
	tomorrow := now.Add(24 * time.Hour)

	upcoming := []SessionView{}
	for i := range snap.Groups {
		group := &snap.Groups[i]
		for _, session := range group.Sessions {
			if session.Date.After(now) && !session.Date.After(tomorrow) {
				upcoming = append(upcoming, SessionView{
					StudySession: session,
					GroupID:      group.ID,
					GroupName:    group.Name,
				})
			}
		}
	}

	slices.SortStableFunc(upcoming, func(a, b SessionView) int {
		return a.Date.Compare(b.Date)
	})
	return upcoming
}

// Activity kinds in the recent-activity feed.
const (
	ActivitySession = "session"
	ActivityMessage = "message"
)

// Activity is one entry of the recent-activity feed.
type Activity struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Time      string    `json:"time"`
	Timestamp time.Time `json:"timestamp"`
	// Group is set for session activities, From for message activities.
	Group string `json:"group,omitempty"`
	From  string `json:"from,omitempty"`
}

// RecentActivity merges past sessions and messages into one feed,
// most recent first, truncated to limit (DefaultActivityLimit when
// limit is not positive). Entries with equal timestamps keep their
// merge order: sessions in group order first, then messages in
// insertion order.
func RecentActivity(snap store.Snapshot, now time.Time, limit int) []Activity {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	activities := []Activity{}
	for i := range snap.Groups {
		group := &snap.Groups[i]
		for _, session := range group.Sessions {
			if session.Date.After(now) {
				continue
			}
			activities = append(activities, Activity{
				ID:        session.ID,
				Type:      ActivitySession,
				Title:     session.Title,
				Time:      session.Date.Format(ActivityTimeLayout),
				Timestamp: session.Date,
				Group:     group.Name,
			})
		}
	}
	for _, message := range snap.Messages {
		chatName := "Study Group"
		if chat := snap.ChatByID(message.ChatID); chat != nil {
			chatName = chat.Name
		}
		activities = append(activities, Activity{
			ID:        message.ID,
			Type:      ActivityMessage,
			Title:     "Message in " + chatName,
			Time:      message.Timestamp.Format(ActivityTimeLayout),
			Timestamp: message.Timestamp,
			From:      message.Sender.Name,
		})
	}

	slices.SortStableFunc(activities, func(a, b Activity) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(activities) > limit {
		activities = activities[:limit]
	}
	return activities
}

// SearchChats returns the chats whose name contains query, matched
// case-insensitively, in original order. An empty query returns every
// chat.
func SearchChats(snap store.Snapshot, query string) []model.Chat {
	if query == "" {
		return slices.Clone(snap.Chats)
	}

	needle := strings.ToLower(query)
	matched := []model.Chat{}
	for _, chat := range snap.Chats {
		if strings.Contains(strings.ToLower(chat.Name), needle) {
			matched = append(matched, chat)
		}
	}
	return matched
}

// ChatMessages returns the messages of one chat in insertion order.
// The unread badge stays whatever the chat entity carries; it is not
// derived from the message flow.
func ChatMessages(snap store.Snapshot, chatID string) []model.Message {
	messages := []model.Message{}
	for _, message := range snap.Messages {
		if message.ChatID == chatID {
			messages = append(messages, message)
		}
	}
	return messages
}
