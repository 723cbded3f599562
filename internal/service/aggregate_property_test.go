package service

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/Gopher0727/StudyHub/internal/model"
	"github.com/Gopher0727/StudyHub/internal/store"
)

// drawSessionSnapshot generates a snapshot with one group holding
// sessions scattered around the base time.
func drawSessionSnapshot(rt *rapid.T, base time.Time) store.Snapshot {
	numSessions := rapid.IntRange(0, 30).Draw(rt, "numSessions")
	sessions := make([]model.StudySession, numSessions)
	for i := 0; i < numSessions; i++ {
		offset := rapid.IntRange(-48*60, 48*60).Draw(rt, fmt.Sprintf("offsetMin_%d", i))
		sessions[i] = model.StudySession{
			ID:    fmt.Sprintf("session_%d", i),
			Title: fmt.Sprintf("Session %d", i),
			Date:  base.Add(time.Duration(offset) * time.Minute),
		}
	}
	return groupWithSessions(sessions...)
}

// Property: the upcoming-session window is monotonic in now — any
// session present at both instants keeps its relative order.
func TestProperty_UpcomingWindowMonotonic(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property test in short mode")
	}

	base := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		snap := drawSessionSnapshot(rt, base)

		delta1 := rapid.IntRange(-24*60, 24*60).Draw(rt, "delta1Min")
		advance := rapid.IntRange(1, 24*60).Draw(rt, "advanceMin")
		now1 := base.Add(time.Duration(delta1) * time.Minute)
		now2 := now1.Add(time.Duration(advance) * time.Minute)

		at1 := UpcomingSessions(snap, now1)
		at2 := UpcomingSessions(snap, now2)

		seen1 := make(map[string]int, len(at1))
		for i, s := range at1 {
			seen1[s.ID] = i
		}

		prev := -1
		for _, s := range at2 {
			pos, ok := seen1[s.ID]
			if !ok {
				continue
			}
			if pos <= prev {
				rt.Fatalf("session %s broke relative order: position %d after %d", s.ID, pos, prev)
			}
			prev = pos
		}
	})
}

// Property: every window result is sorted ascending and entirely
// inside (now, now+24h].
func TestProperty_UpcomingWindowBounds(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property test in short mode")
	}

	base := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		snap := drawSessionSnapshot(rt, base)
		now := base.Add(time.Duration(rapid.IntRange(-60, 60).Draw(rt, "nowMin")) * time.Minute)
		tomorrow := now.Add(24 * time.Hour)

		upcoming := UpcomingSessions(snap, now)

		for i, s := range upcoming {
			if !s.Date.After(now) || s.Date.After(tomorrow) {
				rt.Fatalf("session %s at %v escapes the window (%v, %v]", s.ID, s.Date, now, tomorrow)
			}
			if i > 0 && upcoming[i-1].Date.After(s.Date) {
				rt.Fatalf("window not sorted ascending at index %d", i)
			}
		}
	})
}

// Property: the recent-activity feed never exceeds the limit and is
// non-increasing in time.
func TestProperty_RecentActivityBoundedAndSorted(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property test in short mode")
	}

	base := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	rapid.Check(t, func(rt *rapid.T) {
		snap := drawSessionSnapshot(rt, base)
		snap.Chats = []model.Chat{{ID: "c1", Name: "Chat"}}

		numMessages := rapid.IntRange(0, 30).Draw(rt, "numMessages")
		for i := 0; i < numMessages; i++ {
			offset := rapid.IntRange(-48*60, 0).Draw(rt, fmt.Sprintf("msgOffsetMin_%d", i))
			snap.Messages = append(snap.Messages, model.Message{
				ID:        fmt.Sprintf("msg_%d", i),
				ChatID:    "c1",
				Content:   "m",
				Sender:    model.Sender{ID: "u1", Name: "You"},
				Timestamp: base.Add(time.Duration(offset) * time.Minute),
			})
		}

		limit := rapid.IntRange(1, 10).Draw(rt, "limit")
		feed := RecentActivity(snap, base, limit)

		if len(feed) > limit {
			rt.Fatalf("feed has %d entries, limit is %d", len(feed), limit)
		}
		for i := 1; i < len(feed); i++ {
			if feed[i].Timestamp.After(feed[i-1].Timestamp) {
				rt.Fatalf("feed not non-increasing at index %d", i)
			}
		}
		for _, a := range feed {
			if a.Type == ActivitySession && a.Timestamp.After(base) {
				rt.Fatalf("future session %s leaked into the feed", a.ID)
			}
		}
	})
}

// Property: chat search returns a subsequence of the chat list, and an
// empty query returns everything.
func TestProperty_SearchChatsSubsequence(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property test in short mode")
	}

	rapid.Check(t, func(rt *rapid.T) {
		numChats := rapid.IntRange(0, 10).Draw(rt, "numChats")
		snap := store.Snapshot{}
		for i := 0; i < numChats; i++ {
			name := rapid.StringMatching(`[A-Za-z ]{0,12}`).Draw(rt, fmt.Sprintf("name_%d", i))
			snap.Chats = append(snap.Chats, model.Chat{
				ID:   fmt.Sprintf("chat_%d", i),
				Name: name,
			})
		}

		all := SearchChats(snap, "")
		if len(all) != numChats {
			rt.Fatalf("empty query returned %d of %d chats", len(all), numChats)
		}

		query := rapid.StringMatching(`[A-Za-z]{0,4}`).Draw(rt, "query")
		matched := SearchChats(snap, query)

		// Results must preserve original relative order.
		pos := 0
		for _, m := range matched {
			found := false
			for ; pos < len(snap.Chats); pos++ {
				if snap.Chats[pos].ID == m.ID {
					found = true
					pos++
					break
				}
			}
			if !found {
				rt.Fatalf("chat %s out of order or duplicated in results", m.ID)
			}
		}
	})
}
