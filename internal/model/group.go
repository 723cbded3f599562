package model

import "time"

// Role of a member inside a study group.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Subject is the fixed set of subjects a study group can be filed under.
type Subject string

const (
	SubjectMathematics Subject = "Mathematics"
	SubjectPhysics     Subject = "Physics"
	SubjectChemistry   Subject = "Chemistry"
	SubjectBiology     Subject = "Biology"
	SubjectLiterature  Subject = "Literature"
	SubjectHistory     Subject = "History"
)

// Subjects lists every valid subject, in display order.
var Subjects = []Subject{
	SubjectMathematics,
	SubjectPhysics,
	SubjectChemistry,
	SubjectBiology,
	SubjectLiterature,
	SubjectHistory,
}

// ValidSubject reports whether s is one of the enumerated subjects.
func ValidSubject(s Subject) bool {
	for _, subject := range Subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Member belongs to exactly one study group.
type Member struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Role   Role   `json:"role"`
}

// StudySession is owned by exactly one group and never mutated after
// creation; there is no reschedule or cancel operation.
type StudySession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Duration  int       `json:"duration"` // in minutes
	Topic     string    `json:"topic"`
	Attendees []string  `json:"attendees"` // member ids, subset of the group's members
}

// StudyGroup holds its members and sessions in insertion order.
type StudyGroup struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Subject     Subject        `json:"subject"`
	Avatar      string         `json:"avatar,omitempty"`
	Members     []Member       `json:"members"`
	Sessions    []StudySession `json:"sessions"`
	CreatedAt   time.Time      `json:"created_at"`
}

// MemberByID resolves a member of the group, nil when absent.
func (g *StudyGroup) MemberByID(id string) *Member {
	for i := range g.Members {
		if g.Members[i].ID == id {
			return &g.Members[i]
		}
	}
	return nil
}
