package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RepresentativeCollege = "college"
	RepresentativeSchool  = "school"
)

type User struct {
	gorm.Model
	Name               string `gorm:"not null"`
	Phone              string `gorm:"not null"`
	State              string `gorm:"not null"`
	District           string `gorm:"not null"`
	RepresentativeType string `gorm:"not null"` // college, school
	College            string
	School             string
	YearOfStudy        string
	Email              string `gorm:"uniqueIndex;not null"`
	PasswordHash       string `gorm:"not null"`
}

type Task struct {
	gorm.Model
	Title          string `gorm:"not null"`
	Description    string `gorm:"not null"`
	Deadline       *time.Time
	Points         int    `gorm:"not null"`
	SubmissionType string // individual, team
}

// Submission is one attempt to claim credit for a Task via a link.
// The composite index makes a second attempt for the same pair a
// store-level conflict rather than an overwrite.
type Submission struct {
	gorm.Model
	UserEmail     string `gorm:"not null;uniqueIndex:idx_submission_user_task"`
	TaskID        uint   `gorm:"not null;uniqueIndex:idx_submission_user_task"`
	Link          string `gorm:"not null"`
	PointsAwarded *int   // nil until an admin reviews the submission
}

// LeaderboardEntry holds the running total of awarded points for one
// user. Totals only ever grow; each award adds its amount on top.
type LeaderboardEntry struct {
	gorm.Model
	UserEmail   string `gorm:"uniqueIndex;not null"`
	TotalPoints int    `gorm:"not null;default:0"`
}
