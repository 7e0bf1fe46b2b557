package models

import "time"

// Manuscript is a submission moving through review
type Manuscript struct {
	ID            string    `yaml:"id" json:"id"`
	Title         string    `yaml:"title" json:"title"`
	Author        string    `yaml:"author" json:"author"`
	Email         string    `yaml:"email" json:"email"`
	Status        string    `yaml:"status" json:"status"`
	SubmittedDate time.Time `yaml:"submitted_date" json:"submitted_date"`
	Reviewer      string    `yaml:"reviewer,omitempty" json:"reviewer,omitempty"`
}

// RecordID implements records.Record
func (m Manuscript) RecordID() string { return m.ID }

// HasReviewer reports whether a reviewer is assigned
func (m Manuscript) HasReviewer() bool { return m.Reviewer != "" }

type User struct {
	ID              string    `yaml:"id" json:"id"`
	Name            string    `yaml:"name" json:"name"`
	Email           string    `yaml:"email" json:"email"`
	Role            string    `yaml:"role" json:"role"`
	Status          string    `yaml:"status" json:"status"`
	Institution     string    `yaml:"institution" json:"institution"`
	Department      string    `yaml:"department,omitempty" json:"department,omitempty"`
	LastActive      time.Time `yaml:"last_active" json:"last_active"`
	ManuscriptCount int       `yaml:"manuscript_count" json:"manuscript_count"`
}

func (u User) RecordID() string { return u.ID }

// Active reports whether the account is active; row actions toggle on this
func (u User) Active() bool { return u.Status == UserActive }

// ManuscriptFile is the on-disk layout of manuscripts.yaml
type ManuscriptFile struct {
	Manuscripts []Manuscript `yaml:"manuscripts"`
}

// UserFile is the on-disk layout of users.yaml
type UserFile struct {
	Users []User `yaml:"users"`
}
