package models

import (
	"errors"
	"strings"
)

// Vocabulary errors
var (
	ErrEmptyValue   = errors.New("value cannot be empty")
	ErrUnknownValue = errors.New("value is not part of the vocabulary")
)

// Manuscript statuses
const (
	StatusSubmitted         = "submitted"
	StatusUnderReview       = "under_review"
	StatusRevisionRequested = "revision_requested"
	StatusAccepted          = "accepted"
	StatusRejected          = "rejected"
)

// User roles
const (
	RoleAuthor   = "author"
	RoleReviewer = "reviewer"
	RoleEditor   = "editor"
	RoleAdmin    = "admin"
)

// User statuses
const (
	UserActive    = "active"
	UserInactive  = "inactive"
	UserPending   = "pending"
	UserSuspended = "suspended"
)

// Term is one value of a closed vocabulary with its presentation
type Term struct {
	Value string
	Label string
	// FilterLabel overrides Label in filter menus
	FilterLabel string
	Color       string
	Icon        string
}

// Vocabulary is an ordered closed set of terms
type Vocabulary []Term

// Badge colours
const (
	ColorBlue   = "#3498db"
	ColorYellow = "#f1c40f"
	ColorOrange = "#e67e22"
	ColorGreen  = "#2ecc71"
	ColorRed    = "#e74c3c"
	ColorPurple = "#9b59b6"
	ColorGray   = "#95a5a6"
)

var ManuscriptStatuses = Vocabulary{
	{Value: StatusSubmitted, Label: "Submitted", Color: ColorBlue},
	{Value: StatusUnderReview, Label: "Under Review", Color: ColorYellow},
	{Value: StatusRevisionRequested, Label: "Revision Requested", Color: ColorOrange},
	{Value: StatusAccepted, Label: "Accepted", Color: ColorGreen},
	{Value: StatusRejected, Label: "Rejected", Color: ColorRed},
}

var UserRoles = Vocabulary{
	{Value: RoleAuthor, Label: "Author", Color: ColorBlue},
	{Value: RoleReviewer, Label: "Reviewer", Color: ColorGreen},
	{Value: RoleEditor, Label: "Editor", Color: ColorPurple},
	{Value: RoleAdmin, Label: "Admin", Color: ColorRed},
}

var UserStatuses = Vocabulary{
	{Value: UserActive, Label: "Active", Color: ColorGreen, Icon: "✓"},
	{Value: UserInactive, Label: "Inactive", Color: ColorGray, Icon: "○"},
	{Value: UserPending, Label: "Pending", FilterLabel: "Pending Verification", Color: ColorYellow, Icon: "◷"},
	{Value: UserSuspended, Label: "Suspended", Color: ColorRed, Icon: "✗"},
}

// Lookup returns the term for value. Unknown values fall back to the
// first term so a badge always renders.
func (v Vocabulary) Lookup(value string) Term {
	for _, t := range v {
		if t.Value == value {
			return t
		}
	}
	if len(v) == 0 {
		return Term{Value: value, Label: value}
	}
	return v[0]
}

// Contains reports whether value is a known term
func (v Vocabulary) Contains(value string) bool {
	for _, t := range v {
		if t.Value == value {
			return true
		}
	}
	return false
}

// Values returns the term values in order
func (v Vocabulary) Values() []string {
	out := make([]string, len(v))
	for i, t := range v {
		out[i] = t.Value
	}
	return out
}

// MenuLabel is the label used in filter menus
func (t Term) MenuLabel() string {
	if t.FilterLabel != "" {
		return t.FilterLabel
	}
	return t.Label
}

// NormalizeValue turns user input like "Under Review" into "under_review"
func NormalizeValue(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.NewReplacer(" ", "_", "-", "_").Replace(normalized)

	var result strings.Builder
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// Validate normalizes input and checks it against the vocabulary
func (v Vocabulary) Validate(input string) (string, error) {
	value := NormalizeValue(input)
	if value == "" {
		return "", ErrEmptyValue
	}
	if !v.Contains(value) {
		return "", ErrUnknownValue
	}
	return value, nil
}
