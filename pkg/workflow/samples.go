package workflow

import (
	"time"

	"github.com/inkpress/inkpress-admin/pkg/models"
)

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

// SampleManuscripts seeds a fresh data directory
func SampleManuscripts() []models.Manuscript {
	return []models.Manuscript{
		{
			ID:            "MS-2024-001",
			Title:         "Advanced Machine Learning Techniques for Climate Prediction",
			Author:        "Dr. Sarah Johnson",
			Email:         "sarah.johnson@university.edu",
			Status:        models.StatusUnderReview,
			SubmittedDate: mustTime("2024-07-05T10:30:00Z"),
			Reviewer:      "Dr. Michael Chen",
		},
		{
			ID:            "MS-2024-002",
			Title:         "Quantum Computing Applications in Cryptography",
			Author:        "Prof. David Wilson",
			Email:         "david.wilson@tech.edu",
			Status:        models.StatusRevisionRequested,
			SubmittedDate: mustTime("2024-07-03T14:15:00Z"),
			Reviewer:      "Dr. Lisa Zhang",
		},
		{
			ID:            "MS-2024-003",
			Title:         "Sustainable Energy Solutions for Urban Development",
			Author:        "Dr. Emily Rodriguez",
			Email:         "emily.rodriguez@green.org",
			Status:        models.StatusSubmitted,
			SubmittedDate: mustTime("2024-07-08T09:45:00Z"),
		},
		{
			ID:            "MS-2024-004",
			Title:         "Biomedical Applications of Nanotechnology",
			Author:        "Dr. James Thompson",
			Email:         "james.thompson@med.edu",
			Status:        models.StatusAccepted,
			SubmittedDate: mustTime("2024-06-28T16:20:00Z"),
			Reviewer:      "Dr. Anna Petrov",
		},
		{
			ID:            "MS-2024-005",
			Title:         "Artificial Intelligence in Healthcare Diagnostics",
			Author:        "Dr. Maria Garcia",
			Email:         "maria.garcia@health.org",
			Status:        models.StatusRejected,
			SubmittedDate: mustTime("2024-06-25T11:10:00Z"),
			Reviewer:      "Dr. Robert Kim",
		},
	}
}

// SampleUsers seeds a fresh data directory
func SampleUsers() []models.User {
	return []models.User{
		{
			ID:              "USR-001",
			Name:            "Dr. Sarah Johnson",
			Email:           "sarah.johnson@university.edu",
			Role:            models.RoleAuthor,
			Status:          models.UserActive,
			Institution:     "Stanford University",
			Department:      "Computer Science",
			LastActive:      mustTime("2024-07-11T08:30:00Z"),
			ManuscriptCount: 3,
		},
		{
			ID:              "USR-002",
			Name:            "Dr. Michael Chen",
			Email:           "michael.chen@review.org",
			Role:            models.RoleReviewer,
			Status:          models.UserActive,
			Institution:     "MIT",
			Department:      "Artificial Intelligence Lab",
			LastActive:      mustTime("2024-07-10T15:45:00Z"),
			ManuscriptCount: 0,
		},
		{
			ID:              "USR-003",
			Name:            "Prof. David Wilson",
			Email:           "david.wilson@tech.edu",
			Role:            models.RoleEditor,
			Status:          models.UserActive,
			Institution:     "Caltech",
			Department:      "Physics",
			LastActive:      mustTime("2024-07-11T12:20:00Z"),
			ManuscriptCount: 7,
		},
		{
			ID:              "USR-004",
			Name:            "Dr. Emily Rodriguez",
			Email:           "emily.rodriguez@green.org",
			Role:            models.RoleAuthor,
			Status:          models.UserPending,
			Institution:     "Green Energy Institute",
			Department:      "Renewable Energy",
			LastActive:      mustTime("2024-07-09T10:15:00Z"),
			ManuscriptCount: 1,
		},
		{
			ID:              "USR-005",
			Name:            "Dr. Lisa Zhang",
			Email:           "lisa.zhang@admin.edu",
			Role:            models.RoleAdmin,
			Status:          models.UserActive,
			Institution:     "Journal Administration",
			Department:      "Editorial Office",
			LastActive:      mustTime("2024-07-11T14:00:00Z"),
			ManuscriptCount: 0,
		},
	}
}

// Reviewers returns the names of users who can be assigned as reviewers
func Reviewers(users []models.User) []string {
	var names []string
	for _, u := range users {
		if u.Role == models.RoleReviewer && u.Status == models.UserActive {
			names = append(names, u.Name)
		}
	}
	return names
}
