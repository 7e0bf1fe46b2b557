package tui

import (
	"strconv"
	"time"

	"github.com/inkpress/inkpress-admin/pkg/models"
)

const dateLayout = "Jan 02, 2006"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func manuscriptColumns() []column[models.Manuscript] {
	return []column[models.Manuscript]{
		{title: "Title", cell: func(m models.Manuscript) string {
			return m.Title + DescriptionStyle.Render(" "+m.ID)
		}},
		{title: "Author", width: 20, cell: func(m models.Manuscript) string { return m.Author }},
		{title: "Status", width: 20, cell: func(m models.Manuscript) string {
			return Badge(models.ManuscriptStatuses.Lookup(m.Status))
		}},
		{title: "Submitted", width: 12, cell: func(m models.Manuscript) string { return formatDate(m.SubmittedDate) }},
		{title: "Reviewer", width: 18, cell: func(m models.Manuscript) string {
			if !m.HasReviewer() {
				return DescriptionStyle.Render("Unassigned")
			}
			return m.Reviewer
		}},
	}
}

func userColumns() []column[models.User] {
	return []column[models.User]{
		{title: "Name", cell: func(u models.User) string {
			return u.Name + DescriptionStyle.Render(" "+u.Email)
		}},
		{title: "Role", width: 14, cell: func(u models.User) string {
			return Badge(models.UserRoles.Lookup(u.Role))
		}},
		{title: "Status", width: 14, cell: func(u models.User) string {
			return Badge(models.UserStatuses.Lookup(u.Status))
		}},
		{title: "Institution", width: 22, cell: func(u models.User) string {
			if u.Department == "" {
				return u.Institution
			}
			return u.Institution + DescriptionStyle.Render(" · "+u.Department)
		}},
		{title: "Last Active", width: 12, cell: func(u models.User) string { return formatDate(u.LastActive) }},
		{title: "Papers", width: 6, cell: func(u models.User) string { return strconv.Itoa(u.ManuscriptCount) }},
	}
}
