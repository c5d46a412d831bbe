package hooks

import (
	"strings"
	"unicode"

	"github.com/dmitrijs2005/denidash/internal/client/models"
)

// FilterAll matches every status or type.
const FilterAll = "all"

type ReportFilter struct {
	Status string
	Type   string
	Search string
}

// ReportStats counts reports by state.
type ReportStats struct {
	Total      int
	Pending    int
	InProgress int
	Resolved   int
}

// FilterReports keeps the reports matching f. Empty or "all" fields match
// everything; Search is a case-insensitive substring of the subject, the
// user name or the description.
func FilterReports(reports []models.Report, f ReportFilter) []models.Report {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Report, 0, len(reports))
	for _, r := range reports {
		if !matches(f.Status, string(r.Status)) || !matches(f.Type, string(r.Type)) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Subject), search) &&
			!strings.Contains(strings.ToLower(r.UserName), search) &&
			!strings.Contains(strings.ToLower(r.Description), search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matches(want, got string) bool {
	return want == "" || want == FilterAll || want == got
}

func Summarize(reports []models.Report) ReportStats {
	stats := ReportStats{Total: len(reports)}
	for _, r := range reports {
		switch r.Status {
		case models.ReportPending:
			stats.Pending++
		case models.ReportInProgress:
			stats.InProgress++
		case models.ReportResolved:
			stats.Resolved++
		}
	}
	return stats
}

// Initials returns up to two upper-case initials of name.
func Initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		out = append(out, unicode.ToUpper([]rune(part)[0]))
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
