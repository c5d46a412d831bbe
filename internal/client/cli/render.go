package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dmitrijs2005/denidash/internal/client/hooks"
	"github.com/dmitrijs2005/denidash/internal/client/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func renderAdmins(w io.Writer, admins []models.Admin) {
	if len(admins) == 0 {
		fmt.Fprintln(w, "No admins found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tACTIVE\tLAST LOGIN")
	for _, a := range admins {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, a.Email, a.Role.Label(), yesNo(a.IsActive), a.LastLogin.Display())
	}
	tw.Flush()
}

func renderAdmin(w io.Writer, a models.Admin) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", a.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", a.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", a.Email)
	fmt.Fprintf(tw, "Role:\t%s\n", a.Role.Label())
	fmt.Fprintf(tw, "Active:\t%s\n", yesNo(a.IsActive))
	fmt.Fprintf(tw, "Created:\t%s\n", a.CreatedAt.Display())
	fmt.Fprintf(tw, "Last login:\t%s\n", a.LastLogin.DisplayWithTime())
	tw.Flush()
}

func renderUsers(w io.Writer, page models.UsersPage) {
	if len(page.Data) == 0 {
		fmt.Fprintln(w, "No users found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tCOUNTRY\tCURRENCY\tVERIFIED\tJOINED")
	for _, u := range page.Data {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			u.ID, u.Name, u.Email, u.CountryCode, u.CurrencyCode, yesNo(u.EmailVerified), u.CreatedAt.Display())
	}
	tw.Flush()

	if p := page.Pagination; p != nil {
		fmt.Fprintf(w, "Page %d of %d, %d users\n", p.CurrentPage, p.TotalPages, page.Total())
	} else {
		fmt.Fprintf(w, "%d users\n", page.Total())
	}
}

func renderUser(w io.Writer, u models.User) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", u.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", u.Name)
	fmt.Fprintf(tw, "Email:\t%s\n", u.Email)
	fmt.Fprintf(tw, "Verified:\t%s\n", yesNo(u.EmailVerified))
	if u.PhoneNumber != "" {
		fmt.Fprintf(tw, "Phone:\t%s\n", u.PhoneNumber)
	}
	fmt.Fprintf(tw, "Country:\t%s\n", u.CountryCode)
	fmt.Fprintf(tw, "Currency:\t%s\n", u.CurrencyCode)
	fmt.Fprintf(tw, "Active:\t%s\n", yesNo(u.IsActive && !u.Disabled))
	fmt.Fprintf(tw, "Joined:\t%s\n", u.CreatedAt.Display())
	fmt.Fprintf(tw, "Last login:\t%s\n", u.LastLogin.DisplayWithTime())
	tw.Flush()
}

func renderReports(w io.Writer, reports []models.Report, stats hooks.ReportStats) {
	fmt.Fprintf(w, "Total %d, pending %d, in progress %d, resolved %d\n",
		stats.Total, stats.Pending, stats.InProgress, stats.Resolved)
	if len(reports) == 0 {
		fmt.Fprintln(w, "No reports found")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tFROM\tTYPE\tPRIORITY\tSTATUS\tSUBJECT\tCREATED")
	for _, r := range reports {
		fmt.Fprintf(tw, "%s\t%s (%s)\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.UserName, hooks.Initials(r.UserName), r.Type, r.Priority, r.Status, r.Subject, r.CreatedAt.Display())
	}
	tw.Flush()
}

func renderReport(w io.Writer, r models.Report) {
	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", r.ID)
	fmt.Fprintf(tw, "From:\t%s <%s>\n", r.UserName, r.UserEmail)
	fmt.Fprintf(tw, "Subject:\t%s\n", r.Subject)
	fmt.Fprintf(tw, "Status:\t%s\n", r.Status)
	if r.AdminResponse != "" {
		fmt.Fprintf(tw, "Response:\t%s\n", r.AdminResponse)
	}
	fmt.Fprintf(tw, "Responded:\t%s\n", r.ResponseDate.DisplayWithTime())
	tw.Flush()
}

type dashboardView struct {
	Count      hooks.State[int]
	Summary    hooks.State[*models.UserAnalytics]
	Countries  hooks.State[[]models.CountryCount]
	Currencies hooks.State[[]models.CurrencyCount]
}

func renderDashboard(w io.Writer, v dashboardView) {
	switch {
	case v.Count.Error != nil:
		fmt.Fprintf(w, "Total users: unavailable (%s)\n", v.Count.ErrorMessage())
	default:
		fmt.Fprintf(w, "Total users: %d\n", v.Count.Data)
	}

	fmt.Fprintln(w, "Top countries:")
	if v.Countries.Error != nil {
		fmt.Fprintf(w, "  unavailable (%s)\n", v.Countries.ErrorMessage())
	} else {
		tw := newTable(w)
		for _, c := range v.Countries.Data {
			fmt.Fprintf(tw, "  %s\t%d\n", c.CountryCode, c.Count)
		}
		tw.Flush()
	}

	fmt.Fprintln(w, "Top currencies:")
	if v.Currencies.Error != nil {
		fmt.Fprintf(w, "  unavailable (%s)\n", v.Currencies.ErrorMessage())
	} else {
		tw := newTable(w)
		for _, c := range v.Currencies.Data {
			fmt.Fprintf(tw, "  %s\t%d\n", c.CurrencyCode, c.Count)
		}
		tw.Flush()
	}

	if s := v.Summary.Data; s != nil && s.TotalUsers != v.Count.Data {
		fmt.Fprintf(w, "Analytics total: %d\n", s.TotalUsers)
	}
}
