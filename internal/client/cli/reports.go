package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/denidash/internal/client/hooks"
	"github.com/dmitrijs2005/denidash/internal/client/models"
)

// Reports lists reports. Usage: reports [status=S] [type=T] [search text].
func (a *App) Reports(ctx context.Context, args []string) error {
	if err := a.guard.Load(ctx, a.reports.Fetch); err != nil {
		return err
	}
	renderReports(a.out, a.reports.Filter(parseReportFilter(args)), a.reports.Stats())
	return nil
}

// Respond resolves or rejects a report with a written answer.
func (a *App) Respond(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: respond <id>")
		return nil
	}
	if !a.guard.Require(ctx) {
		return nil
	}

	status, err := GetTextWithDefault(a.reader, "Status (resolved, rejected)", string(models.ReportResolved), a.out)
	if err != nil {
		return err
	}
	text, err := GetMultiline(a.reader, "Response", a.out)
	if err != nil {
		return err
	}

	r, err := a.reports.Respond(ctx, args[0], models.ReportStatus(status), text)
	if err != nil {
		a.guard.Check(ctx, err)
		return err
	}
	renderReport(a.out, r)
	return nil
}

func parseReportFilter(args []string) hooks.ReportFilter {
	var f hooks.ReportFilter
	var search []string
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "status="):
			f.Status = strings.TrimPrefix(arg, "status=")
		case strings.HasPrefix(arg, "type="):
			f.Type = strings.TrimPrefix(arg, "type=")
		default:
			search = append(search, arg)
		}
	}
	f.Search = strings.Join(search, " ")
	return f
}
