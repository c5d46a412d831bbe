package services

import (
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/denidash/internal/client/api"
)

const (
	EndpointLogin         = "/admin/login"
	EndpointLogout        = "/admin/logout"
	EndpointRefresh       = "/admin/refresh"
	EndpointAdmins        = "/admin"
	EndpointAdminProfile  = "/admin/profile"
	EndpointUsers         = "/users"
	EndpointUsersCount    = "/users/count"
	EndpointAnalytics     = "/users/analytics"
	EndpointCountryCodes  = "/users/analytics/country-codes"
	EndpointCurrencyCodes = "/users/analytics/currency-codes"
	EndpointReports       = "/reports"
)

func adminEndpoint(id string) string {
	return EndpointAdmins + "/" + url.PathEscape(id)
}

func userEndpoint(id string) string {
	return EndpointUsers + "/" + url.PathEscape(id)
}

func reportEndpoint(id string) string {
	return EndpointReports + "/" + url.PathEscape(id)
}

// positive renders n for a query string, or "" so the parameter is dropped.
func positive(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func limitQuery(endpoint string, limit int) string {
	return api.WithQuery(endpoint, url.Values{"limit": {positive(limit)}})
}
