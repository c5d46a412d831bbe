// Package nav names the dashboard's routes and the hook through which the
// session layer asks the UI to move between them.
package nav

import "context"

const (
	RouteLogin     = "/login"
	RouteDashboard = "/dashboard"
)

type Navigator interface {
	Navigate(ctx context.Context, route string)
}

type NavigatorFunc func(ctx context.Context, route string)

func (f NavigatorFunc) Navigate(ctx context.Context, route string) {
	f(ctx, route)
}

// Recorder remembers every route it is asked to visit. Useful in tests and
// for UIs that poll for redirects.
type Recorder struct {
	Routes []string
}

func (r *Recorder) Navigate(_ context.Context, route string) {
	r.Routes = append(r.Routes, route)
}

// Last returns the most recent route, or "".
func (r *Recorder) Last() string {
	if len(r.Routes) == 0 {
		return ""
	}
	return r.Routes[len(r.Routes)-1]
}
