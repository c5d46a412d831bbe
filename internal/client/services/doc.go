// Package services contains one typed wrapper per dashboard API endpoint.
//
// Services are stateless: they build the request, call the api.Requester,
// and unwrap the response envelope. Session persistence, notifications and
// navigation belong to the callers in package hooks.
package services
