package api

import (
	"context"
	"net/http"
	"net/url"
)

func Get[T any](ctx context.Context, r Requester, endpoint string) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodGet, endpoint, nil)
}

func Post[T any](ctx context.Context, r Requester, endpoint string, body any) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodPost, endpoint, body)
}

func Put[T any](ctx context.Context, r Requester, endpoint string, body any) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodPut, endpoint, body)
}

func Patch[T any](ctx context.Context, r Requester, endpoint string, body any) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodPatch, endpoint, body)
}

func Delete[T any](ctx context.Context, r Requester, endpoint string) (*Envelope[T], error) {
	return call[T](ctx, r, http.MethodDelete, endpoint, nil)
}

func call[T any](ctx context.Context, r Requester, method, endpoint string, body any) (*Envelope[T], error) {
	var env Envelope[T]
	if err := r.Do(ctx, method, endpoint, body, &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// WithQuery appends the non-empty params to endpoint.
func WithQuery(endpoint string, params url.Values) string {
	for k, v := range params {
		if len(v) == 0 || v[0] == "" {
			params.Del(k)
		}
	}
	if len(params) == 0 {
		return endpoint
	}
	return endpoint + "?" + params.Encode()
}

