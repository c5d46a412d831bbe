package services

import (
	"context"
	"encoding/json"
)

type call struct {
	Method   string
	Endpoint string
	Body     any
}

// fakeRequester answers every call with the next canned JSON body or error.
type fakeRequester struct {
	calls     []call
	responses []string
	errs      []error
}

func (f *fakeRequester) reply(body string) *fakeRequester {
	f.responses = append(f.responses, body)
	f.errs = append(f.errs, nil)
	return f
}

func (f *fakeRequester) fail(err error) *fakeRequester {
	f.responses = append(f.responses, "")
	f.errs = append(f.errs, err)
	return f
}

func (f *fakeRequester) Do(_ context.Context, method, endpoint string, body, out any) error {
	i := len(f.calls)
	f.calls = append(f.calls, call{Method: method, Endpoint: endpoint, Body: body})
	if i >= len(f.responses) {
		return json.Unmarshal([]byte(`{"status":"success"}`), out)
	}
	if f.errs[i] != nil {
		return f.errs[i]
	}
	return json.Unmarshal([]byte(f.responses[i]), out)
}

func (f *fakeRequester) last() call {
	return f.calls[len(f.calls)-1]
}
