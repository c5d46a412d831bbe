package hooks

import "sync"

// State is a snapshot of a hook.
type State[T any] struct {
	Data      T
	IsLoading bool
	Error     error
}

// ErrorMessage returns the error text, or "" when there is no error.
func (s State[T]) ErrorMessage() string {
	if s.Error == nil {
		return ""
	}
	return s.Error.Error()
}

type state[T any] struct {
	mu sync.Mutex
	s  State[T]
}

func (st *state[T]) snapshot() State[T] {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.s
}

func (st *state[T]) begin() {
	st.mu.Lock()
	st.s.IsLoading = true
	st.s.Error = nil
	st.mu.Unlock()
}

func (st *state[T]) end() {
	st.mu.Lock()
	st.s.IsLoading = false
	st.mu.Unlock()
}

func (st *state[T]) set(v T) {
	st.mu.Lock()
	st.s.Data = v
	st.mu.Unlock()
}

func (st *state[T]) update(fn func(v T) T) {
	st.mu.Lock()
	st.s.Data = fn(st.s.Data)
	st.mu.Unlock()
}

func (st *state[T]) fail(err error) {
	st.mu.Lock()
	st.s.Error = err
	st.mu.Unlock()
}

func (st *state[T]) clearError() {
	st.mu.Lock()
	st.s.Error = nil
	st.mu.Unlock()
}
