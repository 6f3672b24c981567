// Package dashboard is the consumer side of the gateway: typed request thunks
// and a request/state holder that unwraps the response envelope.
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"

	"github.com/ngenohkevin/zid-admin/internal/models"
)

const (
	// MsgRequestFailed is shown when a failed envelope carries no error
	MsgRequestFailed = "An error occurred"
	// MsgNetworkError is shown when the request could not complete and the
	// failure has no message of its own
	MsgNetworkError = "Network error"
	// MsgNothingToRetry is returned by Retry before any request was made
	MsgNothingToRetry = "No request to retry"
)

// RequestFunc performs one gateway call and returns the raw response
type RequestFunc func(ctx context.Context) (*http.Response, error)

// State is what a consumer renders. Before the first request every field is
// zero.
type State[T any] struct {
	Data    *T
	Loading bool
	Error   string
}

// Hook tracks the state of the latest request issued through it. Overlapping
// Execute calls are allowed; only the most recently started one may update
// the state.
type Hook[T any] struct {
	mu         sync.Mutex
	state      State[T]
	generation uint64
	last       RequestFunc
	onChange   func(State[T])
}

func NewHook[T any]() *Hook[T] {
	return &Hook[T]{}
}

// OnChange registers fn to be called with every new state. fn runs on the
// goroutine that caused the change, outside the hook's lock.
func (h *Hook[T]) OnChange(fn func(State[T])) {
	h.mu.Lock()
	h.onChange = fn
	h.mu.Unlock()
}

func (h *Hook[T]) State() State[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Execute runs req and resolves it to an envelope. It never returns a Go
// error: transport and decode failures become a failed envelope. The returned
// envelope belongs to this call even when a newer request has since taken
// over the state.
func (h *Hook[T]) Execute(ctx context.Context, req RequestFunc) models.APIResponse[T] {
	gen := h.begin(req)
	env := resolve[T](ctx, req)
	h.settle(gen, env)
	return env
}

// Retry re-issues the last request passed to Execute
func (h *Hook[T]) Retry(ctx context.Context) models.APIResponse[T] {
	h.mu.Lock()
	req := h.last
	h.mu.Unlock()

	if req == nil {
		return models.NewFailure[T](MsgNothingToRetry)
	}
	return h.Execute(ctx, req)
}

// Reset clears the state and discards the result of any request in flight
func (h *Hook[T]) Reset() {
	h.mu.Lock()
	h.generation++
	h.state = State[T]{}
	snapshot, notify := h.state, h.onChange
	h.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

func (h *Hook[T]) begin(req RequestFunc) uint64 {
	h.mu.Lock()
	h.generation++
	gen := h.generation
	h.last = req
	h.state.Loading = true
	h.state.Error = ""
	snapshot, notify := h.state, h.onChange
	h.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
	return gen
}

func (h *Hook[T]) settle(gen uint64, env models.APIResponse[T]) {
	h.mu.Lock()
	if gen != h.generation {
		h.mu.Unlock()
		return
	}

	h.state.Loading = false
	if env.Success {
		h.state.Data = env.Data
		h.state.Error = ""
	} else {
		// Prior data stays visible next to the error
		h.state.Error = env.Error
	}
	snapshot, notify := h.state, h.onChange
	h.mu.Unlock()

	if notify != nil {
		notify(snapshot)
	}
}

// resolve performs the request and decodes the envelope whatever the HTTP
// status, since the gateway reports failures in the body
func resolve[T any](ctx context.Context, req RequestFunc) models.APIResponse[T] {
	resp, err := req(ctx)
	if err != nil {
		return models.NewFailure[T](messageOr(err, MsgNetworkError))
	}
	if resp == nil || resp.Body == nil {
		return models.NewFailure[T](MsgNetworkError)
	}
	defer resp.Body.Close()

	var env models.APIResponse[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return models.NewFailure[T](messageOr(err, MsgNetworkError))
	}

	if !env.Success {
		env.Data = nil
		if strings.TrimSpace(env.Error) == "" {
			env.Error = MsgRequestFailed
		}
	}
	return env
}

func messageOr(err error, fallback string) string {
	if msg := strings.TrimSpace(err.Error()); msg != "" {
		return msg
	}
	return fallback
}
