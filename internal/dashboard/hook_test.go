package dashboard

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// Keep-alive connections from the client tests may still be winding down
var leakOptions = []goleak.Option{
	goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
	goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
}

type order struct {
	ID string `json:"id"`
}

func respond(status int, body string) RequestFunc {
	return func(ctx context.Context) (*http.Response, error) {
		return &http.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	}
}

func failWith(err error) RequestFunc {
	return func(ctx context.Context) (*http.Response, error) {
		return nil, err
	}
}

func TestHook_InitialState(t *testing.T) {
	h := NewHook[order]()
	assert.Equal(t, State[order]{}, h.State())
}

func TestHook_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		h := NewHook[order]()
		env := h.Execute(ctx, respond(http.StatusOK, `{"success":true,"data":{"id":"o1"},"message":"ok"}`))

		assert.True(t, env.Success)
		assert.Equal(t, "ok", env.Message)
		state := h.State()
		require.NotNil(t, state.Data)
		assert.Equal(t, "o1", state.Data.ID)
		assert.False(t, state.Loading)
		assert.Empty(t, state.Error)
	})

	t.Run("failure keeps prior data", func(t *testing.T) {
		h := NewHook[order]()
		h.Execute(ctx, respond(http.StatusOK, `{"success":true,"data":{"id":"o1"}}`))
		env := h.Execute(ctx, respond(http.StatusInternalServerError, `{"success":false,"error":"Resource not found."}`))

		assert.False(t, env.Success)
		assert.Equal(t, "Resource not found.", env.Error)
		state := h.State()
		require.NotNil(t, state.Data)
		assert.Equal(t, "o1", state.Data.ID)
		assert.Equal(t, "Resource not found.", state.Error)
		assert.False(t, state.Loading)
	})

	t.Run("failure without message", func(t *testing.T) {
		h := NewHook[order]()
		env := h.Execute(ctx, respond(http.StatusBadRequest, `{"success":false}`))

		assert.Equal(t, MsgRequestFailed, env.Error)
		assert.Equal(t, MsgRequestFailed, h.State().Error)
	})

	t.Run("transport error", func(t *testing.T) {
		h := NewHook[order]()
		env := h.Execute(ctx, failWith(errors.New("connection refused")))

		assert.False(t, env.Success)
		assert.Equal(t, "connection refused", env.Error)
		assert.Equal(t, "connection refused", h.State().Error)
	})

	t.Run("transport error without message", func(t *testing.T) {
		h := NewHook[order]()
		env := h.Execute(ctx, failWith(errors.New("")))
		assert.Equal(t, MsgNetworkError, env.Error)
	})

	t.Run("undecodable body", func(t *testing.T) {
		h := NewHook[order]()
		env := h.Execute(ctx, respond(http.StatusBadGateway, `<html>bad gateway</html>`))

		assert.False(t, env.Success)
		assert.NotEmpty(t, env.Error)
		assert.True(t, env.Valid())
		assert.False(t, h.State().Loading)
	})

	t.Run("success clears earlier error", func(t *testing.T) {
		h := NewHook[order]()
		h.Execute(ctx, failWith(errors.New("boom")))
		h.Execute(ctx, respond(http.StatusOK, `{"success":true,"data":{"id":"o2"}}`))

		state := h.State()
		assert.Empty(t, state.Error)
		assert.Equal(t, "o2", state.Data.ID)
	})
}

func TestHook_Reset(t *testing.T) {
	h := NewHook[order]()
	h.Execute(context.Background(), respond(http.StatusOK, `{"success":true,"data":{"id":"o1"}}`))
	h.Execute(context.Background(), failWith(errors.New("boom")))

	h.Reset()
	assert.Equal(t, State[order]{}, h.State())

	h.Reset()
	assert.Equal(t, State[order]{}, h.State())
}

// blocking returns a request that waits for release before responding
func blocking(body string) (RequestFunc, chan struct{}, chan struct{}) {
	started := make(chan struct{})
	release := make(chan struct{})
	return func(ctx context.Context) (*http.Response, error) {
		close(started)
		<-release
		return respond(http.StatusOK, body)(ctx)
	}, started, release
}

func TestHook_LatestRequestWins(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)
	ctx := context.Background()
	h := NewHook[order]()

	slow, started, release := blocking(`{"success":true,"data":{"id":"stale"}}`)

	var wg sync.WaitGroup
	var slowEnv string
	wg.Add(1)
	go func() {
		defer wg.Done()
		env := h.Execute(ctx, slow)
		slowEnv = env.Data.ID
	}()
	<-started

	h.Execute(ctx, respond(http.StatusOK, `{"success":true,"data":{"id":"fresh"}}`))
	close(release)
	wg.Wait()

	assert.Equal(t, "stale", slowEnv, "the caller still gets its own envelope")
	state := h.State()
	assert.Equal(t, "fresh", state.Data.ID)
	assert.False(t, state.Loading)
}

func TestHook_ResetDiscardsInFlight(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)
	h := NewHook[order]()

	slow, started, release := blocking(`{"success":true,"data":{"id":"late"}}`)
	done := make(chan struct{})
	go func() {
		defer close(done)
		h.Execute(context.Background(), slow)
	}()
	<-started

	assert.True(t, h.State().Loading)
	h.Reset()
	close(release)
	<-done

	assert.Equal(t, State[order]{}, h.State())
}

func TestHook_Retry(t *testing.T) {
	ctx := context.Background()
	h := NewHook[order]()

	env := h.Retry(ctx)
	assert.Equal(t, MsgNothingToRetry, env.Error)

	calls := 0
	flaky := func(ctx context.Context) (*http.Response, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("timeout")
		}
		return respond(http.StatusOK, `{"success":true,"data":{"id":"o1"}}`)(ctx)
	}

	h.Execute(ctx, flaky)
	assert.Equal(t, "timeout", h.State().Error)

	env = h.Retry(ctx)
	assert.True(t, env.Success)
	assert.Equal(t, 2, calls)
	assert.Equal(t, "o1", h.State().Data.ID)
}

func TestHook_OnChange(t *testing.T) {
	h := NewHook[order]()
	var seen []State[order]
	h.OnChange(func(s State[order]) {
		seen = append(seen, s)
	})

	h.Execute(context.Background(), respond(http.StatusOK, `{"success":true,"data":{"id":"o1"}}`))
	h.Reset()

	require.Len(t, seen, 3)
	assert.True(t, seen[0].Loading)
	assert.False(t, seen[1].Loading)
	assert.Equal(t, "o1", seen[1].Data.ID)
	assert.Equal(t, State[order]{}, seen[2])
}
