package api

import (
	"context"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/shelterdesk/portal/internal/common"
	"github.com/shelterdesk/portal/internal/logging"
	"github.com/shelterdesk/portal/internal/session"
)

// refreshLeeway is how close to expiry a token may get before the transport
// refreshes it ahead of sending.
const refreshLeeway = 15 * time.Second

type ctxKey int

const skipAuthKey ctxKey = iota

// WithoutAuth marks a context so requests carrying it bypass the token
// transport entirely. The refresh call itself uses it, since refreshing
// must not wait on (or trigger) another refresh.
func WithoutAuth(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipAuthKey, true)
}

// Refresher mints a new access token from the persisted refresh credential.
// The auth service implements it; the transport never touches the session
// store directly (single-writer contract).
type Refresher interface {
	Refresh(ctx context.Context) error
}

// tokenTransport injects the current bearer token into outgoing requests.
//
// Two rules close the gap between token expiry and refresh completion:
//   - requests issued while a refresh is in flight wait for it and then go
//     out with the new token, instead of being sent with a stale one;
//   - a request rejected as unauthorized triggers exactly one silent refresh
//     and one replay.
type tokenTransport struct {
	base    http.RoundTripper
	session session.Reader
	log     logging.Logger

	mu         sync.Mutex
	cond       *sync.Cond
	refreshing bool
	refresher  Refresher
}

func newTokenTransport(base http.RoundTripper, sess session.Reader, log logging.Logger) *tokenTransport {
	t := &tokenTransport{base: base, session: sess, log: log}
	t.cond = sync.NewCond(&t.mu)
	return t
}

func (t *tokenTransport) setRefresher(r Refresher) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.refresher = r
}

func (t *tokenTransport) hasRefresher() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.refresher != nil
}

func (t *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if ctx.Value(skipAuthKey) != nil {
		return t.base.RoundTrip(req)
	}

	t.awaitRefresh()

	if t.hasRefresher() && t.session.ExpiresWithin(refreshLeeway) {
		// Best effort: if the proactive refresh fails, the request still
		// goes out with the current token and fails downstream if stale.
		if err := t.refreshOnce(ctx, t.session.AccessToken()); err != nil {
			t.log.Warn(ctx, "proactive token refresh failed", "error", err)
		}
	}

	token := t.session.AccessToken()

	out := req.Clone(ctx)
	if token != "" {
		out.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized || token == "" || !t.hasRefresher() {
		return resp, nil
	}

	// The token was rejected mid-session: refresh once and replay. Refreshing
	// is only valid while the store still holds the token this request was
	// sent with; a logout or a concurrent refresh supersedes the rejection.
	retry, ok := rewindRequest(req)
	if !ok {
		return resp, nil
	}

	switch current := t.session.AccessToken(); {
	case current == "":
		// Logged out while this request was in flight; nothing to refresh.
		return resp, nil
	case current != token:
		// Someone else already refreshed; replay with the newer token.
		drainAndClose(resp.Body)
		retry.Header.Set(common.AuthorizationHeader, common.BearerPrefix+current)
		return t.base.RoundTrip(retry)
	}

	if rerr := t.refreshOnce(ctx, token); rerr != nil {
		t.log.Warn(ctx, "token refresh after rejection failed", "error", rerr)
		return resp, nil
	}
	fresh := t.session.AccessToken()
	if fresh == "" || fresh == token {
		return resp, nil
	}

	drainAndClose(resp.Body)
	retry.Header.Set(common.AuthorizationHeader, common.BearerPrefix+fresh)
	return t.base.RoundTrip(retry)
}

// awaitRefresh blocks while another goroutine is refreshing the token.
func (t *tokenTransport) awaitRefresh() {
	t.mu.Lock()
	for t.refreshing {
		t.cond.Wait()
	}
	t.mu.Unlock()
}

// refreshOnce runs a single refresh on behalf of a caller whose request went
// out with the stale token. Callers that overlap an in-flight refresh wait
// for it; callers whose token has already been replaced in the store skip
// refreshing and use the store's current state.
func (t *tokenTransport) refreshOnce(ctx context.Context, stale string) error {
	t.mu.Lock()
	for t.refreshing {
		t.cond.Wait()
	}
	if t.session.AccessToken() != stale {
		t.mu.Unlock()
		return nil
	}
	refresher := t.refresher
	t.refreshing = true
	t.mu.Unlock()

	var err error
	if refresher != nil {
		err = refresher.Refresh(WithoutAuth(ctx))
	}

	t.mu.Lock()
	t.refreshing = false
	t.cond.Broadcast()
	t.mu.Unlock()
	return err
}

// rewindRequest clones req with a replayable body. Requests whose body
// cannot be re-read are not replayed.
func rewindRequest(req *http.Request) (*http.Request, bool) {
	r2 := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return r2, true
	}
	if req.GetBody == nil {
		return nil, false
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, false
	}
	r2.Body = body
	return r2, true
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
