// Package auth sequences sign-in against the external identity provider
// and fans provider state changes out to subscribers.
//
// The provider is consumed through exactly three operations: anonymous
// sign-in, token sign-in, and a subscription to signed-in/signed-out state
// changes. This package does not implement the provider; it only calls it.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dayboard/internal/config"
	"dayboard/internal/logging"
)

// Session is the identity issued by the provider after a successful
// sign-in. UID is the opaque session identity; it is set once per sign-in
// event and never mutated.
type Session struct {
	UID       string    `json:"uid"`
	Anonymous bool      `json:"anonymous"`
	Expiry    time.Time `json:"expiry"`
}

// State is a snapshot of the provider's auth state delivered to
// subscribers. Session is nil when signed out, including after a sign-in
// attempt that failed definitively.
type State struct {
	Session *Session
}

// SignedIn reports whether the state carries a live session.
func (s State) SignedIn() bool { return s.Session != nil }

// Listener receives auth state changes.
type Listener func(State)

// Client is a handle to the identity provider. It serializes its own state
// under a mutex; everything else in the process is single-goroutine.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client

	mu      sync.Mutex
	session *Session
	subs    map[int]Listener
	nextSub int
}

// NewClient constructs a provider client from configuration. The
// configuration must be non-empty and valid; the bootstrap sequence checks
// for the empty (blocked) case before calling this.
func NewClient(cfg config.ProviderConfig) (*Client, error) {
	if cfg.IsEmpty() {
		return nil, fmt.Errorf("auth: provider configuration is empty")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		httpc:   &http.Client{Timeout: 30 * time.Second},
		subs:    make(map[int]Listener),
	}, nil
}

// Subscribe registers a listener for auth state changes and returns a
// cancel func that releases it. The listener is not invoked at
// registration time; it observes the outcome of subsequent sign-in and
// sign-out operations.
func (c *Client) Subscribe(fn Listener) (cancel func()) {
	c.mu.Lock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Session returns the current session, or nil when signed out.
func (c *Client) Session() *Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// SignInWithToken exchanges a pre-issued credential token for a session.
// The resulting state (session on success, signed-out on failure) is
// dispatched to subscribers.
func (c *Client) SignInWithToken(ctx context.Context, token string) (*Session, error) {
	sess, err := c.post(ctx, "/v1/sessions:verifyToken", map[string]string{"token": token})
	c.finish(sess, err, "token")
	return sess, err
}

// SignInAnonymously mints a fresh anonymous session. The resulting state is
// dispatched to subscribers.
func (c *Client) SignInAnonymously(ctx context.Context) (*Session, error) {
	sess, err := c.post(ctx, "/v1/sessions:anonymous", map[string]string{})
	if sess != nil {
		sess.Anonymous = true
	}
	c.finish(sess, err, "anonymous")
	return sess, err
}

// SignOut clears the session and notifies subscribers with a signed-out
// state. Local only; the provider keeps no connection to tear down.
func (c *Client) SignOut() {
	c.mu.Lock()
	c.session = nil
	c.mu.Unlock()
	c.notify(State{})
}

// finish records the attempt outcome and dispatches the resulting state,
// so a registered listener observes every completed attempt.
func (c *Client) finish(sess *Session, err error, kind string) {
	log := logging.Get(logging.CategoryAuth)
	if err != nil {
		log.Warn("sign-in failed", zap.String("kind", kind), zap.Error(err))
		c.notify(State{Session: c.Session()})
		return
	}
	c.mu.Lock()
	c.session = sess
	c.mu.Unlock()
	log.Info("signed in", zap.String("kind", kind), zap.String("uid", sess.UID))
	c.notify(State{Session: sess})
}

func (c *Client) notify(st State) {
	c.mu.Lock()
	fns := make([]Listener, 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}

// sessionResponse is the provider's wire shape for a minted session.
type sessionResponse struct {
	UID       string `json:"uid"`
	ExpiresIn int    `json:"expires_in"`
}

func (c *Client) post(ctx context.Context, path string, body map[string]string) (*Session, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(msg))
	}

	var sr sessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	if sr.UID == "" {
		return nil, fmt.Errorf("provider returned session without uid")
	}

	sess := &Session{UID: sr.UID}
	if sr.ExpiresIn > 0 {
		sess.Expiry = time.Now().Add(time.Duration(sr.ExpiresIn) * time.Second)
	}
	return sess, nil
}
