// Package store provides the handle and path scheme for the per-user
// document store. Collection paths are namespaced by app identifier and
// session identity; no reads, writes, or subscriptions run against the
// store yet — the panels that would use them are still placeholders.
package store

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"dayboard/internal/config"
)

// CollectionPath derives the namespaced path for one of a user's
// collections: apps/{appID}/users/{uid}/{collection}.
func CollectionPath(appID, uid, collection string) string {
	return fmt.Sprintf("apps/%s/users/%s/%s",
		segment(appID), segment(uid), segment(collection))
}

// segment makes a value safe for use as a single path segment.
func segment(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return strings.ReplaceAll(v, "/", "_")
}

// Client is a handle to the document store endpoint. It carries the
// connection details the future panel implementations will need; nothing
// dials it today.
type Client struct {
	baseURL string
	appID   string
	httpc   *http.Client
}

// NewClient constructs a store handle. An empty base URL is allowed: the
// handle still constructs paths, it just has nowhere to send them.
func NewClient(cfg config.StoreConfig, appID string) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		appID:   appID,
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Collection returns the path of the named collection for a user.
func (c *Client) Collection(uid, name string) string {
	return CollectionPath(c.appID, uid, name)
}

// URL returns the absolute endpoint URL for a user's collection, or just
// the path when no base URL is configured.
func (c *Client) URL(uid, name string) string {
	p := c.Collection(uid, name)
	if c.baseURL == "" {
		return p
	}
	return c.baseURL + "/" + p
}
