// Package client talks to the external catalog backend over REST. The
// backend owns the buddies and admins collections; this side only holds
// snapshots.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ball-buddies/storefront/internal/fetch"
	"github.com/ball-buddies/storefront/internal/models"
)

// Catalog is a REST client for the buddies and admins collections.
type Catalog struct {
	baseURL string
	client  *http.Client
}

func NewCatalog(baseURL string, client *http.Client) *Catalog {
	if client == nil {
		client = http.DefaultClient
	}
	return &Catalog{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// BuddiesURL returns the locator of the buddies collection, for use as a
// fetcher target.
func (c *Catalog) BuddiesURL() string {
	return c.baseURL + "/buddies"
}

// Buddies retrieves the full catalog snapshot.
func (c *Catalog) Buddies(ctx context.Context) ([]models.Buddy, error) {
	var buddies []models.Buddy
	if err := c.do(ctx, http.MethodGet, "/buddies", nil, &buddies); err != nil {
		return nil, err
	}
	return buddies, nil
}

// CreateBuddy adds a buddy to the catalog and returns the created record.
func (c *Catalog) CreateBuddy(ctx context.Context, b models.Buddy) (models.Buddy, error) {
	var created models.Buddy
	if err := c.do(ctx, http.MethodPost, "/buddies", b, &created); err != nil {
		return models.Buddy{}, err
	}
	return created, nil
}

// BuddyPatch carries a partial update; nil fields are left untouched by the
// backend.
type BuddyPatch struct {
	Name        *string  `json:"name,omitempty"`
	Sport       *string  `json:"sport,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Rarity      *string  `json:"rarity,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
}

// UpdateBuddy applies a partial update and returns the updated record.
func (c *Catalog) UpdateBuddy(ctx context.Context, id string, patch BuddyPatch) (models.Buddy, error) {
	var updated models.Buddy
	if err := c.do(ctx, http.MethodPatch, "/buddies/"+url.PathEscape(id), patch, &updated); err != nil {
		return models.Buddy{}, err
	}
	return updated, nil
}

// DeleteBuddy removes a buddy from the catalog.
func (c *Catalog) DeleteBuddy(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/buddies/"+url.PathEscape(id), nil, nil)
}

// Admins retrieves the admin credential list used by the session guard.
func (c *Catalog) Admins(ctx context.Context) ([]models.Admin, error) {
	var admins []models.Admin
	if err := c.do(ctx, http.MethodGet, "/admins", nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (c *Catalog) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &fetch.StatusError{Code: resp.StatusCode}
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
