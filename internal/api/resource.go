package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
	"kitchenfab_admin/pkg/utils"
)

// Resource is a generic REST client for one backend resource family. Each
// concrete client is a thin configuration over this factory: a base path, a
// human-readable label for error messages, and its resource-specific extras.
//
// Params and payloads are passed through verbatim; input validation belongs
// to the form layer, not here.
type Resource[T any] struct {
	t        *transport.Client
	basePath string // e.g. "/materials"
	label    string // e.g. "Material", used in normalized error messages
}

// NewResource creates a resource client for one base path.
func NewResource[T any](t *transport.Client, basePath, label string) *Resource[T] {
	return &Resource[T]{t: t, basePath: basePath, label: label}
}

// Label returns the human-readable resource label.
func (r *Resource[T]) Label() string {
	return r.label
}

// List fetches one page of records. The backend may answer with either a
// bare array or a paginated envelope; both are normalized into Page[T].
func (r *Resource[T]) List(ctx context.Context, params url.Values) (models.Page[T], error) {
	var raw json.RawMessage
	if err := r.t.DoJSON(ctx, http.MethodGet, r.basePath+"/", params, nil, &raw); err != nil {
		return models.Page[T]{}, r.wrapErr(err)
	}
	return normalizePage[T](raw)
}

// Get fetches a single record by id.
func (r *Resource[T]) Get(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.t.DoJSON(ctx, http.MethodGet, r.itemPath(id), nil, nil, &out); err != nil {
		return nil, r.wrapErr(err)
	}
	return &out, nil
}

// Create posts a new record and returns the server's copy of it.
func (r *Resource[T]) Create(ctx context.Context, payload interface{}) (*T, error) {
	var out T
	if err := r.t.DoJSON(ctx, http.MethodPost, r.basePath+"/", nil, payload, &out); err != nil {
		return nil, r.wrapErr(err)
	}
	return &out, nil
}

// Update replaces a record (PUT) and returns the server's copy.
func (r *Resource[T]) Update(ctx context.Context, id int64, payload interface{}) (*T, error) {
	var out T
	if err := r.t.DoJSON(ctx, http.MethodPut, r.itemPath(id), nil, payload, &out); err != nil {
		return nil, r.wrapErr(err)
	}
	return &out, nil
}

// Patch applies a partial update and returns the server's copy.
func (r *Resource[T]) Patch(ctx context.Context, id int64, partial interface{}) (*T, error) {
	var out T
	if err := r.t.DoJSON(ctx, http.MethodPatch, r.itemPath(id), nil, partial, &out); err != nil {
		return nil, r.wrapErr(err)
	}
	return &out, nil
}

// Delete removes a record.
func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	if err := r.t.DoJSON(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil); err != nil {
		return r.wrapErr(err)
	}
	return nil
}

func (r *Resource[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d/", r.basePath, id)
}

// wrapErr converts a transport failure into the single normalized error shape
// pages and stores rely on. Non-HTTP failures (timeouts, connection errors)
// pass through wrapped as-is.
func (r *Resource[T]) wrapErr(err error) error {
	var reqErr *transport.RequestError
	if errors.As(err, &reqErr) {
		return utils.NormalizeAPIError(r.label, reqErr.StatusCode, reqErr.Body)
	}
	return err
}

// normalizePage converts either response shape into the Page envelope.
func normalizePage[T any](raw json.RawMessage) (models.Page[T], error) {
	trimmed := firstNonSpace(raw)
	if trimmed == '[' {
		var items []T
		if err := json.Unmarshal(raw, &items); err != nil {
			return models.Page[T]{}, fmt.Errorf("failed to decode list response: %w", err)
		}
		return models.Page[T]{Results: items, Count: len(items)}, nil
	}

	var page models.Page[T]
	if err := json.Unmarshal(raw, &page); err != nil {
		return models.Page[T]{}, fmt.Errorf("failed to decode paginated response: %w", err)
	}
	if page.Results == nil {
		page.Results = []T{}
	}
	return page, nil
}

func firstNonSpace(data []byte) byte {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
