package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
)

// ProjectsClient talks to the project and quotation endpoints.
type ProjectsClient struct {
	*Resource[models.Project]
	t *transport.Client
}

// NewProjectsClient creates the projects client.
func NewProjectsClient(t *transport.Client) *ProjectsClient {
	return &ProjectsClient{
		Resource: NewResource[models.Project](t, "/projects", "Project"),
		t:        t,
	}
}

// Duplicate clones a project (with its line items, without its status
// history) and returns the new draft.
func (c *ProjectsClient) Duplicate(ctx context.Context, id int64) (*models.Project, error) {
	var out models.Project
	path := fmt.Sprintf("/projects/%d/duplicate/", id)
	if err := c.t.DoJSON(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return &out, nil
}

// UpdateStatus moves a project along its lifecycle.
func (c *ProjectsClient) UpdateStatus(ctx context.Context, id int64, status string) (*models.Project, error) {
	return c.Patch(ctx, id, map[string]interface{}{"status": status})
}

// Quotation fetches the server-computed quotation snapshot for one scope
// ("open" or "working").
func (c *ProjectsClient) Quotation(ctx context.Context, id int64, scope string) (*models.Quotation, error) {
	params := url.Values{}
	params.Set("scope", scope)

	var out models.Quotation
	path := fmt.Sprintf("/projects/%d/quotation/", id)
	if err := c.t.DoJSON(ctx, http.MethodGet, path, params, nil, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return &out, nil
}
