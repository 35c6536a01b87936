package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
)

// CustomersClient talks to the customer intake and workflow endpoints.
type CustomersClient struct {
	*Resource[models.Customer]
	t *transport.Client
}

// NewCustomersClient creates the customers client.
func NewCustomersClient(t *transport.Client) *CustomersClient {
	return &CustomersClient{
		Resource: NewResource[models.Customer](t, "/customers", "Customer"),
		t:        t,
	}
}

// UpdateState moves a customer to another workflow stage.
func (c *CustomersClient) UpdateState(ctx context.Context, id int64, state string) (*models.Customer, error) {
	return c.Patch(ctx, id, map[string]interface{}{"state": state})
}

// UploadRequirementDocument uploads one requirement file for a customer
// using multipart encoding.
func (c *CustomersClient) UploadRequirementDocument(ctx context.Context, id int64, fileName string, file io.Reader) (*models.RequirementDocument, error) {
	var out models.RequirementDocument
	path := fmt.Sprintf("/customers/%d/documents/", id)
	if err := c.t.Upload(ctx, path, "file", fileName, file, nil, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return &out, nil
}

// Documents lists the requirement documents uploaded for a customer.
func (c *CustomersClient) Documents(ctx context.Context, id int64) ([]models.RequirementDocument, error) {
	var out []models.RequirementDocument
	path := fmt.Sprintf("/customers/%d/documents/", id)
	if err := c.t.DoJSON(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return out, nil
}
