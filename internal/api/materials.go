package api

import (
	"context"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
)

// MaterialsClient talks to the materials master endpoints.
type MaterialsClient struct {
	*Resource[models.Material]
}

// NewMaterialsClient creates the materials client.
func NewMaterialsClient(t *transport.Client) *MaterialsClient {
	return &MaterialsClient{Resource: NewResource[models.Material](t, "/materials", "Material")}
}

// ToggleActive soft-activates or deactivates a material. The normal flow
// never hard-deletes a material that has rates against it.
func (c *MaterialsClient) ToggleActive(ctx context.Context, id int64, active bool) (*models.Material, error) {
	return c.Patch(ctx, id, map[string]interface{}{"is_active": active})
}
