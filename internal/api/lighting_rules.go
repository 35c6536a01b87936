package api

import (
	"context"
	"net/url"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
	"kitchenfab_admin/pkg/utils"
)

// LightingRulesClient talks to the lighting rule endpoints.
type LightingRulesClient struct {
	*Resource[models.LightingRule]
}

// NewLightingRulesClient creates the lighting rules client.
func NewLightingRulesClient(t *transport.Client) *LightingRulesClient {
	return &LightingRulesClient{Resource: NewResource[models.LightingRule](t, "/lighting-rules", "Lighting rule")}
}

// ToggleActive activates or deactivates a rule.
func (c *LightingRulesClient) ToggleActive(ctx context.Context, id int64, active bool) (*models.LightingRule, error) {
	return c.Patch(ctx, id, map[string]interface{}{"is_active": active})
}

// ForCustomer returns the rules that apply to one customer: their own rules
// plus the globals.
func (c *LightingRulesClient) ForCustomer(ctx context.Context, customerID int64) ([]models.LightingRule, error) {
	params := url.Values{}
	params.Set("customer", utils.Int64ToStr(customerID))
	params.Set("include_global", "true")

	page, err := c.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}
