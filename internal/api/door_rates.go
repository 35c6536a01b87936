package api

import (
	"context"
	"net/http"
	"net/url"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
	"kitchenfab_admin/pkg/utils"
)

// DoorRatesClient talks to the door finish rate endpoints.
type DoorRatesClient struct {
	*Resource[models.DoorRate]
	t *transport.Client
}

// NewDoorRatesClient creates the door rates client.
func NewDoorRatesClient(t *transport.Client) *DoorRatesClient {
	return &DoorRatesClient{
		Resource: NewResource[models.DoorRate](t, "/door-finish-rates", "Door rate"),
		t:        t,
	}
}

// ToggleActive activates or deactivates a rate row.
func (c *DoorRatesClient) ToggleActive(ctx context.Context, id int64, active bool) (*models.DoorRate, error) {
	return c.Patch(ctx, id, map[string]interface{}{"is_active": active})
}

// BulkUpdateRates applies a price revision to many rates at once and returns
// the updated rows.
func (c *DoorRatesClient) BulkUpdateRates(ctx context.Context, updates []models.BulkRateUpdate) ([]models.DoorRate, error) {
	var out []models.DoorRate
	payload := map[string]interface{}{"rates": updates}
	if err := c.t.DoJSON(ctx, http.MethodPost, "/door-finish-rates/bulk-update/", nil, payload, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return out, nil
}

// RateHistory returns the superseded rate rows for one material, newest first.
func (c *DoorRatesClient) RateHistory(ctx context.Context, materialID int64) ([]models.DoorRateHistoryEntry, error) {
	params := url.Values{}
	params.Set("material", utils.Int64ToStr(materialID))

	var out []models.DoorRateHistoryEntry
	if err := c.t.DoJSON(ctx, http.MethodGet, "/door-finish-rates/history/", params, nil, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return out, nil
}
