package api

import (
	"context"
	"fmt"
	"net/http"

	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
)

// ResetPasswordResponse carries the temporary password the backend issues
// when an admin resets a staff member's login.
type ResetPasswordResponse struct {
	TemporaryPassword string `json:"temporary_password"`
}

// StaffClient talks to the staff administration endpoints.
type StaffClient struct {
	*Resource[models.StaffMember]
	t *transport.Client
}

// NewStaffClient creates the staff client.
func NewStaffClient(t *transport.Client) *StaffClient {
	return &StaffClient{
		Resource: NewResource[models.StaffMember](t, "/staff", "Staff member"),
		t:        t,
	}
}

// ToggleActive enables or disables a staff login.
func (c *StaffClient) ToggleActive(ctx context.Context, id int64, active bool) (*models.StaffMember, error) {
	return c.Patch(ctx, id, map[string]interface{}{"is_active": active})
}

// ResetPassword asks the backend to issue a temporary password for a staff
// member. Only roles the backend authorizes may call this.
func (c *StaffClient) ResetPassword(ctx context.Context, id int64) (*ResetPasswordResponse, error) {
	var out ResetPasswordResponse
	path := fmt.Sprintf("/staff/%d/reset-password/", id)
	if err := c.t.DoJSON(ctx, http.MethodPost, path, nil, nil, &out); err != nil {
		return nil, c.wrapErr(err)
	}
	return &out, nil
}
