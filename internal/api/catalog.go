package api

import (
	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/transport"
)

// BrandsClient serves the brand dropdown source. Read-mostly; the generic
// CRUD surface is enough.
type BrandsClient struct {
	*Resource[models.Brand]
}

// NewBrandsClient creates the brands client.
func NewBrandsClient(t *transport.Client) *BrandsClient {
	return &BrandsClient{Resource: NewResource[models.Brand](t, "/brands", "Brand")}
}

// CabinetTypesClient serves the cabinet type dropdown source.
type CabinetTypesClient struct {
	*Resource[models.CabinetType]
}

// NewCabinetTypesClient creates the cabinet types client.
func NewCabinetTypesClient(t *transport.Client) *CabinetTypesClient {
	return &CabinetTypesClient{Resource: NewResource[models.CabinetType](t, "/cabinet-types", "Cabinet type")}
}
