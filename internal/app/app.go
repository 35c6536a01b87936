package app

import (
	"context"
	"fmt"

	"kitchenfab_admin/internal/api"
	"kitchenfab_admin/internal/config"
	"kitchenfab_admin/internal/models"
	"kitchenfab_admin/internal/notify"
	"kitchenfab_admin/internal/pages"
	"kitchenfab_admin/internal/session"
	"kitchenfab_admin/internal/store"
	"kitchenfab_admin/internal/transport"
	"kitchenfab_admin/pkg/utils"
)

// App assembles the whole client: configuration, session, transport, one API
// client per resource family, and one page controller per admin page. The
// rendering layer holds an App and never constructs the lower layers itself.
type App struct {
	Config   *config.Config
	Session  *session.Manager
	Notifier *notify.Notifier

	Auth          *api.AuthClient
	Materials     *api.MaterialsClient
	DoorRates     *api.DoorRatesClient
	LightingRules *api.LightingRulesClient
	Projects      *api.ProjectsClient
	Customers     *api.CustomersClient
	Brands        *api.BrandsClient
	CabinetTypes  *api.CabinetTypesClient
	Staff         *api.StaffClient

	MaterialsPage     *pages.Controller[models.Material]
	DoorRatesPage     *pages.Controller[models.DoorRate]
	LightingRulesPage *pages.Controller[models.LightingRule]
	ProjectsPage      *pages.Controller[models.Project]
	CustomersPage     *pages.Controller[models.Customer]
	StaffPage         *pages.Controller[models.StaffMember]

	// Dropdown sources for dependent form selects; read-mostly, no page of
	// their own.
	BrandsStore       *store.Store[models.Brand]
	CabinetTypesStore *store.Store[models.CabinetType]
}

// New wires the application graph. confirm supplies the blocking delete
// confirmation; pass nil to skip confirmation (tests do).
func New(cfg *config.Config, confirm pages.Confirmer) *App {
	sessionStore := session.NewFileTokenStore(cfg.TokenFile)
	manager := session.NewManager(sessionStore, cfg.RefreshCheckInterval, cfg.RefreshLeeway)
	httpClient := transport.New(cfg.BaseURL, cfg.HTTPTimeout, manager)
	notifier := notify.New(notify.DefaultTTL)

	a := &App{
		Config:   cfg,
		Session:  manager,
		Notifier: notifier,

		Auth:          api.NewAuthClient(httpClient),
		Materials:     api.NewMaterialsClient(httpClient),
		DoorRates:     api.NewDoorRatesClient(httpClient),
		LightingRules: api.NewLightingRulesClient(httpClient),
		Projects:      api.NewProjectsClient(httpClient),
		Customers:     api.NewCustomersClient(httpClient),
		Brands:        api.NewBrandsClient(httpClient),
		CabinetTypes:  api.NewCabinetTypesClient(httpClient),
		Staff:         api.NewStaffClient(httpClient),
	}

	size := cfg.DefaultPageSize
	a.MaterialsPage = pages.NewController("Material",
		store.New(a.Materials, func(m models.Material) int64 { return m.ID }, size), notifier, confirm)
	a.DoorRatesPage = pages.NewController("Door rate",
		store.New(a.DoorRates, func(r models.DoorRate) int64 { return r.ID }, size), notifier, confirm)
	a.LightingRulesPage = pages.NewController("Lighting rule",
		store.New(a.LightingRules, func(r models.LightingRule) int64 { return r.ID }, size), notifier, confirm)
	a.ProjectsPage = pages.NewController("Project",
		store.New(a.Projects, func(p models.Project) int64 { return p.ID }, size), notifier, confirm)
	a.CustomersPage = pages.NewController("Customer",
		store.New(a.Customers, func(c models.Customer) int64 { return c.ID }, size), notifier, confirm)
	a.StaffPage = pages.NewController("Staff member",
		store.New(a.Staff, func(s models.StaffMember) int64 { return s.ID }, size), notifier, confirm)

	a.BrandsStore = store.New(a.Brands, func(b models.Brand) int64 { return b.ID }, 100)
	a.CabinetTypesStore = store.New(a.CabinetTypes, func(c models.CabinetType) int64 { return c.ID }, 100)

	return a
}

// Start launches background work: the token auto-refresh loop. It returns
// immediately; cancel ctx to stop.
func (a *App) Start(ctx context.Context) {
	a.Session.StartAutoRefresh(ctx, a.Auth)
}

// Login authenticates and stores the session.
func (a *App) Login(ctx context.Context, username, password string) error {
	pair, err := a.Auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	if err := a.Session.SetSession(*pair); err != nil {
		return fmt.Errorf("login succeeded but session could not be stored: %w", err)
	}
	utils.LogInfo("Logged in", map[string]interface{}{"username": a.Session.Username(), "role": a.Session.Role()})
	return nil
}

// Logout revokes the refresh token and clears the session. The local session
// is cleared even when the revoke call fails.
func (a *App) Logout(ctx context.Context) error {
	if token := a.Session.RefreshToken(); token != "" {
		if err := a.Auth.Logout(ctx, token); err != nil {
			utils.LogError(err, "logout: backend revoke failed, clearing local session anyway")
		}
	}
	return a.Session.Clear()
}
