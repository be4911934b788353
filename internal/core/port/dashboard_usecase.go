package port

import (
	"context"

	"ad-exchange/internal/core/domain"
)

// DashboardUseCase builds the dashboard for an authenticated viewer.
type DashboardUseCase interface {
	// Dashboard returns the sections the viewer can reach. The admin
	// section appears only once the role check has been granted; a failed
	// check is never returned as an error.
	Dashboard(ctx context.Context, viewer domain.Viewer) (*Dashboard, error)
}

// DashboardState tells the client which dashboard variant to render.
type DashboardState string

const (
	DashboardReady           DashboardState = "ready"
	DashboardCountryRequired DashboardState = "country_required"
)

// Dashboard is a DTO for the dashboard screen.
type Dashboard struct {
	State       DashboardState        `json:"state"`
	Greeting    string                `json:"greeting"`
	Credits     int64                 `json:"credits"`
	CountryCode string                `json:"country_code,omitempty"`
	Sections    []Section             `json:"sections,omitempty"`
	Admin       domain.RoleCheckState `json:"admin"`
	QuickStats  QuickStats            `json:"quick_stats"`
}

// Section is an entry point to another screen.
type Section struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// QuickStats mirrors the stats panel on the dashboard.
type QuickStats struct {
	Credits        int64 `json:"credits"`
	CreditsPerView int64 `json:"credits_per_view"`
	ViewingSeconds int   `json:"viewing_seconds"`
}
