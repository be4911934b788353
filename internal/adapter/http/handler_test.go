package httpadapter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ad-exchange/internal/adapter/memory"
	"ad-exchange/internal/adapter/usecase"
	"ad-exchange/internal/core/domain"
	"ad-exchange/internal/core/port"
)

const testSecret = "test-secret"

// stillTicker never ticks, so sessions stay at the start of the countdown.
type stillTicker struct{}

func (stillTicker) C() <-chan time.Time { return nil }
func (stillTicker) Stop()               {}

func newTestServer(t *testing.T, withAds bool) (*httptest.Server, *Authenticator) {
	t.Helper()
	profiles, campaigns, ads := memory.DemoData()
	if !withAds {
		ads = nil
	}
	pp := memory.NewProfileProvider(profiles...)
	pp.Grant(memory.DemoAdvertiserID, domain.RoleAdmin)
	logger := slog.New(slog.DiscardHandler)

	viewing := usecase.NewViewingUseCase(memory.NewAdRepository(campaigns, ads), pp, memory.NewViewCounter(), logger,
		usecase.WithTicker(func(time.Duration) usecase.Ticker { return stillTicker{} }),
	)
	dashboard := usecase.NewDashboardUseCase(pp, logger, usecase.RoleCheckTiming{
		Wait: time.Second, Timeout: time.Second, TTL: time.Minute,
	})
	auth := NewAuthenticator(testSecret, "ad-exchange")

	srv := httptest.NewServer(NewHandler(viewing, dashboard, auth, logger).Router())
	t.Cleanup(srv.Close)
	return srv, auth
}

func do(t *testing.T, method, url, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set(DeviceHeader, "test-device")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func issue(t *testing.T, auth *Authenticator, userID string) string {
	t.Helper()
	token, err := auth.Issue(userID, time.Hour)
	require.NoError(t, err)
	return token
}

func TestUnauthenticatedRedirectsToLogin(t *testing.T) {
	srv, _ := newTestServer(t, true)

	for _, token := range []string{"", "not-a-jwt"} {
		resp := do(t, http.MethodGet, srv.URL+"/api/v1/dashboard", token)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		body := decode[errorResponse](t, resp)
		assert.Equal(t, "/auth", body.Redirect)
	}

	other := NewAuthenticator("another-secret", "ad-exchange")
	resp := do(t, http.MethodGet, srv.URL+"/api/v1/dashboard", issue(t, other, memory.DemoViewerID))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestExpiredToken(t *testing.T) {
	srv, auth := newTestServer(t, true)
	auth.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token := issue(t, auth, memory.DemoViewerID)
	auth.now = time.Now

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/dashboard", token)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestDashboardEndpoint(t *testing.T) {
	srv, auth := newTestServer(t, true)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/dashboard", issue(t, auth, memory.DemoViewerID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d := decode[port.Dashboard](t, resp)
	assert.Equal(t, port.DashboardReady, d.State)
	assert.Equal(t, "Demo Viewer", d.Greeting)
	assert.Equal(t, domain.RoleCheckDenied, d.Admin)
	assert.Len(t, d.Sections, 4)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/dashboard", issue(t, auth, memory.DemoAdvertiserID))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	d = decode[port.Dashboard](t, resp)
	assert.Equal(t, domain.RoleCheckGranted, d.Admin)
	require.Len(t, d.Sections, 5)
	assert.Equal(t, "/admin", d.Sections[4].Path)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/dashboard", issue(t, auth, "unknown-user"))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestViewAdsSessionLifecycle(t *testing.T) {
	srv, auth := newTestServer(t, true)
	token := issue(t, auth, memory.DemoViewerID)
	base := srv.URL + "/api/v1/view-ads/sessions"

	resp := do(t, http.MethodPost, base, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	v := decode[port.SessionView](t, resp)
	require.NotEmpty(t, v.SessionID)
	assert.Equal(t, port.PhaseWatching, v.Phase)
	require.NotNil(t, v.Ad)
	assert.Equal(t, domain.WatchSeconds, v.RemainingSeconds)

	resp = do(t, http.MethodGet, base+"/"+v.SessionID, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// the countdown has not run, so claiming is refused
	resp = do(t, http.MethodPost, base+"/"+v.SessionID+"/claim", token)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, domain.ErrNotClaimable.Error(), decode[errorResponse](t, resp).Error)

	resp = do(t, http.MethodPost, base+"/"+v.SessionID+"/interstitial/dismiss", token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// still at 30s, switching is allowed
	resp = do(t, http.MethodPost, base+"/"+v.SessionID+"/next", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// sessions are private to their viewer
	resp = do(t, http.MethodGet, base+"/"+v.SessionID, issue(t, auth, memory.DemoAdvertiserID))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, http.MethodDelete, base+"/"+v.SessionID, token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = do(t, http.MethodGet, base+"/"+v.SessionID, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestViewAdsEmptyState(t *testing.T) {
	srv, auth := newTestServer(t, false)
	token := issue(t, auth, memory.DemoViewerID)

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/view-ads/sessions", token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	v := decode[port.SessionView](t, resp)
	assert.Equal(t, port.PhaseEmpty, v.Phase)
	assert.Nil(t, v.Claim)
	assert.Equal(t, "/dashboard", v.ReturnTo)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/view-ads/sessions/"+v.SessionID+"/claim", token)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t, true)

	resp := do(t, http.MethodGet, srv.URL+"/healthz", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodGet, srv.URL+"/metrics", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

type panickingDashboard struct{}

func (panickingDashboard) Dashboard(context.Context, domain.Viewer) (*port.Dashboard, error) {
	panic("dashboard exploded")
}

func TestPanicsAreRecoveredAndCounted(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	pp := memory.NewProfileProvider()
	viewing := usecase.NewViewingUseCase(memory.NewAdRepository(nil, nil), pp, memory.NewViewCounter(), logger)
	auth := NewAuthenticator(testSecret, "")
	srv := httptest.NewServer(NewHandler(viewing, panickingDashboard{}, auth, logger).Router())
	t.Cleanup(srv.Close)

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/dashboard", "500")
	before := testutil.ToFloat64(counter)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/dashboard", issue(t, auth, memory.DemoViewerID))
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(counter) == before+1
	}, time.Second, time.Millisecond)
}
