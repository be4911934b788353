package port

import (
	"context"

	"ad-exchange/internal/core/domain"
)

// ViewingUseCase defines the view-ads flow. This interface is the primary
// port for the HTTP adapter. Every method is scoped to the viewer; a session
// started by another viewer is reported as domain.ErrSessionNotFound.
type ViewingUseCase interface {
	// StartSession loads the viewer's counter and the first eligible ad.
	// A session is returned even when no ad is available, in which case
	// its phase is PhaseEmpty.
	StartSession(ctx context.Context, viewer domain.Viewer) (*SessionView, error)

	// Session returns the current state of a session.
	Session(ctx context.Context, viewer domain.Viewer, sessionID string) (*SessionView, error)

	// LoadDifferentAd replaces the displayed ad. It fails with
	// domain.ErrSwitchLocked while the countdown is running.
	LoadDifferentAd(ctx context.Context, viewer domain.Viewer, sessionID string) (*SessionView, error)

	// Claim settles the reward for the displayed ad. Only one claim per
	// session can be in flight; a concurrent call fails with
	// domain.ErrClaimInFlight.
	Claim(ctx context.Context, viewer domain.Viewer, sessionID string) (*ClaimResult, error)

	// DismissInterstitial closes the sponsor message and loads the next ad.
	DismissInterstitial(ctx context.Context, viewer domain.Viewer, sessionID string) (*SessionView, error)

	// CloseSession stops the session's timers and forgets it.
	CloseSession(ctx context.Context, viewer domain.Viewer, sessionID string) error
}

// Phase is the externally visible state of a viewing session.
type Phase string

const (
	PhaseWatching     Phase = "watching"
	PhaseClaimable    Phase = "claimable"
	PhaseClaiming     Phase = "claiming"
	PhaseClaimed      Phase = "claimed"
	PhaseInterstitial Phase = "interstitial"
	PhaseEmpty        Phase = "empty"
)

// SessionView is a DTO describing what the view-ads screen shows.
type SessionView struct {
	SessionID        string            `json:"session_id"`
	Phase            Phase             `json:"phase"`
	Credits          int64             `json:"credits"`
	Ad               *AdView           `json:"ad,omitempty"`
	RemainingSeconds int               `json:"remaining_seconds"`
	Claim            *ClaimControl     `json:"claim,omitempty"`
	CanLoadDifferent bool              `json:"can_load_different"`
	Interstitial     *InterstitialView `json:"interstitial,omitempty"`
	AdsViewed        int64             `json:"ads_viewed"`
	Message          string            `json:"message,omitempty"`
	ReturnTo         string            `json:"return_to,omitempty"`
}

// AdView is the displayed ad.
type AdView struct {
	ID           int64  `json:"id"`
	CampaignID   int64  `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	TargetURL    string `json:"target_url"`
	ImageURL     string `json:"image_url"`
}

// ClaimControl describes the claim button.
type ClaimControl struct {
	Enabled bool   `json:"enabled"`
	Label   string `json:"label"`
}

// InterstitialView is the sponsor message shown on the cadence boundary.
type InterstitialView struct {
	Title     string `json:"title"`
	Message   string `json:"message"`
	AdsViewed int64  `json:"ads_viewed"`
}

// ClaimResult is returned after a successful claim.
type ClaimResult struct {
	Reward       int64        `json:"reward"`
	Balance      int64        `json:"balance"`
	AdsViewed    int64        `json:"ads_viewed"`
	Interstitial bool         `json:"interstitial"`
	Message      string       `json:"message"`
	Session      *SessionView `json:"session"`
}
