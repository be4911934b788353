package domain

import "errors"

var (
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrCampaignExhausted = errors.New("campaign budget exhausted")
	ErrSessionNotFound   = errors.New("viewing session not found")
	ErrNoAdAvailable     = errors.New("no ads available")
	ErrNotClaimable      = errors.New("ad is not claimable yet")
	ErrAlreadyClaimed    = errors.New("ad already claimed")
	ErrClaimInFlight     = errors.New("claim already in progress")
	ErrSwitchLocked      = errors.New("cannot load a different ad while watching")
	ErrInterstitialOpen  = errors.New("sponsor message must be dismissed first")
	ErrNoInterstitial    = errors.New("no sponsor message to dismiss")
)
