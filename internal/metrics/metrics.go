package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Claims counts claim attempts partitioned by outcome.
	Claims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adx_claims_total",
			Help: "Total number of reward claims by outcome",
		},
		[]string{"outcome"},
	)

	// CreditsAwarded sums credits paid out to viewers.
	CreditsAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adx_credits_awarded_total",
			Help: "Total number of credits awarded for ad views",
		},
	)

	// CampaignsCompleted counts campaigns whose budget ran out on a claim.
	CampaignsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adx_campaigns_completed_total",
			Help: "Total number of campaigns completed by budget exhaustion",
		},
	)

	// Interstitials counts sponsor messages shown.
	Interstitials = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "adx_interstitials_total",
			Help: "Total number of sponsor interstitials shown",
		},
	)

	// ActiveSessions is the number of open viewing sessions.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "adx_viewing_sessions_active",
			Help: "Number of open ad viewing sessions",
		},
	)

	// RoleChecks counts resolved role checks by state.
	RoleChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adx_role_checks_total",
			Help: "Total number of resolved role checks by state",
		},
		[]string{"state"},
	)
)

// Claim outcomes.
const (
	OutcomeOK           = "ok"
	OutcomeInFlight     = "in_flight"
	OutcomeNotClaimable = "not_claimable"
	OutcomeError        = "error"
)
