package configs

import "time"

// Viewing holds the timing of the view-ads flow and the dashboard role
// check.
type Viewing struct {
	TickInterval     time.Duration `env:"TICK_INTERVAL" envDefault:"1s"`
	ClaimLatency     time.Duration `env:"CLAIM_LATENCY" envDefault:"500ms"`
	AdvanceDelay     time.Duration `env:"ADVANCE_DELAY" envDefault:"1s"`
	LoadTimeout      time.Duration `env:"LOAD_TIMEOUT" envDefault:"5s"`
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	RoleCheckWait    time.Duration `env:"ROLE_CHECK_WAIT" envDefault:"2s"`
	RoleCheckTimeout time.Duration `env:"ROLE_CHECK_TIMEOUT" envDefault:"10s"`
	RoleCheckTTL     time.Duration `env:"ROLE_CHECK_TTL" envDefault:"1m"`
}
