package configs

// Redis configures the view counter store. When Enabled is false the
// counter is kept in process memory.
type Redis struct {
	Enabled   bool   `env:"ENABLED" envDefault:"false"`
	URL       string `env:"URL" envDefault:"redis://localhost:6379/0"`
	DB        int    `env:"DB" envDefault:"0"`
	PoolSize  int    `env:"POOL_SIZE" envDefault:"0"`
	KeyPrefix string `env:"KEY_PREFIX" envDefault:"adx:"`
}
