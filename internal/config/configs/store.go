package configs

// Store selects the backend for campaigns, ads and profiles.
type Store struct {
	// Driver is "postgres" or "memory". The memory driver serves the demo
	// dataset and loses all changes on restart.
	Driver string `env:"DRIVER" envDefault:"postgres"`
}
