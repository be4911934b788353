package configs

// Auth configures bearer token verification. Tokens are HS256 JWTs whose
// subject is the user id.
type Auth struct {
	// JWTSecret has no default; the service refuses to start without it.
	JWTSecret string `env:"JWT_SECRET,required,notEmpty"`
	// Issuer is checked when not empty.
	Issuer string `env:"ISSUER" envDefault:""`
}
