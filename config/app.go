package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	Env           string `env:"APP_ENV" default:"dev"`
	DatabaseURL   string `env:"DATABASE_URL,required"`
	JWTSecret     string `env:"JWT_SECRET,required"`
	PaystackURL   string `env:"PAYSTACK_URL" default:"https://api.paystack.co/"`
	PaystackKey   string `env:"PAYSTACK_KEY"`
	PaystackEmail string `env:"PAYSTACK_EMAIL"`
}

// IsTest reports whether the stubbed payment gateway should be used.
func (a App) IsTest() bool { return a.Env == "test" }

func (a App) IsProduction() bool { return a.Env == "production" }
