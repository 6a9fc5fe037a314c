package config

type App struct {
	Port        string `env:"APP_PORT" default:"8080"`
	DataDir     string `env:"DATA_DIR" default:"data"`
	PublicDir   string `env:"PUBLIC_DIR" default:"public"`
	DatabaseURL string `env:"DATABASE_URL"`
	MigratePath string `env:"MIGRATE_PATH" default:"migrations"`
	Env         string `env:"APP_ENV" default:"dev"`
}
