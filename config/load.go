package config

import "os"

func Load() App {
	cfg := App{
		Port:        getenv("APP_PORT", "8080"),
		DataDir:     getenv("DATA_DIR", "data"),
		PublicDir:   getenv("PUBLIC_DIR", "public"),
		DatabaseURL: os.Getenv("DATABASE_URL"), // optional: empty means flat-file stores
		MigratePath: getenv("MIGRATE_PATH", "migrations"),
		Env:         getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
