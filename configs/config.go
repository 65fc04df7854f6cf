package configs

import "os"

// Config carries everything read from the environment. ExitOnDBError is the
// single switch for startup error policy: outside production an unreachable
// database kills the process, in production the service starts anyway and
// reports the state through /api/status.
type Config struct {
	Port           string
	MongoURI       string
	DBName         string
	AllowedOrigins string
	Env            string
	ExitOnDBError  bool
}

func Load() Config {
	env := getEnv("APP_ENV", "development")
	return Config{
		Port:           getEnv("PORT", "5000"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:         getEnv("DB_NAME", "portfolio"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:3001"),
		Env:            env,
		ExitOnDBError:  env != "production",
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
