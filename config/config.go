package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is read from the environment (a .env file is loaded first when
// present, see cmd/app).
type Config struct {
	Port         string
	Symbol       string
	SeedDemoBook bool
	Logging      struct {
		Level  string
		Pretty bool
	}
	Postgres Postgres
}

// Postgres holds the optional journal database settings. An empty Host
// disables the journal entirely and the service runs purely in memory.
type Postgres struct {
	Host        string
	Port        string
	User        string
	Password    string
	DBName      string
	MaxAttempts int
}

func (p Postgres) Enabled() bool {
	return p.Host != ""
}

func (p Postgres) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.DBName,
	)
}

func Load() Config {
	var c Config
	c.Port = getenv("PORT", "8080")
	c.Symbol = getenv("SYMBOL", "DEMO")
	c.SeedDemoBook = getbool("SEED_DEMO_BOOK", false)
	c.Logging.Level = getenv("LOG_LEVEL", "info")
	c.Logging.Pretty = getbool("LOG_PRETTY", false)

	c.Postgres.Host = os.Getenv("POSTGRES_HOST")
	c.Postgres.Port = getenv("POSTGRES_PORT", "5432")
	c.Postgres.User = os.Getenv("POSTGRES_USER")
	c.Postgres.Password = os.Getenv("POSTGRES_PASSWORD")
	c.Postgres.DBName = os.Getenv("POSTGRES_DB")
	c.Postgres.MaxAttempts = getint("MAX_DB_ATTEMPTS", 10)
	return c
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getint(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
