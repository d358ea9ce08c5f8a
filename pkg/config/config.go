package config

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

type Config struct {
	Settings Settings
}

// Settings is the typed view of the environment.
type Settings struct {
	APIAddress string `env:"API_ADDRESS,default=:8080"`
	LogFormat  string `env:"LOG_FORMAT,default=text"`
	Timezone   string `env:"APP_TIMEZONE,default=UTC"`

	PostgresAddress  string `env:"POSTGRES_DB_ADDRESS,default=localhost:5432"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB,default=vital"`
	RunMigrations    bool   `env:"RUN_MIGRATIONS,default=false"`
	MigrationsDir    string `env:"MIGRATIONS_DIR,default=./migrations"`

	SessionSecret    string        `env:"SESSION_SECRET"`
	SessionTTL       time.Duration `env:"SESSION_TTL,default=168h"`
	SessionPurgeSpec string        `env:"SESSION_PURGE_SPEC,default=@hourly"`
	CookieSecure     bool          `env:"COOKIE_SECURE,default=false"`
	RedisAddress     string        `env:"REDIS_ADDRESS"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`

	AuthRatePerMinute int `env:"AUTH_RATE_PER_MINUTE,default=10"`
	AuthRateBurst     int `env:"AUTH_RATE_BURST,default=5"`

	AIBaseURL string        `env:"AI_BASE_URL,default=https://api.openai.com/v1"`
	AIAPIKey  string        `env:"AI_API_KEY"`
	AIModel   string        `env:"AI_MODEL,default=gpt-4o-mini"`
	AITimeout time.Duration `env:"AI_TIMEOUT,default=20s"`

	CORSOrigins []string `env:"CORS_ORIGINS,default=http://localhost:5173"`
	MetricsUser string   `env:"METRICS_USER"`
	MetricsPass string   `env:"METRICS_PASS"`
}

func New() *Config {
	once.Do(func() {
		err := godotenv.Load("./configs/.env")
		if err != nil {
			log.Println("no ./configs/.env file, using process environment")
		}
		instance = &Config{}
		if err = envdecode.Decode(&instance.Settings); err != nil {
			log.Fatal("decoding envs error: ", err)
		}
		if instance.Settings.SessionSecret == "" {
			log.Fatal("SESSION_SECRET must be set")
		}
	})
	return instance
}

func (c *Config) GetString(key string) string {
	return os.Getenv(key)
}

// Location resolves APP_TIMEZONE, falling back to UTC.
func (s *Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		log.Printf("unknown APP_TIMEZONE %q, using UTC", s.Timezone)
		return time.UTC
	}
	return loc
}
