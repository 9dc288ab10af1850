package config

import (
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey string `envconfig:"API_KEY"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret      string `envconfig:"ACCESS_SECRET"`
		RefreshSecret     string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin   int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin  int    `envconfig:"REFRESH_EXPIRE_MIN"`
		RememberExpireMin int    `envconfig:"REMEMBER_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	Upstream struct {
		BookingsURL    string `envconfig:"BOOKINGS_URL"`
		LibrariesURL   string `envconfig:"LIBRARIES_URL"`
		FacilitiesURL  string `envconfig:"FACILITIES_URL"`
		ResourcesURL   string `envconfig:"RESOURCES_URL"`
		LoginURL       string `envconfig:"LOGIN_URL"`
		TimeoutSeconds int    `envconfig:"TIMEOUT_SECONDS"`
		// ClockOffsetHours recovers wall-clock times from spreadsheet
		// timestamps serialized against the 1899-12-30 epoch in UTC.
		ClockOffsetHours int `envconfig:"CLOCK_OFFSET_HOURS"`
	} `envconfig:"UPSTREAM"`

	Refresh struct {
		IntervalSeconds int  `envconfig:"INTERVAL_SECONDS"`
		AutoStart       bool `envconfig:"AUTO_START"`
	} `envconfig:"REFRESH"`

	Archive struct {
		S3 struct {
			Enable    bool   `envconfig:"ENABLE"`
			Region    string `envconfig:"REGION"`
			Bucket    string `envconfig:"BUCKET"`
			AccessKey string `envconfig:"ACCESS_KEY"`
			SecretKey string `envconfig:"SECRET_KEY"`
			Endpoint  string `envconfig:"ENDPOINT"`
			Prefix    string `envconfig:"PREFIX"`
		} `envconfig:"S3"`
	} `envconfig:"ARCHIVE"`

	Kafka struct {
		Enable  bool     `envconfig:"ENABLE"`
		Brokers []string `envconfig:"BROKERS"`
		Topic   string   `envconfig:"TOPIC"`
	} `envconfig:"KAFKA"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	}
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

func Init() error {
	var err error

	once.Do(func() {
		err = godotenv.Load(".env")
		if err != nil {
			log.Warn().Err(err).Msg("Could not load .env file, continuing with existing environment variables")
		} else {
			log.Info().Msg("Successfully loaded variables from .env file into environment")
		}

		err = envconfig.Process("", &conf)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to process environment variables")
		}

		initialized = true

		log.Info().Msg("Service configuration initialized successfully")
	})

	if err != nil {
		return fmt.Errorf("loading .env file: %w", err)
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize configuration")
		}
	}

	return &conf
}
