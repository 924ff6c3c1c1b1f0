package config

import (
	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Resolver    ResolverConfig
	Auth        AuthConfig
	Storage     StorageConfig
	BatchImport BatchImportConfig
	Telegram    TelegramConfig
}

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"5250"`

	// Origins allowed to call the API from a browser
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
}

type DatabaseConfig struct {
	Path string `env:"DB_PATH" envDefault:"database/boardscout.db"`
}

type ResolverConfig struct {
	// Maximum time a single lookup strategy may spend against the store (in seconds)
	StrategyTimeout int `env:"RESOLVER_STRATEGY_TIMEOUT" envDefault:"5"`

	// Whether the compiled-in demo catalog participates in resolution
	EnableSeedCatalog bool `env:"RESOLVER_ENABLE_SEED_CATALOG" envDefault:"true"`

	// Whether missing views/impressions are synthesized at read time
	CompleteOnRead bool `env:"RESOLVER_COMPLETE_ON_READ" envDefault:"true"`
}

type AuthConfig struct {
	JWTSecret     string `env:"JWT_SECRET" envDefault:"keyforjwt"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS" envDefault:"24"`
	BcryptCost    int    `env:"BCRYPT_COST" envDefault:"10"`

	// Redis-backed login rate limiting; disabled when RedisAddr is empty
	RedisAddr     string `env:"REDIS_ADDR"`
	LoginAttempts int    `env:"LOGIN_ATTEMPTS_PER_MINUTE" envDefault:"10"`
}

// StorageConfig holds the image storage settings.
type StorageConfig struct {
	Bucket string `env:"S3_IMAGE_BUCKET" envDefault:"boardscout-images"`
	Region string `env:"AWS_REGION" envDefault:"ap-south-1"`

	// Maximum images accepted per listing submission
	MaxImages int `env:"MAX_IMAGES_PER_LISTING" envDefault:"5"`

	// Maximum size of a single image in megabytes
	MaxImageSizeMB int `env:"MAX_IMAGE_SIZE_MB" envDefault:"5"`
}

type BatchImportConfig struct {
	// Maximum number of billboards to accumulate before processing
	MaxBatchSize int `env:"BATCH_MAX_SIZE" envDefault:"100"`

	// Number of concurrent batch processors
	ProcessorCount int `env:"BATCH_PROCESSOR_COUNT" envDefault:"2"`

	// Maximum number of retries for failed batches
	MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

	// Delay between retries in seconds
	RetryDelay int `env:"BATCH_RETRY_DELAY" envDefault:"5"`
}

type TelegramConfig struct {
	Enabled  bool   `env:"TELEGRAM_ENABLED" envDefault:"false"`
	BotToken string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID   string `env:"TELEGRAM_CHAT_ID"`

	// Optional notification filters; zero values disable the constraint
	MinPrice int      `env:"TELEGRAM_MIN_PRICE" envDefault:"0"`
	MaxPrice int      `env:"TELEGRAM_MAX_PRICE" envDefault:"0"`
	Types    []string `env:"TELEGRAM_TYPES" envSeparator:","`
	Cities   []string `env:"TELEGRAM_CITIES" envSeparator:","`
}

func LoadConfig() (*Config, error) {
	// A missing .env file is fine; the process environment still applies
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
