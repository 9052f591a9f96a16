package config

import (
	env "github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/hopefoundation/charity-backend/pkg/logger"
)

// Config holds every environment-driven setting the server needs. Only this
// struct should be consulted for configuration; no direct env access
// elsewhere.
type Config struct {
	AppEnv  string `env:"APP_ENV,default=dev"`
	Port    string `env:"PORT,default=5000"`
	GinMode string `env:"GIN_MODE,default=release"`

	// DBDriver selects mysql (production) or sqlite (local/dev).
	DBDriver   string `env:"DB_DRIVER,default=mysql"`
	DBHost     string `env:"DB_HOST,default=localhost"`
	DBPort     string `env:"DB_PORT,default=3306"`
	DBUser     string `env:"DB_USER,default=root"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME,default=charity_db"`
	DBPath     string `env:"DB_PATH,default=charity.db"`

	JWTSecret       string `env:"JWT_SECRET,default=charity-dev-secret"`
	JWTExpiresHours int    `env:"JWT_EXPIRES_HOURS,default=168"`

	SMTPHost string `env:"SMTP_HOST,default=smtp.gmail.com"`
	SMTPPort int    `env:"SMTP_PORT,default=587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	TelegramBotToken string `env:"TELEGRAM_BOT_TOKEN"`
	TelegramChatID   string `env:"TELEGRAM_CHAT_ID"`

	UploadDir     string `env:"UPLOAD_DIR,default=uploads"`
	UploadURLPath string `env:"UPLOAD_URL_PATH,default=/uploads"`

	// Seed credentials for the bootstrap admin account.
	AdminUsername string `env:"ADMIN_USERNAME,default=admin"`
	AdminPassword string `env:"ADMIN_PASSWORD,default=admin123"`
	AdminEmail    string `env:"ADMIN_EMAIL,default=admin@hopefoundation.org"`
}

var config *Config

// Load reads an optional dotenv file and then maps the process environment
// onto a Config. An empty path skips the dotenv step.
func Load(path string) error {
	c := &Config{}

	if path != "" {
		logger.Info("loading env file", "path", path)
		if err := godotenv.Load(path); err != nil {
			return errors.Wrap(err, "failed to load configuration file "+path)
		}
	}

	if _, err := env.UnmarshalFromEnviron(c); err != nil {
		return errors.Wrap(err, "failed to map env variables to Config")
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		panic("config is not initialized")
	}
	return config
}
