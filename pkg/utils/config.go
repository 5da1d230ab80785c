package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Email     EmailConfig
	OTP       OTPConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type JWTConfig struct {
	Secret       string
	ExpiryDays   int
	CookieSecure bool
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type OTPConfig struct {
	ExpiryMinutes int
}

type CORSConfig struct {
	ClientURL string
}

type RateLimitConfig struct {
	Requests      int
	WindowMinutes int
	OTPRequests   int
	OTPWindowMin  int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("MONGODB_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGODB_NAME", "notes")
	viper.SetDefault("JWT_EXPIRY_DAYS", 7)
	viper.SetDefault("COOKIE_SECURE", false)
	viper.SetDefault("OTP_EXPIRY_MINUTES", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CLIENT_URL", "http://localhost:5173")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_WINDOW_MINUTES", 15)
	viper.SetDefault("OTP_RATE_LIMIT_REQUESTS", 5)
	viper.SetDefault("OTP_RATE_LIMIT_WINDOW_MINUTES", 15)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			URI:  viper.GetString("MONGODB_URI"),
			Name: viper.GetString("MONGODB_NAME"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			ExpiryDays:   viper.GetInt("JWT_EXPIRY_DAYS"),
			CookieSecure: viper.GetBool("COOKIE_SECURE"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
		},
		OTP: OTPConfig{
			ExpiryMinutes: viper.GetInt("OTP_EXPIRY_MINUTES"),
		},
		CORS: CORSConfig{
			ClientURL: viper.GetString("CLIENT_URL"),
		},
		RateLimit: RateLimitConfig{
			Requests:      viper.GetInt("RATE_LIMIT_REQUESTS"),
			WindowMinutes: viper.GetInt("RATE_LIMIT_WINDOW_MINUTES"),
			OTPRequests:   viper.GetInt("OTP_RATE_LIMIT_REQUESTS"),
			OTPWindowMin:  viper.GetInt("OTP_RATE_LIMIT_WINDOW_MINUTES"),
		},
	}

	return config, nil
}
