package config

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Auth     Auth
	Firebase Firebase
	CORS     CORS

	GeminiApiKey string
}

type Server struct {
	Port string
}

type Auth struct {
	SecretKey          string
	AccessTokenMinutes int
	AdminEmails        []string
}

type Firebase struct {
	// ServiceAccountJSON holds the service account key inline (deploy targets
	// inject it via env); CredentialsFile is the local-dev fallback.
	ServiceAccountJSON string
	CredentialsFile    string
}

type CORS struct {
	AllowOrigins []string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("ACCESS_TOKEN_EXPIRE_MINUTES", 30)
	viper.SetDefault("FIREBASE_CREDENTIALS_FILE", "firebase-service-account-key.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")

	config.Auth.SecretKey = viper.GetString("SECRET_KEY")
	config.Auth.AccessTokenMinutes = viper.GetInt("ACCESS_TOKEN_EXPIRE_MINUTES")
	config.Auth.AdminEmails = splitCSV(viper.GetString("ADMIN_EMAILS"))

	config.Firebase.ServiceAccountJSON = viper.GetString("FIREBASE_SERVICE_ACCOUNT_KEY_JSON")
	config.Firebase.CredentialsFile = viper.GetString("FIREBASE_CREDENTIALS_FILE")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	// Local dev frontends plus whatever FRONTEND_URL points at in production.
	origins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
		"http://localhost:5173",
		"http://localhost:5174",
	}
	if frontend := viper.GetString("FRONTEND_URL"); frontend != "" && !contains(origins, frontend) {
		origins = append(origins, frontend)
	}
	config.CORS.AllowOrigins = origins

	log.Info().Str("port", config.Server.Port).Strs("origins", config.CORS.AllowOrigins).Msg("Config loaded")
	return &config, nil
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
