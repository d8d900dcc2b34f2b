package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Integrations
	OpenAI       OpenAIConfig
	Twilio       TwilioConfig
	GoogleSheets GoogleSheetsConfig

	// Dealership specifics
	Concierge ConciergeConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OpenAIConfig struct {
	APIKey string
	APIURL string
}

type TwilioConfig struct {
	AccountSID   string
	AuthToken    string
	WhatsAppFrom string
}

type GoogleSheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// ConciergeConfig carries the dealership knobs: which web domains the
// inventory agents may cite, the financing vector store, and where hot-lead
// alerts go.
type ConciergeConfig struct {
	NewCarsDomain     string
	UsedCarsDomain    string
	VectorStoreID     string
	DealerWhatsApp    string
	OperatorWhatsApp  string
	HotScoreThreshold int
	RateLimitPerMin   int
	StageTimeout      time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI
	cfg.OpenAI.APIKey = expandEnvVar(viper.GetString("openai.api_key"))
	cfg.OpenAI.APIURL = viper.GetString("openai.api_url")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Twilio
	cfg.Twilio.AccountSID = expandEnvVar(viper.GetString("twilio.account_sid"))
	cfg.Twilio.AuthToken = expandEnvVar(viper.GetString("twilio.auth_token"))
	cfg.Twilio.WhatsAppFrom = viper.GetString("twilio.whatsapp_from")
	if sid := viper.GetString("twilio_account_sid"); sid != "" {
		cfg.Twilio.AccountSID = sid
	}
	if token := viper.GetString("twilio_auth_token"); token != "" {
		cfg.Twilio.AuthToken = token
	}

	// Google Sheets
	cfg.GoogleSheets.CredentialsPath = viper.GetString("google_sheets.credentials_path")
	cfg.GoogleSheets.SpreadsheetID = viper.GetString("google_sheets.spreadsheet_id")
	if creds := viper.GetString("google_sheets_credentials"); creds != "" {
		cfg.GoogleSheets.CredentialsPath = creds
	}
	if id := viper.GetString("google_sheets_spreadsheet_id"); id != "" {
		cfg.GoogleSheets.SpreadsheetID = id
	}

	// Concierge
	cfg.Concierge.NewCarsDomain = viper.GetString("concierge.new_cars_domain")
	cfg.Concierge.UsedCarsDomain = viper.GetString("concierge.used_cars_domain")
	cfg.Concierge.VectorStoreID = expandEnvVar(viper.GetString("concierge.vector_store_id"))
	cfg.Concierge.DealerWhatsApp = viper.GetString("concierge.dealer_whatsapp")
	cfg.Concierge.OperatorWhatsApp = viper.GetString("concierge.operator_whatsapp")
	cfg.Concierge.HotScoreThreshold = viper.GetInt("concierge.hot_score_threshold")
	cfg.Concierge.RateLimitPerMin = viper.GetInt("concierge.rate_limit_per_min")
	cfg.Concierge.StageTimeout = viper.GetDuration("concierge.stage_timeout")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("openai.api_url", "https://api.openai.com/v1")

	viper.SetDefault("concierge.new_cars_domain", "globofiat.com.br")
	viper.SetDefault("concierge.used_cars_domain", "globoseminovos.com.br")
	viper.SetDefault("concierge.hot_score_threshold", 100)
	viper.SetDefault("concierge.rate_limit_per_min", 60)
	viper.SetDefault("concierge.stage_timeout", "45s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		// Try lowercase version
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		// Try direct os.Getenv as last resort
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
