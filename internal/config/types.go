package config

// Config represents the complete axis-scorer configuration.
type Config struct {
	Service ServiceConfig `yaml:"service"`
	Listen  string        `yaml:"listen"`
	State   StateConfig   `yaml:"state"`
	Front   FrontConfig   `yaml:"front"`
	LLM     LLMConfig     `yaml:"llm"`

	// Secrets are loaded from the environment, never from YAML.
	Secrets Secrets `yaml:"-"`
}

// ServiceConfig defines core service settings.
type ServiceConfig struct {
	Name     string `yaml:"name"`
	LogLevel string `yaml:"log_level"`
}

// StateConfig defines where the score journal lives.
type StateConfig struct {
	Path string `yaml:"path"`
}

// FrontConfig defines Front API settings.
type FrontConfig struct {
	BaseURL string `yaml:"base_url"`
}

// LLMConfig defines the generation service settings.
type LLMConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// Secrets holds the three required credentials, sourced from the environment.
type Secrets struct {
	FrontAPIKey    string
	FrontAppSecret string
	GeminiAPIKey   string
}

// Default values applied when the config file omits a field.
const (
	DefaultName         = "axis-scorer"
	DefaultLogLevel     = "INFO"
	DefaultListen       = ":8080"
	DefaultStatePath    = "./state/axis.db"
	DefaultFrontBaseURL = "https://api2.frontapp.com"
	DefaultLLMModel     = "gemini-2.0-flash-001"
	DefaultLLMBaseURL   = "https://generativelanguage.googleapis.com"
)

// Environment variable names for required secrets.
const (
	EnvFrontAPIKey    = "FRONT_API_KEY"
	EnvFrontAppSecret = "FRONT_APP_SECRET"
	EnvGeminiAPIKey   = "GOOGLE_GENERATIVE_AI_API_KEY"
)
