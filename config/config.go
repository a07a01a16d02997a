package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AIConfig selects and configures the generative model provider.
type AIConfig struct {
	Provider    string
	Timeout     time.Duration
	Gemini      ProviderConfig
	OpenAI      ProviderConfig
	HuggingFace ProviderConfig
}

type ProviderConfig struct {
	APIKey string
	Model  string
}

type LogConfig struct {
	Level  string
	Format string
}

type Config struct {
	Port              string
	GinMode           string
	FrontendOrigins   []string
	KnowledgeBasePath string
	PprofAddr         string
	AI                AIConfig
	Log               LogConfig
}

// Active returns the settings of the configured provider.
func (a AIConfig) Active() ProviderConfig {
	switch a.Provider {
	case "openai":
		return a.OpenAI
	case "huggingface":
		return a.HuggingFace
	default:
		return a.Gemini
	}
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("GIN_MODE", "")
	v.SetDefault("FRONTEND_URL", "")
	v.SetDefault("KNOWLEDGE_BASE_PATH", "")
	v.SetDefault("PPROF_ADDR", "")
	v.SetDefault("AI_PROVIDER", "gemini")
	v.SetDefault("AI_TIMEOUT", "0s")
	v.SetDefault("GOOGLE_API_KEY", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("HUGGINGFACE_API_KEY", "")
	v.SetDefault("HF_MODEL", "mistralai/Mistral-7B-Instruct-v0.3")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	return v
}

// FromViper builds and validates a Config from an already populated viper
// instance.
func FromViper(v *viper.Viper) (*Config, error) {
	geminiKey := v.GetString("GOOGLE_API_KEY")
	if geminiKey == "" {
		geminiKey = v.GetString("GEMINI_API_KEY")
	}

	cfg := &Config{
		Port:              v.GetString("PORT"),
		GinMode:           v.GetString("GIN_MODE"),
		FrontendOrigins:   splitList(v.GetString("FRONTEND_URL")),
		KnowledgeBasePath: v.GetString("KNOWLEDGE_BASE_PATH"),
		PprofAddr:         v.GetString("PPROF_ADDR"),
		AI: AIConfig{
			Provider: strings.ToLower(strings.TrimSpace(v.GetString("AI_PROVIDER"))),
			Timeout:  v.GetDuration("AI_TIMEOUT"),
			Gemini: ProviderConfig{
				APIKey: geminiKey,
				Model:  v.GetString("GEMINI_MODEL"),
			},
			OpenAI: ProviderConfig{
				APIKey: v.GetString("OPENAI_API_KEY"),
				Model:  v.GetString("OPENAI_MODEL"),
			},
			HuggingFace: ProviderConfig{
				APIKey: v.GetString("HUGGINGFACE_API_KEY"),
				Model:  v.GetString("HF_MODEL"),
			},
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	if cfg.AI.Timeout < 0 {
		return fmt.Errorf("AI_TIMEOUT must not be negative")
	}

	switch cfg.AI.Provider {
	case "gemini":
		if cfg.AI.Gemini.APIKey == "" {
			return fmt.Errorf("GOOGLE_API_KEY (or GEMINI_API_KEY) is required when AI_PROVIDER=gemini")
		}
	case "openai":
		if cfg.AI.OpenAI.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when AI_PROVIDER=openai")
		}
	case "huggingface":
		if cfg.AI.HuggingFace.APIKey == "" {
			return fmt.Errorf("HUGGINGFACE_API_KEY is required when AI_PROVIDER=huggingface")
		}
	default:
		return fmt.Errorf("unsupported AI_PROVIDER %q: use gemini, openai or huggingface", cfg.AI.Provider)
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, u := range strings.Split(s, ",") {
		u = strings.TrimSpace(u)
		if u != "" {
			out = append(out, u)
		}
	}
	return out
}
