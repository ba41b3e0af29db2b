package config

// ProviderType identifies an LLM provider.
type ProviderType string

const (
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderOllama    ProviderType = "ollama"
)

// Config is the top-level adsun configuration, corresponding to .adsun.yml.
type Config struct {
	Provider ProviderType `yaml:"provider" koanf:"provider"`
	Model    string       `yaml:"model" koanf:"model"`
	DBPath   string       `yaml:"db_path" koanf:"db_path"`
	Port     int          `yaml:"port" koanf:"port"`
	Language string       `yaml:"language" koanf:"language"`
}
