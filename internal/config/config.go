package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// SourceConfig controls the socialdata.tools list source.
type SourceConfig struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	ListID  string `mapstructure:"list_id"`
}

// FilterConfig controls the engagement pre-filter.
type FilterConfig struct {
	MinLikes int `mapstructure:"min_likes"`
}

// OpenAIConfig controls the relevance scorer.
type OpenAIConfig struct {
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	BaseURL     string  `mapstructure:"base_url"`
	Temperature float32 `mapstructure:"temperature"`
}

// DigestConfig controls digest assembly and rendering.
type DigestConfig struct {
	RelevanceCutoff int    `mapstructure:"relevance_cutoff"`
	InterestProfile string `mapstructure:"interest_profile"`
	Title           string `mapstructure:"title"` // supports {.CurrentDate}
}

// DiscordConfig controls webhook delivery.
type DiscordConfig struct {
	WebhookURL   string `mapstructure:"webhook_url"`
	ContentLimit int    `mapstructure:"content_limit"`
}

// StorageConfig selects and parameterizes the artifact store.
type StorageConfig struct {
	Backend     string `mapstructure:"backend"` // "file" or "redis"
	Dir         string `mapstructure:"dir"`
	FetchedFile string `mapstructure:"fetched_file"`
	ItemsFile   string `mapstructure:"items_file"`
	DigestFile  string `mapstructure:"digest_file"`
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Config is the top-level configuration structure.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Source  SourceConfig  `mapstructure:"source"`
	Filter  FilterConfig  `mapstructure:"filter"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Digest  DigestConfig  `mapstructure:"digest"`
	Discord DiscordConfig `mapstructure:"discord"`
	Storage StorageConfig `mapstructure:"storage"`
	Redis   RedisConfig   `mapstructure:"redis"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Source.BaseURL == "" {
		c.Source.BaseURL = "https://api.socialdata.tools"
	}
	if c.Filter.MinLikes == 0 {
		c.Filter.MinLikes = 10
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o"
	}
	if c.OpenAI.Temperature == 0 {
		c.OpenAI.Temperature = 0.2
	}
	if c.Digest.RelevanceCutoff == 0 {
		c.Digest.RelevanceCutoff = 7
	}
	if c.Digest.Title == "" {
		c.Digest.Title = "Twitter Content Digest {.CurrentDate}"
	}
	if c.Discord.ContentLimit == 0 {
		c.Discord.ContentLimit = 2000
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = "file"
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "./data"
	}
	if c.Storage.FetchedFile == "" {
		c.Storage.FetchedFile = "tweets_fetched.json"
	}
	if c.Storage.ItemsFile == "" {
		c.Storage.ItemsFile = "tweets_for_analysis.json"
	}
	if c.Storage.DigestFile == "" {
		c.Storage.DigestFile = "twitter_digest.md"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
}
