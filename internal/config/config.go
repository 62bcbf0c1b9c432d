package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName               string        `mapstructure:"app_name"`
	LogLevel              string        `mapstructure:"log_level"`
	ClientsFile           string        `mapstructure:"clients_file"`
	UserAgent             string        `mapstructure:"user_agent"`
	RequestTimeoutSeconds int64         `mapstructure:"request_timeout_seconds"`
	RequestTimeout        time.Duration `mapstructure:"-"`
	StrictStatus          bool          `mapstructure:"strict_status"`
	NoColor               bool          `mapstructure:"no_color"`
	WaitForEnter          bool          `mapstructure:"wait_for_enter"`

	DogImageCount  int      `mapstructure:"dog_image_count"`
	GitHubUser     string   `mapstructure:"github_user"`
	GitHubUsersRaw string   `mapstructure:"github_users"`
	GitHubUsers    []string `mapstructure:"-"`
	SitesEnabled   bool     `mapstructure:"sites_enabled"`
	SitesRaw       string   `mapstructure:"sites"`
	Sites          []string `mapstructure:"-"`

	HistoryType string `mapstructure:"history_type"`
	HistoryPath string `mapstructure:"history_path"`
}

var (
	defaultGitHubUsers = []string{
		"timothybrooks",
		"karpathy",
		"RaifordBrookshire",
		"microsoft",
		"miniprofiler",
		"CryptoPowerTools",
	}
	defaultSites = []string{
		"http://google.com",
		"http://facebook.com",
		"http://youtube.com",
		"http://baidu.com",
		"http://wikipedia.org",
		"http://yahoo.com",
		"http://qq.com",
		"http://taobao.com",
		"http://tmall.com",
		"http://twitter.com",
	}
)

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("app_name", "poc-httpclient")
	v.SetDefault("log_level", "warn")
	v.SetDefault("clients_file", "")
	v.SetDefault("user_agent", "PocHttpClientApp")
	v.SetDefault("request_timeout_seconds", 30)
	v.SetDefault("strict_status", false)
	v.SetDefault("no_color", false)
	v.SetDefault("wait_for_enter", true)
	v.SetDefault("dog_image_count", 3)
	v.SetDefault("github_user", "DotNetOpenAuth")
	v.SetDefault("github_users", strings.Join(defaultGitHubUsers, ","))
	v.SetDefault("sites_enabled", false)
	v.SetDefault("sites", strings.Join(defaultSites, ","))
	v.SetDefault("history_type", "none")
	v.SetDefault("history_path", "./data/history.db")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RequestTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid request_timeout_seconds (must be positive seconds)")
	}
	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutSeconds) * time.Second

	if cfg.DogImageCount < 0 {
		return nil, fmt.Errorf("invalid dog_image_count (must not be negative)")
	}

	cfg.GitHubUser = strings.TrimSpace(cfg.GitHubUser)
	cfg.GitHubUsers = splitList(cfg.GitHubUsersRaw)
	cfg.Sites = splitList(cfg.SitesRaw)

	return &cfg, nil
}

// splitList splits a comma separated value, dropping blanks.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
