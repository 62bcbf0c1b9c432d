package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.RequestTimeout)
	}
	if cfg.DogImageCount != 3 || cfg.GitHubUser != "DotNetOpenAuth" {
		t.Fatalf("unexpected demo defaults %+v", cfg)
	}
	if len(cfg.GitHubUsers) != 6 || cfg.GitHubUsers[0] != "timothybrooks" {
		t.Fatalf("unexpected github users %v", cfg.GitHubUsers)
	}
	if cfg.SitesEnabled || len(cfg.Sites) != 10 {
		t.Fatalf("unexpected sites config enabled=%v sites=%v", cfg.SitesEnabled, cfg.Sites)
	}
	if !cfg.WaitForEnter || cfg.StrictStatus || cfg.HistoryType != "none" {
		t.Fatalf("unexpected flags %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "5")
	t.Setenv("GITHUB_USERS", " octocat, ,torvalds ")
	t.Setenv("STRICT_STATUS", "true")
	t.Setenv("DOG_IMAGE_COUNT", "0")

	cfg, err := load(viper.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.RequestTimeout)
	}
	if len(cfg.GitHubUsers) != 2 || cfg.GitHubUsers[1] != "torvalds" {
		t.Fatalf("unexpected github users %v", cfg.GitHubUsers)
	}
	if !cfg.StrictStatus || cfg.DogImageCount != 0 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "0")
	if _, err := load(viper.New()); err == nil {
		t.Fatalf("expected error for zero timeout")
	}

	t.Setenv("REQUEST_TIMEOUT_SECONDS", "10")
	t.Setenv("DOG_IMAGE_COUNT", "-1")
	if _, err := load(viper.New()); err == nil {
		t.Fatalf("expected error for negative dog count")
	}
}
