package config

import "testing"

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvTavilyAPIKey, "tavily-key")
	t.Setenv(EnvFirecrawlAPIKey, "firecrawl-key")

	cfg := FromEnv()
	if cfg.TavilyAPIKey != "tavily-key" {
		t.Errorf("expected tavily key from env, got %q", cfg.TavilyAPIKey)
	}
	if cfg.FirecrawlAPIKey != "firecrawl-key" {
		t.Errorf("expected firecrawl key from env, got %q", cfg.FirecrawlAPIKey)
	}
}

func TestFromEnv_MissingKeys(t *testing.T) {
	t.Setenv(EnvTavilyAPIKey, "")
	t.Setenv(EnvFirecrawlAPIKey, "")

	cfg := FromEnv()
	if cfg.TavilyAPIKey != "" || cfg.FirecrawlAPIKey != "" {
		t.Errorf("expected empty keys, got %+v", cfg)
	}
}
