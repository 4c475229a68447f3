package search

import "testing"

func TestNewConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ELASTICSEARCH_NODE", "")
		t.Setenv("ELASTICSEARCH_USERNAME", "")
		t.Setenv("ELASTICSEARCH_PASSWORD", "")

		cfg := NewConfigFromEnv()
		if cfg.Node != "http://localhost:9200" || cfg.Username != "" || cfg.Password != "" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
	})

	t.Run("from env", func(t *testing.T) {
		t.Setenv("ELASTICSEARCH_NODE", "https://es.internal:9243")
		t.Setenv("ELASTICSEARCH_USERNAME", "reader")
		t.Setenv("ELASTICSEARCH_PASSWORD", "secret")

		cfg := NewConfigFromEnv()
		if cfg.Node != "https://es.internal:9243" || cfg.Username != "reader" || cfg.Password != "secret" {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if _, err := NewElasticsearchClient(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
