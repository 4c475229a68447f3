package search

import (
	"log"
	"net/http"
	"os"

	"github.com/elastic/go-elasticsearch/v8"
)

// Config holds the order store connection settings.
type Config struct {
	Node     string
	Username string
	Password string

	// Transport overrides the HTTP transport; nil uses the client default.
	Transport http.RoundTripper
}

// ConnectElasticsearch creates the process-wide order store client using
// environment variables.
//
// Supported env vars:
//   - ELASTICSEARCH_NODE (default: http://localhost:9200)
//   - ELASTICSEARCH_USERNAME
//   - ELASTICSEARCH_PASSWORD
func ConnectElasticsearch() *elasticsearch.Client {
	es, err := NewElasticsearchClient(NewConfigFromEnv())
	if err != nil {
		log.Fatalf("failed to create elasticsearch client: %v", err)
	}
	return es
}

func NewConfigFromEnv() Config {
	return Config{
		Node:     getenvDefault("ELASTICSEARCH_NODE", "http://localhost:9200"),
		Username: os.Getenv("ELASTICSEARCH_USERNAME"),
		Password: os.Getenv("ELASTICSEARCH_PASSWORD"),
	}
}

// NewElasticsearchClient builds a client that issues exactly one round trip
// per query.
func NewElasticsearchClient(cfg Config) (*elasticsearch.Client, error) {
	return elasticsearch.NewClient(elasticsearch.Config{
		Addresses:    []string{cfg.Node},
		Username:     cfg.Username,
		Password:     cfg.Password,
		Transport:    cfg.Transport,
		DisableRetry: true,
	})
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
