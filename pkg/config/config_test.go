package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Fatalf("default port: got %d", cfg.Server.Port)
	}
	if cfg.Backend.Type != "memory" {
		t.Fatalf("default backend: got %s", cfg.Backend.Type)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Fatalf("default cache ttl: got %v", cfg.Cache.TTL)
	}
	if cfg.Kafka.Topic != "finsight.assessments" {
		t.Fatalf("default topic: got %s", cfg.Kafka.Topic)
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"missing environment", "server:\n  port: 9000\n"},
		{"bad backend", "environment: test\nbackend:\n  type: postgres\n"},
		{"clickhouse without host", "environment: test\nbackend:\n  type: clickhouse\n"},
		{"kafka without brokers", "environment: test\nkafka:\n  enabled: true\n"},
		{"redis cache without addr", "environment: test\ncache:\n  enabled: true\n  type: redis\n"},
	}
	for _, c := range cases {
		if _, err := Load(writeConfig(t, c.body)); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("BACKEND", "memory")
	t.Setenv("PORT", "9191")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("KAFKA_TOPIC", "custom.topic")

	cfg, err := LoadWithEnv(writeConfig(t, "environment: test\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9191 {
		t.Fatalf("port override: got %d", cfg.Server.Port)
	}
	if len(cfg.Kafka.Brokers) != 2 || !cfg.Kafka.Enabled {
		t.Fatalf("broker override: %+v enabled=%v", cfg.Kafka.Brokers, cfg.Kafka.Enabled)
	}
	if cfg.Kafka.Topic != "custom.topic" {
		t.Fatalf("topic override: got %s", cfg.Kafka.Topic)
	}
}
