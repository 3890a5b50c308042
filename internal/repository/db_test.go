package repository

import (
	"testing"

	"convsvc/internal/config"
)

func TestBuildDSN(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Host:     "db",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		Name:     "conversionsdb",
		SSLMode:  "disable",
	}

	got := buildDSN(cfg)
	want := "postgres://postgres:secret@db:5432/conversionsdb?sslmode=disable"
	if got != want {
		t.Errorf("buildDSN() = %q, want %q", got, want)
	}
}
