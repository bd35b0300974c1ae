package config

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CANNON_TEST_SET", "value")
	t.Setenv("CANNON_TEST_EMPTY", "")

	tests := []struct {
		key, fallback, want string
	}{
		{"CANNON_TEST_SET", "fb", "value"},
		{"CANNON_TEST_EMPTY", "fb", ""},
		{"CANNON_TEST_UNSET", "fb", "fb"},
	}
	for _, tt := range tests {
		if got := GetEnv(tt.key, tt.fallback); got != tt.want {
			t.Errorf("GetEnv(%q, %q) = %q, want %q", tt.key, tt.fallback, got, tt.want)
		}
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		set     bool
		want    int
		wantErr bool
	}{
		{"unset", "", false, 800, false},
		{"empty", "", true, 800, false},
		{"number", "1024", true, 1024, false},
		{"padded", " 640 ", true, 640, false},
		{"garbage", "wide", true, 800, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("CANNON_TEST_INT", tt.value)
			}
			got, err := GetEnvInt("CANNON_TEST_INT", 800)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("GetEnvInt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	if got := NewLogger("test").GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}

	t.Setenv("LOG_LEVEL", "loud")
	if got := NewLogger("test").GetLevel(); got != log.InfoLevel {
		t.Errorf("level with bad LOG_LEVEL = %v, want info", got)
	}
}
