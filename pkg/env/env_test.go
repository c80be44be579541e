package env_test

import (
	"testing"
	"time"

	"mercantile/pkg/env"
)

func TestGetString(t *testing.T) {
	t.Setenv("MERCANTILE_TEST_STR", "hello")

	if got := env.GetString("MERCANTILE_TEST_STR", "fallback"); got != "hello" {
		t.Errorf("got %q, want hello", got)
	}
	if got := env.GetString("MERCANTILE_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestGetFloat(t *testing.T) {
	t.Setenv("MERCANTILE_TEST_FLOAT", "7.25")
	t.Setenv("MERCANTILE_TEST_GARBAGE", "not-a-number")

	if got := env.GetFloat("MERCANTILE_TEST_FLOAT", 1.0); got != 7.25 {
		t.Errorf("got %v, want 7.25", got)
	}
	if got := env.GetFloat("MERCANTILE_TEST_GARBAGE", 1.0); got != 1.0 {
		t.Errorf("got %v, want the fallback on garbage input", got)
	}
	if got := env.GetFloat("MERCANTILE_TEST_MISSING", 5.00); got != 5.00 {
		t.Errorf("got %v, want 5.00", got)
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("MERCANTILE_TEST_SECS", "30")

	if got := env.GetDuration("MERCANTILE_TEST_SECS", time.Second); got != 30*time.Second {
		t.Errorf("got %v, want 30s", got)
	}
	if got := env.GetDuration("MERCANTILE_TEST_MISSING", 5*time.Second); got != 5*time.Second {
		t.Errorf("got %v, want 5s", got)
	}
}
