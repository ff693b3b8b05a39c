package config

import (
	"testing"

	kit "cragsift/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	root := New()
	sift := root.Prefix("SIFT_")
	if got := sift.key("SUBREDDIT"); got != "SIFT_SUBREDDIT" {
		t.Fatalf("key() = %q, want %q", got, "SIFT_SUBREDDIT")
	}
	// nested prefix
	siftLog := sift.Prefix("LOG_")
	if got := siftLog.key("LEVEL"); got != "SIFT_LOG_LEVEL" {
		t.Fatalf("nested key() = %q, want %q", got, "SIFT_LOG_LEVEL")
	}
}

// Must* panics

func TestMustString(t *testing.T) {
	c := New().Prefix("APP_")
	t.Setenv("APP_NAME", "  cragsift ")
	got := c.MustString("NAME")
	if got != "cragsift" {
		t.Fatalf("MustString = %q, want %q", got, "cragsift")
	}

	kit.MustPanic(t, func() { _ = c.MustString("MISSING") })
}

func TestMustInt(t *testing.T) {
	c := New().Prefix("SVC_")
	t.Setenv("SVC_CHUNK", "  8 ")
	if got := c.MustInt("CHUNK"); got != 8 {
		t.Fatalf("MustInt = %d, want %d", got, 8)
	}
	kit.MustPanic(t, func() { _ = c.MustInt("MISSING") })
	t.Setenv("SVC_BAD", "x")
	kit.MustPanic(t, func() { _ = c.MustInt("BAD") })
}

func TestRequire(t *testing.T) {
	c := New().Prefix("R_")
	t.Setenv("R_A", "1")
	t.Setenv("R_B", "2")
	kit.MustNotPanic(t, func() { c.Require("A", "B") })
	kit.MustPanic(t, func() { c.Require("A", "MISSING") })
}

// May* defaults

func TestMayString(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_SUB", "  climbharder ")
	if got := c.MayString("SUB", "x"); got != "climbharder" {
		t.Fatalf("MayString = %q", got)
	}
	if got := c.MayString("MISSING", "fallback"); got != "fallback" {
		t.Fatalf("MayString default = %q", got)
	}
}

func TestMayInt(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_SCORE", " 20 ")
	t.Setenv("M_NEG", "-5")
	t.Setenv("M_BAD", "twenty")
	if got := c.MayInt("SCORE", 1); got != 20 {
		t.Fatalf("MayInt = %d", got)
	}
	if got := c.MayInt("NEG", 1); got != -5 {
		t.Fatalf("MayInt negative = %d", got)
	}
	if got := c.MayInt("BAD", 1); got != 1 {
		t.Fatalf("MayInt invalid should default, got %d", got)
	}
	if got := c.MayInt("MISSING", 1); got != 1 {
		t.Fatalf("MayInt missing should default, got %d", got)
	}
}

func TestMayBool(t *testing.T) {
	c := New().Prefix("M_")
	t.Setenv("M_ON", " true ")
	t.Setenv("M_BAD", "notabool")
	if !c.MayBool("ON", false) {
		t.Fatalf("MayBool true expected")
	}
	if !c.MayBool("BAD", true) {
		t.Fatalf("MayBool invalid should default")
	}
	if c.MayBool("MISSING", false) {
		t.Fatalf("MayBool missing should default")
	}
}
