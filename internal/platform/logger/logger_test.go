package logger

import "testing"

func TestRedactKVs(t *testing.T) {
	t.Parallel()

	out := redactKVs([]interface{}{
		"email", "a@example.com",
		"password", "hunter2",
		"refresh_token", "abc",
		"Api_Key", "xyz",
		"count", 3,
	})

	if out[1] != "a@example.com" {
		t.Errorf("email redacted: %v", out[1])
	}
	for _, idx := range []int{3, 5, 7} {
		if out[idx] != "[REDACTED]" {
			t.Errorf("out[%d] = %v, want [REDACTED]", idx, out[idx])
		}
	}
	if out[9] != 3 {
		t.Errorf("count = %v, want 3", out[9])
	}
}

func TestRedactKVsOddArgs(t *testing.T) {
	t.Parallel()

	in := []interface{}{"only-one"}
	out := redactKVs(in)
	if len(out) != 1 || out[0] != "only-one" {
		t.Fatalf("out = %v, want passthrough", out)
	}
}

func TestNewModes(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"dev", "prod", "production", "", "weird"} {
		log, err := New(mode)
		if err != nil {
			t.Fatalf("New(%q): %v", mode, err)
		}
		if log.SugaredLogger == nil {
			t.Fatalf("New(%q): nil sugared logger", mode)
		}
	}
}
