package notify

import (
	"testing"
	"time"
)

func TestShow_ReplacesCurrentToast(t *testing.T) {
	n := New(time.Minute)

	n.Success("Material created successfully.")
	if got := n.Current(); got == nil || got.Kind != KindSuccess {
		t.Fatalf("current = %+v", got)
	}

	n.Error("Material not found")
	got := n.Current()
	if got == nil || got.Kind != KindError || got.Message != "Material not found" {
		t.Errorf("current = %+v, want the replacing error toast", got)
	}
}

func TestToast_ClearsItselfAfterTTL(t *testing.T) {
	n := New(20 * time.Millisecond)
	cleared := make(chan struct{})
	n.OnChange(func(toast *Toast) {
		if toast == nil {
			close(cleared)
		}
	})

	n.Success("Saved.")

	select {
	case <-cleared:
	case <-time.After(2 * time.Second):
		t.Fatal("toast never cleared itself")
	}
	if n.Current() != nil {
		t.Error("current toast must be nil after self-clear")
	}
}

func TestShow_ReArmsTimerForNewToast(t *testing.T) {
	n := New(30 * time.Millisecond)

	n.Success("first")
	time.Sleep(20 * time.Millisecond)
	n.Success("second") // re-arms; first toast's deadline must not clear it
	time.Sleep(20 * time.Millisecond)

	if got := n.Current(); got == nil || got.Message != "second" {
		t.Errorf("current = %+v, want the second toast still visible", got)
	}
}

func TestClear_DropsToastImmediately(t *testing.T) {
	n := New(time.Minute)
	var last *Toast
	seen := false
	n.OnChange(func(toast *Toast) {
		last = toast
		seen = true
	})

	n.Success("Saved.")
	n.Clear()

	if n.Current() != nil {
		t.Error("current must be nil after Clear")
	}
	if !seen || last != nil {
		t.Errorf("onChange last = %+v, want nil notification", last)
	}
}

func TestNew_ZeroTTLUsesDefault(t *testing.T) {
	n := New(0)
	if n.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", n.ttl, DefaultTTL)
	}
}
