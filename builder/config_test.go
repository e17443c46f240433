// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import "testing"

// TestPrecisionOption verifies the default (no rounding), override order and
// the panic on a negative digit count.
func TestPrecisionOption(t *testing.T) {
	t.Parallel()

	// 1. Default configuration leaves values untouched
	cfgDefault := newBuilderConfig()
	if got := cfgDefault.round(0.1 + 0.2); got != 0.1+0.2 {
		t.Errorf("default round: expected unchanged value, got %v", got)
	}

	// 2. WithPrecision rounds to the requested digits
	cfg := newBuilderConfig(WithPrecision(1))
	if got := cfg.round(0.1 + 0.2); got != 0.3 {
		t.Errorf("WithPrecision(1): expected 0.3, got %v", got)
	}

	// 3. Later options win
	cfgLast := newBuilderConfig(WithPrecision(1), WithPrecision(0))
	if got := cfgLast.round(2.6); got != 3 {
		t.Errorf("WithPrecision override: expected 3, got %v", got)
	}

	// 4. Negative digits panic at option construction
	defer func() {
		if recover() == nil {
			t.Errorf("WithPrecision(-1): expected panic")
		}
	}()
	_ = WithPrecision(-1)
}
