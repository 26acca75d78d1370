package modes

import "testing"

func TestModeString(t *testing.T) {
	for _, c := range []struct {
		mode Mode
		str  string
	}{
		{ModeProduction, "production"},
		{ModeDevelopment, "development"},
		{Mode(42), "unknown"},
	} {
		if got := c.mode.String(); got != c.str {
			t.Fatalf("got %v", got)
		}
	}
}
