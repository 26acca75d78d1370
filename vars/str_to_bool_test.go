package vars

import "testing"

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y", "1", "on", " on "} {
		if !StrToBool(str) {
			t.Fatalf("%s should be true", str)
		}
	}
	for _, str := range []string{"false", "no", "0", "", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("%s should be false", str)
		}
	}
}
