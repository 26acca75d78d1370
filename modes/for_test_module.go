package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest provides the running test, for components that want t.Cleanup or t.TempDir.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
