package buildinfo

import (
	"strings"
	"testing"
)

func TestLongVersion(t *testing.T) {
	got := LongVersion("schraem-server")
	for _, want := range []string{"project: schraem-server", "version: " + Version, "running OS/Arch: " + RunningOS} {
		if !strings.Contains(got, want) {
			t.Errorf("LongVersion()=%q, want it to contain %q", got, want)
		}
	}
}

func TestNewApp(t *testing.T) {
	app := NewApp("schraem-deal", "deal")
	if app.Name != "schraem-deal" || app.Version != Version {
		t.Errorf("NewApp()=%s %s, want schraem-deal %s", app.Name, app.Version, Version)
	}
}
