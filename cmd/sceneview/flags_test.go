package main

import (
	"testing"
	"time"

	"github.com/banshee-data/sceneview/internal/config"
)

func withFlags(t *testing.T, set func()) {
	t.Helper()
	oldListen, oldInterval, oldText, oldNoHB, oldTZ := *listen, *heartbeatInterval, *heartbeatText, *noHeartbeat, *timezone
	t.Cleanup(func() {
		*listen, *heartbeatInterval, *heartbeatText, *noHeartbeat, *timezone = oldListen, oldInterval, oldText, oldNoHB, oldTZ
	})
	set()
}

// TestFlagDefaults verifies that unset flags leave config values in charge.
func TestFlagDefaults(t *testing.T) {
	if *listen != "" || *heartbeatInterval != 0 || *heartbeatText != "" || *noHeartbeat || *timezone != "" {
		t.Fatal("override flags should default to their zero values")
	}

	s, err := resolveSettings(config.EmptyViewerConfig())
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if s.listen != ":8090" {
		t.Errorf("listen = %q, want :8090", s.listen)
	}
	if !s.heartbeatEnabled || s.heartbeatInterval != 5*time.Second || s.heartbeatText != "123" {
		t.Errorf("unexpected heartbeat settings: %+v", s)
	}
	if s.location != time.UTC {
		t.Errorf("location = %v, want UTC", s.location)
	}
	if s.camera == nil || s.camera.GetFOV() != 50 {
		t.Errorf("unexpected camera defaults: %+v", s.camera)
	}
}

// TestFlagsOverrideConfig verifies that explicit flags win over file values.
func TestFlagsOverrideConfig(t *testing.T) {
	withFlags(t, func() {
		*listen = "127.0.0.1:0"
		*heartbeatInterval = 250 * time.Millisecond
		*heartbeatText = "beat"
		*noHeartbeat = true
		*timezone = "UTC"
	})

	fileListen, fileText := ":9999", "file"
	cfg := &config.ViewerConfig{Listen: &fileListen, HeartbeatText: &fileText}

	s, err := resolveSettings(cfg)
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if s.listen != "127.0.0.1:0" {
		t.Errorf("listen = %q", s.listen)
	}
	if s.heartbeatInterval != 250*time.Millisecond {
		t.Errorf("heartbeatInterval = %v", s.heartbeatInterval)
	}
	if s.heartbeatText != "beat" {
		t.Errorf("heartbeatText = %q", s.heartbeatText)
	}
	if s.heartbeatEnabled {
		t.Error("heartbeat should be disabled by -no-heartbeat")
	}
}

func TestResolveSettings_BadTimezone(t *testing.T) {
	withFlags(t, func() { *timezone = "Nowhere/Special" })

	if _, err := resolveSettings(config.EmptyViewerConfig()); err == nil {
		t.Error("expected error for unknown timezone")
	}
}
