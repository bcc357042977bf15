package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/banshee-data/sceneview/internal/framing"
	"github.com/banshee-data/sceneview/internal/fsutil"
	"github.com/banshee-data/sceneview/internal/units"
)

// Defaults applied by the Get* accessors when a field is omitted.
const (
	DefaultListen            = ":8090"
	DefaultHeartbeatInterval = 5 * time.Second
	DefaultHeartbeatText     = "123"
	DefaultTimezone          = "UTC"
	DefaultCameraFOV         = 50.0
	DefaultCameraAspect      = 1.0
	DefaultCameraNear        = 0.1
	DefaultCameraFar         = 1000.0
	DefaultOffsetFactor      = 1.0
)

// ViewerConfig is the root configuration for the viewer daemon. Every field
// is optional; omitted fields fall back to the defaults above, so partial
// files are safe.
type ViewerConfig struct {
	Listen *string `json:"listen,omitempty"`

	// Console params
	ConsoleTimezone   *string `json:"console_timezone,omitempty"`
	HeartbeatEnabled  *bool   `json:"heartbeat_enabled,omitempty"`
	HeartbeatInterval *string `json:"heartbeat_interval,omitempty"` // duration string like "5s"
	HeartbeatText     *string `json:"heartbeat_text,omitempty"`
	MirrorLogs        *bool   `json:"mirror_logs,omitempty"`

	// Camera defaults used when a framing request omits them
	Camera *CameraDefaults `json:"camera,omitempty"`
}

// CameraDefaults are the camera parameters assumed by framing requests that
// do not carry their own.
type CameraDefaults struct {
	FOV          *float64 `json:"fov,omitempty"`
	Aspect       *float64 `json:"aspect,omitempty"`
	Near         *float64 `json:"near,omitempty"`
	Far          *float64 `json:"far,omitempty"`
	OffsetFactor *float64 `json:"offset_factor,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrBool(v bool) *bool          { return &v }
func ptrString(v string) *string    { return &v }

// EmptyViewerConfig returns a ViewerConfig with all fields unset.
func EmptyViewerConfig() *ViewerConfig {
	return &ViewerConfig{}
}

// LoadViewerConfig loads a ViewerConfig from a JSON file.
// The file must have a .json extension and be under 1MB.
func LoadViewerConfig(path string) (*ViewerConfig, error) {
	return LoadViewerConfigFS(fsutil.OSFileSystem{}, path)
}

// LoadViewerConfigFS is LoadViewerConfig reading through fsys.
func LoadViewerConfigFS(fsys fsutil.FileSystem, path string) (*ViewerConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := fsys.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := fsys.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyViewerConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *ViewerConfig) Validate() error {
	if c.HeartbeatInterval != nil && *c.HeartbeatInterval != "" {
		d, err := time.ParseDuration(*c.HeartbeatInterval)
		if err != nil {
			return fmt.Errorf("invalid heartbeat_interval '%s': %w", *c.HeartbeatInterval, err)
		}
		if d <= 0 {
			return fmt.Errorf("heartbeat_interval must be positive, got %s", d)
		}
	}

	if c.ConsoleTimezone != nil && !units.IsTimezoneValid(*c.ConsoleTimezone) {
		return fmt.Errorf("invalid console_timezone '%s'", *c.ConsoleTimezone)
	}

	if c.Camera != nil {
		if err := c.Camera.Validate(); err != nil {
			return fmt.Errorf("camera: %w", err)
		}
	}

	return nil
}

// Validate checks the camera defaults against the framing domain.
func (c *CameraDefaults) Validate() error {
	if err := c.Spec().Validate(); err != nil {
		return err
	}
	near, far := c.GetNear(), c.GetFar()
	if near <= 0 {
		return fmt.Errorf("near must be positive, got %f", near)
	}
	if far <= near {
		return fmt.Errorf("far (%f) must be greater than near (%f)", far, near)
	}
	if c.GetOffsetFactor() < 0 {
		return fmt.Errorf("offset_factor must be non-negative, got %f", c.GetOffsetFactor())
	}
	return nil
}

// GetListen returns the listen address or the default.
func (c *ViewerConfig) GetListen() string {
	if c.Listen == nil || *c.Listen == "" {
		return DefaultListen
	}
	return *c.Listen
}

// GetConsoleTimezone returns the console timezone name or the default.
func (c *ViewerConfig) GetConsoleTimezone() string {
	if c.ConsoleTimezone == nil || *c.ConsoleTimezone == "" {
		return DefaultTimezone
	}
	return *c.ConsoleTimezone
}

// GetHeartbeatEnabled returns whether the heartbeat runs (default true).
func (c *ViewerConfig) GetHeartbeatEnabled() bool {
	if c.HeartbeatEnabled == nil {
		return true
	}
	return *c.HeartbeatEnabled
}

// GetHeartbeatInterval parses and returns the heartbeat interval.
func (c *ViewerConfig) GetHeartbeatInterval() time.Duration {
	if c.HeartbeatInterval == nil || *c.HeartbeatInterval == "" {
		return DefaultHeartbeatInterval
	}
	d, err := time.ParseDuration(*c.HeartbeatInterval)
	if err != nil || d <= 0 {
		return DefaultHeartbeatInterval // default on parse error
	}
	return d
}

// GetHeartbeatText returns the heartbeat text or the default.
func (c *ViewerConfig) GetHeartbeatText() string {
	if c.HeartbeatText == nil || *c.HeartbeatText == "" {
		return DefaultHeartbeatText
	}
	return *c.HeartbeatText
}

// GetMirrorLogs returns whether diagnostics are mirrored to the console (default true).
func (c *ViewerConfig) GetMirrorLogs() bool {
	if c.MirrorLogs == nil {
		return true
	}
	return *c.MirrorLogs
}

// GetCamera returns the camera defaults, never nil.
func (c *ViewerConfig) GetCamera() *CameraDefaults {
	if c.Camera == nil {
		return &CameraDefaults{}
	}
	return c.Camera
}

// GetFOV returns the vertical fov in degrees or the default.
func (c *CameraDefaults) GetFOV() float64 {
	if c.FOV == nil {
		return DefaultCameraFOV
	}
	return *c.FOV
}

// GetAspect returns the aspect ratio or the default.
func (c *CameraDefaults) GetAspect() float64 {
	if c.Aspect == nil {
		return DefaultCameraAspect
	}
	return *c.Aspect
}

// GetNear returns the near plane or the default.
func (c *CameraDefaults) GetNear() float64 {
	if c.Near == nil {
		return DefaultCameraNear
	}
	return *c.Near
}

// GetFar returns the initial far plane or the default.
func (c *CameraDefaults) GetFar() float64 {
	if c.Far == nil {
		return DefaultCameraFar
	}
	return *c.Far
}

// GetOffsetFactor returns the framing offset factor or the default.
func (c *CameraDefaults) GetOffsetFactor() float64 {
	if c.OffsetFactor == nil {
		return DefaultOffsetFactor
	}
	return *c.OffsetFactor
}

// Spec returns the framing camera spec for these defaults.
func (c *CameraDefaults) Spec() framing.CameraSpec {
	return framing.CameraSpec{
		VerticalFOVDegrees: c.GetFOV(),
		AspectRatio:        c.GetAspect(),
	}
}
