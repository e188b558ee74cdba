package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/pelletier/go-toml/v2"
)

// File is the on-disk viewer configuration.
type File struct {
	Camera   CameraSettings  `toml:"camera"`
	Controls ControlSettings `toml:"controls"`
	Scene    SceneSettings   `toml:"scene"`
	Loop     LoopSettings    `toml:"loop"`
}

// CameraSettings holds the projection parameters and the starting position.
type CameraSettings struct {
	FovDegrees float32    `toml:"fov_degrees"`
	Near       float32    `toml:"near"`
	Far        float32    `toml:"far"`
	Position   [3]float32 `toml:"position"`
}

// ControlSettings holds movement and mouse-look tuning.
type ControlSettings struct {
	Velocity       float32 `toml:"velocity"`        // units/s
	SprintVelocity float32 `toml:"sprint_velocity"` // units/s
	Sensitivity    float32 `toml:"sensitivity"`     // radians per mouse unit
	PitchLimit     float32 `toml:"pitch_limit"`     // radians, pitch stays inside (-limit, limit)
	Inverted       bool    `toml:"inverted"`
	LightSpeed     float32 `toml:"light_speed"` // units/s
	LightEntity    string  `toml:"light_entity"`
}

type SceneSettings struct {
	AngularVelocity float32  `toml:"angular_velocity"` // radians/s
	WrapAngle       bool     `toml:"wrap_angle"`
	Entities        []Entity `toml:"entity"`
}

// Entity is the config form of a scene node's transform recipe.
// A zero Scale is read as unit scale.
type Entity struct {
	Name      string     `toml:"name"`
	Parent    string     `toml:"parent"`
	Translate [3]float32 `toml:"translate"`
	Axis      [3]float32 `toml:"axis"`
	Angle     float32    `toml:"angle"`
	Spin      float32    `toml:"spin"`
	Scale     [3]float32 `toml:"scale"`
}

type LoopSettings struct {
	FPSLimit       int     `toml:"fps_limit"`       // 0 disables the limiter
	ReportInterval float32 `toml:"report_interval"` // seconds between fps log lines
}

// Defaults returns the built-in configuration: the solar-system test scene.
func Defaults() File {
	return File{
		Camera: CameraSettings{
			FovDegrees: 45,
			Near:       1,
			Far:        500,
			Position:   [3]float32{0, 0, 5},
		},
		Controls: ControlSettings{
			Velocity:       7,
			SprintVelocity: 18,
			Sensitivity:    0.005,
			PitchLimit:     math32.Pi / 2,
			Inverted:       true,
			LightSpeed:     6,
			LightEntity:    "light",
		},
		Scene: SceneSettings{
			AngularVelocity: math32.Pi / 2,
			Entities:        DefaultEntities(),
		},
		Loop: LoopSettings{
			FPSLimit:       0,
			ReportInterval: 2,
		},
	}
}

// DefaultEntities returns the default scene: a sun/earth/moon chain plus a few
// free-standing objects and the light marker.
func DefaultEntities() []Entity {
	unit := [3]float32{1, 1, 1}
	yAxis := [3]float32{0, 1, 0}
	return []Entity{
		{Name: "sun", Translate: [3]float32{0, 10, -7}, Axis: [3]float32{0, 0, 1}, Spin: -1, Scale: unit},
		{Name: "earth", Parent: "sun", Translate: [3]float32{3.5, 0, 0}, Axis: yAxis, Spin: -1, Scale: [3]float32{0.5, 0.5, 0.5}},
		{Name: "moon", Parent: "earth", Translate: [3]float32{2.5, 0, 0}, Scale: [3]float32{0.25, 0.25, 0.25}},
		{Name: "quad", Axis: yAxis, Spin: -1, Scale: [3]float32{1.5, 1.5, 1.5}},
		{Name: "cube", Scale: [3]float32{1.5, 1.5, 1.5}},
		{Name: "sponza", Translate: [3]float32{0, -5, 0}, Axis: yAxis, Angle: math32.Pi / 2, Scale: [3]float32{0.05, 0.05, 0.05}},
		{Name: "light", Translate: [3]float32{0, 0, -4}, Scale: unit},
	}
}

// Decode reads a TOML configuration. Keys missing from the input keep their
// default values; a file that lists no entities keeps the default scene.
func Decode(r io.Reader) (File, error) {
	f := Defaults()
	f.Scene.Entities = nil

	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return File{}, fmt.Errorf("decode config: %w", err)
	}
	if f.Scene.Entities == nil {
		f.Scene.Entities = DefaultEntities()
	}
	if err := Validate(f); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads and validates the configuration file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config: %w", err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return File{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}
