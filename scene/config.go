package scene

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment variable read by LoadConfig
const EnvPrefix = "PASTURE_"

// ErrInvalidConfig wraps every validation failure reported by Config.Validate
var ErrInvalidConfig = errors.New("invalid config")

// Config collects the tunable constants of a scene
type Config struct {
	Subject SubjectConfig `toml:"subject" envPrefix:"SUBJECT_"`
	Camera  CameraConfig  `toml:"camera" envPrefix:"CAMERA_"`
	World   WorldConfig   `toml:"world" envPrefix:"WORLD_"`
}

// SubjectConfig holds speeds in units or degrees per second and symmetric
// angle limits in degrees
type SubjectConfig struct {
	MoveSpeed      float64    `toml:"move_speed" env:"MOVE_SPEED"`
	TurnSpeed      float64    `toml:"turn_speed" env:"TURN_SPEED"`
	HeadSpeed      float64    `toml:"head_speed" env:"HEAD_SPEED"`
	TailSpeed      float64    `toml:"tail_speed" env:"TAIL_SPEED"`
	HeadYawLimit   float64    `toml:"head_yaw_limit" env:"HEAD_YAW_LIMIT"`
	HeadPitchLimit float64    `toml:"head_pitch_limit" env:"HEAD_PITCH_LIMIT"`
	TailYawLimit   float64    `toml:"tail_yaw_limit" env:"TAIL_YAW_LIMIT"`
	TailPitchLimit float64    `toml:"tail_pitch_limit" env:"TAIL_PITCH_LIMIT"`
	TailRestPitch  float64    `toml:"tail_rest_pitch" env:"TAIL_REST_PITCH"`
	EyeOffset      mgl64.Vec3 `toml:"eye_offset"`
}

// CameraConfig holds the orbit defaults and limits; angles are degrees
type CameraConfig struct {
	Distance     float64    `toml:"distance" env:"DISTANCE"`
	MinDistance  float64    `toml:"min_distance" env:"MIN_DISTANCE"`
	MaxDistance  float64    `toml:"max_distance" env:"MAX_DISTANCE"`
	Horizontal   float64    `toml:"horizontal" env:"HORIZONTAL"`
	Vertical     float64    `toml:"vertical" env:"VERTICAL"`
	MinVertical  float64    `toml:"min_vertical" env:"MIN_VERTICAL"`
	MaxVertical  float64    `toml:"max_vertical" env:"MAX_VERTICAL"`
	FOV          float64    `toml:"fov" env:"FOV"`
	MinFOV       float64    `toml:"min_fov" env:"MIN_FOV"`
	MaxFOV       float64    `toml:"max_fov" env:"MAX_FOV"`
	Near         float64    `toml:"near" env:"NEAR"`
	Far          float64    `toml:"far" env:"FAR"`
	OrbitSpeed   float64    `toml:"orbit_speed" env:"ORBIT_SPEED"`
	ZoomSpeed    float64    `toml:"zoom_speed" env:"ZOOM_SPEED"`
	TargetOffset mgl64.Vec3 `toml:"target_offset"`
}

// WorldConfig bounds the horizontal extent the subject may walk in
type WorldConfig struct {
	Min float64 `toml:"min" env:"MIN"`
	Max float64 `toml:"max" env:"MAX"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Subject: SubjectConfig{
			MoveSpeed:      5,
			TurnSpeed:      90,
			HeadSpeed:      60,
			TailSpeed:      60,
			HeadYawLimit:   80,
			HeadPitchLimit: 60,
			TailYawLimit:   45,
			TailPitchLimit: 45,
			TailRestPitch:  -30,
			EyeOffset:      mgl64.Vec3{1.1, 0, 1.3},
		},
		Camera: CameraConfig{
			Distance:     10,
			MinDistance:  2,
			MaxDistance:  20,
			Horizontal:   180,
			Vertical:     35,
			MinVertical:  15,
			MaxVertical:  89,
			FOV:          60,
			MinFOV:       30,
			MaxFOV:       90,
			Near:         0.1,
			Far:          200,
			OrbitSpeed:   60,
			ZoomSpeed:    6,
			TargetOffset: mgl64.Vec3{0, 0, 1},
		},
		World: WorldConfig{
			Min: -100,
			Max: 100,
		},
	}
}

// LoadConfig starts from DefaultConfig, overlays the TOML file at path when
// path is not empty, then overlays PASTURE_* environment variables and
// validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(&cfg); err != nil {
			return Config{}, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every constraint the config violates
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	s := c.Subject
	check(s.MoveSpeed >= 0, "subject.move_speed %g is negative", s.MoveSpeed)
	check(s.TurnSpeed >= 0, "subject.turn_speed %g is negative", s.TurnSpeed)
	check(s.HeadSpeed >= 0, "subject.head_speed %g is negative", s.HeadSpeed)
	check(s.TailSpeed >= 0, "subject.tail_speed %g is negative", s.TailSpeed)
	check(s.HeadYawLimit >= 0, "subject.head_yaw_limit %g is negative", s.HeadYawLimit)
	check(s.HeadPitchLimit >= 0, "subject.head_pitch_limit %g is negative", s.HeadPitchLimit)
	check(s.TailYawLimit >= 0, "subject.tail_yaw_limit %g is negative", s.TailYawLimit)
	check(s.TailPitchLimit >= 0, "subject.tail_pitch_limit %g is negative", s.TailPitchLimit)
	check(s.TailRestPitch >= -s.TailPitchLimit && s.TailRestPitch <= s.TailPitchLimit,
		"subject.tail_rest_pitch %g outside ±%g", s.TailRestPitch, s.TailPitchLimit)

	cam := c.Camera
	check(cam.MinDistance > 0, "camera.min_distance %g must be positive", cam.MinDistance)
	check(cam.MinDistance <= cam.MaxDistance, "camera distance range [%g, %g] is empty", cam.MinDistance, cam.MaxDistance)
	check(cam.Distance >= cam.MinDistance && cam.Distance <= cam.MaxDistance,
		"camera.distance %g outside [%g, %g]", cam.Distance, cam.MinDistance, cam.MaxDistance)
	check(cam.MinVertical > 0 && cam.MaxVertical < 180 && cam.MinVertical <= cam.MaxVertical,
		"camera vertical range [%g, %g] must lie strictly between the poles", cam.MinVertical, cam.MaxVertical)
	check(cam.Vertical >= cam.MinVertical && cam.Vertical <= cam.MaxVertical,
		"camera.vertical %g outside [%g, %g]", cam.Vertical, cam.MinVertical, cam.MaxVertical)
	check(cam.MinFOV > 0 && cam.MaxFOV < 180 && cam.MinFOV <= cam.MaxFOV,
		"camera fov range [%g, %g] is invalid", cam.MinFOV, cam.MaxFOV)
	check(cam.FOV >= cam.MinFOV && cam.FOV <= cam.MaxFOV,
		"camera.fov %g outside [%g, %g]", cam.FOV, cam.MinFOV, cam.MaxFOV)
	check(cam.Near > 0 && cam.Far > cam.Near, "camera clip range [%g, %g] is invalid", cam.Near, cam.Far)
	check(cam.OrbitSpeed >= 0, "camera.orbit_speed %g is negative", cam.OrbitSpeed)
	check(cam.ZoomSpeed >= 0, "camera.zoom_speed %g is negative", cam.ZoomSpeed)

	check(c.World.Min < c.World.Max, "world range [%g, %g] is empty", c.World.Min, c.World.Max)

	return errors.Join(errs...)
}
