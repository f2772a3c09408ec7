// Package movement is a small fixed-step character mover built on a resolv
// collision space. It is headless so both the server and the offline client
// can run it.
package movement

// Params are the character movement values, in world units and seconds.
type Params struct {
	Gravity             float64 `yaml:"gravity"`
	GravityScale        float64 `yaml:"gravity_scale"`
	AirControl          float64 `yaml:"air_control"`
	JumpVelocity        float64 `yaml:"jump_velocity"`
	GroundFriction      float64 `yaml:"ground_friction"`
	MaxWalkSpeed        float64 `yaml:"max_walk_speed"`
	MaxFlySpeed         float64 `yaml:"max_fly_speed"`
	MaxAcceleration     float64 `yaml:"max_acceleration"`
	BrakingDeceleration float64 `yaml:"braking_deceleration"`
	TerminalVelocity    float64 `yaml:"terminal_velocity"`
	StopSpeed           float64 `yaml:"stop_speed"` // speeds below this snap to zero while braking

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func DefaultParams() Params {
	return Params{
		Gravity:             980,
		GravityScale:        2,
		AirControl:          0.8,
		JumpVelocity:        1000,
		GroundFriction:      3,
		MaxWalkSpeed:        600,
		MaxFlySpeed:         600,
		MaxAcceleration:     2048,
		BrakingDeceleration: 2048,
		TerminalVelocity:    4000,
		StopSpeed:           10,
		Width:               84,
		Height:              192,
	}
}
