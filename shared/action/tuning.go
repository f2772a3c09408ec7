package action

// Tuning holds the per-character action parameters.
type Tuning struct {
	AttackImpulseStrength float64 `yaml:"attack_impulse_strength"`
	DefenceDuration       float64 `yaml:"defence_duration"` // seconds

	// Speeds at or below SpeedTolerance count as stopped.
	SpeedTolerance float64 `yaml:"speed_tolerance"`
	// Deadlines within TimeTolerance of the clock count as reached.
	TimeTolerance float64 `yaml:"time_tolerance"`
}

func DefaultTuning() Tuning {
	return Tuning{
		AttackImpulseStrength: 3000,
		DefenceDuration:       0.8,
		SpeedTolerance:        1e-4,
		TimeTolerance:         1e-9,
	}
}

// withDefaults fills zero fields from DefaultTuning. Settings files are
// validated to carry positive values, so this only covers Tuning values
// built in code.
func (t Tuning) withDefaults() Tuning {
	d := DefaultTuning()
	if t.AttackImpulseStrength == 0 {
		t.AttackImpulseStrength = d.AttackImpulseStrength
	}
	if t.DefenceDuration == 0 {
		t.DefenceDuration = d.DefenceDuration
	}
	if t.SpeedTolerance == 0 {
		t.SpeedTolerance = d.SpeedTolerance
	}
	if t.TimeTolerance == 0 {
		t.TimeTolerance = d.TimeTolerance
	}
	return t
}
