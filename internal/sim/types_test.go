package sim

import "testing"

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		valid bool
	}{
		{"default", DefaultConfig(), true},
		{"zero dt", Config{Dt: 0, Ticks: 10, FrameEvery: 1}, false},
		{"negative dt", Config{Dt: -0.1, Ticks: 10, FrameEvery: 1}, false},
		{"zero ticks", Config{Dt: 0.1, Ticks: 0, FrameEvery: 1}, false},
		{"zero stride", Config{Dt: 0.1, Ticks: 10, FrameEvery: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err == nil) != tt.valid {
				t.Errorf("Validate() = %v, want valid=%v", err, tt.valid)
			}
		})
	}
}

func TestSimError(t *testing.T) {
	err := SimError{Time: 1.5, Tick: 90, Message: "test error"}
	expected := "tick 90 (t=1.5000): test error"
	if err.Error() != expected {
		t.Errorf("SimError.Error() = %q, want %q", err.Error(), expected)
	}
}

func TestScript(t *testing.T) {
	s := Script{}
	s.Add(3, Action{Spawn: true})
	s.Add(3, Action{Spawn: true})

	if got := len(s.EventsAt(3)); got != 2 {
		t.Errorf("expected 2 actions at tick 3, got %d", got)
	}
	if got := s.EventsAt(4); got != nil {
		t.Errorf("expected no actions at tick 4, got %v", got)
	}
}
