package style

import "testing"

func TestColor_RGB(t *testing.T) {
	c := RGB(255, 0, 128)
	if c.R != 1 || c.G != 0 || c.A != 1 {
		t.Errorf("unexpected channels: %v", c)
	}
	if c.B < 0.5 || c.B > 0.51 {
		t.Errorf("blue: expected ~0.502, got %f", c.B)
	}
}

func TestColor_WithAlpha(t *testing.T) {
	c := Red.WithAlpha(0.5)
	if c.A != 0.5 {
		t.Errorf("expected alpha 0.5, got %f", c.A)
	}
	if Red.A != 1 {
		t.Error("WithAlpha must not mutate the receiver")
	}
}
