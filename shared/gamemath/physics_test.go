package gamemath

import (
	"math"
	"testing"
)

var testParams = VerticalParams{Gravity: -20, FallMultiplier: 1.5, TerminalVelocity: -20}

func TestJump(t *testing.T) {
	cases := []struct {
		name       string
		body       Body
		wantVY     float64
		wantJumped bool
	}{
		{"grounded", Body{Grounded: true}, 8, true},
		{"airborne", Body{VelocityY: 3}, 3, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, jumped := Jump(c.body, 8)
			if jumped != c.wantJumped {
				t.Fatalf("jumped = %v, want %v", jumped, c.wantJumped)
			}
			if got.VelocityY != c.wantVY {
				t.Fatalf("VelocityY = %v, want %v", got.VelocityY, c.wantVY)
			}
			if got.Grounded {
				t.Fatalf("body should be airborne after jump")
			}
		})
	}
}

func TestJumpIsIdempotentWhileAirborne(t *testing.T) {
	b, _ := Jump(Body{Grounded: true}, 8)
	for i := 0; i < 5; i++ {
		next, jumped := Jump(b, 8)
		if jumped || next != b {
			t.Fatalf("repeated jump changed body: %+v -> %+v", b, next)
		}
	}
}

func TestStepVerticalGroundedIsNoop(t *testing.T) {
	b := Body{Height: 2, MinHeight: 2, Grounded: true}
	got, landed := StepVertical(b, 0.016, testParams)
	if landed || got != b {
		t.Fatalf("grounded body changed: %+v landed=%v", got, landed)
	}
}

func TestStepVerticalFallMultiplier(t *testing.T) {
	cases := []struct {
		name   string
		vy     float64
		wantVY float64
	}{
		{"rising", 5, 5 - 20*0.1},
		{"falling", -1, -1 - 20*1.5*0.1},
		{"terminal", -19.5, -20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, _ := StepVertical(Body{Height: 100, VelocityY: c.vy}, 0.1, testParams)
			if math.Abs(got.VelocityY-c.wantVY) > 1e-9 {
				t.Fatalf("VelocityY = %v, want %v", got.VelocityY, c.wantVY)
			}
			if math.Abs(got.Height-(100+got.VelocityY*0.1)) > 1e-9 {
				t.Fatalf("Height = %v, want semi-implicit integration", got.Height)
			}
		})
	}
}

func TestStepVerticalLands(t *testing.T) {
	b, _ := Jump(Body{Grounded: true}, 8)
	prevVY := b.VelocityY
	landed := false
	for i := 0; i < 200 && !landed; i++ {
		b, landed = StepVertical(b, 1.0/60, testParams)
		if !landed && b.VelocityY >= prevVY {
			t.Fatalf("step %d: velocity did not decrease (%v -> %v)", i, prevVY, b.VelocityY)
		}
		prevVY = b.VelocityY
	}
	if !landed {
		t.Fatalf("body never landed")
	}
	if !b.Grounded || b.VelocityY != 0 || b.Height != b.MinHeight {
		t.Fatalf("landing did not snap body: %+v", b)
	}
}

func TestSnapToGround(t *testing.T) {
	b := SnapToGround(Body{Height: 0, Grounded: true}, 1.25)
	if b.Height != 1.25 || b.MinHeight != 1.25 {
		t.Fatalf("SnapToGround = %+v", b)
	}
}
