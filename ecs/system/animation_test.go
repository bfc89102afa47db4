package system

import (
	"testing"

	"github.com/milk9111/colourblind/ecs/component"
)

func TestHumanoidState(t *testing.T) {
	tests := []struct {
		grounded bool
		vx       float64
		want     string
	}{
		{true, 0, component.AnimStand},
		{true, 3, component.AnimRun},
		{false, 0, component.AnimJump},
		{false, -3, component.AnimJump},
	}
	for _, tc := range tests {
		if got := HumanoidState(tc.grounded, tc.vx); got != tc.want {
			t.Fatalf("HumanoidState(%v, %v) = %q, want %q", tc.grounded, tc.vx, got, tc.want)
		}
	}
}
