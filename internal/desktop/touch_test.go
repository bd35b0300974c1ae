package desktop

import (
	"testing"

	"github.com/tomz197/cannonfall/internal/loop"
)

func TestTouchInput(t *testing.T) {
	const center, width = 400.0, 70.0

	tests := []struct {
		name    string
		touches []Touch
		want    loop.Input
	}{
		{"no touches", nil, loop.Input{}},
		{"new touch fires", []Touch{{X: 100, JustPressed: true}}, loop.Input{FireRequested: true}},
		{"held left", []Touch{{X: 100}}, loop.Input{MoveLeft: true}},
		{"held right", []Touch{{X: 700}}, loop.Input{MoveRight: true}},
		{"held over cannon", []Touch{{X: 420}}, loop.Input{}},
		{"edge of dead zone", []Touch{{X: center - width/2}}, loop.Input{}},
		{"hold and tap", []Touch{{X: 700}, {X: 400, JustPressed: true}}, loop.Input{MoveRight: true, FireRequested: true}},
		{"both sides", []Touch{{X: 10}, {X: 790}}, loop.Input{MoveLeft: true, MoveRight: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := touchInput(tt.touches, center, width); got != tt.want {
				t.Errorf("touchInput = %+v, want %+v", got, tt.want)
			}
		})
	}
}
