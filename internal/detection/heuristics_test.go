package detection

import "testing"

func TestParamsFor(t *testing.T) {
	tests := []struct {
		name   string
		height int
		want   Params
	}{
		{"full hd", 1080, Params{SatCeil: 30, ValueCeil: 150, DilateIters: 5, MinRegionHeight: 15}},
		{"hd boundary", 720, Params{SatCeil: 30, ValueCeil: 150, DilateIters: 5, MinRegionHeight: 10}},
		{"just below boundary", 719, Params{SatCeil: 80, ValueCeil: 150, DilateIters: 3, MinRegionHeight: 9}},
		{"sd", 480, Params{SatCeil: 80, ValueCeil: 150, DilateIters: 3, MinRegionHeight: 6}},
		{"tiny", 60, Params{SatCeil: 80, ValueCeil: 150, DilateIters: 3, MinRegionHeight: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParamsFor(tt.height); got != tt.want {
				t.Errorf("ParamsFor(%d) = %+v, want %+v", tt.height, got, tt.want)
			}
		})
	}
}
