package telemetry_test

import (
	"testing"

	"github.com/Gunvolt24/party_registry/pkg/telemetry"
)

func TestClampRatio(t *testing.T) {
	cases := map[float64]float64{-0.5: 0, 0: 0, 0.25: 0.25, 1: 1, 3: 1}
	for in, want := range cases {
		if got := telemetry.ClampRatio(in); got != want {
			t.Fatalf("ClampRatio(%v) = %v, want %v", in, got, want)
		}
	}
}
