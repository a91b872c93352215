package service

import (
	"math"
	"testing"

	"voiceplc/internal/models"
)

func TestSimulatedSourceStaysInMockRange(t *testing.T) {
	src := NewSimulatedSource(1)
	s := models.NewSensor("WaterTemp", models.KindTemperature, "°C", 5, 95, "")
	s.MockMin, s.MockMax = 15, 85

	for i := 0; i < 200; i++ {
		v := src.Next(s)
		if v < 15 || v > 85 {
			t.Fatalf("draw %d: value %v escaped mock range [15, 85]", i, v)
		}
	}
}

func TestSimulatedSourceRounding(t *testing.T) {
	src := NewSimulatedSource(1)

	cases := []struct {
		kind     models.ComponentKind
		decimals int
	}{
		{models.KindTemperature, 2},
		{models.KindPressure, 2},
		{models.KindLevel, 2},
		{models.KindFlow, 1},
		{models.KindPower, 1},
		{models.KindEnergy, 0},
		{models.ComponentKind("vibration"), 2},
	}

	for _, tc := range cases {
		s := models.NewSensor("probe", tc.kind, "u", 0, 1000, "")
		s.MockMin, s.MockMax = 0, 1000
		scale := math.Pow(10, float64(tc.decimals))
		for i := 0; i < 50; i++ {
			v := src.Next(s)
			if math.Round(v*scale)/scale != v {
				t.Fatalf("kind %q: value %v has more than %d decimals", tc.kind, v, tc.decimals)
			}
		}
	}
}

func TestSimulatedSourceDeterministicWithSeed(t *testing.T) {
	s := models.NewSensor("WaterTemp", models.KindTemperature, "°C", 5, 95, "")

	a := NewSimulatedSource(7)
	b := NewSimulatedSource(7)
	for i := 0; i < 10; i++ {
		if va, vb := a.Next(s), b.Next(s); va != vb {
			t.Fatalf("draw %d: %v != %v for equal seeds", i, va, vb)
		}
	}
}
