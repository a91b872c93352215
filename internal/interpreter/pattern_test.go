package interpreter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voiceplc/internal/models"
)

func TestPatternInterpret(t *testing.T) {
	p := NewPattern()
	ctx := context.Background()

	cases := []struct {
		text string
		want models.Intent
	}{
		{"list devices", models.Intent{Kind: models.IntentListDevices}},
		{"LIST DEVICES", models.Intent{Kind: models.IntentListDevices}},
		{"history", models.Intent{Kind: models.IntentShowHistory}},
		{"show history", models.Intent{Kind: models.IntentShowHistory}},
		{"show history 5", models.Intent{Kind: models.IntentShowHistory, Limit: 5}},
		{"status WaterSystem", models.Intent{Kind: models.IntentDeviceStatus, Device: "watersystem"}},
		{"status of HVAC", models.Intent{Kind: models.IntentDeviceStatus, Device: "hvac"}},
		{
			"turn on MainPump in WaterSystem",
			models.Intent{Kind: models.IntentActuatorSet, Device: "watersystem", Component: "mainpump", TargetState: "on"},
		},
		{
			"turn off MainPump in WaterSystem",
			models.Intent{Kind: models.IntentActuatorSet, Device: "watersystem", Component: "mainpump", TargetState: "off"},
		},
		{
			"set DrainValve to open in WaterSystem",
			models.Intent{Kind: models.IntentActuatorSet, Device: "watersystem", Component: "drainvalve", TargetState: "open"},
		},
		{
			"read WaterTemp from WaterSystem",
			models.Intent{Kind: models.IntentSensorRead, Device: "watersystem", Component: "watertemp"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, err := p.Interpret(ctx, tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPatternCaseAndWhitespaceEquivalence(t *testing.T) {
	p := NewPattern()
	ctx := context.Background()

	base, err := p.Interpret(ctx, "turn on MainPump in WaterSystem")
	require.NoError(t, err)

	variants := []string{
		"TURN ON MAINPUMP IN WATERSYSTEM",
		"turn on mainpump in watersystem",
		"  turn   on  MainPump   in WaterSystem ",
	}
	for _, v := range variants {
		got, err := p.Interpret(ctx, v)
		require.NoError(t, err, "variant %q", v)
		assert.Equal(t, base, got, "variant %q must yield the same intent", v)
	}
}

func TestPatternUnrecognized(t *testing.T) {
	p := NewPattern()
	ctx := context.Background()

	for _, text := range []string{
		"frobnicate the gadget",
		"turn sideways MainPump in WaterSystem",
		"read WaterTemp",
		"",
	} {
		_, err := p.Interpret(ctx, text)
		require.Error(t, err, "input %q", text)
		assert.True(t, errors.Is(err, ErrUnrecognizedCommand), "input %q", text)
	}
}
