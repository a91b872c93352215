package interpreter

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"voiceplc/internal/models"
)

// template pairs a compiled pattern with an Intent builder. Templates are
// tried in declaration order; the first match wins.
type template struct {
	re    *regexp.Regexp
	build func(groups []string) models.Intent
}

// Pattern is the regex-based strategy. Matching is case-insensitive and
// whitespace-tolerant; device and component captures are lowercased so
// equivalent phrasings produce identical Intents.
type Pattern struct {
	templates []template
}

// NewPattern builds the fixed, ordered template list.
func NewPattern() *Pattern {
	return &Pattern{templates: []template{
		{
			re: regexp.MustCompile(`^(?i)list devices$`),
			build: func([]string) models.Intent {
				return models.Intent{Kind: models.IntentListDevices}
			},
		},
		{
			re: regexp.MustCompile(`^(?i)(?:show )?history(?: (\d+))?$`),
			build: func(g []string) models.Intent {
				limit := 0
				if g[1] != "" {
					limit, _ = strconv.Atoi(g[1])
				}
				return models.Intent{Kind: models.IntentShowHistory, Limit: limit}
			},
		},
		{
			re: regexp.MustCompile(`^(?i)status (?:of )?([\w-]+)$`),
			build: func(g []string) models.Intent {
				return models.Intent{Kind: models.IntentDeviceStatus, Device: strings.ToLower(g[1])}
			},
		},
		{
			re: regexp.MustCompile(`^(?i)turn (on|off) ([\w-]+) in ([\w-]+)$`),
			build: func(g []string) models.Intent {
				return models.Intent{
					Kind:        models.IntentActuatorSet,
					Device:      strings.ToLower(g[3]),
					Component:   strings.ToLower(g[2]),
					TargetState: strings.ToLower(g[1]),
				}
			},
		},
		{
			re: regexp.MustCompile(`^(?i)set ([\w-]+) to ([\w-]+) in ([\w-]+)$`),
			build: func(g []string) models.Intent {
				return models.Intent{
					Kind:        models.IntentActuatorSet,
					Device:      strings.ToLower(g[3]),
					Component:   strings.ToLower(g[1]),
					TargetState: strings.ToLower(g[2]),
				}
			},
		},
		{
			re: regexp.MustCompile(`^(?i)read ([\w-]+) from ([\w-]+)$`),
			build: func(g []string) models.Intent {
				return models.Intent{
					Kind:      models.IntentSensorRead,
					Device:    strings.ToLower(g[2]),
					Component: strings.ToLower(g[1]),
				}
			},
		},
	}}
}

// Interpret tries each template in order against the normalized input.
func (p *Pattern) Interpret(_ context.Context, text string) (models.Intent, error) {
	normalized := strings.Join(strings.Fields(text), " ")
	for _, t := range p.templates {
		if g := t.re.FindStringSubmatch(normalized); g != nil {
			return t.build(g), nil
		}
	}
	return models.Intent{}, fmt.Errorf("%w: %q", ErrUnrecognizedCommand, text)
}
