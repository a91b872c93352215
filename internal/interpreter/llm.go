package interpreter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voiceplc/internal/models"
)

const (
	defaultLLMTimeout = 10 * time.Second
	maxPredictTokens  = 128
)

// SchemaProvider supplies the compact device/component schema included in
// every prompt. The registry implements it.
type SchemaProvider interface {
	Summary() string
}

// LLM is the model-backed strategy. It posts the utterance plus the device
// schema to a llama.cpp style completion endpoint and parses the model's
// strict-JSON reply into the same Intent set the pattern strategy produces.
type LLM struct {
	endpoint   string
	schema     SchemaProvider
	timeout    time.Duration
	httpClient *http.Client
}

// NewLLM builds a client for the given inference server base URL. A
// non-positive timeout falls back to the default.
func NewLLM(endpoint string, schema SchemaProvider, timeout time.Duration) *LLM {
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}
	return &LLM{
		endpoint:   strings.TrimRight(endpoint, "/"),
		schema:     schema,
		timeout:    timeout,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type completionRequest struct {
	Prompt      string   `json:"prompt"`
	NPredict    int      `json:"n_predict"`
	Temperature float64  `json:"temperature"`
	Stop        []string `json:"stop"`
	Stream      bool     `json:"stream"`
}

type completionResponse struct {
	Content string `json:"content"`
}

// wireIntent is the JSON shape the model must answer with.
type wireIntent struct {
	Type     string `json:"type"`
	Device   string `json:"device"`
	Sensor   string `json:"sensor"`
	Actuator string `json:"actuator"`
	State    string `json:"state"`
	Limit    int    `json:"limit"`
}

// Interpret sends one bounded completion request. Deadline exhaustion maps
// to ErrInterpreterTimeout; malformed or schema-violating replies map to
// ErrUnrecognizedCommand rather than a guessed Intent.
func (c *LLM) Interpret(ctx context.Context, text string) (models.Intent, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	reqBody, err := json.Marshal(completionRequest{
		Prompt:      c.buildPrompt(text),
		NPredict:    maxPredictTokens,
		Temperature: 0.1,
		Stop:        []string{"}"},
	})
	if err != nil {
		return models.Intent{}, fmt.Errorf("marshaling completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/completion", bytes.NewReader(reqBody))
	if err != nil {
		return models.Intent{}, fmt.Errorf("creating completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return models.Intent{}, fmt.Errorf("%w: %v", ErrInterpreterTimeout, err)
		}
		return models.Intent{}, fmt.Errorf("calling inference backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return models.Intent{}, fmt.Errorf("inference backend returned %d: %s", resp.StatusCode, string(body))
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return models.Intent{}, fmt.Errorf("decoding completion response: %w", err)
	}

	return c.parseReply(text, completion.Content)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var uerr *url.Error
	return errors.As(err, &uerr) && uerr.Timeout()
}

func (c *LLM) buildPrompt(text string) string {
	return fmt.Sprintf(`You control a set of industrial devices. Current system context:
%s
User command: %q

Task: parse the command into exactly one JSON object, nothing else.
- Asking about a sensor value (temperature, flow, level, ...) -> "sensor_read"
- Asking to turn something on/off or set a state -> "actuator_control"
- Asking about a device's status or location -> "status_check"
- Asking what devices exist -> "list_devices"
- Asking about past commands -> "show_history"

Use the EXACT device and component names from the context. Examples:
{"type": "sensor_read", "device": "WaterSystem", "sensor": "WaterTemp"}
{"type": "actuator_control", "device": "WaterSystem", "actuator": "MainPump", "state": "on"}
{"type": "status_check", "device": "WaterSystem"}
{"type": "list_devices"}
{"type": "show_history", "limit": 5}

Response (JSON only):`, c.schema.Summary(), text)
}

// parseReply turns the model's text back into an Intent. The generation
// stops at "}", so a missing trailing brace is re-appended; markdown fences
// are tolerated.
func (c *LLM) parseReply(text, reply string) (models.Intent, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)
	if reply != "" && !strings.HasSuffix(reply, "}") {
		reply += "}"
	}

	var wire wireIntent
	if err := json.Unmarshal([]byte(reply), &wire); err != nil {
		return models.Intent{}, fmt.Errorf("%w: %q (model reply not valid JSON: %v)", ErrUnrecognizedCommand, text, err)
	}

	switch wire.Type {
	case "list_devices":
		return models.Intent{Kind: models.IntentListDevices}, nil
	case "show_history":
		return models.Intent{Kind: models.IntentShowHistory, Limit: wire.Limit}, nil
	case "status_check":
		if wire.Device == "" {
			return models.Intent{}, fmt.Errorf("%w: %q (model omitted device)", ErrUnrecognizedCommand, text)
		}
		return models.Intent{Kind: models.IntentDeviceStatus, Device: wire.Device}, nil
	case "sensor_read":
		if wire.Device == "" || wire.Sensor == "" {
			return models.Intent{}, fmt.Errorf("%w: %q (model omitted device or sensor)", ErrUnrecognizedCommand, text)
		}
		return models.Intent{Kind: models.IntentSensorRead, Device: wire.Device, Component: wire.Sensor}, nil
	case "actuator_control":
		if wire.Device == "" || wire.Actuator == "" || wire.State == "" {
			return models.Intent{}, fmt.Errorf("%w: %q (model omitted device, actuator, or state)", ErrUnrecognizedCommand, text)
		}
		return models.Intent{
			Kind:        models.IntentActuatorSet,
			Device:      wire.Device,
			Component:   wire.Actuator,
			TargetState: wire.State,
		}, nil
	default:
		return models.Intent{}, fmt.Errorf("%w: %q (model answered unknown type %q)", ErrUnrecognizedCommand, text, wire.Type)
	}
}
