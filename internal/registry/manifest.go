package registry

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"voiceplc/internal/models"
)

// Manifest is the parsed device/component configuration. Document order is
// preserved so the registry's listings stay deterministic.
type Manifest struct {
	Devices []DeviceManifest
}

type DeviceManifest struct {
	Name      string
	Location  string
	Sensors   []SensorManifest
	Actuators []ActuatorManifest
}

type SensorManifest struct {
	ID          string    `yaml:"id"`
	Type        string    `yaml:"type"`
	Unit        string    `yaml:"unit"`
	Range       []float64 `yaml:"range"`
	MockRange   []float64 `yaml:"mock_range"`
	Description string    `yaml:"description"`
}

type ActuatorManifest struct {
	ID           string   `yaml:"id"`
	Type         string   `yaml:"type"`
	States       []string `yaml:"states"`
	InitialState string   `yaml:"initial_state"`
	Description  string   `yaml:"description"`
}

// deviceBody is the per-device mapping before component order is recovered.
type deviceBody struct {
	Location  string    `yaml:"location"`
	Sensors   yaml.Node `yaml:"sensors"`
	Actuators yaml.Node `yaml:"actuators"`
}

type manifestFile struct {
	Devices yaml.Node `yaml:"devices"`
}

// LoadManifest reads, env-expands, parses, and validates a devices.yml file.
// Any malformed entry fails with an error naming the offending id.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return ParseManifest([]byte(os.ExpandEnv(string(data))))
}

// ParseManifest parses and validates manifest bytes.
func ParseManifest(data []byte) (*Manifest, error) {
	var file manifestFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if file.Devices.Kind == 0 {
		return nil, fmt.Errorf("manifest has no devices section")
	}
	if file.Devices.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("devices section must be a mapping of device name to definition")
	}

	m := &Manifest{}
	for i := 0; i+1 < len(file.Devices.Content); i += 2 {
		name := file.Devices.Content[i].Value
		dev, err := parseDevice(name, file.Devices.Content[i+1])
		if err != nil {
			return nil, err
		}
		m.Devices = append(m.Devices, dev)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseDevice(name string, node *yaml.Node) (DeviceManifest, error) {
	var body deviceBody
	if err := node.Decode(&body); err != nil {
		return DeviceManifest{}, fmt.Errorf("device %q: %w", name, err)
	}
	dev := DeviceManifest{Name: name, Location: body.Location}

	if body.Sensors.Kind != 0 {
		if body.Sensors.Kind != yaml.MappingNode {
			return DeviceManifest{}, fmt.Errorf("device %q: sensors must be a mapping of id to definition", name)
		}
		for i := 0; i+1 < len(body.Sensors.Content); i += 2 {
			id := body.Sensors.Content[i].Value
			var s SensorManifest
			if err := body.Sensors.Content[i+1].Decode(&s); err != nil {
				return DeviceManifest{}, fmt.Errorf("device %q: sensor %q: %w", name, id, err)
			}
			if s.ID == "" {
				s.ID = id
			}
			dev.Sensors = append(dev.Sensors, s)
		}
	}

	if body.Actuators.Kind != 0 {
		if body.Actuators.Kind != yaml.MappingNode {
			return DeviceManifest{}, fmt.Errorf("device %q: actuators must be a mapping of id to definition", name)
		}
		for i := 0; i+1 < len(body.Actuators.Content); i += 2 {
			id := body.Actuators.Content[i].Value
			var a ActuatorManifest
			if err := body.Actuators.Content[i+1].Decode(&a); err != nil {
				return DeviceManifest{}, fmt.Errorf("device %q: actuator %q: %w", name, id, err)
			}
			if a.ID == "" {
				a.ID = id
			}
			dev.Actuators = append(dev.Actuators, a)
		}
	}

	return dev, nil
}

func (m *Manifest) validate() error {
	if len(m.Devices) == 0 {
		return fmt.Errorf("manifest defines no devices")
	}
	for _, dev := range m.Devices {
		if strings.TrimSpace(dev.Name) == "" {
			return fmt.Errorf("manifest contains a device with an empty name")
		}
		seen := make(map[string]bool)
		for _, s := range dev.Sensors {
			if err := validateSensor(dev.Name, s); err != nil {
				return err
			}
			key := strings.ToLower(s.ID)
			if seen[key] {
				return fmt.Errorf("device %q: duplicate component id %q", dev.Name, s.ID)
			}
			seen[key] = true
		}
		for _, a := range dev.Actuators {
			if err := validateActuator(dev.Name, a); err != nil {
				return err
			}
			key := strings.ToLower(a.ID)
			if seen[key] {
				return fmt.Errorf("device %q: duplicate component id %q", dev.Name, a.ID)
			}
			seen[key] = true
		}
	}
	return nil
}

func validateSensor(device string, s SensorManifest) error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("device %q: sensor with an empty id", device)
	}
	if s.Type == "" {
		return fmt.Errorf("device %q: sensor %q: missing type", device, s.ID)
	}
	if s.Unit == "" {
		return fmt.Errorf("device %q: sensor %q: missing unit", device, s.ID)
	}
	if len(s.Range) != 2 {
		return fmt.Errorf("device %q: sensor %q: range must be [min, max]", device, s.ID)
	}
	if s.Range[0] > s.Range[1] {
		return fmt.Errorf("device %q: sensor %q: range min %.2f exceeds max %.2f", device, s.ID, s.Range[0], s.Range[1])
	}
	if len(s.MockRange) != 0 {
		if len(s.MockRange) != 2 {
			return fmt.Errorf("device %q: sensor %q: mock_range must be [min, max]", device, s.ID)
		}
		if s.MockRange[0] > s.MockRange[1] {
			return fmt.Errorf("device %q: sensor %q: mock_range min %.2f exceeds max %.2f", device, s.ID, s.MockRange[0], s.MockRange[1])
		}
	}
	return nil
}

func validateActuator(device string, a ActuatorManifest) error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("device %q: actuator with an empty id", device)
	}
	if a.Type == "" {
		return fmt.Errorf("device %q: actuator %q: missing type", device, a.ID)
	}
	if len(a.States) == 0 {
		return fmt.Errorf("device %q: actuator %q: states must not be empty", device, a.ID)
	}
	if a.InitialState != "" {
		found := false
		for _, st := range a.States {
			if strings.EqualFold(st, a.InitialState) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("device %q: actuator %q: initial_state %q is not one of its states", device, a.ID, a.InitialState)
		}
	}
	return nil
}

// Build constructs the registry from a validated manifest.
func Build(m *Manifest) (*Registry, error) {
	r := New()
	for _, dm := range m.Devices {
		d := models.NewDevice(dm.Name, dm.Location)
		for _, sm := range dm.Sensors {
			s := models.NewSensor(sm.ID, models.ComponentKind(sm.Type), sm.Unit, sm.Range[0], sm.Range[1], sm.Description)
			if len(sm.MockRange) == 2 {
				s.MockMin, s.MockMax = sm.MockRange[0], sm.MockRange[1]
			}
			d.AddSensor(s)
		}
		for _, am := range dm.Actuators {
			d.AddActuator(models.NewActuator(am.ID, models.ComponentKind(am.Type), am.States, am.InitialState, am.Description))
		}
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// LoadRegistry is the startup path: manifest file in, ready registry out.
func LoadRegistry(path string) (*Registry, error) {
	m, err := LoadManifest(path)
	if err != nil {
		return nil, err
	}
	return Build(m)
}
