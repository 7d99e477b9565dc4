package seed

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Manifest describes monuments, their panoramas and hotspots. Panoramas and hotspots
// carry keys so hotspots can reference their target panorama and entry hotspot before
// any database ids exist.
type Manifest struct {
	Monuments []MonumentEntry `yaml:"monuments"`
}

type MonumentEntry struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	Latitude    *float64        `yaml:"latitude"`
	Longitude   *float64        `yaml:"longitude"`
	Panoramas   []PanoramaEntry `yaml:"panoramas"`
}

// PanoramaEntry leaves viewer limits nil to keep the model defaults.
type PanoramaEntry struct {
	Key    string `yaml:"key"`
	Title  string `yaml:"title"`
	Image  string `yaml:"image"`
	IsMain bool   `yaml:"is_main"`

	VAOV         *float64 `yaml:"vaov"`
	HAOV         *float64 `yaml:"haov"`
	MinPitch     *float64 `yaml:"min_pitch"`
	MaxPitch     *float64 `yaml:"max_pitch"`
	MinYaw       *float64 `yaml:"min_yaw"`
	MaxYaw       *float64 `yaml:"max_yaw"`
	MinHFOV      *float64 `yaml:"min_hfov"`
	MaxHFOV      *float64 `yaml:"max_hfov"`
	ShowZoomCtrl *bool    `yaml:"show_zoom_ctrl"`

	HotSpots []HotSpotEntry `yaml:"hotspots"`
}

type HotSpotEntry struct {
	Key         string  `yaml:"key"`
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	Pitch       float64 `yaml:"pitch"`
	Yaw         float64 `yaml:"yaw"`
	Image       string  `yaml:"image"`

	// Target is the key of the panorama this hotspot links to.
	Target      string   `yaml:"target"`
	TargetPitch *float64 `yaml:"target_pitch"`
	TargetYaw   *float64 `yaml:"target_yaw"`
	// Entry is the key of a hotspot whose position sets the arrival orientation.
	Entry string `yaml:"entry"`

	TransitionDuration *int     `yaml:"transition_duration"`
	TargetHFOV         *float64 `yaml:"target_hfov"`
	CSSClass           string   `yaml:"css_class"`
}

// Load decodes a manifest and checks its key references. Unknown fields are rejected.
func Load(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest is empty")
		}
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	if err := m.Check(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Check verifies that keys are unique and that every target and entry key resolves.
// Field ranges are left to the authoring service.
func (m *Manifest) Check() error {
	panoramas := map[string]bool{}
	hotspots := map[string]bool{}
	var errs []error

	for _, mon := range m.Monuments {
		for _, p := range mon.Panoramas {
			if p.Key == "" {
				errs = append(errs, fmt.Errorf("panorama %q in %q: key is required", p.Title, mon.Name))
				continue
			}
			if panoramas[p.Key] {
				errs = append(errs, fmt.Errorf("duplicate panorama key %q", p.Key))
			}
			panoramas[p.Key] = true
			for _, h := range p.HotSpots {
				if h.Key == "" {
					continue
				}
				if hotspots[h.Key] {
					errs = append(errs, fmt.Errorf("duplicate hotspot key %q", h.Key))
				}
				hotspots[h.Key] = true
			}
		}
	}

	for _, mon := range m.Monuments {
		for _, p := range mon.Panoramas {
			for _, h := range p.HotSpots {
				if h.Target != "" && !panoramas[h.Target] {
					errs = append(errs, fmt.Errorf("hotspot %q: unknown target panorama %q", h.Title, h.Target))
				}
				if h.Entry != "" && !hotspots[h.Entry] {
					errs = append(errs, fmt.Errorf("hotspot %q: unknown entry hotspot %q", h.Title, h.Entry))
				}
			}
		}
	}
	return errors.Join(errs...)
}
