package schema

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

var ErrUnknownParam = errors.New("unknown parameter")

// Key names a tunable parameter. The names match the keys used in the
// parameter file and in share links.
type Key string

const (
	KeyColor          Key = "color"
	KeyRadius         Key = "radius"
	KeyLightIntensity Key = "lightIntensity"
	KeyLightColor     Key = "lightColor"
	KeyWobbleFactor   Key = "wobbleFactor"
	KeyWobbleSpeed    Key = "wobbleSpeed"
)

// Range describes the allowed values of a numeric parameter.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp limits value to the range and snaps it to the nearest step.
func (r Range) Clamp(value float64) float64 {
	if math.IsNaN(value) {
		return r.Min
	}
	value = max(r.Min, min(r.Max, value))
	steps := math.Round((value - r.Min) / r.Step)
	snapped := r.Min + steps*r.Step
	// avoid 0.30000000000000004 style drift
	snapped = math.Round(snapped*1e6) / 1e6
	return min(r.Max, snapped)
}

var Ranges = map[Key]Range{
	KeyRadius:         {Min: 1, Max: 10, Step: 0.5},
	KeyLightIntensity: {Min: 0, Max: 5, Step: 0.1},
	KeyWobbleFactor:   {Min: 0, Max: 2, Step: 0.1},
	KeyWobbleSpeed:    {Min: 0, Max: 5, Step: 0.1},
}

// Params is a snapshot of the values exposed on the control panel. Scene
// code only ever reads a Params value; the panel produces new ones.
type Params struct {
	Color          string  `toml:"color" json:"color"`
	Radius         float64 `toml:"radius" json:"radius"`
	LightIntensity float64 `toml:"lightIntensity" json:"lightIntensity"`
	LightColor     string  `toml:"lightColor" json:"lightColor"`
	WobbleFactor   float64 `toml:"wobbleFactor" json:"wobbleFactor"`
	WobbleSpeed    float64 `toml:"wobbleSpeed" json:"wobbleSpeed"`
}

func DefaultParams() Params {
	return Params{
		Color:          "#ff6347",
		Radius:         3,
		LightIntensity: 1,
		LightColor:     "white",
		WobbleFactor:   0.6,
		WobbleSpeed:    1,
	}
}

// Normalize returns a copy with every numeric value clamped to its range and
// every color that does not parse replaced by the default.
func (p Params) Normalize() Params {
	defaults := DefaultParams()
	if _, err := ParseColor(p.Color); err != nil {
		p.Color = defaults.Color
	}
	if _, err := ParseColor(p.LightColor); err != nil {
		p.LightColor = defaults.LightColor
	}
	p.Radius = Ranges[KeyRadius].Clamp(p.Radius)
	p.LightIntensity = Ranges[KeyLightIntensity].Clamp(p.LightIntensity)
	p.WobbleFactor = Ranges[KeyWobbleFactor].Clamp(p.WobbleFactor)
	p.WobbleSpeed = Ranges[KeyWobbleSpeed].Clamp(p.WobbleSpeed)
	return p
}

// Number returns the value of a numeric parameter.
func (p Params) Number(key Key) (float64, error) {
	switch key {
	case KeyRadius:
		return p.Radius, nil
	case KeyLightIntensity:
		return p.LightIntensity, nil
	case KeyWobbleFactor:
		return p.WobbleFactor, nil
	case KeyWobbleSpeed:
		return p.WobbleSpeed, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
}

// WithNumber returns a copy with the numeric parameter set to value, clamped
// to its range.
func (p Params) WithNumber(key Key, value float64) (Params, error) {
	rng, ok := Ranges[key]
	if !ok {
		return p, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	value = rng.Clamp(value)
	switch key {
	case KeyRadius:
		p.Radius = value
	case KeyLightIntensity:
		p.LightIntensity = value
	case KeyWobbleFactor:
		p.WobbleFactor = value
	case KeyWobbleSpeed:
		p.WobbleSpeed = value
	}
	return p, nil
}

// Step moves a numeric parameter by count steps of its range.
func (p Params) Step(key Key, count int) (Params, error) {
	value, err := p.Number(key)
	if err != nil {
		return p, err
	}
	return p.WithNumber(key, value+float64(count)*Ranges[key].Step)
}

// WithColor returns a copy with a color parameter replaced.
func (p Params) WithColor(key Key, color string) (Params, error) {
	if _, err := ParseColor(color); err != nil {
		return p, err
	}
	switch key {
	case KeyColor:
		p.Color = color
	case KeyLightColor:
		p.LightColor = color
	default:
		return p, fmt.Errorf("%w: %q", ErrUnknownParam, key)
	}
	return p, nil
}

// ParseParams reads a TOML parameter document. Keys missing from the
// document keep their default values.
func ParseParams(data []byte) (Params, error) {
	result := DefaultParams()
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&result); err != nil {
		return Params{}, fmt.Errorf("failed to decode params: %w", err)
	}
	return result.Normalize(), nil
}

// Query encodes the parameters for a share link.
func (p Params) Query() url.Values {
	values := url.Values{}
	values.Set(string(KeyColor), p.Color)
	values.Set(string(KeyRadius), strconv.FormatFloat(p.Radius, 'f', -1, 64))
	values.Set(string(KeyLightIntensity), strconv.FormatFloat(p.LightIntensity, 'f', -1, 64))
	values.Set(string(KeyLightColor), p.LightColor)
	values.Set(string(KeyWobbleFactor), strconv.FormatFloat(p.WobbleFactor, 'f', -1, 64))
	values.Set(string(KeyWobbleSpeed), strconv.FormatFloat(p.WobbleSpeed, 'f', -1, 64))
	return values
}

// ParamsFromQuery overrides base with every well-formed value found in
// values. Malformed numbers are ignored.
func ParamsFromQuery(values url.Values, base Params) Params {
	if color := values.Get(string(KeyColor)); color != "" {
		base.Color = color
	}
	if color := values.Get(string(KeyLightColor)); color != "" {
		base.LightColor = color
	}
	for _, key := range []Key{KeyRadius, KeyLightIntensity, KeyWobbleFactor, KeyWobbleSpeed} {
		raw := values.Get(string(key))
		if raw == "" {
			continue
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		base, _ = base.WithNumber(key, value)
	}
	return base.Normalize()
}
