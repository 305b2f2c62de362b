package animation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/kpango/glg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/drichelson/hsvleds/hsv"
)

// Control is the tweakable state shared between the HTTP handlers and the
// frame loop. Vars are stored in thousandths; colors as hex without '#'.
// The zero value is ready to use.
type Control struct {
	mu     sync.RWMutex
	Vars   map[string]int
	Colors map[string]string
}

func NewControl() *Control {
	return &Control{
		Vars:   map[string]int{},
		Colors: map[string]string{},
	}
}

func (c *Control) State() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	jsonBytes, _ := json.Marshal(c)
	return string(jsonBytes)
}

// Load replaces vars and colors present in jsonString.
func (c *Control) Load(jsonString string) error {
	var loaded struct {
		Vars   map[string]int
		Colors map[string]string
	}
	if err := json.Unmarshal([]byte(jsonString), &loaded); err != nil {
		return fmt.Errorf("loading control state: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initMaps()
	for k, v := range loaded.Vars {
		c.Vars[k] = v
	}
	for k, v := range loaded.Colors {
		c.Colors[k] = v
	}
	return nil
}

// initMaps must be called with mu held.
func (c *Control) initMaps() {
	if c.Vars == nil {
		c.Vars = map[string]int{}
	}
	if c.Colors == nil {
		c.Colors = map[string]string{}
	}
}

// GetVar returns the var as a float, 0 if unset.
func (c *Control) GetVar(name string) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return float64(c.Vars[name]) / 1000.0
}

// SetVar stores val rounded to the nearest thousandth.
func (c *Control) SetVar(name string, val float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initMaps()
	c.Vars[name] = int(math.Round(val * 1000.0))
}

// GetVar8 returns a 0..1 var as an 8-bit level.
func (c *Control) GetVar8(name string) uint8 {
	v := c.GetVar(name)
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

func (c *Control) GetColorHex(colorVar string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Colors[colorVar]
}

// SetColorHex stores a hex color, with or without the leading '#'.
func (c *Control) SetColorHex(colorVar, hex string) error {
	hex = strings.TrimLeft(hex, "#")
	if _, err := colorful.Hex("#" + hex); err != nil {
		return fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initMaps()
	c.Colors[colorVar] = strings.ToLower(hex)
	return nil
}

func (c *Control) GetColor(colorVar string) colorful.Color {
	hex := "#" + c.GetColorHex(colorVar)
	color, err := colorful.Hex(hex)
	if err != nil {
		glg.Warnf("Got error when parsing color: %s %v", hex, err)
	}
	return color
}

func (c *Control) SetColor(colorVar string, color colorful.Color) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initMaps()
	c.Colors[colorVar] = strings.TrimLeft(color.Hex(), "#")
}

// GetHSV returns a stored color on the 8-bit HSV wheel.
func (c *Control) GetHSV(colorVar string) hsv.CHSV {
	return hsv.CHSVFromColorful(c.GetColor(colorVar))
}
