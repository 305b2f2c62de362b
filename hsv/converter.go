package hsv

import (
	"fmt"

	"github.com/drichelson/hsvleds/lib8"
)

// Curve maps an 8-bit level onto another. Curves must be monotonic.
type Curve func(uint8) uint8

// Linear is the identity curve.
func Linear(x uint8) uint8 { return x }

// YellowLevel picks how much extra weight the rainbow gives to yellow.
// Pure yellow reads about 93% as bright as white, so it is rendered hotter
// than the other hues.
type YellowLevel uint8

const (
	// YellowModerate is the default boost.
	YellowModerate YellowLevel = 1
	// YellowStrong pushes orange and yellow further.
	YellowStrong YellowLevel = 2
)

// Kernel selects the arithmetic used for the spectrum ramps. All kernels
// produce identical output.
type Kernel uint8

const (
	// KernelDivide scales the 0..63 ramps and divides by 64.
	KernelDivide Kernel = iota
	// KernelShift scales the ramps up to 0..252 and keeps the high byte of
	// the 8x8 product, the shape that suits 8-bit hardware multipliers.
	KernelShift
)

// Config is fixed when a Converter is built. Zero values select the
// defaults.
type Config struct {
	// Dimming is applied to value and inverse saturation in the spectrum
	// conversion. Nil means Linear.
	Dimming Curve
	// Yellow is the rainbow yellow boost. Zero means YellowModerate.
	Yellow YellowLevel
	// HalveGreen halves the rainbow's green channel, for strips whose green
	// die overpowers red and blue.
	HalveGreen bool
	// Kernel picks the spectrum section arithmetic. Both give identical output.
	Kernel Kernel
}

// Converter turns CHSV into CRGB. It holds no per-call state and is safe for
// concurrent use.
type Converter struct {
	dim      Curve
	spectrum func(hue, floor, amplitude uint8) CRGB
	sections [8]sectionFunc
}

// Default is the converter behind the package-level functions.
var Default = New(Config{})

// New builds a converter. Every policy choice in cfg is resolved here so the
// per-pixel paths never branch on it.
func New(cfg Config) *Converter {
	c := &Converter{dim: cfg.Dimming}
	if c.dim == nil {
		c.dim = Linear
	}
	switch cfg.Kernel {
	case KernelShift:
		c.spectrum = spectrumShift
	default:
		c.spectrum = spectrumDivide
	}
	c.sections = rainbowSections(cfg.Yellow, cfg.HalveGreen)
	return c
}

// ParseYellowLevel accepts "1"/"moderate" and "2"/"strong".
func ParseYellowLevel(s string) (YellowLevel, error) {
	switch s {
	case "1", "moderate":
		return YellowModerate, nil
	case "2", "strong":
		return YellowStrong, nil
	}
	return 0, fmt.Errorf("unknown yellow level %q", s)
}

// ParseCurve accepts "linear", "raw" and "video".
func ParseCurve(s string) (Curve, error) {
	switch s {
	case "", "linear":
		return Linear, nil
	case "raw":
		return lib8.Dim8Raw, nil
	case "video":
		return lib8.Dim8Video, nil
	}
	return nil, fmt.Errorf("unknown dimming curve %q", s)
}

// ParseKernel accepts "divide" and "shift".
func ParseKernel(s string) (Kernel, error) {
	switch s {
	case "", "divide":
		return KernelDivide, nil
	case "shift":
		return KernelShift, nil
	}
	return 0, fmt.Errorf("unknown spectrum kernel %q", s)
}
