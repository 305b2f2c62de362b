package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"

	"github.com/kpango/glg"
	"gopkg.in/macaron.v1"

	"github.com/drichelson/hsvleds/animation"
	"github.com/drichelson/hsvleds/hsv"
)

// Flags is the startup configuration. A JSON preset overrides the command
// line.
type Flags struct {
	Port       int
	Animation  string
	Yellow     string
	HalveGreen bool
	Dimming    string
	Kernel     string
	preset     string
	makePreset bool
}

var control = animation.NewControl()

func main() {
	var f Flags
	flag.IntVar(&f.Port, "port", 4000, "HTTP control port")
	flag.StringVar(&f.Animation, "animation", "noise", fmt.Sprintf("animation to run, one of %v", animation.Names))
	flag.StringVar(&f.Yellow, "yellow", "moderate", "rainbow yellow boost: moderate or strong")
	flag.BoolVar(&f.HalveGreen, "halve-green", false, "halve the rainbow's green channel")
	flag.StringVar(&f.Dimming, "dimming", "linear", "spectrum dimming curve: linear, raw or video")
	flag.StringVar(&f.Kernel, "kernel", "divide", "spectrum ramp arithmetic: divide or shift")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "print the current flags as a preset and exit")
	flag.Parse()

	if f.makePreset {
		out, err := json.MarshalIndent(f, "", "\t")
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	if f.preset != "" {
		data, err := os.ReadFile(f.preset)
		if err != nil {
			glg.Fatalf("Unable to read preset from %s: %v", f.preset, err)
		}
		if err := json.Unmarshal(data, &f); err != nil {
			glg.Fatalf("Unable to parse preset from %s: %v", f.preset, err)
		}
	}

	conv, err := f.converter()
	if err != nil {
		glg.Fatal(err)
	}

	control.SetVar("varA", 0.5)
	control.SetVar("varB", 1.0)
	control.SetVar("varC", 0.5)
	control.SetVar("varD", 0.5)
	control.SetVar("brightness", 1.0)
	control.SetVar("speed", 0.3)

	for _, name := range []string{"A", "B", "C", "D"} {
		if err := control.SetColorHex(name, "ff00ff"); err != nil {
			glg.Fatal(err)
		}
	}

	m := macaron.Classic()
	m.Get("/state", func(ctx *macaron.Context) string {
		ctx.Header().Set("Content-Type", "application/json")
		return control.State()
	})
	for _, name := range []string{"speed", "brightness", "varA", "varB", "varC", "varD"} {
		varName := name
		m.Get("/"+varName, func(ctx *macaron.Context) string {
			return getVar(ctx, varName)
		})
	}
	for _, name := range []string{"A", "B", "C", "D"} {
		colorName := name
		m.Get("/color"+colorName, func(ctx *macaron.Context) string {
			return getColor(ctx, colorName)
		})
	}
	go m.Run(f.Port)

	if err := animation.Start(f.Animation, control, conv); err != nil {
		glg.Fatalf("Unable to start animation: %v", err)
	}
}

func (f Flags) converter() (*hsv.Converter, error) {
	yellow, err := hsv.ParseYellowLevel(f.Yellow)
	if err != nil {
		return nil, err
	}
	dimming, err := hsv.ParseCurve(f.Dimming)
	if err != nil {
		return nil, err
	}
	kernel, err := hsv.ParseKernel(f.Kernel)
	if err != nil {
		return nil, err
	}
	return hsv.New(hsv.Config{
		Dimming:    dimming,
		Yellow:     yellow,
		HalveGreen: f.HalveGreen,
		Kernel:     kernel,
	}), nil
}

// Generic handler for getting/setting vars.
// Use with GET to retrieve the var
// Use with GET with query param state=<newVal> to set var, in thousandths.
func getVar(ctx *macaron.Context, varName string) string {
	ctx.Header().Set("Content-Type", "application/json")
	newValString := ctx.Query("state")
	if newValString == "" {
		return "{\"state\": \"" + strconv.Itoa(int(control.GetVar(varName)*1000.0)) + "\"}"
	}
	newVal, err := strconv.Atoi(newValString)
	if err != nil {
		ctx.Resp.WriteHeader(http.StatusBadRequest)
		return "not a number!"
	}
	control.SetVar(varName, float64(newVal)/1000.0)
	glg.Info(control.State())
	return "{\"state\": \"" + newValString + "\"}"
}

func getColor(ctx *macaron.Context, varName string) string {
	ctx.Header().Set("Content-Type", "application/json")
	newVal := ctx.Query("state")
	if newVal == "" {
		return "{\"state\": \"" + control.GetColorHex(varName) + "\"}"
	}
	if err := control.SetColorHex(varName, newVal); err != nil {
		ctx.Resp.WriteHeader(http.StatusBadRequest)
		return err.Error()
	}
	glg.Info(control.State())
	return "{\"state\": \"" + control.GetColorHex(varName) + "\"}"
}
