// Command dialpng renders one frame of the gain dial to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/justyntemme/gainknob/pkg/config"
	"github.com/justyntemme/gainknob/pkg/dial"
	"github.com/justyntemme/gainknob/pkg/dial/raster"
	"github.com/justyntemme/gainknob/pkg/framework/debug"
	"github.com/justyntemme/gainknob/pkg/framework/param"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	value := flag.String("value", "", "gain to draw, e.g. \"+3 dB\" (default: the configured default)")
	width := flag.Int("width", 0, "image width (default: ui.width)")
	height := flag.Int("height", 0, "image height (default: ui.height)")
	out := flag.String("o", "dial.png", "output file")
	flag.Parse()

	if err := run(*configPath, *value, *width, *height, *out); err != nil {
		debug.Error("%v", err)
		debug.Default().Flush()
		os.Exit(1)
	}
}

func run(configPath, value string, width, height int, out string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	debug.Default().SetPrefix("dialpng")
	debug.SetLevel(levelOf(cfg.Log.Level))

	gain := param.GainParameter(0, "gain", cfg.Gain.Min, cfg.Gain.Max, cfg.Gain.Default).Build()
	if value != "" {
		v, err := gain.ParseValue(value)
		if err != nil {
			return err
		}
		gain.Set(v)
	}

	if width <= 0 {
		width = cfg.UI.Width
	}
	if height <= 0 {
		height = cfg.UI.Height
	}

	s := raster.NewImage(width, height)
	defer s.Close()
	layout := dial.Layout{Radius: cfg.Dial.Radius, Style: dial.DefaultStyle()}
	dial.Render(s, s.Bounds(), gain.Get(), gain.Range(), layout)

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := png.Encode(f, s.Image()); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	debug.Info("wrote %s (%dx%d, %s)", out, width, height, gain.String())
	return nil
}

func levelOf(name string) debug.LogLevel {
	lv, err := debug.ParseLevel(name)
	if err != nil {
		debug.Warn("%v, using info", err)
	}
	return lv
}
