// Command gainknob opens the gain knob editor and plays a preview tone through the processor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/theme"

	"github.com/justyntemme/gainknob/pkg/config"
	"github.com/justyntemme/gainknob/pkg/dial"
	"github.com/justyntemme/gainknob/pkg/editor"
	"github.com/justyntemme/gainknob/pkg/framework/debug"
	"github.com/justyntemme/gainknob/pkg/gainknob"
	"github.com/justyntemme/gainknob/pkg/host"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	mute := flag.Bool("mute", false, "do not open the audio device")
	statePath := flag.String("state", "", "restore state from this file at start and save it on close")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gainknob:", err)
		os.Exit(1)
	}

	logger := debug.New(
		debug.WithLevelString(cfg.Log.Level),
		debug.WithDevelopment(cfg.Log.Development),
		debug.WithPrefix("gainknob"),
	)
	debug.SetDefault(logger)
	defer logger.Flush()

	debug.WarnIf(len(cfg.Undecoded) > 0, "ignoring unknown config keys: %s", strings.Join(cfg.Undecoded, ", "))

	plug, err := gainknob.New(cfg.Gain)
	if err != nil {
		fail(err)
	}
	debug.Info("%s %s (%s)", plug.Info.Name, plug.Info.Version, plug.Info.UIDString())

	if *statePath != "" {
		restoreState(plug, *statePath)
	}

	if err := plug.Processor.Prepare(float64(cfg.Audio.SampleRate), int32(cfg.Audio.BlockSize)); err != nil {
		fail(err)
	}

	var player *host.Player
	if !*mute {
		player, err = startAudio(cfg.Audio, plug)
		if err != nil {
			// The editor is still useful without sound
			debug.Warn("audio preview disabled: %v", err)
		}
	}

	fa := app.NewWithID(gainknob.PluginID)
	fa.Settings().SetTheme(theme.DarkTheme())
	w := fa.NewWindow(title(plug))

	layout := dial.Layout{Radius: cfg.Dial.Radius, Style: dial.DefaultStyle()}
	knob := editor.NewKnob(plug.Gain(), layout, cfg.UI.DragSensitivity)
	knob.OnChanged = func(float64) {
		w.SetTitle(title(plug))
	}

	w.SetContent(knob)
	w.SetPadded(false)
	w.Resize(fyne.NewSize(float32(cfg.UI.Width), float32(cfg.UI.Height)))

	w.SetCloseIntercept(func() {
		if *statePath != "" {
			saveState(plug, *statePath)
		}
		if player != nil {
			if err := player.Close(); err != nil {
				debug.Warn("close audio: %v", err)
			}
		}
		plug.Processor.Release()
		w.Close()
	})

	w.ShowAndRun()
}

func title(plug *gainknob.Plugin) string {
	return fmt.Sprintf("%s - %s", plug.Info.Name, plug.Gain().String())
}

func startAudio(cfg config.Audio, plug *gainknob.Plugin) (*host.Player, error) {
	numIn := plug.Processor.TotalInputChannels()
	numOut := plug.Processor.TotalOutputChannels()

	tone := host.NewToneSource(float64(cfg.SampleRate), cfg.ToneHz, cfg.ToneLevelDB)
	stream, err := host.NewStream(tone, plug.Processor, numIn, numOut, cfg.BlockSize)
	if err != nil {
		return nil, err
	}

	player, err := host.NewPlayer(cfg.SampleRate, stream.Channels(), stream)
	if err != nil {
		return nil, err
	}
	player.Start()
	debug.Info("playing %.0f Hz preview at %d Hz, %d frames per block", cfg.ToneHz, cfg.SampleRate, cfg.BlockSize)
	return player, nil
}

func restoreState(plug *gainknob.Plugin, path string) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		debug.Debug("no state at %s, using defaults", path)
		return
	}
	if err != nil {
		debug.Warn("read state: %v", err)
		return
	}
	plug.SetState(data)
	debug.Info("restored gain %s from %s", plug.Gain().String(), path)
}

func saveState(plug *gainknob.Plugin, path string) {
	data, err := plug.GetState()
	if err != nil {
		debug.Error("encode state: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		debug.Error("write state: %v", err)
	}
}

func fail(err error) {
	debug.Error("%v", err)
	debug.Default().Flush()
	os.Exit(1)
}
