// SPDX-License-Identifier: Unlicense OR MIT

package main

// A Gio program that demonstrates draggable sheets. Tap the menu
// button to open a sheet; drag its handle to resize or dismiss it.
// Back or Escape closes the sheet.

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io/ioutil"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/app/headless"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/router"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

var (
	configFile = flag.String("config", "", "read sheet options from a YAML file")
	direction  = flag.String("direction", "", "sheet direction: bottom, left or right")
	useOffset  = flag.Bool("offset", false, "slide the bottom sheet down instead of shrinking it")
	maxWidth   = flag.Bool("maxwidth", false, "let the bottom sheet span the window width")
	screenshot = flag.String("screenshot", "", "save a screenshot with an open sheet to a file and exit")
)

func main() {
	flag.Parse()
	cfg, err := config()
	if err != nil {
		log.Fatal(err)
	}
	if *screenshot != "" {
		if err := saveScreenshot(*screenshot, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "failed to save screenshot: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	go func() {
		w := app.NewWindow(app.Size(unit.Dp(420), unit.Dp(800)))
		if err := loop(w, cfg); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// config merges the configuration file and the flags.
func config() (Config, error) {
	cfg := defaultConfig()
	if *configFile != "" {
		c, err := loadConfig(*configFile)
		if err != nil {
			return cfg, err
		}
		cfg = c
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "direction":
			cfg.Direction = *direction
		case "offset":
			cfg.UseOffset = *useOffset
		case "maxwidth":
			cfg.MaxWidth = *maxWidth
		}
	})
	if _, err := parseDirection(cfg.Direction); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loop(w *app.Window, cfg Config) error {
	th := material.NewTheme(gofont.Collection())
	ui, err := newUI(th, cfg)
	if err != nil {
		return err
	}

	var ops op.Ops
	for {
		e := <-w.Events()
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case *system.CommandEvent:
			if e.Type == system.CommandBack && ui.back() {
				e.Cancel = true
				w.Invalidate()
			}
		case key.Event:
			if e.Name == key.NameEscape && ui.back() {
				w.Invalidate()
			}
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func saveScreenshot(f string, cfg Config) error {
	const scale = 1.5
	sz := image.Point{X: 420 * scale, Y: 800 * scale}
	w, err := headless.NewWindow(sz.X, sz.Y)
	if err != nil {
		return err
	}
	defer w.Release()
	gtx := layout.Context{
		Ops: new(op.Ops),
		Metric: unit.Metric{
			PxPerDp: scale,
			PxPerSp: scale,
		},
		Constraints: layout.Exact(sz),
		Queue:       new(router.Router),
	}
	th := material.NewTheme(gofont.Collection())
	ui, err := newUI(th, cfg)
	if err != nil {
		return err
	}
	ui.open()
	ui.Layout(gtx)
	w.Frame(gtx.Ops)
	img, err := w.Screenshot()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return ioutil.WriteFile(f, buf.Bytes(), 0666)
}
