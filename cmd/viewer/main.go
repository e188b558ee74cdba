package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"scene-viewer/internal/config"
	"scene-viewer/internal/game"
	"scene-viewer/internal/input"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (defaults are used when empty)")
	fpsLimit := flag.Int("fps", -1, "frame cap, 0 for unlimited (overrides the config file)")
	sensitivity := flag.Float64("sensitivity", 0, "mouse sensitivity in radians per pixel (overrides the config file)")
	width := flag.Int("width", 800, "initial window width")
	height := flag.Int("height", 600, "initial window height")
	logEvery := flag.Int("log-every", 120, "log every n-th frame")
	flag.Parse()

	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		if err := config.Apply(cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
		log.Printf("loaded %s (%d entities)", *configPath, len(cfg.Scene.Entities))
	}
	if *fpsLimit >= 0 {
		config.SetFPSLimit(*fpsLimit)
	}
	if *sensitivity > 0 {
		config.SetMouseSensitivity(float32(*sensitivity))
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	window, err := setupWindow(*width, *height)
	if err != nil {
		panic(err)
	}
	defer window.Destroy()

	fbWidth, fbHeight := window.GetFramebufferSize()
	session, err := game.NewSession(config.Current(), fbWidth, fbHeight)
	if err != nil {
		panic(err)
	}

	renderer := game.NewLogRenderer(log.New(os.Stdout, "", log.LstdFlags), *logEvery)
	app := game.NewApp(window, input.NewInputManager(), session, renderer)
	app.Run()
}
