package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/urfave/cli/v2"

	"github.com/der-antikeks/triangles/assets"
	"github.com/der-antikeks/triangles/config"
	"github.com/der-antikeks/triangles/engine"
	"github.com/der-antikeks/triangles/game"
)

func init() {
	// glfw and gl calls have to stay on the main thread
	runtime.LockOSThread()
}

type options struct {
	Config     *config.Config
	Watch      bool
	Frames     int
	Screenshot string
}

func newApp(run func(options) error) *cli.App {
	return &cli.App{
		Name:  "triangles",
		Usage: "draw two triangles with two shader programs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from toml `FILE`"},
			&cli.IntFlag{Name: "width", Usage: "window width"},
			&cli.IntFlag{Name: "height", Usage: "window height"},
			&cli.StringFlag{Name: "title", Usage: "window title"},
			&cli.StringFlag{Name: "assets", Usage: "asset `DIR`, shaders are read from DIR/shaders"},
			&cli.BoolFlag{Name: "vsync", Usage: "wait for vertical sync on buffer swap"},
			&cli.BoolFlag{Name: "wireframe", Usage: "draw outlines only"},
			&cli.BoolFlag{Name: "watch", Usage: "recompile shaders changed on disk"},
			&cli.IntFlag{Name: "frames", Usage: "exit after `N` frames, 0 runs until the window is closed"},
			&cli.StringFlag{Name: "screenshot", Usage: "write the last frame to png `FILE`"},
		},
		Action: func(ctx *cli.Context) error {
			o, err := optionsFromContext(ctx)
			if err != nil {
				return err
			}
			return run(o)
		},
	}
}

func optionsFromContext(ctx *cli.Context) (options, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return options{}, err
		}
	}

	// flags override the file
	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if ctx.IsSet("title") {
		cfg.Window.Title = ctx.String("title")
	}
	if ctx.IsSet("assets") {
		cfg.Assets = ctx.String("assets")
	}
	if ctx.IsSet("vsync") {
		cfg.Window.VSync = ctx.Bool("vsync")
	}
	if ctx.IsSet("wireframe") {
		cfg.Wireframe = ctx.Bool("wireframe")
	}

	if err := cfg.Validate(); err != nil {
		return options{}, fmt.Errorf("invalid configuration: %w", err)
	}

	o := options{
		Config:     cfg,
		Watch:      ctx.Bool("watch"),
		Frames:     ctx.Int("frames"),
		Screenshot: ctx.String("screenshot"),
	}
	if o.Frames < 0 {
		return options{}, fmt.Errorf("invalid frame count %d", o.Frames)
	}

	return o, nil
}

func run(o options) error {
	cfg := o.Config

	win, err := engine.NewWindow(engine.WindowOptions{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Cleanup()

	log.Println("opengl", win.Version())

	loader := assets.NewLoader(cfg.Assets)
	scene, err := game.NewScene(cfg, loader)
	if err != nil {
		return err
	}
	defer scene.Dispose()

	renderer := engine.NewRenderer(mgl32.Vec4(cfg.ClearColor))
	renderer.SetWireframe(cfg.Wireframe)

	var capture bool
	win.OnKey = func(k engine.Key) {
		switch k {
		case engine.KeyW:
			renderer.SetWireframe(!renderer.Wireframe())
		case engine.KeyF12:
			capture = true
		}
	}

	var changes <-chan string
	if o.Watch {
		w, err := assets.NewWatcher(loader.ShaderDir())
		if err != nil {
			return err
		}
		defer w.Close()

		changes = w.Changes()
		log.Println("watching", loader.ShaderDir())
	}

	// main loop
	var (
		lastTime    = time.Now()
		currentTime time.Time
		frame       int

		fps     = engine.NewFPSCounter(60)
		console = time.NewTicker(500 * time.Millisecond)
	)
	defer console.Stop()

	for win.IsRunning() {
		reloadShaders(scene, renderer, pendingChanges(changes))

		// calc fps
		currentTime = time.Now()
		fps.Tick(currentTime.Sub(lastTime))
		lastTime = currentTime

		scene.Render(renderer)

		frame++
		if o.Frames > 0 && frame >= o.Frames {
			win.Close()
		}

		// input may close the window, the frame is still in the back buffer
		win.PollEvents()

		if o.capture(capture, win.IsRunning()) {
			if err := screenshot(win, o.Screenshot); err != nil {
				log.Println("could not save screenshot:", err)
			}
		}
		capture = false

		select {
		case <-console.C:
			// print fps
			win.SetTitle(fmt.Sprintf("%s - %.0f fps", cfg.Window.Title, fps.FPS()))
			log.Printf("%.1f fps, %d draw calls, %d program switches",
				fps.FPS(), renderer.DrawCalls(), renderer.ProgramSwitches())
		default:
		}

		win.SwapBuffers()
	}

	return nil
}

// capture reports whether the current frame is written to a png,
// on request or as the last frame when a screenshot file is set
func (o options) capture(requested, running bool) bool {
	return requested || (!running && o.Screenshot != "")
}

// pendingChanges drains the channel without blocking,
// every file is reported once in order of its first change
func pendingChanges(changes <-chan string) []string {
	var (
		files []string
		seen  = map[string]bool{}
	)

	for {
		select {
		case file, ok := <-changes:
			if !ok {
				return files
			}
			if !seen[file] {
				seen[file] = true
				files = append(files, file)
			}
		default:
			return files
		}
	}
}

func reloadShaders(scene *game.Scene, renderer *engine.Renderer, files []string) {
	for _, file := range files {
		names, err := scene.Reload(file)
		if len(names) > 0 {
			renderer.Reset()
			log.Println("reloaded", names)
		}
		if err != nil {
			log.Println("could not reload shader:", err)
		}
	}
}

func screenshot(win *engine.Window, path string) error {
	if path == "" {
		path = fmt.Sprintf("triangles-%d.png", time.Now().Unix())
	}

	w, h := win.Size()
	if err := engine.SavePNG(path, engine.ReadFramebuffer(w, h)); err != nil {
		return err
	}

	log.Println("saved", path)
	return nil
}

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := newApp(run).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
