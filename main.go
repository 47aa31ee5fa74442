package main

import (
	"flag"
	"log"

	"github.com/roberte777/fluid-sim/app"
	"github.com/roberte777/fluid-sim/fluid"
	"github.com/roberte777/fluid-sim/render"
	"github.com/roberte777/fluid-sim/terminal"
	V "github.com/roberte777/fluid-sim/vector"
	"github.com/roberte777/fluid-sim/websocket"
)

func main() {
	var (
		ui      = flag.String("ui", "window", "frontend: window, term or none")
		wsAddr  = flag.String("ws", "", "parameter server address, e.g. :6001 (empty disables)")
		steps   = flag.Int("steps", 600, "tick count for -ui=none")
		workers = flag.Int("workers", 1, "solver workers, 0 uses all CPUs")

		count   = flag.Int("n", 1500, "particle count")
		columns = flag.Int("columns", 50, "starting grid columns")
		spacing = flag.Float64("spacing", 1.0, "starting grid spacing")
		radius  = flag.Float64("radius", 0.35, "particle radius")
		damping = flag.Float64("damping", 0.95, "wall damping in [0,1]")
		width   = flag.Float64("width", 150, "domain width")
		height  = flag.Float64("height", 90, "domain height")

		gas       = flag.Float64("gas", 500, "gas constant")
		rest      = flag.Float64("rest", 3, "rest density")
		smoothing = flag.Float64("smoothing", 3, "smoothing radius h")
		viscosity = flag.Float64("viscosity", 0, "viscosity coefficient")
		gravity   = flag.Float64("gravity", -9.8, "gravity acceleration on y")
		dt        = flag.Float64("dt", 1.0/60.0, "fixed time step")
		maxSpeed  = flag.Float64("maxspeed", 0, "speed clamp, 0 disables")
		kernel    = flag.String("kernel", "spiky", "density kernel: spiky or poly6")
		boundary  = flag.String("boundary", "correct", "wall policy: correct or clamp")
		predict   = flag.Bool("predict", true, "integrate gravity into predicted positions")
	)
	flag.Parse()

	cfg := fluid.DefaultConfig()
	cfg.GasConstant = float32(*gas)
	cfg.RestDensity = float32(*rest)
	cfg.SmoothingRadius = float32(*smoothing)
	cfg.ViscosityCoefficient = float32(*viscosity)
	cfg.Gravity = V.Vec2{0, float32(*gravity)}
	cfg.TimeStep = float32(*dt)
	cfg.MaxSpeed = float32(*maxSpeed)
	cfg.UsePrediction = *predict
	cfg.Workers = *workers

	switch *kernel {
	case "spiky":
		cfg.DensityKernel = fluid.KernelSpiky
	case "poly6":
		cfg.DensityKernel = fluid.KernelPoly6
	default:
		log.Fatalf("unknown kernel %q", *kernel)
	}
	switch *boundary {
	case "correct":
		cfg.Boundary = fluid.BoundaryCorrect
	case "clamp":
		cfg.Boundary = fluid.BoundaryClamp
	default:
		log.Fatalf("unknown boundary policy %q", *boundary)
	}

	layout := fluid.GridLayout{
		Count:   *count,
		Columns: *columns,
		Spacing: float32(*spacing),
		Radius:  float32(*radius),
		Damping: float32(*damping),
	}
	dom := fluid.Domain{Width: float32(*width), Height: float32(*height)}

	sim, err := fluid.NewSPHFluid(cfg, dom, layout)
	if err != nil {
		log.Fatal(err)
	}
	scene := app.NewScene(sim)

	if *wsAddr != "" {
		go func() {
			log.Fatal(websocket.Init(*wsAddr, scene))
		}()
	}

	switch *ui {
	case "window":
		if err := render.New(scene).Start(); err != nil {
			log.Fatal(err)
		}
	case "term":
		if err := terminal.New(scene).Run(); err != nil {
			log.Fatal(err)
		}
	case "none":
		if err := scene.RunHeadless(*steps); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown ui %q", *ui)
	}
}
