package render

//ebiten window frontend. The game loop drives the simulation: one solver
//tick per Update, velocity colored particles per Draw. Keys stand in for
//the debug parameter panel, the mouse injects a radial force.
import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/roberte777/fluid-sim/app"
	"github.com/roberte777/fluid-sim/fluid"
	V "github.com/roberte777/fluid-sim/vector"
)

const (
	screenWidth   = 960
	screenHeight  = 600
	maxSpeedColor = 30.0 //speed mapped to full red
	forceStrength = 400.0
)

type Game struct {
	scene *app.Scene
	snap  fluid.Snapshot
}

func New(scene *app.Scene) *Game {
	return &Game{scene: scene}
}

func (g *Game) Start() error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("fluid-sim")
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	g.handleKeys()

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.scene.ApplyForce(g.screenToWorld(x, y), forceStrength)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		g.scene.ApplyForce(g.screenToWorld(x, y), -forceStrength)
	}

	//divergence stops the game loop and surfaces through RunGame
	if err := g.scene.Step(); err != nil {
		return err
	}
	g.scene.Snapshot(&g.snap)
	return nil
}

//parameter nudges per held frame, the drag-value equivalents
func (g *Game) handleKeys() {
	radius, damping, width, height := g.scene.Params()
	if ebiten.IsKeyPressed(ebiten.KeyR) {
		g.scene.Queue(app.Edit{Kind: app.ParamRadius, Value: radius + 0.005})
	}
	if ebiten.IsKeyPressed(ebiten.KeyF) {
		g.scene.Queue(app.Edit{Kind: app.ParamRadius, Value: radius - 0.005})
	}
	if ebiten.IsKeyPressed(ebiten.KeyT) {
		g.scene.Queue(app.Edit{Kind: app.ParamDamping, Value: damping + 0.005})
	}
	if ebiten.IsKeyPressed(ebiten.KeyG) {
		g.scene.Queue(app.Edit{Kind: app.ParamDamping, Value: damping - 0.005})
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.scene.Queue(app.Edit{Kind: app.ParamWidth, Value: width + 1})
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.scene.Queue(app.Edit{Kind: app.ParamWidth, Value: width - 1})
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.scene.Queue(app.Edit{Kind: app.ParamHeight, Value: height + 1})
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.scene.Queue(app.Edit{Kind: app.ParamHeight, Value: height - 1})
	}
}

func (g *Game) scale() float32 {
	if g.snap.Width == 0 || g.snap.Height == 0 {
		return 1
	}
	sx := float32(screenWidth) * 0.9 / g.snap.Width
	sy := float32(screenHeight) * 0.9 / g.snap.Height
	if sy < sx {
		return sy
	}
	return sx
}

func (g *Game) worldToScreen(p V.Vec2) (int, int) {
	s := g.scale()
	return screenWidth/2 + int(p[0]*s), screenHeight/2 - int(p[1]*s)
}

func (g *Game) screenToWorld(x, y int) V.Vec2 {
	s := g.scale()
	return V.Vec2{(float32(x) - screenWidth/2) / s, (float32(screenHeight/2) - float32(y)) / s}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if len(g.snap.Positions) == 0 {
		g.scene.Snapshot(&g.snap)
	}
	s := g.scale()

	//domain box outline
	bw := int(g.snap.Width * s)
	bh := int(g.snap.Height * s)
	left := screenWidth/2 - bw/2
	top := screenHeight/2 - bh/2
	boxColor := color.RGBA{120, 80, 160, 255}
	for x := left; x <= left+bw; x++ {
		screen.Set(x, top, boxColor)
		screen.Set(x, top+bh, boxColor)
	}
	for y := top; y <= top+bh; y++ {
		screen.Set(left, y, boxColor)
		screen.Set(left+bw, y, boxColor)
	}

	//particles, colored by speed. Velocities come straight off the field:
	//Draw runs on the same goroutine as Step.
	velocities := g.scene.Fluid.Field.Velocities
	for i := range g.snap.Positions {
		cx, cy := g.worldToScreen(g.snap.Positions[i])
		radius := int(g.snap.Radii[i] * s)
		if radius < 1 {
			radius = 1
		}
		speed := float64(V.Length(velocities[i]))
		t := speed / maxSpeedColor
		if t > 1 {
			t = 1
		}
		clr := color.RGBA{uint8(60 + 195*t), 60, uint8(255 * (1 - t)), 255}
		drawCircle(screen, cx, cy, radius, clr)
	}

	radius, damping, width, height := g.scene.Params()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("radius: %0.2f (R/F)", radius), 10, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("damping: %0.2f (T/G)", damping), 10, 40)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("box: %0.0f x %0.0f (arrows)", width, height), 10, 60)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

//drawCircle draws a filled circle at (cx, cy) with the given radius.
func drawCircle(dst *ebiten.Image, cx, cy, r int, clr color.Color) {
	rSq := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rSq {
				dst.Set(cx+dx, cy+dy, clr)
			}
		}
	}
}
