package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/nekronos/swr"
	"github.com/nekronos/swr/geometry"
	"github.com/nekronos/swr/math3"
)

const width, height = 1200, 720
const clearColor = 0xff222222

const orbitStep = math.Pi / 180

type game struct {
	device *swr.Device
	camera swr.Camera
	scenes [][]*geometry.Mesh
	scene  int
	mode   swr.RenderMode

	frame   []byte
	started time.Time

	logger *FPSLogger
	shot   string
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.mode = 1 - g.mode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.scene = (g.scene + 1) % len(g.scenes)
	}

	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.orbit(-orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.orbit(orbitStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camera.Position.Y += 0.1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camera.Position.Y -= 0.1
	}

	elapsed := time.Since(g.started).Seconds()
	for _, mesh := range g.scenes[g.scene] {
		mesh.Rotation = mesh.Rotation.Add(math3.V3(0.005, 0.005, 0.005))
		mesh.Scale = math3.One3().Scale(1 + 0.25*math.Abs(math.Sin(elapsed)))
	}
	return nil
}

// orbit rotates the camera around the vertical axis through its target.
func (g *game) orbit(angle float64) {
	p := g.camera.Position.Sub(g.camera.Target)
	sin, cos := math.Sin(angle), math.Cos(angle)
	g.camera.Position = g.camera.Target.Add(math3.V3(
		p.X*cos+p.Z*sin,
		p.Y,
		-p.X*sin+p.Z*cos,
	))
}

func (g *game) Draw(screen *ebiten.Image) {
	g.device.Clear(clearColor)
	g.device.Render(g.camera, g.scenes[g.scene], g.mode)

	for i, c := range g.device.Pixels() {
		g.frame[i*4+0] = byte(c >> 16)
		g.frame[i*4+1] = byte(c >> 8)
		g.frame[i*4+2] = byte(c)
		g.frame[i*4+3] = byte(c >> 24)
	}
	screen.WritePixels(g.frame)

	if g.shot != "" {
		if err := writePNG(g.shot, g.device); err != nil {
			log.Printf("screenshot: %v", err)
		}
		g.shot = ""
	}

	fps := ebiten.ActualFPS()
	if g.logger != nil {
		g.logger.Log(fps)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  %.1f fps", g.mode, fps))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return width, height
}

func writePNG(path string, device *swr.Device) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, device.Image())
}

func parseMode(s string) (swr.RenderMode, error) {
	switch s {
	case "wireframe":
		return swr.Wireframe, nil
	case "filled":
		return swr.Filled, nil
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

func main() {
	logDir := flag.String("log", "", "directory to log framerate samples under")
	shot := flag.String("shot", "", "write the first frame to this PNG file and keep running")
	modeName := flag.String("mode", "wireframe", "initial render mode: wireframe or filled")
	objPath := flag.String("obj", "", "OBJ file to render instead of the built-in scene")
	flag.Parse()

	mode, err := parseMode(*modeName)
	if err != nil {
		log.Fatal(err)
	}

	var scenes [][]*geometry.Mesh
	if *objPath != "" {
		mesh, err := geometry.LoadOBJ(*objPath)
		if err != nil {
			log.Fatal(err)
		}
		scenes = [][]*geometry.Mesh{{mesh}}
	} else {
		cube := geometry.Cube()
		cube.Position = math3.V3(-2, 0, 0)
		sphere := geometry.Sphere(math3.V3(0, 0, 0), 1, 16, 16)
		sphere.Position = math3.V3(2, 0, 0)
		tetra := geometry.Tetrahedron(1.5)
		tetra.Position = math3.V3(-2, 0, 0)
		octa := geometry.Octahedron(1.5)
		octa.Position = math3.V3(2, 0, 0)
		scenes = [][]*geometry.Mesh{
			{cube, sphere},
			{geometry.Torus(1.5, 0.5, 24, 24)},
			{tetra, octa},
			{geometry.Shell(0.2, 1.5, 2, 3, 24, 24)},
		}
	}

	g := &game{
		device: swr.NewDevice(width, height),
		camera: swr.Camera{
			Position: math3.V3(0, 0, 15),
			Target:   math3.V3(0, 0, 0),
			FOV:      45 * math.Pi / 180,
			ZNear:    0.01,
			ZFar:     1,
		},
		scenes:  scenes,
		mode:    mode,
		frame:   make([]byte, width*height*4),
		started: time.Now(),
		shot:    *shot,
	}

	if *logDir != "" {
		logger, err := NewFPSLogger(*logDir, mode)
		if err != nil {
			log.Fatal(err)
		}
		g.logger = logger
		defer logger.Close()
	}

	ebiten.SetWindowTitle("swr")
	ebiten.SetWindowSize(width, height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
