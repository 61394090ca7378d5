package game

import (
	"fmt"

	"grocerysim/internal/camera"
	"grocerysim/internal/components"
	"grocerysim/internal/engine"
	"grocerysim/internal/hud"
	"grocerysim/internal/interact"
	"grocerysim/internal/world"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const itemSize = 0.8

type look struct {
	size  float32
	color rl.Color
}

type Game struct {
	World  *world.World
	Camera *camera.Rig
	Hint   *hud.Hint

	looks map[engine.UID]look
}

func New(layout world.Layout) (*Game, error) {
	w, err := world.New(layout, components.RaylibInput{})
	if err != nil {
		return nil, err
	}

	g := &Game{
		World: w,
		Hint:  hud.NewHint(),
		looks: make(map[engine.UID]look),
	}

	g.Camera = camera.New(w.Controller)
	g.Camera.OverviewPosition = layout.Camera.Position.Vector3()
	g.Camera.OverviewTarget = layout.Camera.Target.Vector3()
	if layout.Camera.Fovy > 0 {
		g.Camera.OverviewFovy = layout.Camera.Fovy
	}

	for i, def := range layout.Spots {
		g.looks[w.Spots[i].UID()] = look{size: def.Size, color: world.LookupColor(def.Color)}
	}
	for i, def := range layout.Items {
		g.looks[w.Items[i].UID()] = look{size: itemSize, color: world.LookupColor(def.Color)}
	}

	w.OnInteraction.AddListener(func(ev interact.Event) {
		fmt.Printf("Interaction: %s %s (%s -> %s)\n", ev.Item.Name, ev.Kind, ev.From, ev.To)
	})
	w.OnRejected.AddListener(func(err error) {
		fmt.Printf("Interaction: rejected: %v\n", err)
		g.Hint.Show(hud.Describe(err))
	})
	return g, nil
}

func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(1280, 720, "Grocery Room")
	defer rl.CloseWindow()

	rl.SetTargetFPS(120)
	rl.DisableCursor()

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 20)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()
	}
}

func (g *Game) Update() {
	dt := rl.GetFrameTime()

	if rl.IsKeyPressed(rl.KeyTab) {
		g.Camera.Toggle()
	}

	g.World.Update(dt)
	g.Hint.Update(dt)
}

func (g *Game) Draw() {
	cam := g.Camera.GetRaylibCamera()
	w := g.World
	light := world.LookupColor(w.Layout.Light.Color)

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	rl.BeginMode3D(cam)
	size := w.Layout.Room.HalfExtent * 2
	if size > 0 {
		rl.DrawPlane(rl.Vector3{}, rl.Vector2{X: size, Y: size}, rl.LightGray)
		rl.DrawCubeWires(rl.Vector3{Y: w.Layout.Room.Height / 2}, size, w.Layout.Room.Height, size, rl.DarkGray)
	}
	rl.DrawSphere(w.Layout.Light.Position.Vector3(), 0.3, light)

	for _, spot := range w.Spots {
		g.drawInteractable(spot.Entry, w.Player.GazedSpot.Is(spot.UID()))
	}
	for _, item := range w.Items {
		g.drawInteractable(item.Entry, w.Player.GazedItem.Is(item.UID()))
	}
	rl.EndMode3D()

	g.DrawUI()
	rl.EndDrawing()
}

func (g *Game) drawInteractable(e *interact.Entry, gazed bool) {
	l := g.looks[e.UID()]
	pos := e.WorldPosition()
	s := l.size * e.Object().WorldScale().X
	rl.DrawCube(pos, s, s, s, l.color)
	if gazed {
		rl.DrawCubeWires(pos, s*1.1, s*1.1, s*1.1, rl.Yellow)
	}
}

func (g *Game) DrawUI() {
	rl.DrawText("WASD to move, Mouse to look, E to interact, Tab to switch view", 10, 10, 20, rl.DarkGray)
	rl.DrawFPS(10, 35)

	screenW := float32(rl.GetScreenWidth())
	screenH := float32(rl.GetScreenHeight())

	rl.DrawCircle(int32(screenW/2), int32(screenH/2), 3, rl.White)

	if prompt := g.World.Prompt(); prompt != "" {
		gui.Label(rl.Rectangle{X: screenW/2 - 200, Y: screenH/2 + 20, Width: 400, Height: 24}, prompt)
	}

	if g.Hint.Visible() {
		rl.DrawText(g.Hint.Text, int32(screenW/2)-100, int32(screenH/2)+50, 20, rl.Fade(rl.Red, g.Hint.Alpha))
	}

	s := g.World.Stats
	rl.DrawText(fmt.Sprintf("Pickups: %d  Placements: %d  Rejected: %d", s.Pickups, s.Placements, s.Rejected), 10, 60, 16, rl.Yellow)
}
