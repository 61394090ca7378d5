package world

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Vec3 is written as a three element YAML sequence: [x, y, z].
type Vec3 rl.Vector3

func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var xs []float32
	if err := node.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: expected [x, y, z], got %d values", node.Line, len(xs))
	}
	*v = Vec3{X: xs[0], Y: xs[1], Z: xs[2]}
	return nil
}

func (v Vec3) Vector3() rl.Vector3 { return rl.Vector3(v) }

type Layout struct {
	Name   string    `yaml:"name"`
	Room   RoomDef   `yaml:"room"`
	Player PlayerDef `yaml:"player"`
	Spots  []SpotDef `yaml:"spots"`
	Items  []ItemDef `yaml:"items"`
	Camera CameraDef `yaml:"camera"`
	Light  LightDef  `yaml:"light"`
	Gaze   GazeDef   `yaml:"gaze"`
}

type RoomDef struct {
	HalfExtent float32 `yaml:"half_extent"`
	Height     float32 `yaml:"height"`
}

type PlayerDef struct {
	Position   Vec3    `yaml:"position"`
	Yaw        float32 `yaml:"yaw"`
	EyeHeight  float32 `yaml:"eye_height"`
	MoveSpeed  float32 `yaml:"move_speed"`
	CarryLimit float32 `yaml:"carry_limit"`
}

type SpotDef struct {
	Name     string  `yaml:"name"`
	Position Vec3    `yaml:"position"`
	Radius   float32 `yaml:"radius"`
	Size     float32 `yaml:"size"`
	Color    string  `yaml:"color"`
}

// ItemDef places an item on the named spot, or free at Position when Spot
// is empty.
type ItemDef struct {
	Name     string  `yaml:"name"`
	Spot     string  `yaml:"spot,omitempty"`
	Position Vec3    `yaml:"position,omitempty"`
	Radius   float32 `yaml:"radius"`
	Weight   float32 `yaml:"weight"`
	Color    string  `yaml:"color"`
}

type CameraDef struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	Fovy     float32 `yaml:"fovy"`
}

type LightDef struct {
	Position Vec3    `yaml:"position"`
	Color    string  `yaml:"color"`
	Range    float32 `yaml:"range"`
}

type GazeDef struct {
	ConeHalfAngle float64 `yaml:"cone_half_angle"`
}

// DefaultLayout is the grocery room: three cube spots, peanut butter on the
// green one and red wine on the blue one.
func DefaultLayout() Layout {
	return Layout{
		Name: "model-interaction",
		Room: RoomDef{HalfExtent: 30, Height: 10},
		Player: PlayerDef{
			EyeHeight: 2,
			MoveSpeed: 8,
		},
		Spots: []SpotDef{
			{Name: "red_cube", Position: Vec3{X: -20, Y: 2, Z: 0}, Radius: 5, Size: 2, Color: "Red"},
			{Name: "green_cube", Position: Vec3{X: 20, Y: 2, Z: 0}, Radius: 5, Size: 2, Color: "Green"},
			{Name: "blue_cube", Position: Vec3{X: 20, Y: 2, Z: 2}, Radius: 5, Size: 2, Color: "Blue"},
		},
		Items: []ItemDef{
			{Name: "peanut_butter", Spot: "green_cube", Radius: 5, Weight: 1, Color: "Brown"},
			{Name: "red_wine", Spot: "blue_cube", Radius: 5, Weight: 1, Color: "Maroon"},
		},
		Camera: CameraDef{Position: Vec3{X: 0, Y: 40, Z: 0}, Target: Vec3{}, Fovy: 90},
		Light:  LightDef{Position: Vec3{X: 0, Y: 20, Z: 5}, Color: "Yellow", Range: 50},
		Gaze:   GazeDef{ConeHalfAngle: 60},
	}
}

// LoadLayout reads a YAML layout. Fields missing from the file keep their
// DefaultLayout values.
func LoadLayout(path string) (Layout, error) {
	l := DefaultLayout()
	raw, err := os.ReadFile(path)
	if err != nil {
		return l, err
	}
	if err := yaml.Unmarshal(raw, &l); err != nil {
		return l, fmt.Errorf("%s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return l, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

func (l Layout) Validate() error {
	names := make(map[string]bool)
	spots := make(map[string]bool)
	for _, s := range l.Spots {
		if s.Name == "" {
			return fmt.Errorf("spot without a name")
		}
		if names[s.Name] {
			return fmt.Errorf("duplicate name %q", s.Name)
		}
		if !(s.Radius > 0) {
			return fmt.Errorf("spot %q: radius must be positive", s.Name)
		}
		names[s.Name] = true
		spots[s.Name] = true
	}

	taken := make(map[string]string)
	for _, it := range l.Items {
		if it.Name == "" {
			return fmt.Errorf("item without a name")
		}
		if names[it.Name] {
			return fmt.Errorf("duplicate name %q", it.Name)
		}
		if !(it.Radius > 0) {
			return fmt.Errorf("item %q: radius must be positive", it.Name)
		}
		if it.Weight < 0 {
			return fmt.Errorf("item %q: negative weight", it.Name)
		}
		if it.Spot != "" {
			if !spots[it.Spot] {
				return fmt.Errorf("item %q: unknown spot %q", it.Name, it.Spot)
			}
			if other, ok := taken[it.Spot]; ok {
				return fmt.Errorf("items %q and %q share spot %q", other, it.Name, it.Spot)
			}
			taken[it.Spot] = it.Name
		}
		names[it.Name] = true
	}

	if l.Player.CarryLimit < 0 {
		return fmt.Errorf("player: negative carry limit")
	}
	return nil
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Pink":      rl.Pink,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

// LookupColor maps a layout color name to a raylib color, white if unknown.
func LookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.White
}
