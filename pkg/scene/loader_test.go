package scene

import (
	"strings"
	"testing"

	"github.com/ilan-segal/raytracer/pkg/core"
	"github.com/ilan-segal/raytracer/pkg/geometry"
)

const sampleDocument = `{
  "camera": {
    "position": [0, -10, 0],
    "direction": [0, 1, 0],
    "screenDistance": 1,
    "screenWidth": 1.6,
    "screenHeight": 0.9,
    "screenColumns": 160,
    "screenRows": 90
  },
  "ambientLight": [0.1, 0.1, 0.1],
  "backgroundColour": [0, 0, 0.05],
  "lights": [
    {"colour": [1, 1, 1], "pos": [0, 0, 5]}
  ],
  "objects": [
    {
      "material": {
        "colour": [1, 0, 0],
        "kAmbient": 1,
        "kDiffuse": 0.8,
        "kSpecular": 0.5,
        "kReflect": 0.25,
        "shine": 20
      },
      "shape": {"type": "sphere", "centre": [0, 0, 0], "radius": 2}
    },
    {
      "material": {"colour": [0.5, 0.5, 0.5], "kAmbient": 1, "kDiffuse": 1},
      "shape": {"type": "plane", "point": [0, 0, -2], "normal": [0, 0, 3]}
    }
  ]
}`

func TestParseScene(t *testing.T) {
	s, err := ParseScene(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("ParseScene failed: %v", err)
	}

	if s.Camera.ScreenColumns != 160 || s.Camera.ScreenRows != 90 {
		t.Errorf("Expected 160x90 grid, got %dx%d", s.Camera.ScreenColumns, s.Camera.ScreenRows)
	}
	if s.Camera.Position != core.NewVec3(0, -10, 0) {
		t.Errorf("Expected camera position (0,-10,0), got %v", s.Camera.Position)
	}
	if s.AmbientLight != core.NewVec3(0.1, 0.1, 0.1) {
		t.Errorf("Expected ambient (0.1,0.1,0.1), got %v", s.AmbientLight)
	}
	if s.Background != core.NewVec3(0, 0, 0.05) {
		t.Errorf("Expected background (0,0,0.05), got %v", s.Background)
	}

	if len(s.Lights) != 1 {
		t.Fatalf("Expected 1 light, got %d", len(s.Lights))
	}
	if s.Lights[0].Pos != core.NewVec3(0, 0, 5) {
		t.Errorf("Expected light at (0,0,5), got %v", s.Lights[0].Pos)
	}

	if len(s.Objects) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(s.Objects))
	}

	sphere, ok := s.Objects[0].Shape.(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected first object to be a sphere, got %T", s.Objects[0].Shape)
	}
	if sphere.Radius != 2 {
		t.Errorf("Expected sphere radius 2, got %f", sphere.Radius)
	}
	mat := s.Objects[0].Material
	if mat.KReflect != 0.25 || mat.Shine != 20 {
		t.Errorf("Unexpected material coefficients: %+v", mat)
	}

	plane, ok := s.Objects[1].Shape.(*geometry.Plane)
	if !ok {
		t.Fatalf("Expected second object to be a plane, got %T", s.Objects[1].Shape)
	}
	// The loader normalizes plane normals
	if plane.Normal != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normalized plane normal (0,0,1), got %v", plane.Normal)
	}
}

func TestParseScene_Errors(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{
			name:     "malformed JSON",
			document: `{"camera": `,
		},
		{
			name: "unknown shape type",
			document: `{
				"camera": {"position": [0,0,0], "direction": [0,1,0],
				           "screenDistance": 1, "screenWidth": 1, "screenHeight": 1,
				           "screenColumns": 10, "screenRows": 10},
				"objects": [{"material": {"colour": [1,1,1]}, "shape": {"type": "torus"}}]
			}`,
		},
		{
			name: "zero resolution",
			document: `{
				"camera": {"position": [0,0,0], "direction": [0,1,0],
				           "screenDistance": 1, "screenWidth": 1, "screenHeight": 1,
				           "screenColumns": 0, "screenRows": 10}
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScene(strings.NewReader(tt.document)); err == nil {
				t.Error("Expected parse error, got nil")
			}
		})
	}
}

func TestGetScene(t *testing.T) {
	for _, name := range ListScenes() {
		s, err := GetScene(name)
		if err != nil {
			t.Errorf("GetScene(%q) failed: %v", name, err)
			continue
		}
		if s.Camera.ScreenColumns <= 0 || s.Camera.ScreenRows <= 0 {
			t.Errorf("Scene %q has invalid resolution %dx%d",
				name, s.Camera.ScreenColumns, s.Camera.ScreenRows)
		}
	}

	if _, err := GetScene("no-such-scene"); err == nil {
		t.Error("Expected error for unknown scene name")
	}
}
