package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ilan-segal/raytracer/pkg/core"
	"github.com/ilan-segal/raytracer/pkg/geometry"
	"github.com/ilan-segal/raytracer/pkg/material"
)

// Scene document format: camelCase keys, vectors as [x, y, z] arrays.
//
//	{
//	  "camera": {
//	    "position": [0, -10, 0], "direction": [0, 1, 0],
//	    "screenDistance": 1, "screenWidth": 1, "screenHeight": 1,
//	    "screenColumns": 400, "screenRows": 400
//	  },
//	  "ambientLight": [0.1, 0.1, 0.1],
//	  "backgroundColour": [0, 0, 0],
//	  "lights": [{"colour": [1, 1, 1], "pos": [0, 0, 5]}],
//	  "objects": [{
//	    "material": {"colour": [1, 0, 0], "kAmbient": 1, "kDiffuse": 0.8,
//	                 "kSpecular": 0.5, "kReflect": 0, "shine": 20},
//	    "shape": {"type": "sphere", "centre": [0, 0, 0], "radius": 1}
//	  }]
//	}

type vec [3]float64

func (v vec) toVec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

type cameraDoc struct {
	Position       vec     `json:"position"`
	Direction      vec     `json:"direction"`
	ScreenDistance float64 `json:"screenDistance"`
	ScreenWidth    float64 `json:"screenWidth"`
	ScreenHeight   float64 `json:"screenHeight"`
	ScreenColumns  int     `json:"screenColumns"`
	ScreenRows     int     `json:"screenRows"`
	WorldUp        *vec    `json:"worldUp,omitempty"`
}

type materialDoc struct {
	Colour    vec     `json:"colour"`
	KAmbient  float64 `json:"kAmbient"`
	KDiffuse  float64 `json:"kDiffuse"`
	KSpecular float64 `json:"kSpecular"`
	KReflect  float64 `json:"kReflect"`
	Shine     float64 `json:"shine"`
}

type shapeDoc struct {
	Type string `json:"type"`

	// Sphere fields
	Centre vec     `json:"centre"`
	Radius float64 `json:"radius"`

	// Plane fields
	Point  vec `json:"point"`
	Normal vec `json:"normal"`
}

type objectDoc struct {
	Material materialDoc `json:"material"`
	Shape    shapeDoc    `json:"shape"`
}

type lightDoc struct {
	Colour vec `json:"colour"`
	Pos    vec `json:"pos"`
}

type sceneDoc struct {
	Camera           cameraDoc   `json:"camera"`
	AmbientLight     vec         `json:"ambientLight"`
	BackgroundColour vec         `json:"backgroundColour"`
	Lights           []lightDoc  `json:"lights"`
	Objects          []objectDoc `json:"objects"`
}

// LoadScene reads a JSON scene document from a file
func LoadScene(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()
	return ParseScene(file)
}

// ParseScene reads a JSON scene document from a reader
func ParseScene(r io.Reader) (*Scene, error) {
	var doc sceneDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene document: %w", err)
	}
	return doc.toScene()
}

func (doc *sceneDoc) toScene() (*Scene, error) {
	if doc.Camera.ScreenColumns <= 0 || doc.Camera.ScreenRows <= 0 {
		return nil, fmt.Errorf("camera screen resolution must be positive, got %dx%d",
			doc.Camera.ScreenColumns, doc.Camera.ScreenRows)
	}

	camera := Camera{
		Position:       doc.Camera.Position.toVec3(),
		Direction:      doc.Camera.Direction.toVec3(),
		ScreenDistance: doc.Camera.ScreenDistance,
		ScreenWidth:    doc.Camera.ScreenWidth,
		ScreenHeight:   doc.Camera.ScreenHeight,
		ScreenColumns:  doc.Camera.ScreenColumns,
		ScreenRows:     doc.Camera.ScreenRows,
	}
	if doc.Camera.WorldUp != nil {
		camera.WorldUp = doc.Camera.WorldUp.toVec3()
	}

	s := &Scene{
		Camera:       camera,
		AmbientLight: doc.AmbientLight.toVec3(),
		Background:   doc.BackgroundColour.toVec3(),
	}

	for _, light := range doc.Lights {
		s.Lights = append(s.Lights, LightSource{
			Colour: light.Colour.toVec3(),
			Pos:    light.Pos.toVec3(),
		})
	}

	for i, object := range doc.Objects {
		shape, err := object.Shape.toShape()
		if err != nil {
			return nil, fmt.Errorf("object %d: %w", i, err)
		}
		s.Objects = append(s.Objects, SceneObject{
			Shape:    shape,
			Material: object.Material.toMaterial(),
		})
	}

	return s, nil
}

func (doc *shapeDoc) toShape() (geometry.Shape, error) {
	switch doc.Type {
	case "sphere":
		return geometry.NewSphere(doc.Centre.toVec3(), doc.Radius), nil
	case "plane":
		return geometry.NewPlane(doc.Point.toVec3(), doc.Normal.toVec3()), nil
	default:
		return nil, fmt.Errorf("unknown shape type %q", doc.Type)
	}
}

func (doc *materialDoc) toMaterial() material.Material {
	return material.Material{
		Colour:    doc.Colour.toVec3(),
		KAmbient:  doc.KAmbient,
		KDiffuse:  doc.KDiffuse,
		KSpecular: doc.KSpecular,
		KReflect:  doc.KReflect,
		Shine:     doc.Shine,
	}
}
