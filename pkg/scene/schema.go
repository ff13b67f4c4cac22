// Package scene parses the JSON scene description of spec.md 6 into a
// renderer.Scene, dispatching each object's Type field to the matching
// constructor - a closed switch, not a reflection-based registry, since the
// variant set is fixed at compile time (spec 9).
package scene

import "encoding/json"

// File is the top-level JSON document (spec 6).
type File struct {
	Camera     CameraSpec     `json:"Camera"`
	Lights     []LightSpec    `json:"Lights"`
	Materials  []MaterialSpec `json:"Materials"`
	Group      []PrimitiveSpec `json:"Group"`
	Background *[3]float64    `json:"Background"` // optional; supplements spec.md per original_source/sceneparser.rs, defaults to black
}

// CameraSpec mirrors spec 6's Camera object.
type CameraSpec struct {
	Type      string     `json:"Type"` // "Perspective" | "DoF"
	Center    [3]float64 `json:"Center"`
	Direction [3]float64 `json:"Direction"`
	Up        [3]float64 `json:"Up"`
	Angle     float64    `json:"Angle"` // degrees, full field of view
	Width     int        `json:"Width"`
	Height    int        `json:"Height"`
	Focus     [3]float64 `json:"Focus"`    // DoF only
	Aperture  float64    `json:"Aperture"` // DoF only
}

// LightSpec mirrors spec 6's Lights array entries.
type LightSpec struct {
	Type     string     `json:"Type"` // "SphereLight" | "ConeLight" | "HalfSphereLight" | "DirectionCircleLight"
	Scale    float64    `json:"Scale"`
	Position [3]float64 `json:"Position"`
	Flux     [3]float64 `json:"Flux"`
	Normal   [3]float64 `json:"Normal"`   // Cone/HalfSphere/DirectionCircle
	Angle    float64    `json:"Angle"`    // Cone, radians
	Radius   float64    `json:"Radius"`   // DirectionCircle
}

// MaterialSpec mirrors spec 6's Materials array entries.
type MaterialSpec struct {
	Type  string     `json:"Type"` // "DIFF" | "SPEC" | "REFR"
	Color [3]float64 `json:"Color"`
	Eta   float64    `json:"Eta"` // REFR only, defaults per material.DefaultRefractiveEta
}

// TransformStep is one entry of a Transform's Details array (spec 6),
// composed left-to-right (spec.md 9, SPEC_FULL 4.15).
type TransformStep struct {
	Type        string     `json:"Type"` // "Scale" | "UniformScale" | "Translate" | "XRotate" | "YRotate" | "ZRotate"
	Scales      [3]float64 `json:"Scales"`
	Scale       float64    `json:"Scale"`
	Translation [3]float64 `json:"Translation"`
	Degree      float64    `json:"Degree"`
}

// PrimitiveSpec mirrors spec 6's Group array entries; recursive via Object
// (Transform's child) and Children (Group's members).
type PrimitiveSpec struct {
	Type          string          `json:"Type"` // "Group" | "Plane" | "Triangle" | "Sphere" | "Transform" | "Mesh"
	MaterialIndex int             `json:"MaterialIndex"`
	Children      []PrimitiveSpec `json:"Children"`

	// Plane
	Normal [3]float64 `json:"Normal"`
	D      float64    `json:"D"`
	Point  [3]float64 `json:"Point"`

	// Sphere
	Center [3]float64 `json:"Center"`
	Radius float64    `json:"Radius"`

	// Triangle
	Vertices      [][3]float64 `json:"Vertices"`
	VertexNormals [][3]float64 `json:"VertexNormals"`

	// Transform
	Object  *PrimitiveSpec  `json:"Object"`
	Details []TransformStep `json:"Details"`

	// Mesh
	File string `json:"File"`
}

// Parse decodes raw scene JSON into a File.
func Parse(data []byte) (*File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	return &f, nil
}
