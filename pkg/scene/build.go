package scene

import (
	"fmt"
	"math"
	"os"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/geometry"
	"github.com/kestrelray/sppm-raytracer/pkg/lights"
	"github.com/kestrelray/sppm-raytracer/pkg/material"
	"github.com/kestrelray/sppm-raytracer/pkg/meshio"
	"github.com/kestrelray/sppm-raytracer/pkg/renderer"
	"github.com/kestrelray/sppm-raytracer/pkg/rendererr"
)

// Built is the constructed, render-ready result of Load: the renderer.Scene,
// the configured image dimensions, and the optional background color rays
// see when they exit the scene without hitting anything (SPEC_FULL 4.15).
type Built struct {
	Scene      renderer.Scene
	Width      int
	Height     int
	Background core.Vec3
}

// Load reads and builds a scene from a JSON file at path. meshBaseDir
// resolves relative Mesh.File paths (typically the scene file's directory).
func Load(path, meshBaseDir string) (*Built, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, rendererr.NewConfigError("scene_file", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, rendererr.NewParseError(path, 0, err)
	}
	return f.Build(meshBaseDir)
}

func toVec3(a [3]float64) core.Vec3 { return core.NewVec3(a[0], a[1], a[2]) }

// Build constructs the render-ready Scene from a parsed File.
func (f *File) Build(meshBaseDir string) (*Built, error) {
	materials, err := buildMaterials(f.Materials)
	if err != nil {
		return nil, err
	}

	root, err := buildPrimitive(&PrimitiveSpec{Type: "Group", Children: f.Group}, materials, meshBaseDir)
	if err != nil {
		return nil, err
	}

	sceneLights, err := buildLights(f.Lights)
	if err != nil {
		return nil, err
	}

	cam, err := buildCamera(f.Camera)
	if err != nil {
		return nil, err
	}

	background := core.Vec3{}
	if f.Background != nil {
		background = toVec3(*f.Background)
	}

	return &Built{
		Scene:      renderer.Scene{Root: root, Lights: sceneLights, Camera: cam, Background: background},
		Width:      f.Camera.Width,
		Height:     f.Camera.Height,
		Background: background,
	}, nil
}

func buildMaterials(specs []MaterialSpec) ([]material.Material, error) {
	out := make([]material.Material, len(specs))
	for i, s := range specs {
		color := toVec3(s.Color)
		switch s.Type {
		case "DIFF":
			out[i] = material.NewDiffuse(color)
		case "SPEC":
			out[i] = material.NewSpecular(color)
		case "REFR":
			out[i] = material.NewRefractive(color, s.Eta)
		default:
			return nil, rendererr.NewConfigError("Materials[].Type", fmt.Errorf("unknown material type %q", s.Type))
		}
	}
	return out, nil
}

func materialAt(materials []material.Material, index int) (material.Material, error) {
	if index < 0 || index >= len(materials) {
		return nil, rendererr.NewIndexError("MaterialIndex", index, len(materials))
	}
	return materials[index], nil
}

func buildPrimitive(spec *PrimitiveSpec, materials []material.Material, meshBaseDir string) (geometry.Primitive, error) {
	switch spec.Type {
	case "Group":
		children := make([]geometry.Primitive, 0, len(spec.Children))
		for i := range spec.Children {
			child, err := buildPrimitive(&spec.Children[i], materials, meshBaseDir)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return geometry.NewGroup(children...), nil

	case "Plane":
		mat, err := materialAt(materials, spec.MaterialIndex)
		if err != nil {
			return nil, err
		}
		if spec.Point != ([3]float64{}) {
			return geometry.NewPlane(toVec3(spec.Point), toVec3(spec.Normal), mat), nil
		}
		return geometry.NewPlaneFromEquation(toVec3(spec.Normal), spec.D, mat), nil

	case "Sphere":
		mat, err := materialAt(materials, spec.MaterialIndex)
		if err != nil {
			return nil, err
		}
		return geometry.NewSphere(toVec3(spec.Center), spec.Radius, mat), nil

	case "Triangle":
		mat, err := materialAt(materials, spec.MaterialIndex)
		if err != nil {
			return nil, err
		}
		if len(spec.Vertices) != 3 {
			return nil, rendererr.NewConfigError("Triangle.Vertices", fmt.Errorf("expected 3 vertices, got %d", len(spec.Vertices)))
		}
		v0, v1, v2 := toVec3(spec.Vertices[0]), toVec3(spec.Vertices[1]), toVec3(spec.Vertices[2])
		if len(spec.VertexNormals) == 3 {
			n0, n1, n2 := toVec3(spec.VertexNormals[0]), toVec3(spec.VertexNormals[1]), toVec3(spec.VertexNormals[2])
			return geometry.NewTriangleWithNormals(v0, v1, v2, n0, n1, n2, mat), nil
		}
		return geometry.NewTriangle(v0, v1, v2, mat), nil

	case "Transform":
		if spec.Object == nil {
			return nil, rendererr.NewConfigError("Transform.Object", fmt.Errorf("missing child object"))
		}
		child, err := buildPrimitive(spec.Object, materials, meshBaseDir)
		if err != nil {
			return nil, err
		}
		m, err := composeTransform(spec.Details)
		if err != nil {
			return nil, err
		}
		return geometry.NewTransform(child, m), nil

	case "Mesh":
		mat, err := materialAt(materials, spec.MaterialIndex)
		if err != nil {
			return nil, err
		}
		meshPath := spec.File
		if meshPath == "" {
			return nil, rendererr.NewConfigError("Mesh.File", fmt.Errorf("missing or empty"))
		}
		if meshBaseDir != "" && !os.IsPathSeparator(meshPath[0]) {
			meshPath = meshBaseDir + string(os.PathSeparator) + meshPath
		}
		raw, err := meshio.Load(meshPath)
		if err != nil {
			return nil, err
		}
		mesh, err := geometry.NewMesh(raw.Vertices, raw.Faces, raw.Normals, mat)
		if err != nil {
			return nil, rendererr.NewConfigError("Mesh.File", err)
		}
		return mesh, nil

	default:
		return nil, rendererr.NewConfigError("Group[].Type", fmt.Errorf("unknown primitive type %q", spec.Type))
	}
}

// composeTransform builds the affine matrix for a Transform's Details steps,
// composed left-to-right: Details[0] is applied to the object first, then
// Details[1], and so on (SPEC_FULL 4.15, grounded on
// original_source/src/object3d.rs's transform stack). Matrix4.Multiply(m,
// other) applies other first then m to a column vector, so composing in
// application order means prepending each new step's matrix rather than
// appending it: after n steps, M = Step[n-1] * ... * Step[1] * Step[0].
func composeTransform(steps []TransformStep) (core.Matrix4, error) {
	m := core.Identity4()
	for _, step := range steps {
		var s core.Matrix4
		switch step.Type {
		case "Scale":
			s = core.Scale4(toVec3(step.Scales))
		case "UniformScale":
			s = core.UniformScale4(step.Scale)
		case "Translate":
			s = core.Translate4(toVec3(step.Translation))
		case "XRotate":
			s = core.RotateX4(step.Degree * math.Pi / 180)
		case "YRotate":
			s = core.RotateY4(step.Degree * math.Pi / 180)
		case "ZRotate":
			s = core.RotateZ4(step.Degree * math.Pi / 180)
		default:
			return core.Matrix4{}, rendererr.NewConfigError("Transform.Details[].Type", fmt.Errorf("unknown transform step type %q", step.Type))
		}
		m = s.Multiply(m)
	}
	return m, nil
}

func buildLights(specs []LightSpec) ([]lights.Light, error) {
	out := make([]lights.Light, len(specs))
	for i, s := range specs {
		pos := toVec3(s.Position)
		flux := toVec3(s.Flux)
		switch s.Type {
		case "SphereLight":
			out[i] = lights.NewSphereLight(pos, flux, s.Scale)
		case "ConeLight":
			out[i] = lights.NewConeLight(pos, toVec3(s.Normal), s.Angle, flux, s.Scale)
		case "HalfSphereLight":
			out[i] = lights.NewConeLight(pos, toVec3(s.Normal), math.Pi/2, flux, s.Scale)
		case "DirectionCircleLight":
			out[i] = lights.NewDirectionCircleLight(pos, toVec3(s.Normal), s.Radius, flux, s.Scale)
		default:
			return nil, rendererr.NewConfigError("Lights[].Type", fmt.Errorf("unknown light type %q", s.Type))
		}
	}
	return out, nil
}

func buildCamera(spec CameraSpec) (renderer.Camera, error) {
	center, dir, up := toVec3(spec.Center), toVec3(spec.Direction), toVec3(spec.Up)
	switch spec.Type {
	case "Perspective":
		return renderer.NewPerspectiveCamera(center, dir, up, spec.Angle, float64(spec.Width), float64(spec.Height)), nil
	case "DoF":
		focus := toVec3(spec.Focus)
		focusDist := focus.Subtract(center).Length()
		return renderer.NewDoFCamera(center, dir, up, spec.Angle, float64(spec.Width), float64(spec.Height), spec.Aperture, focusDist), nil
	default:
		return nil, rendererr.NewConfigError("Camera.Type", fmt.Errorf("unknown camera type %q", spec.Type))
	}
}
