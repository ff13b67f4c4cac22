// Package meshio loads the wavefront-style triangle mesh format spec.md 6
// describes (positions, face indices, optional per-vertex normals; vertex
// colors/texcoords/materials ignored). Grounded on the teacher's
// loaders/ply.go structure - header-line dispatch and bounds-checked face
// index parsing - adapted from PLY's binary property model to OBJ's simpler
// line-oriented text format.
package meshio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kestrelray/sppm-raytracer/pkg/core"
	"github.com/kestrelray/sppm-raytracer/pkg/rendererr"
)

// Data is the raw vertex/face/normal data loaded from a mesh file, ready to
// hand to geometry.NewMesh.
type Data struct {
	Vertices []core.Vec3
	Faces    []int // 3 per triangle, 0-indexed into Vertices
	Normals  []core.Vec3
}

// Load reads a wavefront-style mesh file. Only "v", "vn", and "f" lines are
// interpreted; texture-coordinate ("vt") lines and per-face material/group
// directives are ignored, per spec.md 6. Faces with vertex/texcoord/normal
// slash-separated indices ("f 1/2/3 ...") are accepted, taking only the
// vertex index; faces with more than 3 indices are rejected rather than
// silently fan-triangulated, since the format spec requires triangulated
// input.
func Load(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, rendererr.NewConfigError("Mesh.File", err)
	}
	defer f.Close()

	data := &Data{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, rendererr.NewParseError(path, lineNo, err)
			}
			data.Vertices = append(data.Vertices, v)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, rendererr.NewParseError(path, lineNo, err)
			}
			data.Normals = append(data.Normals, n)
		case "f":
			if len(fields[1:]) != 3 {
				return nil, rendererr.NewParseError(path, lineNo, fmt.Errorf("face must be triangulated, got %d vertices", len(fields[1:])))
			}
			for _, tok := range fields[1:] {
				idx, err := parseFaceIndex(tok, len(data.Vertices))
				if err != nil {
					return nil, rendererr.NewParseError(path, lineNo, err)
				}
				data.Faces = append(data.Faces, idx)
			}
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, rendererr.NewParseError(path, lineNo, err)
	}

	return data, nil
}

func parseVec3(fields []string) (core.Vec3, error) {
	if len(fields) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v [3]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid number %q: %w", f, err)
		}
		v[i] = n
	}
	return core.NewVec3(v[0], v[1], v[2]), nil
}

// parseFaceIndex parses a single "f" token ("3", "3/4", or "3/4/5") and
// returns the 0-indexed vertex index, bounds-checked against vertexCount.
func parseFaceIndex(tok string, vertexCount int) (int, error) {
	vertexPart := strings.SplitN(tok, "/", 2)[0]
	n, err := strconv.Atoi(vertexPart)
	if err != nil {
		return 0, fmt.Errorf("invalid face index %q: %w", tok, err)
	}
	idx := n - 1 // OBJ indices are 1-based
	if idx < 0 || idx >= vertexCount {
		return 0, fmt.Errorf("face index %d out of range [1,%d]", n, vertexCount)
	}
	return idx, nil
}
