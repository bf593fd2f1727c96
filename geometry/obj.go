package geometry

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nekronos/swr/math3"
)

// LoadOBJ reads a Wavefront OBJ file and returns it as a mesh. Only
// vertex positions and triangular faces are kept; texture coordinates and
// normals are ignored since the renderer has no use for them. Face
// entries may be plain indices or the usual v/vt/vn form, 1-based as the
// format requires.
func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var vertices []math3.Vector3
	var faces []Face

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj %s:%d: short vertex line", path, line)
			}
			var v math3.Vector3
			if v.X, err = strconv.ParseFloat(fields[1], 64); err != nil {
				return nil, fmt.Errorf("obj %s:%d: %w", path, line, err)
			}
			if v.Y, err = strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("obj %s:%d: %w", path, line, err)
			}
			if v.Z, err = strconv.ParseFloat(fields[3], 64); err != nil {
				return nil, fmt.Errorf("obj %s:%d: %w", path, line, err)
			}
			vertices = append(vertices, v)

		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("obj %s:%d: only triangular faces are supported", path, line)
			}
			var idx [3]uint32
			for i := 0; i < 3; i++ {
				ref := fields[i+1]
				if slash := strings.IndexByte(ref, '/'); slash >= 0 {
					ref = ref[:slash]
				}
				n, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("obj %s:%d: %w", path, line, err)
				}
				if n < 1 || n > len(vertices) {
					return nil, fmt.Errorf("obj %s:%d: vertex index %d out of range", path, line, n)
				}
				idx[i] = uint32(n - 1)
			}
			faces = append(faces, Face{idx[0], idx[1], idx[2]})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	name := strings.TrimSuffix(path[strings.LastIndexByte(path, '/')+1:], ".obj")
	return newMesh(name, vertices, faces), nil
}
