package geometry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nekronos/swr/math3"
)

const quadOBJ = `# two triangles
v 0.0 0.0 0.0
v 1.0 0.0 0.0
v 1.0 1.0 0.0
v 0.0 1.0 0.0
f 1 2 3
f 1/1/1 3/3/3 4/4/4
`

func writeOBJ(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOBJ(t *testing.T) {
	m, err := LoadOBJ(writeOBJ(t, "quad.obj", quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	if m.Name != "quad" {
		t.Fatalf("name: have %q, want %q", m.Name, "quad")
	}
	if len(m.Vertices) != 4 || len(m.Faces) != 2 {
		t.Fatalf("have %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
	if m.Vertices[2] != math3.V3(1, 1, 0) {
		t.Fatalf("vertex 2: have %v", m.Vertices[2])
	}
	if m.Faces[1] != (Face{0, 2, 3}) {
		t.Fatalf("face 1: have %+v", m.Faces[1])
	}
	checkFaces(t, m)
}

func TestLoadOBJBadIndex(t *testing.T) {
	_, err := LoadOBJ(writeOBJ(t, "bad.obj", "v 0 0 0\nf 1 2 3\n"))
	if err == nil {
		t.Fatal("want error for out-of-range face index")
	}
}

func TestLoadOBJMissing(t *testing.T) {
	if _, err := LoadOBJ(filepath.Join(t.TempDir(), "nope.obj")); err == nil {
		t.Fatal("want error for missing file")
	}
}
