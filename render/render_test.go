package render_test

import (
	"os"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	sdfxrender "github.com/deadsy/sdfx/render"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/wirefab/strut"
	"github.com/wirefab/strut/render"
)

const (
	benchQuality = 300
	benchSides   = 64
)

func BenchmarkSDFXStrut(b *testing.B) {
	stdout := os.Stdout
	defer func() {
		os.Stdout = stdout // pesky sdfx prints out stuff
	}()
	os.Stdout, _ = os.Open(os.DevNull)
	const output = "sdfx_strut.stl"
	object, err := sdf.Cylinder3D(100, 5, 0)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sdfxrender.ToSTL(object, benchQuality, output, &sdfxrender.MarchingCubesOctree{})
	}
}

func BenchmarkStrutSTL(b *testing.B) {
	const output = "our_strut.stl"
	struts := benchAssembly(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		render.CreateSTL(output, render.NewAssemblyRenderer(struts, benchSides))
	}
}

func benchAssembly(b *testing.B) []*strut.Strut {
	b.Helper()
	verts := []r3.Vec{
		{X: 100, Y: 100, Z: 100},
		{X: 100, Y: -100, Z: -100},
		{X: -100, Y: 100, Z: -100},
		{X: -100, Y: -100, Z: 100},
	}
	var struts []*strut.Strut
	for i := 0; i < len(verts); i++ {
		for j := i + 1; j < len(verts); j++ {
			struts = append(struts, testStrut(b, verts[i], verts[j]))
		}
	}
	return struts
}
