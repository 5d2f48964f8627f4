// Package scenario loads Lua-scripted scene descriptions and drives them
// through rasterpipe, for use both by this module's scenario tests and by
// the cmd/raster-demo host. A scene script sets a handful of global
// tables/values -- vertices, faces, matrix, light, wireframe -- which
// this package reads back with the gopher-lua VM and turns into a single
// rasterpipe.Pool frame.
//
// The teacher engine declares yuin/gopher-lua and golang.org/x/sync in
// its go.mod but never imports either; this package is where rasterpipe
// finally exercises gopher-lua, in the spirit of the teacher's other
// small interpreted-config/DSL surfaces (its assembler package parses a
// line-oriented assembly DSL the same way: read a script, populate a
// handful of typed Go values, hand them to the engine).
package scenario

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/veetance/rasterpipe"
)

// Scene is the parsed, typed result of running a scenario script.
type Scene struct {
	Vertices    []rasterpipe.RawVertex
	Faces       []rasterpipe.Face
	Matrix      rasterpipe.Matrix
	Light       [3]float32
	Wireframe   bool
	Width       int
	Height      int
	FOV         float32
	WireDensity float32
}

// Load runs the Lua script at path and extracts a Scene from its globals.
// A script is expected to set:
//
//	width, height   = integers, viewport size (default 256x256)
//	wireframe       = bool (default false)
//	vertices        = { {x,y,z}, {x,y,z}, ... }
//	faces           = { {a,b,c}, ... }  (0-based vertex indices)
//	matrix          = { m0, m1, ..., m15 } (default identity)
//	light           = {x, y, z} (default {0,0,1})
//	fov             = number, the projector's focal term (default width/2)
//	density         = number in [0, 1], wireframe dash density (default 0.5)
func Load(path string) (*Scene, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return nil, fmt.Errorf("scenario: running %s: %w", path, err)
	}

	sc := &Scene{
		Matrix:      rasterpipe.Identity(),
		Light:       [3]float32{0, 0, 1},
		Width:       256,
		Height:      256,
		WireDensity: 0.5,
	}

	if w := L.GetGlobal("width"); w.Type() == lua.LTNumber {
		sc.Width = int(lua.LVAsNumber(w))
	}
	if h := L.GetGlobal("height"); h.Type() == lua.LTNumber {
		sc.Height = int(lua.LVAsNumber(h))
	}
	if wf := L.GetGlobal("wireframe"); wf.Type() == lua.LTBool {
		sc.Wireframe = lua.LVAsBool(wf)
	}
	sc.FOV = float32(sc.Width) / 2 // spec §8 scenario 1's own canonical default
	if fov := L.GetGlobal("fov"); fov.Type() == lua.LTNumber {
		sc.FOV = float32(lua.LVAsNumber(fov))
	}
	if d := L.GetGlobal("density"); d.Type() == lua.LTNumber {
		sc.WireDensity = float32(lua.LVAsNumber(d))
	}

	verts, err := readVertexTable(L.GetGlobal("vertices"))
	if err != nil {
		return nil, fmt.Errorf("scenario: vertices: %w", err)
	}
	sc.Vertices = verts

	faces, err := readFaceTable(L.GetGlobal("faces"))
	if err != nil {
		return nil, fmt.Errorf("scenario: faces: %w", err)
	}
	sc.Faces = faces

	if m := L.GetGlobal("matrix"); m.Type() == lua.LTTable {
		mat, err := readMatrixTable(m.(*lua.LTable))
		if err != nil {
			return nil, fmt.Errorf("scenario: matrix: %w", err)
		}
		sc.Matrix = mat
	}

	if l := L.GetGlobal("light"); l.Type() == lua.LTTable {
		lx, ly, lz, err := readTriple(l.(*lua.LTable))
		if err != nil {
			return nil, fmt.Errorf("scenario: light: %w", err)
		}
		sc.Light = [3]float32{lx, ly, lz}
	}

	return sc, nil
}

func readVertexTable(v lua.LValue) ([]rasterpipe.RawVertex, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("expected a Lua table, got %s", v.Type())
	}
	var out []rasterpipe.RawVertex
	var outerErr error
	tbl.ForEach(func(_, entry lua.LValue) {
		if outerErr != nil {
			return
		}
		row, ok := entry.(*lua.LTable)
		if !ok {
			outerErr = fmt.Errorf("vertex entry must be a table of 3 numbers")
			return
		}
		x, y, z, err := readTriple(row)
		if err != nil {
			outerErr = err
			return
		}
		out = append(out, rasterpipe.RawVertex{X: x, Y: y, Z: z})
	})
	return out, outerErr
}

func readFaceTable(v lua.LValue) ([]rasterpipe.Face, error) {
	tbl, ok := v.(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("expected a Lua table, got %s", v.Type())
	}
	var out []rasterpipe.Face
	var outerErr error
	tbl.ForEach(func(_, entry lua.LValue) {
		if outerErr != nil {
			return
		}
		row, ok := entry.(*lua.LTable)
		if !ok {
			outerErr = fmt.Errorf("face entry must be a table of 3 indices")
			return
		}
		a := row.RawGetInt(1)
		b := row.RawGetInt(2)
		c := row.RawGetInt(3)
		if a.Type() != lua.LTNumber || b.Type() != lua.LTNumber || c.Type() != lua.LTNumber {
			outerErr = fmt.Errorf("face indices must be numbers")
			return
		}
		out = append(out, rasterpipe.Face{
			A: uint32(lua.LVAsNumber(a)),
			B: uint32(lua.LVAsNumber(b)),
			C: uint32(lua.LVAsNumber(c)),
		})
	})
	return out, outerErr
}

func readMatrixTable(tbl *lua.LTable) (rasterpipe.Matrix, error) {
	var m rasterpipe.Matrix
	if tbl.Len() != 16 {
		return m, fmt.Errorf("matrix must have exactly 16 entries, got %d", tbl.Len())
	}
	for i := 0; i < 16; i++ {
		v := tbl.RawGetInt(i + 1)
		if v.Type() != lua.LTNumber {
			return m, fmt.Errorf("matrix entry %d is not a number", i)
		}
		m[i] = float32(lua.LVAsNumber(v))
	}
	return m, nil
}

func readTriple(tbl *lua.LTable) (x, y, z float32, err error) {
	if tbl.Len() != 3 {
		return 0, 0, 0, fmt.Errorf("expected exactly 3 numbers, got %d", tbl.Len())
	}
	vx, vy, vz := tbl.RawGetInt(1), tbl.RawGetInt(2), tbl.RawGetInt(3)
	if vx.Type() != lua.LTNumber || vy.Type() != lua.LTNumber || vz.Type() != lua.LTNumber {
		return 0, 0, 0, fmt.Errorf("expected 3 numbers")
	}
	return float32(lua.LVAsNumber(vx)), float32(lua.LVAsNumber(vy)), float32(lua.LVAsNumber(vz)), nil
}
