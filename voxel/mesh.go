// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voxel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Mesh holds a watertight triangle mesh with its material
type Mesh struct {
	Name     string    // name of object
	Verts    []r3.Vec  // vertex coordinates
	Tris     [][3]int  // triangles (indices in Verts)
	Material *Material // material of all enclosed voxels
}

// Bounds returns the bounding box of the mesh
func (o *Mesh) Bounds() (box r3.Box) {
	box.Min = r3.Vec{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	box.Max = r3.Scale(-1, box.Min)
	for _, v := range o.Verts {
		box.Min = r3.Vec{X: math.Min(box.Min.X, v.X), Y: math.Min(box.Min.Y, v.Y), Z: math.Min(box.Min.Z, v.Z)}
		box.Max = r3.Vec{X: math.Max(box.Max.X, v.X), Y: math.Max(box.Max.Y, v.Y), Z: math.Max(box.Max.Z, v.Z)}
	}
	return
}

// Triangle returns triangle i
func (o *Mesh) Triangle(i int) r3.Triangle {
	t := o.Tris[i]
	return r3.Triangle{o.Verts[t[0]], o.Verts[t[1]], o.Verts[t[2]]}
}

// rayDir is the direction of the inside/outside test ray. It is tilted slightly off +x so that
// rays from voxel centres do not run through the shared diagonal of axis-aligned quads
var rayDir = r3.Vec{X: 1, Y: 1.31e-5, Z: 2.87e-5}

// Contains tells whether point p is inside the mesh. A ray is cast along (about) +x and the
// crossings are counted; an odd number of crossings means inside
func (o *Mesh) Contains(p r3.Vec) bool {
	return o.Crossings(p)%2 == 1
}

// Crossings returns the number of triangles hit by the test ray starting at p
func (o *Mesh) Crossings(p r3.Vec) (n int) {
	for i := range o.Tris {
		if rayHitsTriangle(p, rayDir, o.Triangle(i)) {
			n++
		}
	}
	return
}

// VoxelizeMesh marks all voxels whose centre is inside mesh with the mesh's material
func (o *Grid) VoxelizeMesh(mesh *Mesh) {

	// material
	id := o.AddMaterial(mesh.Material)

	// voxel range overlapping the bounding box
	box := mesh.Bounds()
	xmin := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	xmax := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}
	var start, end [3]int
	nn := [3]int{o.Nx, o.Ny, o.Nz}
	for i := 0; i < 3; i++ {
		start[i] = int(math.Max(math.Floor((xmin[i]-o.Origin[i])/o.VoxelSize), 0))
		end[i] = int(math.Ceil((xmax[i] - o.Origin[i]) / o.VoxelSize))
		if end[i] > nn[i] {
			end[i] = nn[i]
		}
	}

	// test voxel centres
	for z := start[2]; z < end[2]; z++ {
		for y := start[1]; y < end[1]; y++ {
			for x := start[0]; x < end[0]; x++ {
				if mesh.Contains(o.Center(x, y, z)) {
					o.Set(x, y, z, id)
				}
			}
		}
	}
}

// VoxelizeScene returns a grid enclosing all meshes plus padding, with all meshes voxelised
// in the given order (later meshes overwrite earlier ones)
func VoxelizeScene(meshes []*Mesh, voxelSize, padding float64) (o *Grid) {
	var box r3.Box
	for _, m := range meshes {
		box = box.Union(m.Bounds())
	}
	pad := r3.Vec{X: padding, Y: padding, Z: padding}
	origin, size := r3.Sub(box.Min, pad), r3.Add(box.Size(), r3.Scale(2, pad))
	o = NewGrid([3]float64{origin.X, origin.Y, origin.Z}, [3]float64{size.X, size.Y, size.Z}, voxelSize)
	for _, m := range meshes {
		o.VoxelizeMesh(m)
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

// rayHitsTriangle implements the Möller–Trumbore ray/triangle intersection test
func rayHitsTriangle(orig, dir r3.Vec, tri r3.Triangle) bool {
	const eps = 1e-9
	e1 := r3.Sub(tri[1], tri[0])
	e2 := r3.Sub(tri[2], tri[0])
	h := r3.Cross(dir, e2)
	a := r3.Dot(e1, h)
	if math.Abs(a) < eps {
		return false // parallel
	}
	f := 1.0 / a
	s := r3.Sub(orig, tri[0])
	u := f * r3.Dot(s, h)
	if u < 0 || u > 1 {
		return false
	}
	q := r3.Cross(s, e1)
	v := f * r3.Dot(dir, q)
	if v < 0 || u+v > 1 {
		return false
	}
	return f*r3.Dot(e2, q) > eps
}
