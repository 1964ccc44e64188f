// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gofdtd/voxel"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/spatial/r3"
)

// BlockData holds an axis-aligned box of material
type BlockData struct {
	Mat  string     `json:"mat"`  // material name
	Xmin [3]float64 `json:"xmin"` // min corner [mm]
	Xmax [3]float64 `json:"xmax"` // max corner [mm]
}

// DomainData holds the geometry of the computational domain
//  Note: the domain is the box [0, Size]; blocks are voxelised in the given order (later blocks
//        overwrite earlier ones); PML cells are added outside the domain
type DomainData struct {
	Size   [3]float64   `json:"size"`   // domain size [mm]
	Blocks []*BlockData `json:"blocks"` // material blocks
}

// Voxelize returns the material grid of the domain
func (o *DomainData) Voxelize(mdb *MatDb, cellSize float64) (g *voxel.Grid, err error) {
	for i := 0; i < 3; i++ {
		if o.Size[i] <= 0 {
			return nil, chk.Err("domain size must be positive. %v is invalid", o.Size)
		}
	}
	g = voxel.NewGrid([3]float64{}, o.Size, cellSize)
	for i, b := range o.Blocks {
		mat := mdb.Get(b.Mat)
		if mat == nil {
			return nil, chk.Err("block %d: cannot find material named %q", i, b.Mat)
		}
		for j := 0; j < 3; j++ {
			if b.Xmax[j] <= b.Xmin[j] {
				return nil, chk.Err("block %d: xmax must be greater than xmin. %v and %v are invalid", i, b.Xmin, b.Xmax)
			}
		}
		g.VoxelizeMesh(BoxMesh(b.Mat, b.Xmin, b.Xmax, mat.Voxel()))
	}
	return
}

// BoxMesh returns the closed triangle mesh of the box [xmin, xmax] with outward normals
func BoxMesh(name string, xmin, xmax [3]float64, mat *voxel.Material) *voxel.Mesh {
	return &voxel.Mesh{
		Name:  name,
		Verts: r3.NewBox(xmin[0], xmin[1], xmin[2], xmax[0], xmax[1], xmax[2]).Vertices(),
		Tris: [][3]int{
			{0, 2, 1}, {0, 3, 2}, // zmin
			{4, 5, 6}, {4, 6, 7}, // zmax
			{0, 1, 5}, {0, 5, 4}, // ymin
			{3, 7, 6}, {3, 6, 2}, // ymax
			{0, 4, 7}, {0, 7, 3}, // xmin
			{1, 2, 6}, {1, 6, 5}, // xmax
		},
		Material: mat,
	}
}
