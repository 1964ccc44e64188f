// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements a contiguous 3D array shared by field, coefficient and voxel data
package grid

import (
	"github.com/cpmech/gosl/chk"
	"golang.org/x/exp/constraints"
)

// CheckBounds activates bounds checking in At and Set. Off by default: the solver loops
// index Data directly and callers are responsible for in-range coordinates
var CheckBounds = false

// Number defines the allowed element types
type Number interface {
	constraints.Integer | constraints.Float
}

// Grid3D holds a dense 3D array flattened as k*Ny*Nx + j*Nx + i
type Grid3D[T Number] struct {
	Nx, Ny, Nz int // dimensions
	Data       []T // [Nx*Ny*Nz] values
}

// New returns a new grid filled with zeros
func New[T Number](nx, ny, nz int) (o *Grid3D[T]) {
	o = new(Grid3D[T])
	o.Nx, o.Ny, o.Nz = nx, ny, nz
	o.Data = make([]T, nx*ny*nz)
	return
}

// NewFilled returns a new grid with all entries equal to v
func NewFilled[T Number](nx, ny, nz int, v T) (o *Grid3D[T]) {
	o = New[T](nx, ny, nz)
	o.Fill(v)
	return
}

// Len returns the number of entries
func (o *Grid3D[T]) Len() int { return len(o.Data) }

// Idx returns the flat index of (i,j,k)
func (o *Grid3D[T]) Idx(i, j, k int) int {
	return k*o.Ny*o.Nx + j*o.Nx + i
}

// Ijk returns the (i,j,k) coordinates of a flat index
func (o *Grid3D[T]) Ijk(n int) (i, j, k int) {
	nxy := o.Nx * o.Ny
	k = n / nxy
	j = (n - k*nxy) / o.Nx
	i = n - k*nxy - j*o.Nx
	return
}

// Inside tells whether (i,j,k) lies within the grid
func (o *Grid3D[T]) Inside(i, j, k int) bool {
	return i >= 0 && i < o.Nx && j >= 0 && j < o.Ny && k >= 0 && k < o.Nz
}

// At returns the value at (i,j,k)
func (o *Grid3D[T]) At(i, j, k int) T {
	if CheckBounds {
		o.check(i, j, k)
	}
	return o.Data[o.Idx(i, j, k)]
}

// Set sets the value at (i,j,k)
func (o *Grid3D[T]) Set(i, j, k int, v T) {
	if CheckBounds {
		o.check(i, j, k)
	}
	o.Data[o.Idx(i, j, k)] = v
}

// Add adds v to the value at (i,j,k)
func (o *Grid3D[T]) Add(i, j, k int, v T) {
	if CheckBounds {
		o.check(i, j, k)
	}
	o.Data[o.Idx(i, j, k)] += v
}

// Fill sets all entries to v
func (o *Grid3D[T]) Fill(v T) {
	for n := range o.Data {
		o.Data[n] = v
	}
}

// SameShape tells whether other has the same dimensions
func (o *Grid3D[T]) SameShape(other *Grid3D[T]) bool {
	return o.Nx == other.Nx && o.Ny == other.Ny && o.Nz == other.Nz
}

// Clone returns a deep copy
func (o *Grid3D[T]) Clone() (c *Grid3D[T]) {
	c = New[T](o.Nx, o.Ny, o.Nz)
	copy(c.Data, o.Data)
	return
}

func (o *Grid3D[T]) check(i, j, k int) {
	if !o.Inside(i, j, k) {
		chk.Panic("grid: index (%d,%d,%d) is out of range [%d,%d,%d]", i, j, k, o.Nx, o.Ny, o.Nz)
	}
}
