// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fdtd

// pmlActive tells whether corrections must be applied
func (o *Simulation) pmlActive() bool {
	return o.PmlEnabled && o.Cfg.Pml.Thickness > 0
}

// updateE advances the electric field using backward differences of H
func (o *Simulation) updateE() {

	// auxiliary
	nx, ny, nz := o.Cfg.Nx, o.Cfg.Ny, o.Cfg.Nz
	pml := o.pmlActive()
	px, py, pz := o.PmlX, o.PmlY, o.PmlZ
	ex, ey, ez := o.Ex.Data, o.Ey.Data, o.Ez.Data
	hx, hy, hz := o.Hx.Data, o.Hy.Data, o.Hz.Data
	ca, cb := o.Ca.Data, o.Cb.Data
	sx, sxy := 1, nx // strides
	sz := nx * ny

	// Ex: dEx/dt = (dHz/dy - dHy/dz) / ε
	for k := 0; k < nz-1; k++ {
		for j := 0; j < ny-1; j++ {
			for i := 0; i < nx; i++ {
				n := k*sz + j*sxy + i
				njm, nkm := n, n
				if j > 0 {
					njm = n - sxy
				}
				if k > 0 {
					nkm = n - sz
				}
				dhzdy := hz[n] - hz[njm]
				dhydz := hy[n] - hy[nkm]
				ex[n] = ca[n]*ex[n] + cb[n]*(dhzdy-dhydz)
				if pml {
					if py.InBand(j, ny) {
						ex[n] += cb[n] * o.PsiExY.Correct(n, j, dhzdy)
					}
					if pz.InBand(k, nz) {
						ex[n] -= cb[n] * o.PsiExZ.Correct(n, k, dhydz)
					}
				}
			}
		}
	}

	// Ey: dEy/dt = (dHx/dz - dHz/dx) / ε
	for k := 0; k < nz-1; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx-1; i++ {
				n := k*sz + j*sxy + i
				nim, nkm := n, n
				if i > 0 {
					nim = n - sx
				}
				if k > 0 {
					nkm = n - sz
				}
				dhxdz := hx[n] - hx[nkm]
				dhzdx := hz[n] - hz[nim]
				ey[n] = ca[n]*ey[n] + cb[n]*(dhxdz-dhzdx)
				if pml {
					if pz.InBand(k, nz) {
						ey[n] += cb[n] * o.PsiEyZ.Correct(n, k, dhxdz)
					}
					if px.InBand(i, nx) {
						ey[n] -= cb[n] * o.PsiEyX.Correct(n, i, dhzdx)
					}
				}
			}
		}
	}

	// Ez: dEz/dt = (dHy/dx - dHx/dy) / ε
	for k := 0; k < nz; k++ {
		for j := 0; j < ny-1; j++ {
			for i := 0; i < nx-1; i++ {
				n := k*sz + j*sxy + i
				nim, njm := n, n
				if i > 0 {
					nim = n - sx
				}
				if j > 0 {
					njm = n - sxy
				}
				dhydx := hy[n] - hy[nim]
				dhxdy := hx[n] - hx[njm]
				ez[n] = ca[n]*ez[n] + cb[n]*(dhydx-dhxdy)
				if pml {
					if px.InBand(i, nx) {
						ez[n] += cb[n] * o.PsiEzX.Correct(n, i, dhydx)
					}
					if py.InBand(j, ny) {
						ez[n] -= cb[n] * o.PsiEzY.Correct(n, j, dhxdy)
					}
				}
			}
		}
	}
}

// updateH advances the magnetic field using forward differences of E
func (o *Simulation) updateH() {

	// auxiliary
	nx, ny, nz := o.Cfg.Nx, o.Cfg.Ny, o.Cfg.Nz
	pml := o.pmlActive()
	px, py, pz := o.PmlX, o.PmlY, o.PmlZ
	ex, ey, ez := o.Ex.Data, o.Ey.Data, o.Ez.Data
	hx, hy, hz := o.Hx.Data, o.Hy.Data, o.Hz.Data
	da, db := o.Da.Data, o.Db.Data
	sx, sxy := 1, nx
	sz := nx * ny

	// Hx: dHx/dt = -(dEz/dy - dEy/dz) / μ
	for k := 0; k < nz-1; k++ {
		for j := 0; j < ny-1; j++ {
			for i := 0; i < nx; i++ {
				n := k*sz + j*sxy + i
				dezdy := ez[n+sxy] - ez[n]
				deydz := ey[n+sz] - ey[n]
				hx[n] = da[n]*hx[n] - db[n]*(dezdy-deydz)
				if pml {
					if py.InBand(j, ny) {
						hx[n] -= db[n] * o.PsiHxY.Correct(n, j, dezdy)
					}
					if pz.InBand(k, nz) {
						hx[n] += db[n] * o.PsiHxZ.Correct(n, k, deydz)
					}
				}
			}
		}
	}

	// Hy: dHy/dt = -(dEx/dz - dEz/dx) / μ
	for k := 0; k < nz-1; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx-1; i++ {
				n := k*sz + j*sxy + i
				dexdz := ex[n+sz] - ex[n]
				dezdx := ez[n+sx] - ez[n]
				hy[n] = da[n]*hy[n] - db[n]*(dexdz-dezdx)
				if pml {
					if pz.InBand(k, nz) {
						hy[n] -= db[n] * o.PsiHyZ.Correct(n, k, dexdz)
					}
					if px.InBand(i, nx) {
						hy[n] += db[n] * o.PsiHyX.Correct(n, i, dezdx)
					}
				}
			}
		}
	}

	// Hz: dHz/dt = -(dEy/dx - dEx/dy) / μ
	for k := 0; k < nz; k++ {
		for j := 0; j < ny-1; j++ {
			for i := 0; i < nx-1; i++ {
				n := k*sz + j*sxy + i
				deydx := ey[n+sx] - ey[n]
				dexdy := ex[n+sxy] - ex[n]
				hz[n] = da[n]*hz[n] - db[n]*(deydx-dexdy)
				if pml {
					if px.InBand(i, nx) {
						hz[n] -= db[n] * o.PsiHzX.Correct(n, i, deydx)
					}
					if py.InBand(j, ny) {
						hz[n] += db[n] * o.PsiHzY.Correct(n, j, dexdy)
					}
				}
			}
		}
	}
}
