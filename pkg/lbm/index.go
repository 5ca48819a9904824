package lbm

// IndexToPosition converts a flat cell index into its (x, y, z) lattice
// position. Total on valid input; callers are expected to keep n within
// [0, Nx*Ny*Nz) themselves, as this runs in the per-step hot path.
func IndexToPosition(n, Nx, Ny, Nz int) (x, y, z int) {
	x = n / (Ny * Nz)
	y = (n / Nz) % Ny
	z = n % Nz
	return
}

// PositionToIndex converts an (x, y, z) lattice position into its flat cell
// index. Inverse of IndexToPosition.
func PositionToIndex(x, y, z, Nx, Ny, Nz int) int {
	return x*(Ny*Nz) + y*Nz + z
}
