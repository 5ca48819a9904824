package lbm

// Q is the number of discrete velocities in the D2Q9 stencil.
const Q = 9

// c holds the discrete velocity set: c[0] is the rest direction, c[1..4]
// the axial directions, c[5..8] the diagonal directions.
var c = [Q][2]int{
	{0, 0},
	{1, 0},
	{0, 1},
	{-1, 0},
	{0, -1},
	{1, 1},
	{-1, 1},
	{-1, -1},
	{1, -1},
}

// w holds the lattice weights matching c: rest 4/9, axial 1/9, diagonal 1/36.
var w = [Q]float64{
	4.0 / 9.0,
	1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0, 1.0 / 9.0,
	1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0, 1.0 / 36.0,
}

// opp[i] is the direction whose velocity is -c[i].
var opp = [Q]int{0, 3, 4, 1, 2, 7, 8, 5, 6}

// Velocity returns the discrete velocity vector for direction i.
func Velocity(i int) (cx, cy int) {
	return c[i][0], c[i][1]
}

// Weight returns the lattice weight for direction i.
func Weight(i int) float64 {
	return w[i]
}

// Opposite returns the direction whose velocity vector is the negation of
// direction i's. Opposite(Opposite(i)) == i for all i.
func Opposite(i int) int {
	return opp[i]
}

// Neighbors returns the cell indices adjacent to n in directions 1..Q-1, in
// direction-index order, applying periodic wrap on both axes. The rest
// direction (index 0) has no neighbor and is omitted.
func Neighbors(n, Nx, Ny, Nz int) [Q - 1]int {
	x, y, z := IndexToPosition(n, Nx, Ny, Nz)
	var nbrs [Q - 1]int
	for i := 1; i < Q; i++ {
		nx := wrap(x+c[i][0], Nx)
		ny := wrap(y+c[i][1], Ny)
		nbrs[i-1] = PositionToIndex(nx, ny, z, Nx, Ny, Nz)
	}
	return nbrs
}

// NeighborInDirection returns the single cell index adjacent to n in
// direction i, with periodic wrap. i == 0 returns n itself.
func NeighborInDirection(n, i, Nx, Ny, Nz int) int {
	if i == 0 {
		return n
	}
	x, y, z := IndexToPosition(n, Nx, Ny, Nz)
	nx := wrap(x+c[i][0], Nx)
	ny := wrap(y+c[i][1], Ny)
	return PositionToIndex(nx, ny, z, Nx, Ny, Nz)
}

// DirectionIndex returns the direction i such that nn is n's neighbor in
// direction i, modulo periodic wrap. It panics if n and nn are not
// lattice-adjacent, since that signals a logic error in the caller.
func DirectionIndex(n, nn, Nx, Ny, Nz int) int {
	x, y, _ := IndexToPosition(n, Nx, Ny, Nz)
	nx, ny, _ := IndexToPosition(nn, Nx, Ny, Nz)
	for i := 1; i < Q; i++ {
		if wrap(x+c[i][0], Nx) == nx && wrap(y+c[i][1], Ny) == ny {
			return i
		}
	}
	panic("lbm: direction_index called on non-adjacent cells")
}

func wrap(v, max int) int {
	if v < 0 {
		return v + max
	}
	if v >= max {
		return v - max
	}
	return v
}
