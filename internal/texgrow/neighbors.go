package texgrow

// Pixel is a (row, column) grid coordinate.
type Pixel struct {
	R, C int
}

// neighborOffsets lists up, left, down, right.
var neighborOffsets = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// wrap maps any i into [0,n).
func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Neighbors returns the four axis-aligned neighbors of p on a torus of side
// size: the first row is adjacent to the last, likewise for columns.
func Neighbors(p Pixel, size int) [4]Pixel {
	var out [4]Pixel
	for i, d := range neighborOffsets {
		out[i] = Pixel{R: wrap(p.R+d[0], size), C: wrap(p.C+d[1], size)}
	}
	return out
}
