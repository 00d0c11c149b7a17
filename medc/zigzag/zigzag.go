// Package zigzag generates the anti-diagonal scan order used to flatten a
// square coefficient block into a 1D symbol stream, and its inverse.
package zigzag

// Order returns the zig-zag traversal order for a blockSize x blockSize
// block as a sequence of (row, col) pairs. It walks anti-diagonals
// d = 0..2*blockSize-2, alternating direction each diagonal so that
// low-frequency coefficients (near the top-left) come first and
// high-frequency ones (near the bottom-right) come last.
func Order(blockSize int) [][2]int {
	n := blockSize
	order := make([][2]int, 0, n*n)
	for d := 0; d <= 2*n-2; d++ {
		iMin := d - n + 1
		if iMin < 0 {
			iMin = 0
		}
		iMax := d
		if iMax > n-1 {
			iMax = n - 1
		}
		if d%2 == 0 {
			for i := iMin; i <= iMax; i++ {
				order = append(order, [2]int{i, d - i})
			}
		} else {
			for i := iMax; i >= iMin; i-- {
				order = append(order, [2]int{i, d - i})
			}
		}
	}
	return order
}

// Flatten reads block in the given zig-zag order, producing a length B^2
// vector.
func Flatten(block [][]int16, order [][2]int) []int16 {
	out := make([]int16, len(order))
	for k, rc := range order {
		out[k] = block[rc[0]][rc[1]]
	}
	return out
}

// Unflatten places vec back into a blockSize x blockSize block using order,
// the exact inverse of Flatten.
func Unflatten(vec []int16, order [][2]int, blockSize int) [][]int16 {
	block := make([][]int16, blockSize)
	for i := range block {
		block[i] = make([]int16, blockSize)
	}
	for k, rc := range order {
		block[rc[0]][rc[1]] = vec[k]
	}
	return block
}
