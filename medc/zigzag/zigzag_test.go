package zigzag

import "testing"

func TestOrderIsPermutation(t *testing.T) {
	for _, n := range []int{2, 3, 8, 16} {
		order := Order(n)
		if len(order) != n*n {
			t.Fatalf("n=%d: len(order) = %d, want %d", n, len(order), n*n)
		}
		seen := make(map[[2]int]bool)
		for _, rc := range order {
			if rc[0] < 0 || rc[0] >= n || rc[1] < 0 || rc[1] >= n {
				t.Fatalf("n=%d: out-of-range coordinate %v", n, rc)
			}
			if seen[rc] {
				t.Fatalf("n=%d: duplicate coordinate %v", n, rc)
			}
			seen[rc] = true
		}
	}
}

func TestOrderKnown8x8StartsAtOrigin(t *testing.T) {
	order := Order(8)
	if order[0] != [2]int{0, 0} {
		t.Errorf("order[0] = %v, want [0 0]", order[0])
	}
	if order[1] != [2]int{1, 0} {
		t.Errorf("order[1] = %v, want [1 0] (odd diagonal d=1 walks bottom-left to top-right)", order[1])
	}
	last := order[len(order)-1]
	if last != [2]int{7, 7} {
		t.Errorf("order[last] = %v, want [7 7]", last)
	}
}

func TestFlattenUnflattenRoundTrip(t *testing.T) {
	for _, n := range []int{2, 4, 8} {
		order := Order(n)
		block := make([][]int16, n)
		v := int16(0)
		for i := range block {
			block[i] = make([]int16, n)
			for j := range block[i] {
				block[i][j] = v
				v++
			}
		}

		flat := Flatten(block, order)
		back := Unflatten(flat, order, n)

		for i := range block {
			for j := range block[i] {
				if back[i][j] != block[i][j] {
					t.Errorf("n=%d: back[%d][%d] = %d, want %d", n, i, j, back[i][j], block[i][j])
				}
			}
		}
	}
}
