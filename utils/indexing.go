package utils

import (
	"fmt"
)

type Index []int

func NewIndex(N int) (I Index) {
	return make(Index, N)
}

func NewFromFloat(IF []float64) (r Index) {
	r = make(Index, len(IF))
	for i, val := range IF {
		r[i] = int(val)
	}
	return
}

func (I Index) Subset(J Index) (r Index) {
	r = make(Index, len(J))
	for j, val := range J {
		r[j] = I[val]
	}
	return
}

// CheckBounds returns the position of the first entry outside [0, n), or -1
func (I Index) CheckBounds(n int) (pos int, err error) {
	for i, val := range I {
		if val < 0 || val > n-1 {
			return i, fmt.Errorf("index out of bounds: index = %d, max_bounds = %d", val, n-1)
		}
	}
	return -1, nil
}

// Find returns the positions i for which I[i] == target
func (I Index) Find(target int) (J Index) {
	for i, val := range I {
		if val == target {
			J = append(J, i)
		}
	}
	return
}
