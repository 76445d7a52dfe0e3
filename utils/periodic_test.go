package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodicDiff(t *testing.T) {
	I := NewMatrix(3, 2, []float64{
		1, 2,
		4, 8,
		16, 32,
	})
	// Roll along rows: R[i] = I[i-1]
	assert.Equal(t, []float64{
		16, 32,
		1, 2,
		4, 8,
	}, Roll(I, 1, 0).Data())
	assert.Equal(t, []float64{
		2, 1,
		8, 4,
		32, 16,
	}, Roll(I, 1, 1).Data())
	assert.Equal(t, I.Data(), Roll(I, 3, 0).Data())
	assert.Equal(t, Roll(I, -1, 0).Data(), Roll(I, 2, 0).Data())

	Dx := PeriodicDiff(I, 0)
	assert.Equal(t, []float64{
		15, 30,
		-3, -6,
		-12, -24,
	}, Dx.Data())
	Dy := PeriodicDiff(I, 1)
	assert.Equal(t, []float64{
		1, -1,
		4, -4,
		16, -16,
	}, Dy.Data())
	// Differences around a closed loop sum to zero
	for j := 0; j < 2; j++ {
		var sum float64
		for _, val := range Dx.Col(j) {
			sum += val
		}
		assert.Equal(t, 0., sum)
	}
	// Input is not modified
	assert.Equal(t, []float64{1, 2, 4, 8, 16, 32}, I.Data())
	assert.Panics(t, func() { Roll(I, 1, 2) })
}
