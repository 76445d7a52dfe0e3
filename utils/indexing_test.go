package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndex(t *testing.T) {
	I := Index{2, 0, 1, 2, 2}
	assert.Equal(t, Index{0, 3, 4}, I.Find(2))
	assert.Equal(t, Index{2}, I.Find(1))
	assert.Nil(t, I.Find(3))
	// Subset gathers I[J[k]] in the order of J
	assert.Equal(t, Index{1, 0}, I.Subset(Index{2, 1}))
	assert.Equal(t, Index{2, 2, 2}, I.Subset(Index{0, 3, 4}))
	assert.Equal(t, Index{1, 2}, NewFromFloat([]float64{1.9, 2}))

	pos, err := I.CheckBounds(3)
	assert.NoError(t, err)
	assert.Equal(t, -1, pos)
	pos, err = Index{0, 1, 7}.CheckBounds(3)
	assert.Error(t, err)
	assert.Equal(t, 2, pos)
	_, err = Index{-1}.CheckBounds(3)
	assert.Error(t, err)
}

func TestMod(t *testing.T) {
	assert.Equal(t, 1, Mod(6, 5))
	assert.Equal(t, 4, Mod(-1, 5))
	assert.Equal(t, 0, Mod(-5, 5))
	assert.Equal(t, 27., POW(3, 3))
	assert.Equal(t, 1., POW(0, 0))
}
