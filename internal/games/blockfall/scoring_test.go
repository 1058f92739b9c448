package blockfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreDelta(t *testing.T) {
	expected := map[int]int{
		-1: 0,
		0:  0,
		1:  100,
		2:  300,
		3:  500,
		4:  800,
		5:  800,
		20: 800,
	}

	for lines, points := range expected {
		assert.Equal(t, points, ScoreDelta(lines), "lines=%d", lines)
	}
}
