package blockfall

// lineScores maps a simultaneous clear count to points.
var lineScores = [...]int{0, 100, 300, 500, 800}

// ScoreDelta returns the points awarded for clearing the given number of
// rows with a single lock. Four or more rows score the same as four.
func ScoreDelta(lines int) int {
	if lines <= 0 {
		return 0
	}
	return lineScores[min(lines, len(lineScores)-1)]
}
