package engine

import "fmt"

// DeloadWeekIndex is always the final week of the 4-week cycle.
const DeloadWeekIndex = 3

// SchemeSet is one row of the static percentage table.
type SchemeSet struct {
	Percent float64
	Reps    int
	AMRAP   bool
}

// weekSchemes is the single source of truth for main-work percentages.
// Option 1 is the classic 5/3/1 loading, option 2 the flatter variant;
// week index 3 is the deload and never carries an AMRAP set.
var weekSchemes = map[int][4][]SchemeSet{
	1: {
		{{65, 5, false}, {75, 5, false}, {85, 5, true}},
		{{70, 3, false}, {80, 3, false}, {90, 3, true}},
		{{75, 5, false}, {85, 3, false}, {95, 1, true}},
		{{40, 5, false}, {50, 5, false}, {60, 5, false}},
	},
	2: {
		{{75, 5, false}, {80, 5, false}, {85, 5, true}},
		{{80, 3, false}, {85, 3, false}, {90, 3, true}},
		{{85, 5, false}, {90, 3, false}, {95, 1, true}},
		{{40, 5, false}, {50, 5, false}, {60, 5, false}},
	},
}

// SchemeFor returns the ordered set rows for a loading option and week index.
func SchemeFor(option, weekIndex int) ([]SchemeSet, error) {
	table, ok := weekSchemes[option]
	if !ok {
		return nil, fmt.Errorf("unknown loading option %d", option)
	}
	if weekIndex < 0 || weekIndex > DeloadWeekIndex {
		return nil, fmt.Errorf("week index %d out of range 0..3", weekIndex)
	}

	// Copy so callers can't mutate the table.
	rows := make([]SchemeSet, len(table[weekIndex]))
	copy(rows, table[weekIndex])
	return rows, nil
}
