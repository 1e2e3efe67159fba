package grades

import (
	"sort"
	"strconv"
	"strings"

	"gradebook-server/models/gradebook"
)

// allCategory is the implicit bucket used when a course declares no
// category weight rules.
const allCategory = "all"

// categoryAccumulator tracks one grading category's running point totals.
type categoryAccumulator struct {
	score  float64
	total  float64
	weight int
}

// scoreTypes holds the per-course category accumulators. Rebuilt fresh for
// every course replay, never shared.
type scoreTypes struct {
	weighted bool
	types    map[string]*categoryAccumulator
}

// newScoreTypes builds the category set for a course. Declared rules whose
// weight is exactly 100 are dropped from the map; when no rules exist at
// all, a single implicit "all" bucket with weight 100 takes their place.
func newScoreTypes(rules []gradebook.GradeCalc) *scoreTypes {
	st := &scoreTypes{types: make(map[string]*categoryAccumulator)}

	if len(rules) > 0 {
		st.weighted = true
		for _, rule := range rules {
			if weight := parseWeight(rule.Weight); weight != 100 {
				st.types[rule.Type] = &categoryAccumulator{weight: weight}
			}
		}
		return st
	}

	st.types[allCategory] = &categoryAccumulator{weight: 100}
	return st
}

// parseWeight truncates "60", "60.0" or "60.5" to an integer weight.
// Unparseable weights become 0 and never contribute.
func parseWeight(s string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// add folds one qualifying assignment's raw points into the category
// matching its type. In weighted mode an unknown type is skipped silently;
// in unweighted mode everything lands in the "all" bucket.
func (st *scoreTypes) add(typeName string, value, total float64) {
	if st.weighted {
		if acc, ok := st.types[typeName]; ok {
			acc.score += value
			acc.total += total
		}
		return
	}
	acc := st.types[allCategory]
	acc.score += value
	acc.total += total
}

// runningGrade returns the weight-renormalized grade over the categories
// holding a positive total, scaled to 4 on a four-point course and 100
// otherwise. ok is false while nothing has accumulated. Categories are
// summed in name order so repeated runs stay bit-identical.
func (st *scoreTypes) runningGrade(fourPoint bool) (grade float64, ok bool) {
	names := make([]string, 0, len(st.types))
	for name := range st.types {
		names = append(names, name)
	}
	sort.Strings(names)

	var weightedSum, weightSum float64
	for _, name := range names {
		if acc := st.types[name]; acc.total > 0 {
			weightedSum += acc.score / acc.total * float64(acc.weight)
			weightSum += float64(acc.weight)
		}
	}
	if weightSum <= 0 {
		return 0, false
	}

	scale := 100.0
	if fourPoint {
		scale = 4.0
	}
	return weightedSum / weightSum * scale, true
}
