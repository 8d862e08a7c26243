package detector

import (
	"sort"

	"github.com/cmlabs-hris/workforce-pulse-go/internal/domain/exception"
)

// impactPriority orders impact tags for ranking; lower index ranks first.
var impactPriority = []exception.ImpactTag{
	exception.ImpactCompliance,
	exception.ImpactCost,
	exception.ImpactCoverage,
	exception.ImpactPattern,
}

// Rank produces a stable total order: severity desc, best impact tag,
// repetition count desc, creation time desc. The comparator is
// deterministic so identical inputs always produce identical ordering.
func Rank(exceptions []exception.Exception) []exception.Exception {
	ranked := make([]exception.Exception, len(exceptions))
	copy(ranked, exceptions)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.Severity.Rank() != b.Severity.Rank() {
			return a.Severity.Rank() > b.Severity.Rank()
		}
		if ai, bi := impactIndex(a), impactIndex(b); ai != bi {
			return ai < bi
		}
		if a.RepetitionCount != b.RepetitionCount {
			return a.RepetitionCount > b.RepetitionCount
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	return ranked
}

// impactIndex returns the position of the exception's best impact tag in
// impactPriority. Exceptions with no tag in the list sort after all that
// have one.
func impactIndex(e exception.Exception) int {
	for i, priority := range impactPriority {
		for _, tag := range e.ImpactTags {
			if tag == priority {
				return i
			}
		}
	}
	return len(impactPriority)
}
