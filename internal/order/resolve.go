package order

import "github.com/nao1215/taggregate/internal/tag"

// Resolve deduplicates occurrences into a canonical sequence of identities.
//
// The first accepted occurrence of an identity fixes its position; later
// occurrences never move it. When figureWise is true an occurrence is only
// accepted if it defines the item as a figure, so the first figure-defining
// occurrence wins and identities never defined as figures are dropped.
func Resolve(occurrences []tag.Token, figureWise bool) []tag.Identity {
	seen := make(map[tag.Identity]struct{}, len(occurrences))
	ordered := make([]tag.Identity, 0, len(occurrences))

	for _, occ := range occurrences {
		id := occ.Identity()
		if _, ok := seen[id]; ok {
			continue
		}
		if figureWise && !occ.IsFigure() {
			continue
		}
		seen[id] = struct{}{}
		ordered = append(ordered, id)
	}

	return ordered
}
