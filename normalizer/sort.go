package normalizer

import "slices"

// sortByRequired moves required parameters ahead of optional ones. The sort
// is stable, so parameters with the same required-ness keep their order.
func sortByRequired(params []*Parameter) {
	slices.SortStableFunc(params, func(a, b *Parameter) int {
		switch {
		case a.IsRequired == b.IsRequired:
			return 0
		case a.IsRequired:
			return -1
		default:
			return 1
		}
	})
}
