package compare

// Contains reports whether items holds an element equal to v according to equalFunc.
//
// Example:
//
//	if compare.Contains(seen, expr, func(a, b ast.Expression) bool {
//	    return ast.Identical(a, b)
//	}) {
//	    continue
//	}
func Contains[T any](items []T, v T, equalFunc func(T, T) bool) bool {
	for _, item := range items {
		if equalFunc(item, v) {
			return true
		}
	}
	return false
}

// Distinct returns the elements of items with later duplicates removed. The first occurrence of
// each element keeps its position. The input slice is not modified.
//
// Example:
//
//	columns := compare.Distinct(groupBy.Columns, func(a, b ast.Expression) bool {
//	    return ast.Identical(a, b)
//	})
func Distinct[T any](items []T, equalFunc func(T, T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !Contains(out, item, equalFunc) {
			out = append(out, item)
		}
	}
	return out
}
