// Package compare provides generic slice helpers driven by a caller supplied equality function.
//
// The helpers exist for element types that are not comparable with ==, such as interface values
// holding expression trees, where equality is structural.
//
// # Usage Examples
//
// Drop repeated GROUP BY columns while keeping their order:
//
//	columns := compare.Distinct(el.Columns, func(a, b ast.Expression) bool {
//	    return ast.Identical(a, b)
//	})
//
// Check membership:
//
//	if compare.Contains(names, name, func(a, b ast.QualifiedName) bool {
//	    return a.String() == b.String()
//	}) {
//	    ...
//	}
package compare
