// Package cohomology enumerates 1-cocycles (crossed homomorphisms) of a finite
// group G with coefficients in a finite group A under an action of G on A.
//
// The search is exhaustive: every function G → A is built and tested with
// [algebra.Mapping.Cocycle], so the cost is |A|^|G| candidates of up to |G|²
// table lookups each. Candidates are produced lazily, in the lexicographic order
// of their value sequences, and a consumer may stop at any time:
//
//	for cocycle := range cohomology.Cocycles(g, a, action) {
//		fmt.Println(cocycle)
//	}
//
// Only raw cocycles are produced; coboundaries and cohomology classes are left
// to the caller.
package cohomology
