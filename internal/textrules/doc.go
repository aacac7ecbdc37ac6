// Package textrules provides the primitive text transformation rules the
// cleaning pipeline and the segmentation engine are composed from.
//
// Every rule is a pure, total function over strings: no rule returns an
// error, keeps state between calls, or touches anything outside its input.
// Composition order is the caller's responsibility and it matters; the
// rules themselves are order-agnostic.
package textrules
