//go:build !debug_poolalloc

package pool

// DebugValidate calls Validate on v and panics if it returns an error. This
// method no-ops unless the debug_poolalloc build tag is present, so
// production builds never pay the O(pool size) cost of walking every free
// list.
func DebugValidate(v Validatable) {
}
