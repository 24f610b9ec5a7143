package lang

// Iter performs a depth-first pre-order walk of root, recursing only into
// List children. A List node is yielded before its own children; Array,
// Dict, Func/Macro bodies, and every other compound variant are opaque
// leaves to this iterator — it never looks inside them.
//
// This mirrors original_source's expr_iter.rs: the traversal state is a
// stack of remaining-children slices rather than recursion, so Iter can be
// expressed as a single linear pass with no recursion depth tied to input
// depth beyond the explicit stack.
//
// Grounded on original_source/src/expr/expr_iter.rs; spec S10 is the
// behavioural contract this function must satisfy.
func Iter(root Ann) func(yield func(Ann) bool) {
	return func(yield func(Ann) bool) {
		stack := [][]Ann{{root}}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			if len(top) == 0 {
				stack = stack[:len(stack)-1]

				continue
			}

			next := top[0]
			stack[len(stack)-1] = top[1:]

			if !yield(next) {
				return
			}

			if list, ok := next.Value.(List); ok && len(list.Items) > 0 {
				stack = append(stack, list.Items)
			}
		}
	}
}
