package lang

// Transform rewrites a into a new Ann by first transforming its List
// children (bottom-up), then applying f to the resulting node. Non-List
// nodes are passed to f unchanged, since List is the only variant this
// package recurses into.
//
// Grounded on original_source/src/expr/expr_transform.rs. pkg/eval's
// resolver builds on this rather than hand-rolling its own AST walk.
func Transform(a Ann, f func(Ann) Ann) Ann {
	list, ok := a.Value.(List)
	if !ok {
		return f(a)
	}

	children := make([]Ann, len(list.Items))
	for i, child := range list.Items {
		children[i] = Transform(child, f)
	}

	rewritten := a
	rewritten.Value = List{Items: children}

	return f(rewritten)
}
