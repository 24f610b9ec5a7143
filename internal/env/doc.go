// Package env implements Env, the L-language's lexical scope stack: a
// non-empty sequence of scopes mapping identifier text to lang.Ann, with
// the bottom scope acting as the prelude.
//
// Unlike the teacher repo's parent-linked value.Env (one allocation per
// nested scope, walked via a parent pointer), Env here is a literal stack
// of maps — a slice, pushed and popped. Spec §3.5 and §5 describe Env in
// exactly those terms ("a stack of scopes ... push_new_scope ... pop"),
// and the scope-balance invariant (spec §8 invariant 4) is most directly
// expressed against a stack whose depth is just len(scopes).
package env
