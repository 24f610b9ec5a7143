package lang

// reservedSymbols is the exact set named in spec §6.3: identifiers that name
// a special form and can therefore never be rebound via let.
var reservedSymbols = map[string]bool{
	"do":       true,
	"ann":      true,
	"let":      true,
	"if":       true,
	"for":      true,
	"for_each": true,
	"eval":     true,
	"quot":     true,
	"use":      true,
	"Char":     true,
	"Func":     true,
	"Macro":    true,
	"List":     true,
	"Array":    true,
	"Dict":     true,
}

// IsReservedSymbol reports whether sym names a special form and therefore
// cannot be bound by let (spec §6.3, tested by invariant #3).
func IsReservedSymbol(sym string) bool {
	return reservedSymbols[sym]
}
