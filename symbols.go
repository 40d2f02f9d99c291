package forthlet

import "golang.org/x/text/cases"

// foldToken maps a token to its caseless canonical form, making DUP,
// Dup, and dup the same word. Casers are stateful, so build one per
// call rather than sharing.
func foldToken(s string) string {
	return cases.Fold().String(s)
}

// symbols interns word names under their folded form. Ids are dense
// and start at 1, so 0 can mean "no such name".
type symbols struct {
	strings []string
	symbols map[string]uint
}

func (sym symbols) string(id uint) string {
	if i := int(id) - 1; i >= 0 && i < len(sym.strings) {
		return sym.strings[i]
	}
	return ""
}

func (sym symbols) symbol(s string) uint {
	return sym.symbols[foldToken(s)]
}

func (sym *symbols) symbolicate(s string) (id uint) {
	s = foldToken(s)
	id, defined := sym.symbols[s]
	if !defined {
		if sym.symbols == nil {
			sym.symbols = make(map[string]uint)
		}
		id = uint(len(sym.strings)) + 1
		sym.strings = append(sym.strings, s)
		sym.symbols[s] = id
	}
	return id
}
