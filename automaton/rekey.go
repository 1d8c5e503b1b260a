package automaton

// RekeySymbol returns a copy of t in which every row's entry for old is
// filed under renamed instead. An existing entry for renamed is overwritten.
// When renamed is NoSymbol the entries for old are dropped. t itself is not
// modified.
func RekeySymbol(t Table, old, renamed Symbol) Table {
	out := t.Clone()
	if old == renamed {
		return out
	}
	for _, row := range out {
		to, ok := row[old]
		if !ok {
			continue
		}
		delete(row, old)
		if renamed != NoSymbol {
			row[renamed] = to
		}
	}
	return out
}
