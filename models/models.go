// Package models lists the bundled example automata.
package models

import (
	"github.com/rfielding/automata/models/binary"
	"github.com/rfielding/automata/models/containsa"
	"github.com/rfielding/automata/suite"
)

func All() []suite.ModelSpec {
	return []suite.ModelSpec{
		containsa.Model{},
		binary.Model{},
	}
}

func Lookup(name string) (suite.ModelSpec, bool) {
	for _, m := range All() {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}
