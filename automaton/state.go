package automaton

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// StatePrefix is prepended to the zero-based index of every state.
const StatePrefix = "q"

// StateID names a state, e.g. "q0".
type StateID string

// Symbol is a single input character.
type Symbol rune

// NoSymbol marks an alphabet slot that has not been filled yet. U+0000 is
// reserved for it and can never be a symbol of an automaton.
const NoSymbol Symbol = 0

func (s Symbol) String() string {
	if s == NoSymbol {
		return ""
	}
	return string(rune(s))
}

// StateName returns the identifier of the i-th state.
func StateName(i int) StateID {
	return StateID(StatePrefix + strconv.Itoa(i))
}

// StateIndex parses a state identifier. Only the prefix followed by a
// canonical decimal index is accepted, so "q01" and "q-1" are not states.
func StateIndex(id StateID) (int, bool) {
	digits, ok := strings.CutPrefix(string(id), StatePrefix)
	if !ok || digits == "" {
		return 0, false
	}
	if len(digits) > 1 && digits[0] == '0' {
		return 0, false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return i, true
}

func inRange(id StateID, count int) bool {
	i, ok := StateIndex(id)
	return ok && i < count
}

// ParseSymbol keeps the last character of s. An empty s yields NoSymbol.
func ParseSymbol(s string) Symbol {
	if s == "" {
		return NoSymbol
	}
	r, _ := utf8.DecodeLastRuneInString(s)
	return Symbol(r)
}
