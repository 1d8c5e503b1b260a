package automaton

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Top-level keys of the document format. Every other key is a state row.
const (
	keyName         = "Nombre"
	keyAlphabetSize = "total-caracteres"
	keyStateCount   = "total-estados"
	keyStart        = "estado-inicio"
	keyAccept       = "estados-finales"
)

// MarshalJSON writes the metadata keys first, then one object per state in
// index order with its symbols in alphabet order.
func (d Document) MarshalJSON() ([]byte, error) {
	accept := d.AcceptStates
	if accept == nil {
		accept = []StateID{}
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	put := func(key string, v interface{}) error {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		writeString(&buf, key)
		buf.WriteByte(':')
		bs, err := json.Marshal(v)
		if err != nil {
			return errors.Wrapf(err, "encoding %q", key)
		}
		buf.Write(bs)
		return nil
	}

	if err := put(keyName, d.Name); err != nil {
		return nil, err
	}
	if err := put(keyAlphabetSize, d.AlphabetSize); err != nil {
		return nil, err
	}
	if err := put(keyStateCount, d.StateCount); err != nil {
		return nil, err
	}
	if err := put(keyStart, d.StartState); err != nil {
		return nil, err
	}
	if err := put(keyAccept, accept); err != nil {
		return nil, err
	}

	symbols := d.Symbols()
	for _, s := range d.States() {
		buf.WriteByte(',')
		writeString(&buf, string(s))
		buf.WriteString(":{")
		row := d.Transitions[s]
		n := 0
		for _, c := range symbols {
			to, ok := row[c]
			if !ok {
				continue
			}
			if n > 0 {
				buf.WriteByte(',')
			}
			n++
			writeString(&buf, c.String())
			buf.WriteByte(':')
			writeString(&buf, string(to))
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeString(buf *bytes.Buffer, s string) {
	// Marshalling a string cannot fail.
	bs, _ := json.Marshal(s)
	buf.Write(bs)
}

// Encode writes d pretty-printed with a four space indent.
func (d *Document) Encode(w io.Writer) error {
	bs, err := json.Marshal(d)
	if err != nil {
		return err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, bs, "", "    "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = w.Write(out.Bytes())
	return err
}

// ParseDocument decodes and structurally validates a document. Every
// failure wraps ErrMalformedDocument.
func ParseDocument(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		if errors.Is(err, ErrMalformedDocument) {
			return nil, err
		}
		return nil, malformed("%v", err)
	}
	return &d, nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil || raw == nil {
		return malformed("document must be a JSON object")
	}

	doc := Document{Name: DefaultName}
	if v, ok := raw[keyName]; ok {
		if err := json.Unmarshal(v, &doc.Name); err != nil {
			return malformed("%q must be a string", keyName)
		}
	}
	if err := field(raw, keyAlphabetSize, &doc.AlphabetSize, "an integer"); err != nil {
		return err
	}
	if doc.AlphabetSize < 1 {
		return malformed("%q must be positive, got %d", keyAlphabetSize, doc.AlphabetSize)
	}
	if err := field(raw, keyStateCount, &doc.StateCount, "an integer"); err != nil {
		return err
	}
	if doc.StateCount < 1 {
		return malformed("%q must be positive, got %d", keyStateCount, doc.StateCount)
	}
	if err := field(raw, keyStart, &doc.StartState, "a string"); err != nil {
		return err
	}
	if !doc.HasState(doc.StartState) {
		return malformed("%q: %q is not a state", keyStart, doc.StartState)
	}
	if err := field(raw, keyAccept, &doc.AcceptStates, "an array of strings"); err != nil {
		return err
	}
	for _, s := range doc.AcceptStates {
		if !doc.HasState(s) {
			return malformed("%q: %q is not a state", keyAccept, s)
		}
	}

	doc.Transitions = make(Table, doc.StateCount)
	seen := make(map[Symbol]bool)
	for _, s := range doc.States() {
		v, ok := raw[string(s)]
		if !ok {
			return malformed("missing row for state %q", s)
		}
		row, order, err := decodeRow(s, v)
		if err != nil {
			return err
		}
		doc.Transitions[s] = row
		for _, c := range order {
			if !seen[c] {
				seen[c] = true
				doc.Alphabet = append(doc.Alphabet, c)
			}
		}
	}
	if len(doc.Alphabet) > doc.AlphabetSize {
		return malformed("%d distinct symbols but %q is %d", len(doc.Alphabet), keyAlphabetSize, doc.AlphabetSize)
	}

	for key := range raw {
		if i, ok := StateIndex(StateID(key)); ok && i >= doc.StateCount {
			return malformed("row %q is outside the %d declared states", key, doc.StateCount)
		}
	}

	*d = doc
	return nil
}

func field(raw map[string]json.RawMessage, key string, v interface{}, want string) error {
	bs, ok := raw[key]
	if !ok {
		return malformed("missing %q", key)
	}
	if err := json.Unmarshal(bs, v); err != nil {
		return malformed("%q must be %s", key, want)
	}
	return nil
}

// decodeRow reads one state row, keeping the order its symbols appear in.
func decodeRow(s StateID, data json.RawMessage) (Row, []Symbol, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil, nil, malformed("row %q must be an object", s)
	}
	row := make(Row)
	var order []Symbol
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, malformed("row %q: %v", s, err)
		}
		key, _ := tok.(string)
		if utf8.RuneCountInString(key) != 1 {
			return nil, nil, malformed("row %q: key %q is not a single character", s, key)
		}
		c := ParseSymbol(key)
		if c == NoSymbol {
			return nil, nil, malformed("row %q: key %q is not a usable symbol", s, key)
		}
		var to string
		if err := dec.Decode(&to); err != nil {
			return nil, nil, malformed("row %q: destination for %q must be a string", s, key)
		}
		if _, dup := row[c]; !dup {
			order = append(order, c)
		}
		row[c] = StateID(to)
	}
	return row, order, nil
}
