package automaton

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	u "github.com/araddon/gou"
	"github.com/pkg/errors"
)

// LoadFile reads and parses a document. An empty path means nothing was
// chosen: it returns a nil document and no error.
func LoadFile(path string) (*Document, error) {
	if path == "" {
		return nil, nil
	}
	name := filepath.Base(path)
	if !strings.EqualFold(filepath.Ext(name), ".json") {
		return nil, errors.Wrapf(ErrInvalidFileType, "%q, please select a .json file", name)
	}
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading file %q", name)
	}
	doc, err := ParseDocument(bs)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing JSON file %q", name)
	}
	u.Debugf("loaded %q: %d states, %d symbols", doc.Name, doc.StateCount, doc.AlphabetSize)
	return doc, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// FileName derives the file name a document is saved under.
func FileName(name string) string {
	if name == "" {
		name = "automaton"
	}
	return unsafeFileChars.ReplaceAllString(name, "_") + ".json"
}

// SaveFile writes doc to path in the indented document format.
func SaveFile(path string, doc *Document) error {
	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		return errors.Wrap(err, "encoding document")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing %q", path)
	}
	u.Debugf("saved %q to %s", doc.Name, path)
	return nil
}
