// Package csv reads a resource catalog from comma-separated text.
package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/vaultexport/pkg/core"
)

const bom = "\ufeff"

// ErrConsumed is returned when Rows is ranged over a second time.
var ErrConsumed = errors.New("catalog rows already consumed")

// Source is a core.RowSource over a CSV stream whose first row names the fields.
type Source struct {
	reader   *stdcsv.Reader
	header   []string
	closer   io.Closer
	consumed bool
}

// Open opens the catalog at path and reads its header.
// A missing file or a header without the required columns is an input error.
func Open(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.InputErrorf("open catalog: %w", err)
	}

	src, err := NewSource(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	src.closer = f
	return src, nil
}

// NewSource reads the header row from r. It does not take ownership of r.
func NewSource(r io.Reader) (*Source, error) {
	reader := stdcsv.NewReader(r)

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, core.InputErrorf("empty catalog: no header row")
	}
	if err != nil {
		return nil, core.InputErrorf("read header: %w", err)
	}

	header[0] = strings.TrimPrefix(header[0], bom)
	for i, h := range header {
		if !utf8.ValidString(h) {
			return nil, core.InputErrorf("header column %d is not valid UTF-8", i+1)
		}
		header[i] = strings.TrimSpace(h)
	}

	if missing := core.MissingColumns(header); len(missing) > 0 {
		return nil, core.InputErrorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	return &Source{reader: reader, header: header}, nil
}

// Header returns the field names in file order.
func (s *Source) Header() []string {
	return append([]string(nil), s.header...)
}

// Rows yields one row per data line in file order. Reading stops at the first
// malformed line, which is yielded as an input error.
func (s *Source) Rows() iter.Seq2[core.Row, error] {
	return func(yield func(core.Row, error) bool) {
		if s.consumed {
			yield(nil, core.InputErrorf("%w", ErrConsumed))
			return
		}
		s.consumed = true

		for {
			record, err := s.reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(nil, core.InputErrorf("read row: %w", err))
				return
			}

			line, _ := s.reader.FieldPos(0)
			row := make(core.Row, len(s.header))
			for i, name := range s.header {
				if !utf8.ValidString(record[i]) {
					yield(nil, core.InputErrorf("line %d, column %q: value is not valid UTF-8", line, name))
					return
				}
				row[name] = record[i]
			}

			if !yield(row, nil) {
				return
			}
		}
	}
}

// Close releases the underlying file, if Source owns one.
func (s *Source) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

var _ core.RowSource = (*Source)(nil)
