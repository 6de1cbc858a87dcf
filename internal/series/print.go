package series

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/paveg/dataseries/internal/cell"
	"github.com/paveg/dataseries/internal/common"
	"github.com/paveg/dataseries/internal/index"
)

// Print writes one line per entry in logical order:
//
//	<label>  <type>: <value>
//
// A nil writer means standard output.
func (s *Series[L]) Print(w io.Writer) error {
	return s.print(w, s.order)
}

// PrintReverse writes the same lines ordered by descending label. The
// series' own order is left as it is.
func (s *Series[L]) PrintReverse(w io.Writer) error {
	reversed := s.order.Clone()
	reversed.SortDesc(s.cfg.StableSort)
	return s.print(w, reversed)
}

// String renders the series as Print would.
func (s *Series[L]) String() string {
	var b strings.Builder
	if s.name != "" {
		fmt.Fprintf(&b, "Series %s (len=%d)\n", s.name, s.Len())
	}
	_ = s.print(&b, s.order)
	return b.String()
}

func (s *Series[L]) print(w io.Writer, order *index.Order[L]) error {
	if w == nil {
		w = os.Stdout
	}
	for _, e := range order.Entries() {
		c, ok := s.cells.Get(e.Key)
		if !ok {
			continue
		}
		desc, ok := s.descriptors.Get(e.Key)
		if !ok {
			continue
		}
		line := common.FormatEntry(common.FormatValue(e.Label), s.typeName(desc), c.Format())
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("printing entry %d: %w", uint64(e.Key), err)
		}
	}
	return nil
}

func (s *Series[L]) typeName(desc cell.Descriptor) string {
	if s.cfg.QualifiedTypeNames {
		return desc.QualifiedName()
	}
	return desc.Name
}
