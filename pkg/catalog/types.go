package catalog

import (
	"sort"

	"github.com/goliatone/go-parsec/pkg/params"
)

// Entry is a named parameter set resolved from a catalog file.
type Entry struct {
	Name        string
	Description string
	Source      string
	Params      params.ParameterSet
}

// Store holds catalog entries keyed by name.
type Store struct {
	entries map[string]Entry
}

// Get returns the entry registered under name.
func (s *Store) Get(name string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	entry, ok := s.entries[name]
	return entry, ok
}

// Names lists entry names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len reports the number of entries.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// documentFile is the on-disk shape of a catalog file.
type documentFile struct {
	Airfoils map[string]entryFile `json:"airfoils" yaml:"airfoils"`
}

// entryFile carries either an interchange string or explicit fields. Angles
// are written in degrees. Pointers distinguish "absent" from zero so a file
// cannot mix both forms silently.
type entryFile struct {
	Description string   `json:"description" yaml:"description"`
	Parsec11    string   `json:"parsec11" yaml:"parsec11"`
	RLE         *float64 `json:"r_le" yaml:"r_le"`
	XUp         *float64 `json:"x_up" yaml:"x_up"`
	ZUp         *float64 `json:"z_up" yaml:"z_up"`
	ZXXUp       *float64 `json:"zxx_up" yaml:"zxx_up"`
	XLo         *float64 `json:"x_lo" yaml:"x_lo"`
	ZLo         *float64 `json:"z_lo" yaml:"z_lo"`
	ZXXLo       *float64 `json:"zxx_lo" yaml:"zxx_lo"`
	ZTE         *float64 `json:"z_te" yaml:"z_te"`
	DZTE        *float64 `json:"dz_te" yaml:"dz_te"`
	AlphaTEDeg  *float64 `json:"alpha_te_deg" yaml:"alpha_te_deg"`
	BetaTEDeg   *float64 `json:"beta_te_deg" yaml:"beta_te_deg"`
	PMix        *float64 `json:"p_mix" yaml:"p_mix"`
}
