package catalog_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/goliatone/go-parsec/pkg/airfoil"
	"github.com/goliatone/go-parsec/pkg/catalog"
	"github.com/goliatone/go-parsec/pkg/javafoil"
	"github.com/goliatone/go-parsec/pkg/params"
)

func TestDefault_ReferenceEntries(t *testing.T) {
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}

	want := []string{"blunt-trailing-edge", "javafoil-sample", "symmetric-sample", "thick-sample"}
	if diff := cmp.Diff(want, store.Names()); diff != "" {
		t.Fatalf("catalog names mismatch (-want +got):\n%s", diff)
	}

	for _, name := range store.Names() {
		entry, _ := store.Get(name)
		if _, err := airfoil.New(entry.Params); err != nil {
			t.Fatalf("entry %q does not solve: %v", name, err)
		}
		if entry.Description == "" {
			t.Fatalf("entry %q has no description", name)
		}
	}
}

func TestDefault_ExplicitMatchesInterchange(t *testing.T) {
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("load default catalog: %v", err)
	}
	entry, ok := store.Get("symmetric-sample")
	if !ok {
		t.Fatalf("symmetric-sample missing")
	}

	want := javafoil.MustParse("Parsec-11 [0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20]")
	if diff := cmp.Diff(want, entry.Params, cmpopts.EquateApprox(0, 1e-15)); diff != "" {
		t.Fatalf("explicit entry differs from interchange string (-want +got):\n%s", diff)
	}
}

func TestLoadFS_FormatsAndDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte(`
airfoils:
  minimal:
    r_le: 0.01
    x_up: 0.4
    z_up: 0.07
    zxx_up: -0.2
    x_lo: 0.3
    z_lo: -0.05
    zxx_lo: 0.3
`)},
		"nested/b.json": {Data: []byte(`{"airfoils": {"from-json": {"parsec11": "0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20", "p_mix": 0.5}}}`)},
		"notes.txt":     {Data: []byte("ignored")},
	}

	store, err := catalog.LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("expected 2 entries, got %v", store.Names())
	}

	minimal, _ := store.Get("minimal")
	want := params.New()
	want.RLE, want.XUp, want.ZUp, want.ZXXUp = 0.01, 0.4, 0.07, -0.2
	want.XLo, want.ZLo, want.ZXXLo = 0.3, -0.05, 0.3
	if diff := cmp.Diff(want, minimal.Params); diff != "" {
		t.Fatalf("minimal params mismatch (-want +got):\n%s", diff)
	}
	if minimal.Source != "a.yaml" {
		t.Fatalf("unexpected source %q", minimal.Source)
	}

	fromJSON, _ := store.Get("from-json")
	if fromJSON.Params.PMix != 0.5 {
		t.Fatalf("expected blending weight override, got %v", fromJSON.Params.PMix)
	}
	if fromJSON.Source != "nested/b.json" {
		t.Fatalf("unexpected source %q", fromJSON.Source)
	}
}

func TestLoadFS_Errors(t *testing.T) {
	cases := map[string]struct {
		files   fstest.MapFS
		errPart string
	}{
		"empty file": {
			files:   fstest.MapFS{"a.yaml": {Data: []byte("  \n")}},
			errPart: "is empty",
		},
		"unknown field": {
			files:   fstest.MapFS{"a.yaml": {Data: []byte("airfoils:\n  x:\n    radius: 0.1\n")}},
			errPart: "parse a.yaml",
		},
		"missing fields": {
			files:   fstest.MapFS{"a.yaml": {Data: []byte("airfoils:\n  x:\n    r_le: 0.1\n")}},
			errPart: "missing fields: x_up, z_up",
		},
		"mixed forms": {
			files:   fstest.MapFS{"a.yaml": {Data: []byte("airfoils:\n  x:\n    parsec11: \"0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20\"\n    r_le: 0.1\n")}},
			errPart: "cannot be combined",
		},
		"bad interchange": {
			files:   fstest.MapFS{"a.yaml": {Data: []byte("airfoils:\n  x:\n    parsec11: \"0.01:0.4\"\n")}},
			errPart: "invalid PARSEC-11",
		},
		"duplicate across files": {
			files: fstest.MapFS{
				"a.json": {Data: []byte(`{"airfoils": {"dup": {"parsec11": "0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20"}}}`)},
				"b.json": {Data: []byte(`{"airfoils": {"dup": {"parsec11": "0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20"}}}`)},
			},
			errPart: `duplicate airfoil "dup"`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.LoadFS(tc.files)
			if err == nil || !strings.Contains(err.Error(), tc.errPart) {
				t.Fatalf("expected error containing %q, got %v", tc.errPart, err)
			}
		})
	}
}

func TestLoadFS_DomainViolation(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte(`
airfoils:
  negative-radius:
    parsec11: "Parsec-11 [-0.01:0.4:0.075:-0.1:0.4:-0.075:0.1:0:0:0:20]"
`)},
	}
	_, err := catalog.LoadFS(fsys)
	if !errors.Is(err, params.ErrDomain) {
		t.Fatalf("expected ErrDomain, got %v", err)
	}
}

func TestLoadFS_NilFS(t *testing.T) {
	store, err := catalog.LoadFS(nil)
	if err != nil {
		t.Fatalf("load nil: %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store")
	}
	if _, ok := store.Get("anything"); ok {
		t.Fatalf("expected lookup miss on empty store")
	}
}
