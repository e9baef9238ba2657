package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-parsec/pkg/javafoil"
	"github.com/goliatone/go-parsec/pkg/params"
)

// LoadFS walks the provided filesystem and parses JSON/YAML catalog files.
// When fsys is nil or holds no catalog files the returned store is empty.
// Entries are checked against the parameter domain while loading so a bad
// file fails fast instead of at solve time.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{entries: make(map[string]Entry)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for rawName, raw := range doc.Airfoils {
			name := strings.TrimSpace(rawName)
			if name == "" {
				return fmt.Errorf("catalog: file %s defines an empty airfoil name", path)
			}
			if existing, exists := store.entries[name]; exists {
				return fmt.Errorf("catalog: duplicate airfoil %q (files %s and %s)", name, existing.Source, path)
			}

			ps, err := resolveEntry(raw)
			if err != nil {
				return fmt.Errorf("catalog: airfoil %q (file %s): %w", name, path, err)
			}
			if err := ps.Validate(); err != nil {
				return fmt.Errorf("catalog: airfoil %q (file %s): %w", name, path, err)
			}

			store.entries[name] = Entry{
				Name:        name,
				Description: strings.TrimSpace(raw.Description),
				Source:      path,
				Params:      ps,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(bytes.TrimSpace(data)) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	if strings.EqualFold(filepath.Ext(source), ".json") {
		if err := json.Unmarshal(data, &doc); err != nil {
			return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
		}
		return doc, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return documentFile{}, fmt.Errorf("catalog: parse %s: %w", source, err)
	}
	return doc, nil
}

func resolveEntry(raw entryFile) (params.ParameterSet, error) {
	explicit := raw.explicitFields()

	if text := strings.TrimSpace(raw.Parsec11); text != "" {
		if len(explicit) > 0 {
			return params.ParameterSet{}, fmt.Errorf("parsec11 cannot be combined with explicit fields (%s)", strings.Join(explicit, ", "))
		}
		ps, err := javafoil.Parse(text)
		if err != nil {
			return params.ParameterSet{}, err
		}
		if raw.PMix != nil {
			ps.PMix = *raw.PMix
		}
		return ps, nil
	}

	ps := params.New()
	required := []struct {
		name  string
		value *float64
		dest  *float64
	}{
		{params.FieldRLE, raw.RLE, &ps.RLE},
		{params.FieldXUp, raw.XUp, &ps.XUp},
		{params.FieldZUp, raw.ZUp, &ps.ZUp},
		{params.FieldZXXUp, raw.ZXXUp, &ps.ZXXUp},
		{params.FieldXLo, raw.XLo, &ps.XLo},
		{params.FieldZLo, raw.ZLo, &ps.ZLo},
		{params.FieldZXXLo, raw.ZXXLo, &ps.ZXXLo},
	}
	var missing []string
	for _, field := range required {
		if field.value == nil {
			missing = append(missing, field.name)
			continue
		}
		*field.dest = *field.value
	}
	if len(missing) > 0 {
		return params.ParameterSet{}, fmt.Errorf("missing fields: %s", strings.Join(missing, ", "))
	}

	if raw.ZTE != nil {
		ps.ZTE = *raw.ZTE
	}
	if raw.DZTE != nil {
		ps.DZTE = *raw.DZTE
	}
	if raw.AlphaTEDeg != nil {
		ps.AlphaTE = params.Radians(*raw.AlphaTEDeg)
	}
	if raw.BetaTEDeg != nil {
		ps.BetaTE = params.Radians(*raw.BetaTEDeg)
	}
	if raw.PMix != nil {
		ps.PMix = *raw.PMix
	}
	return ps, nil
}

func (e entryFile) explicitFields() []string {
	var out []string
	for _, field := range []struct {
		name  string
		value *float64
	}{
		{params.FieldRLE, e.RLE},
		{params.FieldXUp, e.XUp},
		{params.FieldZUp, e.ZUp},
		{params.FieldZXXUp, e.ZXXUp},
		{params.FieldXLo, e.XLo},
		{params.FieldZLo, e.ZLo},
		{params.FieldZXXLo, e.ZXXLo},
		{params.FieldZTE, e.ZTE},
		{params.FieldDZTE, e.DZTE},
		{"alpha_te_deg", e.AlphaTEDeg},
		{"beta_te_deg", e.BetaTEDeg},
	} {
		if field.value != nil {
			out = append(out, field.name)
		}
	}
	return out
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
