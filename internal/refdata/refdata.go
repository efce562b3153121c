// Package refdata loads the operation catalog and the multi-ID rule table
// from their external sources at process start. Loading fails fast and
// loudly: there is no fallback to stale or partial data.
package refdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mapleridge/opsig/internal/engine/catalog"
	"github.com/mapleridge/opsig/internal/model"
)

// ReferenceDataError reports a missing, malformed, or empty reference
// source. Fatal: no resolution can proceed without the reference data.
type ReferenceDataError struct {
	Source string
	Err    error
}

func (e *ReferenceDataError) Error() string {
	return fmt.Sprintf("reference data %s: %v", e.Source, e.Err)
}

func (e *ReferenceDataError) Unwrap() error {
	return e.Err
}

// Load reads the catalog CSV and (optionally) the rules YAML and builds the
// validated in-memory catalog. rulesPath may be empty when no supplemental
// rules apply. Every failure, including catalog validation, surfaces as a
// ReferenceDataError.
func Load(catalogPath, rulesPath string) (*catalog.Catalog, error) {
	entries, err := LoadCatalog(catalogPath)
	if err != nil {
		return nil, err
	}

	var rules []model.Rule
	if rulesPath != "" {
		rules, err = LoadRules(rulesPath)
		if err != nil {
			return nil, err
		}
	}

	cat, err := catalog.New(entries, rules)
	if err != nil {
		return nil, &ReferenceDataError{Source: catalogPath, Err: err}
	}
	return cat, nil
}

// LoadCatalog reads the name→ID table from a CSV file with an `id,name`
// header. Extra columns are tolerated; missing columns, non-integer or
// negative identifiers, empty names, and files with no data rows are not.
func LoadCatalog(path string) ([]model.Operation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReferenceDataError{Source: path, Err: errors.Wrap(err, "open catalog")}
	}
	defer f.Close()

	entries, err := parseCatalog(f)
	if err != nil {
		return nil, &ReferenceDataError{Source: path, Err: err}
	}
	return entries, nil
}

func parseCatalog(r io.Reader) ([]model.Operation, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty catalog")
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if len(header) < 2 ||
		!strings.EqualFold(strings.TrimSpace(header[0]), "id") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "name") {
		return nil, errors.Errorf("malformed header %v, want id,name", header)
	}

	var entries []model.Operation
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		if len(rec) < 2 {
			return nil, errors.Errorf("line %d: %d columns, want at least 2", line, len(rec))
		}
		id, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, errors.Errorf("line %d: non-integer id %q", line, rec[0])
		}
		if id < 0 {
			return nil, errors.Errorf("line %d: negative id %d", line, id)
		}
		name := strings.TrimSpace(rec[1])
		if name == "" {
			return nil, errors.Errorf("line %d: empty name", line)
		}
		entries = append(entries, model.Operation{ID: id, Name: name})
	}
	if len(entries) == 0 {
		return nil, errors.New("catalog has no data rows")
	}
	return entries, nil
}

// ruleDoc is the YAML shape of the multi-ID rule table.
type ruleDoc struct {
	Rules []ruleSpec `yaml:"rules"`
}

type ruleSpec struct {
	Name     string       `yaml:"name"`
	IDs      []int        `yaml:"ids"`
	Branches []branchSpec `yaml:"branches"`
}

type branchSpec struct {
	Keyword string `yaml:"keyword"`
	IDs     []int  `yaml:"ids"`
}

// LoadRules reads the multi-ID rule document. Structural validation (one of
// ids/branches, non-empty keywords) happens in catalog.New; this layer
// rejects unreadable or empty documents.
func LoadRules(path string) ([]model.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReferenceDataError{Source: path, Err: errors.Wrap(err, "open rules")}
	}

	var doc ruleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ReferenceDataError{Source: path, Err: errors.Wrap(err, "decode rules")}
	}
	if len(doc.Rules) == 0 {
		return nil, &ReferenceDataError{Source: path, Err: errors.New("rules document is empty")}
	}

	rules := make([]model.Rule, 0, len(doc.Rules))
	for _, rs := range doc.Rules {
		r := model.Rule{Name: rs.Name, IDs: rs.IDs}
		for _, b := range rs.Branches {
			r.Branches = append(r.Branches, model.RuleBranch{Keyword: b.Keyword, IDs: b.IDs})
		}
		rules = append(rules, r)
	}
	return rules, nil
}
