package domain

import (
	"context"
	"fmt"
)

// StandardNameTable is an ssno:StandardNameTable. Its identity is its title.
type StandardNameTable struct {
	Dataset
	StandardNames []StandardName `json:"standard_names,omitempty"` // ssno:standardNames
	Guideline     *Distribution  `json:"guideline,omitempty"`      // ssno:guideline
}

func NewStandardNameTable(t StandardNameTable) (*StandardNameTable, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate checks the dataset fields, every standard name and that no
// standard name occurs twice.
func (t *StandardNameTable) Validate() error {
	v := newValidation("StandardNameTable")
	t.Dataset.validate(v)

	seen := map[string]struct{}{}
	for i := range t.StandardNames {
		sn := &t.StandardNames[i]
		v.check(fmt.Sprintf("standard_names[%d]", i), sn.StandardName, sn.Validate())

		if _, dup := seen[sn.StandardName]; dup {
			v.check(fmt.Sprintf("standard_names[%d]", i), sn.StandardName, ErrDuplicateStandardName)
		}
		seen[sn.StandardName] = struct{}{}
	}

	if t.Guideline != nil {
		v.check("guideline", t.Guideline.DownloadURL, t.Guideline.Validate())
	}

	return v.err()
}

func (t StandardNameTable) String() string {
	return t.Title
}

func (t StandardNameTable) Equal(other StandardNameTable) bool {
	return t.Title == other.Title
}

// Lookup finds a standard name by its key.
func (t StandardNameTable) Lookup(name string) (*StandardName, bool) {
	for i := range t.StandardNames {
		if t.StandardNames[i].StandardName == name {
			return &t.StandardNames[i], true
		}
	}
	return nil, false
}

func (t StandardNameTable) ToDict() map[string]any {
	dict := map[string]any{}
	t.Dataset.toDict(dict)

	if len(t.StandardNames) > 0 {
		names := make([]map[string]any, 0, len(t.StandardNames))
		for _, sn := range t.StandardNames {
			names = append(names, sn.ToDict())
		}
		dict["standard_names"] = names
	}

	if t.Guideline != nil {
		dict["guideline"] = t.Guideline.ToDict()
	}

	return dict
}

func StandardNameTableFromDict(ctx context.Context, dict map[string]any) (*StandardNameTable, error) {
	dr := &dictReader{record: "StandardNameTable", d: dict}
	t := StandardNameTable{}
	t.Dataset.fromDict(dr)

	for _, d := range dr.dicts("standard_names") {
		sn, err := StandardNameFromDict(ctx, d)
		if err != nil {
			dr.fail("standard_names", d["standard_name"], err)
			continue
		}
		t.StandardNames = append(t.StandardNames, *sn)
	}

	if guideline := dr.dict("guideline"); guideline != nil {
		g, err := DistributionFromDict(guideline)
		if err != nil {
			dr.fail("guideline", guideline, err)
		} else {
			t.Guideline = g
		}
	}

	if err := dr.err(); err != nil {
		return nil, err
	}

	return NewStandardNameTable(t)
}
