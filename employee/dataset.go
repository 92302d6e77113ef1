package employee

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Dataset is the static document the grid is loaded from.
type Dataset struct {
	Employees []Employee `json:"employees"`
}

// Decode reads a {"employees": [...]} document.
func Decode(r io.Reader) (*Dataset, error) {
	var doc struct {
		Employees *[]Employee `json:"employees"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode employees document")
	}
	if doc.Employees == nil {
		return nil, errors.New(`employees document has no "employees" key`)
	}
	return &Dataset{Employees: *doc.Employees}, nil
}

// Load opens and decodes the data file at path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open employees file")
	}
	defer f.Close()

	ds, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return ds, nil
}

// Len reports the number of records.
func (d *Dataset) Len() int {
	return len(d.Employees)
}
