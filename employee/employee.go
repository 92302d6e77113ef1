// Package employee holds the read-only employee records shown by the grid
// and the pure derivations the grid displays for them.
package employee

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// ID is an employee identifier. The data file may carry it as a JSON number
// or a JSON string.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return errors.Wrap(err, "decode id")
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrapf(err, "decode id %s", data)
	}
	*id = ID(n.String())
	return nil
}

// Value returns the id as an int64 when it is an integer, so that numeric
// ids sort numerically, and as a string otherwise.
func (id ID) Value() any {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return n
	}
	return string(id)
}

func (id ID) String() string { return string(id) }

// Employee is one record of the data file.
type Employee struct {
	ID                ID       `json:"id"`
	FirstName         string   `json:"firstName"`
	LastName          string   `json:"lastName"`
	Email             string   `json:"email"`
	Department        string   `json:"department"`
	Position          string   `json:"position"`
	Location          string   `json:"location"`
	Manager           string   `json:"manager"`
	Salary            float64  `json:"salary"`
	HireDate          string   `json:"hireDate"`
	Age               int      `json:"age"`
	PerformanceRating float64  `json:"performanceRating"`
	ProjectsCompleted int      `json:"projectsCompleted"`
	IsActive          bool     `json:"isActive"`
	Skills            []string `json:"skills"`
}
