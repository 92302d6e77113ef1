package employee

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestFullName(t *testing.T) {
	cases := []struct {
		name string
		e    Employee
		want string
	}{
		{name: "both parts", e: Employee{FirstName: "Ada", LastName: "Lovelace"}, want: "Ada Lovelace"},
		{name: "missing first name", e: Employee{LastName: "Nobody"}, want: " Nobody"},
		{name: "missing last name", e: Employee{FirstName: "Cher"}, want: "Cher "},
		{name: "untrimmed", e: Employee{FirstName: "Ada ", LastName: "Lovelace"}, want: "Ada  Lovelace"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullName(tt.e))
		})
	}
}

func TestFormatSalaryIn(t *testing.T) {
	cases := []struct {
		name  string
		tag   language.Tag
		value float64
		want  string
	}{
		{name: "grouped", tag: language.AmericanEnglish, value: 125000, want: "$125,000"},
		{name: "zero", tag: language.AmericanEnglish, value: 0, want: "$0"},
		{name: "small", tag: language.AmericanEnglish, value: 999, want: "$999"},
		{name: "millions", tag: language.AmericanEnglish, value: 1234567, want: "$1,234,567"},
		{name: "fraction", tag: language.AmericanEnglish, value: 1234.5, want: "$1,234.5"},
		{name: "german grouping", tag: language.German, value: 125000, want: "$125.000"},
		{name: "negative", tag: language.AmericanEnglish, value: -1000, want: "$-1,000"},
		{name: "three fraction digits", tag: language.AmericanEnglish, value: 0.1234, want: "$0.123"},
		{name: "nan", tag: language.AmericanEnglish, value: math.NaN(), want: "$NaN"},
		{name: "positive infinity", tag: language.AmericanEnglish, value: math.Inf(1), want: "$∞"},
		{name: "negative infinity", tag: language.AmericanEnglish, value: math.Inf(-1), want: "$-∞"},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSalaryIn(tt.tag, tt.value))
		})
	}
}

func TestFormatSalaryDefaultLocale(t *testing.T) {
	SetLocale(language.AmericanEnglish)
	assert.Equal(t, "$125,000", FormatSalary(125000))
	assert.Equal(t, "$0", FormatSalary(0))
}

func TestParseLocale(t *testing.T) {
	cases := map[string]language.Tag{
		"en_US.UTF-8": language.AmericanEnglish,
		"de_DE@euro":  language.MustParse("de-DE"),
		"C":           language.AmericanEnglish,
		"fr-FR":       language.MustParse("fr-FR"),
	}
	for in, want := range cases {
		got, err := ParseLocale(in)
		require.NoError(t, err, in)
		assert.Equal(t, want.String(), got.String(), in)
	}
}

func TestHostLocale(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_NUMERIC", "de_DE.UTF-8")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "de-DE", HostLocale().String())

	t.Setenv("LC_NUMERIC", "")
	t.Setenv("LANG", "")
	assert.Equal(t, "en-US", HostLocale().String())
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Active", ActiveLabel(true))
	assert.Equal(t, "Inactive", ActiveLabel(false))
	assert.Equal(t, "[Go] [SQL] [C]", SkillTags([]string{"Go", "SQL", "C"}))
	assert.Equal(t, "", SkillTags(nil))
	assert.Equal(t, "mailto:ada@example.com", MailtoLink("ada@example.com"))
	assert.Equal(t, "", MailtoLink(""))
}

func TestLoadMixedIDs(t *testing.T) {
	ds, err := Load("testdata/mixed_ids.json")
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	assert.Equal(t, int64(7), ds.Employees[0].ID.Value())
	assert.Equal(t, "E-2", ds.Employees[1].ID.Value())
	assert.Equal(t, ID(""), ds.Employees[2].ID)
	assert.Equal(t, []string{"Math"}, ds.Employees[0].Skills)
	assert.Nil(t, ds.Employees[1].Skills)
	assert.Equal(t, " Nobody", FullName(ds.Employees[2]))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"staff": []}`))
	assert.ErrorContains(t, err, `no "employees" key`)

	_, err = Decode(strings.NewReader(`{"employees": [`))
	assert.ErrorContains(t, err, "decode employees document")

	_, err = Load("testdata/does_not_exist.json")
	assert.ErrorContains(t, err, "open employees file")
}

func TestLoadSampleData(t *testing.T) {
	ds, err := Load("../data/employees.json")
	require.NoError(t, err)
	assert.Equal(t, 25, ds.Len())
}
