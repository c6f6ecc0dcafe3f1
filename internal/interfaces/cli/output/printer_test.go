package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"display_name"`
}

type wrapper struct {
	item
	Extra string `json:"extra"`
}

func sampleView() View {
	items := []item{{ID: "1", Name: "Go"}, {ID: "2", Name: "Rust"}}
	return View{
		Value:  items,
		Head:   []string{"ID", "NAME"},
		Body:   [][]string{{"1", "Go"}, {"2", "Rust"}},
		Status: "2 of 2",
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatTable, false},
		{"TABLE", FormatTable, false},
		{"json", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatTable).Print(sampleView()))

	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Rust")
	assert.Contains(t, out, "2 of 2")
}

func TestPrinter_JSONUsesValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatJSON).Print(sampleView()))

	var got []item
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Go", got[0].Name)
}

func TestPrinter_YAMLFollowsJSONTags(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, FormatYAML).Print(wrapper{item: item{ID: "7", Name: "C"}, Extra: "x"}))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "C", got["display_name"])
	assert.Equal(t, "x", got["extra"])
}

func TestPrinter_MessageOnlyForTables(t *testing.T) {
	var table, js bytes.Buffer
	NewPrinter(&table, FormatTable).Message("deleted %s", "lang-1")
	NewPrinter(&js, FormatJSON).Message("deleted %s", "lang-1")

	assert.Equal(t, "deleted lang-1\n", table.String())
	assert.Empty(t, js.String())
}
