package listing_test

import (
	"testing"

	"github.com/aussiebroadwan/propcloud/internal/propcloud/listing"
	"github.com/stretchr/testify/require"
)

type row struct {
	name   string
	city   *string
	status string
}

var rule = listing.Rule[row]{
	Status: func(r row) string { return r.status },
	Fields: func(r row) []string { return []string{r.name, listing.Deref(r.city)} },
}

func names(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.name)
	}
	return out
}

func TestApply(t *testing.T) {
	sydney := "Sydney"
	rows := []row{
		{name: "Harbour View", city: &sydney, status: "active"},
		{name: "Beach Shack", status: "inactive"},
		{name: "City Loft", city: &sydney, status: "active"},
		{name: "Mountain Cabin", status: "maintenance"},
	}

	tests := []struct {
		name   string
		tab    string
		search string
		want   []string
	}{
		{"empty tab and search", "", "", []string{"Harbour View", "Beach Shack", "City Loft", "Mountain Cabin"}},
		{"all tab", "all", "", []string{"Harbour View", "Beach Shack", "City Loft", "Mountain Cabin"}},
		{"tab only", "active", "", []string{"Harbour View", "City Loft"}},
		{"search only is case insensitive", "", "SYDNEY", []string{"Harbour View", "City Loft"}},
		{"search within tab", "active", "loft", []string{"City Loft"}},
		{"search outside tab finds nothing", "inactive", "loft", []string{}},
		{"blank search ignored", "maintenance", "   ", []string{"Mountain Cabin"}},
		{"nil optional field never matches", "", "shack", []string{"Beach Shack"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listing.Apply(rows, tt.tab, tt.search, rule)
			require.Equal(t, tt.want, names(got))
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	rows := []row{{name: "b", status: "x"}, {name: "a", status: "y"}}
	_ = listing.Apply(rows, "y", "", rule)
	require.Equal(t, []string{"b", "a"}, names(rows))
}
