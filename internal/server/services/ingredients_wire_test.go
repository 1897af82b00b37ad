package services

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/recipeadmin/internal/common"
)

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []IngredientEntry
		wantErr bool
	}{
		{name: "empty", in: "", want: []IngredientEntry{}},
		{name: "only separators", in: " ; ;", want: []IngredientEntry{}},
		{
			name: "client format",
			in:   "3, 2.5, Cup;12, 1, piece;",
			want: []IngredientEntry{{3, 2.5, "cup"}, {12, 1, "piece"}},
		},
		{name: "missing unit", in: "3, 2", wantErr: true},
		{name: "extra part", in: "3, 2, cup, x", wantErr: true},
		{name: "bad id", in: "abc, 2, cup", wantErr: true},
		{name: "zero id", in: "0, 2, cup", wantErr: true},
		{name: "zero qty", in: "3, 0, cup", wantErr: true},
		{name: "unknown unit", in: "3, 1, bucket", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIngredients(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrorValidation)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseIngredients mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseKeepList(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "json array", in: `["a","b"]`, want: []string{"a", "b"}},
		{name: "empty json array", in: `[]`, want: []string{}},
		{name: "comma list", in: "a, b,,c", want: []string{"a", "b", "c"}},
		{name: "single", in: "a", want: []string{"a"}},
		{name: "broken json", in: `["a"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeepList(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrorValidation)
				return
			}
			assert.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseKeepList mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
