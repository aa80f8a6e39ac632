package category_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/andremtx/grana/internal/category"
)

func TestParseRef(t *testing.T) {
	id := uuid.New()

	type testCase struct {
		name string
		raw  string
		want category.Ref
	}

	tests := []testCase{
		{
			name: "Empty",
			raw:  "",
			want: category.Ref{Kind: category.RefEmpty},
		},
		{
			name: "Whitespace",
			raw:  "   ",
			want: category.Ref{Kind: category.RefEmpty},
		},
		{
			name: "LiteralUndefined",
			raw:  "undefined",
			want: category.Ref{Kind: category.RefEmpty},
		},
		{
			name: "LiteralNull",
			raw:  "null",
			want: category.Ref{Kind: category.RefEmpty},
		},
		{
			name: "ID",
			raw:  id.String(),
			want: category.Ref{Kind: category.RefByID, ID: id},
		},
		{
			name: "Name",
			raw:  "Groceries",
			want: category.Ref{Kind: category.RefByName, Name: "Groceries"},
		},
		{
			name: "NameTrimmed",
			raw:  "  Groceries  ",
			want: category.Ref{Kind: category.RefByName, Name: "Groceries"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, category.ParseRef(tt.raw))
		})
	}
}
