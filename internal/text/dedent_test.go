package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDedent(t *testing.T) {
	tests := []struct {
		name string
		give string
		want string
	}{
		{name: "Empty"},
		{
			name: "SingleLine",
			give: "\tfoo\n",
			want: "foo",
		},
		{
			name: "NestedIndent",
			give: "\n\tfoo\n\t  bar\n\tbaz\n",
			want: "foo\n  bar\nbaz",
		},
		{
			name: "BlankLineInMiddle",
			give: "\tfoo\n\n\tbar\n",
			want: "foo\n\nbar",
		},
		{
			name: "MissingPrefixReproduced",
			give: "\tfoo\nbar\n",
			want: "foo\nbar",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dedent(tt.give))
		})
	}
}
