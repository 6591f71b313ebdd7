package content

import (
	"fmt"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestSplitKeywords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comma separated",
			input: "food,pay,culture",
			want:  []string{"food", "pay", "culture"},
		},
		{
			name:  "newline separated",
			input: "food\npay\nculture",
			want:  []string{"food", "pay", "culture"},
		},
		{
			name:  "mixed separators with whitespace",
			input: " food , pay \n culture ",
			want:  []string{"food", "pay", "culture"},
		},
		{
			name:  "drops empty entries",
			input: "food,,pay,\n,",
			want:  []string{"food", "pay"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitKeywords(tt.input))
		})
	}
}

func TestCapKeywords(t *testing.T) {
	var long []string
	for i := 0; i < MaxKeywords+5; i++ {
		long = append(long, fmt.Sprintf("kw%d", i))
	}

	capped := CapKeywords(long)
	assert.Equal(t, MaxKeywords, len(capped))
	assert.Equal(t, "kw0", capped[0])
	assert.Equal(t, fmt.Sprintf("kw%d", MaxKeywords-1), capped[MaxKeywords-1])

	short := []string{"food", "pay"}
	assert.Equal(t, short, CapKeywords(short))
}
