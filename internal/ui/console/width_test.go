package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiateWidths(t *testing.T) {
	tests := []struct {
		name    string
		natural []int
		total   int
		want    []int
	}{
		{"fits", []int{10, 20, 30}, 60, []int{10, 20, 30}},
		{"unlimited", []int{10, 20, 30}, 0, []int{10, 20, 30}},
		{"widest shrinks", []int{10, 20, 60}, 60, []int{10, 20, 30}},
		{"two wide columns share", []int{5, 50, 50}, 45, []int{5, 20, 20}},
		{"remainder goes to the first squeezed", []int{50, 50}, 21, []int{11, 10}},
		{"minimum width", []int{40, 40}, 2, []int{4, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, negotiateWidths(tt.natural, tt.total))
		})
	}
}

func TestNaturalWidths(t *testing.T) {
	tb := Table{
		Headers: []string{"\x1b[1;35mMatched text\x1b[22;0m", "Description"},
		Rows:    [][]string{{"abc", "URL:\n https://example.com/abc"}},
	}
	assert.Equal(t, []int{12, 24}, naturalWidths(tb))
}

func TestTableOverhead(t *testing.T) {
	assert.Equal(t, 10, tableOverhead(3))
	assert.Equal(t, 16, tableOverhead(5))
}
