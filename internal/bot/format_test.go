package bot

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "zero renders a bare remainder",
			input: "0",
			want:  "0 달러",
		},
		{
			name:  "jo and eok bands",
			input: "1250000000000",
			want:  "1조 2,500억 달러",
		},
		{
			name:  "eok band only",
			input: "900000000000",
			want:  "9,000억 달러",
		},
		{
			name:  "all four bands",
			input: "1000123456789",
			want:  "1조 1억 2,345만 6,789 달러",
		},
		{
			name:  "zero bands omitted",
			input: "1000000000000",
			want:  "1조 달러",
		},
		{
			name:  "man band boundary",
			input: "10000",
			want:  "1만 달러",
		},
		{
			name:  "below man band",
			input: "9999",
			want:  "9,999 달러",
		},
		{
			name:  "unparseable passes through",
			input: "N/A",
			want:  "N/A",
		},
		{
			name:  "empty passes through",
			input: "",
			want:  "",
		},
		{
			name:  "surrounding whitespace tolerated",
			input: " 12000 ",
			want:  "1만 2,000 달러",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMarketCap(tt.input)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatMarketCapBandBoundaries(t *testing.T) {
	assert.Equal(t, "1억 달러", FormatMarketCap("100000000"))
	assert.Equal(t, "9,999만 9,999 달러", FormatMarketCap("99999999"))
	assert.Equal(t, "1조 달러", FormatMarketCap("1000000000000"))
	assert.Equal(t, "9,999억 9,999만 9,999 달러", FormatMarketCap("999999999999"))
}
