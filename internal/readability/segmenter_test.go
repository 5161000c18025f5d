package readability

import (
	"reflect"
	"testing"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"two plain sentences",
			"The cat sat. The dog barked.",
			[]string{"The cat sat.", "The dog barked."},
		},
		{
			"abbreviation protected",
			"Dr. Smith arrived. The results were significant.",
			[]string{"Dr. Smith arrived.", "The results were significant."},
		},
		{
			"et al protected",
			"Jones et al. reported similar findings. We agree.",
			[]string{"Jones et al. reported similar findings.", "We agree."},
		},
		{
			"eg and ie protected",
			"Some metals (e.g. iron) corrode. Others, i.e. noble metals, do not.",
			[]string{"Some metals (e.g. iron) corrode.", "Others, i.e. noble metals, do not."},
		},
		{
			"decimal protected",
			"The mean was 3.14 units. Variance was low.",
			[]string{"The mean was 3.14 units.", "Variance was low."},
		},
		{
			"domain protected",
			"Data are hosted on example.com for review. Download them there.",
			[]string{"Data are hosted on example.com for review.", "Download them there."},
		},
		{
			"question and exclamation",
			"Why did it fail? Nobody knew! Testing continued.",
			[]string{"Why did it fail?", "Nobody knew!", "Testing continued."},
		},
		{
			"closing quote after period",
			`He said "stop." Then he left.`,
			[]string{`He said "stop."`, "Then he left."},
		},
		{
			"lowercase continuation not split",
			"The value p. 42 references is key here.",
			[]string{"The value p. 42 references is key here."},
		},
		{
			"digit starts next sentence",
			"Samples were frozen. 12 of them thawed early.",
			[]string{"Samples were frozen.", "12 of them thawed early."},
		},
		{
			"no terminal punctuation",
			"an unfinished thought",
			[]string{"an unfinished thought"},
		},
		{
			"empty",
			"",
			nil,
		},
		{
			"figure reference",
			"Results appear in Fig. 3 below. They are consistent.",
			[]string{"Results appear in Fig. 3 below.", "They are consistent."},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitSentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSentences(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"one two three", 3},
		{"123 456", 0},
		{"a1 2b --- 42", 2},
		{"hyphen-ated word's", 2},
		{"naïve café", 2},
	}
	for _, tt := range tests {
		if got := len(Words(tt.in)); got != tt.want {
			t.Errorf("Words(%q): got %d words, want %d", tt.in, got, tt.want)
		}
	}
}
