package readability

import "testing"

func TestIsPassive(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     bool
	}{
		{"simple passive", "The experiment was conducted by the team.", true},
		{"plural passive", "The samples were analyzed in triplicate.", true},
		{"present passive", "The data are stored on a secure server.", true},
		{"perfect passive", "The results have been published previously.", true},
		{"modal passive", "The effect can be explained by diffusion.", true},
		{"progressive passive", "The cells are being cultured overnight.", true},
		{"adverb between", "The protocol was carefully followed.", true},
		{"active voice", "We analyzed the samples in triplicate.", false},
		{"copula with noun", "It was a nice day.", false},
		{"copula with adjective", "The results were significant.", false},
		{"plain statement", "The cat sat on the mat.", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPassive(tt.sentence); got != tt.want {
				t.Errorf("IsPassive(%q) = %v, want %v", tt.sentence, got, tt.want)
			}
		})
	}
}
