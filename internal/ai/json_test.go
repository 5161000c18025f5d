package ai

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		reply   string
		want    string
		wantErr bool
	}{
		{"bare object", `{"a":1}`, `{"a":1}`, false},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`, false},
		{"fenced no lang", "```\n{\"a\":1}\n```", `{"a":1}`, false},
		{"leading prose", `Here is the result: {"a":1}`, `{"a":1}`, false},
		{"trailing prose", `{"a":1} Hope that helps!`, `{"a":1}`, false},
		{"nested braces", `{"a":{"b":2}}`, `{"a":{"b":2}}`, false},
		{"no json", "I cannot help with that.", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSON(tt.reply)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBadResponse) {
				t.Errorf("error should wrap ErrBadResponse, got %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseInto(t *testing.T) {
	var out struct {
		Score int `json:"score"`
	}
	if err := ParseInto("```json\n{\"score\": 88}\n```", &out); err != nil {
		t.Fatal(err)
	}
	if out.Score != 88 {
		t.Errorf("score: got %d", out.Score)
	}

	if err := ParseInto(`{"score": "not a number"}`, &out); !errors.Is(err, ErrBadResponse) {
		t.Errorf("type mismatch should wrap ErrBadResponse, got %v", err)
	}
}
