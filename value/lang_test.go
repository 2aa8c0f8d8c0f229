package value

import (
	"reflect"
	"testing"
)

func TestSplitLang(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []LangString
	}{
		{
			name:  "plain value",
			input: "A simple title",
			want:  []LangString{{Value: "A simple title"}},
		},
		{
			name:  "single tagged value",
			input: "en: A title",
			want:  []LangString{{Lang: "en", Value: "A title"}},
		},
		{
			name:  "three languages",
			input: "en: Title | zh: 標題 | fr: Titre",
			want: []LangString{
				{Lang: "en", Value: "Title"},
				{Lang: "zh", Value: "標題"},
				{Lang: "fr", Value: "Titre"},
			},
		},
		{
			name:  "untagged segment among tagged",
			input: "Default | fr: Titre",
			want: []LangString{
				{Value: "Default"},
				{Lang: "fr", Value: "Titre"},
			},
		},
		{
			name:  "regional subtag",
			input: "pt-BR: Título",
			want:  []LangString{{Lang: "pt-BR", Value: "Título"}},
		},
		{
			name:  "url is not a language tag",
			input: "https://example.org/page",
			want:  []LangString{{Value: "https://example.org/page"}},
		},
		{
			name:  "colon inside prose",
			input: "Fieldwork: a study",
			want:  []LangString{{Value: "Fieldwork: a study"}},
		},
		{
			name:  "empty segments dropped",
			input: "en: Title ||",
			want:  []LangString{{Lang: "en", Value: "Title"}},
		},
		{
			name:  "empty cell",
			input: "   ",
			want:  nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLang(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLang(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSplitMulti(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"key1 ; key2 ; key3", []string{"key1", "key2", "key3"}},
		{"single", []string{"single"}},
		{"a ;; b ;", []string{"a", "b"}},
		{"", nil},
	}
	for _, tt := range tests {
		got := SplitMulti(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitMulti(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSplitMultiSep(t *testing.T) {
	got := SplitMultiSep("a|b|c", "|")
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitMultiSep = %v, want %v", got, want)
	}
}
