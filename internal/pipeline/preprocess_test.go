package pipeline

import (
	"context"
	"testing"
)

func TestCommonMarkPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	p := &CommonMarkPreprocessor{}

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "crlf normalized",
			input: "line one\r\nline two\r\n",
			want:  "line one\nline two\n",
		},
		{
			name:  "bare cr normalized",
			input: "line one\rline two",
			want:  "line one\nline two",
		},
		{
			name:  "blank lines compressed to two",
			input: "para one\n\n\n\n\npara two",
			want:  "para one\n\npara two",
		},
		{
			name:  "highlight syntax becomes placeholders",
			input: "some ==important== text",
			want:  "some " + MarkStartPlaceholder + "important" + MarkEndPlaceholder + " text",
		},
		{
			name:  "multiple highlights on one line",
			input: "==a== and ==b==",
			want:  MarkStartPlaceholder + "a" + MarkEndPlaceholder + " and " + MarkStartPlaceholder + "b" + MarkEndPlaceholder,
		},
		{
			name:  "plain content unchanged",
			input: "# Title\n\nA paragraph.\n",
			want:  "# Title\n\nA paragraph.\n",
		},
		{
			name:  "highlight inside fence preserved",
			input: "```\na ==b== c\n```\n",
			want:  "```\na ==b== c\n```\n",
		},
		{
			name:  "highlight inside tilde fence preserved",
			input: "~~~\n==x==\n~~~\n",
			want:  "~~~\n==x==\n~~~\n",
		},
		{
			name:  "blank lines inside fence preserved",
			input: "```python\na = 1\n\n\n\nb = 2\n```\n",
			want:  "```python\na = 1\n\n\n\nb = 2\n```\n",
		},
		{
			name:  "indented code preserved",
			input: "para\n\n    ==not a highlight==\n",
			want:  "para\n\n    ==not a highlight==\n",
		},
		{
			name:  "transforms resume after fence closes",
			input: "```\n==raw==\n```\n\n==marked==\n",
			want:  "```\n==raw==\n```\n\n" + MarkStartPlaceholder + "marked" + MarkEndPlaceholder + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := p.PreprocessMarkdown(context.Background(), tt.input)
			if got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCommonMarkPreprocessor_CancelledContext(t *testing.T) {
	t.Parallel()

	p := &CommonMarkPreprocessor{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := "a\r\nb ==c=="
	if got := p.PreprocessMarkdown(ctx, input); got != input {
		t.Errorf("cancelled context should return content unchanged, got %q", got)
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	input := "<p>some " + MarkStartPlaceholder + "important" + MarkEndPlaceholder + " text</p>"
	want := "<p>some <mark>important</mark> text</p>"
	if got := ConvertMarkPlaceholders(input); got != want {
		t.Errorf("ConvertMarkPlaceholders() = %q, want %q", got, want)
	}
}

func TestHighlightRoundTrip(t *testing.T) {
	t.Parallel()

	p := &CommonMarkPreprocessor{}
	got := ConvertMarkPlaceholders(p.PreprocessMarkdown(context.Background(), "==note=="))
	want := "<mark>note</mark>"
	if got != want {
		t.Errorf("round trip = %q, want %q", got, want)
	}
}
