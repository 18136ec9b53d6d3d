package pipeline

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "simple words",
			text: "Getting Started",
			want: "getting-started",
		},
		{
			name: "uppercase lowered",
			text: "API Reference",
			want: "api-reference",
		},
		{
			name: "punctuation collapses to single hyphen",
			text: "What's new?!",
			want: "what-s-new",
		},
		{
			name: "leading and trailing separators trimmed",
			text: "  Install  ",
			want: "install",
		},
		{
			name: "html tags stripped",
			text: `Using <code>parseMarkdown</code> API`,
			want: "using-parsemarkdown-api",
		},
		{
			name: "digits preserved",
			text: "Step 2 of 3",
			want: "step-2-of-3",
		},
		{
			name: "non-ascii becomes hyphen run",
			text: "Café & Crème",
			want: "caf-cr-me",
		},
		{
			name: "only punctuation yields empty",
			text: "!!!",
			want: "",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "consecutive separators collapse",
			text: "one -- two__three",
			want: "one-two-three",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Slugify(tt.text); got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSlugify_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Getting Started",
		"What's new?!",
		"already-a-slug",
		"Step 2 of 3",
		"",
	}

	for _, text := range inputs {
		once := Slugify(text)
		twice := Slugify(once)
		if once != twice {
			t.Errorf("Slugify not idempotent for %q: first %q, second %q", text, once, twice)
		}
	}
}
