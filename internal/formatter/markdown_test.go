package formatter

import (
	"strings"
	"testing"
)

func TestFormatMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name: "Basic table formatting",
			input: `
| Word | Count |
| --- | --- |
| three | 3 |
`,
			expected: `
| Word  | Count |
| ----- | ----- |
| three | 3     |
`,
		},
		{
			name: "Fix excessive dashes",
			input: `
| ID | Title |
| ---------------------- | ---------------------------------- |
| 1 | Hi |
`,
			expected: `
| ID  | Title |
| --- | ----- |
| 1   | Hi    |
`,
		},
		{
			name: "Mixed content",
			input: `
# Articles

| ID | Author |
| -- | -- |
| 12 | Bob |

Text after table.
`,
			expected: `
# Articles

| ID  | Author |
| --- | ------ |
| 12  | Bob    |

Text after table.
`,
		},
		{
			name: "Missing cells are padded",
			input: `
| A | B | C |
| --- | --- | --- |
| only |
`,
			expected: `
| A    | B   | C   |
| ---- | --- | --- |
| only |     |     |
`,
		},
		{
			name: "Escaped pipe stays in cell",
			input: `
| Title | Author |
| --- | --- |
| a \| b | Ann |
`,
			expected: `
| Title  | Author |
| ------ | ------ |
| a \| b | Ann    |
`,
		},
		{
			// 消防處：增至83死。 is 18 columns wide: eight wide runes and two digits.
			name: "Mixed CJK and ASCII",
			input: `
| Published | Title |
| --- | --- |
| 2025-01-01 | 消防處：增至83死。 |
| 2025-01-02 | Short text |
`,
			expected: `
| Published  | Title              |
| ---------- | ------------------ |
| 2025-01-01 | 消防處：增至83死。 |
| 2025-01-02 | Short text         |
`,
		},
		{
			name:     "Single row is not a table",
			input:    "| lonely |",
			expected: "| lonely |",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMarkdown(strings.TrimSpace(tt.input))

			if strings.TrimSpace(got) != strings.TrimSpace(tt.expected) {
				t.Errorf("FormatMarkdown() = \n%v\nwant \n%v", got, tt.expected)
			}
		})
	}
}

func TestFormatMarkdown_NoTables(t *testing.T) {
	input := "# Title\n\nplain | text\n"

	if got := FormatMarkdown(input); got != input {
		t.Errorf("FormatMarkdown() changed text without tables: %q", got)
	}
}
