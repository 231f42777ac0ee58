package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"articlekit/internal/models"
)

// Report defaults.
const (
	DefaultIntroLength = 80
	DefaultTopWords    = 5
	DefaultTitleWidth  = 40
)

// ReportOptions controls RenderReport.
type ReportOptions struct {
	Heading     string
	IntroLength int
	TopWords    int
	// TitleWidth caps the display width of titles in the summary table.
	TitleWidth int
}

func (o ReportOptions) withDefaults() ReportOptions {
	if o.Heading == "" {
		o.Heading = "Articles"
	}

	if o.IntroLength <= 0 {
		o.IntroLength = DefaultIntroLength
	}

	if o.TopWords <= 0 {
		o.TopWords = DefaultTopWords
	}

	if o.TitleWidth <= 0 {
		o.TitleWidth = DefaultTitleWidth
	}

	return o
}

// RenderReport renders articles, in the order given, as a markdown document:
// a summary table followed by one section per article with its
// representation, short introduction and most common words.
func RenderReport(articles []*models.Article, opts ReportOptions) string {
	opts = opts.withDefaults()

	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", opts.Heading)
	sb.WriteString("| ID | Title | Author | Published | Length | Last edited |\n")
	sb.WriteString("| --- | --- | --- | --- | --- | --- |\n")

	for _, a := range articles {
		edited := "-"
		if t, ok := a.LastEdited(); ok {
			edited = models.FormatISO(t)
		}

		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %d | %s |\n",
			a.ID(),
			escapeCell(runewidth.Truncate(a.Title, opts.TitleWidth, "…")),
			escapeCell(a.Author),
			models.FormatISO(a.PublicationDate),
			a.Len(),
			edited,
		)
	}

	for _, a := range articles {
		fmt.Fprintf(&sb, "\n## %s\n\n", a.Title)
		fmt.Fprintf(&sb, "`%s`\n\n", a.String())

		if intro := a.ShortIntroduction(opts.IntroLength); intro != "" {
			for _, line := range strings.Split(intro, "\n") {
				fmt.Fprintf(&sb, "> %s\n", line)
			}

			sb.WriteString("\n")
		}

		words := a.MostCommonWords(opts.TopWords)
		if len(words) == 0 {
			sb.WriteString("_No content._\n")

			continue
		}

		sb.WriteString("| Word | Count |\n| --- | --- |\n")

		for _, w := range words {
			fmt.Fprintf(&sb, "| %s | %s |\n", escapeCell(w.Word), strconv.Itoa(w.Count))
		}
	}

	return FormatMarkdown(sb.String())
}

// escapeCell keeps a value on one line and inside its table cell.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")

	return strings.ReplaceAll(s, "|", `\|`)
}
