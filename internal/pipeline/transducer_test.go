package pipeline

// Notes:
// - classifyLine: we test every line kind and the priority between them.
// - Transducer: we test block transitions, flush-at-end, and Feed after Finish.
// - Full documents are covered by the YAML golden corpus in golden_test.go.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"reflect"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestClassifyLine - Line rules and priority
// ---------------------------------------------------------------------------

func TestClassifyLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want classifiedLine
	}{
		{"blank", "", classifiedLine{kind: lineBlank}},
		{"whitespace only", " \t \n", classifiedLine{kind: lineBlank}},
		{"h1", "# Title", classifiedLine{kind: lineHeading, level: 1, text: "Title"}},
		{"h3 with trailing newline", "### Sub\n", classifiedLine{kind: lineHeading, level: 3, text: "Sub"}},
		{"h7 uncapped", "####### Deep", classifiedLine{kind: lineHeading, level: 7, text: "Deep"}},
		{"heading without space", "#tag", classifiedLine{kind: lineHeading, level: 1, text: "tag"}},
		{"heading keeps inner hashes", "## C# and F#", classifiedLine{kind: lineHeading, level: 2, text: "C# and F#"}},
		{"indented heading", "   ## Indented", classifiedLine{kind: lineHeading, level: 2, text: "Indented"}},
		{"bare hash", "#", classifiedLine{kind: lineHeading, level: 1, text: ""}},
		{"unordered item", "- item", classifiedLine{kind: lineUnorderedItem, text: "item"}},
		{"unordered item keeps inner dashes", "- a - b -", classifiedLine{kind: lineUnorderedItem, text: "a - b -"}},
		{"unordered item strips only the marker", "-  spaced", classifiedLine{kind: lineUnorderedItem, text: " spaced"}},
		{"ordered item", "* item", classifiedLine{kind: lineOrderedItem, text: "item"}},
		{"ordered item keeps inner stars", "* a * b", classifiedLine{kind: lineOrderedItem, text: "a * b"}},
		{"dash without space is text", "-item", classifiedLine{kind: lineText, text: "-item"}},
		{"bare dash is text", "- ", classifiedLine{kind: lineText, text: "-"}},
		{"star without space is text", "*emphasis*", classifiedLine{kind: lineText, text: "*emphasis*"}},
		{"numbered item is text", "1. one", classifiedLine{kind: lineText, text: "1. one"}},
		{"text trimmed", "  Hello  \r\n", classifiedLine{kind: lineText, text: "Hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyLine(tt.raw)
			if got != tt.want {
				t.Errorf("classifyLine(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTransduce - Block transitions
// ---------------------------------------------------------------------------

func TestTransduce(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "empty input",
			lines: nil,
			want:  nil,
		},
		{
			name:  "only blank lines",
			lines: []string{"", "  ", ""},
			want:  nil,
		},
		{
			name:  "heading",
			lines: []string{"## Hello **world**"},
			want:  []string{"<h2>Hello <b>world</b></h2>"},
		},
		{
			name:  "unordered list closed at end of input",
			lines: []string{"- a", "- b"},
			want:  []string{"<ul>", "<li>a</li>", "<li>b</li>", "</ul>"},
		},
		{
			name:  "ordered list closed at end of input",
			lines: []string{"* a", "* b"},
			want:  []string{"<ol>", "<li>a</li>", "<li>b</li>", "</ol>"},
		},
		{
			name:  "unordered then ordered without blank line",
			lines: []string{"- a", "* b"},
			want:  []string{"<ul>", "<li>a</li>", "</ul>", "<ol>", "<li>b</li>", "</ol>"},
		},
		{
			name:  "ordered then unordered without blank line",
			lines: []string{"* a", "- b"},
			want:  []string{"<ol>", "<li>a</li>", "</ol>", "<ul>", "<li>b</li>", "</ul>"},
		},
		{
			name:  "blank line splits a list into two",
			lines: []string{"- a", "", "- b"},
			want:  []string{"<ul>", "<li>a</li>", "</ul>", "<ul>", "<li>b</li>", "</ul>"},
		},
		{
			name:  "heading closes list",
			lines: []string{"- a", "# H"},
			want:  []string{"<ul>", "<li>a</li>", "</ul>", "<h1>H</h1>"},
		},
		{
			name:  "single paragraph line",
			lines: []string{"Hello"},
			want:  []string{"<p>", "Hello", "</p>"},
		},
		{
			name:  "multi-line paragraph gets line breaks between lines",
			lines: []string{"Hello", "I'm a text", "with 3 lines"},
			want:  []string{"<p>", "Hello", "<br/>", "I'm a text", "<br/>", "with 3 lines", "</p>"},
		},
		{
			name:  "blank line separates paragraphs",
			lines: []string{"one", "", "two"},
			want:  []string{"<p>", "one", "</p>", "<p>", "two", "</p>"},
		},
		{
			name:  "text closes list and starts paragraph",
			lines: []string{"- a", "after"},
			want:  []string{"<ul>", "<li>a</li>", "</ul>", "<p>", "after", "</p>"},
		},
		{
			name:  "list item flushes paragraph",
			lines: []string{"before", "- a"},
			want:  []string{"<p>", "before", "</p>", "<ul>", "<li>a</li>", "</ul>"},
		},
		{
			name:  "heading flushes paragraph",
			lines: []string{"before", "## H"},
			want:  []string{"<p>", "before", "</p>", "<h2>H</h2>"},
		},
		{
			name:  "paragraph lines formatted individually",
			lines: []string{"**a**", "((cake))"},
			want:  []string{"<p>", "<b>a</b>", "<br/>", "ake", "</p>"},
		},
		{
			name:  "list items formatted",
			lines: []string{"* [[foo]]", "* __x__"},
			want:  []string{"<ol>", "<li>acbd18db4cc2f85cedef654fccc4a4d8</li>", "<li><em>x</em></li>", "</ol>"},
		},
		{
			name:  "level 7 heading",
			lines: []string{"####### seven"},
			want:  []string{"<h7>seven</h7>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Transduce(tt.lines, NewInlineFormatter())
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Transduce() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestTransducer_State - Current block tracking
// ---------------------------------------------------------------------------

func TestTransducer_State(t *testing.T) {
	t.Parallel()

	steps := []struct {
		line      string
		wantBlock block
		wantBuf   int
	}{
		{"# H", blockNone, 0},
		{"- a", blockUnorderedList, 0},
		{"- b", blockUnorderedList, 0},
		{"* c", blockOrderedList, 0},
		{"text", blockParagraph, 1},
		{"more", blockParagraph, 2},
		{"", blockNone, 0},
		{"- d", blockUnorderedList, 0},
		{"tail", blockParagraph, 1},
	}

	tr := NewTransducer(NewInlineFormatter())
	for _, s := range steps {
		tr.Feed(s.line)
		if tr.current != s.wantBlock {
			t.Fatalf("after %q: block = %v, want %v", s.line, tr.current, s.wantBlock)
		}
		if len(tr.paragraph) != s.wantBuf {
			t.Fatalf("after %q: buffered = %d, want %d", s.line, len(tr.paragraph), s.wantBuf)
		}
	}

	tr.Finish()
	if tr.current != blockNone || len(tr.paragraph) != 0 {
		t.Errorf("after Finish: block = %v, buffered = %d, want none and 0", tr.current, len(tr.paragraph))
	}
}

// ---------------------------------------------------------------------------
// TestTransducer_Finish - Idempotent end of input
// ---------------------------------------------------------------------------

func TestTransducer_Finish(t *testing.T) {
	t.Parallel()

	tr := NewTransducer(nil)
	tr.Feed("- **a**")

	first := tr.Finish()
	want := []string{"<ul>", "<li>**a**</li>", "</ul>"}
	if !reflect.DeepEqual(first, want) {
		t.Fatalf("Finish() = %v, want %v", first, want)
	}

	tr.Feed("- ignored")
	second := tr.Finish()
	if !reflect.DeepEqual(second, want) {
		t.Errorf("second Finish() = %v, want %v", second, want)
	}
}

// ---------------------------------------------------------------------------
// TestBlock_String - Block names
// ---------------------------------------------------------------------------

func TestBlock_String(t *testing.T) {
	t.Parallel()

	tests := map[block]string{
		blockNone:          "none",
		blockUnorderedList: "unordered-list",
		blockOrderedList:   "ordered-list",
		blockParagraph:     "paragraph",
		block(99):          "none",
	}
	for b, want := range tests {
		if got := b.String(); got != want {
			t.Errorf("block(%d).String() = %q, want %q", int(b), got, want)
		}
	}
}
