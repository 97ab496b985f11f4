package pipeline

import (
	"strconv"
	"strings"
)

// List item markers. "* " opens an ordered list, not an unordered one.
const (
	UnorderedItemMarker = "- "
	OrderedItemMarker   = "* "
	headingMarker       = '#'
	lineBreakTag        = "<br/>"
)

// block is the construct currently open in the output.
// Only one block can be open at a time.
type block int

const (
	blockNone block = iota
	blockUnorderedList
	blockOrderedList
	blockParagraph
)

// String returns the block name for logs and test failures.
func (b block) String() string {
	switch b {
	case blockUnorderedList:
		return "unordered-list"
	case blockOrderedList:
		return "ordered-list"
	case blockParagraph:
		return "paragraph"
	default:
		return "none"
	}
}

// lineKind classifies a trimmed input line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineHeading
	lineUnorderedItem
	lineOrderedItem
	lineText
)

// classifiedLine is an input line reduced to its kind and payload.
type classifiedLine struct {
	kind  lineKind
	level int    // heading level, headings only
	text  string // marker-stripped text, not yet formatted
}

// classifyLine applies the line rules in priority order:
// heading, unordered item, ordered item, blank, paragraph text.
func classifyLine(raw string) classifiedLine {
	line := strings.TrimSpace(raw)

	switch {
	case line == "":
		return classifiedLine{kind: lineBlank}
	case line[0] == headingMarker:
		level := 0
		for level < len(line) && line[level] == headingMarker {
			level++
		}
		return classifiedLine{
			kind:  lineHeading,
			level: level,
			text:  strings.TrimSpace(line[level:]),
		}
	case strings.HasPrefix(line, UnorderedItemMarker):
		return classifiedLine{kind: lineUnorderedItem, text: line[len(UnorderedItemMarker):]}
	case strings.HasPrefix(line, OrderedItemMarker):
		return classifiedLine{kind: lineOrderedItem, text: line[len(OrderedItemMarker):]}
	default:
		return classifiedLine{kind: lineText, text: line}
	}
}

// Transducer converts Markdown lines to HTML lines, one line at a time.
// A Transducer handles a single document: create a new one per document.
type Transducer struct {
	formatter Formatter
	current   block
	paragraph []string // buffered lines, non-empty only while current == blockParagraph
	out       []string
	finished  bool
}

// NewTransducer creates a Transducer. A nil formatter leaves text unformatted.
func NewTransducer(formatter Formatter) *Transducer {
	if formatter == nil {
		formatter = identityFormatter{}
	}
	return &Transducer{formatter: formatter}
}

// Feed processes one input line. Lines fed after Finish are ignored.
func (t *Transducer) Feed(raw string) {
	if t.finished {
		return
	}

	l := classifyLine(raw)
	switch l.kind {
	case lineHeading:
		t.closeBlock()
		tag := "h" + strconv.Itoa(l.level)
		t.emit("<" + tag + ">" + t.formatter.Format(l.text) + "</" + tag + ">")
	case lineUnorderedItem:
		t.openList(blockUnorderedList)
		t.emit("<li>" + t.formatter.Format(l.text) + "</li>")
	case lineOrderedItem:
		t.openList(blockOrderedList)
		t.emit("<li>" + t.formatter.Format(l.text) + "</li>")
	case lineBlank:
		t.closeBlock()
	case lineText:
		if t.current != blockParagraph {
			t.closeBlock()
			t.current = blockParagraph
		}
		t.paragraph = append(t.paragraph, l.text)
	}
}

// Finish flushes any pending paragraph, closes any open list and returns the
// output lines. Calling Finish again returns the same lines.
func (t *Transducer) Finish() []string {
	if !t.finished {
		t.closeBlock()
		t.finished = true
	}
	return t.out
}

// openList makes kind the current block, closing whatever else is open.
func (t *Transducer) openList(kind block) {
	if t.current == kind {
		return
	}
	t.closeBlock()
	t.current = kind
	if kind == blockUnorderedList {
		t.emit("<ul>")
	} else {
		t.emit("<ol>")
	}
}

// closeBlock terminates the current block, if any, exactly once.
func (t *Transducer) closeBlock() {
	switch t.current {
	case blockUnorderedList:
		t.emit("</ul>")
	case blockOrderedList:
		t.emit("</ol>")
	case blockParagraph:
		t.flushParagraph()
	}
	t.current = blockNone
}

// flushParagraph emits the buffered lines as one <p> block with a <br/>
// line between consecutive lines.
func (t *Transducer) flushParagraph() {
	if len(t.paragraph) == 0 {
		return
	}
	t.emit("<p>")
	for i, line := range t.paragraph {
		if i > 0 {
			t.emit(lineBreakTag)
		}
		t.emit(t.formatter.Format(line))
	}
	t.emit("</p>")
	t.paragraph = t.paragraph[:0]
}

func (t *Transducer) emit(line string) {
	t.out = append(t.out, line)
}

// Transduce runs a fresh Transducer over lines and returns the HTML lines.
func Transduce(lines []string, formatter Formatter) []string {
	t := NewTransducer(formatter)
	for _, line := range lines {
		t.Feed(line)
	}
	return t.Finish()
}

type identityFormatter struct{}

func (identityFormatter) Format(text string) string { return text }
