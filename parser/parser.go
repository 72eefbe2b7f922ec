package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/rickchristie/textreact"
)

// DefaultStopMarker ends the query on an action line.
const DefaultStopMarker = "<STOP>"

const (
	// answerOpen starts a resolved answer.
	answerOpen = "Answer["

	// actionLabel starts the action line the model writes, e.g. "Action 1:".
	actionLabel = "Action"
)

// Result is the tagged outcome of parsing one model response.
type Result struct {
	// Kind tells which of Answer, Query is meaningful.
	Kind textreact.StepKind

	// Answer is set when Kind is StepKindAnswer.
	Answer string

	// Query is set when Kind is StepKindAction.
	Query string

	// Thought is the raw first line of the response (empty for an empty response).
	Thought string

	// Action is the raw second line of the response, set whenever line 2 was
	// inspected (actions and answers written on line 2).
	Action string
}

// Parser turns raw completions into [Result] values.
// It is stateless apart from the stop marker and safe for concurrent use.
type Parser struct {
	stopMarker string
}

// New creates a Parser that ends action queries at stopMarker.
// An empty marker keeps the whole action line as the query.
func New(stopMarker string) *Parser {
	return &Parser{stopMarker: stopMarker}
}

// Default creates a Parser using [DefaultStopMarker].
func Default() *Parser {
	return New(DefaultStopMarker)
}

// StopMarker returns the configured stop marker.
func (p *Parser) StopMarker() string {
	return p.stopMarker
}

// Parse inspects one step of model output.
//
// Order of checks:
//  1. Line 1 containing "Answer[" is a resolved answer: everything after the
//     first "Answer[" up to the next "]" (or end of line). Later lines are
//     ignored.
//  2. Fewer than two lines is malformed.
//  3. Line 2 containing "Answer[" is a resolved answer too: the model wrote
//     its answer where the action was expected.
//  4. Otherwise line 2 is the action line and the query is extracted from it
//     with [ExtractQuery].
//
// Parse never fails.
func (p *Parser) Parse(response string) Result {
	lines := SplitLines(response)
	if len(lines) == 0 {
		return Result{Kind: textreact.StepKindMalformed}
	}

	if answer, ok := FindAnswer(lines[0]); ok {
		return Result{Kind: textreact.StepKindAnswer, Answer: answer, Thought: lines[0]}
	}

	if len(lines) < 2 {
		return Result{Kind: textreact.StepKindMalformed, Thought: lines[0]}
	}

	if answer, ok := FindAnswer(lines[1]); ok {
		return Result{
			Kind:    textreact.StepKindAnswer,
			Answer:  answer,
			Thought: lines[0],
			Action:  lines[1],
		}
	}

	return Result{
		Kind:    textreact.StepKindAction,
		Query:   ExtractQuery(lines[1], p.stopMarker),
		Thought: lines[0],
		Action:  lines[1],
	}
}

// FindAnswer returns the text between the first "Answer[" in line and the next
// "]". Without a closing bracket the rest of the line is returned.
func FindAnswer(line string) (string, bool) {
	_, after, found := strings.Cut(line, answerOpen)
	if !found {
		return "", false
	}
	answer, _, _ := strings.Cut(after, "]")
	return answer, true
}

// ExtractQuery returns the query on an action line: the part of the first line
// of text that precedes stopMarker, trimmed of surrounding whitespace, without
// a leading "Action N:" label.
//
// Only the first line of text is considered. A stop marker on a later line is
// never honored, and nothing after the first line break ever reaches the query.
func ExtractQuery(text, stopMarker string) string {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return ""
	}
	query := lines[0]
	if stopMarker != "" {
		query, _, _ = strings.Cut(query, stopMarker)
	}
	return strings.TrimSpace(stripActionLabel(strings.TrimSpace(query)))
}

// stripActionLabel removes a leading "Action", optional step number and colon,
// as in "Action 3: Gerald Ford". Text without the full label is returned as is.
func stripActionLabel(s string) string {
	rest, ok := strings.CutPrefix(s, actionLabel)
	if !ok {
		return s
	}
	rest = strings.TrimLeft(rest, " \t")
	rest = strings.TrimLeft(rest, "0123456789")
	rest = strings.TrimLeft(rest, " \t")
	rest, ok = strings.CutPrefix(rest, ":")
	if !ok {
		return s
	}
	return rest
}

// SplitLines splits s at universal line boundaries: \n, \r\n, \r, \v, \f,
// \x1c, \x1d, \x1e, U+0085, U+2028 and U+2029. Line terminators are dropped.
// A trailing terminator does not produce an empty last line, and an empty
// string has no lines.
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBoundary(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBoundary(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
