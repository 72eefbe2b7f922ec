// Package parser extracts the step signal from free-form ReAct model output.
//
// A step response is expected to look like one of:
//
//	Thought 3: Gerald Ford was born in 1913. Answer[Ronald Reagan]
//
//	Thought 1: I need to look up Ronald Reagan.
//	Action 1: Ronald Reagan<STOP>
//
// The first is an answer (line 1 carries "Answer[...]"), the second an action
// whose query is "Ronald Reagan": the text before the stop marker, without
// the "Action N:" label. An answer on line 1 always wins; an answer written
// on line 2 also ends the step. A response with no answer on line 1 and no
// second line is malformed.
//
// Parsing is pure: the same input always gives the same [Result], and no
// input makes it fail.
package parser
