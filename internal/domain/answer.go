package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AnswerValue is the value side of an answer: an option index for
// multiple-choice and true/false questions, or literal text for coding
// questions. On the wire it is a bare JSON number or string, matching the
// submission payload format.
type AnswerValue struct {
	index   int
	text    string
	isIndex bool
	set     bool
}

// IndexAnswer builds an option-index answer.
func IndexAnswer(i int) AnswerValue {
	return AnswerValue{index: i, isIndex: true, set: true}
}

// TextAnswer builds a free-form text answer.
func TextAnswer(s string) AnswerValue {
	return AnswerValue{text: s, set: true}
}

// IsZero reports whether no answer was provided for this position.
func (v AnswerValue) IsZero() bool { return !v.set }

// IsIndex reports whether the value is an option index.
func (v AnswerValue) IsIndex() bool { return v.isIndex }

// Index returns the option index; only meaningful when IsIndex is true.
func (v AnswerValue) Index() int { return v.index }

// Text returns the free-form text; only meaningful when IsIndex is false.
func (v AnswerValue) Text() string { return v.text }

// Equal is strict equality: kinds must match, then values must match exactly.
// A missing answer equals nothing.
func (v AnswerValue) Equal(o AnswerValue) bool {
	if !v.set || !o.set || v.isIndex != o.isIndex {
		return false
	}
	if v.isIndex {
		return v.index == o.index
	}
	return v.text == o.text
}

func (v AnswerValue) String() string {
	if !v.set {
		return "<none>"
	}
	if v.isIndex {
		return strconv.Itoa(v.index)
	}
	return v.text
}

// MarshalJSON emits a number for index answers, a string for text answers
// and null when the position was never answered.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	if v.isIndex {
		return json.Marshal(v.index)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON accepts a JSON number (option index), string (text answer)
// or null (unanswered).
func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = AnswerValue{}
		return nil
	}
	var idx int
	if err := json.Unmarshal(data, &idx); err == nil {
		*v = IndexAnswer(idx)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = TextAnswer(text)
		return nil
	}
	return fmt.Errorf("answer must be a number or a string, got %s", data)
}
