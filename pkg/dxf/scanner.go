package dxf

import (
	"math"
	"strconv"
	"strings"
)

// Tag is one (group code, value) record from a DXF tag stream
type Tag struct {
	Code  int
	Value string
}

// Float parses the tag value as a finite floating point number
func (t Tag) Float() (float64, bool) {
	v, err := strconv.ParseFloat(t.Value, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Int parses the tag value as an integer
func (t Tag) Int() (int, bool) {
	v, err := strconv.Atoi(t.Value)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ScanTags splits raw DXF text into an ordered sequence of tags.
// The stream is a repetition of line pairs: a group code line followed by
// a value line. Both lines are trimmed. A pair whose code line does not
// parse as an integer is skipped; a trailing unpaired line is dropped.
func ScanTags(text string) []Tag {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	tags := make([]Tag, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		codeLine := strings.TrimSpace(lines[i])
		if codeLine == "" {
			continue
		}
		code, err := strconv.Atoi(codeLine)
		if err != nil {
			continue
		}
		tags = append(tags, Tag{Code: code, Value: strings.TrimSpace(lines[i+1])})
	}
	return tags
}
