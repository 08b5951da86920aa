package render

import (
	"strconv"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// SegmentKind classifies a diff segment.
type SegmentKind int

const (
	SegmentEqual SegmentKind = iota
	SegmentDeleted
	SegmentInserted
)

// Segment is one value in a diff.
type Segment struct {
	Kind  SegmentKind
	Value int64
}

// Diff compares two snapshots value by value. Each value is diffed as an
// atomic token, so 10 -> 1 is a delete and an insert rather than a partial
// string edit.
func Diff(before, after []int64) []Segment {
	dmp := diffmatchpatch.New()

	// One value per line lets the line-mode helpers treat values as tokens.
	chars1, chars2, lines := dmp.DiffLinesToChars(lineText(before), lineText(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	var segs []Segment
	for _, d := range diffs {
		kind := SegmentEqual
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			kind = SegmentDeleted
		case diffmatchpatch.DiffInsert:
			kind = SegmentInserted
		}
		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if line == "" {
				continue
			}
			v, err := strconv.ParseInt(line, 10, 64)
			if err != nil {
				continue
			}
			segs = append(segs, Segment{Kind: kind, Value: v})
		}
	}
	return segs
}

// Changed reports whether any segment is not equal.
func Changed(segs []Segment) bool {
	for _, s := range segs {
		if s.Kind != SegmentEqual {
			return true
		}
	}
	return false
}

// FormatDiff renders segments as "5 -7 10 +12".
func FormatDiff(segs []Segment) string {
	if len(segs) == 0 {
		return Empty
	}
	parts := make([]string, len(segs))
	for i, s := range segs {
		v := strconv.FormatInt(s.Value, 10)
		switch s.Kind {
		case SegmentDeleted:
			parts[i] = "-" + v
		case SegmentInserted:
			parts[i] = "+" + v
		default:
			parts[i] = v
		}
	}
	return strings.Join(parts, " ")
}

func lineText(values []int64) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(strconv.FormatInt(v, 10))
		b.WriteByte('\n')
	}
	return b.String()
}
