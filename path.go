package uri

import (
	"braces.dev/errtrace"

	"github.com/kyuri-go/uri/internal/parts"
)

// Segments returns the URI's path segments, still percent-encoded.
func (u *URI) Segments() []Segment { return u.View().PathSegments() }

// InsertSegment inserts encodedSeg (already percent-encoded) before the
// segment currently at pos (0 <= pos <= SegmentCount). On failure — a
// malformed segment, or a result that violates the active path form's
// first-segment rule — u is left unchanged.
func (u *URI) InsertSegment(pos int, encodedSeg []byte) error {
	segs := u.Segments()
	if pos < 0 || pos > len(segs) {
		return errtrace.Wrap(ErrInvalidPath)
	}
	texts := segmentTexts(segs)
	out := make([][]byte, 0, len(texts)+1)
	out = append(out, texts[:pos]...)
	out = append(out, encodedSeg)
	out = append(out, texts[pos:]...)
	return u.setPath(out)
}

// ReplaceSegment replaces the segment at pos with encodedSeg.
func (u *URI) ReplaceSegment(pos int, encodedSeg []byte) error {
	segs := u.Segments()
	if pos < 0 || pos >= len(segs) {
		return errtrace.Wrap(ErrInvalidPath)
	}
	texts := segmentTexts(segs)
	texts[pos] = encodedSeg
	return u.setPath(texts)
}

// EraseSegments removes segments [first, last).
func (u *URI) EraseSegments(first, last int) error {
	segs := u.Segments()
	if first < 0 || last < first || last > len(segs) {
		return errtrace.Wrap(ErrInvalidPath)
	}
	texts := segmentTexts(segs)
	out := append(append([][]byte{}, texts[:first]...), texts[last:]...)
	return u.setPath(out)
}

func segmentTexts(segs []Segment) [][]byte {
	out := make([][]byte, len(segs))
	for i, s := range segs {
		out[i] = s.Encoded
	}
	return out
}

// setPath rejoins texts with "/" separators, preserving the active path
// form's leading slash, and commits the result.
func (u *URI) setPath(texts [][]byte) error {
	v := u.View()
	var b []byte
	if v.PathForm() == parts.PathAbempty || v.PathForm() == parts.PathAbsolute {
		b = append(b, '/')
	}
	for i, t := range texts {
		if i > 0 {
			b = append(b, '/')
		}
		b = append(b, t...)
	}
	return u.SetEncoded(parts.Path, b)
}
