package mapper

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPath is wrapped by every path parsing error.
var ErrMalformedPath = errors.New("malformed path")

// Separator delimits path segments.
const Separator = "/"

// Segment is one step of a Path: a key, optionally followed by an index into
// the list stored under that key.
type Segment struct {
	Key      string
	Index    int
	HasIndex bool
}

// String renders the segment the way it is written in a path.
func (s Segment) String() string {
	if s.HasIndex {
		return s.Key + "[" + strconv.Itoa(s.Index) + "]"
	}

	return s.Key
}

// Path addresses a location inside a document. Paths are immutable.
type Path struct {
	raw      string
	segments []Segment
	walk     []step
	filter   Filter
}

// ParsePath parses a path such as "/a/b[2]/c".
// Supports: "name", "/name", "/a/b", "/names[0]", "/a/names[1]/first".
func ParsePath(raw string) (*Path, error) {
	segments, err := parseSegments(raw)
	if err != nil {
		return nil, err
	}

	return &Path{raw: raw, segments: segments, walk: stepsOf(segments)}, nil
}

// MustParsePath is like ParsePath but panics on error.
func MustParsePath(raw string) *Path {
	p, err := ParsePath(raw)
	if err != nil {
		panic(err)
	}

	return p
}

func parseSegments(raw string) ([]Segment, error) {
	trimmed := strings.TrimPrefix(raw, Separator)
	if trimmed == "" {
		return nil, fmt.Errorf("%w %q: empty path", ErrMalformedPath, raw)
	}

	tokens := strings.Split(trimmed, Separator)
	segments := make([]Segment, 0, len(tokens))

	for _, token := range tokens {
		if token == "" {
			return nil, fmt.Errorf("%w %q: empty segment", ErrMalformedPath, raw)
		}

		seg, err := parseSegment(token)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrMalformedPath, raw, err)
		}

		segments = append(segments, seg)
	}

	return segments, nil
}

// parseSegment splits a trailing "[digits]" off a token. Brackets holding
// anything but digits are kept as literal key text as long as they balance.
func parseSegment(token string) (Segment, error) {
	if !bracketsBalanced(token) {
		return Segment{}, fmt.Errorf("unbalanced brackets in segment %q", token)
	}

	open := strings.LastIndexByte(token, '[')
	if open < 0 || !strings.HasSuffix(token, "]") {
		return Segment{Key: token}, nil
	}

	digits := token[open+1 : len(token)-1]
	if !isDigits(digits) {
		return Segment{Key: token}, nil
	}

	key := token[:open]
	if key == "" {
		return Segment{}, fmt.Errorf("index without key in segment %q", token)
	}

	if strings.ContainsAny(key, "[]") {
		return Segment{}, fmt.Errorf("nested index in segment %q", token)
	}

	index, err := strconv.Atoi(digits)
	if err != nil {
		return Segment{}, fmt.Errorf("index out of range in segment %q", token)
	}

	return Segment{Key: key, Index: index, HasIndex: true}, nil
}

func bracketsBalanced(s string) bool {
	depth := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
			if depth > 1 {
				return false
			}
		case ']':
			depth--
			if depth < 0 {
				return false
			}
		}
	}

	return depth == 0
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// String returns the path as it was declared.
func (p *Path) String() string {
	return p.raw
}

// Segments returns a copy of the parsed segments.
func (p *Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)

	return out
}

// Size returns the number of segments.
func (p *Path) Size() int {
	return len(p.segments)
}

// First returns the first segment.
func (p *Path) First() Segment {
	return p.segments[0]
}

// Last returns the last segment.
func (p *Path) Last() Segment {
	return p.segments[len(p.segments)-1]
}

// Filter returns the filter attached to the path.
func (p *Path) Filter() Filter {
	return p.filter
}

// WithFilter returns a copy of the path carrying f.
func (p *Path) WithFilter(f Filter) *Path {
	cp := *p
	cp.filter = f

	return &cp
}

// ApplyFilter runs the attached filter on value.
func (p *Path) ApplyFilter(value, ctx any) (any, error) {
	return p.filter.Apply(value, ctx)
}

// stepsOf flattens segments into the sequence of map and list accesses
// needed to reach their location.
func stepsOf(segments []Segment) []step {
	out := make([]step, 0, len(segments)+1)

	for _, seg := range segments {
		out = append(out, step{key: seg.Key})
		if seg.HasIndex {
			out = append(out, step{index: seg.Index, isIndex: true})
		}
	}

	return out
}
