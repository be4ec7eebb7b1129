package ferrox

import (
	"fmt"
	"strings"
)

// segmentKind distinguishes literal path segments from named parameters.
type segmentKind uint8

const (
	segStatic segmentKind = iota
	segParam
)

// segment is one compiled piece of a route template: a literal to compare
// against, or a parameter name to bind.
type segment struct {
	kind  segmentKind
	value string
}

// CompiledTemplate is the matcher form of a route template. The zero value
// matches only the root path.
type CompiledTemplate struct {
	raw      string
	segments []segment
}

// CompileTemplate parses a path template into its matcher form. The template
// is split on '/'; segments starting with ':' become named parameters and
// everything else is matched literally. Empty segments produced by a leading
// or trailing slash are discarded, so the root template "/" compiles to zero
// segments.
//
// Compilation fails with ErrInvalidTemplate when a parameter marker has an
// empty name or when two parameters in the same template share a name.
func CompileTemplate(template string) (CompiledTemplate, error) {
	segs := splitSegments(template)
	compiled := CompiledTemplate{raw: template}
	if len(segs) == 0 {
		return compiled, nil
	}

	compiled.segments = make([]segment, 0, len(segs))
	var seen map[string]struct{}
	for _, s := range segs {
		if !strings.HasPrefix(s, ":") {
			compiled.segments = append(compiled.segments, segment{kind: segStatic, value: s})
			continue
		}

		name := s[1:]
		if name == "" {
			return CompiledTemplate{}, fmt.Errorf("%w: empty param name in %q", ErrInvalidTemplate, template)
		}
		if seen == nil {
			seen = make(map[string]struct{}, len(segs))
		}
		if _, dup := seen[name]; dup {
			return CompiledTemplate{}, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, template)
		}
		seen[name] = struct{}{}
		compiled.segments = append(compiled.segments, segment{kind: segParam, value: name})
	}
	return compiled, nil
}

// String returns the original template text.
func (t CompiledTemplate) String() string {
	return t.raw
}

// Specificity is the number of literal segments. When several templates match
// the same path, the one with more literal segments is tried first.
func (t CompiledTemplate) Specificity() int {
	n := 0
	for _, s := range t.segments {
		if s.kind == segStatic {
			n++
		}
	}
	return n
}

// Match reports whether path matches the template and returns the parameter
// bindings. The path must have the same segment count as the template;
// literals compare exactly and case-sensitively, parameters bind any
// non-empty segment verbatim. There is no wildcard or partial-segment
// matching.
func (t CompiledTemplate) Match(path string) (map[string]string, bool) {
	segs := splitSegments(path)
	if len(segs) != len(t.segments) {
		return nil, false
	}

	var params map[string]string
	for i, want := range t.segments {
		got := segs[i]
		switch want.kind {
		case segStatic:
			if got != want.value {
				return nil, false
			}
		case segParam:
			if got == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, len(t.segments))
			}
			params[want.value] = got
		}
	}
	return params, true
}

// splitSegments splits a path on '/' and drops the empty leading and trailing
// segments produced by a leading or trailing slash. Interior empty segments
// are kept and never match.
func splitSegments(path string) []string {
	parts := strings.Split(path, "/")
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}
