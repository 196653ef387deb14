// Package nyan models the target engine's named data objects just far
// enough to emit converted definitions: an object has a symbolic name, an
// optional parent, and ordered key/value members. The full type system
// lives in the engine; the converter only needs to produce well-formed
// object text.
package nyan

import (
	"fmt"
	"strconv"
	"strings"
)

// Member is a single key/value entry on an object.
type Member struct {
	Key   string
	Value any
}

// Object is a named data object definition.
type Object struct {
	name    string
	parent  string
	members []Member
	seen    map[string]struct{}
}

// NewObject creates an object with the given symbolic name. Parent may be
// empty for root objects.
func NewObject(name, parent string) (*Object, error) {
	if !ValidName(name) {
		return nil, fmt.Errorf("invalid object name %q", name)
	}
	if parent != "" && !ValidName(parent) {
		return nil, fmt.Errorf("invalid parent name %q", parent)
	}
	return &Object{
		name:   name,
		parent: parent,
		seen:   make(map[string]struct{}),
	}, nil
}

// Name returns the object's symbolic name.
func (o *Object) Name() string {
	return o.name
}

// Set appends a member. Member keys are unique per object; setting a key
// twice is a programmer error surfaced to the caller.
func (o *Object) Set(key string, value any) error {
	if !ValidName(key) {
		return fmt.Errorf("object %s: invalid member key %q", o.name, key)
	}
	if _, dup := o.seen[key]; dup {
		return fmt.Errorf("object %s: duplicate member %q", o.name, key)
	}
	o.seen[key] = struct{}{}
	o.members = append(o.members, Member{Key: key, Value: value})
	return nil
}

// String renders the object as definition text. Members appear in insertion
// order, so output is deterministic for a fixed build sequence.
func (o *Object) String() string {
	var b strings.Builder
	b.WriteString(o.name)
	if o.parent != "" {
		b.WriteString("(")
		b.WriteString(o.parent)
		b.WriteString(")")
	}
	b.WriteString(":\n")
	if len(o.members) == 0 {
		b.WriteString("    pass\n")
		return b.String()
	}
	for _, m := range o.members {
		b.WriteString("    ")
		b.WriteString(m.Key)
		b.WriteString(" = ")
		b.WriteString(formatValue(m.Value))
		b.WriteString("\n")
	}
	return b.String()
}

func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case bool:
		if val {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}

// ValidName reports whether a string is usable as an object or member
// identifier: ASCII letters, digits and underscores, not starting with a
// digit.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
