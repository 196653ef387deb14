package names

import "fmt"

// NotFoundError reports a lookup for a line id that has no translated name.
// This is a recoverable condition, not corruption; see the package doc.
type NotFoundError struct {
	Category Category
	Key      int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no name for %s line %d", e.Category, e.Key)
}

// Registry is the read-only id-to-name lookup service. Construct it with
// New; the zero value is not usable.
type Registry struct {
	tables map[Category]map[int]string
}

// New builds a Registry from the built-in tables and validates every entry.
// A validation failure means the tables themselves are broken, which is a
// programmer error, so callers typically treat a non-nil error as fatal.
func New() (*Registry, error) {
	r := &Registry{tables: make(map[Category]map[int]string, len(Categories()))}

	sources := map[Category]map[int]string{
		Unit:           unitLines,
		Building:       buildingLines,
		TransformGroup: transformGroupLines,
		VillagerGroup:  villagerGroupLines,
		MonkGroup:      monkGroupLines,
	}

	for cat, src := range sources {
		table := make(map[int]string, len(src))
		for key, name := range src {
			if key < 0 {
				return nil, fmt.Errorf("%s line %d: negative line id", cat, key)
			}
			if !validObjectName(name) {
				return nil, fmt.Errorf("%s line %d: %q is not a valid object name", cat, key, name)
			}
			table[key] = name
		}
		r.tables[cat] = table
	}

	return r, nil
}

// Lookup returns the canonical object name for a line id. A miss returns a
// *NotFoundError; callers distinguish it with errors.As and must never
// substitute a fabricated name for a missing one.
func (r *Registry) Lookup(cat Category, key int) (string, error) {
	table, ok := r.tables[cat]
	if !ok {
		return "", fmt.Errorf("unknown category %s", cat)
	}
	name, ok := table[key]
	if !ok {
		return "", &NotFoundError{Category: cat, Key: key}
	}
	return name, nil
}

// Size returns the number of entries in a category's table.
func (r *Registry) Size(cat Category) int {
	return len(r.tables[cat])
}

// Keys returns a copy of the line ids known to a category. The pre-processor
// uses it to enumerate convertible lines; the copy keeps the registry
// immutable from the caller's side.
func (r *Registry) Keys(cat Category) []int {
	table := r.tables[cat]
	keys := make([]int, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	return keys
}

// validObjectName reports whether a name is usable as a symbolic object
// identifier in the target object system: ASCII letters, digits and
// underscores, not starting with a digit, no whitespace.
func validObjectName(name string) bool {
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
