package lametta

import "strconv"

// Paths are rendered eagerly in dotted/indexed form: fields append ".name"
// (or just "name" at the root) and sequence/tuple positions append "[i]".
// Example: backend.collection, items[2].

func fieldPath(base, name string) string {
	if base == "" {
		return name
	}
	return base + "." + name
}

func indexPath(base string, i int) string {
	return base + "[" + strconv.Itoa(i) + "]"
}
