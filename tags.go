package scopedstats

import (
	"maps"
	"sort"
	"strings"
)

// Tags are key/value pairs qualifying a metric. Two calls with equal tags
// merge into the same entry regardless of insertion order.
type Tags map[string]string

const (
	pairSeparator     = "\x1f"
	keyValueSeparator = "\x1e"
)

// encodeTags returns the canonical encoding of a tag set, with keys sorted.
// The empty tag set encodes to "".
func encodeTags(tags Tags) string {
	if len(tags) == 0 {
		return ""
	}

	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(pairSeparator)
		}
		sb.WriteString(k)
		sb.WriteString(keyValueSeparator)
		sb.WriteString(tags[k])
	}

	return sb.String()
}

// containsAll reports whether tags includes every pair of filter. An empty
// filter matches everything; an empty tag set matches only the empty filter.
func (t Tags) containsAll(filter Tags) bool {
	for k, v := range filter {
		if tv, ok := t[k]; !ok || tv != v {
			return false
		}
	}

	return true
}

// qualifiedName renders a metric name with its tag set appended, used to keep
// multiple tag variants of the same name apart in a snapshot.
func qualifiedName(name string, tags Tags) string {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("{")
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(tags[k])
	}
	sb.WriteString("}")

	return sb.String()
}

func cloneTags(tags Tags) Tags {
	if len(tags) == 0 {
		return nil
	}

	return maps.Clone(tags)
}
