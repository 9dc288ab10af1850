package directory

import (
	"sort"
	"strconv"

	"libdash/infras/sheets"
	"libdash/shared/constant"
)

// Table maps library or facility IDs to display names. Lookups never fail:
// a blank ID renders as "N/A" and an unknown ID falls back to a labelled
// placeholder such as "Library 3".
type Table struct {
	label string
	names map[string]string
}

// NewTable builds a lookup table from directory rows, labelling fallback
// names with the given entity label. Rows missing an id or a name are
// skipped.
func NewTable(label string, records []sheets.Record) Table {
	names := make(map[string]string, len(records))

	for _, record := range records {
		id := record.String("id", "ID")
		name := record.String("name")

		if id == "" || name == "" {
			continue
		}

		names[id] = name
	}

	return Table{
		label: label,
		names: names,
	}
}

// Name resolves an ID to its display name.
func (t Table) Name(id string) string {
	if id == "" {
		return constant.NA
	}

	if name, ok := t.names[id]; ok {
		return name
	}

	return t.label + " " + id
}

// Has reports whether the ID is present in the table.
func (t Table) Has(id string) bool {
	_, ok := t.names[id]

	return ok
}

// IDs returns every known ID in ascending order, for filter dropdowns.
// IDs that parse as numbers sort numerically ("2" before "10"); the rest
// sort after them, lexically.
func (t Table) IDs() []string {
	ids := make([]string, 0, len(t.names))
	for id := range t.names {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])

		if errA != nil || errB != nil {
			if (errA == nil) != (errB == nil) {
				return errA == nil
			}

			return ids[i] < ids[j]
		}

		return a < b
	})

	return ids
}

// Len returns the number of known entries.
func (t Table) Len() int {
	return len(t.names)
}
