package store

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/mpilhlt/bookreviews-api/internal/models"
)

// sortKey is a parsed entry of models.ListOptions.Sort.
type sortKey struct {
	field string
	desc  bool
}

func parseSort(sort []string) []sortKey {
	keys := make([]sortKey, 0, len(sort))
	for _, s := range sort {
		if name, ok := strings.CutPrefix(s, "-"); ok {
			keys = append(keys, sortKey{field: name, desc: true})
			continue
		}
		keys = append(keys, sortKey{field: s})
	}
	return keys
}

// sortAndLimit orders records in place for backends that cannot sort on the
// server side and truncates the result to opts.MaxRecords.
func sortAndLimit(records []models.Record, opts models.ListOptions) []models.Record {
	keys := parseSort(opts.Sort)
	if len(keys) > 0 {
		slices.SortStableFunc(records, func(a, b models.Record) int {
			for _, k := range keys {
				c := compareValues(a.Fields[k.field], b.Fields[k.field])
				if k.desc {
					c = -c
				}
				if c != 0 {
					return c
				}
			}
			return 0
		})
	}
	if opts.MaxRecords > 0 && len(records) > opts.MaxRecords {
		records = records[:opts.MaxRecords]
	}
	return records
}

// compareValues orders missing values first, then numbers, then strings.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	af, aNum := a.(float64)
	bf, bNum := b.(float64)
	switch {
	case aNum && bNum:
		return cmp.Compare(af, bf)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
