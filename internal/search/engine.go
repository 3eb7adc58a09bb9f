// Package search derives a filtered, sorted view of a catalog snapshot from
// three independent query parameters: a free-text term, a sort key, and a
// stock filter. The engine never mutates its source snapshot.
package search

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Kind discriminates the typed value produced by a field extractor.
type Kind int

const (
	Absent Kind = iota
	String
	Number
	Bool
)

// Value is the typed result of extracting a named field from a record.
// Records with no value for a field report Kind Absent.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

func StringValue(s string) Value  { return Value{Kind: String, Str: s} }
func NumberValue(n float64) Value { return Value{Kind: Number, Num: n} }
func BoolValue(b bool) Value      { return Value{Kind: Bool, Bool: b} }

// FieldMap registers one typed extractor per addressable field name. Field
// access goes through extractors rather than dynamic indexing, so a sort or
// search against an unregistered name degrades instead of failing.
type FieldMap[T any] map[string]func(T) Value

// StockFilter selects records by stock status. Any value other than
// StockInStock or StockOutOfStock behaves as StockAll (fail open).
type StockFilter string

const (
	StockAll        StockFilter = "all"
	StockInStock    StockFilter = "inStock"
	StockOutOfStock StockFilter = "outOfStock"
)

// stockField names the extractor consulted by the stock filter.
const stockField = "inStock"

// Engine recomputes a derived list from a source snapshot plus the current
// query parameters. Every input change recomputes the result eagerly, so the
// derived list is never stale relative to the inputs.
type Engine[T any] struct {
	fields     FieldMap[T]
	searchable []string
	coll       *collate.Collator

	source  []T
	haveSrc bool
	term    string
	sortKey string
	stock   StockFilter

	derived []T
}

// New builds an engine over the given extractor registry; searchable lists
// the field names consulted by the free-text filter.
func New[T any](fields FieldMap[T], searchable ...string) *Engine[T] {
	e := &Engine[T]{
		fields:     fields,
		searchable: searchable,
		coll:       collate.New(language.English),
		stock:      StockAll,
	}
	e.recompute()
	return e
}

// SetSource replaces the snapshot the engine derives from. A nil slice means
// "no data yet" and derives an empty list.
func (e *Engine[T]) SetSource(items []T) {
	e.source = items
	e.haveSrc = items != nil
	e.recompute()
}

func (e *Engine[T]) SetSearchTerm(term string) {
	e.term = term
	e.recompute()
}

func (e *Engine[T]) SetSortKey(key string) {
	e.sortKey = key
	e.recompute()
}

func (e *Engine[T]) SetStockFilter(f StockFilter) {
	e.stock = f
	e.recompute()
}

func (e *Engine[T]) SearchTerm() string       { return e.term }
func (e *Engine[T]) SortKey() string          { return e.sortKey }
func (e *Engine[T]) StockFilter() StockFilter { return e.stock }

// Results returns the current derived list. Callers must not mutate it.
func (e *Engine[T]) Results() []T { return e.derived }

// ResultCount is the length of the derived list.
func (e *Engine[T]) ResultCount() int { return len(e.derived) }

// TotalCount is the length of the unfiltered source snapshot, 0 when absent.
func (e *Engine[T]) TotalCount() int { return len(e.source) }

func (e *Engine[T]) recompute() {
	if !e.haveSrc {
		e.derived = []T{}
		return
	}

	result := make([]T, len(e.source))
	copy(result, e.source)

	if e.term != "" {
		result = e.filterSearch(result)
	}

	switch e.stock {
	case StockInStock:
		result = e.filterStock(result, true)
	case StockOutOfStock:
		result = e.filterStock(result, false)
	}

	if e.sortKey != "" {
		e.sortBy(result, e.sortKey)
	}

	e.derived = result
}

func (e *Engine[T]) filterSearch(items []T) []T {
	needle := strings.ToLower(e.term)
	kept := items[:0]
	for _, item := range items {
		for _, field := range e.searchable {
			extract, ok := e.fields[field]
			if !ok {
				continue
			}
			text, ok := stringify(extract(item))
			if ok && strings.Contains(strings.ToLower(text), needle) {
				kept = append(kept, item)
				break
			}
		}
	}
	return kept
}

func (e *Engine[T]) filterStock(items []T, want bool) []T {
	extract, ok := e.fields[stockField]
	if !ok {
		return items
	}
	kept := items[:0]
	for _, item := range items {
		if truthy(extract(item)) == want {
			kept = append(kept, item)
		}
	}
	return kept
}

func (e *Engine[T]) sortBy(items []T, key string) {
	extract, ok := e.fields[key]
	if !ok {
		// Unknown sort key: the stable sort below would be a no-op anyway,
		// so skip the pass entirely.
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		return e.compare(extract(items[i]), extract(items[j])) < 0
	})
}

// compare orders two field values: strings locale-aware ascending, numbers
// ascending, true before false for booleans. Absent values and mismatched
// kinds compare as equal, leaving relative order to sort stability.
func (e *Engine[T]) compare(a, b Value) int {
	if a.Kind != b.Kind {
		return 0
	}
	switch a.Kind {
	case String:
		return e.coll.CompareString(a.Str, b.Str)
	case Number:
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		}
		return 0
	case Bool:
		switch {
		case a.Bool && !b.Bool:
			return -1
		case !a.Bool && b.Bool:
			return 1
		}
		return 0
	}
	return 0
}

func stringify(v Value) (string, bool) {
	switch v.Kind {
	case String:
		return v.Str, true
	case Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64), true
	case Bool:
		return strconv.FormatBool(v.Bool), true
	}
	return "", false
}

func truthy(v Value) bool {
	switch v.Kind {
	case String:
		return v.Str != ""
	case Number:
		return v.Num != 0
	case Bool:
		return v.Bool
	}
	return false
}
