package search

import (
	"reflect"
	"testing"
)

type item struct {
	Name        string
	Sport       string
	Description string
	Price       float64
	Rarity      string
	InStock     bool
}

func itemFields() FieldMap[item] {
	return FieldMap[item]{
		"name":        func(i item) Value { return StringValue(i.Name) },
		"sport":       func(i item) Value { return StringValue(i.Sport) },
		"description": func(i item) Value { return StringValue(i.Description) },
		"price":       func(i item) Value { return NumberValue(i.Price) },
		"rarity":      func(i item) Value { return StringValue(i.Rarity) },
		"inStock":     func(i item) Value { return BoolValue(i.InStock) },
	}
}

func fixture() []item {
	return []item{
		{Name: "8-Ball", Sport: "pool", Description: "The coolest buddy on the felt", Price: 34.99, Rarity: "legendary", InStock: true},
		{Name: "Ball Baddie", Sport: "dodgeball", Description: "Always up to no good", Price: 25.99, Rarity: "rare", InStock: false},
		{Name: "Basketballer", Sport: "basketball", Description: "Dunks on everyone", Price: 29.99, Rarity: "common", InStock: true},
		{Name: "Soccer Punk", Sport: "soccer", Description: "A rebellious little punk", Price: 24.99, Rarity: "rare", InStock: true},
	}
}

func newEngine() *Engine[item] {
	return New(itemFields(), "name", "sport", "description")
}

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestIdentityDerivation(t *testing.T) {
	e := newEngine()
	src := fixture()
	e.SetSource(src)

	if !reflect.DeepEqual(e.Results(), src) {
		t.Errorf("expected derived list to equal source, got %v", names(e.Results()))
	}
	if e.ResultCount() != 4 || e.TotalCount() != 4 {
		t.Errorf("expected counts 4/4, got %d/%d", e.ResultCount(), e.TotalCount())
	}
}

func TestNilSource(t *testing.T) {
	e := newEngine()
	e.SetSource(nil)

	if len(e.Results()) != 0 {
		t.Errorf("expected empty derived list, got %v", names(e.Results()))
	}
	if e.ResultCount() != 0 || e.TotalCount() != 0 {
		t.Errorf("expected counts 0/0, got %d/%d", e.ResultCount(), e.TotalCount())
	}
}

func TestSearchThenStockThenSort(t *testing.T) {
	e := newEngine()
	e.SetSource(fixture())

	e.SetSearchTerm("Ball")
	if got := names(e.Results()); !reflect.DeepEqual(got, []string{"8-Ball", "Ball Baddie", "Basketballer"}) {
		t.Fatalf("search 'Ball': expected 3 matches, got %v", got)
	}

	e.SetStockFilter(StockInStock)
	if got := names(e.Results()); !reflect.DeepEqual(got, []string{"8-Ball", "Basketballer"}) {
		t.Fatalf("search + inStock: expected 2 matches, got %v", got)
	}

	e.SetSortKey("price")
	if got := names(e.Results()); !reflect.DeepEqual(got, []string{"Basketballer", "8-Ball"}) {
		t.Fatalf("search + inStock + price sort: expected [Basketballer 8-Ball], got %v", got)
	}
	if e.ResultCount() != 2 || e.TotalCount() != 4 {
		t.Errorf("expected counts 2/4, got %d/%d", e.ResultCount(), e.TotalCount())
	}
}

func TestSearchIsCaseInsensitiveAcrossFields(t *testing.T) {
	e := newEngine()
	e.SetSource(fixture())

	tests := []struct {
		term string
		want []string
	}{
		{"SOCCER", []string{"Soccer Punk"}},      // matches name and sport
		{"dunks", []string{"Basketballer"}},      // matches description only
		{"dodgeball", []string{"Ball Baddie"}},   // matches sport only
		{"no such buddy", []string{}},
		{"", []string{"8-Ball", "Ball Baddie", "Basketballer", "Soccer Punk"}},
	}
	for _, tt := range tests {
		e.SetSearchTerm(tt.term)
		got := names(e.Results())
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("term %q: expected %v, got %v", tt.term, tt.want, got)
		}
	}
}

func TestStockFilter(t *testing.T) {
	e := newEngine()
	e.SetSource(fixture())

	e.SetStockFilter(StockInStock)
	for _, it := range e.Results() {
		if !it.InStock {
			t.Errorf("inStock filter kept out-of-stock item %q", it.Name)
		}
	}
	if e.ResultCount() != 3 {
		t.Errorf("expected 3 in-stock items, got %d", e.ResultCount())
	}

	e.SetStockFilter(StockOutOfStock)
	for _, it := range e.Results() {
		if it.InStock {
			t.Errorf("outOfStock filter kept in-stock item %q", it.Name)
		}
	}
	if e.ResultCount() != 1 {
		t.Errorf("expected 1 out-of-stock item, got %d", e.ResultCount())
	}

	// Unrecognized values fail open.
	e.SetStockFilter(StockFilter("discontinued"))
	if e.ResultCount() != 4 {
		t.Errorf("unrecognized stock filter should not filter, got %d items", e.ResultCount())
	}
}

func TestSortByName(t *testing.T) {
	e := newEngine()
	e.SetSource(fixture())
	e.SetSortKey("name")

	want := []string{"8-Ball", "Ball Baddie", "Basketballer", "Soccer Punk"}
	if got := names(e.Results()); !reflect.DeepEqual(got, want) {
		t.Errorf("name sort: expected %v, got %v", want, got)
	}

	// Sorting an already sorted list must not reorder.
	first := names(e.Results())
	e.SetSortKey("name")
	if got := names(e.Results()); !reflect.DeepEqual(got, first) {
		t.Errorf("second sort reordered: %v -> %v", first, got)
	}
}

func TestSortByPriceAscending(t *testing.T) {
	e := newEngine()
	e.SetSource(fixture())
	e.SetSortKey("price")

	results := e.Results()
	for i := 1; i < len(results); i++ {
		if results[i-1].Price > results[i].Price {
			t.Errorf("prices out of order at %d: %v > %v", i, results[i-1].Price, results[i].Price)
		}
	}
}

func TestSortByBoolTrueFirst(t *testing.T) {
	e := newEngine()
	e.SetSource(fixture())
	e.SetSortKey("inStock")

	results := e.Results()
	seenFalse := false
	for _, it := range results {
		if !it.InStock {
			seenFalse = true
		} else if seenFalse {
			t.Fatalf("in-stock item %q after out-of-stock one", it.Name)
		}
	}
}

func TestSortByUnknownKeyKeepsOrder(t *testing.T) {
	e := newEngine()
	src := fixture()
	e.SetSource(src)
	e.SetSortKey("nonexistent")

	if !reflect.DeepEqual(names(e.Results()), names(src)) {
		t.Errorf("unknown sort key reordered list: %v", names(e.Results()))
	}
}

func TestSourceNotMutated(t *testing.T) {
	src := fixture()
	snapshot := make([]item, len(src))
	copy(snapshot, src)

	e := newEngine()
	e.SetSource(src)
	e.SetSearchTerm("ball")
	e.SetStockFilter(StockInStock)
	e.SetSortKey("price")

	if !reflect.DeepEqual(src, snapshot) {
		t.Errorf("engine mutated its source slice: %v", names(src))
	}
}

func TestStockFilterWithoutExtractorFailsOpen(t *testing.T) {
	fields := FieldMap[item]{
		"name": func(i item) Value { return StringValue(i.Name) },
	}
	e := New(fields, "name")
	e.SetSource(fixture())
	e.SetStockFilter(StockInStock)

	if e.ResultCount() != 4 {
		t.Errorf("missing inStock extractor should not filter, got %d items", e.ResultCount())
	}
}
