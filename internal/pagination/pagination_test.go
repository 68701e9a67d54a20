package pagination

import "testing"

func TestParsePageDefaults(t *testing.T) {
	cases := map[string]int{
		"":    1,
		"abc": 1,
		"0":   1,
		"-3":  1,
		"1.5": 1,
		"2":   2,
		"17":  17,
	}
	for raw, want := range cases {
		if got := ParsePage(raw); got != want {
			t.Errorf("ParsePage(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		want  int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{15, 2},
		{20, 2},
		{21, 3},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, PageSize); got != tc.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tc.total, PageSize, got, tc.want)
		}
	}
}

func TestClampBeyondLastPage(t *testing.T) {
	if got := Clamp(99, 15, PageSize); got != 2 {
		t.Fatalf("expected request past the end to clamp to last page 2, got %d", got)
	}
	if got := Clamp(2, 15, PageSize); got != 2 {
		t.Fatalf("valid page should pass through, got %d", got)
	}
	if got := Clamp(5, 0, PageSize); got != 1 {
		t.Fatalf("empty collection clamps to page 1, got %d", got)
	}
}

func TestFifteenItemSplit(t *testing.T) {
	const total = 15

	first := New(make([]int, PageSize), 1, PageSize, total)
	if len(first.Items) != 10 || !first.HasNext || first.HasPrev {
		t.Fatalf("page 1: expected 10 items with a next page, got %+v", first)
	}
	if Offset(1, PageSize) != 0 {
		t.Fatalf("page 1 offset should be 0, got %d", Offset(1, PageSize))
	}

	second := New(make([]int, total-PageSize), 2, PageSize, total)
	if len(second.Items) != 5 || second.HasNext || !second.HasPrev {
		t.Fatalf("page 2: expected the 5 remaining items, got %+v", second)
	}
	if Offset(2, PageSize) != 10 {
		t.Fatalf("page 2 offset should be 10, got %d", Offset(2, PageSize))
	}

	if first.TotalPages != 2 || second.TotalPages != 2 {
		t.Fatalf("expected 2 total pages, got %d and %d", first.TotalPages, second.TotalPages)
	}
}
