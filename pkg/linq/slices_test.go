package linq

import (
	"reflect"
	"testing"
)

type section struct {
	name string
	rank int
}

func names(items []section) []string {
	return Map(items, func(s section) string { return s.name })
}

func TestFilter(t *testing.T) {
	t.Run("keeps matching elements in order", func(t *testing.T) {
		result := Filter([]string{"Steve", "Sam", "Mark"}, func(n string) bool { return n[0] == 'S' })
		expected := []string{"Steve", "Sam"}

		if !reflect.DeepEqual(result, expected) {
			t.Errorf("Filter() = %v, want %v", result, expected)
		}
	})

	t.Run("returns nil for nil input", func(t *testing.T) {
		var input []int
		if result := Filter(input, func(int) bool { return true }); result != nil {
			t.Errorf("Filter(nil) = %v, want nil", result)
		}
	})

	t.Run("returns empty when nothing matches", func(t *testing.T) {
		if result := Filter([]int{1, 3}, func(n int) bool { return n%2 == 0 }); len(result) != 0 {
			t.Errorf("Filter() = %v, want empty", result)
		}
	})
}

func TestFind(t *testing.T) {
	people := []string{"Steve", "Sam", "Mark"}

	if got := Find(people, func(n string) bool { return n == "Sam" }); got != "Sam" {
		t.Errorf("Find() = %q, want %q", got, "Sam")
	}

	if got := Find(people, func(n string) bool { return n == "Bob" }); got != "" {
		t.Errorf("Find() = %q, want zero value", got)
	}

	if got := Find([]int(nil), func(int) bool { return true }); got != 0 {
		t.Errorf("Find(nil) = %d, want 0", got)
	}
}

func TestMap(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(n int) int { return n * 2 })
	if !reflect.DeepEqual(doubled, []int{2, 4, 6}) {
		t.Errorf("Map() = %v", doubled)
	}

	var input []int
	if Map(input, func(n int) int { return n }) != nil {
		t.Error("Map(nil) should return nil")
	}
}

func TestOrderBy(t *testing.T) {
	items := []section{{"Footer", 3}, {"Body", 2}, {"Header", 1}, {"HighSugar", 2}}

	tests := []struct {
		name     string
		sort     func([]section) []section
		expected []string
	}{
		{
			name:     "ascending keeps registration order for ties",
			sort:     func(s []section) []section { return OrderBy(s, func(x section) int { return x.rank }) },
			expected: []string{"Header", "Body", "HighSugar", "Footer"},
		},
		{
			name:     "descending keeps registration order for ties",
			sort:     func(s []section) []section { return OrderByDescending(s, func(x section) int { return x.rank }) },
			expected: []string{"Footer", "Body", "HighSugar", "Header"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(tt.sort(items))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}

	t.Run("does not modify the input", func(t *testing.T) {
		before := names(items)
		OrderBy(items, func(x section) int { return x.rank })
		if !reflect.DeepEqual(names(items), before) {
			t.Errorf("input was reordered: %v", names(items))
		}
	})

	t.Run("nil input", func(t *testing.T) {
		if OrderByDescending([]section(nil), func(x section) int { return x.rank }) != nil {
			t.Error("expected nil")
		}
	})
}

func BenchmarkOrderBy(b *testing.B) {
	items := make([]section, 1000)
	for i := range items {
		items[i] = section{rank: (i * 7919) % 97}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = OrderBy(items, func(x section) int { return x.rank })
	}
}
