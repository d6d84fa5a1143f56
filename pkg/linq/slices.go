package linq

import (
	"cmp"
	"slices"
)

// PredicateFunc testa uma condição sobre um elemento.
type PredicateFunc[T any] func(T) bool

// MapFunc transforma um elemento do tipo I para o tipo O.
type MapFunc[I, O any] func(I) O

// KeyFunc extrai uma chave ordenável de um elemento.
type KeyFunc[T any, K cmp.Ordered] func(T) K

// Filter retorna um novo slice contendo apenas os elementos que satisfazem fn.
// Retorna nil se items for nil.
//
// Exemplo:
//
//	names := []string{"Steve", "Sam", "Mark"}
//	s := linq.Filter(names, func(n string) bool { return n[0] == 'S' })
//	// s = []string{"Steve", "Sam"}
func Filter[T any](items []T, fn PredicateFunc[T]) []T {
	if items == nil {
		return nil
	}

	var result []T
	for _, item := range items {
		if fn(item) {
			result = append(result, item)
		}
	}
	return result
}

// Find retorna o primeiro elemento que satisfaz fn, ou o valor zero de T.
func Find[T any](items []T, fn PredicateFunc[T]) T {
	var empty T
	for _, item := range items {
		if fn(item) {
			return item
		}
	}
	return empty
}

// Map transforma cada elemento com fn. Retorna nil se items for nil.
func Map[I, O any](items []I, fn MapFunc[I, O]) []O {
	if items == nil {
		return nil
	}

	result := make([]O, len(items))
	for index, item := range items {
		result[index] = fn(item)
	}
	return result
}

// OrderBy retorna uma cópia de items ordenada de forma crescente pela chave.
// A ordenação é estável: elementos com a mesma chave mantêm a ordem original.
//
// Exemplo:
//
//	sections := []Section{{"Body", 2}, {"Header", 1}, {"Footer", 3}}
//	ordered := linq.OrderBy(sections, func(s Section) int { return s.Rank })
//	// Header, Body, Footer
func OrderBy[T any, K cmp.Ordered](items []T, key KeyFunc[T, K]) []T {
	return sortedCopy(items, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// OrderByDescending retorna uma cópia de items ordenada de forma decrescente pela chave.
// Elementos com a mesma chave mantêm a ordem original, como em OrderBy.
func OrderByDescending[T any, K cmp.Ordered](items []T, key KeyFunc[T, K]) []T {
	return sortedCopy(items, func(a, b T) int {
		return cmp.Compare(key(b), key(a))
	})
}

func sortedCopy[T any](items []T, compare func(a, b T) int) []T {
	if items == nil {
		return nil
	}

	result := slices.Clone(items)
	slices.SortStableFunc(result, compare)
	return result
}
