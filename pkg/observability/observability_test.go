package observability_test

import (
	"errors"
	"testing"

	"github.com/JailtonJunior94/delegates-kit/pkg/observability"
	"github.com/stretchr/testify/assert"
)

func TestFieldConstructors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name  string
		field observability.Field
		key   string
		value any
	}{
		{"string", observability.String("component", "DocumentWriter"), "component", "DocumentWriter"},
		{"int", observability.Int("order", 3), "order", 3},
		{"bool", observability.Bool("ascending", false), "ascending", false},
		{"error", observability.Error(boom), "error", boom},
		{"any", observability.Any("ranks", []int{1, 2}), "ranks", []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.field.Key)
			assert.Equal(t, tt.value, tt.field.Value)
		})
	}
}
