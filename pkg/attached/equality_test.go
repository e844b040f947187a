package attached

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type point struct {
	X, Y int
}

type boxed struct {
	V any
}

func TestValuesEqual(t *testing.T) {
	p := &point{1, 2}
	slice := []int{1, 2, 3}
	m := map[string]int{"a": 1}
	fn := func() {}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil and value", nil, 1, false},
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"different types", 1, int64(1), false},
		{"equal strings", "Dark", "Dark", true},
		{"equal structs", point{1, 2}, point{1, 2}, true},
		{"same pointer", p, p, true},
		{"equal pointees", p, &point{1, 2}, false},
		{"same slice", slice, slice, true},
		{"resliced", slice, slice[:2], false},
		{"equal slice contents", slice, []int{1, 2, 3}, false},
		{"same map", m, m, true},
		{"equal map contents", m, map[string]int{"a": 1}, false},
		{"funcs", fn, fn, false},
		{"struct holding slice", boxed{V: slice}, boxed{V: slice}, false},
		{"struct holding ints", boxed{V: 1}, boxed{V: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, valuesEqual(tt.a, tt.b))
		})
	}
}
