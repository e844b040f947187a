package attached

import "reflect"

// valuesEqual decides whether a write changed a property.
//
// Pointers, channels, maps and slices compare by reference (slices also by
// length), other comparable values by ==. Funcs and values that cannot be
// compared are never equal, so writing them always notifies.
func valuesEqual(a, b any) (equal bool) {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}

	switch ta.Kind() {
	case reflect.Func:
		return false
	case reflect.Map:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	case reflect.Slice:
		va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if !ta.Comparable() {
		return false
	}

	// Structs and arrays holding interfaces may still panic on ==.
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}
