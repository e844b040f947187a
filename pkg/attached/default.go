package attached

import "sync"

var (
	defaultOnce  sync.Once
	defaultProps *Properties
)

// Default returns the process-wide façade shared by every caller. It is
// created on first use and lives until the process exits.
func Default() *Properties {
	defaultOnce.Do(func() {
		defaultProps = New()
	})
	return defaultProps
}

// UseHierarchy installs the active toolkit backend on the default façade.
func UseHierarchy(h Hierarchy) {
	Default().SetHierarchy(h)
}

// GetValue reads name directly from owner on the default façade.
func GetValue(owner any, name string) (any, bool) {
	return Default().GetValue(owner, name)
}

// SetValue writes name on owner on the default façade.
func SetValue(owner any, name string, value any) error {
	return Default().SetValue(owner, name, value)
}

// SetValueNotify writes name on owner on the default façade and calls
// onChanged on change.
func SetValueNotify(owner any, name string, value any, onChanged ChangeHandler) error {
	return Default().SetValueNotify(owner, name, value, onChanged)
}

// ClearValue removes name from owner on the default façade.
func ClearValue(owner any, name string) bool {
	return Default().ClearValue(owner, name)
}

// GetInheritedValue resolves name from visual on the default façade.
func GetInheritedValue(visual any, name string) (any, bool) {
	return Default().GetInheritedValue(visual, name)
}

// GetDataContext returns the data context of owner on the default façade.
func GetDataContext(owner any) any {
	return Default().GetDataContext(owner)
}

// SetDataContext sets the data context of owner on the default façade.
func SetDataContext(owner, value any) error {
	return Default().SetDataContext(owner, value)
}

// SetDataContextNotify sets the data context of owner on the default façade
// and calls onChanged on change.
func SetDataContextNotify(owner, value any, onChanged ChangeHandler) error {
	return Default().SetDataContextNotify(owner, value, onChanged)
}

// SetDataContextWithPropertyChangedHandler sets the data context of owner on
// the default façade and subscribes handler to the value's notifications.
func SetDataContextWithPropertyChangedHandler(owner, value any, handler PropertyChangedHandler) (Subscription, error) {
	return Default().SetDataContextWithPropertyChangedHandler(owner, value, handler)
}
