package attached

// DataContextProperty is the reserved property name of the data-binding root.
const DataContextProperty = "DataContext"

// GetDataContext returns the data context of owner. Visual owners inherit it
// from their ancestors, non-visual owners only see their own value.
func (p *Properties) GetDataContext(owner any) any {
	if p.IsVisual(owner) {
		v, _ := p.GetInheritedValue(owner, DataContextProperty)
		return v
	}
	v, _ := p.GetValue(owner, DataContextProperty)
	return v
}

// SetDataContext sets the data context of owner.
func (p *Properties) SetDataContext(owner, value any) error {
	return p.SetValue(owner, DataContextProperty, value)
}

// SetDataContextNotify sets the data context of owner and calls onChanged if
// it changed.
func (p *Properties) SetDataContextNotify(owner, value any, onChanged ChangeHandler) error {
	return p.SetValueNotify(owner, DataContextProperty, value, onChanged)
}

// SetDataContextWithPropertyChangedHandler sets the data context of owner and
// subscribes handler to the value's own change notifications. The returned
// subscription is independent of any DataContext change handler and must be
// cancelled by the caller.
//
// A value that does not implement Notifier yields a *CapabilityError and
// leaves the data context untouched.
func (p *Properties) SetDataContextWithPropertyChangedHandler(owner, value any, handler PropertyChangedHandler) (Subscription, error) {
	notifier, ok := value.(Notifier)
	if !ok || isNil(value) {
		return nil, &CapabilityError{Value: value}
	}

	if err := p.SetDataContext(owner, value); err != nil {
		return nil, err
	}
	return notifier.SubscribePropertyChanged(handler), nil
}
