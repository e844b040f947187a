package attached

import "sync"

// PropertyChangedHandler receives change notifications raised by a Notifier.
type PropertyChangedHandler func(sender any, property string)

// Subscription is returned by Notifier and cancels a handler registration.
type Subscription interface {
	Unsubscribe()
}

// Notifier is the change-notification capability of a data context.
type Notifier interface {
	SubscribePropertyChanged(handler PropertyChangedHandler) Subscription
}

// Observable is an embeddable Notifier. The zero value is ready to use.
//
//	type Library struct {
//		attached.Observable
//		title string
//	}
//
//	func (l *Library) SetTitle(t string) {
//		l.title = t
//		l.NotifyPropertyChanged(l, "Title")
//	}
type Observable struct {
	mu       sync.Mutex
	nextID   uint64
	handlers []observer
}

type observer struct {
	id      uint64
	handler PropertyChangedHandler
}

// SubscribePropertyChanged registers handler. Handlers run in registration
// order.
func (o *Observable) SubscribePropertyChanged(handler PropertyChangedHandler) Subscription {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.nextID++
	id := o.nextID
	o.handlers = append(o.handlers, observer{id: id, handler: handler})

	return &subscription{cancel: func() { o.unsubscribe(id) }}
}

// NotifyPropertyChanged calls every registered handler with sender and
// property. Handlers may subscribe or unsubscribe while being called.
func (o *Observable) NotifyPropertyChanged(sender any, property string) {
	o.mu.Lock()
	handlers := make([]observer, len(o.handlers))
	copy(handlers, o.handlers)
	o.mu.Unlock()

	for _, obs := range handlers {
		obs.handler(sender, property)
	}
}

// SubscriberCount returns the number of registered handlers.
func (o *Observable) SubscriberCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.handlers)
}

func (o *Observable) unsubscribe(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, obs := range o.handlers {
		if obs.id == id {
			o.handlers = append(o.handlers[:i], o.handlers[i+1:]...)
			return
		}
	}
}

type subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe is idempotent.
func (s *subscription) Unsubscribe() {
	s.once.Do(s.cancel)
}
