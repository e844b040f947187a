package attached_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/attachprop/pkg/attached"
)

type libraryViewModel struct {
	attached.Observable
	title string
}

func (vm *libraryViewModel) SetTitle(title string) {
	vm.title = title
	vm.NotifyPropertyChanged(vm, "Title")
}

type plainModel struct {
	title string
}

func TestGetDataContext_VisualInherits(t *testing.T) {
	f := newFixture()
	vm := &libraryViewModel{}
	require.NoError(t, f.props.SetDataContext(f.win, vm))

	assert.Same(t, vm, f.props.GetDataContext(f.item))
}

func TestGetDataContext_NonVisualIsDirect(t *testing.T) {
	f := newFixture()
	controller := &view{name: "controller"}
	vm := &libraryViewModel{}

	assert.Nil(t, f.props.GetDataContext(controller))

	require.NoError(t, f.props.SetDataContext(controller, vm))
	assert.Same(t, vm, f.props.GetDataContext(controller))
}

func TestGetDataContext_Unset(t *testing.T) {
	f := newFixture()

	assert.Nil(t, f.props.GetDataContext(f.item))
	assert.Nil(t, f.props.GetDataContext(nil))
}

func TestSetDataContextNotify(t *testing.T) {
	f := newFixture()
	vm := &libraryViewModel{}
	var changed []string
	handler := func(_ any, property string) { changed = append(changed, property) }

	require.NoError(t, f.props.SetDataContextNotify(f.sidebar, vm, handler))
	require.NoError(t, f.props.SetDataContextNotify(f.sidebar, vm, handler))

	assert.Equal(t, []string{attached.DataContextProperty}, changed)
}

func TestSetDataContextWithPropertyChangedHandler_Subscribes(t *testing.T) {
	// Arrange
	f := newFixture()
	vm := &libraryViewModel{}
	var notified []string

	// Act
	sub, err := f.props.SetDataContextWithPropertyChangedHandler(f.sidebar, vm, func(sender any, property string) {
		assert.Same(t, vm, sender)
		notified = append(notified, property)
	})
	require.NoError(t, err)
	vm.SetTitle("Games")

	// Assert
	assert.Same(t, vm, f.props.GetDataContext(f.item))
	assert.Equal(t, []string{"Title"}, notified)
	assert.Equal(t, 1, vm.SubscriberCount())

	sub.Unsubscribe()
	vm.SetTitle("Emulators")
	assert.Equal(t, []string{"Title"}, notified)
	assert.Equal(t, 0, vm.SubscriberCount())
}

func TestSetDataContextWithPropertyChangedHandler_RequiresNotifier(t *testing.T) {
	f := newFixture()

	sub, err := f.props.SetDataContextWithPropertyChangedHandler(f.sidebar, &plainModel{title: "x"}, func(any, string) {})

	assert.Nil(t, sub)
	assert.ErrorIs(t, err, attached.ErrNotNotifier)
	var capErr *attached.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.IsType(t, &plainModel{}, capErr.Value)
	assert.Nil(t, f.props.GetDataContext(f.sidebar), "a failed call leaves the data context untouched")
}

func TestSetDataContextWithPropertyChangedHandler_NilValue(t *testing.T) {
	f := newFixture()
	var vm *libraryViewModel

	_, err := f.props.SetDataContextWithPropertyChangedHandler(f.sidebar, vm, func(any, string) {})

	assert.ErrorIs(t, err, attached.ErrNotNotifier)
}
