package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchInSubscriptionOrder(t *testing.T) {
	m := NewManager()
	var order []string
	m.Subscribe(TypeNotification, func(e Event) bool {
		order = append(order, "first:"+e.Data.(NotificationData).Message)
		return false
	})
	m.Subscribe(TypeNotification, func(e Event) bool {
		order = append(order, "second")
		return true
	})

	m.Dispatch(TypeNotification, NotificationData{Message: "hi"})
	assert.Equal(t, []string{"first:hi", "second"}, order)
}

func TestDispatchOnlyMatchingType(t *testing.T) {
	m := NewManager()
	var got []Type
	m.Subscribe(TypeSheetSwitched, func(e Event) bool {
		got = append(got, e.Type)
		return false
	})

	m.Dispatch(TypeGridModified, GridModifiedData{})
	m.Dispatch(TypeSheetSwitched, SheetSwitchedData{Index: 1, Name: "Data"})
	require.Len(t, got, 1)
	assert.Equal(t, TypeSheetSwitched, got[0])
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		calls++
		m.Subscribe(TypeAppReady, func(Event) bool { calls++; return false })
		return false
	})

	m.Dispatch(TypeAppReady, AppReadyData{})
	assert.Equal(t, 1, calls)
	m.Dispatch(TypeAppReady, AppReadyData{})
	assert.Equal(t, 3, calls)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "Notification", TypeNotification.String())
	assert.Equal(t, "Type(99)", Type(99).String())
}
