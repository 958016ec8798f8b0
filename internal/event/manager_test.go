package event

import (
	"reflect"
	"testing"

	"github.com/bethropolis/scribe/internal/types"
)

func TestManager_DispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypeBufferModified, func(e Event) bool {
		data, ok := e.Data.(BufferModifiedData)
		if !ok || data.Edit.StartLine != 3 {
			t.Errorf("unexpected payload %#v", e.Data)
		}
		calls = append(calls, "first")
		return false
	})
	m.Subscribe(TypeBufferModified, func(Event) bool {
		calls = append(calls, "second")
		return true
	})
	m.Subscribe(TypeBufferModified, func(Event) bool {
		calls = append(calls, "third")
		return false
	})

	m.Dispatch(TypeBufferModified, BufferModifiedData{Edit: types.EditInfo{StartLine: 3, OldEndLine: 3, NewEndLine: 3}})

	if want := []string{"first", "second"}; !reflect.DeepEqual(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestManager_DispatchWithoutSubscribers(t *testing.T) {
	m := NewManager()
	if m.HasSubscribers(TypeCursorMoved) {
		t.Fatal("fresh manager reports subscribers")
	}
	m.Dispatch(TypeCursorMoved, CursorMovedData{})

	m.Subscribe(TypeCursorMoved, func(Event) bool { return false })
	if !m.HasSubscribers(TypeCursorMoved) {
		t.Fatal("HasSubscribers false after Subscribe")
	}
}

func TestManager_SubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	count := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		count++
		m.Subscribe(TypeAppReady, func(Event) bool { count += 10; return false })
		return false
	})
	m.Dispatch(TypeAppReady, AppReadyData{})
	if count != 1 {
		t.Fatalf("count = %d after first dispatch, want 1", count)
	}
}

func TestType_String(t *testing.T) {
	if TypeScrollChanged.String() != "ScrollChanged" {
		t.Errorf("got %q", TypeScrollChanged.String())
	}
	if Type(99).String() != "Type(99)" {
		t.Errorf("got %q", Type(99).String())
	}
}
