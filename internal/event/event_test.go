package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(GameOver, ListenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(GameOver, ListenerFunc(func(Event) { order = append(order, "second") }))

	other := &recorder{}
	d.Subscribe(PlayerHit, other)

	d.Dispatch(Event{Type: GameOver, Data: GameOverData{Score: 300}})
	assert.Equal(t, []string{"first", "second"}, order)
	assert.Empty(t, other.got, "listeners of other types are not called")
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: EnemyDestroyed}) })
}

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "GameOver", GameOver.String())
	assert.Equal(t, "Unknown", EventType(99).String())
}
