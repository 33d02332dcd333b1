// internal/event/event.go
package event

import "github.com/kamstrup/intmap"

// EventType — тип события
type EventType int

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Dispatcher — синхронный диспетчер событий. Подписчики вызываются в
// порядке подписки, в той же горутине, что и Dispatch.
type Dispatcher struct {
	listeners *intmap.Map[EventType, []Listener]
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: intmap.New[EventType, []Listener](8),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	listeners, _ := d.listeners.Get(eventType)
	d.listeners.Put(eventType, append(listeners, listener))
}

// Dispatch — отправка события всем подписчикам
func (d *Dispatcher) Dispatch(event Event) {
	listeners, exists := d.listeners.Get(event.Type)
	if !exists {
		return
	}
	for _, listener := range listeners {
		listener.OnEvent(event)
	}
}
