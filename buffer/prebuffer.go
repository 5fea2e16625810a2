package buffer

import "github.com/eapache/queue"

// preBuffer holds the elements read ahead of the group that is currently
// being returned. It never holds more than minSize elements, as it is
// drained at the start of every call to TryAdvance.
type preBuffer[T any] struct {
	elements *queue.Queue
}

func newPreBuffer[T any]() *preBuffer[T] {
	return &preBuffer[T]{
		elements: queue.New(),
	}
}

func (p *preBuffer[T]) len() int {
	return p.elements.Length()
}

func (p *preBuffer[T]) push(element T) {
	p.elements.Add(element)
}

// drainTo appends all buffered elements to group in FIFO order.
func (p *preBuffer[T]) drainTo(group []T) []T {
	for p.elements.Length() > 0 {
		// A nil interface element comes back as a nil interface{},
		// for which the assertion fails while yielding the zero value.
		element, _ := p.elements.Remove().(T)
		group = append(group, element)
	}
	return group
}

// discard drops all buffered elements and returns how many there were.
func (p *preBuffer[T]) discard() int {
	n := p.elements.Length()
	for p.elements.Length() > 0 {
		p.elements.Remove()
	}
	return n
}
