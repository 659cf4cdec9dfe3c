package wheel

import "sync"

// InteractionKind identifies a pointer interaction with the wheel.
type InteractionKind int

const (
	Press InteractionKind = iota
	Release
	Cancel
)

func (k InteractionKind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Interaction is a press or release at a position local to the wheel.
type Interaction struct {
	Kind InteractionKind
	X, Y float64
}

// InteractionSource fans interactions out to subscribers. Emit never blocks;
// a subscriber whose buffer is full misses the interaction.
type InteractionSource struct {
	mu   sync.Mutex
	subs map[int]chan Interaction
	next int
}

// Subscribe returns a channel of interactions and a function that ends the
// subscription and closes the channel.
func (s *InteractionSource) Subscribe(buffer int) (<-chan Interaction, func()) {
	ch := make(chan Interaction, buffer)
	s.mu.Lock()
	if s.subs == nil {
		s.subs = make(map[int]chan Interaction)
	}
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
			close(ch)
		})
	}
}

// Emit delivers in to every subscriber.
func (s *InteractionSource) Emit(in Interaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- in:
		default:
		}
	}
}
