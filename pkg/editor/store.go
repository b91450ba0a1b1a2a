package editor

import (
	"math/rand/v2"

	"github.com/matzehuels/gradientlab/pkg/colors"
	"github.com/matzehuels/gradientlab/pkg/gradient"
)

// Store owns the current State of one editing session. It is not safe for
// concurrent use; exactly one goroutine (the UI loop) dispatches.
type Store struct {
	state    State
	rng      *rand.Rand
	newID    func() string
	onChange func(prev, next State)
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithRand sets the random source used for new node colors and Randomize.
func WithRand(r *rand.Rand) StoreOption {
	return func(s *Store) { s.rng = r }
}

// WithIDs sets the generator for stop and node IDs.
func WithIDs(fn func() string) StoreOption {
	return func(s *Store) { s.newID = fn }
}

// NewStore returns a store holding initial.
func NewStore(initial State, opts ...StoreOption) *Store {
	s := &Store{
		state: initial,
		rng:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		newID: gradient.NewID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state.
func (s *Store) State() State {
	return s.state
}

// OnChange registers fn to be called after every Dispatch, replacing any
// previous callback.
func (s *Store) OnChange(fn func(prev, next State)) {
	s.onChange = fn
}

// Dispatch completes a with any identities or random values it lacks,
// applies it and returns the new state.
func (s *Store) Dispatch(a Action) State {
	prev := s.state
	s.state = s.fill(a).Apply(prev)
	if s.onChange != nil {
		s.onChange(prev, s.state)
	}
	return s.state
}

func (s *Store) fill(a Action) Action {
	switch a := a.(type) {
	case AddStop:
		if a.ID == "" {
			a.ID = s.newID()
		}
		return a
	case AddNode:
		if a.ID == "" {
			a.ID = s.newID()
		}
		if a.Color == nil {
			c := colors.Random(s.rng)
			a.Color = &c
		}
		return a
	case Randomize:
		if a.StopColors == nil && a.NodeColors == nil {
			a.StopColors = s.randomColors(len(s.state.Spec.Stops))
			a.NodeColors = s.randomColors(len(s.state.Spec.Nodes))
			a.Angle = s.rng.IntN(360)
		}
		return a
	}
	return a
}

func (s *Store) randomColors(n int) []colors.Color {
	out := make([]colors.Color, n)
	for i := range out {
		out[i] = colors.Random(s.rng)
	}
	return out
}
