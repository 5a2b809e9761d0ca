// Package states implements the application state machine.
package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/noisecube/internal/logger"
)

// ID names a state.
type ID int

const (
	AwaitingAcknowledgement ID = iota
	Running
	Terminated
)

func (id ID) String() string {
	switch id {
	case AwaitingAcknowledgement:
		return "awaiting-acknowledgement"
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("state(%d)", int(id))
}

// State is one application state.
type State interface {
	ID() ID

	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame before Render.
	Update(dt float64) error

	// Render is called every frame to draw the state.
	Render() error
}

// allowed lists the legal transitions. Terminated is final.
var allowed = map[ID][]ID{
	AwaitingAcknowledgement: {Running, Terminated},
	Running:                 {Terminated},
}

// Manager owns the current state and applies scheduled changes at the start
// of the next Update.
type Manager struct {
	current State
	next    State

	terminated bool
}

// NewManager creates a state manager with no current state.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the current state.
func (m *Manager) Current() State {
	return m.current
}

// Change schedules a transition to next. The first change may target any
// state; later ones must follow the transition table.
func (m *Manager) Change(next State) error {
	if m.terminated {
		return fmt.Errorf("change to %s: already terminated", next.ID())
	}
	if m.current != nil && !canTransition(m.current.ID(), next.ID()) {
		return fmt.Errorf("invalid transition %s -> %s", m.current.ID(), next.ID())
	}
	m.next = next
	return nil
}

// Terminate moves to the terminated state immediately, running the current
// state's Exit hook. It is safe to call more than once.
func (m *Manager) Terminate() error {
	if m.terminated {
		return nil
	}
	m.terminated = true
	m.next = nil

	var err error
	if m.current != nil {
		logger.Info("state transition",
			zap.Stringer("from", m.current.ID()),
			zap.Stringer("to", Terminated))
		err = m.current.Exit()
	}
	m.current = terminatedState{}
	return err
}

// Terminated reports whether the machine has reached its final state.
func (m *Manager) Terminated() bool {
	return m.terminated
}

// Update applies a pending transition and updates the current state.
func (m *Manager) Update(dt float64) error {
	if m.next != nil {
		next := m.next
		m.next = nil

		if next.ID() == Terminated {
			return m.Terminate()
		}

		if m.current != nil {
			logger.Info("state transition",
				zap.Stringer("from", m.current.ID()),
				zap.Stringer("to", next.ID()))
			if err := m.current.Exit(); err != nil {
				return err
			}
		}
		m.current = next
		if err := m.current.Enter(); err != nil {
			return err
		}
	}

	if m.current != nil && !m.terminated {
		return m.current.Update(dt)
	}
	return nil
}

// Render renders the current state.
func (m *Manager) Render() error {
	if m.current != nil && !m.terminated {
		return m.current.Render()
	}
	return nil
}

func canTransition(from, to ID) bool {
	for _, id := range allowed[from] {
		if id == to {
			return true
		}
	}
	return false
}

type terminatedState struct{}

func (terminatedState) ID() ID               { return Terminated }
func (terminatedState) Enter() error         { return nil }
func (terminatedState) Exit() error          { return nil }
func (terminatedState) Update(float64) error { return nil }
func (terminatedState) Render() error        { return nil }
