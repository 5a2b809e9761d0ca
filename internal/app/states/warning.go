package states

import (
	"github.com/Faultbox/noisecube/internal/logger"
)

var warningText = []string{
	"This program shows rapidly changing colors",
	"that may trigger seizures in people with",
	"photosensitive epilepsy.",
	"",
	"Press Enter or Space to continue.",
	"Press Escape to quit.",
}

// WarningState shows the flashing-colors warning until the user acknowledges
// or declines it.
type WarningState struct {
	manager *Manager
	screen  Screen
	input   Input
	running State
}

// NewWarningState creates the warning state. running is entered once the
// warning is acknowledged.
func NewWarningState(manager *Manager, screen Screen, input Input, running State) *WarningState {
	return &WarningState{
		manager: manager,
		screen:  screen,
		input:   input,
		running: running,
	}
}

func (s *WarningState) ID() ID { return AwaitingAcknowledgement }

// Enter is called when entering this state.
func (s *WarningState) Enter() error {
	logger.Info("showing content warning")
	return nil
}

// Exit is called when leaving this state.
func (s *WarningState) Exit() error {
	return nil
}

// Update checks for acknowledgement.
func (s *WarningState) Update(dt float64) error {
	switch {
	case s.input.Pressed(KeyEnter), s.input.Pressed(KeySpace):
		logger.Info("content warning acknowledged")
		return s.manager.Change(s.running)
	case s.input.Pressed(KeyEscape):
		logger.Info("content warning declined")
		return s.manager.Change(terminatedState{})
	}
	return nil
}

// Render draws the warning box.
func (s *WarningState) Render() error {
	s.screen.Message("Warning", warningText)
	return nil
}
