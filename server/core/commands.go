package core

import (
	"github.com/automoto/gggames/shared/gameconfig"
	"github.com/automoto/gggames/shared/messages"
)

// command is a world mutation queued by a router callback and applied on
// the loop goroutine.
type command interface {
	apply(s *Server)
}

type joinCommand struct {
	clientID string
	req      messages.JoinRequest
}

func (c joinCommand) apply(s *Server) { s.join(c.clientID, c.req) }

type leaveCommand struct {
	clientID string
}

func (c leaveCommand) apply(s *Server) { s.leave(c.clientID) }

type inputCommand struct {
	clientID string
	input    messages.PlayerInput
}

func (c inputCommand) apply(s *Server) {
	p, ok := s.players[c.clientID]
	if !ok || c.input.Sequence <= p.LastInputSeq {
		return
	}
	p.Input = c.input
	p.LastInputSeq = c.input.Sequence
}

type requestCommand struct {
	clientID string
	req      messages.ActionRequest
}

func (c requestCommand) apply(s *Server) { s.handleRequest(c.clientID, c.req) }

type tuningCommand struct {
	character gameconfig.CharacterSettings
}

func (c tuningCommand) apply(s *Server) { s.applyTuning(c.character) }

func (s *Server) enqueue(cmd command) {
	s.cmdMu.Lock()
	s.commands = append(s.commands, cmd)
	s.cmdMu.Unlock()
}

// ProcessCommands applies every queued command in arrival order.
func (s *Server) ProcessCommands() {
	s.cmdMu.Lock()
	pending := s.commands
	s.commands = nil
	s.cmdMu.Unlock()

	for _, cmd := range pending {
		cmd.apply(s)
	}
}
