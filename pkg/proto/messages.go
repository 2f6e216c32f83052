// Package proto defines the JSON messages exchanged over the table websocket.
package proto

import "github.com/ra3zac/Siebenschraem/pkg/game"

// Action types sent by clients.
const (
	ActionPlay     = "play"
	ActionKlopfen  = "klopfen"
	ActionMitgehen = "mitgehen"
	ActionRestart  = "restart"
	ActionNewGame  = "new"
)

// Action is one client input. Only the fields of its type are read.
type Action struct {
	Type   string `json:"type"`
	Seat   int    `json:"seat"`
	Card   int    `json:"card"`
	Join   bool   `json:"join"`
	Accept bool   `json:"accept"`
}

func PlayAction(seat, cardIndex int) Action {
	return Action{Type: ActionPlay, Seat: seat, Card: cardIndex}
}
func KlopfenAction() Action {
	return Action{Type: ActionKlopfen}
}
func MitgehenAction(seat int, join bool) Action {
	return Action{Type: ActionMitgehen, Seat: seat, Join: join}
}
func RestartAction(accept bool) Action {
	return Action{Type: ActionRestart, Accept: accept}
}
func NewGameAction() Action {
	return Action{Type: ActionNewGame}
}

// Message types sent by the server.
const (
	MsgJoined = "joined"
	MsgState  = "state"
	MsgNotice = "notice"
	MsgClear  = "clear"
	MsgPrompt = "prompt"
	MsgError  = "error"

	PromptMitgehen = "mitgehen"
	PromptRestart  = "restart"
)

type Message struct {
	Type         string         `json:"type"`
	Table        string         `json:"table,omitempty"`
	Session      string         `json:"session,omitempty"`
	State        *game.Snapshot `json:"state,omitempty"`
	Message      string         `json:"message,omitempty"`
	ClearAfterMs int64          `json:"clearAfterMs,omitempty"`
	Prompt       string         `json:"prompt,omitempty"`
	Klopfer      *int           `json:"klopfer,omitempty"`
	Seat         *int           `json:"seat,omitempty"`
}
