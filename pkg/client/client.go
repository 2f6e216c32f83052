package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ra3zac/Siebenschraem/pkg/discovery"
	"github.com/ra3zac/Siebenschraem/pkg/log"
	"github.com/ra3zac/Siebenschraem/pkg/proto"
	"github.com/ra3zac/Siebenschraem/pkg/table"
)

const localServer = "localhost:8080"

type ServerType uint8

const (
	LocalServer ServerType = iota
	LanServer
)

// ServerTypeFromFlag maps a flag value to a ServerType.
func ServerTypeFromFlag(v string) (ServerType, error) {
	switch v {
	case "local":
		return LocalServer, nil
	case "lan":
		return LanServer, nil
	}
	return LocalServer, fmt.Errorf("server type %q must be one of [local lan]", v)
}

// ServerAddr resolves the host:port for the given server type.
func ServerAddr(stype ServerType) (string, error) {
	switch stype {
	case LocalServer:
		return localServer, nil
	case LanServer:
		locs, err := discovery.FindService(2 * time.Second)
		if err != nil {
			return "", err
		}
		if len(locs) == 0 {
			return "", errors.New("no server found on the LAN")
		}
		return locs[0], nil
	}
	return "", fmt.Errorf("server type %v not supported", stype)
}

// Connection is one websocket session at a table. It implements
// player.Controller so a terminal can drive a remote table.
type Connection struct {
	ws        *websocket.Conn
	tableId   string
	sessionId string

	mu sync.Mutex // Serializes writes
}

// Connect opens a session at the table with the given id, or at a new table when tableId is empty.
func Connect(ctx context.Context, addr, tableId string) (*Connection, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: "/ws"}
	if tableId != "" {
		u.RawQuery = url.Values{"table": {tableId}}.Encode()
	}
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", u.String(), err)
	}
	var joined proto.Message
	if err := ws.ReadJSON(&joined); err != nil {
		ws.Close()
		return nil, err
	}
	if joined.Type != proto.MsgJoined {
		ws.Close()
		return nil, fmt.Errorf("expected %s, got %s", proto.MsgJoined, joined.Type)
	}
	return &Connection{ws: ws, tableId: joined.Table, sessionId: joined.Session}, nil
}

func (c *Connection) TableId() string {
	return c.tableId
}
func (c *Connection) SessionId() string {
	return c.sessionId
}

func (c *Connection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ws.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return c.ws.Close()
}

// Listen hands every server message to d and p until the connection closes.
func (c *Connection) Listen(d table.Display, p table.Prompter) error {
	for {
		var m proto.Message
		if err := c.ws.ReadJSON(&m); err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return err
		}
		dispatch(&m, d, p)
	}
}

func dispatch(m *proto.Message, d table.Display, p table.Prompter) {
	switch m.Type {
	case proto.MsgState:
		if m.State != nil {
			d.Render(*m.State)
		}
	case proto.MsgNotice:
		d.Notify(m.Message, time.Duration(m.ClearAfterMs)*time.Millisecond)
	case proto.MsgClear:
		d.ClearNotice()
	case proto.MsgPrompt:
		switch m.Prompt {
		case proto.PromptMitgehen:
			if m.Klopfer != nil && m.Seat != nil {
				p.AskMitgehen(*m.Klopfer, *m.Seat)
			}
		case proto.PromptRestart:
			p.ConfirmRestart(m.Message)
		}
	case proto.MsgError:
		log.Warnf("server: %s", m.Message)
	default:
		log.Debugf("ignoring message %s", m.Type)
	}
}

func (c *Connection) send(a proto.Action) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ws.WriteJSON(a); err != nil {
		log.Errorf("send %s: %v", a.Type, err)
	}
}

func (c *Connection) PlayCard(seat, cardIndex int) {
	c.send(proto.PlayAction(seat, cardIndex))
}
func (c *Connection) Klopfen() {
	c.send(proto.KlopfenAction())
}
func (c *Connection) Mitgehen(seat int, join bool) {
	c.send(proto.MitgehenAction(seat, join))
}
func (c *Connection) ConfirmRestart(accept bool) {
	c.send(proto.RestartAction(accept))
}
func (c *Connection) Restart() {
	c.send(proto.NewGameAction())
}
