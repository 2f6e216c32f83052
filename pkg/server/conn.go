package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ra3zac/Siebenschraem/pkg/log"
	"github.com/ra3zac/Siebenschraem/pkg/proto"
)

const (
	sendBuffer   = 32
	writeTimeout = 10 * time.Second
)

type conn struct {
	id       string
	ws       *websocket.Conn
	chWrite  chan []byte
	chClosed chan struct{}
	once     sync.Once
}

func newConn(ws *websocket.Conn) *conn {
	return &conn{
		id:       uuid.NewString(),
		ws:       ws,
		chWrite:  make(chan []byte, sendBuffer),
		chClosed: make(chan struct{}),
	}
}

// send queues data without blocking the table loop. Slow readers lose messages.
func (c *conn) send(data []byte) {
	select {
	case <-c.chClosed:
	case c.chWrite <- data:
	default:
		log.WithField("session", c.id).Warn("send buffer full, message dropped")
	}
}

func (c *conn) sendMessage(m *proto.Message) {
	data, err := json.Marshal(m)
	if err != nil {
		log.Errorf("marshal %s: %v", m.Type, err)
		return
	}
	c.send(data)
}

func (c *conn) writeWork() {
	defer c.ws.Close()
	for {
		select {
		case <-c.chClosed:
			c.ws.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			return
		case data := <-c.chWrite:
			c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
				log.WithField("session", c.id).Debugf("write: %v", err)
				c.close()
				return
			}
		}
	}
}

func (c *conn) close() {
	c.once.Do(func() { close(c.chClosed) })
}
