package server

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/exp/maps"

	"github.com/ra3zac/Siebenschraem/pkg/game"
	"github.com/ra3zac/Siebenschraem/pkg/log"
	"github.com/ra3zac/Siebenschraem/pkg/proto"
	"github.com/ra3zac/Siebenschraem/pkg/table"
)

type Options struct {
	Table       table.Options
	IdleTimeout time.Duration
	// How often idle tables are looked for.
	GCInterval time.Duration
}

func NewTableService(opts Options) *TableService {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = time.Hour
	}
	if opts.GCInterval <= 0 {
		opts.GCInterval = time.Minute
	}
	s := &TableService{
		opts:   opts,
		tables: treemap.NewWithStringComparator(),
		quit:   make(chan struct{}),
	}
	s.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	s.startGarbageCollector()
	return s
}

// TableService hosts hot-seat tables for browsers connected over websockets.
type TableService struct {
	opts     Options
	upgrader websocket.Upgrader

	mu     sync.Mutex   // Mutex for all data below
	tables *treemap.Map // *tableSession keyed by table id
	quit   chan struct{}
	closed bool
}

// tableSession fans the table's display and prompts out to every attached connection.
type tableSession struct {
	table *table.Table

	mu    sync.Mutex
	conns map[string]*conn // Keyed by sessionId
}

func (s *TableService) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", rootHandler)
	mux.HandleFunc("/tables", s.listTablesHandler)
	mux.HandleFunc("/ws", s.wsHandler)
	return mux
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	fmt.Fprintf(w, "Welcome to the Schräm server.\n")
	fmt.Fprintf(w, "Open a websocket on /ws to start a table, or /ws?table=<id> to join one.\n")
}

func (s *TableService) listTablesHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.TableIds()); err != nil {
		log.Errorf("listTables: %v", err)
	}
}

// TableIds lists the open tables in id order.
func (s *TableService) TableIds() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, s.tables.Size())
	for _, k := range s.tables.Keys() {
		ids = append(ids, k.(string))
	}
	return ids
}

func (s *TableService) startGarbageCollector() {
	ticker := time.NewTicker(s.opts.GCInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case t := <-ticker.C:
				s.collectIdleTables(t)
			case <-s.quit:
				return
			}
		}
	}()
}

func (s *TableService) collectIdleTables(now time.Time) {
	s.mu.Lock()
	var idle []*tableSession
	s.tables.Each(func(_, v interface{}) {
		ts := v.(*tableSession)
		if now.Sub(ts.table.LastActivity()) > s.opts.IdleTimeout {
			idle = append(idle, ts)
		}
	})
	for _, ts := range idle {
		log.Infof("Removing table %s due to inactivity", ts.table.ID())
		s.tables.Remove(ts.table.ID())
	}
	s.mu.Unlock()
	for _, ts := range idle {
		ts.close()
	}
}

func (s *TableService) addTable() *tableSession {
	ts := &tableSession{conns: make(map[string]*conn)}
	opts := s.opts.Table
	opts.ID = uuid.NewString()
	ts.table = table.New(opts, ts, ts)
	s.mu.Lock()
	s.tables.Put(ts.table.ID(), ts)
	s.mu.Unlock()
	ts.table.Start()
	log.Infof("Added table %s", ts.table.ID())
	return ts
}

func (s *TableService) findTable(id string) (*tableSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, found := s.tables.Get(id)
	if !found {
		return nil, false
	}
	return v.(*tableSession), true
}

// Close stops the garbage collector and every table.
func (s *TableService) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.quit)
	var all []*tableSession
	for _, v := range s.tables.Values() {
		all = append(all, v.(*tableSession))
	}
	s.tables.Clear()
	s.mu.Unlock()
	for _, ts := range all {
		ts.close()
	}
}

func (s *TableService) wsHandler(w http.ResponseWriter, r *http.Request) {
	var ts *tableSession
	if id := r.URL.Query().Get("table"); id != "" {
		var found bool
		if ts, found = s.findTable(id); !found {
			http.Error(w, fmt.Sprintf("table %s not found", id), http.StatusNotFound)
			return
		}
	}
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("upgrade: %v", err)
		return
	}
	if ts == nil {
		ts = s.addTable()
	}
	c := newConn(ws)
	ts.attach(c)
	defer ts.detach(c)

	go c.writeWork()
	c.sendMessage(&proto.Message{Type: proto.MsgJoined, Table: ts.table.ID(), Session: c.id})
	ts.table.Refresh()

	for {
		var a proto.Action
		if err := ws.ReadJSON(&a); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithField("session", c.id).Debugf("read: %v", err)
			}
			return
		}
		if err := ts.handleAction(a); err != nil {
			c.sendMessage(&proto.Message{Type: proto.MsgError, Message: err.Error()})
		}
	}
}

func (ts *tableSession) attach(c *conn) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.conns[c.id] = c
	log.WithField("table", ts.table.ID()).Infof("Session %s attached", c.id)
}

func (ts *tableSession) detach(c *conn) {
	ts.mu.Lock()
	delete(ts.conns, c.id)
	ts.mu.Unlock()
	c.close()
	log.WithField("table", ts.table.ID()).Infof("Session %s detached", c.id)
}

func (ts *tableSession) close() {
	ts.table.Close()
	ts.mu.Lock()
	conns := maps.Values(ts.conns)
	ts.conns = make(map[string]*conn)
	ts.mu.Unlock()
	for _, c := range conns {
		c.close()
	}
}

func (ts *tableSession) handleAction(a proto.Action) error {
	switch a.Type {
	case proto.ActionPlay:
		ts.table.PlayCard(a.Seat, a.Card)
	case proto.ActionKlopfen:
		ts.table.Klopfen()
	case proto.ActionMitgehen:
		ts.table.Mitgehen(a.Seat, a.Join)
	case proto.ActionRestart:
		ts.table.ConfirmRestart(a.Accept)
	case proto.ActionNewGame:
		ts.table.Restart()
	default:
		return fmt.Errorf("unknown action %q", a.Type)
	}
	return nil
}

func (ts *tableSession) broadcast(m *proto.Message) {
	data, err := json.Marshal(m)
	if err != nil {
		log.Errorf("marshal %s: %v", m.Type, err)
		return
	}
	ts.mu.Lock()
	defer ts.mu.Unlock()
	for _, c := range ts.conns {
		c.send(data)
	}
}

// table.Display and table.Prompter

func (ts *tableSession) Render(s game.Snapshot) {
	ts.broadcast(&proto.Message{Type: proto.MsgState, State: &s})
}
func (ts *tableSession) Notify(msg string, clearAfter time.Duration) {
	ts.broadcast(&proto.Message{Type: proto.MsgNotice, Message: msg, ClearAfterMs: clearAfter.Milliseconds()})
}
func (ts *tableSession) ClearNotice() {
	ts.broadcast(&proto.Message{Type: proto.MsgClear})
}
func (ts *tableSession) AskMitgehen(klopfer, seat int) {
	ts.broadcast(&proto.Message{
		Type:    proto.MsgPrompt,
		Prompt:  proto.PromptMitgehen,
		Message: game.MsgMitgehenPrompt(klopfer, seat),
		Klopfer: &klopfer,
		Seat:    &seat,
	})
}
func (ts *tableSession) ConfirmRestart(msg string) {
	ts.broadcast(&proto.Message{Type: proto.MsgPrompt, Prompt: proto.PromptRestart, Message: msg})
}

// GetOutboundIP returns the local address used to reach the outside,
// suitable for advertising on the LAN.
func GetOutboundIP() net.IP {
	c, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return net.IPv4(127, 0, 0, 1)
	}
	defer c.Close()
	return c.LocalAddr().(*net.UDPAddr).IP
}
