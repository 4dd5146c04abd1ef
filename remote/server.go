// This file is part of padreplay.
//
// padreplay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// padreplay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with padreplay.  If not, see <https://www.gnu.org/licenses/>.


package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jetsetilly/padreplay/control"
	"github.com/jetsetilly/padreplay/demo"
	"github.com/jetsetilly/padreplay/logger"
)

// DefaultInterval is the default period between progress polls.
const DefaultInterval = 50 * time.Millisecond

var upgrader = websocket.Upgrader{
	// the server is intended for use on a local network only
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client is a single websocket connection. writes to a websocket connection
// must not be concurrent so every write is made under the client's lock.
type client struct {
	crit sync.Mutex
	conn *websocket.Conn
}

func (c *client) write(data []byte) error {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Server accepts websocket connections and relays commands to the control
// surface.
type Server struct {
	srf *control.Surface
	lib *demo.Library

	crit    sync.RWMutex
	clients map[*client]bool
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(srf *control.Surface, lib *demo.Library) *Server {
	return &Server{
		srf:     srf,
		lib:     lib,
		clients: make(map[*client]bool),
	}
}

// ServeHTTP implements the http.Handler interface. The connection is upgraded
// to a websocket and the client is registered for progress broadcasts.
func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "remote", "upgrade: %v", err)
		return
	}

	c := &client{conn: conn}

	srv.crit.Lock()
	srv.clients[c] = true
	srv.crit.Unlock()

	logger.Logf(logger.Allow, "remote", "client connected: %s", conn.RemoteAddr())

	go srv.serve(c)
}

// serve commands from the client until the connection is closed.
func (srv *Server) serve(c *client) {
	defer func() {
		srv.crit.Lock()
		delete(srv.clients, c)
		srv.crit.Unlock()
		c.conn.Close()
		logger.Logf(logger.Allow, "remote", "client disconnected: %s", c.conn.RemoteAddr())
	}()

	for {
		typ, msg, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		if typ != websocket.TextMessage {
			continue
		}

		rep := srv.perform(string(msg))
		if !rep.OK {
			logger.Logf(logger.Allow, "remote", "%s: %s", rep.Command, rep.Error)
		}

		data, err := json.Marshal(rep)
		if err != nil {
			logger.Logf(logger.Allow, "remote", "marshal: %v", err)
			continue
		}

		if err := c.write(data); err != nil {
			return
		}
	}
}

// Broadcast the value as JSON to every connected client.
func (srv *Server) Broadcast(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logger.Logf(logger.Allow, "remote", "marshal: %v", err)
		return
	}

	srv.crit.RLock()
	defer srv.crit.RUnlock()

	for c := range srv.clients {
		if err := c.write(data); err != nil {
			// the client's serve goroutine will see the closed connection
			// and remove the client from the map
			c.conn.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (srv *Server) ClientCount() int {
	srv.crit.RLock()
	defer srv.crit.RUnlock()
	return len(srv.clients)
}

// Run polls the control surface for progress every interval and broadcasts
// any change to all clients. Run returns when the context is cancelled.
func (srv *Server) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	var last Progress

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p := newProgress(srv.srf.Progress())

			// the measured rate changes continually while running so it is
			// not considered when deciding whether the progress has changed
			cmp := p
			cmp.Measured = last.Measured
			if cmp == last {
				continue
			}

			last = p
			srv.Broadcast(p)
		}
	}
}
