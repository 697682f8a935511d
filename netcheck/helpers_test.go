// SPDX-License-Identifier: GPL-3.0-or-later

package netcheck

import (
	"context"
	"crypto/tls"
	"log/slog"
	"net"
	"sync"

	"github.com/bassosimone/netstub"
	"github.com/bassosimone/slogstub"
	"github.com/bassosimone/tlsstub"
)

// newMinimalConn returns a connection stub with only the address methods.
func newMinimalConn() *netstub.FuncConn {
	return &netstub.FuncConn{
		LocalAddrFunc:  func() net.Addr { return &net.TCPAddr{} },
		RemoteAddrFunc: func() net.Addr { return &net.TCPAddr{} },
	}
}

// eventLog collects the messages of the emitted log records.
type eventLog struct {
	mu      sync.Mutex
	records []slog.Record
}

// newEventLogger returns a logger recording into the returned [*eventLog].
func newEventLogger() (*slog.Logger, *eventLog) {
	events := &eventLog{}
	handler := &slogstub.FuncHandler{
		EnabledFunc: func(ctx context.Context, level slog.Level) bool {
			return true
		},
		HandleFunc: func(ctx context.Context, record slog.Record) error {
			events.mu.Lock()
			events.records = append(events.records, record)
			events.mu.Unlock()
			return nil
		},
	}
	return slog.New(handler), events
}

// messages returns the messages of the records at or above level.
func (el *eventLog) messages(level slog.Level) []string {
	el.mu.Lock()
	defer el.mu.Unlock()
	var out []string
	for _, record := range el.records {
		if record.Level >= level {
			out = append(out, record.Message)
		}
	}
	return out
}

// find returns the first record with the given message.
func (el *eventLog) find(message string) (slog.Record, bool) {
	el.mu.Lock()
	defer el.mu.Unlock()
	for _, record := range el.records {
		if record.Message == message {
			return record, true
		}
	}
	return slog.Record{}, false
}

// attr returns the value of the attribute named key.
func attr(record slog.Record, key string) slog.Value {
	var value slog.Value
	record.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			value = a.Value
			return false
		}
		return true
	})
	return value
}

// newMockTLSEngine returns an engine whose Client always returns conn.
func newMockTLSEngine(conn TLSConn) *tlsstub.FuncTLSEngine[TLSConn] {
	return &tlsstub.FuncTLSEngine[TLSConn]{
		ClientFunc: func(c net.Conn, config *tls.Config) TLSConn {
			return conn
		},
		NameFunc: func() string {
			return "mock"
		},
		ParrotFunc: func() string {
			return ""
		},
	}
}
