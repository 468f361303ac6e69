package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

// LogstashWriter mirrors log output to a Logstash TCP input without ever
// blocking the caller: while Logstash is unreachable, writes are dropped and
// reconnection is attempted at most once per cooldown window.
type LogstashWriter struct {
	addr        string
	dialTimeout time.Duration
	writeDelay  time.Duration
	cooldown    time.Duration

	mu        sync.Mutex
	conn      net.Conn
	nextRetry time.Time
	closed    bool
}

func NewLogstashWriter(addr string) (*LogstashWriter, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	return &LogstashWriter{
		addr:        addr,
		dialTimeout: 2 * time.Second,
		writeDelay:  time.Second,
		cooldown:    5 * time.Second,
	}, nil
}

// Write implements io.Writer. Delivery is best effort: the reported length is
// always len(p) so the surrounding logger never treats a dropped line as an
// error.
func (w *LogstashWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	data := make([]byte, len(p))
	copy(data, p)
	if data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, io.ErrClosedPipe
	}
	if !w.connectLocked() {
		return len(p), nil
	}

	_ = w.conn.SetWriteDeadline(time.Now().Add(w.writeDelay))
	if _, err := w.conn.Write(data); err != nil {
		_ = w.conn.Close()
		w.conn = nil
		w.nextRetry = time.Now().Add(w.cooldown)
	}
	return len(p), nil
}

func (w *LogstashWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true
	if w.conn == nil {
		return nil
	}
	err := w.conn.Close()
	w.conn = nil
	return err
}

func (w *LogstashWriter) connectLocked() bool {
	if w.conn != nil {
		return true
	}
	if !w.nextRetry.IsZero() && time.Now().Before(w.nextRetry) {
		return false
	}
	conn, err := net.DialTimeout("tcp", w.addr, w.dialTimeout)
	if err != nil {
		w.nextRetry = time.Now().Add(w.cooldown)
		return false
	}
	w.conn = conn
	w.nextRetry = time.Time{}
	return true
}
