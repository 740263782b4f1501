package srarq

import (
	"context"
	"net"
	"time"
)

type connTransport struct {
	conn net.Conn
	buf  []byte
}

var _ Transport = &connTransport{}

// NewTransport uses a stream-oriented net.Conn as a Transport.
// Reads are at most Config.MaxMessageSize bytes large.
func NewTransport(conn net.Conn, conf *Config) Transport {
	conf = populateConfig(conf)
	return &connTransport{
		conn: conn,
		buf:  make([]byte, conf.MaxMessageSize),
	}
}

func (t *connTransport) Send(b []byte) error {
	_, err := t.conn.Write(b)
	return err
}

func (t *connTransport) Receive() ([]byte, error) {
	n, err := t.conn.Read(t.buf)
	if n > 0 {
		// data is returned even if the read also failed, the error is reported by the next call
		return t.buf[:n], nil
	}
	return nil, err
}

func (t *connTransport) SetReadDeadline(deadline time.Time) error {
	return t.conn.SetReadDeadline(deadline)
}

func (t *connTransport) Close() error         { return t.conn.Close() }
func (t *connTransport) LocalAddr() net.Addr  { return t.conn.LocalAddr() }
func (t *connTransport) RemoteAddr() net.Addr { return t.conn.RemoteAddr() }

// Dial establishes a TCP connection to addr.
// Connection establishment is bounded by ctx and by Config.HandshakeTimeout.
func Dial(ctx context.Context, addr string, conf *Config) (Transport, error) {
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	conf = populateConfig(conf)
	ctx, cancel := context.WithTimeout(ctx, conf.HandshakeTimeout)
	defer cancel()
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}
	return NewTransport(conn, conf), nil
}

// A Listener accepts TCP connections from senders.
type Listener struct {
	ln     *net.TCPListener
	config *Config
}

// Listen listens for TCP connections on addr.
// The socket is created with SO_REUSEADDR where the platform supports it.
func Listen(addr string, conf *Config) (*Listener, error) {
	if err := validateConfig(conf); err != nil {
		return nil, err
	}
	lc := net.ListenConfig{Control: setReuseAddr}
	ln, err := lc.Listen(context.Background(), "tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Listener{
		ln:     ln.(*net.TCPListener),
		config: populateConfig(conf),
	}, nil
}

// Accept returns the next connection.
// It returns ctx.Err() if ctx is done before a sender connects.
func (l *Listener) Accept(ctx context.Context) (Transport, error) {
	if err := l.ln.SetDeadline(time.Time{}); err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() {
		// unblock the pending Accept
		l.ln.SetDeadline(time.Unix(1, 0))
	})
	defer stop()
	conn, err := l.ln.Accept()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	return NewTransport(conn, l.config), nil
}

// Addr returns the local address of the listener.
func (l *Listener) Addr() net.Addr { return l.ln.Addr() }

// Close closes the listener.
// Sessions that were already accepted are not affected.
func (l *Listener) Close() error { return l.ln.Close() }
