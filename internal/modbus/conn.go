// internal/modbus/conn.go
package modbus

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// State is the lifecycle state of a Conn.
type State int32

const (
	// Connecting covers both the first attempt and every retry after a
	// detected loss.
	Connecting State = iota
	Connected
	Stopped
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("state(%d)", int32(s))
}

const (
	defaultConnectDelay  = time.Millisecond
	defaultRetryInterval = 5 * time.Second
	defaultProbeInterval = 2 * time.Second
	defaultTimeout       = time.Second
)

// Options configures one slave connection.
type Options struct {
	URL     string
	SlaveID int
	Timeout time.Duration // per protocol round-trip, default 1s

	// OnConnected fires once per successful (re)connection, OnDisconnected
	// once per detected loss, strictly alternating. Both run on the
	// connection's event loop and must not block.
	OnConnected    func()
	OnDisconnected func()

	// Timing knobs. Zero means the default.
	ConnectDelay  time.Duration // first connect attempt, default 1ms
	RetryInterval time.Duration // fixed reconnect backoff, default 5s
	ProbeInterval time.Duration // liveness watch period, default 2s

	// Driver overrides URL-based transport selection. Leave nil to pick
	// by scheme prefix.
	Driver Driver

	Logger *log.Logger // optional frame trace, passed to the transport
}

// Conn owns one slave connection: the transport handle, the lifecycle state,
// the reconnect timer and the liveness watch. Every transition runs on a
// single event-loop goroutine, and reads are serialized through it, so the
// retry timer is armed exactly while not connected and the watch runs exactly
// while connected, never both.
type Conn struct {
	opts   Options
	handle Handle
	state  atomic.Int32

	readC    chan readRequest
	stopC    chan struct{}
	doneC    chan struct{}
	stopOnce sync.Once
}

type readRequest struct {
	addr  uint16
	width Width
	resp  chan readReply
}

type readReply struct {
	val Value
	err error
}

// Start validates the URL, builds the transport handle with the slave id
// bound, and arms a near-immediate first connect attempt. It does not wait
// for the connection: establishment is asynchronous and reported through
// OnConnected. Configuration failures (bad URL, bad slave id) surface here
// and leave nothing running.
func Start(opts Options) (*Conn, error) {
	drv := opts.Driver
	if drv == nil {
		var err error
		drv, err = DriverForURL(opts.URL)
		if err != nil {
			return nil, err
		}
	}

	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.ConnectDelay <= 0 {
		opts.ConnectDelay = defaultConnectDelay
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = defaultRetryInterval
	}
	if opts.ProbeInterval <= 0 {
		opts.ProbeInterval = defaultProbeInterval
	}

	h, err := drv.Create(Params{
		URL:     opts.URL,
		SlaveID: opts.SlaveID,
		Timeout: opts.Timeout,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, err
	}

	c := &Conn{
		opts:   opts,
		handle: h,
		readC:  make(chan readRequest),
		stopC:  make(chan struct{}),
		doneC:  make(chan struct{}),
	}
	c.state.Store(int32(Connecting))

	go c.loop()

	return c, nil
}

// State reports the current lifecycle state.
func (c *Conn) State() State {
	return State(c.state.Load())
}

// Stop cancels whichever of the reconnect timer and the liveness watch is
// live, closes the transport and waits for the event loop to exit. No
// callback fires after Stop returns. Stopping twice is a no-op.
func (c *Conn) Stop() {
	c.stopOnce.Do(func() { close(c.stopC) })
	<-c.doneC
}

// Read performs one register read at the given width. An unknown width fails
// before reaching the transport. Transport failures surface here as errors
// but never drive the connection state: loss detection belongs to the
// liveness watch alone.
func (c *Conn) Read(addr uint16, width Width) (Value, error) {
	if !width.Valid() {
		return Value{}, fmt.Errorf("%w: %d", ErrInvalidWidth, width)
	}

	req := readRequest{addr: addr, width: width, resp: make(chan readReply, 1)}

	select {
	case c.readC <- req:
	case <-c.doneC:
		return Value{}, ErrStopped
	}

	select {
	case rep := <-req.resp:
		return rep.val, rep.err
	case <-c.doneC:
		return Value{}, ErrStopped
	}
}

// ---- event loop ----

func (c *Conn) loop() {
	defer close(c.doneC)

	retry := time.NewTimer(c.opts.ConnectDelay)
	defer retry.Stop()

	var watch *time.Ticker
	watchC := func() <-chan time.Time {
		if watch == nil {
			return nil
		}
		return watch.C
	}

	for {
		select {
		case <-c.stopC:
			if watch != nil {
				watch.Stop()
			}
			if err := c.handle.Close(); err != nil {
				log.Printf("modbus: close: %v", err)
			}
			c.state.Store(int32(Stopped))
			return

		case <-retry.C:
			log.Printf("modbus: trying to connect to %s", c.opts.URL)
			if err := c.handle.Connect(); err != nil {
				log.Printf("modbus: connect failed: %v", err)
				retry.Reset(c.opts.RetryInterval)
				continue
			}
			c.state.Store(int32(Connected))
			watch = time.NewTicker(c.opts.ProbeInterval)
			if cb := c.opts.OnConnected; cb != nil {
				cb()
			}

		case <-watchC():
			if err := c.handle.Ping(); err != nil {
				log.Printf("modbus: connection lost: %v", err)
				if err := c.handle.Close(); err != nil {
					log.Printf("modbus: close: %v", err)
				}
				if cb := c.opts.OnDisconnected; cb != nil {
					cb()
				}
				watch.Stop()
				watch = nil
				c.state.Store(int32(Connecting))
				retry.Reset(c.opts.RetryInterval)
			}

		case req := <-c.readC:
			if c.State() != Connected {
				req.resp <- readReply{err: ErrNotConnected}
				continue
			}
			val, err := readValue(c.handle, req.addr, req.width)
			req.resp <- readReply{val: val, err: err}
		}
	}
}
