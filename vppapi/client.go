// Copyright (c) 2017 Cisco and/or its affiliates.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vppapi

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vishvananda/netlink"
	"go.fd.io/govpp/api"

	"github.com/fdio-stack/go-vpp/binapi/interfaces"
	"github.com/fdio-stack/go-vpp/binapi/vpe"
	"github.com/fdio-stack/go-vpp/core"
)

// DefaultRequestTimeout bounds the wait for one reply.
var DefaultRequestTimeout = time.Second * 3

var (
	debug = strings.Contains(os.Getenv("DEBUG_GOVPP"), "vppapi")

	log logrus.FieldLogger
)

// SetLogger sets global logger.
func SetLogger(logger logrus.FieldLogger) {
	log = logger
}

func init() {
	logger := logrus.New()
	if debug {
		logger.Level = logrus.DebugLevel
		logger.Debug("govpp: debug level enabled for vppapi")
	}
	log = logger.WithField("logger", "govpp/vppapi")
}

var (
	// ErrNonZeroRetval matches every ReplyError.
	ErrNonZeroRetval = errors.New("non-zero retval")
	// ErrUnknownInterface is returned for a host interface the client has
	// not created.
	ErrUnknownInterface = errors.New("unknown interface")
	// ErrUnknownBridge is returned for a bridge the client has not created.
	ErrUnknownBridge = errors.New("unknown bridge domain")
)

// ReplyError is a reply whose Retval is not zero.
type ReplyError struct {
	Kind   string
	Retval int32
}

func (e *ReplyError) Error() string {
	return fmt.Sprintf("%s: retval %d", e.Kind, e.Retval)
}

func (e *ReplyError) Is(target error) bool {
	return target == ErrNonZeroRetval
}

// Option configures a Client.
type Option func(*Client)

// WithSink sets the consumer receiving every delivery after the client
// has processed it. Counter batches are handed over and must be released
// by the sink.
func WithSink(s core.Sink) Option {
	return func(c *Client) { c.sink = s }
}

// WithRequestTimeout sets how long a request waits for its reply.
func WithRequestTimeout(d time.Duration) Option {
	return func(c *Client) { c.requestTimeout = d }
}

// WithConnectionOptions passes options to the underlying connection.
func WithConnectionOptions(opts ...core.Option) Option {
	return func(c *Client) { c.connOpts = append(c.connOpts, opts...) }
}

// Interface is the client's record of an interface it manages.
type Interface struct {
	Name      string
	SwIfIndex uint32
	AdminUp   bool
	Address   string
}

// Bridge is the client's record of a bridge domain it created.
type Bridge struct {
	Name         string
	ID           uint32
	HasInterface bool
}

// Client issues requests over a core connection and waits for their
// replies by context token. It is the connection's Sink and forwards
// every delivery to its own sink.
type Client struct {
	conn           *core.Connection
	sink           core.Sink
	requestTimeout time.Duration
	connOpts       []core.Option

	waitMu  sync.Mutex
	waiters map[uint32]*waiter

	mu         sync.RWMutex
	interfaces map[string]*Interface
	bridges    map[string]*Bridge
	nextBdID   uint32

	linkByName func(name string) (netlink.Link, error)
}

type waiter struct {
	stream  bool
	details []api.Message
	done    chan result
}

type result struct {
	reply   *core.Reply
	details []api.Message
}

// NewClient builds a client with the full message catalog over t.
func NewClient(t core.Transport, opts ...Option) (*Client, error) {
	c := &Client{
		sink:           core.NopSink{},
		requestTimeout: DefaultRequestTimeout,
		waiters:        make(map[uint32]*waiter),
		interfaces:     make(map[string]*Interface),
		bridges:        make(map[string]*Bridge),
		nextBdID:       1,
		linkByName:     netlink.LinkByName,
	}
	for _, o := range opts {
		o(c)
	}

	conn, err := core.NewConnection(t, c, Catalog(), c.connOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return c, nil
}

// Connection returns the underlying connection.
func (c *Client) Connection() *core.Connection {
	return c.conn
}

// Connect opens the session and resolves plugin namespaces.
func (c *Client) Connect(ctx context.Context) error {
	return c.conn.Connect(ctx)
}

// Disconnect closes the session. Requests still waiting for a reply fail
// with core.ErrNotConnected.
func (c *Client) Disconnect() error {
	err := c.conn.Disconnect()
	c.failWaiters()
	return err
}

// Stats returns the connection's dispatch counters.
func (c *Client) Stats() core.Stats {
	return c.conn.Stats()
}

func (c *Client) Connected(info core.SessionInfo) {
	log.WithFields(logrus.Fields{
		"clientIndex": info.ClientIndex,
		"plugins":     len(info.Bases),
	}).Info("connected to VPP")
	c.sink.Connected(info)
}

func (c *Client) SimpleReply(r *core.Reply) {
	if d, ok := r.Message.(*interfaces.SwInterfaceDetails); ok {
		c.noteInterface(d)
	}

	c.waitMu.Lock()
	w, ok := c.waiters[r.Context]
	if ok && w.stream && r.Kind != controlPingReply {
		w.details = append(w.details, r.Message)
		c.waitMu.Unlock()
		c.sink.SimpleReply(r)
		return
	}
	if ok {
		delete(c.waiters, r.Context)
	}
	c.waitMu.Unlock()

	if ok {
		w.done <- result{reply: r, details: w.details}
	} else if debug {
		log.WithFields(logrus.Fields{
			"kind":    r.Kind,
			"context": r.Context,
		}).Debug("no waiter for reply")
	}
	c.sink.SimpleReply(r)
}

func (c *Client) RecordBatch(b *core.RecordBatch) {
	c.sink.RecordBatch(b)
}

func (c *Client) Event(e *core.Event) {
	if m, ok := e.Message.(*interfaces.SwInterfaceSetFlags); ok {
		c.noteAdminState(m.SwIfIndex, m.AdminUpDown)
	}
	c.sink.Event(e)
}

var controlPingReply = (&vpe.ControlPingReply{}).GetMessageName()

func (c *Client) addWaiter(token uint32, w *waiter) {
	c.waitMu.Lock()
	c.waiters[token] = w
	c.waitMu.Unlock()
}

func (c *Client) removeWaiter(token uint32) {
	c.waitMu.Lock()
	delete(c.waiters, token)
	c.waitMu.Unlock()
}

func (c *Client) failWaiters() {
	c.waitMu.Lock()
	defer c.waitMu.Unlock()
	for token, w := range c.waiters {
		close(w.done)
		delete(c.waiters, token)
	}
}

// do sends req under a fresh context token and waits for the reply
// carrying it. A stream request is followed by a control ping with the
// same token; replies before the ping reply are collected as details.
func (c *Client) do(ctx context.Context, req api.Message, stream bool) (*result, error) {
	token := c.conn.Session().NextContext()
	w := &waiter{stream: stream, done: make(chan result, 1)}
	c.addWaiter(token, w)
	defer c.removeWaiter(token)

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	if err := c.conn.SendContext(ctx, req, token); err != nil {
		return nil, err
	}
	if stream {
		if err := c.conn.SendContext(ctx, &vpe.ControlPing{}, token); err != nil {
			return nil, err
		}
	}

	select {
	case res, ok := <-w.done:
		if !ok {
			return nil, fmt.Errorf("%s: %w", req.GetMessageName(), core.ErrNotConnected)
		}
		if res.reply.Retval != 0 {
			return nil, &ReplyError{Kind: res.reply.Kind, Retval: res.reply.Retval}
		}
		return &res, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", req.GetMessageName(), ctx.Err())
	}
}

func (c *Client) request(ctx context.Context, req api.Message) (api.Message, error) {
	res, err := c.do(ctx, req, false)
	if err != nil {
		return nil, err
	}
	return res.reply.Message, nil
}

// Interface returns the record of a managed interface.
func (c *Client) Interface(name string) (Interface, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.interfaces[name]
	if !ok {
		return Interface{}, false
	}
	return *i, true
}

// Interfaces returns the records of all managed interfaces.
func (c *Client) Interfaces() []Interface {
	c.mu.RLock()
	defer c.mu.RUnlock()
	list := make([]Interface, 0, len(c.interfaces))
	for _, i := range c.interfaces {
		list = append(list, *i)
	}
	return list
}

// Bridge returns the record of a bridge domain created by the client.
func (c *Client) Bridge(name string) (Bridge, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.bridges[name]
	if !ok {
		return Bridge{}, false
	}
	return *b, true
}

func (c *Client) lookupInterface(name string) (Interface, error) {
	i, ok := c.Interface(name)
	if !ok {
		return Interface{}, fmt.Errorf("%w: %s", ErrUnknownInterface, name)
	}
	return i, nil
}

func (c *Client) noteInterface(d *interfaces.SwInterfaceDetails) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i, ok := c.interfaces[d.InterfaceName]
	if !ok {
		i = &Interface{Name: d.InterfaceName}
		c.interfaces[d.InterfaceName] = i
	}
	i.SwIfIndex = d.SwIfIndex
	i.AdminUp = d.AdminUpDown
}

func (c *Client) noteAdminState(swIfIndex uint32, up bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, i := range c.interfaces {
		if i.SwIfIndex == swIfIndex {
			i.AdminUp = up
		}
	}
}
