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

package core

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"go.fd.io/govpp/adapter"
	"go.fd.io/govpp/api"
	"go.fd.io/govpp/codec"

	"github.com/fdio-stack/go-vpp/binapi/vpe"
)

var (
	// DefaultResolveTimeout bounds one plugin lookup round-trip.
	DefaultResolveTimeout = time.Second * 3
)

var (
	debug = strings.Contains(os.Getenv("DEBUG_GOVPP"), "core")

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
		logger.Debug("govpp: debug level enabled for core")
	}
	log = logger.WithField("logger", "govpp/core")
}

// Transport is the channel carrying raw messages to and from the engine.
// SendMsg takes fully framed bytes; the callback is invoked once per
// inbound message, one at a time, with bytes owned by the callee.
type Transport interface {
	Connect() error
	Disconnect() error
	ClientIndex() uint32
	SendMsg(data []byte) error
	SetMsgCallback(cb adapter.MsgCallback)
}

// MessageSpec is one catalog entry.
type MessageSpec struct {
	Message api.Message
	// ID is the static wire identifier, or the offset within Plugin's range.
	ID uint16
	// Plugin names the plugin owning a plugin-relative kind.
	Plugin string
	// Handler is invoked for inbound messages of this kind.
	Handler HandlerFunc
	// NoOp marks a kind that is recognised but ignored on receipt.
	NoOp bool
}

// Option configures a Connection.
type Option func(*Connection)

// WithResolveTimeout sets the timeout of one plugin lookup.
func WithResolveTimeout(d time.Duration) Option {
	return func(c *Connection) { c.resolveTimeout = d }
}

// WithClientName sets the name announced to the engine when the transport
// supports it.
func WithClientName(name string) Option {
	return func(c *Connection) { c.clientName = name }
}

// WithClock sets the clock used to timestamp inbound messages.
func WithClock(now func() time.Time) Option {
	return func(c *Connection) { c.now = now }
}

// WithEagerResolution controls whether Connect resolves every registered
// plugin before reporting ready. It is enabled by default.
func WithEagerResolution(eager bool) Option {
	return func(c *Connection) { c.eager = eager }
}

// Connection ties a transport to the registry, dispatch table and session.
type Connection struct {
	transport Transport
	sink      Sink
	registry  *Registry
	table     *DispatchTable
	session   *Session

	plugins map[string][]MessageSpec

	resolveTimeout time.Duration
	clientName     string
	now            func() time.Time
	eager          bool

	resolveGroup singleflight.Group

	// bindMu serializes plugin binding against teardown.
	bindMu sync.Mutex

	lookupMu sync.Mutex
	lookups  map[uint32]chan *vpe.GetFirstMsgIDReply

	readyMu sync.Mutex
	ready   chan struct{}

	stats counters
}

// NewConnection builds the registry and dispatch table from specs. It fails
// when two specs share a kind or an identifier.
func NewConnection(t Transport, sink Sink, specs []MessageSpec, opts ...Option) (*Connection, error) {
	if sink == nil {
		sink = NopSink{}
	}
	c := &Connection{
		transport:      t,
		sink:           sink,
		registry:       NewRegistry(),
		table:          NewDispatchTable(),
		session:        newSession(),
		plugins:        make(map[string][]MessageSpec),
		resolveTimeout: DefaultResolveTimeout,
		now:            time.Now,
		eager:          true,
		lookups:        make(map[uint32]chan *vpe.GetFirstMsgIDReply),
		ready:          make(chan struct{}),
	}
	for _, o := range opts {
		o(c)
	}

	for _, spec := range specs {
		if err := c.register(spec); err != nil {
			return nil, err
		}
	}

	t.SetMsgCallback(c.onRawMessage)
	return c, nil
}

func (c *Connection) register(spec MessageSpec) error {
	h := spec.Handler
	if spec.NoOp {
		h = nil
	} else if h == nil {
		return fmt.Errorf("register %s: no handler", spec.Message.GetMessageName())
	}
	if spec.Plugin != "" {
		if err := c.registry.RegisterPluginRelative(spec.Message, spec.Plugin, spec.ID); err != nil {
			return err
		}
		spec.Handler = h
		c.plugins[spec.Plugin] = append(c.plugins[spec.Plugin], spec)
		return nil
	}
	if err := c.registry.RegisterStatic(spec.Message, spec.ID); err != nil {
		return err
	}
	return c.table.Register(spec.ID, spec.Message, h)
}

// Registry returns the connection's registry.
func (c *Connection) Registry() *Registry {
	return c.registry
}

// Session returns the connection's session.
func (c *Connection) Session() *Session {
	return c.session
}

// Ready returns a channel closed once Connect has completed.
func (c *Connection) Ready() <-chan struct{} {
	c.readyMu.Lock()
	defer c.readyMu.Unlock()
	return c.ready
}

func (c *Connection) markReady() {
	c.readyMu.Lock()
	defer c.readyMu.Unlock()
	select {
	case <-c.ready:
	default:
		close(c.ready)
	}
}

func (c *Connection) resetReady() {
	c.readyMu.Lock()
	defer c.readyMu.Unlock()
	select {
	case <-c.ready:
		c.ready = make(chan struct{})
	default:
	}
}

// Connect performs the transport handshake, opens the session and, unless
// disabled, resolves every registered plugin. Plugins unknown to the
// engine are left unresolved; a lookup timeout fails Connect.
func (c *Connection) Connect(ctx context.Context) error {
	if c.session.Connected() {
		return nil
	}
	if named, ok := c.transport.(interface{ SetClientName(string) }); ok && c.clientName != "" {
		named.SetClientName(c.clientName)
	}
	if err := c.transport.Connect(); err != nil {
		return fmt.Errorf("transport connect: %w", err)
	}
	c.session.open(c.transport.ClientIndex())

	log.WithFields(logrus.Fields{
		"clientIndex": c.session.ClientIndex(),
		"kinds":       c.table.Len(),
	}).Debug("session opened")

	if c.eager {
		for _, plugin := range c.registry.Plugins() {
			base, err := c.ResolvePluginBase(ctx, plugin)
			if errors.Is(err, ErrPluginNotFound) {
				log.Warnf("plugin %s not available: %v", plugin, err)
				continue
			} else if err != nil {
				c.teardown()
				return err
			}
			log.Debugf("plugin %s resolved to base %d", plugin, base)
		}
	}

	c.markReady()
	c.sink.Connected(c.session.Info())
	return nil
}

// Disconnect closes the transport, fails pending lookups and clears the
// session.
func (c *Connection) Disconnect() error {
	if !c.session.Connected() {
		return nil
	}
	return c.teardown()
}

func (c *Connection) teardown() error {
	err := c.transport.Disconnect()

	c.lookupMu.Lock()
	for token, ch := range c.lookups {
		delete(c.lookups, token)
		close(ch)
	}
	c.lookupMu.Unlock()

	c.bindMu.Lock()
	for plugin := range c.plugins {
		c.table.unbindPlugin(plugin)
	}
	c.session.close()
	c.bindMu.Unlock()
	c.resetReady()
	return err
}

// ResolvePluginBase returns the first message id of plugin, performing the
// lookup round-trip only on first use per session. Concurrent callers for
// the same plugin share one round-trip, bounded by the resolve timeout
// only; ctx limits how long this caller waits for it. A plugin the engine
// does not know fails with ErrPluginNotFound and is not cached.
func (c *Connection) ResolvePluginBase(ctx context.Context, plugin string) (uint16, error) {
	if base, ok := c.session.Base(plugin); ok {
		return base, nil
	}
	if !c.session.Connected() {
		return 0, ErrNotConnected
	}
	ch := c.resolveGroup.DoChan(plugin, func() (interface{}, error) {
		if base, ok := c.session.Base(plugin); ok {
			return base, nil
		}
		return c.lookupPluginBase(plugin)
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(uint16), nil
	case <-ctx.Done():
		return 0, fmt.Errorf("resolve %s: %w", plugin, ctx.Err())
	}
}

func (c *Connection) lookupPluginBase(plugin string) (uint16, error) {
	epoch := c.session.currentEpoch()
	req := &vpe.GetFirstMsgID{Name: plugin}
	reqID, err := c.registry.WireIDFor(c.session, req.GetMessageName())
	if err != nil {
		return 0, fmt.Errorf("resolve %s: %w", plugin, err)
	}

	token := c.session.NextContext()
	ch := make(chan *vpe.GetFirstMsgIDReply, 1)
	c.lookupMu.Lock()
	c.lookups[token] = ch
	c.lookupMu.Unlock()
	defer func() {
		c.lookupMu.Lock()
		delete(c.lookups, token)
		c.lookupMu.Unlock()
	}()

	if err := c.send(req, reqID, token); err != nil {
		return 0, fmt.Errorf("resolve %s: %w", plugin, err)
	}

	timer := time.NewTimer(c.resolveTimeout)
	defer timer.Stop()

	select {
	case reply, ok := <-ch:
		if !ok {
			return 0, fmt.Errorf("resolve %s: %w", plugin, ErrNotConnected)
		}
		if reply.Retval != 0 || reply.FirstMsgID == 0 || reply.FirstMsgID == 0xFFFF {
			return 0, fmt.Errorf("%w: %s (retval %d)", ErrPluginNotFound, plugin, reply.Retval)
		}
		return c.commitBase(plugin, reply.FirstMsgID, epoch)
	case <-timer.C:
		return 0, fmt.Errorf("%w: %s after %v", ErrNamespaceResolutionTimeout, plugin, c.resolveTimeout)
	}
}

// commitBase binds plugin at base and records it in the session, unless the
// session opened in epoch has been torn down meanwhile.
func (c *Connection) commitBase(plugin string, base uint16, epoch uint64) (uint16, error) {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()

	if !c.session.openIn(epoch) {
		return 0, fmt.Errorf("resolve %s: %w", plugin, ErrNotConnected)
	}
	if err := c.bindPlugin(plugin, base); err != nil {
		return 0, err
	}
	c.session.setBase(plugin, base)
	return base, nil
}

func (c *Connection) bindPlugin(plugin string, base uint16) error {
	for _, spec := range c.plugins[plugin] {
		if err := c.table.register(base+spec.ID, spec.Message, plugin, spec.Handler); err != nil {
			c.table.unbindPlugin(plugin)
			return fmt.Errorf("bind plugin %s at %d: %w", plugin, base, err)
		}
	}
	return nil
}

// HandleFirstMsgIDReply completes the plugin lookup awaiting the reply's
// context. Register it for the get_first_msg_id_reply kind.
func HandleFirstMsgIDReply(in *Inbound) error {
	reply, ok := in.Message.(*vpe.GetFirstMsgIDReply)
	if !ok {
		return fmt.Errorf("unexpected message %T", in.Message)
	}
	if in.conn == nil {
		return nil
	}
	c := in.conn
	c.lookupMu.Lock()
	ch, ok := c.lookups[in.Context]
	delete(c.lookups, in.Context)
	c.lookupMu.Unlock()
	if !ok {
		log.Debugf("dropping get_first_msg_id_reply for context %d", in.Context)
		return nil
	}
	ch <- reply
	return nil
}

// WireIDFor returns the wire identifier of kind without any round-trip.
func (c *Connection) WireIDFor(kind string) (uint16, error) {
	return c.registry.WireIDFor(c.session, kind)
}

// ResolveWireID returns the wire identifier of kind, resolving its plugin
// first when needed.
func (c *Connection) ResolveWireID(ctx context.Context, kind string) (uint16, error) {
	id, err := c.registry.WireIDFor(c.session, kind)
	if !errors.Is(err, ErrUnresolvedNamespace) {
		return id, err
	}
	k, _ := c.registry.Lookup(kind)
	if _, err := c.ResolvePluginBase(ctx, k.Plugin); err != nil {
		return 0, err
	}
	return c.registry.WireIDFor(c.session, kind)
}

// Send encodes msg with a fresh context token and hands it to the
// transport. It does not wait for a reply.
func (c *Connection) Send(ctx context.Context, msg api.Message) (uint32, error) {
	token := c.session.NextContext()
	return token, c.SendContext(ctx, msg, token)
}

// SendContext is like Send with a caller-supplied context token.
func (c *Connection) SendContext(ctx context.Context, msg api.Message, token uint32) error {
	if !c.session.Connected() {
		return ErrNotConnected
	}
	id, err := c.ResolveWireID(ctx, msg.GetMessageName())
	if err != nil {
		return err
	}
	return c.send(msg, id, token)
}

func (c *Connection) send(msg api.Message, id uint16, token uint32) error {
	data, err := c.encode(msg, id, token)
	if err != nil {
		return err
	}
	if debug {
		log.WithFields(logrus.Fields{
			"msgName": msg.GetMessageName(),
			"msgID":   id,
			"context": token,
		}).Debugf("sending %d bytes", len(data))
	}
	if err := c.transport.SendMsg(data); err != nil {
		return fmt.Errorf("send %s: %w", msg.GetMessageName(), err)
	}
	c.stats.sent.Add(1)
	return nil
}

// Encode frames msg for the current session: wire identifier, client
// index and context token in the header, then the big-endian body.
func (c *Connection) Encode(ctx context.Context, msg api.Message, token uint32) ([]byte, error) {
	if !c.session.Connected() {
		return nil, ErrNotConnected
	}
	id, err := c.ResolveWireID(ctx, msg.GetMessageName())
	if err != nil {
		return nil, err
	}
	return c.encode(msg, id, token)
}

func (c *Connection) encode(msg api.Message, id uint16, token uint32) ([]byte, error) {
	data, err := codec.DefaultCodec.EncodeMsg(msg, id)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.GetMessageName(), err)
	}
	switch msg.GetMessageType() {
	case api.RequestMessage:
		binary.BigEndian.PutUint32(data[2:6], c.session.ClientIndex())
		binary.BigEndian.PutUint32(data[6:10], token)
	case api.ReplyMessage, api.EventMessage:
		binary.BigEndian.PutUint32(data[2:6], token)
	}
	return data, nil
}
