// Copyright (c) 2024 TCP adapter implementation for GoVPP.
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

package tcpclient

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"go.fd.io/govpp/adapter"
	"go.fd.io/govpp/binapi/memclnt"
	"go.fd.io/govpp/codec"
)

const (
	// DefaultTCPAddress is default VPP TCP API address.
	DefaultTCPAddress = "localhost:5002"
	// DefaultClientName is used for identifying client in socket registration
	DefaultClientName = "govpptcp"
	// MaxMessageSize bounds the length announced in a frame header.
	MaxMessageSize = 1 << 24
)

var (
	// DefaultConnectTimeout is default timeout for connecting
	DefaultConnectTimeout = time.Second * 3
	// DefaultDisconnectTimeout is default timeout for disconnecting
	DefaultDisconnectTimeout = time.Millisecond * 100
	// DefaultKeepAlivePeriod is the default TCP keepalive period
	DefaultKeepAlivePeriod = time.Second * 30
)

// ErrNotConnected is returned when sending without an open connection.
var ErrNotConnected = errors.New("tcpclient: not connected")

var (
	debug = strings.Contains(os.Getenv("DEBUG_GOVPP"), "tcpclient")

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
		logger.Debug("govpp: debug level enabled for tcpclient")
	}
	log = logger.WithField("logger", "govpp/tcpclient")
}

// Client is a VPP API transport over a TCP stream. Every message is
// preceded by a 16-byte frame header carrying the message length.
type Client struct {
	address    string
	clientName string

	conn   net.Conn
	reader *bufio.Reader
	writer *bufio.Writer

	connectTimeout    time.Duration
	disconnectTimeout time.Duration
	keepAlivePeriod   time.Duration

	cbMu         sync.RWMutex
	msgCallback  adapter.MsgCallback
	clientIndex  uint32
	sockDelMsgID uint16
	writeMu      sync.Mutex

	headerPool *sync.Pool

	quit chan struct{}
	wg   sync.WaitGroup
}

// NewVppClient returns a new Client using TCP connection.
// If address is empty string DefaultTCPAddress is used.
func NewVppClient(address string) *Client {
	if address == "" {
		address = DefaultTCPAddress
	}
	return &Client{
		address:           address,
		clientName:        DefaultClientName,
		connectTimeout:    DefaultConnectTimeout,
		disconnectTimeout: DefaultDisconnectTimeout,
		keepAlivePeriod:   DefaultKeepAlivePeriod,
		sockDelMsgID:      sockDeleteMsgID,
		headerPool: &sync.Pool{New: func() interface{} {
			x := make([]byte, frameHeaderSize)
			return &x
		}},
		msgCallback: func(msgID uint16, data []byte) {
			log.Debugf("no callback set, dropping message: ID=%v len=%d", msgID, len(data))
		},
	}
}

// SetClientName sets a client name used for identification.
func (c *Client) SetClientName(name string) {
	c.clientName = name
}

// SetConnectTimeout sets timeout used during connecting.
func (c *Client) SetConnectTimeout(t time.Duration) {
	c.connectTimeout = t
}

// SetDisconnectTimeout sets timeout used during disconnecting.
func (c *Client) SetDisconnectTimeout(t time.Duration) {
	c.disconnectTimeout = t
}

// SetKeepAlivePeriod sets TCP keepalive period.
func (c *Client) SetKeepAlivePeriod(t time.Duration) {
	c.keepAlivePeriod = t
}

// SetMsgCallback sets the callback for incoming messages.
func (c *Client) SetMsgCallback(cb adapter.MsgCallback) {
	log.Debug("SetMsgCallback")
	c.cbMu.Lock()
	c.msgCallback = cb
	c.cbMu.Unlock()
}

// ClientIndex returns the index assigned by the engine on connect.
func (c *Client) ClientIndex() uint32 {
	return c.clientIndex
}

// WaitReady returns immediately, there is no socket file to wait for.
func (c *Client) WaitReady() error {
	return nil
}

// Connect dials the engine, registers the client and starts the reader.
func (c *Client) Connect() error {
	if err := c.connect(); err != nil {
		return err
	}

	if err := c.open(c.clientName); err != nil {
		_ = c.disconnect()
		return err
	}

	c.quit = make(chan struct{})
	c.wg.Add(1)
	go c.readerLoop()

	return nil
}

// Disconnect stops the reader, unregisters the client and closes the
// connection.
func (c *Client) Disconnect() error {
	if c.conn == nil {
		return nil
	}
	log.Debugf("Disconnecting..")

	close(c.quit)

	// unblock the reader, it observes quit on the resulting timeout
	if err := c.conn.SetReadDeadline(time.Now()); err != nil {
		log.Debugf("setting read deadline failed: %v", err)
	}
	c.wg.Wait()

	if err := c.close(); err != nil {
		log.Debugf("closing failed: %v", err)
	}

	return c.disconnect()
}

const defaultBufferSize = 4096

func (c *Client) connect() error {
	if debug {
		log.Debugf("Connecting to TCP: %v", c.address)
	}

	tcpAddr, err := net.ResolveTCPAddr("tcp", c.address)
	if err != nil {
		return fmt.Errorf("invalid TCP address %s: %w", c.address, err)
	}

	dialer := &net.Dialer{
		Timeout: c.connectTimeout,
	}
	conn, err := dialer.Dial("tcp", tcpAddr.String())
	if err != nil {
		log.Debugf("Connecting to TCP %s failed: %s", c.address, err)
		return fmt.Errorf("TCP connection to %s failed: %w", c.address, err)
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.SetKeepAlive(true); err != nil {
			log.Debugf("Failed to set keepalive: %v", err)
		}
		if err := tcpConn.SetKeepAlivePeriod(c.keepAlivePeriod); err != nil {
			log.Debugf("Failed to set keepalive period: %v", err)
		}
		if err := tcpConn.SetNoDelay(true); err != nil {
			log.Debugf("Failed to set TCP_NODELAY: %v", err)
		}
	}

	c.conn = conn
	if debug {
		log.Debugf("Connected to TCP (local addr: %v, remote addr: %v)",
			c.conn.LocalAddr(), c.conn.RemoteAddr())
	}

	c.reader = bufio.NewReaderSize(c.conn, defaultBufferSize)
	c.writer = bufio.NewWriterSize(c.conn, defaultBufferSize)

	return nil
}

func (c *Client) disconnect() error {
	log.Debugf("Closing TCP connection")

	conn := c.conn
	c.conn, c.reader, c.writer = nil, nil, nil
	c.clientIndex = 0
	c.sockDelMsgID = sockDeleteMsgID

	if err := conn.Close(); err != nil {
		log.Debugln("Closing TCP connection failed:", err)
		return err
	}
	return nil
}

// Fixed memclnt identifiers of the registration handshake.
const (
	sockCreateMsgID = 15
	sockDeleteMsgID = 17

	createMsgContext = 123
	deleteMsgContext = 124
)

func (c *Client) open(clientName string) error {
	var msgCodec = codec.DefaultCodec

	req := &memclnt.SockclntCreate{
		Name: clientName,
	}
	msg, err := msgCodec.EncodeMsg(req, sockCreateMsgID)
	if err != nil {
		log.Debugln("Encode error:", err)
		return err
	}
	// sockclnt_create carries no client index
	binary.BigEndian.PutUint32(msg[2:6], createMsgContext)

	if err := c.writeMsg(msg); err != nil {
		log.Debugln("Write error: ", err)
		return err
	}
	msgReply, err := c.readMsgTimeout(c.connectTimeout)
	if err != nil {
		log.Debugln("Read error:", err)
		return err
	}

	reply := new(memclnt.SockclntCreateReply)
	if err := msgCodec.DecodeMsg(msgReply, reply); err != nil {
		log.Debugln("Decoding sockclnt_create_reply failed:", err)
		return err
	} else if reply.Response != 0 {
		return fmt.Errorf("sockclnt_create_reply: response error (%d)", reply.Response)
	}

	log.Debugf("SockclntCreateReply: Response=%v Index=%v Count=%v",
		reply.Response, reply.Index, reply.Count)

	c.clientIndex = reply.Index
	for _, entry := range reply.MessageTable {
		if strings.HasPrefix(entry.Name, "sockclnt_delete_") && !strings.HasPrefix(entry.Name, "sockclnt_delete_reply") {
			c.sockDelMsgID = entry.Index
		}
	}

	return nil
}

func (c *Client) close() error {
	var msgCodec = codec.DefaultCodec

	req := &memclnt.SockclntDelete{
		Index: c.clientIndex,
	}
	msg, err := msgCodec.EncodeMsg(req, c.sockDelMsgID)
	if err != nil {
		log.Debugln("Encode error:", err)
		return err
	}
	setMsgRequestHeader(msg, c.clientIndex, deleteMsgContext)

	log.Debugf("sending socklnt_delete (%d bytes): % 0X", len(msg), msg)
	if err := c.writeMsg(msg); err != nil {
		log.Debugln("Write error: ", err)
		return err
	}

	msgReply, err := c.readMsgTimeout(c.disconnectTimeout)
	if err != nil {
		log.Warnln("Read timeout:", err)
		return err
	} else if debug {
		log.Debugf("received socklnt_delete_reply (%d bytes): % 0X", len(msgReply), msgReply)
	}

	reply := new(memclnt.SockclntDeleteReply)
	if err := msgCodec.DecodeMsg(msgReply, reply); err != nil {
		log.Debugln("Decoding sockclnt_delete_reply failed:", err)
		return err
	} else if reply.Response != 0 {
		return fmt.Errorf("sockclnt_delete_reply: response error (%d)", reply.Response)
	}

	return nil
}

// SendMsg writes one framed message. The header is expected to be
// stamped already.
func (c *Client) SendMsg(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("invalid message data, length must be at least 2 bytes")
	}
	if c.conn == nil || c.writer == nil {
		return ErrNotConnected
	}

	if debug {
		log.Debugf("sendMsg (%d) msgID=%d: % 02X", len(data), getMsgID(data), data)
	}

	if err := c.writeMsg(data); err != nil {
		log.Debugln("writeMsg error: ", err)
		return err
	}

	return nil
}

func setMsgRequestHeader(data []byte, clientIndex, context uint32) {
	binary.BigEndian.PutUint32(data[2:6], clientIndex)
	binary.BigEndian.PutUint32(data[6:10], context)
}

const frameHeaderSize = 16

func (c *Client) writeMsg(msg []byte) error {
	// one frame at a time on the stream
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	header := c.headerPool.Get().(*[]byte)
	defer c.headerPool.Put(header)

	if err := writeMsgHeader(c.writer, *header, len(msg)); err != nil {
		return err
	}
	if _, err := c.writer.Write(msg); err != nil {
		return err
	}
	return c.writer.Flush()
}

func writeMsgHeader(w io.Writer, header []byte, dataLen int) error {
	for i := range header {
		header[i] = 0
	}
	binary.BigEndian.PutUint32(header[8:12], uint32(dataLen))

	n, err := w.Write(header)
	if err != nil {
		return err
	}
	if debug {
		log.Debugf(" - header sent (%d/%d): % 0X", n, len(header), header)
	}

	return nil
}

func (c *Client) readerLoop() {
	defer c.wg.Done()
	defer log.Debugf("reader loop done")

	for {
		msg, err := c.readMsg()
		select {
		case <-c.quit:
			return
		default:
		}
		if err != nil {
			if isClosedError(err) {
				log.Debugf("reader closed: %v", err)
			} else {
				log.Warnf("reading from %s failed: %v", c.address, err)
			}
			return
		}
		if len(msg) < 2 {
			log.Debugf("dropping runt message (%d bytes)", len(msg))
			continue
		}

		msgID := getMsgID(msg)
		if debug {
			log.Debugf("readerLoop recv msg: msgID=%d len=%d", msgID, len(msg))
		}

		c.cbMu.RLock()
		cb := c.msgCallback
		c.cbMu.RUnlock()
		cb(msgID, msg)
	}
}

func (c *Client) readMsgTimeout(timeout time.Duration) ([]byte, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return nil, err
	}

	msgReply, err := c.readMsg()
	if err != nil {
		return nil, err
	}

	if err := c.conn.SetReadDeadline(time.Time{}); err != nil {
		return nil, err
	}

	return msgReply, nil
}

// readMsg reads one frame into a freshly allocated buffer owned by the
// caller.
func (c *Client) readMsg() ([]byte, error) {
	var header [frameHeaderSize]byte

	if _, err := io.ReadFull(c.reader, header[:]); err != nil {
		return nil, err
	}

	dataLen := binary.BigEndian.Uint32(header[8:12])
	if debug {
		log.Debugf(" - read header: dataLen=%d", dataLen)
	}
	if dataLen > MaxMessageSize {
		return nil, fmt.Errorf("frame too large: %d bytes", dataLen)
	}

	msg := make([]byte, dataLen)
	if _, err := io.ReadFull(c.reader, msg); err != nil {
		return nil, err
	}

	return msg, nil
}

func getMsgID(msg []byte) uint16 {
	return binary.BigEndian.Uint16(msg[0:2])
}

func isClosedError(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed)
}
