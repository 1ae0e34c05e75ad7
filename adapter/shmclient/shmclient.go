// Copyright (c) 2024 Shared memory adapter implementation for GoVPP.
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

package shmclient

import (
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"go.fd.io/govpp/adapter"
	"go.fd.io/govpp/binapi/memclnt"
	"go.fd.io/govpp/codec"
)

const (
	// DefaultSHMPrefix is the default prefix for shared memory segments
	DefaultSHMPrefix = "/dev/shm/vpp_api_"
	// DefaultSHMSize is the default size of shared memory segment
	DefaultSHMSize = 64 * 1024 * 1024 // 64MB
	// DefaultClientName is used for identifying client
	DefaultClientName = "govppshm"
)

var (
	// DefaultConnectTimeout is default timeout for connecting
	DefaultConnectTimeout = time.Second * 3
	// DefaultDisconnectTimeout is default timeout for disconnecting
	DefaultDisconnectTimeout = time.Millisecond * 100
	// DefaultPollInterval is the default polling interval
	DefaultPollInterval = time.Microsecond * 100
)

// ErrNotConnected is returned when sending without a mapped segment.
var ErrNotConnected = errors.New("shmclient: not connected")

var (
	debug = strings.Contains(os.Getenv("DEBUG_GOVPP"), "shmclient")

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
		logger.Debug("govpp: debug level enabled for shmclient")
	}
	log = logger.WithField("logger", "govpp/shmclient")
}

// Client represents shared memory VPP API client
type Client struct {
	shmName    string
	shmPrefix  string
	clientName string

	shmFile *os.File
	shmMem  []byte
	shmSize int

	txRing *RingBuffer
	rxRing *RingBuffer

	connectTimeout    time.Duration
	disconnectTimeout time.Duration
	pollInterval      time.Duration

	cbMu         sync.RWMutex
	msgCallback  adapter.MsgCallback
	clientIndex  uint32
	sockDelMsgID uint16

	quit chan struct{}
	wg   sync.WaitGroup
}

// NewVppClient returns a new Client using shared memory.
// If shmName is empty string "default" is used.
func NewVppClient(shmName string) *Client {
	if shmName == "" {
		shmName = "default"
	}
	return &Client{
		shmName:           shmName,
		shmPrefix:         DefaultSHMPrefix,
		clientName:        DefaultClientName,
		connectTimeout:    DefaultConnectTimeout,
		disconnectTimeout: DefaultDisconnectTimeout,
		pollInterval:      DefaultPollInterval,
		shmSize:           DefaultSHMSize,
		sockDelMsgID:      sockDeleteMsgID,
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

// SetPollInterval sets the polling interval for checking messages.
func (c *Client) SetPollInterval(t time.Duration) {
	c.pollInterval = t
}

// SetSHMPrefix sets the path prefix of the shared memory segment.
func (c *Client) SetSHMPrefix(prefix string) {
	c.shmPrefix = prefix
}

// SetSHMSize sets the size of the shared memory segment.
func (c *Client) SetSHMSize(size int) {
	c.shmSize = size
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

// WaitReady waits for the shared memory segment to be available.
func (c *Client) WaitReady() error {
	shmPath := c.getSHMPath()

	if _, err := os.Stat(shmPath); err == nil {
		return nil
	}

	timeout := time.After(c.connectTimeout)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			return fmt.Errorf("timeout waiting for shared memory segment: %s", shmPath)
		case <-ticker.C:
			if _, err := os.Stat(shmPath); err == nil {
				return nil
			}
		}
	}
}

// Connect maps the segment, registers the client and starts delivering
// inbound messages to the callback.
func (c *Client) Connect() error {
	if c.shmMem == nil {
		if err := c.openSHM(); err != nil {
			return err
		}
		if err := c.initRingBuffers(); err != nil {
			c.closeSHM()
			return err
		}
	}

	if err := c.open(c.clientName); err != nil {
		c.closeSHM()
		return err
	}

	c.quit = make(chan struct{})
	c.wg.Add(1)
	go c.pollLoop()

	return nil
}

// Disconnect unregisters the client and unmaps the segment.
func (c *Client) Disconnect() error {
	if c.shmMem == nil {
		return nil
	}
	log.Debugf("Disconnecting..")

	close(c.quit)
	c.wg.Wait()

	if err := c.close(); err != nil {
		log.Debugf("closing failed: %v", err)
	}

	return c.closeSHM()
}

func (c *Client) getSHMPath() string {
	return c.shmPrefix + c.shmName
}

func (c *Client) openSHM() error {
	shmPath := c.getSHMPath()

	if debug {
		log.Debugf("Opening shared memory: %v", shmPath)
	}

	file, err := os.OpenFile(shmPath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open shared memory %s: %w", shmPath, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat shared memory: %w", err)
	}

	if info.Size() < int64(c.shmSize) {
		if err := file.Truncate(int64(c.shmSize)); err != nil {
			file.Close()
			return fmt.Errorf("failed to resize shared memory: %w", err)
		}
	}

	mmap, err := syscall.Mmap(
		int(file.Fd()),
		0,
		c.shmSize,
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_SHARED,
	)
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to mmap shared memory: %w", err)
	}

	c.shmFile = file
	c.shmMem = mmap

	if debug {
		log.Debugf("Mapped shared memory: %d bytes", len(c.shmMem))
	}

	return nil
}

func (c *Client) closeSHM() error {
	log.Debugf("Closing shared memory")

	c.txRing, c.rxRing = nil, nil
	c.clientIndex = 0
	c.sockDelMsgID = sockDeleteMsgID

	if c.shmMem != nil {
		if err := syscall.Munmap(c.shmMem); err != nil {
			log.Debugf("Failed to munmap: %v", err)
		}
		c.shmMem = nil
	}

	if c.shmFile != nil {
		if err := c.shmFile.Close(); err != nil {
			log.Debugf("Failed to close shm file: %v", err)
		}
		c.shmFile = nil
	}

	return nil
}

// initRingBuffers splits the segment in two rings: client to engine in
// the first half, engine to client in the second.
func (c *Client) initRingBuffers() error {
	halfSize := len(c.shmMem) / 2
	if halfSize <= RingBufferHeaderSize+4 {
		return fmt.Errorf("shared memory segment too small: %d bytes", len(c.shmMem))
	}

	c.txRing = NewRingBuffer(c.shmMem[:halfSize])
	c.rxRing = NewRingBuffer(c.shmMem[halfSize:])

	if debug {
		log.Debugf("Initialized ring buffers: TX=%d bytes, RX=%d bytes", halfSize, halfSize)
	}

	return nil
}

// Fixed memclnt identifiers of the registration handshake.
const (
	sockCreateMsgID      = 15
	sockCreateReplyMsgID = 16
	sockDeleteMsgID      = 17
	sockDeleteReplyMsgID = 18

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

	if debug {
		log.Debugf("sending socklnt_delete (%d bytes): % 0X", len(msg), msg)
	}
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

// SendMsg enqueues a framed message. The header is expected to be
// stamped already.
func (c *Client) SendMsg(data []byte) error {
	if len(data) < 2 {
		return fmt.Errorf("invalid message data, length must be at least 2 bytes")
	}
	if c.txRing == nil {
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

func (c *Client) writeMsg(msg []byte) error {
	return c.txRing.Enqueue(msg)
}

func (c *Client) readMsgTimeout(timeout time.Duration) ([]byte, error) {
	deadline := time.Now().Add(timeout)
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		msg, err := c.rxRing.Dequeue()
		if err != nil {
			log.Debugf("readMsg error: %v", err)
		} else if msg != nil {
			return msg, nil
		}

		if time.Now().After(deadline) {
			return nil, fmt.Errorf("read timeout")
		}

		<-ticker.C
	}
}

func (c *Client) pollLoop() {
	defer c.wg.Done()
	defer log.Debugf("poll loop done")

	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.quit:
			return
		case <-ticker.C:
			c.drain()
		}
	}
}

// drain delivers every message currently queued on the receive ring.
func (c *Client) drain() {
	for {
		msg, err := c.rxRing.Dequeue()
		if err != nil {
			log.Warnf("receive ring: %v", err)
			continue
		}
		if msg == nil {
			return
		}
		if len(msg) < 2 {
			log.Debugf("dropping runt message (%d bytes)", len(msg))
			continue
		}

		msgID := getMsgID(msg)
		if debug {
			log.Debugf("pollLoop recv msg: msgID=%d len=%d", msgID, len(msg))
		}

		c.cbMu.RLock()
		cb := c.msgCallback
		c.cbMu.RUnlock()
		cb(msgID, msg)
	}
}

func getMsgID(msg []byte) uint16 {
	return binary.BigEndian.Uint16(msg[0:2])
}
