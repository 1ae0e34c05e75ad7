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
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"go.fd.io/govpp/binapi/memclnt"
	"go.fd.io/govpp/codec"
)

// TestNewVppClient tests client creation
func TestNewVppClient(t *testing.T) {
	tests := []struct {
		name            string
		address         string
		expectedAddress string
	}{
		{
			name:            "empty address uses default",
			address:         "",
			expectedAddress: DefaultTCPAddress,
		},
		{
			name:            "custom address preserved",
			address:         "192.168.1.100:5002",
			expectedAddress: "192.168.1.100:5002",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := NewVppClient(tt.address)
			if client.address != tt.expectedAddress {
				t.Errorf("expected address %s, got %s", tt.expectedAddress, client.address)
			}
			if client.clientName != DefaultClientName {
				t.Errorf("expected clientName %s, got %s", DefaultClientName, client.clientName)
			}
		})
	}
}

// TestSetters tests configuration setters
func TestSetters(t *testing.T) {
	client := NewVppClient("")

	client.SetClientName("test-client")
	client.SetConnectTimeout(5 * time.Second)
	client.SetDisconnectTimeout(time.Second)
	client.SetKeepAlivePeriod(time.Minute)

	if client.clientName != "test-client" {
		t.Errorf("expected clientName test-client, got %s", client.clientName)
	}
	if client.connectTimeout != 5*time.Second {
		t.Errorf("expected connectTimeout 5s, got %v", client.connectTimeout)
	}
	if client.disconnectTimeout != time.Second {
		t.Errorf("expected disconnectTimeout 1s, got %v", client.disconnectTimeout)
	}
	if client.keepAlivePeriod != time.Minute {
		t.Errorf("expected keepAlivePeriod 1m, got %v", client.keepAlivePeriod)
	}
}

// TestWaitReady tests that WaitReady returns immediately
func TestWaitReady(t *testing.T) {
	client := NewVppClient("")

	start := time.Now()
	if err := client.WaitReady(); err != nil {
		t.Errorf("WaitReady() returned error: %v", err)
	}
	if time.Since(start) > 100*time.Millisecond {
		t.Errorf("WaitReady() took too long")
	}
}

// TestSendMsg tests send validation
func TestSendMsg(t *testing.T) {
	client := NewVppClient("")

	if err := client.SendMsg([]byte{0x01}); err == nil {
		t.Error("expected error for short message")
	}
	if err := client.SendMsg([]byte{0x00, 0x01, 0, 0, 0, 0}); !errors.Is(err, ErrNotConnected) {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
}

// TestConnectionRefusal tests that connection to a closed port fails
func TestConnectionRefusal(t *testing.T) {
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to reserve port: %v", err)
	}
	addr := listener.Addr().String()
	listener.Close()

	client := NewVppClient(addr)
	client.SetConnectTimeout(100 * time.Millisecond)

	if err := client.Connect(); err == nil {
		t.Error("Expected connection to fail, but it succeeded")
		client.Disconnect()
	}
}

// TestFraming tests the frame header written before every message
func TestFraming(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, frameHeaderSize)
	for i := range header {
		header[i] = 0xFF
	}

	if err := writeMsgHeader(&buf, header, 300); err != nil {
		t.Fatalf("writeMsgHeader failed: %v", err)
	}
	got := buf.Bytes()
	if len(got) != frameHeaderSize {
		t.Fatalf("expected %d header bytes, got %d", frameHeaderSize, len(got))
	}
	if n := binary.BigEndian.Uint32(got[8:12]); n != 300 {
		t.Errorf("expected length 300, got %d", n)
	}
	if !bytes.Equal(got[:8], make([]byte, 8)) || !bytes.Equal(got[12:], make([]byte, 4)) {
		t.Errorf("stale header bytes: % X", got)
	}
}

// mockEngine speaks the framing and registration handshake and echoes
// every other message back.
func mockEngine(t *testing.T, listener net.Listener, done chan<- int) {
	conn, err := listener.Accept()
	if err != nil {
		return
	}
	defer conn.Close()

	deletes := 0
	defer func() { done <- deletes }()

	for {
		var header [frameHeaderSize]byte
		if _, err := io.ReadFull(conn, header[:]); err != nil {
			return
		}
		msg := make([]byte, binary.BigEndian.Uint32(header[8:12]))
		if _, err := io.ReadFull(conn, msg); err != nil {
			return
		}

		var reply []byte
		switch binary.BigEndian.Uint16(msg[0:2]) {
		case sockCreateMsgID:
			reply, err = codec.DefaultCodec.EncodeMsg(&memclnt.SockclntCreateReply{
				Index: 9,
				Count: 1,
				MessageTable: []memclnt.MessageTableEntry{
					{Index: 41, Name: "sockclnt_delete_8ac76db6"},
				},
			}, 16)
			copy(reply[2:6], msg[2:6])
		case 41:
			deletes++
			reply, err = codec.DefaultCodec.EncodeMsg(&memclnt.SockclntDeleteReply{}, 18)
			copy(reply[2:6], msg[6:10])
		default:
			reply = msg
		}
		if err != nil {
			t.Errorf("engine encode: %v", err)
			return
		}

		binary.BigEndian.PutUint32(header[8:12], uint32(len(reply)))
		if _, err := conn.Write(append(header[:], reply...)); err != nil {
			return
		}
	}
}

// TestMockTCPServer tests registration, delivery and unregistration
// against a mock engine
func TestMockTCPServer(t *testing.T) {
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("Failed to start mock server: %v", err)
	}
	defer listener.Close()

	done := make(chan int, 1)
	go mockEngine(t, listener, done)

	client := NewVppClient(listener.Addr().String())
	client.SetConnectTimeout(time.Second)
	client.SetDisconnectTimeout(time.Second)

	received := make(chan []byte, 2)
	client.SetMsgCallback(func(msgID uint16, data []byte) {
		received <- data
	})

	if err := client.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}
	if client.ClientIndex() != 9 {
		t.Errorf("expected client index 9, got %d", client.ClientIndex())
	}
	if client.sockDelMsgID != 41 {
		t.Errorf("expected delete id from message table, got %d", client.sockDelMsgID)
	}

	first := []byte{0x00, 0x2A, 0, 0, 0, 9, 0, 0, 0, 1, 0x01}
	second := bytes.Repeat([]byte{0x00, 0x2B}, 3000)
	for _, msg := range [][]byte{first, second} {
		if err := client.SendMsg(msg); err != nil {
			t.Fatalf("SendMsg failed: %v", err)
		}
	}

	// both buffers stay intact after the next read
	var got [][]byte
	for len(got) < 2 {
		select {
		case msg := <-received:
			got = append(got, msg)
		case <-time.After(2 * time.Second):
			t.Fatalf("received %d of 2 messages", len(got))
		}
	}
	if !bytes.Equal(got[0], first) {
		t.Errorf("first message corrupted: % X", got[0])
	}
	if !bytes.Equal(got[1], second) {
		t.Errorf("second message corrupted (len %d)", len(got[1]))
	}

	if err := client.Disconnect(); err != nil {
		t.Fatalf("Disconnect failed: %v", err)
	}
	select {
	case deletes := <-done:
		if deletes != 1 {
			t.Errorf("expected one sockclnt_delete, got %d", deletes)
		}
	case <-time.After(2 * time.Second):
		t.Error("mock engine did not finish")
	}
}
