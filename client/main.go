package main

import (
	"bufio"
	"encoding/binary"
	"encoding/json"
	"flag"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

const (
	MsgTypeJoin = 102
	MsgTypeAct  = 201
)

// send formats and sends a message to the WebSocket server.
func send(c *websocket.Conn, msgID uint16, data []byte) error {
	packet := make([]byte, 4+len(data))
	binary.BigEndian.PutUint16(packet[0:2], msgID)
	binary.BigEndian.PutUint16(packet[2:4], uint16(len(data)))
	copy(packet[4:], data)

	return c.WriteMessage(websocket.BinaryMessage, packet)
}

func main() {
	addr := flag.String("addr", "localhost:3000", "server address")
	draftID := flag.String("draft", "", "draft id to join")
	name := flag.String("name", "anonymous", "player name")
	flag.Parse()

	if *draftID == "" {
		log.Fatal("a draft id is required, fetch one from /new")
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws", RawQuery: "draft=" + *draftID}
	log.Printf("Connecting to %s", u.String())

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("Dial failed: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})

	// Read loop
	go func() {
		defer close(done)
		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				log.Println("Read error:", err)
				return
			}
			if len(message) < 4 {
				log.Printf("Received invalid packet of size %d", len(message))
				continue
			}
			msgID := binary.BigEndian.Uint16(message[0:2])
			data := message[4:]
			log.Printf("<- RECV (ID: %d): %s", msgID, string(data))
		}
	}()

	// Announce ourselves
	joinData, _ := json.Marshal(map[string]string{"name": *name})
	if err := send(c, MsgTypeJoin, joinData); err != nil {
		log.Println("Write error:", err)
		return
	}

	log.Println("Client started. Commands: pick <option>, ban <option>, snipe <option>.")

	actions := map[string]int{"pick": 0, "ban": 1, "snipe": 2}

	// Write loop
	reader := bufio.NewReader(os.Stdin)
	for {
		select {
		case <-done:
			return
		case <-interrupt:
			log.Println("Interrupt received, closing connection.")
			err := c.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			if err != nil {
				log.Println("Write close error:", err)
			}
			select {
			case <-done:
			case <-time.After(time.Second):
			}
			return
		default:
			text, _ := reader.ReadString('\n')
			fields := strings.Fields(text)
			if len(fields) != 2 {
				continue
			}

			kind, ok := actions[fields[0]]
			if !ok {
				log.Printf("Unknown command %q", fields[0])
				continue
			}

			event := map[string]interface{}{
				"action":           kind,
				"chosen_option_id": fields[1],
			}
			eventData, _ := json.Marshal(event)
			if err := send(c, MsgTypeAct, eventData); err != nil {
				log.Println("Write error:", err)
				return
			}
			log.Printf("-> SENT: %s %s", fields[0], fields[1])
		}
	}
}
