// Package stream fans one turn's generation events out to the two delivery
// channels: the originating SSE response (authoritative, in-order) and the
// Socket.IO room via the Redis bridge (best-effort mirror).
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/ryanchien8125/dalin-ai-fuder/pkg"
)

// RoomForConversation names the pub/sub channel for a conversation's
// socket room.
func RoomForConversation(conversationID string) string {
	return "user:conversation:" + conversationID
}

// Relay delivers one chat turn's events. Not safe for concurrent use; the
// generation pipeline pushes from a single goroutine in token order, and
// both sinks are invoked sequentially per event to preserve relative
// ordering.
//
// Sequence ids start at 1 and increase by one for every event mirrored to
// the socket room, with no gaps. SSE-only frames (init, error) do not
// consume ids, matching what socket listeners expect for dedupe.
type Relay struct {
	w         io.Writer
	flusher   http.Flusher
	emitter   pkg.SocketEmitter
	room      string
	requestID string
	sequence  int
	closed    bool
}

func NewRelay(w io.Writer, emitter pkg.SocketEmitter, conversationID, requestID string) *Relay {
	r := &Relay{
		w:         w,
		emitter:   emitter,
		room:      RoomForConversation(conversationID),
		requestID: requestID,
		sequence:  1,
	}
	if f, ok := w.(http.Flusher); ok {
		r.flusher = f
	}
	return r
}

// Init sends the opening SSE frame carrying the conversation id. SSE only;
// socket listeners already know their room.
func (r *Relay) Init(conversationID string) {
	r.writeSSE(map[string]interface{}{
		"type":           "init",
		"conversationId": conversationID,
	})
}

// PushChunk delivers one token fragment on both channels.
func (r *Relay) PushChunk(content, messageID string) {
	if r.closed {
		return
	}
	r.writeSSE(map[string]interface{}{
		"type":      "content",
		"content":   content,
		"messageId": messageID,
	})
	r.emit("message:chunk", map[string]interface{}{"content": content})
}

// PushError surfaces a generation failure as an SSE error event. The
// response is already streaming at this point, so this is the only way to
// report it to the originating client.
func (r *Relay) PushError(message string, code int) {
	if r.closed {
		return
	}
	r.writeSSE(map[string]interface{}{
		"type":    "error",
		"message": message,
		"code":    code,
	})
}

// PushAck mirrors the completed assistant message id to the socket room.
func (r *Relay) PushAck(messageID string) {
	if r.closed {
		return
	}
	r.emit("message:ack", map[string]interface{}{"messageId": messageID})
}

// Close emits the terminal markers on both channels: the literal [DONE]
// frame on SSE and a synthetic done event with empty data on the socket
// room. Idempotent.
func (r *Relay) Close() {
	if r.closed {
		return
	}
	r.closed = true

	if _, err := fmt.Fprint(r.w, "data: [DONE]\n\n"); err != nil {
		log.Printf("[Relay] SSE done write error: %v", err)
	}
	r.flush()

	r.emit("done", "")
}

// writeSSE writes one data frame. A write failure usually means the HTTP
// client went away; generation and persistence continue regardless, so the
// error is logged and swallowed.
func (r *Relay) writeSSE(payload interface{}) {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Relay] SSE marshal error: %v", err)
		return
	}
	if _, err := fmt.Fprintf(r.w, "data: %s\n\n", body); err != nil {
		log.Printf("[Relay] SSE write error: %v", err)
		return
	}
	r.flush()
}

// emit mirrors an event to the socket room. Best-effort: a publish failure
// must never abort SSE delivery, so it is logged and swallowed.
func (r *Relay) emit(event string, data interface{}) {
	payload := pkg.SocketPayload{
		Event:     event,
		Data:      data,
		ID:        r.sequence,
		RequestID: r.requestID,
	}
	r.sequence++

	if err := r.emitter.Publish(context.Background(), r.room, payload); err != nil {
		log.Printf("[Relay] Socket emit error: %v", err)
	}
}

func (r *Relay) flush() {
	if r.flusher != nil {
		r.flusher.Flush()
	}
}
