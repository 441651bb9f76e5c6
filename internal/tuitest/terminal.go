package tuitest

import (
	"bytes"
	"io"
)

// queryReplies answers the capability probes bubbletea and termenv write at
// startup. Without a reply the program stalls until its own query timeout.
var queryReplies = []struct {
	query []byte
	reply []byte
}{
	{query: []byte("\x1b[6n"), reply: []byte("\x1b[1;1R")},
	{query: []byte("\x1b]10;?\x07"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x07")},
	{query: []byte("\x1b]10;?\x1b\\"), reply: []byte("\x1b]10;rgb:cccc/cccc/cccc\x1b\\")},
	{query: []byte("\x1b]11;?\x07"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x07")},
	{query: []byte("\x1b]11;?\x1b\\"), reply: []byte("\x1b]11;rgb:0000/0000/0000\x1b\\")},
}

// maxQueryLen bounds the tail kept between reads so a probe split across two
// reads is still recognised.
const maxQueryLen = 16

// queryResponder watches program output and writes the matching replies back
// to the terminal.
type queryResponder struct {
	w    io.Writer
	tail []byte
}

func newQueryResponder(w io.Writer) *queryResponder {
	return &queryResponder{w: w}
}

// Feed inspects chunk, replying to every complete probe it contains.
func (q *queryResponder) Feed(chunk []byte) {
	q.tail = append(q.tail, chunk...)
	for q.answerNext() {
	}
	if len(q.tail) > maxQueryLen {
		q.tail = append([]byte(nil), q.tail[len(q.tail)-maxQueryLen:]...)
	}
}

// answerNext replies to the earliest probe in the tail and drops everything
// up to its end.
func (q *queryResponder) answerNext() bool {
	first, end := -1, 0
	var reply []byte
	for _, qr := range queryReplies {
		idx := bytes.Index(q.tail, qr.query)
		if idx >= 0 && (first < 0 || idx < first) {
			first, end, reply = idx, idx+len(qr.query), qr.reply
		}
	}
	if first < 0 {
		return false
	}
	q.tail = q.tail[end:]
	_, _ = q.w.Write(reply)
	return true
}
