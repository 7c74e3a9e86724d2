// Package lineinput implements sequential line reading through a queue of
// one or more input streams, tracking a per-line location for user
// feedback.
package lineinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input stream.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Input reads lines from the head of Queue, rolling over to the next
// stream at EOF. Loc names the line most recently returned. Streams that
// implement Name() string are reported by that name.
type Input struct {
	Queue []io.Reader
	Loc   Location

	cur    *bufio.Reader
	closer io.Closer
}

// ReadLine returns the next line without its trailing newline, advancing
// Loc. A final line with no newline still counts. Returns io.EOF once the
// whole queue is exhausted.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.cur == nil && !in.next() {
			return "", io.EOF
		}

		line, err := in.cur.ReadString('\n')
		switch err {
		case nil:
			in.Loc.Line++
			return strings.TrimSuffix(line, "\n"), nil
		case io.EOF:
			in.close()
			if line != "" {
				in.Loc.Line++
				return line, nil
			}
		default:
			in.close()
			return "", err
		}
	}
}

func (in *Input) next() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = bufio.NewReader(r)
	if cl, ok := r.(io.Closer); ok {
		in.closer = cl
	}
	in.Loc = Location{Name: nameOf(r)}
	return true
}

func (in *Input) close() {
	if in.closer != nil {
		in.closer.Close()
		in.closer = nil
	}
	in.cur = nil
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
