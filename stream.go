package inspect

import (
	"io"
	"iter"
	"strings"
)

// WriteIter writes one document per value from seq as values arrive. Each
// value gets its own reference tracker. A newline follows every document.
func (in *Inspector) WriteIter(w io.Writer, seq iter.Seq[Value]) error {
	var streamErr error
	seq(func(v Value) bool {
		doc := in.Inspect(v)
		if !strings.HasSuffix(doc, "\n") {
			doc += "\n"
		}
		if _, err := io.WriteString(w, doc); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

// WriteChan writes one document per value received from ch.
// It is a thin wrapper around [Inspector.WriteIter].
func (in *Inspector) WriteChan(w io.Writer, ch <-chan Value) error {
	return in.WriteIter(w, chanToIter(ch))
}

// WriteIter writes one document per value from seq with [Default].
func WriteIter(w io.Writer, seq iter.Seq[Value]) error {
	return Default.WriteIter(w, seq)
}

// WriteChan writes one document per value received from ch with [Default].
func WriteChan(w io.Writer, ch <-chan Value) error {
	return Default.WriteChan(w, ch)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
