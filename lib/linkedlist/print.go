package linkedlist

import (
	"fmt"
	"io"

	"github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"
	"github.com/pkg/errors"
)

// Print writes the list as two aligned rows: positions and values.
func (l *List) Print(writer io.Writer) error {
	if _, err := fmt.Fprint(writer, "index: "); err != nil {
		return errors.WithStack(err)
	}
	err := l.Map(func(index int, _ primitive.NodeId, _ primitive.Value) error {
		_, err := fmt.Fprintf(writer, "%5d", index)
		return err
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if _, err := fmt.Fprint(writer, "\nvalue: "); err != nil {
		return errors.WithStack(err)
	}
	err = l.Map(func(_ int, _ primitive.NodeId, v primitive.Value) error {
		_, err := fmt.Fprintf(writer, "%5d", v)
		return err
	})
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = fmt.Fprintln(writer)
	return errors.WithStack(err)
}
