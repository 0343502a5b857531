//go:build !windows

package dialog

import (
	"fmt"
	"io"
	"os"
)

var stderr io.Writer = os.Stderr

func show(m Message) error {
	_, err := fmt.Fprintf(stderr, "%s\n\n%s\n", m.Title, m.Body)
	return err
}
