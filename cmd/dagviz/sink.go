package main

import (
	"fmt"
	"os"
	"strings"
)

// writeSink writes doc to stdout, or to a file when sink names one other
// than "stdout"/"".
func writeSink(sink string, doc []byte) error {
	if sink == "" || strings.EqualFold(sink, "stdout") {
		_, err := os.Stdout.Write(append(doc, '\n'))
		return err
	}
	if err := os.WriteFile(sink, doc, 0o644); err != nil {
		return fmt.Errorf("dagviz: writing %s: %w", sink, err)
	}
	return nil
}
