package ucdparse

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"testing"
)

type ucdTestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	text    string
	comment string
}

// HasTestFile checks for the presence of a UCD test file without opening it.
// Conformance tests skip when the file has not been downloaded (see
// internal/testdata).
func HasTestFile(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// OpenTestFile opens a UCD test file and prepares it for record-wise
// scanning. Comment and empty lines are skipped transparently.
func OpenTestFile(filename string, t *testing.T) *ucdTestFile {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Errorf("ERROR loading " + filename)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR loading "+filename)
		}
		return nil
	}
	tf := &ucdTestFile{}
	tf.in = f
	tf.scanner = bufio.NewScanner(f)
	return tf
}

func (tf *ucdTestFile) Scan() bool {
	ok := true
	done := false
	for !done {
		ok = tf.scanner.Scan()
		if ok && len(tf.scanner.Bytes()) > 0 {
			if tf.scanner.Bytes()[0] == '#' {
				continue
			}
			done = true
			text := strings.TrimSpace(tf.scanner.Text())
			parts := strings.Split(text, "#")
			if len(parts) > 1 {
				tf.text, tf.comment = parts[0], parts[1]
			} else {
				tf.text = parts[0]
			}
		} else if ok {
			continue // skip empty lines
		} else {
			done = true // with error or EOF
		}
	}
	return ok
}

func (tf *ucdTestFile) Text() string {
	return tf.text
}

func (tf *ucdTestFile) Comment() string {
	return tf.comment
}

func (tf *ucdTestFile) Err() error {
	return tf.scanner.Err()
}

func (tf *ucdTestFile) Close() {
	tf.in.Close()
}
