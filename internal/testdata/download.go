//go:build ignore
// +build ignore

// Download the UAX#9 conformance test files from the Unicode Consortium.
// They are not checked in; conformance tests skip when they are absent.
//
//    go run internal/testdata/download.go
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

const ucdBase = "https://www.unicode.org/Public/13.0.0/ucd/"

func main() {
	for _, file := range []string{"BidiTest.txt", "BidiCharacterTest.txt"} {
		if err := download(ucdBase+file, file); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download %s: %v\n", file, err)
			os.Exit(1)
		}
	}
}

func download(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET failed: %s", resp.Status)
	}

	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}
	if _, err = io.Copy(f, resp.Body); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %v: %w", path, err)
	}
	return f.Close()
}
