package errdefer_test

import (
	"io"
	"os"
	"path/filepath"

	"go.abhg.dev/fraglight/internal/errdefer"
)

func writePage(path, body string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer errdefer.Close(&err, f)
	// NOTE: err must be a named return.

	_, err = io.WriteString(f, body)
	return err
}

// A failed Close after a successful write
// still surfaces as an error.
func ExampleClose() {
	dir, err := os.MkdirTemp("", "errdefer")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(dir) }()

	if err := writePage(filepath.Join(dir, "index.html"), "<html></html>"); err != nil {
		panic(err)
	}
}
