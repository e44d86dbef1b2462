package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch backs -debug.
// The bare flag sends output to a fallback writer (stderr),
// and "-debug=FILE" sends it to FILE.
// Without the flag, output is dropped.
//
// The stored value is "" when unset, "-" for the bare flag,
// or the file path.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the stored value as a string.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the stored value.
func (fs *FileSwitch) String() string { return string(*fs) }

// IsBoolFlag lets the flag appear without a value.
func (*FileSwitch) IsBoolFlag() bool { return true }

// Set records v. The flag package passes "true" for the bare flag.
func (fs *FileSwitch) Set(v string) error {
	if v == "true" {
		v = "-"
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether the flag was given at all.
func (fs *FileSwitch) Bool() bool { return *fs != "" }

// Create resolves the switch into a writer.
// The returned close function must be called when done;
// it closes the file if one was opened.
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch path := string(*fs); path {
	case "":
		return io.Discard, noClose, nil
	case "-":
		return fallback, noClose, nil
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		return f, f.Close, nil
	}
}

func noClose() error { return nil }
