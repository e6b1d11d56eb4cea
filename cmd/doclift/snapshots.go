package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	doclift "github.com/doclift/doclift"
	"github.com/doclift/doclift/dom"
)

func loadView(file string) (*dom.Element, error) {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return viewFromData(data)
}

// viewFromData sniffs the snapshot form: serialized HTML leads with '<',
// anything else is taken as a JSON element dump.
func viewFromData(data []byte) (*dom.Element, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '<' {
		return dom.FromHTML(bytes.NewReader(data))
	}
	return dom.FromSnapshot(data)
}

func assembleFile(cfg *MainConfig, file string) (*doclift.Document, error) {
	view, err := loadView(file)
	if err != nil {
		return nil, err
	}
	return doclift.Assemble(view, doclift.WithLocation(cfg.URL))
}
