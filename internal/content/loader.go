package content

import (
	"encoding/json"
	"fmt"
	"io"
)

// Load decodes one embedded table. Unknown fields are an error so a
// misspelled key in a table cannot silently zero a value.
func Load[T any](filename string) (T, error) {
	f, err := dataFS.Open(filename)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("open embedded table %s: %w", filename, err)
	}
	defer f.Close()

	return decodeTable[T](filename, f)
}

func decodeTable[T any](name string, r io.Reader) (T, error) {
	var table T
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&table); err != nil {
		return table, fmt.Errorf("parse table %s: %w", name, err)
	}
	return table, nil
}

// MustLoad is Load for tables the game cannot run without.
func MustLoad[T any](filename string) T {
	table, err := Load[T](filename)
	if err != nil {
		panic(err)
	}
	return table
}
