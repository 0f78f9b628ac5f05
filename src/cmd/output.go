package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"cryptoclassic/src/types"
)

// EmitJSON pretty-prints a result document. The encoder handles all string
// escaping, including control bytes, so message text can be echoed safely.
func EmitJSON(w io.Writer, doc any) error {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

// EmitError prints the single-field error document used by every binary on
// failure.
func EmitError(w io.Writer, err error) {
	// Marshalling a flat string field cannot fail; ignore the write error
	// too, there is nowhere left to report it.
	out, _ := json.Marshal(types.ErrorDocument{Error: err.Error()})
	fmt.Fprintf(w, "%s\n", out)
}
