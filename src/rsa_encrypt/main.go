package main

import (
	"os"

	"cryptoclassic/src/cmd"
)

// rsa_encrypt is the split variant of `rsa encrypt`:
// rsa_encrypt <message> <n> <e>.
func main() {
	if err := cmd.RSAEncryptCommand(os.Stdout, os.Args[1:]); err != nil {
		cmd.EmitError(os.Stdout, err)
		os.Exit(1)
	}
}
