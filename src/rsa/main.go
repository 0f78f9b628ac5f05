package main

import (
	"fmt"
	"os"

	"cryptoclassic/src/cmd"
)

func main() {
	if len(os.Args) < 2 {
		cmd.EmitError(os.Stdout, fmt.Errorf("usage: rsa <command> [args...]"))
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "generate":
		err = cmd.RSAGenerateCommand(os.Stdout, args)
	case "encrypt":
		err = cmd.RSAEncryptCommand(os.Stdout, args)
	case "decrypt":
		err = cmd.RSADecryptCommand(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		cmd.EmitError(os.Stdout, fmt.Errorf("unknown command: %s", command))
		os.Exit(1)
	}

	if err != nil {
		cmd.EmitError(os.Stdout, err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "rsa - textbook RSA key generation, encryption and decryption\n\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "  rsa generate\n")
	fmt.Fprintf(os.Stderr, "  rsa encrypt <message> <n> <e>\n")
	fmt.Fprintf(os.Stderr, "  rsa decrypt <encrypted_hex> <n> <d>\n\n")
	fmt.Fprintf(os.Stderr, "Output is a single JSON object on stdout. n, e and d are decimal,\n")
	fmt.Fprintf(os.Stderr, "ciphertext is unprefixed hexadecimal.\n")
}
