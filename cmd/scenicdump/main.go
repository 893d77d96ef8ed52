// Command scenicdump decodes a binary script file and prints its
// operations, one per line. Useful for inspecting what a script
// producer actually emitted.
//
// Usage:
//
//	scenicdump script.bin
//	producer | scenicdump -
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/colibri-cam/scenic-driver-skia/script"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: scenicdump <file | ->")
		os.Exit(2)
	}

	var (
		buf []byte
		err error
	)
	if os.Args[1] == "-" {
		buf, err = io.ReadAll(os.Stdin)
	} else {
		buf, err = os.ReadFile(os.Args[1])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "scenicdump: %v\n", err)
		os.Exit(1)
	}

	ops, err := script.Decode(buf)
	if err != nil {
		var derr *script.DecodeError
		if errors.As(err, &derr) {
			fmt.Fprintf(os.Stderr, "scenicdump: %v\n", derr)
		} else {
			fmt.Fprintf(os.Stderr, "scenicdump: %v\n", err)
		}
		os.Exit(1)
	}

	for i, op := range ops {
		fmt.Printf("%4d  %T%+v\n", i, op, op)
	}
	fmt.Printf("%d operations, %d bytes\n", len(ops), len(buf))
}
