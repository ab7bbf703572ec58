// Command legacymsg decodes, encodes, and conformance-checks legacy message
// data from the command line.
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/holeyfield33-art/legacymsg"
	"github.com/holeyfield33-art/legacymsg/internal/conformance"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "decode":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: legacymsg decode <file.json>")
			os.Exit(1)
		}
		if err := runDecode(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "encode":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "Usage: legacymsg encode <file.json>")
			os.Exit(1)
		}
		if err := runEncode(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		path := ""
		if len(os.Args) >= 3 {
			path = os.Args[2]
		}
		if err := runCheck(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "legacymsg — legacy message codec tool")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  legacymsg decode <file.json>    Parse a textual message and print its canonical signing form")
	fmt.Fprintln(os.Stderr, "  legacymsg encode <file.json>    Parse a textual message and print its binary encoding as hex")
	fmt.Fprintln(os.Stderr, "  legacymsg check [vectors.json]  Run conformance vectors (built in, unless a file is given)")
}

func runDecode(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	v, err := legacymsg.FromSliceOrdered(data)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	signing := legacymsg.ToString(v, true)
	fmt.Println(signing)
	fmt.Fprintf(os.Stderr, "message length: %d\n", legacymsg.MessageLength(signing))
	return nil
}

func runEncode(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	v, err := legacymsg.FromSliceOrdered(data)
	if err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	bin := legacymsg.EncodeBinary(v)
	fmt.Println(hex.EncodeToString(bin))
	return nil
}

func runCheck(path string) error {
	vectors := conformance.Builtin()
	if path != "" {
		loaded, err := conformance.LoadVectors(path)
		if err != nil {
			return err
		}
		vectors = loaded
	}

	results, err := conformance.Run(vectors)

	for _, r := range results {
		status := "PASS"
		if !r.Pass {
			status = "FAIL"
			slog.Warn("conformance vector failed", "name", r.Name, "got", r.Got)
		}
		fmt.Printf("  %s: %s\n", r.Name, status)
	}

	if err != nil {
		return err
	}

	fmt.Printf("\nAll %d vectors: PASS\n", len(results))
	return nil
}
