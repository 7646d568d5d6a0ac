// Command colorinfo prints the color models of the given colors and,
// optionally, the bounding box of a transformed rectangle.
//
// Usage:
//
//	colorinfo [-v] [-rect "x, y, w, h" [-matrix "a b c d e f"]] color...
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/prim"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("colorinfo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose = fs.Bool("v", false, "log rejected input to stderr")
		rectArg = fs.String("rect", "", "rectangle as \"x, y, width, height\"")
		matArg  = fs.String("matrix", "1 0 0 0 1 0", "affine transform as \"a b c d e f\"")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *verbose {
		prim.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer prim.SetLogger(nil)
	}

	if *rectArg == "" && fs.NArg() == 0 {
		fs.Usage()
		return errors.New("colorinfo: no colors or rect given")
	}

	if *rectArg != "" {
		if err := printRect(stdout, *rectArg, *matArg); err != nil {
			return err
		}
	}

	var failed int
	for _, arg := range fs.Args() {
		c, err := prim.ParseColor(arg)
		if err != nil {
			fmt.Fprintln(stderr, err)
			failed++
			continue
		}
		printColor(stdout, arg, c)
	}
	if failed > 0 {
		return fmt.Errorf("colorinfo: %d of %d colors could not be parsed", failed, fs.NArg())
	}
	return nil
}

func printColor(w io.Writer, input string, c prim.Color) {
	fmt.Fprintf(w, "%s\n", input)
	fmt.Fprintf(w, "  color: %s\n", c)
	fmt.Fprintf(w, "  argb:  0x%08x\n", c.ToUInt32())
	fmt.Fprintf(w, "  hsl:   %s\n", c.ToHsl())
	fmt.Fprintf(w, "  hsv:   %s\n", c.ToHsv())
}

func printRect(w io.Writer, rectArg, matArg string) error {
	r, err := prim.ParseRect(rectArg)
	if err != nil {
		return err
	}
	m, err := prim.ParseMatrix(matArg)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "rect:       %s\n", r)
	fmt.Fprintf(w, "normalized: %s\n", r.Normalize())
	fmt.Fprintf(w, "aabb:       %s\n", r.TransformToAABB(m))
	return nil
}
