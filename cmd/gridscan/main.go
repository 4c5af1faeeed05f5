package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/borfudin/visionnet/internal/affine"
	"github.com/borfudin/visionnet/internal/grid"
	"github.com/borfudin/visionnet/internal/imaging"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("gridscan - inspect images as numeric grids")
	fmt.Println()
	fmt.Println("Usage: gridscan <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  sum      Sum a rectangular region of an image channel")
	fmt.Println("  patch    Extract a border-replicated window as a PNG")
	fmt.Println("  fit      Fit an affine transform to point correspondences")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Run 'gridscan <command> -h' for command options.")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("gridscan %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		usage()
		return
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var err error
	switch os.Args[1] {
	case "sum":
		err = runSum(os.Args[2:])
	case "patch":
		err = runPatch(os.Args[2:])
	case "fit":
		err = runFit(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

// loadGrid decodes an image into a grid, as luminance by default or as
// three RGB channels when rgb is set.
func loadGrid(path string, rgb bool) (*grid.Grid, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	if rgb {
		return imaging.FromImage(img)
	}
	return imaging.FromImageGray(img)
}

func runSum(args []string) error {
	fs := flag.NewFlagSet("sum", flag.ExitOnError)
	in := fs.String("in", "", "input image path (required)")
	row := fs.Int("row", 0, "start row of the region")
	col := fs.Int("col", 0, "start column of the region")
	height := fs.Int("height", 1, "region height")
	width := fs.Int("width", 1, "region width")
	ch := fs.Int("ch", 0, "channel index")
	rgb := fs.Bool("rgb", false, "load RGB channels instead of luminance")
	integral := fs.Bool("integral", false, "sum via a summed-area table")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("missing required -in flag")
	}

	g, err := loadGrid(*in, *rgb)
	if err != nil {
		return err
	}
	if *ch < 0 || *ch >= g.Channels() {
		return fmt.Errorf("channel %d out of range (image has %d)", *ch, g.Channels())
	}
	if *integral {
		if g, err = grid.NewIntegral(g); err != nil {
			return err
		}
	}

	sum := g.RectangleSum(*row, *col, *height, *width, *ch)
	fmt.Printf("%s: %dx%dx%d (%s mode)\n", *in, g.Rows(), g.Cols(), g.Channels(), g.Mode())
	fmt.Printf("sum over %dx%d at (%d,%d) channel %d: %d\n", *height, *width, *row, *col, *ch, sum)
	return nil
}

func runPatch(args []string) error {
	fs := flag.NewFlagSet("patch", flag.ExitOnError)
	in := fs.String("in", "", "input image path (required)")
	out := fs.String("out", "patch.png", "output PNG path")
	row := fs.Int("row", 0, "start row of the window")
	col := fs.Int("col", 0, "start column of the window")
	height := fs.Int("height", 0, "window height (required)")
	width := fs.Int("width", 0, "window width (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("missing required -in flag")
	}
	if *height <= 0 || *width <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", *height, *width)
	}

	g, err := loadGrid(*in, false)
	if err != nil {
		return err
	}

	patch := g.ExtractRectangle(*row, *col, *height, *width)
	if err := imaging.SaveChannelPNG(patch, 0, *out); err != nil {
		return err
	}
	fmt.Printf("wrote %dx%d patch at (%d,%d) to %s\n", *height, *width, *row, *col, *out)
	return nil
}

// readPairs parses correspondence lines of the form "x y x' y'". Blank
// lines and lines starting with # are skipped.
func readPairs(path string) (src, dst []affine.Point, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		var s, d affine.Point
		if _, err := fmt.Sscan(text, &s.X, &s.Y, &d.X, &d.Y); err != nil {
			return nil, nil, fmt.Errorf("%s:%d: expected 'x y x2 y2': %w", path, line, err)
		}
		src = append(src, s)
		dst = append(dst, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return src, dst, nil
}

func runFit(args []string) error {
	fs := flag.NewFlagSet("fit", flag.ExitOnError)
	pairs := fs.String("pairs", "", "correspondence file, one 'x y x2 y2' line per pair (required)")
	out := fs.String("out", "", "write the fitted 2x3 matrix to this file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *pairs == "" {
		return fmt.Errorf("missing required -pairs flag")
	}

	src, dst, err := readPairs(*pairs)
	if err != nil {
		return err
	}

	var model affine.Model
	if err := model.Fit(src, dst); err != nil {
		return err
	}

	m := model.Matrix()
	fmt.Printf("fitted from %d pairs (minimum %d)\n", model.Consensus(), model.MinFitCount())
	fmt.Printf("%g %g %g\n%g %g %g\n", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])

	if *out != "" {
		if err := model.SaveFile(*out); err != nil {
			return err
		}
		fmt.Printf("wrote model to %s\n", *out)
	}
	return nil
}
