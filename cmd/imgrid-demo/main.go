// Command imgrid-demo exercises the imgrid buffer operations on randomly
// generated images and reports the results. It performs no file I/O; it
// exists to demonstrate and smoke-test the library.
package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/alecthomas/kong"

	"github.com/imgrid/imgrid"
	"github.com/imgrid/imgrid/stdimage"
)

type sizeParams struct {
	Width  int `help:"Image width in pixels" default:"64"`
	Height int `help:"Image height in pixels" default:"64"`
	Seed   int `help:"Seed for the random pixel generator" default:"1"`
}

func (p sizeParams) Validate(kctx *kong.Context) error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", p.Width, p.Height)
	}
	return nil
}

type cli struct {
	Fill struct {
		sizeParams
		Value uint8 `help:"Gray value to fill the center quarter with" default:"255"`
	} `cmd:"" help:"Fill a region of a gray buffer and report checksums"`

	Blit struct {
		sizeParams
	} `cmd:"" help:"Copy a random region between two buffers"`

	Arith struct {
		sizeParams
	} `cmd:"" help:"Combine two random buffers elementwise"`

	Resize struct {
		sizeParams
		ToWidth  int `help:"Target width" default:"32"`
		ToHeight int `help:"Target height" default:"32"`
	} `cmd:"" help:"Scale a random RGBA buffer"`
}

func randomGray(w, h, seed int) *imgrid.Buffer[imgrid.Gray8] {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	return imgrid.Generate(w, h, func(x, y int) imgrid.Gray8 {
		return imgrid.Gray8{uint8(rng.UintN(256))}
	})
}

func randomRGBA(w, h, seed int) *imgrid.Buffer[imgrid.RGBA8] {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	return imgrid.Generate(w, h, func(x, y int) imgrid.RGBA8 {
		return imgrid.RGBA8{
			uint8(rng.UintN(256)),
			uint8(rng.UintN(256)),
			uint8(rng.UintN(256)),
			255,
		}
	})
}

func checksum[P imgrid.Pixel[P, S], S imgrid.Channel](img imgrid.Image[P]) uint64 {
	var sum uint64
	for _, p := range img.EnumeratePixels() {
		sum += uint64((*p).Sum())
	}
	return sum
}

func (c *cli) runFill(logger *slog.Logger) error {
	p := c.Fill
	b := randomGray(p.Width, p.Height, p.Seed)
	before := checksum[imgrid.Gray8, uint8](b)

	center := imgrid.NewRect(p.Width/4, p.Height/4, p.Width/2, p.Height/2)
	b.FillRect(center, imgrid.Gray8{p.Value})

	logger.Info("filled region",
		"rect", center.String(),
		"value", p.Value,
		"checksum.before", before,
		"checksum.after", checksum[imgrid.Gray8, uint8](b))
	return nil
}

func (c *cli) runBlit(logger *slog.Logger) error {
	p := c.Blit
	src := randomGray(p.Width, p.Height, p.Seed)
	dst := imgrid.New[imgrid.Gray8](p.Width, p.Height)

	quarter := imgrid.NewRect(0, 0, p.Width/2, p.Height/2)
	target, ok := dst.TranslateRect(quarter, p.Width/2, p.Height/2)
	if !ok {
		return fmt.Errorf("translated rect %v fell outside the image", quarter)
	}
	if err := dst.BlitRect(quarter, target, src); err != nil {
		return err
	}

	match := dst.SubImage(target).Equal(src.SubImage(quarter))
	logger.Info("blitted region", "src", quarter.String(), "dst", target.String(), "match", match)
	if !match {
		return fmt.Errorf("blitted region does not match its source")
	}
	return nil
}

func (c *cli) runArith(logger *slog.Logger) error {
	p := c.Arith
	a := randomGray(p.Width, p.Height, p.Seed)
	b := randomGray(p.Width, p.Height, p.Seed+1)

	sum, err := imgrid.Add[imgrid.Gray8, uint8](a, b)
	if err != nil {
		return err
	}
	diff, err := imgrid.Sub[imgrid.Gray8, uint8](sum, b)
	if err != nil {
		return err
	}

	logger.Info("combined buffers",
		"size", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"checksum.sum", checksum[imgrid.Gray8, uint8](sum),
		"roundtrip", diff.Equal(a))
	return nil
}

func (c *cli) runResize(logger *slog.Logger) error {
	p := c.Resize
	if p.ToWidth <= 0 || p.ToHeight <= 0 {
		return fmt.Errorf("invalid target size %dx%d", p.ToWidth, p.ToHeight)
	}
	src := randomRGBA(p.Width, p.Height, p.Seed)
	out := stdimage.Resize(src, p.ToWidth, p.ToHeight, nil)

	logger.Info("resized buffer",
		"from", fmt.Sprintf("%dx%d", p.Width, p.Height),
		"to", fmt.Sprintf("%dx%d", out.Width(), out.Height()),
		"checksum", checksum[imgrid.RGBA8, uint8](out))
	return nil
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var c cli
	kctx := kong.Parse(&c,
		kong.Name("imgrid-demo"),
		kong.Description("Exercise imgrid buffer operations on generated images."))

	var err error
	switch kctx.Command() {
	case "fill":
		err = c.runFill(logger)
	case "blit":
		err = c.runBlit(logger)
	case "arith":
		err = c.runArith(logger)
	case "resize":
		err = c.runResize(logger)
	default:
		err = fmt.Errorf("unsupported operation %q", kctx.Command())
	}
	if err != nil {
		logger.Error("operation failed", "error", err)
		os.Exit(1)
	}
}
