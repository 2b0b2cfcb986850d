// Command groundprobe samples a level without opening a window and prints the
// tile and ground height found at each sampled x.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"text/tabwriter"

	"github.com/milk9111/levelgeo/assets"
	"github.com/milk9111/levelgeo/level"
	"github.com/milk9111/levelgeo/levels"
	"github.com/milk9111/levelgeo/render"
)

func main() {
	levelName := flag.String("level", "level_01", "level name in levels/ (basename, extension optional)")
	step := flag.Float64("step", 32, "distance between samples")
	from := flag.Float64("from", 0, "first x to sample")
	to := flag.Float64("to", -1, "sample up to this x (default: level length)")
	list := flag.Bool("list", false, "list available levels and exit")
	listAssets := flag.Bool("assets", false, "list embedded image assets and exit")
	flag.Parse()

	if *listAssets {
		if err := ListAssets(os.Stdout, assets.FS()); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *list {
		names, err := levels.Names(levels.LevelsFS)
		if err != nil {
			log.Fatal(err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	lvl, err := levels.Load(*levelName, render.Headless{Dirs: []string{"assets"}})
	if err != nil {
		log.Fatal(err)
	}
	if *step <= 0 {
		log.Fatalf("step must be positive, got %v", *step)
	}
	end := *to
	if end < 0 {
		end = lvl.Length()
	}

	if err := Probe(os.Stdout, lvl, *from, end, *step); err != nil {
		log.Fatal(err)
	}
}

// Probe writes one row per sample in [from, to).
func Probe(w io.Writer, lvl *level.Level, from, to, step float64) error {
	fmt.Fprintf(w, "%v\n", lvl)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "x\ttile\ttile x\ttile y\tground")
	for x := from; x < to; x += step {
		cell, err := lvl.TileAt(x)
		if errors.Is(err, level.ErrOutOfRange) {
			fmt.Fprintf(tw, "%.1f\t-\t-\t-\tout of range\n", x)
			continue
		}
		if err != nil {
			return err
		}
		g, err := lvl.GroundAt(x)
		if err != nil {
			return err
		}
		ground := "none"
		if h, ok := g.Height(); ok {
			ground = fmt.Sprintf("%.1f", h)
		}
		fmt.Fprintf(tw, "%.1f\t%c\t%.0f\t%.0f\t%s\n", x, cell.Code, cell.X, cell.Y, ground)
	}
	return tw.Flush()
}

// ListAssets writes every embedded image path with its pixel size.
func ListAssets(w io.Writer, fsys fs.FS) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		f, err := fsys.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		cfg, _, err := image.DecodeConfig(f)
		if err != nil {
			return fmt.Errorf("groundprobe: %s: %w", p, err)
		}
		fmt.Fprintf(tw, "%s\t%dx%d\n", p, cfg.Width, cfg.Height)
		return nil
	})
	if err != nil {
		return err
	}
	return tw.Flush()
}
