// Command bidi is a CLI front-end over the bidi resolver: resolve
// embedding levels, produce a visually reordered string, strip explicit
// formatting codes, or process a whole stream of lines concurrently.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"gobidi/pkg/bidi"
	"gobidi/pkg/cache"
	"gobidi/pkg/charset"
	"gobidi/pkg/chartables"
	"gobidi/pkg/trace"
	"gobidi/pkg/utils"
)

func main() {
	app := &cli.App{
		Name:  "bidi",
		Usage: "resolve and reorder text per the Unicode Bidirectional Algorithm",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "charset", Value: "utf8", Usage: "input charset: " + strings.Join(charset.Names(), ", ")},
			&cli.StringFlag{Name: "base", Value: "auto", Usage: "paragraph base direction: auto, ltr, rtl"},
			&cli.BoolFlag{Name: "debug", Usage: "stream pass-by-pass trace events to stderr"},
			&cli.StringFlag{Name: "file", Usage: "read the input text from this file instead of the positional argument"},
		},
		Commands: []*cli.Command{
			levelsCommand,
			reorderCommand,
			removeExplicitsCommand,
			batchCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func parseDirection(s string) (bidi.Direction, error) {
	switch s {
	case "auto":
		return bidi.DirectionAuto, nil
	case "ltr":
		return bidi.DirectionLTR, nil
	case "rtl":
		return bidi.DirectionRTL, nil
	default:
		return bidi.DirectionAuto, fmt.Errorf("invalid --base %q (want auto, ltr, or rtl)", s)
	}
}

func decodeArg(c *cli.Context) ([]rune, []bidi.Type, error) {
	cs, err := charset.Lookup(c.String("charset"))
	if err != nil {
		return nil, nil, err
	}

	raw, err := inputText(c)
	if err != nil {
		return nil, nil, err
	}

	text, err := cs.Decode(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("decode: %w", err)
	}
	return text, chartables.ClassifyString(string(text)), nil
}

// inputText returns the raw (pre-charset-decode) text for a command: the
// contents of --file, resolved to an absolute path the way the teacher's
// file-loading helper always has, or the positional argument.
func inputText(c *cli.Context) (string, error) {
	if path := c.String("file"); path != "" {
		fullPath, _, err := utils.GetPathInfo(path)
		if err != nil {
			return "", fmt.Errorf("resolve %q: %w", path, err)
		}
		data, err := os.ReadFile(fullPath)
		if err != nil {
			return "", fmt.Errorf("read %q: %w", fullPath, err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}
	if c.NArg() < 1 {
		return "", fmt.Errorf("missing text argument (or --file)")
	}
	return c.Args().Get(0), nil
}

func optionsFor(c *cli.Context) *bidi.Options {
	opts := bidi.DefaultOptions()
	if c.Bool("debug") {
		opts.Tracer = trace.NewStderr()
	}
	return &opts
}

var levelsCommand = &cli.Command{
	Name:  "levels",
	Usage: "print one resolved embedding level per code point",
	Action: func(c *cli.Context) error {
		text, types, err := decodeArg(c)
		if err != nil {
			return err
		}
		dir, err := parseDirection(c.String("base"))
		if err != nil {
			return err
		}
		levels, err := bidi.GetEmbeddingLevels(types, dir, optionsFor(c))
		if err != nil {
			return err
		}
		for i, lvl := range levels {
			fmt.Printf("%c\t%d\n", text[i], lvl)
		}
		return nil
	},
}

var reorderCommand = &cli.Command{
	Name:  "reorder",
	Usage: "print the visually reordered string and the logical<->visual index arrays",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "no-mirror", Usage: "disable L4 glyph mirroring"},
	},
	Action: func(c *cli.Context) error {
		text, types, err := decodeArg(c)
		if err != nil {
			return err
		}
		dir, err := parseDirection(c.String("base"))
		if err != nil {
			return err
		}
		opts := optionsFor(c)
		opts.Mirroring = !c.Bool("no-mirror")
		result, err := bidi.LogToVisual(text, types, dir, opts)
		if err != nil {
			return err
		}
		fmt.Printf("visual: %s\n", string(result.VisualText))
		fmt.Printf("visual->logical: %v\n", result.VisualOrder)
		logicalToVisual := make([]int, len(result.VisualOrder))
		for visual, logical := range result.VisualOrder {
			logicalToVisual[logical] = visual
		}
		fmt.Printf("logical->visual: %v\n", logicalToVisual)
		return nil
	},
}

var removeExplicitsCommand = &cli.Command{
	Name:  "remove-explicits",
	Usage: "print the text with explicit formatting codes removed",
	Action: func(c *cli.Context) error {
		text, types, err := decodeArg(c)
		if err != nil {
			return err
		}
		out, _ := bidi.RemoveExplicits(text, types)
		fmt.Println(string(out))
		return nil
	},
}

var batchCommand = &cli.Command{
	Name:  "batch",
	Usage: "analyse lines from stdin concurrently, printing one result per line in input order",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "cache", Usage: "cache repeated lines within this run"},
	},
	Action: func(c *cli.Context) error {
		cs, err := charset.Lookup(c.String("charset"))
		if err != nil {
			return err
		}
		dir, err := parseDirection(c.String("base"))
		if err != nil {
			return err
		}

		var store *cache.Store
		if c.Bool("cache") {
			store = cache.New(64 << 20)
		}

		var lines []string
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		results := make([]string, len(lines))
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))

		for i, line := range lines {
			i, line := i, line
			g.Go(func() error {
				key := c.String("base") + "|" + line
				if store != nil {
					if cached, err := store.Get(key); err == nil {
						results[i] = string(cached.VisualText)
						return nil
					}
				}

				text, err := cs.Decode(line)
				if err != nil {
					return fmt.Errorf("line %d: decode: %w", i+1, err)
				}
				types := chartables.ClassifyString(string(text))
				result, err := bidi.LogToVisual(text, types, dir, optionsFor(c))
				if err != nil {
					return fmt.Errorf("line %d: %w", i+1, err)
				}
				results[i] = string(result.VisualText)

				if store != nil {
					_ = store.Put(key, *result)
				}
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}
		for _, r := range results {
			fmt.Println(r)
		}
		return nil
	},
}

func init() {
	log.SetFlags(0)
}
