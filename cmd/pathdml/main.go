// Command pathdml converts SVG path data into DrawingML shape XML.
//
// Paths are read from command-line arguments, from a file (one path per
// line, # comments allowed), or from stdin when neither is given.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/svgeom/pathdml"
	"github.com/svgeom/pathdml/cache"
)

// config mirrors the optional TOML configuration file.
type config struct {
	Viewport struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
		DPI    float64 `toml:"dpi"`
	} `toml:"viewport"`
	ViewBox *struct {
		MinX   float64 `toml:"min_x"`
		MinY   float64 `toml:"min_y"`
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"viewbox"`
	Decimals  int               `toml:"decimals"`
	Precision int               `toml:"precision"`
	Attrs     map[string]string `toml:"attrs"`
}

func main() {
	var (
		configPath = flag.String("config", "", "TOML configuration file")
		inputPath  = flag.String("file", "", "file with one SVG path per line")
		width      = flag.Float64("width", 0, "viewport width in user units")
		height     = flag.Float64("height", 0, "viewport height in user units")
		dpi        = flag.Float64("dpi", 0, "resolution for EMU conversion (default 96)")
		decimals   = flag.Int("decimals", 0, "decimal places for target coordinates (0 = integers)")
		echo       = flag.Bool("echo", false, "re-emit the parsed path as SVG instead of XML")
		stats      = flag.Bool("stats", false, "print cache and generator statistics to stderr")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		pathdml.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *width > 0 {
		cfg.Viewport.Width = *width
	}
	if *height > 0 {
		cfg.Viewport.Height = *height
	}
	if *dpi > 0 {
		cfg.Viewport.DPI = *dpi
	}
	if *decimals > 0 {
		cfg.Decimals = *decimals
	}

	opts := []pathdml.Option{
		pathdml.WithCache(cache.New[string, *pathdml.Result](256, 8<<20)),
		pathdml.WithPool(cache.NewBufferPool(0)),
	}
	if cfg.Decimals > 0 {
		opts = append(opts, pathdml.WithDecimalCoords(cfg.Decimals))
	}
	if cfg.Precision > 0 {
		opts = append(opts, pathdml.WithPrecision(cfg.Precision))
	}
	if cfg.Viewport.Width > 0 && cfg.Viewport.Height > 0 {
		vp := pathdml.Viewport{
			Width:  cfg.Viewport.Width,
			Height: cfg.Viewport.Height,
			DPI:    cfg.Viewport.DPI,
		}
		if vb := cfg.ViewBox; vb != nil {
			vp.ViewBox = &pathdml.ViewBox{
				MinX: vb.MinX, MinY: vb.MinY,
				Width: vb.Width, Height: vb.Height,
			}
		}
		opts = append(opts, pathdml.WithViewport(vp))
	}

	eng, err := pathdml.New(opts...)
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	paths, err := collectPaths(*inputPath, flag.Args())
	if err != nil {
		log.Fatalf("input: %v", err)
	}
	if len(paths) == 0 {
		log.Fatal("no path data given")
	}

	failed := 0
	for _, out := range eng.ProcessAll(paths, pathdml.ProcessParams{Attrs: cfg.Attrs}) {
		if out.Err != nil {
			failed++
			fmt.Fprintln(os.Stderr, out.Err)
			continue
		}
		if *echo {
			fmt.Println(eng.SVG(out.Result.Path))
		} else {
			fmt.Println(out.Result.XML)
		}
	}

	if *stats {
		cs := eng.CacheStats()
		gs := eng.GeneratorStats()
		fmt.Fprintf(os.Stderr, "cache: %d entries, %d bytes, hit rate %.2f\n",
			cs.Len, cs.Bytes, cs.HitRate)
		fmt.Fprintf(os.Stderr, "generated: %d paths, %d commands in %s\n",
			gs.Paths, gs.Commands, gs.Elapsed)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func loadConfig(path string) (config, error) {
	var cfg config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// collectPaths gathers path data from args, a file, or stdin. Blank lines
// and # comments are skipped.
func collectPaths(file string, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	in := os.Stdin
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var paths []string
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	return paths, sc.Err()
}
