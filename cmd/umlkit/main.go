package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/util-go/xdefer"

	"github.com/umlkit/umlkit/lib/geo"
	"github.com/umlkit/umlkit/lib/log"
	timelib "github.com/umlkit/umlkit/lib/time"
	"github.com/umlkit/umlkit/lib/version"
	"github.com/umlkit/umlkit/lib/xmain"
	"github.com/umlkit/umlkit/umlconfig"
	"github.com/umlkit/umlkit/umlgraph"
	"github.com/umlkit/umlkit/umlrender"
	"github.com/umlkit/umlkit/umlserde"
)

func main() {
	xmain.Main(run)
}

type flags struct {
	config   *string
	fontSize *int64
	measurer *string
	cache    *bool
	debug    *bool
	pad      *int64
	version  *bool

	edgeType *string
	from     *string
	to       *string
	out      *string
}

func parseFlags(ms *xmain.State) (*flags, error) {
	f := &flags{}
	var err error

	f.config = ms.Opts.String("UMLKIT_CONFIG", "config", "c", "", "path to a TOML file with rendering options.")
	f.fontSize, err = ms.Opts.Int64("", "font-size", "", 0, "font size in pixels. Overrides the config file and $UMLKIT_FONT_SIZE.")
	if err != nil {
		return nil, err
	}
	f.measurer = ms.Opts.String("", "measurer", "m", "", `text measurer: "mono" or "ruler". Overrides the config file and $UMLKIT_MEASURER.`)
	f.cache, err = ms.Opts.Bool("", "cache", "", false, "memoize element bounds while rendering.")
	if err != nil {
		return nil, err
	}
	f.debug, err = ms.Opts.Bool("UMLKIT_DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("invalid UMLKIT_DEBUG value ignored")
		f.debug = ms.Opts.Flags.Bool("debug", false, "print debug logs.")
	}
	f.pad, err = ms.Opts.Int64("UMLKIT_PAD", "pad", "", 10, "pixels padded around the rendered diagram.")
	if err != nil {
		return nil, err
	}
	f.version, err = ms.Opts.Bool("", "version", "v", false, "print the version.")
	if err != nil {
		return nil, err
	}

	f.edgeType = ms.Opts.String("", "type", "t", "", "check: kind of the edge, e.g. StateTransitionEdge.")
	f.from = ms.Opts.String("", "from", "", "", "check: x,y point the edge is drawn from.")
	f.to = ms.Opts.String("", "to", "", "", "check: x,y point the edge is drawn to.")
	f.out = ms.Opts.String("", "out", "o", "", "check: add the edge when permitted and write the diagram there.")

	return f, ms.Opts.Parse()
}

func run(ctx context.Context, ms *xmain.State) (err error) {
	f, err := parseFlags(ms)
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}
	if err != nil {
		return err
	}
	if *f.debug {
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}

	args := ms.Opts.Flags.Args()
	if *f.version || (len(args) > 0 && args[0] == "version") {
		fmt.Fprintln(ms.Stdout, version.Version)
		return nil
	}
	if len(args) == 0 {
		help(ms)
		return nil
	}

	ctx, cancel := timelib.WithTimeout(ctx, time.Minute)
	defer cancel()

	switch args[0] {
	case "bounds":
		if len(args) != 2 {
			return xmain.UsageErrorf("bounds must be passed exactly one diagram file")
		}
		return boundsCmd(ctx, ms, f, args[1])
	case "check":
		if len(args) != 2 {
			return xmain.UsageErrorf("check must be passed exactly one diagram file")
		}
		return checkCmd(ctx, ms, f, args[1])
	case "render":
		if len(args) < 2 || len(args) > 3 {
			return xmain.UsageErrorf("render must be passed a diagram file and optionally an output file")
		}
		outputPath := ""
		if len(args) == 3 {
			outputPath = args[2]
		}
		return renderCmd(ctx, ms, f, args[1], outputPath)
	default:
		return xmain.UsageErrorf("unknown subcommand %q", args[0])
	}
}

// options layers, from lowest to highest precedence: defaults, the config file,
// the environment and explicit flags.
func options(ms *xmain.State, f *flags) (_ umlconfig.Options, err error) {
	defer xdefer.Errorf(&err, "failed to read options")

	opts := umlconfig.Default()
	if *f.config != "" {
		opts, err = umlconfig.Load(os.DirFS(filepath.Dir(*f.config)), filepath.Base(*f.config))
		if err != nil {
			return umlconfig.Options{}, err
		}
	}
	opts.ApplyEnv()
	if ms.Opts.Flags.Changed("font-size") {
		opts.FontSize = int(*f.fontSize)
	}
	if ms.Opts.Flags.Changed("measurer") {
		opts.Measurer = *f.measurer
	}
	if ms.Opts.Flags.Changed("cache") {
		opts.Cache = *f.cache
	}
	if err := opts.Validate(); err != nil {
		return umlconfig.Options{}, xmain.UsageErrorf("%v", err)
	}
	return opts, nil
}

// load reads the diagram at inputPath and returns it with its renderer.
func load(ctx context.Context, ms *xmain.State, f *flags, inputPath string) (*umlgraph.Diagram, *umlrender.Renderer, error) {
	opts, err := options(ms, f)
	if err != nil {
		return nil, nil, err
	}
	ropts, err := opts.RendererOptions()
	if err != nil {
		return nil, nil, err
	}

	input, err := ms.ReadPath(inputPath)
	if err != nil {
		return nil, nil, err
	}
	d, err := umlserde.Read(bytes.NewReader(input))
	if err != nil {
		return nil, nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	log.Debug(ctx, "loaded diagram",
		slog.F("path", inputPath),
		slog.F("type", d.Type().String()),
		slog.F("nodes", len(d.Nodes())),
		slog.F("edges", len(d.Edges())),
		slog.F("options", opts),
	)
	return d, umlrender.New(d, ropts...), nil
}

func parsePoint(flag, s string) (geo.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geo.Point{}, xmain.UsageErrorf("--%s must be x,y, got %q", flag, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return geo.Point{}, xmain.UsageErrorf("--%s must be x,y, got %q", flag, s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return geo.Point{}, xmain.UsageErrorf("--%s must be x,y, got %q", flag, s)
	}
	return geo.NewPoint(x, y), nil
}

// newExt must include leading .
func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
