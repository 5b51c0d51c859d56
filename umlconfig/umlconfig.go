// Package umlconfig holds the user settable options of diagram rendering.
//
// Options start from Default, are overridden by a TOML file and then by the
// environment:
//
//	font_family = "Go"
//	font_size = 12
//	measurer = "mono"
//	cache = false
//	note_color = "#e6e699"
package umlconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"oss.terrastruct.com/util-go/xdefer"

	"github.com/umlkit/umlkit/lib/color"
	"github.com/umlkit/umlkit/lib/env"
	"github.com/umlkit/umlkit/lib/textmeasure"
	"github.com/umlkit/umlkit/umlrender"
)

const (
	MEASURER_MONO  = "mono"
	MEASURER_RULER = "ruler"
)

type Options struct {
	FontFamily string `toml:"font_family" json:"fontFamily"`
	FontSize   int    `toml:"font_size" json:"fontSize"`
	Measurer   string `toml:"measurer" json:"measurer"`
	Cache      bool   `toml:"cache" json:"cache"`
	NoteColor  string `toml:"note_color" json:"noteColor"`
}

func Default() Options {
	return Options{
		FontFamily: string(textmeasure.GoFamily),
		FontSize:   textmeasure.DEFAULT_FONT_SIZE,
		Measurer:   MEASURER_MONO,
		NoteColor:  color.NoteFill,
	}
}

// Load returns the default options overridden by the TOML file at path.
// Unknown keys are an error.
func Load(fsys fs.FS, path string) (_ Options, err error) {
	defer xdefer.Errorf(&err, "failed to load config %s", path)

	opts := Default()
	md, err := toml.DecodeFS(fsys, path, &opts)
	if err != nil {
		return Options{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Options{}, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ApplyEnv overrides opts with UMLKIT_FONT_SIZE, UMLKIT_MEASURER and UMLKIT_CACHE.
func (opts *Options) ApplyEnv() {
	if size, ok := env.FontSize(); ok {
		opts.FontSize = size
	}
	if m, ok := env.Measurer(); ok {
		opts.Measurer = m
	}
	if cache, ok := env.Cache(); ok {
		opts.Cache = cache
	}
}

func (opts Options) Validate() error {
	var errs []error
	switch textmeasure.FontFamily(opts.FontFamily) {
	case textmeasure.GoFamily, textmeasure.MonoFamily:
	default:
		errs = append(errs, fmt.Errorf("unknown font family %q", opts.FontFamily))
	}
	if opts.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %d", opts.FontSize))
	}
	switch opts.Measurer {
	case MEASURER_MONO, MEASURER_RULER:
	default:
		errs = append(errs, fmt.Errorf("unknown measurer %q, expected %q or %q", opts.Measurer, MEASURER_MONO, MEASURER_RULER))
	}
	if err := color.Validate(opts.NoteColor); err != nil {
		errs = append(errs, fmt.Errorf("invalid note color %q: %w", opts.NoteColor, err))
	}
	return errors.Join(errs...)
}

func (opts Options) Font() textmeasure.Font {
	return textmeasure.Font{
		Family: textmeasure.FontFamily(opts.FontFamily),
		Size:   opts.FontSize,
	}
}

// NewMeasurer returns the measurer named by opts. The monospace grid scales with
// the font size from 7x16 cells at the default size.
func (opts Options) NewMeasurer() (textmeasure.Measurer, error) {
	switch opts.Measurer {
	case MEASURER_RULER:
		ruler, err := textmeasure.NewRuler()
		if err != nil {
			return nil, err
		}
		return ruler, nil
	case MEASURER_MONO:
		scale := float64(opts.FontSize) / textmeasure.DEFAULT_FONT_SIZE
		return textmeasure.NewMonospace(umlrender.DEFAULT_CELL_WIDTH*scale, umlrender.DEFAULT_LINE_HEIGHT*scale), nil
	default:
		return nil, fmt.Errorf("unknown measurer %q", opts.Measurer)
	}
}

// RendererOptions translates opts into options of umlrender.New.
func (opts Options) RendererOptions() (_ []umlrender.Option, err error) {
	defer xdefer.Errorf(&err, "failed to configure renderer")

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m, err := opts.NewMeasurer()
	if err != nil {
		return nil, err
	}
	noteColor, err := color.Normalize(opts.NoteColor)
	if err != nil {
		return nil, err
	}
	return []umlrender.Option{
		umlrender.WithMeasurer(m),
		umlrender.WithFont(opts.Font()),
		umlrender.WithNoteColor(noteColor),
		umlrender.WithCache(opts.Cache),
	}, nil
}
