package main

import (
	"context"

	"oss.terrastruct.com/util-go/go2"
	"oss.terrastruct.com/util-go/xdefer"

	"github.com/umlkit/umlkit/lib/xmain"
	"github.com/umlkit/umlkit/umlrender/umlsvg"
)

func renderCmd(ctx context.Context, ms *xmain.State, f *flags, inputPath, outputPath string) (err error) {
	defer xdefer.Errorf(&err, "failed to render %s", inputPath)

	if outputPath == "" {
		if inputPath == "-" {
			outputPath = "-"
		} else {
			outputPath = renameExt(inputPath, ".svg")
		}
	}
	if *f.pad < 0 {
		return xmain.UsageErrorf("--pad must not be negative")
	}

	_, r, err := load(ctx, ms, f, inputPath)
	if err != nil {
		return err
	}
	svg := umlsvg.Render(r, &umlsvg.RenderOpts{
		Pad: go2.Pointer(*f.pad),
	})
	err = ms.WritePath(outputPath, svg)
	if err != nil {
		return err
	}
	if outputPath != "-" {
		ms.Log.Success.Printf("successfully rendered %s to %s", inputPath, outputPath)
	}
	return nil
}
