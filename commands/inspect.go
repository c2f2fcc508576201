package commands

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/soocke/box-annotator/domain/annotate"
	"github.com/soocke/box-annotator/domain/export"
	"github.com/soocke/box-annotator/ui/images"
)

func inspectCmd() *cobra.Command {
	var (
		imagePath  string
		renderPath string
		maxSide    int
	)
	cmd := &cobra.Command{
		Use:   "inspect <annotation.xml>",
		Short: "Print the boxes of a VOC annotation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readVOC(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %dx%d, %d object(s)\n", doc.Filename, doc.Size.Width, doc.Size.Height, len(doc.Objects))
			for _, o := range doc.Objects {
				b := o.BndBox
				fmt.Fprintf(out, "  %s: xmin=%d ymin=%d xmax=%d ymax=%d (%dx%d)\n",
					o.Name, b.XMin, b.YMin, b.XMax, b.YMax, b.XMax-b.XMin, b.YMax-b.YMin)
			}
			if renderPath == "" {
				return nil
			}
			if imagePath == "" {
				return fmt.Errorf("--render requires --image")
			}
			img, err := images.Load(imagePath)
			if err != nil {
				return err
			}
			rs := annotate.RenderState{Boxes: doc.Rects(), Selected: annotate.NoSelection}
			rendered := images.Fit(images.RenderOverlay(img, rs, cfg.HandleSize), maxSide, maxSide)
			if err := imaging.Save(rendered, renderPath); err != nil {
				return fmt.Errorf("save render: %w", err)
			}
			logger.Info("overlay rendered", "path", renderPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&imagePath, "image", "", "image the annotation belongs to")
	cmd.Flags().StringVar(&renderPath, "render", "", "write the image with boxes drawn to this file")
	cmd.Flags().IntVar(&maxSide, "max-size", 4096, "longest side of the rendered image")
	return cmd
}

func readVOC(path string) (export.VOCAnnotation, error) {
	f, err := os.Open(path)
	if err != nil {
		return export.VOCAnnotation{}, err
	}
	defer f.Close()
	return export.ParseVOC(f)
}
