package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soocke/box-annotator/domain/export"
)

func convertCmd() *cobra.Command {
	var (
		to  string
		out string
	)
	cmd := &cobra.Command{
		Use:   "convert <annotation.xml>",
		Short: "Convert a VOC annotation file to kitti, via or sloth",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(to)
			if err != nil {
				return err
			}
			doc, err := readVOC(args[0])
			if err != nil {
				return err
			}
			data, err := export.Encode(f, doc)
			if err != nil {
				return err
			}
			dst := out
			if dst == "" {
				dst = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + f.Suffix()
			}
			if filepath.Clean(dst) == filepath.Clean(args[0]) {
				return fmt.Errorf("refusing to overwrite input %s", args[0])
			}
			if err := os.WriteFile(dst, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", dst, err)
			}
			logger.Info("annotation converted", "format", string(f), "path", dst)
			fmt.Fprintln(cmd.OutOrStdout(), dst)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", string(export.FormatKITTI), "target format: kitti|via|sloth|voc")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default next to the input)")
	return cmd
}
