// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/gotomicro/ego/core/elog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/photopdf/internal/convert"
	"github.com/pdiddy/photopdf/internal/inspect"
	"github.com/pdiddy/photopdf/internal/launcher"
	"github.com/pdiddy/photopdf/internal/pdfdoc"
	"github.com/pdiddy/photopdf/internal/session"
	"github.com/pdiddy/photopdf/internal/source"
	"github.com/pdiddy/photopdf/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert [images...]",
	Short: "Combine images into a single PDF",
	Long: `Convert places each image on its own page, in the order given, and
writes <name>.pdf to the data directory. Arguments may be image files,
directories (their images in name order), glob patterns, or http(s) URLs.

A manifest file can supply the images and layout instead. Use --move and
--drop to rearrange the list before converting; indices are zero-based and
drops are applied before moves.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("name", "", "output file name without extension (default \"photos\")")
	convertCmd.Flags().String("page-size", "", "page size: A4, Letter, or A5")
	convertCmd.Flags().String("orientation", "", "page orientation: portrait or landscape")
	convertCmd.Flags().String("fit", "", "image fit: contain, cover, fill, fit-width, fit-height, or scale-down")
	convertCmd.Flags().String("margin", "", "page margin in points (default 20)")
	convertCmd.Flags().String("manifest", "", "YAML manifest listing images and layout options")
	convertCmd.Flags().String("save-manifest", "", "write the final image list and options to this YAML file")
	convertCmd.Flags().Bool("camera", false, "capture a photo with the configured camera and append it")
	convertCmd.Flags().StringArray("move", nil, "move an image, as from:to (repeatable)")
	convertCmd.Flags().IntSlice("drop", nil, "remove the image at this index (repeatable)")
	convertCmd.Flags().Bool("open", false, "open the PDF when done")
	convertCmd.Flags().Bool("share", false, "share the PDF when done")

	viper.BindPFlag("layout.name", convertCmd.Flags().Lookup("name"))
	viper.BindPFlag("layout.page_size", convertCmd.Flags().Lookup("page-size"))
	viper.BindPFlag("layout.orientation", convertCmd.Flags().Lookup("orientation"))
	viper.BindPFlag("layout.fit", convertCmd.Flags().Lookup("fit"))
	viper.BindPFlag("layout.margin", convertCmd.Flags().Lookup("margin"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	var sess *session.Session
	pipeline := convert.New(cfg.Convert, convert.Deps{
		Reader: source.NewResolver(cfg.Fetch),
		NewDocument: func() convert.Document {
			return pdfdoc.New(sess.Options.BaseName)
		},
		Dirs:     convert.DataDir(cfg.Output.Dir),
		Verifier: inspect.Validator{},
		Progress: os.Stdout,
	})
	sess = session.New(pipeline, cfg.Layout)

	if err := buildImageList(ctx, cmd, cfg, sess, args); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("save-manifest"); path != "" {
		if err := session.ManifestOf(sess).Save(path); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "manifest: %s\n", path)
	}

	res, err := sess.Convert(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, session.UserMessage(err))
		cmd.SilenceErrors = true
		return err
	}

	if _, err := st.Record(ctx, res); err != nil {
		elog.DefaultLogger.Warn("history not updated", elog.FieldErr(err), elog.String("path", res.Path))
	}
	fmt.Fprintf(os.Stdout, "converted: %s (%d pages, %d bytes)\n", res.Path, res.Pages, res.Bytes)

	return handOff(ctx, cmd, cfg.Launcher, res.Path)
}

// buildImageList fills the session from the manifest, the arguments, and
// the camera, in that order, then applies drops and moves.
func buildImageList(ctx context.Context, cmd *cobra.Command, cfg types.AppConfig, sess *session.Session, args []string) error {
	if path, _ := cmd.Flags().GetString("manifest"); path != "" {
		m, err := session.LoadManifest(path)
		if err != nil {
			return err
		}
		if err := m.Apply(sess); err != nil {
			return fmt.Errorf("applying manifest %s: %w", path, err)
		}
		// Explicit flags still win over the manifest.
		if err := reapplyFlags(cmd, sess); err != nil {
			return err
		}
	}

	sess.Images.AddSources(source.Gallery{Warn: os.Stderr}.Pick(args...))

	if useCamera, _ := cmd.Flags().GetBool("camera"); useCamera {
		src, ok, err := source.NewCamera(cfg.Capture).Capture(ctx)
		if err != nil {
			return err
		}
		if ok {
			sess.Images.Add(src.Path)
			fmt.Fprintf(os.Stdout, "captured: %s\n", src.Path)
		} else {
			fmt.Fprintln(os.Stdout, "capture cancelled")
		}
	}

	drops, _ := cmd.Flags().GetIntSlice("drop")
	sort.Sort(sort.Reverse(sort.IntSlice(drops)))
	for _, i := range slices.Compact(drops) {
		if err := sess.Images.Remove(i); err != nil {
			return err
		}
	}

	moves, _ := cmd.Flags().GetStringArray("move")
	for _, mv := range moves {
		from, to, err := parseMove(mv)
		if err != nil {
			return err
		}
		if err := sess.Images.Move(from, to); err != nil {
			return err
		}
	}
	return nil
}

func reapplyFlags(cmd *cobra.Command, sess *session.Session) error {
	if !anyChanged(cmd, "name", "page-size", "orientation", "fit", "margin") {
		return nil
	}
	opts, err := layoutFromViper()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("name") {
		sess.Options.BaseName = opts.BaseName
	}
	if cmd.Flags().Changed("page-size") {
		sess.Options.PageSize = opts.PageSize
	}
	if cmd.Flags().Changed("orientation") {
		sess.Options.Orientation = opts.Orientation
	}
	if cmd.Flags().Changed("fit") {
		sess.Options.Fit = opts.Fit
	}
	if cmd.Flags().Changed("margin") {
		sess.Options.Margin = opts.Margin
	}
	return nil
}

func anyChanged(cmd *cobra.Command, names ...string) bool {
	for _, n := range names {
		if cmd.Flags().Changed(n) {
			return true
		}
	}
	return false
}

// parseMove parses "from:to".
func parseMove(s string) (from, to int, err error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid move %q: use from:to", s)
	}
	if from, err = strconv.Atoi(strings.TrimSpace(a)); err != nil {
		return 0, 0, fmt.Errorf("invalid move %q: %w", s, err)
	}
	if to, err = strconv.Atoi(strings.TrimSpace(b)); err != nil {
		return 0, 0, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return from, to, nil
}

func handOff(ctx context.Context, cmd *cobra.Command, cfg types.LauncherConfig, path string) error {
	l := launcher.New(cfg)
	if open, _ := cmd.Flags().GetBool("open"); open {
		if err := l.Open(ctx, path); err != nil {
			return err
		}
	}
	if share, _ := cmd.Flags().GetBool("share"); share {
		if err := l.Share(ctx, path); err != nil {
			return err
		}
	}
	return nil
}
