package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/FifthTry/ftd/internal/build"
	"github.com/FifthTry/ftd/pkg/publish"
)

func publishCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		force  bool
		fresh  bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the built site to S3",
		Long: `Upload the pages in the output directory and their manifest to the
configured bucket. Pages whose stored hash matches are skipped.

Credentials come from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN.

Examples:
  ftd publish --build
  ftd publish --bucket my-site --prefix docs --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadProject("")
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if prefix != "" {
				cfg.Publish.Prefix = prefix
			}

			out := cmd.OutOrStdout()
			if fresh {
				b := build.New(cfg, build.Options{
					Logger:     slog.Default(),
					OnProgress: func(step string) { info(out, "%s", step) },
				})
				if _, err := b.Build(cmd.Context()); err != nil {
					return err
				}
			}

			p, err := publish.New(publish.NewClient(cfg.Publish), cfg.Publish,
				publish.WithLogger(slog.Default()),
				publish.WithForce(force),
			)
			if err != nil {
				return err
			}
			res, err := p.Publish(cmd.Context(), cfg.OutputPath())
			if err != nil {
				return err
			}

			for _, o := range res.Uploaded {
				info(out, "uploaded %s (%d bytes)", o.Key, o.Size)
			}
			success(out, "Published to s3://%s: %d uploaded, %d unchanged in %s",
				cfg.Publish.Bucket, len(res.Uploaded), len(res.Skipped), res.Duration.Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Bucket (default from ftd.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from ftd.json)")
	cmd.Flags().BoolVar(&force, "force", false, "Upload pages even when unchanged")
	cmd.Flags().BoolVar(&fresh, "build", false, "Build the site before publishing")

	return cmd
}
