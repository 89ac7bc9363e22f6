package cli

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/mgpai22/captions/internal/caption"
	"github.com/mgpai22/captions/internal/config"
	"github.com/mgpai22/captions/internal/sink"
	"github.com/mgpai22/captions/internal/subtitle"
)

// swapped in tests
var newS3Client = sink.NewS3Client

var convertCmd = &cobra.Command{
	Use:   "convert [caption_document]",
	Short: "Render a caption document as subtitles",
	Long: `Render the captions in a JSON or YAML document as subtitles.

The document holds either ready captions ("captions") or timed text segments
("segments") that are split and wrapped into captions first.

Without an output path or upload, the subtitles are written to stdout. The format
comes from --format, then the output file extension, then the config default.

Examples:
  captions convert talk.json
  captions convert talk.yaml -f vtt -o talk.vtt
  captions convert talk.json -o out/talk.srt --s3-bucket media --s3-key subs/talk.srt
  captions convert talk.json --upload`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("format", "f", "", "Output subtitle format (vtt, srt, sbv)")
	convertCmd.Flags().
		Bool("upload", false, "Upload to the S3 bucket from the config")
	convertCmd.Flags().
		String("s3-bucket", "", "Upload to this S3 bucket")
	convertCmd.Flags().
		String("s3-key", "", "Object key for the upload (default: prefix + document name)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatStr, _ := cmd.Flags().GetString("format")
	outputPath, _ := cmd.Flags().GetString("output")
	upload, _ := cmd.Flags().GetBool("upload")
	bucket, _ := cmd.Flags().GetString("s3-bucket")
	key, _ := cmd.Flags().GetString("s3-key")

	format, err := resolveFormat(formatStr, outputPath, cfg.Defaults.Format)
	if err != nil {
		return err
	}

	builder, err := cfg.NewBuilder()
	if err != nil {
		return err
	}

	captions, err := caption.Load(appFs, inputPath, builder)
	if err != nil {
		return err
	}

	writer, err := subtitle.NewWriter(format)
	if err != nil {
		return fmt.Errorf("failed to create subtitle writer: %w", err)
	}

	if bucket == "" && upload {
		bucket = cfg.S3.Bucket
		if bucket == "" {
			return fmt.Errorf("--upload needs an S3 bucket: set s3.bucket in the config or %s", config.EnvS3Bucket)
		}
	}
	if outputPath == "" && bucket == "" && cfg.Defaults.OutputDir != "" {
		outputPath = defaultOutputPath(cfg.Defaults.OutputDir, inputPath, format)
	}

	logger.Infow("Rendering subtitles",
		"input", inputPath,
		"format", format,
		"captions", len(captions),
	)

	var sinks []sink.Sink
	var destinations []string

	if outputPath != "" {
		fileSink, err := sink.NewFile(appFs, outputPath)
		if err != nil {
			return err
		}
		sinks = append(sinks, fileSink)
		destinations = append(destinations, fileSink.Path())
	}

	if bucket != "" {
		client, err := newS3Client(cfg.S3.Region)
		if err != nil {
			return multierr.Append(err, abortAll(sinks))
		}
		objectKey := key
		if objectKey == "" {
			objectKey = defaultObjectKey(cfg.S3.Prefix, inputPath, format)
		}
		s3Sink := sink.NewS3(client, bucket, objectKey,
			sink.WithContentType(subtitle.ContentType(format)),
			sink.WithLogger(logger),
		)
		sinks = append(sinks, s3Sink)
		destinations = append(destinations, s3Sink.URI())
	}

	if len(sinks) == 0 {
		sinks = append(sinks, sink.Nop(cmd.OutOrStdout()))
	}

	out := sinks[0]
	if len(sinks) > 1 {
		out = sink.Tee(sinks...)
	}

	if err := writer.Write(captions, out); err != nil {
		return multierr.Append(
			fmt.Errorf("failed to write subtitles: %w", err),
			sink.Abort(out),
		)
	}
	if err := sink.CloseContext(ctx, out); err != nil {
		return fmt.Errorf("failed to finish subtitles: %w", err)
	}

	for _, dest := range destinations {
		fmt.Fprintf(cmd.OutOrStdout(), "Subtitles written: %s\n", dest)
	}
	logger.Infow("Subtitles complete",
		"format", format,
		"captions", len(captions),
		"destinations", len(destinations),
	)

	return nil
}

// picks the format from the flag, then the output extension, then the default
func resolveFormat(flag, outputPath, fallback string) (subtitle.Format, error) {
	if flag != "" {
		return subtitle.ParseFormat(flag)
	}
	if outputPath != "" {
		if format, err := subtitle.FormatFromExtension(outputPath); err == nil {
			return format, nil
		}
	}
	return subtitle.ParseFormat(fallback)
}

func documentName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func defaultOutputPath(dir, inputPath string, format subtitle.Format) string {
	return filepath.Join(dir, documentName(inputPath)+subtitle.ExtensionForFormat(format))
}

func defaultObjectKey(prefix, inputPath string, format subtitle.Format) string {
	return path.Join(prefix, documentName(inputPath)+subtitle.ExtensionForFormat(format))
}

func abortAll(sinks []sink.Sink) error {
	var err error
	for _, s := range sinks {
		err = multierr.Append(err, sink.Abort(s))
	}
	return err
}
