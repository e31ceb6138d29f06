// Command moodgen generates the placeholder moodboard image catalog.
//
// Configuration comes from flags whose defaults are read from the
// environment, after an optional .env file in the working directory is
// loaded:
//
//	MOODGEN_ROOT       output directory (public/moodboard)
//	MOODGEN_FORMAT     jpg, png, tif or bmp (jpg)
//	MOODGEN_QUALITY    JPEG quality (90)
//	MOODGEN_WORKERS    concurrent entries, 0 for GOMAXPROCS (1)
//	MOODGEN_POLICY     skip or abort (skip)
//	MOODGEN_RETRIES    conversion retries per entry (0)
//	MOODGEN_CONVERTER  external converter command, e.g. "sips"; empty encodes in-process
//	MOODGEN_S3_BUCKET  upload to this bucket instead of the local directory
//	MOODGEN_S3_PREFIX  key prefix inside the bucket
//
// S3 uploads read AWS_DEFAULT_REGION, AWS_ACCESS_KEY_ID and
// AWS_SECRET_ACCESS_KEY.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gogpu/moodgen"
	"github.com/gogpu/moodgen/catalog"
	"github.com/gogpu/moodgen/convert"
	"github.com/gogpu/moodgen/pipeline"
	"github.com/gogpu/moodgen/store"
)

// ManifestName is the file written next to the images.
const ManifestName = "manifest.json"

type config struct {
	root      string
	format    string
	quality   int
	workers   int
	policy    string
	retries   int
	converter string
	bucket    string
	prefix    string
	style     string
	section   string
	manifest  bool
	list      bool
	logLevel  string
}

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "moodgen: .env not loaded: %v\n", err)
	}

	cfg := parseFlags(os.Args[1:])

	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "moodgen: %v\n", err)
		os.Exit(2)
	}
	moodgen.SetLogger(moodgen.NewTextLogger(os.Stderr, level))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		moodgen.Logger().Error("moodgen failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func parseFlags(args []string) config {
	var cfg config
	fs := flag.NewFlagSet("moodgen", flag.ExitOnError)
	fs.StringVar(&cfg.root, "root", envString("MOODGEN_ROOT", pipeline.DefaultRoot), "output root directory")
	fs.StringVar(&cfg.format, "format", envString("MOODGEN_FORMAT", pipeline.DefaultExtension), "output format: jpg, png, tif, bmp")
	fs.IntVar(&cfg.quality, "quality", envInt("MOODGEN_QUALITY", convert.DefaultQuality), "JPEG quality")
	fs.IntVar(&cfg.workers, "workers", envInt("MOODGEN_WORKERS", 1), "entries processed concurrently (0 = GOMAXPROCS)")
	fs.StringVar(&cfg.policy, "policy", envString("MOODGEN_POLICY", "skip"), "on conversion failure: skip or abort")
	fs.IntVar(&cfg.retries, "retries", envInt("MOODGEN_RETRIES", 0), "conversion retries per entry")
	fs.StringVar(&cfg.converter, "converter", envString("MOODGEN_CONVERTER", ""), "external converter command (empty = built-in encoder)")
	fs.StringVar(&cfg.bucket, "s3-bucket", envString("MOODGEN_S3_BUCKET", ""), "upload to this S3 bucket")
	fs.StringVar(&cfg.prefix, "s3-prefix", envString("MOODGEN_S3_PREFIX", ""), "S3 key prefix")
	fs.StringVar(&cfg.style, "style", "", "only generate this style")
	fs.StringVar(&cfg.section, "section", "", "only generate this section")
	fs.BoolVar(&cfg.manifest, "manifest", true, "write "+ManifestName)
	fs.BoolVar(&cfg.list, "list", false, "print the destinations and exit")
	fs.StringVar(&cfg.logLevel, "log-level", envString("MOODGEN_LOG_LEVEL", "info"), "debug, info, warn or error")
	_ = fs.Parse(args)
	return cfg
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "moodgen: ignoring %s=%q: %v\n", key, v, err)
		return def
	}
	return n
}

func run(ctx context.Context, cfg config) error {
	format, err := convert.ParseFormat(cfg.format)
	if err != nil {
		return err
	}
	policy, err := pipeline.ParsePolicy(cfg.policy)
	if err != nil {
		return err
	}

	cat := catalog.Default()
	entries, err := selectEntries(cat, cfg.style, cfg.section)
	if err != nil {
		return err
	}

	out, err := newOutput(cfg, format)
	if err != nil {
		return err
	}

	p := pipeline.New(cat, out.conv,
		pipeline.WithRoot(out.root),
		pipeline.WithExtension(format.Extension()),
		pipeline.WithWorkers(cfg.workers),
		pipeline.WithPolicy(policy),
		pipeline.WithRetries(cfg.retries))

	if cfg.list {
		return listDsts(os.Stdout, p, entries)
	}

	rep, runErr := p.RunEntries(ctx, entries)
	for _, res := range rep.Failures() {
		moodgen.Logger().Warn("entry not written", "entry", res.Entry.ID(), "dst", res.Dst, "err", res.Err)
	}

	if cfg.manifest && runErr == nil {
		if err := writeManifest(ctx, cat, out, format); err != nil {
			return err
		}
	}
	if runErr != nil {
		return fmt.Errorf("%d of %d entries failed", rep.Failed+rep.Skipped, len(rep.Results))
	}
	return nil
}

// output bundles the converter with the sink the manifest goes to. Every
// destination, manifest included, carries root, so reports and -list show
// the real location. Sinks therefore take keys relative to the file system
// or bucket root.
type output struct {
	conv pipeline.Converter
	sink store.Sink
	root string
}

func newOutput(cfg config, format convert.Format) (output, error) {
	switch {
	case cfg.bucket != "":
		if cfg.converter != "" {
			return output{}, errors.New("-converter cannot be combined with -s3-bucket")
		}
		sink, err := store.NewS3FromEnv(cfg.bucket, "")
		if err != nil {
			return output{}, err
		}
		n := convert.NewNative(format, sink)
		n.Quality = cfg.quality
		return output{conv: n, sink: sink, root: strings.Trim(cfg.prefix, "/")}, nil

	case cfg.converter != "":
		c, err := convert.ParseCommand(cfg.converter, format)
		if err != nil {
			return output{}, err
		}
		return output{conv: c, sink: store.NewDir(""), root: cfg.root}, nil

	default:
		sink := store.NewDir("")
		n := convert.NewNative(format, sink)
		n.Quality = cfg.quality
		return output{conv: n, sink: sink, root: cfg.root}, nil
	}
}

// manifestKey returns the destination of the manifest, next to the style
// directories.
func (o output) manifestKey() string {
	return path.Join(o.root, ManifestName)
}

// listDsts prints the destination of every entry, one per line.
func listDsts(w io.Writer, p *pipeline.Pipeline, entries []catalog.Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(w, p.Dst(e)); err != nil {
			return err
		}
	}
	return nil
}

func selectEntries(cat *catalog.Catalog, style, section string) ([]catalog.Entry, error) {
	entries := cat.Entries()
	if style != "" {
		if _, ok := cat.Palette(style); !ok {
			return nil, fmt.Errorf("unknown style %q", style)
		}
	}
	if section != "" {
		if _, ok := cat.Section(section); !ok {
			return nil, fmt.Errorf("unknown section %q", section)
		}
	}
	return slices.DeleteFunc(entries, func(e catalog.Entry) bool {
		return (style != "" && e.Style != style) || (section != "" && e.Section != section)
	}), nil
}

func writeManifest(ctx context.Context, cat *catalog.Catalog, out output, format convert.Format) error {
	var buf bytes.Buffer
	if err := cat.Manifest(out.root, format.Extension()).Encode(&buf); err != nil {
		return err
	}
	key := out.manifestKey()
	if err := out.sink.Put(ctx, key, buf.Bytes()); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	moodgen.Logger().Info("manifest written", "entries", cat.Len(), "key", key)
	return nil
}
