// Command stitch cuts the configured region out of the first page of every
// PDF given on the command line and packs the regions into one PDF.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"

	"pdf-stitcher/gen/go/stitcher"
	"pdf-stitcher/gen/go/stitcherconnect"
	"pdf-stitcher/internal/compose"
	"pdf-stitcher/internal/config"
	"pdf-stitcher/internal/layout"
	"pdf-stitcher/internal/server"
	"pdf-stitcher/internal/stitch"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		out        = flag.String("o", "stitched_output.pdf", "output file")
		mode       = flag.String("mode", "", "coordinate conversion: simple, offset or auto")
		cropped    = flag.Bool("cropped", false, "materialize each region as its own page before packing")
		fit        = flag.Bool("fit", false, "fit each cropped region onto its own A4 page (implies -cropped)")
		columns    = flag.Int("columns", -1, "grid columns, 0 derives them from the page width")
		layoutName = flag.String("layout", "", "page layout: grid or onepage (default from config, onepage with -fit)")
		skip       = flag.Bool("skip-unreadable", false, "skip unreadable inputs instead of failing")
		password   = flag.String("password", "", "password for encrypted inputs")
		remote     = flag.String("server", "", "stitch on a running server at this URL")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] file.pdf...\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *mode != "" {
		cfg.Mode = *mode
	}
	if *fit {
		*cropped = true
		cfg.FitToPage = true
		cfg.Layout = layout.OnePerPage(cfg.FitPage.Width, cfg.FitPage.Height)
	}
	if *cropped {
		cfg.Cropped = true
	}
	if cfg.Layout, err = layoutFor(*layoutName, cfg); err != nil {
		log.Fatalf("layout: %v", err)
	}
	if *columns >= 0 {
		cfg.Layout.Columns = *columns
	}
	if *skip {
		cfg.SkipUnreadable = true
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	inputs := make([]stitch.Input, 0, flag.NArg())
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read %s: %v", path, err)
		}
		inputs = append(inputs, stitch.Input{Name: filepath.Base(path), Data: data})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	var pdf []byte
	if *remote != "" {
		pdf, err = stitchRemote(ctx, *remote, cfg, *password, inputs)
	} else {
		pdf, err = stitchLocal(ctx, log, cfg, *password, inputs)
	}
	if err != nil {
		log.Fatalf("stitch: %v", err)
	}

	if err := os.WriteFile(*out, pdf, 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	log.WithField("output", *out).Info("done")
}

func stitchLocal(ctx context.Context, log logrus.FieldLogger, cfg config.Config, password string, inputs []stitch.Input) ([]byte, error) {
	opts, err := cfg.Options(log)
	if err != nil {
		return nil, err
	}
	r := compose.NewRenderer(compose.WithPassword(password), compose.WithLogger(log))
	res, err := stitch.Stitch(ctx, stitch.PDF(r), inputs, opts)
	if err != nil {
		return nil, err
	}
	for _, s := range res.Skipped {
		log.WithFields(logrus.Fields{"index": s.Index, "name": s.Name}).Warn("skipped: " + s.Reason)
	}
	return res.PDF, nil
}

func stitchRemote(ctx context.Context, baseURL string, cfg config.Config, password string, inputs []stitch.Input) ([]byte, error) {
	client := stitcherconnect.NewStitchServiceClient(http.DefaultClient, baseURL)

	req := &stitcher.StitchRequest{
		Password:       password,
		Region:         server.RegionMessage(cfg.Region),
		Mode:           cfg.Mode,
		Cropped:        &cfg.Cropped,
		FitToPage:      &cfg.FitToPage,
		Layout:         server.LayoutMessage(cfg.Layout),
		SkipUnreadable: &cfg.SkipUnreadable,
	}
	for _, in := range inputs {
		req.Files = append(req.Files, &stitcher.File{Name: in.Name, Pdf: in.Data})
	}

	res, err := client.Stitch(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return res.Msg.Pdf, nil
}

// layoutFor returns the layout named by the -layout flag. An empty name keeps
// the configured layout.
func layoutFor(name string, cfg config.Config) (layout.Config, error) {
	switch name {
	case "":
		return cfg.Layout, nil
	case "grid":
		return layout.Grid(cfg.Region.Width, cfg.Region.Height, cfg.Layout.Columns), nil
	case "onepage":
		return layout.OnePerPage(cfg.Layout.PageWidth, cfg.Layout.PageHeight), nil
	}
	return layout.Config{}, fmt.Errorf("unknown layout %q (want grid or onepage)", name)
}
