package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus"

	"pdf-stitcher/gen/go/stitcher"
	"pdf-stitcher/internal/compose"
	"pdf-stitcher/internal/config"
	"pdf-stitcher/internal/layout"
	"pdf-stitcher/internal/region"
	"pdf-stitcher/internal/stitch"
)

const defaultFilename = "stitched_output.pdf"

// Service stitches uploaded PDFs using the server configuration, optionally
// overridden per request.
type Service struct {
	cfg config.Config
	log logrus.FieldLogger
}

func NewService(cfg config.Config, log logrus.FieldLogger) *Service {
	return &Service{cfg: cfg, log: log}
}

func (s *Service) Stitch(
	ctx context.Context,
	req *connect.Request[stitcher.StitchRequest],
) (*connect.Response[stitcher.StitchResponse], error) {
	msg := req.Msg
	s.log.WithFields(logrus.Fields{
		"title": msg.Title,
		"files": len(msg.Files),
	}).Info("stitch request")

	if len(msg.Files) == 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("no PDF files in request"))
	}

	cfg := s.requestConfig(msg)
	if err := cfg.Validate(); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	inputs := make([]stitch.Input, len(msg.Files))
	for i, f := range msg.Files {
		inputs[i] = stitch.Input{Name: f.GetName(), Data: f.GetPdf()}
	}

	res, err := s.run(ctx, cfg, msg.Password, inputs)
	if err != nil {
		return nil, connectError(err)
	}

	return connect.NewResponse(&stitcher.StitchResponse{
		Message:    fmt.Sprintf("stitched %d regions onto %d pages", len(res.Placements), res.Pages),
		Pdf:        res.PDF,
		Filename:   deriveFilename(msg.Title),
		Pages:      int32(res.Pages),
		Placements: placementMessages(res.Placements),
		Skipped:    skippedMessages(res.Skipped),
	}), nil
}

func (s *Service) requestConfig(msg *stitcher.StitchRequest) config.Config {
	cfg := s.cfg
	if msg.Region != nil {
		cfg.Region = RegionSpec(msg.Region)
		if msg.Layout == nil {
			cfg.Layout.CellWidth = cfg.Region.Width
			cfg.Layout.CellHeight = cfg.Region.Height
		}
	}
	if msg.Mode != "" {
		cfg.Mode = msg.Mode
	}
	if msg.Cropped != nil {
		cfg.Cropped = *msg.Cropped
	}
	if msg.FitToPage != nil {
		cfg.FitToPage = *msg.FitToPage
		if cfg.FitToPage && msg.Layout == nil {
			cfg.Layout = layout.OnePerPage(cfg.FitPage.Width, cfg.FitPage.Height)
		}
	}
	if msg.Layout != nil {
		cfg.Layout = LayoutConfig(msg.Layout)
	}
	if msg.SkipUnreadable != nil {
		cfg.SkipUnreadable = *msg.SkipUnreadable
	}
	return cfg
}

func (s *Service) run(ctx context.Context, cfg config.Config, password string, inputs []stitch.Input) (*stitch.Result, error) {
	opts, err := cfg.Options(s.log)
	if err != nil {
		return nil, err
	}
	r := compose.NewRenderer(compose.WithPassword(password), compose.WithLogger(s.log))
	return stitch.Stitch(ctx, stitch.PDF(r), inputs, opts)
}

func isUserError(err error) bool {
	for _, target := range []error{
		compose.ErrWrongPassword,
		stitch.ErrUnreadableSource,
		stitch.ErrNoInputs,
		region.ErrInvalidRegion,
		layout.ErrLayoutOverflow,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func connectError(err error) *connect.Error {
	switch {
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	case isUserError(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// Upload accepts a multipart form with one or more "files" parts and answers
// with the stitched PDF as an attachment.
func (s *Service) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	limit := int64(s.cfg.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, fmt.Sprintf("invalid upload: %v", err), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	parts := r.MultipartForm.File["files"]
	if len(parts) == 0 {
		http.Error(w, "no PDF files uploaded", http.StatusBadRequest)
		return
	}

	inputs := make([]stitch.Input, 0, len(parts))
	for _, fh := range parts {
		f, err := fh.Open()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		inputs = append(inputs, stitch.Input{Name: fh.Filename, Data: data})
	}

	res, err := s.run(r.Context(), s.cfg, r.FormValue("password"), inputs)
	if err != nil {
		status := http.StatusInternalServerError
		if isUserError(err) {
			status = http.StatusBadRequest
		}
		s.log.WithError(err).Warn("upload failed")
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", deriveFilename(r.FormValue("title"))))
	w.Header().Set("X-Stitch-Pages", fmt.Sprint(res.Pages))
	if _, err := w.Write(res.PDF); err != nil {
		s.log.WithError(err).Warn("writing upload response")
	}
}

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1F]`)

func deriveFilename(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return defaultFilename
	}
	sanitized := invalidFilenameChars.ReplaceAllString(trimmed, "_")
	sanitized = strings.Trim(sanitized, ". ")
	if sanitized == "" {
		return defaultFilename
	}
	return fmt.Sprintf("%s-stitched.pdf", sanitized)
}
