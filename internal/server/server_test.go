package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pdf-stitcher/gen/go/stitcher"
	"pdf-stitcher/gen/go/stitcherconnect"
	"pdf-stitcher/internal/compose"
	"pdf-stitcher/internal/config"
	"pdf-stitcher/internal/layout"
	"pdf-stitcher/internal/pdftest"
	"pdf-stitcher/internal/region"
	"pdf-stitcher/internal/stitch"
)

func newTestServer(t *testing.T) (*httptest.Server, stitcherconnect.StitchServiceClient) {
	t.Helper()
	log, _ := test.NewNullLogger()
	srv := httptest.NewServer(NewMux(NewService(config.Default(), log)))
	t.Cleanup(srv.Close)
	return srv, stitcherconnect.NewStitchServiceClient(srv.Client(), srv.URL)
}

func TestStitchRPC(t *testing.T) {
	_, client := newTestServer(t)

	res, err := client.Stitch(context.Background(), connect.NewRequest(&stitcher.StitchRequest{
		Title: "Week 3",
		Files: []*stitcher.File{
			{Name: "a.pdf", Pdf: pdftest.A4()},
			{Name: "b.pdf", Pdf: pdftest.A4()},
			{Name: "c.pdf", Pdf: pdftest.A4()},
		},
	}))
	require.NoError(t, err)

	assert.Equal(t, "Week 3-stitched.pdf", res.Msg.Filename)
	assert.Equal(t, int32(1), res.Msg.Pages)
	require.Len(t, res.Msg.Placements, 3)
	assert.Equal(t, "c.pdf", res.Msg.Placements[2].Name)
	assert.Equal(t, int32(2), res.Msg.Placements[2].Column)
	assert.True(t, bytes.HasPrefix(res.Msg.Pdf, []byte("%PDF")))
}

func TestStitchRPCFitToPage(t *testing.T) {
	_, client := newTestServer(t)
	yes := true

	res, err := client.Stitch(context.Background(), connect.NewRequest(&stitcher.StitchRequest{
		Files:     []*stitcher.File{{Name: "a.pdf", Pdf: pdftest.A4()}, {Name: "b.pdf", Pdf: pdftest.A4()}},
		Region:    &stitcher.Region{X: 68.035, Y: 181.8821, W: 102.05, H: 233.86},
		Cropped:   &yes,
		FitToPage: &yes,
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(2), res.Msg.Pages)
	assert.Equal(t, "stitched_output.pdf", res.Msg.Filename)
}

func TestStitchRPCJSON(t *testing.T) {
	srv, _ := newTestServer(t)
	client := stitcherconnect.NewStitchServiceClient(srv.Client(), srv.URL, connect.WithProtoJSON())

	res, err := client.Stitch(context.Background(), connect.NewRequest(&stitcher.StitchRequest{
		Files:  []*stitcher.File{{Name: "a.pdf", Pdf: pdftest.A4()}},
		Layout: LayoutMessage(layout.OnePerPage(layout.A4Width, layout.A4Height)),
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(1), res.Msg.Pages)
	require.Len(t, res.Msg.Placements, 1)
	assert.InDelta(t, layout.A4Height, res.Msg.Placements[0].GetCell().GetY1(), 1e-9)
}

func TestMessageConversions(t *testing.T) {
	assert.Equal(t, region.DefaultSpec, RegionSpec(RegionMessage(region.DefaultSpec)))
	assert.Equal(t, region.Spec{}, RegionSpec(nil))

	grid := layout.Grid(102.05, 233.86, 5)
	assert.Equal(t, grid, LayoutConfig(LayoutMessage(grid)))

	placed := placementMessages([]stitch.Placed{{
		Placement: layout.Placement{Index: 3, Page: 1, Row: 0, Column: 2, Rect: region.Rect(20, 30, 40, 50), NewPage: true},
		Name:      "d.pdf",
		Dest:      region.Rect(25, 30, 30, 50),
	}})
	require.Len(t, placed, 1)
	assert.Equal(t, int32(3), placed[0].Index)
	assert.True(t, placed[0].NewPage)
	assert.Equal(t, 60.0, placed[0].Cell.X1)
	assert.Equal(t, 55.0, placed[0].Dest.X1)
	assert.Nil(t, skippedMessages(nil))
}

func TestStitchRPCErrors(t *testing.T) {
	_, client := newTestServer(t)
	ctx := context.Background()

	_, err := client.Stitch(ctx, connect.NewRequest(&stitcher.StitchRequest{}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))

	_, err = client.Stitch(ctx, connect.NewRequest(&stitcher.StitchRequest{
		Files: []*stitcher.File{{Name: "a.pdf", Pdf: pdftest.A4()}, {Name: "junk.pdf", Pdf: []byte("junk")}},
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
	assert.Contains(t, err.Error(), "junk.pdf")

	_, err = client.Stitch(ctx, connect.NewRequest(&stitcher.StitchRequest{
		Files:  []*stitcher.File{{Name: "a.pdf", Pdf: pdftest.A4()}},
		Region: &stitcher.Region{X: 10, Y: 10, W: 0, H: 10},
	}))
	assert.Equal(t, connect.CodeInvalidArgument, connect.CodeOf(err))
}

func TestConnectErrorCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code connect.Code
	}{
		{"canceled", fmt.Errorf("batch: %w", context.Canceled), connect.CodeCanceled},
		{"deadline", fmt.Errorf("batch: %w", context.DeadlineExceeded), connect.CodeDeadlineExceeded},
		{"unreadable", &stitch.ItemError{Index: 1, Name: "b.pdf", Err: stitch.ErrUnreadableSource}, connect.CodeInvalidArgument},
		{"wrong password", compose.ErrWrongPassword, connect.CodeInvalidArgument},
		{"layout", layout.ErrLayoutOverflow, connect.CodeInvalidArgument},
		{"other", errors.New("disk full"), connect.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, connectError(tt.err).Code())
		})
	}
}

func TestStitchRPCSkipUnreadable(t *testing.T) {
	_, client := newTestServer(t)
	yes := true

	res, err := client.Stitch(context.Background(), connect.NewRequest(&stitcher.StitchRequest{
		Files:          []*stitcher.File{{Name: "junk.pdf", Pdf: []byte("junk")}, {Name: "a.pdf", Pdf: pdftest.A4()}},
		SkipUnreadable: &yes,
	}))
	require.NoError(t, err)
	require.Len(t, res.Msg.Skipped, 1)
	assert.Equal(t, "junk.pdf", res.Msg.Skipped[0].Name)
	require.Len(t, res.Msg.Placements, 1)
	assert.Equal(t, int32(1), res.Msg.Placements[0].Index)
}

func uploadBody(t *testing.T, files map[string][]byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for name, data := range files {
		fw, err := mw.CreateFormFile("files", name)
		require.NoError(t, err)
		_, err = fw.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.WriteField("title", "batch"))
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	srv, _ := newTestServer(t)

	body, ctype := uploadBody(t, map[string][]byte{"one.pdf": pdftest.A4(), "two.pdf": pdftest.A4()})
	resp, err := http.Post(srv.URL+"/upload", ctype, body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="batch-stitched.pdf"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, "1", resp.Header.Get("X-Stitch-Pages"))
}

func TestUploadRejects(t *testing.T) {
	srv, _ := newTestServer(t)

	body, ctype := uploadBody(t, nil)
	resp, err := http.Post(srv.URL+"/upload", ctype, body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, ctype = uploadBody(t, map[string][]byte{"bad.pdf": []byte("nope")})
	resp, err = http.Post(srv.URL+"/upload", ctype, body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/upload")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+stitcherconnect.StitchServiceStitchProcedure, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestHealthz(t *testing.T) {
	srv, _ := newTestServer(t)
	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestDeriveFilename(t *testing.T) {
	tests := map[string]string{
		"":              "stitched_output.pdf",
		"   ":           "stitched_output.pdf",
		"labels":        "labels-stitched.pdf",
		"a/b:c":         "a_b_c-stitched.pdf",
		"..":            "stitched_output.pdf",
		" spaced out. ": "spaced out-stitched.pdf",
	}
	for in, want := range tests {
		assert.Equal(t, want, deriveFilename(in), "title %q", in)
	}
}
