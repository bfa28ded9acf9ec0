package download

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ytget/yt-grabber/internal/model"
	"github.com/ytget/yt-grabber/internal/progress"
	"github.com/ytget/yt-grabber/internal/remote"
)

func demoFormats() []model.FormatDescriptor {
	return []model.FormatDescriptor{
		{FormatID: "18", Ext: "mp4", HasVideo: true, HasAudio: true, FileSize: "10MB"},
	}
}

func newTestResolver(svc *fakeService) (*Resolver, *model.FormatCatalog, *recordingIndicator, *recordingNotifier) {
	catalog := model.NewFormatCatalog()
	ind := &recordingIndicator{}
	notifier := &recordingNotifier{}
	return NewResolver(svc, catalog, progress.NewReporter(ind), notifier), catalog, ind, notifier
}

func TestResolve_PopulatesCatalog(t *testing.T) {
	svc := &fakeService{responses: map[string]*remote.FormatsResponse{
		"https://youtu.be/abc": {Formats: demoFormats(), Title: "Demo", ID: "abc"},
	}}
	r, catalog, ind, notifier := newTestResolver(svc)

	ref, err := r.Resolve(context.Background(), "  https://youtu.be/abc ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := model.VideoRef{URL: "https://youtu.be/abc", ID: "abc", Title: "Demo"}
	if diff := cmp.Diff(expected, ref); diff != "" {
		t.Errorf("ref mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(demoFormats(), catalog.Formats()); diff != "" {
		t.Errorf("formats mismatch (-want +got):\n%s", diff)
	}
	if got := catalog.Formats()[0].Label(); got != "(mp4)" {
		t.Errorf("expected entry labeled with ext mp4, got %q", got)
	}

	busy, stops := ind.counts()
	if busy != 1 || stops != 1 {
		t.Errorf("expected one busy and one stop, got %d/%d", busy, stops)
	}
	if len(notifier.Errors()) != 0 {
		t.Errorf("unexpected notices: %v", notifier.Errors())
	}
}

func TestResolve_LatestResolutionWins(t *testing.T) {
	svc := &fakeService{responses: map[string]*remote.FormatsResponse{
		"https://youtu.be/abc": {Formats: demoFormats(), Title: "Demo", ID: "abc"},
		"https://youtu.be/xyz": {
			Formats: []model.FormatDescriptor{
				{FormatID: "140", Ext: "m4a", HasAudio: true},
				{FormatID: "22", Ext: "mp4", HasAudio: true, HasVideo: true},
			},
			Title: "Other",
			ID:    "xyz",
		},
	}}
	r, catalog, _, _ := newTestResolver(svc)

	for _, u := range []string{"https://youtu.be/abc", "https://youtu.be/xyz"} {
		if _, err := r.Resolve(context.Background(), u); err != nil {
			t.Fatalf("Resolve(%s): %v", u, err)
		}
	}

	if diff := cmp.Diff(svc.responses["https://youtu.be/xyz"].Formats, catalog.Formats()); diff != "" {
		t.Errorf("catalog must hold only the latest resolution (-want +got):\n%s", diff)
	}
	if catalog.Video().ID != "xyz" {
		t.Errorf("expected video xyz, got %s", catalog.Video().ID)
	}
}

func TestResolve_FailureClearsCatalogAndNotifies(t *testing.T) {
	svc := &fakeService{responses: map[string]*remote.FormatsResponse{
		"https://youtu.be/abc": {Formats: demoFormats(), Title: "Demo", ID: "abc"},
	}}
	r, catalog, ind, notifier := newTestResolver(svc)

	if _, err := r.Resolve(context.Background(), "https://youtu.be/abc"); err != nil {
		t.Fatalf("first Resolve: %v", err)
	}

	svc.lookupErr = errNetwork
	_, err := r.Resolve(context.Background(), "https://youtu.be/abc")

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected LookupError, got %T: %v", err, err)
	}
	if !errors.Is(err, errNetwork) {
		t.Errorf("expected wrapped network error, got %v", err)
	}
	if !catalog.Empty() || !catalog.Video().IsZero() {
		t.Error("expected catalog cleared after failed lookup")
	}
	if len(notifier.Errors()) != 1 {
		t.Errorf("expected one notice, got %d", len(notifier.Errors()))
	}

	busy, stops := ind.counts()
	if busy != stops {
		t.Errorf("indicator must be stopped on failure too: busy=%d stops=%d", busy, stops)
	}
}

func TestResolve_UnresolvableURL(t *testing.T) {
	r, _, _, notifier := newTestResolver(&fakeService{})

	_, err := r.Resolve(context.Background(), "https://example.com/nothing")
	var se *remote.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected wrapped StatusError, got %v", err)
	}
	if len(notifier.Errors()) != 1 {
		t.Errorf("expected one notice, got %d", len(notifier.Errors()))
	}
}

func TestResolve_EmptyURL(t *testing.T) {
	r, _, ind, notifier := newTestResolver(&fakeService{})

	_, err := r.Resolve(context.Background(), "   ")
	if !errors.Is(err, ErrEmptyURL) {
		t.Fatalf("expected ErrEmptyURL, got %v", err)
	}
	if busy, _ := ind.counts(); busy != 0 {
		t.Error("no request should be started for an empty URL")
	}
	if len(notifier.Errors()) != 1 {
		t.Errorf("expected one notice, got %d", len(notifier.Errors()))
	}
}
