package card

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"sync/atomic"
	"testing"

	"golang.org/x/image/math/fixed"

	"github.com/simukka/jokes101/theme"
)

var themes = theme.Builtin()

func TestRender_SizeAndCorners(t *testing.T) {
	th := themes.Get("orange-red")
	img, err := Render(th, "Why did the scarecrow win an award?", "Because he was outstanding in his field.")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != Width*Scale || b.Dy() != Height*Scale {
		t.Fatalf("Expected %dx%d, got %v", Width*Scale, Height*Scale, b)
	}
	from, _ := theme.RGBA(th.From)
	to, _ := theme.RGBA(th.To)
	if got := img.NRGBAAt(0, 0); got != from {
		t.Errorf("top left %v, expected gradient start %v", got, from)
	}
	if got := img.NRGBAAt(b.Max.X-1, b.Max.Y-1); got != to {
		t.Errorf("bottom right %v, expected gradient end %v", got, to)
	}
}

func TestRender_DrawsPanelAndAccent(t *testing.T) {
	th := themes.Get("default")
	img, err := Render(th, "setup", "punchline")
	if err != nil {
		t.Fatal(err)
	}
	// Behind the translucent panel the background is lightened.
	x, y := px(Width/2), px(panelInset+accentH+4)
	bare := lerpAt(th, x, y)
	if got := img.NRGBAAt(x, y); got == bare {
		t.Errorf("panel pixel %v equals bare background", got)
	}
	// The accent bar follows its stops across the panel width.
	left, right := px(panelInset), px(Width-panelInset)
	ax := (left + right) / 2
	want := stops(accentStops, float64(ax-left)/float64(right-left-1))
	if got := img.NRGBAAt(ax, px(panelInset)+2); got != want {
		t.Errorf("accent %v, expected %v", got, want)
	}
}

func lerpAt(th theme.Theme, x, y int) color.NRGBA {
	from, _ := theme.RGBA(th.From)
	to, _ := theme.RGBA(th.To)
	w, h := px(Width), px(Height)
	return lerp(from, to, float64(x+y)/float64(w-1+h-1))
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(themes.Get("default"), "", ""); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got %v", err)
	}
	bad := theme.Theme{Name: "bad", From: "nope", To: "#000000", Text: "#ffffff"}
	if _, err := Render(bad, "a", "b"); !errors.Is(err, theme.ErrInvalid) {
		t.Errorf("Expected theme.ErrInvalid, got %v", err)
	}
}

func TestWrap(t *testing.T) {
	if err := loadFonts(); err != nil {
		t.Fatal(err)
	}
	f, err := face(regular, setupSize)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	limit := fixed.I(300)
	text := "I told my wife she was drawing her eyebrows too high. She looked surprised."
	lines := Wrap(f, text, limit)
	if len(lines) < 2 {
		t.Fatalf("Expected several lines, got %q", lines)
	}
	joined := ""
	for i, l := range lines {
		if i > 0 {
			joined += " "
		}
		joined += l
	}
	if joined != text {
		t.Errorf("wrapping lost words: %q", joined)
	}

	long := Wrap(f, "supercalifragilisticexpialidocious ok", fixed.I(20))
	if len(long) != 2 || long[0] != "supercalifragilisticexpialidocious" {
		t.Errorf("Expected oversized word on its own line, got %q", long)
	}
	if Wrap(f, "   ", limit) != nil {
		t.Error("Expected no lines for blank text")
	}
}

func TestEncodePNG(t *testing.T) {
	img, err := Render(themes.Get("pinkdw-qpink"), "setup", "punchline")
	if err != nil {
		t.Fatal(err)
	}
	data, err := EncodePNG(img)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if cfg.Width != Width*Scale || cfg.Height != Height*Scale {
		t.Errorf("PNG is %dx%d", cfg.Width, cfg.Height)
	}
}

type fakeClipboard struct {
	err    error
	writes int
}

func (c *fakeClipboard) WriteImage(data []byte) error {
	c.writes++
	return c.err
}

// blockingClipboard holds each write until release is closed.
type blockingClipboard struct {
	entered chan struct{}
	release chan struct{}
	writes  int32
}

func (c *blockingClipboard) WriteImage(data []byte) error {
	atomic.AddInt32(&c.writes, 1)
	c.entered <- struct{}{}
	<-c.release
	return nil
}

type fakeDownloader struct {
	name string
	size int
	err  error
}

func (d *fakeDownloader) Download(name string, data []byte) error {
	d.name = name
	d.size = len(data)
	return d.err
}

type fakeControl struct {
	busy   []bool
	copied int
}

func (c *fakeControl) SetBusy(busy bool) {
	c.busy = append(c.busy, busy)
}

func (c *fakeControl) Copied() {
	c.copied++
}

func (c *fakeControl) restored() bool {
	return len(c.busy) == 2 && c.busy[0] && !c.busy[1]
}

func TestShare(t *testing.T) {
	tests := []struct {
		name         string
		clipboard    *fakeClipboard
		downloader   *fakeDownloader
		setup        string
		wantOutcome  Outcome
		wantErr      bool
		wantDownload bool
		wantCopied   int
	}{
		{"Clipboard", &fakeClipboard{}, &fakeDownloader{}, "setup", Copied, false, false, 1},
		{"Clipboard refused", &fakeClipboard{err: errors.New("denied")}, &fakeDownloader{}, "setup", Downloaded, false, true, 0},
		{"No clipboard", nil, &fakeDownloader{}, "setup", Downloaded, false, true, 0},
		{"Download fails", &fakeClipboard{err: ErrNoClipboard}, &fakeDownloader{err: errors.New("blocked")}, "setup", Failed, true, true, 0},
		{"Render fails", &fakeClipboard{}, &fakeDownloader{}, "", Failed, true, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctl := &fakeControl{}
			s := &Sharer{Downloader: tt.downloader, Control: ctl}
			if tt.clipboard != nil {
				s.Clipboard = tt.clipboard
			}
			punch := "punchline"
			if tt.setup == "" {
				punch = ""
			}
			got, err := s.Share(themes.Get("default"), tt.setup, punch)
			if got != tt.wantOutcome {
				t.Errorf("Expected outcome %v, got %v", tt.wantOutcome, got)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("unexpected error %v", err)
			}
			if !ctl.restored() {
				t.Errorf("Expected control disabled then restored, got %v", ctl.busy)
			}
			if ctl.copied != tt.wantCopied {
				t.Errorf("Expected %d notifications, got %d", tt.wantCopied, ctl.copied)
			}
			if downloaded := tt.downloader.name != ""; downloaded != tt.wantDownload {
				t.Errorf("download = %v, expected %v", downloaded, tt.wantDownload)
			}
			if tt.wantDownload && (tt.downloader.name != Filename || tt.downloader.size == 0) {
				t.Errorf("unexpected download %q (%d bytes)", tt.downloader.name, tt.downloader.size)
			}
		})
	}
}

func TestShare_NoDeliveryAtAll(t *testing.T) {
	ctl := &fakeControl{}
	s := &Sharer{Control: ctl}
	if _, err := s.Share(themes.Get("default"), "a", "b"); !errors.Is(err, ErrNoClipboard) {
		t.Errorf("Expected ErrNoClipboard, got %v", err)
	}
	if !ctl.restored() {
		t.Error("Expected control restored")
	}
}

func TestShare_OverlappingShareRejected(t *testing.T) {
	clip := &blockingClipboard{entered: make(chan struct{}, 2), release: make(chan struct{})}
	ctl := &fakeControl{}
	s := &Sharer{Clipboard: clip, Downloader: &fakeDownloader{}, Control: ctl}
	th := themes.Get(theme.Default)

	done := make(chan Outcome)
	go func() {
		outcome, _ := s.Share(th, "setup", "punchline")
		done <- outcome
	}()
	<-clip.entered

	if !s.Sharing() {
		t.Error("Expected Sharing while the clipboard write is pending")
	}
	if outcome, err := s.Share(th, "setup", "punchline"); !errors.Is(err, ErrBusy) || outcome != Failed {
		t.Errorf("Expected ErrBusy for overlapping share, got %v %v", outcome, err)
	}
	if len(ctl.busy) != 1 || !ctl.busy[0] {
		t.Errorf("Expected control to stay disabled, got trace %v", ctl.busy)
	}

	close(clip.release)
	if outcome := <-done; outcome != Copied {
		t.Errorf("Expected first share copied, got %v", outcome)
	}
	if n := atomic.LoadInt32(&clip.writes); n != 1 {
		t.Errorf("Expected exactly one clipboard write, got %d", n)
	}
	if !ctl.restored() {
		t.Errorf("Expected control restored once, got trace %v", ctl.busy)
	}
	if s.Sharing() {
		t.Error("Expected Sharing cleared after the share returned")
	}

	// The sharer is usable again.
	clip.release = make(chan struct{})
	close(clip.release)
	if outcome, err := s.Share(th, "setup", "punchline"); err != nil || outcome != Copied {
		t.Errorf("Expected second share copied, got %v %v", outcome, err)
	}
}

func TestFitText_ShrinksLongJokes(t *testing.T) {
	if err := loadFonts(); err != nil {
		t.Fatal(err)
	}
	inner := image.Rect(0, 0, px(Width-2*panelInset-2*boxInset-2*textPad), px(boxBottom-boxTop-2*textPad))

	short, err := fitText(inner, "Why did the chicken cross the road?", "To get to the other side.")
	if err != nil {
		t.Fatal(err)
	}
	defer short.close()
	if short.scale != 1 {
		t.Errorf("Expected a short joke at full size, got scale %v", short.scale)
	}

	setup := strings.Repeat("Why did the chicken cross the road once more today? ", 16)
	long, err := fitText(inner, setup, "To get to the other side.")
	if err != nil {
		t.Fatal(err)
	}
	defer long.close()
	if long.scale >= 1 {
		t.Errorf("Expected a long joke to shrink, got scale %v", long.scale)
	}
	if long.height() > inner.Dy() {
		t.Errorf("Expected text height %d to fit %d", long.height(), inner.Dy())
	}
	if len(long.punchline) == 0 {
		t.Error("Expected the punchline to survive a long setup")
	}
}
