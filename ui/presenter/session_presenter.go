package presenter

import (
	"errors"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/box-annotator/domain/annotate"
	"github.com/soocke/box-annotator/domain/capture"
	"github.com/soocke/box-annotator/domain/export"
	"github.com/soocke/box-annotator/ui/model"
)

// Notice titles.
const (
	TitleSaved   = "Saved"
	TitleError   = "Error"
	TitleDiscard = "Unsaved changes"
)

// ImageLoader decodes the image at path.
type ImageLoader func(path string) (image.Image, error)

// Saver persists a session and returns the written path.
type Saver interface {
	Save(s annotate.Session) (string, error)
}

// Capturer grabs the screen into an image file.
type Capturer interface {
	Capture() (capture.Result, error)
}

// SessionView shows notices and the status line.
type SessionView interface {
	ShowInfo(title, msg string)
	ShowError(title, msg string)
	Confirm(title, msg string) bool
	SetStatus(string)
}

// SessionPresenter coordinates loading, capturing and saving.
type SessionPresenter struct {
	machine  annotate.SessionSource
	load     ImageLoader
	saver    Saver
	capturer Capturer
	images   *model.ImageModel
	status   *model.StatusModel
	view     SessionView
	logger   *slog.Logger

	// OnImageDir is called with the directory of every loaded image.
	OnImageDir func(dir string)
	now        func() time.Time
	statusText string
}

func NewSessionPresenter(machine annotate.SessionSource, load ImageLoader, saver Saver, capturer Capturer,
	images *model.ImageModel, status *model.StatusModel, view SessionView, logger *slog.Logger) *SessionPresenter {
	return &SessionPresenter{
		machine: machine, load: load, saver: saver, capturer: capturer,
		images: images, status: status, view: view, logger: logger, now: time.Now,
	}
}

// discardOK asks before throwing away unsaved boxes.
func (p *SessionPresenter) discardOK() bool {
	if !p.status.Dirty() || p.status.Count() == 0 {
		return true
	}
	return p.view.Confirm(TitleDiscard, "Discard unsaved annotations?")
}

// Load opens the image at path and starts a new session. It reports success.
func (p *SessionPresenter) Load(path string) bool {
	if p == nil || p.machine == nil || p.load == nil || p.view == nil {
		return false
	}
	if path == "" || !p.discardOK() {
		return false
	}
	return p.open(path)
}

func (p *SessionPresenter) open(path string) bool {
	img, err := p.load(path)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("image load failed", "path", path, "error", err)
		}
		p.view.ShowError(TitleError, "Could not open image: "+err.Error())
		return false
	}
	b := img.Bounds()
	p.images.Set(path, img)
	p.status.OnLoad(path)
	p.machine.LoadImage(path, b.Dx(), b.Dy())
	if p.OnImageDir != nil {
		p.OnImageDir(p.images.Dir())
	}
	p.refreshStatus()
	return true
}

// Capture grabs the screen and loads the capture for annotation.
func (p *SessionPresenter) Capture() bool {
	if p == nil || p.capturer == nil || p.view == nil {
		return false
	}
	if !p.discardOK() {
		return false
	}
	res, err := p.capturer.Capture()
	if err != nil {
		if p.logger != nil {
			p.logger.Error("screen capture failed", "error", err)
		}
		p.view.ShowError(TitleError, "Screen capture failed: "+err.Error())
		return false
	}
	if p.load == nil || p.machine == nil {
		return false
	}
	return p.open(res.Path)
}

// Save exports the current session. Failures surface as an error notice.
func (p *SessionPresenter) Save() (string, error) {
	if p == nil || p.machine == nil || p.saver == nil || p.view == nil {
		return "", nil
	}
	path, err := p.saver.Save(p.machine.Session())
	if err != nil {
		switch {
		case errors.Is(err, export.ErrNoImageLoaded):
			p.view.ShowError(TitleError, "No image loaded.")
		case errors.Is(err, export.ErrNoAnnotations):
			p.view.ShowError(TitleError, "No annotations to save.")
		default:
			if p.logger != nil {
				p.logger.Error("save failed", "error", err)
			}
			p.view.ShowError(TitleError, "Could not save annotations: "+err.Error())
		}
		return "", err
	}
	p.status.OnSaved(path, p.now())
	p.refreshStatus()
	p.view.ShowInfo(TitleSaved, "Annotations saved to "+path)
	return path, nil
}

// OnRender tracks box changes for the status line.
func (p *SessionPresenter) OnRender(rs annotate.RenderState) {
	if p == nil {
		return
	}
	p.status.OnBoxes(rs.Boxes)
}

// Tick pushes the status line to the view when it changed.
func (p *SessionPresenter) Tick() {
	if p == nil || p.view == nil {
		return
	}
	p.refreshStatus()
}

func (p *SessionPresenter) refreshStatus() {
	text := p.status.Text()
	if text == p.statusText {
		return
	}
	p.statusText = text
	p.view.SetStatus(text)
}
