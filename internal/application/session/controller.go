package session

import (
	"context"
	"errors"
	"path/filepath"

	"shootlist/internal/application"
	"shootlist/internal/application/commands"
	"shootlist/internal/domain"
	"shootlist/internal/ports"
)

var (
	errWatcherClosed = errors.New("watcher closed unexpectedly")
	errSkipped       = errors.New("variation skipped")
)

// Update is a snapshot of session progress handed to the console sink
// after every transition
type Update struct {
	Phase     domain.Phase
	Variation domain.Variation
	FileName  string // published name, set from AwaitingPhoto onward
	FilePath  string // detected photo path, set from PhotoDetected onward
	Index     int    // position of the current variation in the catalog
	Processed int    // photos tagged so far; trails Index when variations were skipped
	Total     int
	Err       error // component failure held for operator retry, nil otherwise
}

// Options wires the controller to its collaborators
type Options struct {
	Catalog      *domain.Catalog
	Publisher    ports.Publisher
	Watcher      ports.FolderWatcher
	Writer       ports.MetadataWriter
	Journal      ports.Journal // optional
	WatchDir     string
	WorkbookPath string
	Notify       func(Update) // optional
}

// Controller drives the session state machine: advance article, publish
// name, wait for the photo, tag it, repeat until the catalog is
// exhausted. It owns the SessionState; the watcher hands events over on
// a channel and never touches shared state.
type Controller struct {
	opts  Options
	state *domain.Session
	retry chan struct{}
	skip  chan struct{}
}

// New creates a session controller
func New(opts Options) *Controller {
	return &Controller{
		opts:  opts,
		state: domain.NewSession(opts.WatchDir),
		retry: make(chan struct{}, 1),
		skip:  make(chan struct{}, 1),
	}
}

// Retry unblocks the controller after a reported component failure so
// it re-attempts the failed transition. Safe to call from another
// goroutine; redundant calls coalesce.
func (c *Controller) Retry() {
	select {
	case c.retry <- struct{}{}:
	default:
	}
}

// Skip abandons the current variation (for example when the article is
// not on the rack) and moves on to the next one. The skipped variation
// is not counted as processed.
func (c *Controller) Skip() {
	select {
	case c.skip <- struct{}{}:
	default:
	}
}

// Run works through the whole catalog. It returns nil once the catalog
// is exhausted, the context error on cancellation, and a fatal error
// when the watch directory cannot be observed. Component failures at a
// transition are never fatal: they are reported via Notify and the
// controller waits for Retry.
func (c *Controller) Run(ctx context.Context) error {
	// Empty catalog: exhausted immediately, watcher never started
	if c.opts.Catalog.Len() == 0 {
		c.state.Exhaust()
		c.notify(Update{})
		return nil
	}

	events, err := c.opts.Watcher.Start(c.opts.WatchDir)
	if err != nil {
		return err
	}
	defer c.opts.Watcher.Stop()

	var sessionID string
	if c.opts.Journal != nil {
		if sessionID, err = c.opts.Journal.BeginSession(c.opts.WorkbookPath, c.opts.WatchDir); err != nil {
			// History is best-effort; the shoot goes on without it
			sessionID = ""
		}
		defer func() {
			if sessionID != "" {
				c.opts.Journal.EndSession(sessionID)
			}
		}()
	}

	for {
		v, ok := c.opts.Catalog.Advance()
		if !ok {
			c.state.Exhaust()
			c.notify(Update{})
			return nil
		}
		if err := c.shoot(ctx, v, events, sessionID); err != nil {
			return err
		}
	}
}

// shoot runs one variation through ArticleReady → MetadataApplied. A
// skip request at any waiting point abandons the variation and resets
// the machine for the next one.
func (c *Controller) shoot(ctx context.Context, v domain.Variation, events <-chan domain.PhotoEvent, sessionID string) error {
	err := c.shootOne(ctx, v, events, sessionID)
	if errors.Is(err, errSkipped) {
		c.state.Skip()
		c.notify(Update{Variation: v})
		return nil
	}
	return err
}

func (c *Controller) shootOne(ctx context.Context, v domain.Variation, events <-chan domain.PhotoEvent, sessionID string) error {
	if err := c.state.ArticleReady(v); err != nil {
		return err
	}
	c.notify(Update{Variation: v})

	fileName, err := c.publish(ctx, v)
	if err != nil {
		return err
	}
	if err := c.state.NamePublished(fileName); err != nil {
		return err
	}
	c.notify(Update{Variation: v, FileName: fileName})

	filePath, err := c.awaitPhoto(ctx, events, fileName)
	if err != nil {
		return err
	}
	if err := c.state.PhotoDetected(); err != nil {
		return err
	}
	c.notify(Update{Variation: v, FileName: fileName, FilePath: filePath})

	if err := c.tag(ctx, v, filePath); err != nil {
		return err
	}
	if err := c.state.MetadataApplied(filePath); err != nil {
		return err
	}
	c.notify(Update{Variation: v, FileName: fileName, FilePath: filePath})

	if c.opts.Journal != nil && sessionID != "" {
		c.opts.Journal.RecordPhoto(sessionID, v, filePath)
	}
	return nil
}

// publish puts the computed file name on the clipboard, retrying on
// operator request until it succeeds
func (c *Controller) publish(ctx context.Context, v domain.Variation) (string, error) {
	for {
		cmd := commands.NewPublishNameCommand(c.opts.Publisher, v, c.opts.WatchDir)
		result, err := cmd.Execute(ctx)
		if err == nil {
			return result.FileName, nil
		}
		c.state.Fail(err)
		c.notify(Update{Variation: v, Err: err})
		if err := c.awaitRetry(ctx); err != nil {
			return "", err
		}
	}
}

// awaitPhoto blocks until the expected file lands in the watch dir.
// Events for other files are reported but do not advance the session.
func (c *Controller) awaitPhoto(ctx context.Context, events <-chan domain.PhotoEvent, fileName string) (string, error) {
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-c.skip:
			return "", errSkipped
		case ev, ok := <-events:
			if !ok {
				return "", &application.WatchError{Dir: c.opts.WatchDir, Err: errWatcherClosed}
			}
			if filepath.Base(ev.Path) != fileName {
				continue
			}
			return ev.Path, nil
		}
	}
}

// tag writes the metadata, retrying on operator request. The phase
// stays PhotoDetected across failed attempts.
func (c *Controller) tag(ctx context.Context, v domain.Variation, filePath string) error {
	for {
		cmd := commands.NewTagPhotoCommand(c.opts.Writer, filePath, v)
		if _, err := cmd.Execute(ctx); err != nil {
			c.state.Fail(err)
			c.notify(Update{Variation: v, FilePath: filePath, Err: err})
			if err := c.awaitRetry(ctx); err != nil {
				return err
			}
			continue
		}
		return nil
	}
}

func (c *Controller) awaitRetry(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.skip:
		return errSkipped
	case <-c.retry:
		return nil
	}
}

func (c *Controller) notify(u Update) {
	if c.opts.Notify == nil {
		return
	}
	u.Phase = c.state.Phase
	u.Processed = c.state.Processed
	u.Total = c.opts.Catalog.Len()
	// Advance has already moved past the current variation
	u.Index = u.Total - c.opts.Catalog.Remaining() - 1
	if u.Index < 0 {
		u.Index = 0
	}
	c.opts.Notify(u)
}
