// Package toggle implements the on-demand translation panels of the story
// reader. Each sentence (and the title) has an independent panel that is
// CLOSED, LOADING, SHOWN or in ERROR. A translation is fetched at most once
// per panel unless a refresh is requested.
package toggle

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// TitleKey addresses the title panel. Sentence panels use their index.
const TitleKey = -1

var (
	ErrUnknownPanel = errors.New("toggle: unknown panel")
	ErrPanelClosed  = errors.New("toggle: panel is closed")
)

// State is the visible state of a panel.
type State int

const (
	StateClosed State = iota
	StateLoading
	StateShown
	StateError
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateLoading:
		return "loading"
	case StateShown:
		return "shown"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Fetcher translates one piece of text.
type Fetcher interface {
	Fetch(ctx context.Context, text string) (string, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, text string) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, text string) (string, error) { return f(ctx, text) }

// PanelView is a snapshot of one panel.
type PanelView struct {
	Key         int
	Text        string
	State       State
	Translation string
	Err         string
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnChange registers fn to be called after every state change.
// fn runs outside the controller lock and may be called concurrently.
func WithOnChange(fn func(PanelView)) Option {
	return func(c *Controller) { c.onChange = fn }
}

type panel struct {
	text        string
	open        bool
	loading     bool
	translation *string
	err         error
}

func (p *panel) view(key int) PanelView {
	v := PanelView{Key: key, Text: p.text}
	if p.translation != nil {
		v.Translation = *p.translation
	}
	if p.err != nil {
		v.Err = p.err.Error()
	}

	switch {
	case !p.open:
		v.State = StateClosed
	case p.loading:
		v.State = StateLoading
	case p.err != nil:
		v.State = StateError
	case p.translation != nil:
		v.State = StateShown
	default:
		v.State = StateClosed
	}
	return v
}

// Controller owns the panels of one rendered story.
type Controller struct {
	fetcher  Fetcher
	onChange func(PanelView)

	mu     sync.Mutex
	panels map[int]*panel
	order  []int

	wg sync.WaitGroup
}

// New creates a Controller with a title panel and one panel per sentence.
// All panels start CLOSED with nothing cached.
func New(fetcher Fetcher, title string, sentences []string, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		panels:  make(map[int]*panel, len(sentences)+1),
		order:   make([]int, 0, len(sentences)+1),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.panels[TitleKey] = &panel{text: title}
	c.order = append(c.order, TitleKey)
	for i, s := range sentences {
		c.panels[i] = &panel{text: s}
		c.order = append(c.order, i)
	}
	return c
}

// Open shows the panel. A panel with a cached translation is shown without
// fetching, even after a failed Refresh; otherwise exactly one fetch is
// started. Opening a panel that is
// already loading does not start another fetch.
func (c *Controller) Open(ctx context.Context, key int) error {
	c.mu.Lock()
	p, ok := c.panels[key]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownPanel, key)
	}

	p.open = true
	start := !p.loading && p.translation == nil
	switch {
	case start:
		p.loading = true
		p.err = nil
	case !p.loading:
		// A failed refresh leaves the previous translation cached; show it.
		p.err = nil
	}
	view := p.view(key)
	c.mu.Unlock()

	c.notify(view)
	if start {
		c.fetch(ctx, key, view.Text)
	}
	return nil
}

// Close hides the panel. The cached translation is kept; an in-flight
// fetch still caches its result when it completes.
func (c *Controller) Close(key int) error {
	c.mu.Lock()
	p, ok := c.panels[key]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownPanel, key)
	}

	p.open = false
	p.err = nil
	view := p.view(key)
	c.mu.Unlock()

	c.notify(view)
	return nil
}

// Toggle opens a closed panel and closes an open one.
func (c *Controller) Toggle(ctx context.Context, key int) error {
	c.mu.Lock()
	p, ok := c.panels[key]
	open := ok && p.open
	c.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPanel, key)
	}
	if open {
		return c.Close(key)
	}
	return c.Open(ctx, key)
}

// Refresh re-fetches the translation of an open panel, replacing the cached
// one on success. It is a no-op while a fetch is already in flight.
func (c *Controller) Refresh(ctx context.Context, key int) error {
	c.mu.Lock()
	p, ok := c.panels[key]
	if !ok {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrUnknownPanel, key)
	}
	if !p.open {
		c.mu.Unlock()
		return fmt.Errorf("%w: %d", ErrPanelClosed, key)
	}
	if p.loading {
		c.mu.Unlock()
		return nil
	}

	p.loading = true
	p.err = nil
	view := p.view(key)
	c.mu.Unlock()

	c.notify(view)
	c.fetch(ctx, key, view.Text)
	return nil
}

// Panel returns a snapshot of one panel.
func (c *Controller) Panel(key int) (PanelView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.panels[key]
	if !ok {
		return PanelView{}, false
	}
	return p.view(key), true
}

// Panels returns snapshots of all panels, title first.
func (c *Controller) Panels() []PanelView {
	c.mu.Lock()
	defer c.mu.Unlock()

	views := make([]PanelView, len(c.order))
	for i, key := range c.order {
		views[i] = c.panels[key].view(key)
	}
	return views
}

// Wait blocks until every in-flight fetch has completed.
func (c *Controller) Wait() {
	c.wg.Wait()
}

func (c *Controller) fetch(ctx context.Context, key int, text string) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		translation, err := c.fetcher.Fetch(ctx, text)

		c.mu.Lock()
		p := c.panels[key]
		p.loading = false
		if err != nil {
			p.err = err
		} else {
			p.translation = &translation
			p.err = nil
		}
		view := p.view(key)
		c.mu.Unlock()

		c.notify(view)
	}()
}

func (c *Controller) notify(v PanelView) {
	if c.onChange != nil {
		c.onChange(v)
	}
}
