package catalog

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/errs"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
)

// ErrStale is returned by a List overtaken by a newer List on the same view.
var ErrStale = errors.New("stale fetch")

// Projection is the book list of one open view. It is a working copy, not
// the source of truth, and is discarded when the view closes.
type Projection struct {
	mu      sync.RWMutex
	books   []model.Book
	loaded  bool
	loading bool
	err     string
	closed  bool
	// seq identifies the latest fetch; older fetches settle as stale.
	seq uint64
}

func NewProjection() *Projection {
	return &Projection{books: []model.Book{}}
}

// Books returns a copy of the current list.
func (p *Projection) Books() []model.Book {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]model.Book, len(p.books))
	copy(out, p.books)
	return out
}

// Err is the recoverable error of the last fetch, empty after a success.
func (p *Projection) Err() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.err
}

func (p *Projection) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loading
}

// Loaded reports whether any fetch has succeeded.
func (p *Projection) Loaded() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loaded
}

func (p *Projection) Alive() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return !p.closed
}

// Close marks the view gone. Results arriving afterwards are discarded.
func (p *Projection) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

// Apply replaces the list with f(list). It returns errs.ErrViewClosed and
// leaves the list alone once the view is closed.
func (p *Projection) Apply(f func([]model.Book) []model.Book) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errs.ErrViewClosed
	}
	p.books = f(p.books)
	return nil
}

func (p *Projection) begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	if !p.closed {
		p.loading = true
	}
	return p.seq
}

// settle records the result of fetch seq. A failed fetch keeps the previous
// list; a fetch overtaken by a newer one is dropped.
func (p *Projection) settle(seq uint64, books []model.Book, errMsg string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return errs.ErrViewClosed
	}
	if seq != p.seq {
		return ErrStale
	}
	p.loading = false
	p.err = errMsg
	if errMsg == "" {
		p.books = books
		p.loaded = true
	}
	return nil
}
