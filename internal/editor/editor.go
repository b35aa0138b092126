// Package editor is the engine facade the editing surface talks to. It
// owns the document tree, keeps it in lockstep with the flat text buffer
// through ApplyBufferChange, and applies style and paragraph operations.
//
// The editor is single-threaded by contract: the owning surface must
// serialize calls, and no operation suspends or retries. Every mutation
// bumps a version counter and publishes a change event; renderers react
// to those instead of observing the tree.
package editor

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/pubsub"
	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

// Change is the payload of a published mutation event.
type Change struct {
	Version uint64
	Text    string
}

// Editor holds one document and the transient editing state around it.
type Editor struct {
	doc       *richtext.Document
	selection richtext.Range

	// Styles queued by caret toggles, applied to the next typed text.
	toAdd    style.CharacterStyle
	toRemove style.CharacterStyle

	bullets []string
	version uint64
	broker  *pubsub.Broker[Change]
	dmp     *diffmatchpatch.DiffMatchPatch
}

// Option configures an Editor.
type Option func(*Editor)

// WithBullets overrides the per-level bullet glyphs.
func WithBullets(glyphs []string) Option {
	return func(e *Editor) { e.bullets = glyphs }
}

// New returns an editor holding an empty document.
func New(opts ...Option) *Editor {
	e := &Editor{
		doc:     richtext.New(),
		bullets: richtext.DefaultBullets,
		broker:  pubsub.NewBroker[Change](),
		dmp:     diffmatchpatch.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Document returns the owned tree. Callers must not mutate it while an
// editor operation is in flight.
func (e *Editor) Document() *richtext.Document {
	return e.doc
}

// Text returns the flat buffer projection.
func (e *Editor) Text() string {
	return e.doc.Text()
}

// Runs returns the flat styled projection for the renderer.
func (e *Editor) Runs() []richtext.Run {
	return e.doc.Runs()
}

// Bullets returns the configured bullet glyph list.
func (e *Editor) Bullets() []string {
	return e.bullets
}

// Version returns the document version, bumped on every mutation.
func (e *Editor) Version() uint64 {
	return e.version
}

// Events returns the broker carrying change notifications.
func (e *Editor) Events() *pubsub.Broker[Change] {
	return e.broker
}

// Selection returns the current selection range.
func (e *Editor) Selection() richtext.Range {
	return e.selection
}

// SetSelection moves the selection. Moving the caret discards any styles
// queued by caret toggles.
func (e *Editor) SetSelection(r richtext.Range) {
	if r != e.selection {
		e.toAdd = style.CharacterStyle{}
		e.toRemove = style.CharacterStyle{}
	}
	e.selection = r
}

// SetDocument replaces the whole document, e.g. after a markup load.
func (e *Editor) SetDocument(d *richtext.Document) {
	e.doc = d
	e.selection = richtext.Range{}
	e.toAdd = style.CharacterStyle{}
	e.toRemove = style.CharacterStyle{}
	e.doc.Renumber()
	e.bump(pubsub.LoadEvent)
}

func (e *Editor) bump(kind pubsub.EventType) {
	e.version++
	e.broker.Publish(kind, Change{Version: e.version, Text: e.doc.Text()})
}

// ToggleCharacterStyle adds cs over the selection unless every selected
// character already carries it, in which case it is removed. With a
// collapsed selection the toggle queues against the next typed text.
func (e *Editor) ToggleCharacterStyle(cs style.CharacterStyle) {
	if e.selection.Empty() {
		if e.CurrentStyle().SpecifiedFieldsEqual(cs, false) {
			e.queueRemove(cs)
		} else {
			e.queueAdd(cs)
		}
		return
	}
	if e.rangeCarriesStyle(e.selection, cs) {
		e.RemoveCharacterStyle(cs, &e.selection)
	} else {
		e.AddCharacterStyle(cs, &e.selection)
	}
}

// AddCharacterStyle merges cs into every span in r. A nil or empty range
// queues the style for the next typed text instead.
func (e *Editor) AddCharacterStyle(cs style.CharacterStyle, r *richtext.Range) {
	if r == nil || r.Empty() {
		e.queueAdd(cs)
		return
	}
	log.Debug(log.CatEditor, "add style", "start", r.Start, "end", r.End)
	e.applyToRange(*r, func(full style.CharacterStyle) style.CharacterStyle {
		return full.Merge(cs)
	})
	e.bump(pubsub.StyleEvent)
}

// RemoveCharacterStyle clears the fields cs specifies from every span in
// r. A nil or empty range queues the removal for the next typed text.
func (e *Editor) RemoveCharacterStyle(cs style.CharacterStyle, r *richtext.Range) {
	if r == nil || r.Empty() {
		e.queueRemove(cs)
		return
	}
	log.Debug(log.CatEditor, "remove style", "start", r.Start, "end", r.End)
	e.applyToRange(*r, func(full style.CharacterStyle) style.CharacterStyle {
		return full.Unmerge(cs)
	})
	e.bump(pubsub.StyleEvent)
}

func (e *Editor) queueAdd(cs style.CharacterStyle) {
	e.toAdd = e.toAdd.Merge(cs)
	e.toRemove = e.toRemove.Unmerge(cs)
}

func (e *Editor) queueRemove(cs style.CharacterStyle) {
	e.toRemove = e.toRemove.Merge(cs)
	e.toAdd = e.toAdd.Unmerge(cs)
}

// rangeCarriesStyle reports whether every character in r already
// satisfies cs.
func (e *Editor) rangeCarriesStyle(r richtext.Range, cs style.CharacterStyle) bool {
	for _, seg := range e.paragraphSegments(r) {
		for _, s := range seg.para.SpansInRange(seg.local) {
			// SpansInRange matches on full ranges, so a wrapper whose own
			// text lies outside the selection still shows up here. Only
			// spans contributing characters to the selection get a vote.
			if !s.OwnRange().Overlaps(seg.local) {
				continue
			}
			if !s.FullStyle().SpecifiedFieldsEqual(cs, false) {
				return false
			}
		}
	}
	return true
}

// applyToRange rewrites the styled runs of every paragraph slice covered
// by r, applying fn to the fully merged style of each covered segment.
// Affected paragraphs are rebuilt from their runs; node identity inside
// them is not preserved.
func (e *Editor) applyToRange(r richtext.Range, fn func(style.CharacterStyle) style.CharacterStyle) {
	for _, seg := range e.paragraphSegments(r) {
		runs := splitRuns(seg.para.Runs(), seg.local.Start)
		runs = splitRuns(runs, seg.local.End)
		off := 0
		for i := range runs {
			runRange := richtext.Range{Start: off, End: off + len(runs[i].Text)}
			off = runRange.End
			// The splits above put run boundaries at both ends of the
			// segment, so every run is entirely in or entirely out.
			if runRange.Empty() || !seg.local.Covers(runRange) {
				continue
			}
			runs[i].Style = fn(runs[i].Style)
		}
		rebuildParagraph(seg.para, runs)
	}
}

type paragraphSegment struct {
	para  *richtext.Paragraph
	local richtext.Range
}

// paragraphSegments maps a global range onto the per-paragraph local
// ranges it covers, skipping separator positions.
func (e *Editor) paragraphSegments(r richtext.Range) []paragraphSegment {
	startPara, _ := e.doc.Locate(r.Start)
	endPara, _ := e.doc.Locate(r.End)

	var out []paragraphSegment
	for i := startPara; i <= endPara; i++ {
		p := e.doc.Paragraphs()[i]
		pr := e.doc.ParagraphRange(i)
		local := richtext.Range{
			Start: max(r.Start, pr.Start),
			End:   min(r.End, pr.End),
		}.Shift(-pr.Start)
		if local.Start > local.End {
			continue
		}
		out = append(out, paragraphSegment{para: p, local: local})
	}
	return out
}

// ToggleParagraphType applies t to every selected paragraph, or resets to
// the default type when all of them already have t's kind.
func (e *Editor) ToggleParagraphType(t richtext.ParagraphType) {
	paras := e.selectedParagraphs()
	all := true
	for _, p := range paras {
		if p.Type.Kind != t.Kind {
			all = false
			break
		}
	}
	for _, p := range paras {
		if all {
			p.Type = richtext.DefaultType()
		} else {
			p.Type = t
		}
	}
	e.doc.Renumber()
	e.bump(pubsub.ParagraphEvent)
}

// IncreaseListLevel nests every selected list paragraph one level deeper.
func (e *Editor) IncreaseListLevel() {
	for _, p := range e.selectedParagraphs() {
		if p.Type.IsList() {
			p.Type.Level++
		}
	}
	e.doc.Renumber()
	e.bump(pubsub.ParagraphEvent)
}

// DecreaseListLevel unnests every selected list paragraph; leaving level
// one turns the paragraph back into a default paragraph.
func (e *Editor) DecreaseListLevel() {
	for _, p := range e.selectedParagraphs() {
		if !p.Type.IsList() {
			continue
		}
		if p.Type.Level <= 1 {
			p.Type = richtext.DefaultType()
		} else {
			p.Type.Level--
		}
	}
	e.doc.Renumber()
	e.bump(pubsub.ParagraphEvent)
}

func (e *Editor) selectedParagraphs() []*richtext.Paragraph {
	sel := e.selection
	if sel.End > e.doc.Length() {
		sel.End = e.doc.Length()
	}
	if sel.Start > sel.End {
		sel.Start = sel.End
	}
	startPara, _ := e.doc.Locate(sel.Start)
	endPara, _ := e.doc.Locate(sel.End)
	return e.doc.Paragraphs()[startPara : endPara+1]
}
