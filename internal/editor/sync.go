package editor

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/pubsub"
	"github.com/zjrosen/quill/internal/richtext"
	"github.com/zjrosen/quill/internal/style"
)

// ApplyBufferChange reconciles the span tree with one external buffer
// replacement. It classifies the edit by length delta - growth is an
// insertion, shrink a deletion, equal length a replace resolved to
// delete-then-insert over the diffed region - and applies the minimal
// tree mutation. It returns the rebuilt styled projection and the merged
// style governing the next typed character.
//
// oldText must equal the engine's current projection; indices outside the
// buffer are caller bugs and panic rather than corrupting the tree.
func (e *Editor) ApplyBufferChange(oldText, newText string, newSelection richtext.Range) ([]richtext.Run, style.CharacterStyle) {
	if cur := e.doc.Text(); cur != oldText {
		panic(fmt.Sprintf("editor: buffer out of sync: engine holds %d bytes, caller claims %d", len(cur), len(oldText)))
	}

	switch delta := len(newText) - len(oldText); {
	case delta > 0:
		insertEnd := newSelection.Start
		insertStart := insertEnd - delta
		if insertStart < 0 || insertEnd > len(newText) {
			panic(fmt.Sprintf("editor: selection %d inconsistent with %d inserted bytes", newSelection.Start, delta))
		}
		e.insertText(insertStart, newText[insertStart:insertEnd])
	case delta < 0:
		start := newSelection.Start
		e.deleteRange(richtext.NewRange(start, start-delta))
		// A deletion consumes any queued caret styles.
		e.toAdd = style.CharacterStyle{}
		e.toRemove = style.CharacterStyle{}
	default:
		if oldText != newText {
			e.replaceText(oldText, newText)
		}
	}

	e.selection = newSelection
	if got := e.doc.Text(); got != newText {
		panic(fmt.Sprintf("editor: projection diverged after edit: %q != %q", got, newText))
	}
	e.bump(pubsub.EditEvent)
	return e.doc.Runs(), e.CurrentStyle()
}

// insertText splices text into the tree at a global byte offset. Line
// breaks in the inserted text split paragraphs.
func (e *Editor) insertText(at int, text string) {
	segments := strings.Split(text, "\n")
	paraIdx, local := e.doc.Locate(at)
	para := e.doc.Paragraphs()[paraIdx]

	e.insertPlain(para, local, segments[0])
	if len(segments) == 1 {
		return
	}
	log.Debug(log.CatSync, "insert splits paragraph", "para", paraIdx, "segments", len(segments))

	tail := para.SplitAt(local + len(segments[0]))
	idx := paraIdx + 1
	for _, seg := range segments[1 : len(segments)-1] {
		mid := richtext.NewParagraph()
		mid.Style = para.Style
		mid.Type = para.Type
		e.doc.InsertParagraph(idx, mid)
		e.insertPlain(mid, 0, seg)
		idx++
	}
	e.doc.InsertParagraph(idx, tail)
	if last := segments[len(segments)-1]; last != "" {
		e.insertPlain(tail, 0, last)
	}
	e.doc.Renumber()
}

// insertPlain inserts line-break-free text at a paragraph-local offset.
func (e *Editor) insertPlain(p *richtext.Paragraph, local int, text string) {
	if text == "" {
		return
	}

	span, off := p.SpanAtIndex(local)
	pending := !e.toAdd.IsZero() || !e.toRemove.IsZero()

	// No span accepts the position: the caret sits against a span that
	// refuses edge insertion, so the text starts a fresh sibling.
	if span == nil {
		e.insertDetached(p, local, text)
		return
	}

	if !pending {
		span.Text = span.Text[:off] + text + span.Text[off:]
		return
	}

	desired := span.FullStyle().Merge(e.toAdd).Unmerge(e.toRemove)
	if span.FullStyle().SpecifiedFieldsEqual(desired, true) && desired.SpecifiedFieldsEqual(span.FullStyle(), true) {
		// Queued changes are a net no-op against this span.
		span.Text = span.Text[:off] + text + span.Text[off:]
		return
	}

	// Typing at the trailing edge of a leaf: place the typed span as a
	// sibling, walking up to the nearest ancestor whose full style
	// already equals the target so compatible ancestors are reused
	// instead of stacking new wrappers. delta tracks the own styles
	// accumulated between the current level and the original span, so
	// the typed span's own style stays correct at whatever level it
	// lands.
	if off == len(span.Text) && len(span.Children()) == 0 && e.toRemove.IsZero() {
		typed := richtext.NewSpan(text, style.CharacterStyle{}, style.RichSpanStyle{})
		child := span
		delta := span.Style
		for {
			parent := child.Parent()
			if parent == nil {
				typed.Style = delta.Merge(e.toAdd)
				richtext.InsertSiblingAfter(child, typed)
				return
			}
			if parent.FullStyle().SpecifiedFieldsEqual(desired, true) &&
				desired.SpecifiedFieldsEqual(parent.FullStyle(), true) &&
				parent.Rich.Kind == style.SpanDefault {
				parent.InsertChild(indexWithin(parent.Children(), child)+1, typed)
				return
			}
			siblings := parent.Children()
			if siblings[len(siblings)-1] != child {
				// Following siblings block further ascent; insert here.
				typed.Style = delta.Merge(e.toAdd)
				parent.InsertChild(indexWithin(siblings, child)+1, typed)
				return
			}
			delta = parent.Style.Merge(delta)
			child = parent
		}
	}

	// Mid-span insertion or a queued removal: rebuild the paragraph from
	// its runs with the typed run spliced in.
	e.rebuildWithInsert(p, local, text, desired)
}

// insertDetached appends typed text next to a span that refused edge
// insertion.
func (e *Editor) insertDetached(p *richtext.Paragraph, local int, text string) {
	desired := e.toAdd
	typed := richtext.NewSpan(text, desired, style.RichSpanStyle{})

	if local == 0 {
		p.InsertSpan(0, typed)
		return
	}
	if local == p.Length() {
		p.AppendSpan(typed)
		return
	}
	e.rebuildWithInsert(p, local, text, desired)
}

// rebuildWithInsert flattens the paragraph, splices a typed run at the
// offset, and rebuilds top-level spans from the normalized run list.
// Correctness over node identity: the slow path for structurally awkward
// insertions.
func (e *Editor) rebuildWithInsert(p *richtext.Paragraph, local int, text string, typedStyle style.CharacterStyle) {
	runs := splitRuns(p.Runs(), local)
	out := make([]richtext.Run, 0, len(runs)+1)
	off := 0
	inserted := false
	for _, r := range runs {
		if !inserted && off == local {
			out = append(out, richtext.Run{Text: text, Style: typedStyle})
			inserted = true
		}
		out = append(out, r)
		off += len(r.Text)
	}
	if !inserted {
		out = append(out, richtext.Run{Text: text, Style: typedStyle})
	}
	rebuildParagraph(p, out)
}

// deleteRange removes a global byte range. Whole paragraphs strictly
// between the endpoints are dropped, the boundary paragraphs are trimmed,
// and, when the range crosses a separator, the remainder of the end
// paragraph folds into the start paragraph.
func (e *Editor) deleteRange(r richtext.Range) {
	startPara, startLocal := e.doc.Locate(r.Start)
	endPara, endLocal := e.doc.Locate(r.End)

	start := e.doc.Paragraphs()[startPara]
	if startPara == endPara {
		start.RemoveRange(richtext.Range{Start: startLocal, End: endLocal})
		e.resetEmptiedDocument()
		e.doc.Renumber()
		return
	}
	log.Debug(log.CatSync, "delete spans paragraphs", "start", startPara, "end", endPara)

	end := e.doc.Paragraphs()[endPara]
	start.RemoveRange(richtext.Range{Start: startLocal, End: start.Length()})
	end.RemoveRange(richtext.Range{Start: 0, End: endLocal})

	// Fold what is left of the end paragraph into the start paragraph;
	// the separator between them was part of the removed range.
	merged := make([]*richtext.Span, 0, len(start.Spans())+len(end.Spans()))
	for _, s := range start.Spans() {
		if !s.IsBlank() {
			merged = append(merged, s)
		}
	}
	for _, s := range end.Spans() {
		if !s.IsBlank() {
			merged = append(merged, s)
		}
	}
	start.ReplaceSpans(merged)

	e.doc.RemoveParagraphs(startPara+1, endPara+1)
	e.resetEmptiedDocument()
	e.doc.Renumber()
}

// resetEmptiedDocument reverts the sole surviving paragraph to a plain
// paragraph once a deletion has emptied the whole document. An empty
// document has no list left to continue.
func (e *Editor) resetEmptiedDocument() {
	if e.doc.ParagraphCount() != 1 {
		return
	}
	if p := e.doc.Paragraphs()[0]; p.Length() == 0 {
		p.Type = richtext.DefaultType()
	}
}

// replaceText handles a same-length edit as delete-then-insert over the
// changed window found by diffing the buffers.
func (e *Editor) replaceText(oldText, newText string) {
	prefix := e.dmp.DiffCommonPrefix(oldText, newText)
	suffix := e.dmp.DiffCommonSuffix(oldText[prefix:], newText[prefix:])

	oldEnd := len(oldText) - suffix
	newEnd := len(newText) - suffix
	log.Debug(log.CatSync, "replace window", "start", prefix, "end", oldEnd)

	e.deleteRange(richtext.NewRange(prefix, oldEnd))
	if prefix < newEnd {
		e.insertText(prefix, newText[prefix:newEnd])
	}
}

// CurrentStyle returns the merged style at the caret: the full style of
// the character before the caret, adjusted by any queued toggles. This is
// the style the next typed character receives.
func (e *Editor) CurrentStyle() style.CharacterStyle {
	caret := e.selection.Start
	if caret > e.doc.Length() {
		caret = e.doc.Length()
	}
	paraIdx, local := e.doc.Locate(caret)
	para := e.doc.Paragraphs()[paraIdx]

	var base style.CharacterStyle
	if local > 0 {
		prev := previousGraphemeStart(para.Text(), local)
		base = para.StyleAt(prev)
	} else if s := para.FirstNonEmptyChild(); s != nil {
		base = s.FullStyle()
	}
	return base.Merge(e.toAdd).Unmerge(e.toRemove)
}

// previousGraphemeStart returns the byte offset where the grapheme
// cluster immediately before off begins, so stepping back from a caret
// never lands inside a cluster.
func previousGraphemeStart(text string, off int) int {
	if off <= 0 {
		return 0
	}
	start := 0
	pos := 0
	state := -1
	rest := text
	for len(rest) > 0 && pos < off {
		cluster, tail, _, newState := uniseg.StepString(rest, state)
		start = pos
		pos += len(cluster)
		rest = tail
		state = newState
	}
	return start
}

// splitRuns cuts the run list so that a run boundary falls exactly at the
// concatenated offset at.
func splitRuns(runs []richtext.Run, at int) []richtext.Run {
	out := make([]richtext.Run, 0, len(runs)+1)
	off := 0
	for _, r := range runs {
		end := off + len(r.Text)
		if at > off && at < end {
			cut := at - off
			left, right := r, r
			left.Text = r.Text[:cut]
			right.Text = r.Text[cut:]
			out = append(out, left, right)
		} else {
			out = append(out, r)
		}
		off = end
	}
	return out
}

// rebuildParagraph replaces a paragraph's spans with one top-level span
// per run, merging adjacent runs whose styles agree exactly.
func rebuildParagraph(p *richtext.Paragraph, runs []richtext.Run) {
	var spans []*richtext.Span
	var prev *richtext.Span
	for _, r := range runs {
		if r.Text == "" && r.Rich.Kind != style.SpanImage {
			continue
		}
		if prev != nil && prev.Rich == r.Rich &&
			prev.Style.SpecifiedFieldsEqual(r.Style, true) &&
			r.Style.SpecifiedFieldsEqual(prev.Style, true) {
			prev.Text += r.Text
			continue
		}
		prev = richtext.NewSpan(r.Text, r.Style, r.Rich)
		spans = append(spans, prev)
	}
	p.ReplaceSpans(spans)
}

func indexWithin(spans []*richtext.Span, target *richtext.Span) int {
	for i, s := range spans {
		if s == target {
			return i
		}
	}
	return -1
}
