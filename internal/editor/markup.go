package editor

import (
	htmlcodec "github.com/zjrosen/quill/internal/codec/html"
	mdcodec "github.com/zjrosen/quill/internal/codec/markdown"
	"github.com/zjrosen/quill/internal/log"
)

// ToHTML serializes the document as HTML markup.
func (e *Editor) ToHTML() string {
	return htmlcodec.Render(e.doc)
}

// FromHTML replaces the document with the result of parsing src.
func (e *Editor) FromHTML(src string) error {
	doc, err := htmlcodec.Parse(src)
	if err != nil {
		log.ErrorErr(log.CatHTML, "html load failed", err)
		return err
	}
	e.SetDocument(doc)
	return nil
}

// ToMarkdown serializes the document as Markdown.
func (e *Editor) ToMarkdown() string {
	return mdcodec.Render(e.doc)
}

// FromMarkdown replaces the document with the result of parsing src.
func (e *Editor) FromMarkdown(src string) error {
	doc, err := mdcodec.Parse(src)
	if err != nil {
		log.ErrorErr(log.CatMarkdown, "markdown load failed", err)
		return err
	}
	e.SetDocument(doc)
	return nil
}
