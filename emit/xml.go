package emit

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/ipparse/core"
)

const indent = "  "

// WriteXML serializes the tree rooted at doc as an indented UTF-8 document.
// Text is entity-escaped, so '&', '<' and '>' appear as &amp;, &lt; and
// &gt;; quotes are written as they are.
func WriteXML(w io.Writer, doc *Node) error {
	if doc == nil || doc.Kind != DocumentNode {
		return &core.Error{Kind: core.KindInternal, Msg: "serializing a tree without a document root"}
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", indent)

	if err := encodeNode(enc, w, doc); err != nil {
		return err
	}
	if err := enc.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w, "\n")
	return err
}

// textEscaper escapes character data. Quotes stay literal, which
// xml.EscapeText would turn into &#34; and &#39;.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// encodeNode writes n with enc. Text goes straight to w between flushes,
// so the encoder's indentation state is untouched.
func encodeNode(enc *xml.Encoder, w io.Writer, n *Node) error {
	start := xml.StartElement{Name: xml.Name{Local: n.Element}}
	for _, a := range n.Attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}

	if err := enc.EncodeToken(start); err != nil {
		return fmt.Errorf("encoding <%s>: %w", n.Element, err)
	}

	if n.Text != "" {
		if !core.ValidXMLText(n.Text) {
			return &core.Error{
				Kind: core.KindInternal,
				Msg:  fmt.Sprintf("<%s> text %q cannot be represented in XML", n.Element, n.Text),
			}
		}
		if err := enc.Flush(); err != nil {
			return err
		}
		if _, err := textEscaper.WriteString(w, n.Text); err != nil {
			return fmt.Errorf("writing <%s> text: %w", n.Element, err)
		}
	}

	for _, c := range n.Children {
		if err := encodeNode(enc, w, c); err != nil {
			return err
		}
	}

	return enc.EncodeToken(start.End())
}

// XMLEmitter writes each program it receives as one XML document.
type XMLEmitter struct {
	w io.Writer
}

// NewXMLEmitter creates an emitter that writes to w.
func NewXMLEmitter(w io.Writer) *XMLEmitter {
	return &XMLEmitter{w: w}
}

// Emit renders doc completely in memory before writing it, so w never sees a
// partial document.
func (e *XMLEmitter) Emit(doc *Node) error {
	var buf bytes.Buffer
	if err := WriteXML(&buf, doc); err != nil {
		var ce *core.Error
		if errors.As(err, &ce) {
			return err
		}
		return &core.Error{Kind: core.KindInternal, Msg: "cannot serialize document", Err: err}
	}

	if _, err := e.w.Write(buf.Bytes()); err != nil {
		return &core.Error{Kind: core.KindOutput, Msg: "cannot write document", Err: err}
	}

	return nil
}
