package autolink

import (
	"bytes"
	"fmt"
)

// renderLink appends the anchor tag for one matched link to out. The
// href is the raw matched bytes, never re-encoded: bare www. links get
// an "http://" prefix and emails "mailto:". attr, when non-empty, is
// inserted verbatim after the href. onLink, when set, supplies the
// visible text instead of the match itself; its failure aborts the
// whole scan.
func renderLink(out *bytes.Buffer, match []byte, act action, attr string, onLink OnLinkFunc) error {
	out.WriteString(`<a href="`)

	switch act {
	case actionWWW:
		out.WriteString("http://")
	case actionEmail:
		out.WriteString("mailto:")
	}

	out.Write(match)

	if attr != "" {
		out.WriteString(`" `)
		out.WriteString(attr)
		out.WriteByte('>')
	} else {
		out.WriteString(`">`)
	}

	if onLink != nil {
		text, err := onLink(match)
		if err != nil {
			return fmt.Errorf("link text callback: %w", err)
		}
		if text == nil {
			return ErrInvalidCallbackResult
		}
		out.Write(text)
	} else {
		out.Write(match)
	}

	out.WriteString("</a>")
	return nil
}
