// Copyright (c) 2026 Keymaster Team
// Keymaster - SSH key management system
// This source code is licensed under the MIT license found in the LICENSE file.
package knownhosts

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/toeirei/knownhostsxml/core/model"
)

// Header is the XML declaration written at the start of every document.
const Header = `<?xml version="1.0" encoding="utf-8"?>`

const indentUnit = "  "

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// document is the decoding shape: <root><hosts><host .../>...</hosts></root>.
type document struct {
	XMLName xml.Name      `xml:"root"`
	Hosts   []hostElement `xml:"hosts>host"`
}

// hostElement uses pointers so a missing attribute stays distinguishable
// from an empty one.
type hostElement struct {
	Name        *string `xml:"name,attr"`
	Fingerprint *string `xml:"fingerprint,attr"`
}

// Marshal returns the XML document for hosts. With indent set every element
// is on its own line, indented by two spaces; otherwise the document body is
// a single line.
func Marshal(hosts []model.KnownHost, indent bool) ([]byte, error) {
	for i, h := range hosts {
		if err := checkText("name", h.HostName); err != nil {
			return nil, &Error{Op: "encode", Kind: KindEncode, Err: fmt.Errorf("host %d: %w", i, err)}
		}
		if err := checkText("fingerprint", h.Fingerprint); err != nil {
			return nil, &Error{Op: "encode", Kind: KindEncode, Err: fmt.Errorf("host %d: %w", i, err)}
		}
	}

	var b bytes.Buffer
	line := func(depth int, s string) {
		if indent {
			for j := 0; j < depth; j++ {
				b.WriteString(indentUnit)
			}
		}
		b.WriteString(s)
		if indent {
			b.WriteByte('\n')
		}
	}

	line(0, Header)
	line(0, "<root>")
	if len(hosts) == 0 {
		line(1, "<hosts/>")
	} else {
		line(1, "<hosts>")
		for _, h := range hosts {
			var el bytes.Buffer
			el.WriteString("<host")
			writeAttr(&el, "name", h.HostName)
			writeAttr(&el, "fingerprint", h.Fingerprint)
			el.WriteString("/>")
			line(2, el.String())
		}
		line(1, "</hosts>")
	}
	line(0, "</root>")
	return b.Bytes(), nil
}

// Encode writes the XML document for hosts to w in a single Write call.
func Encode(w io.Writer, hosts []model.KnownHost, indent bool) error {
	if w == nil {
		return invalidArgument("encode", "nil writer")
	}
	data, err := Marshal(hosts, indent)
	if err != nil {
		return err
	}
	n, err := w.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return &Error{Op: "encode", Kind: KindIO, Err: err}
	}
	return nil
}

// Unmarshal parses a document produced by Marshal.
func Unmarshal(data []byte) ([]model.KnownHost, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a whole document from r. A missing or empty hosts element
// yields an empty, non-nil slice. Any syntax or shape error fails the whole
// document.
func Decode(r io.Reader) ([]model.KnownHost, error) {
	if r == nil {
		return nil, invalidArgument("decode", "nil reader")
	}
	hosts, err := decode(r)
	if err != nil {
		return nil, &Error{Op: "decode", Kind: KindDecode, Err: err}
	}
	return hosts, nil
}

func decode(r io.Reader) ([]model.KnownHost, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	// Files written by other tools may start with a UTF-8 byte order mark.
	data = bytes.TrimPrefix(data, utf8BOM)
	if err := checkAttributes(data); err != nil {
		return nil, err
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty document")
		}
		return nil, err
	}
	if err := checkTrailer(dec); err != nil {
		return nil, err
	}

	hosts := make([]model.KnownHost, 0, len(doc.Hosts))
	for _, el := range doc.Hosts {
		var h model.KnownHost
		if el.Name != nil {
			h.HostName = model.Str(*el.Name)
		}
		if el.Fingerprint != nil {
			h.Fingerprint = model.Str(*el.Fingerprint)
		}
		hosts = append(hosts, h)
	}
	return hosts, nil
}

// checkAttributes rejects elements that repeat an attribute name, which
// encoding/xml accepts by letting the last value win.
func checkAttributes(data []byte) error {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.RawToken()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		seen := make(map[xml.Name]struct{}, len(start.Attr))
		for _, a := range start.Attr {
			if _, dup := seen[a.Name]; dup {
				return fmt.Errorf("element <%s> repeats attribute %q", start.Name.Local, qualified(a.Name))
			}
			seen[a.Name] = struct{}{}
		}
	}
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

// checkTrailer rejects anything but whitespace, comments and processing
// instructions after the root element.
func checkTrailer(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return errors.New("unexpected text after root element")
			}
		case xml.Comment, xml.ProcInst:
		default:
			return fmt.Errorf("unexpected %T after root element", tok)
		}
	}
}

func writeAttr(b *bytes.Buffer, name string, v model.NullString) {
	if !v.Valid {
		return
	}
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	// Escaping into a bytes.Buffer cannot fail.
	_ = xml.EscapeText(b, []byte(v.String))
	b.WriteByte('"')
}

// checkText reports values that XML 1.0 cannot represent. EscapeText would
// silently replace them, breaking the round trip.
func checkText(attr string, v model.NullString) error {
	if !v.Valid {
		return nil
	}
	if !utf8.ValidString(v.String) {
		return fmt.Errorf("%s attribute is not valid UTF-8", attr)
	}
	for _, r := range v.String {
		if !isXMLChar(r) {
			return fmt.Errorf("%s attribute contains character %U not allowed in XML", attr, r)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
