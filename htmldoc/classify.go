package htmldoc

import (
	"golang.org/x/net/html/atom"

	"github.com/tsawler/htmltext/scan"
)

// elementKind is the handling the extractor applies to a '<' construct.
type elementKind int

const (
	kindGeneric elementKind = iota
	kindComment
	kindCDATA
	kindScript
	kindStyle
	kindNoscript
	kindAnnotation
	kindAnnotationXML
	kindMeta
	kindTitle
	kindSubject
	kindStrayAngle
)

// element is a classified '<' construct.
type element struct {
	kind    elementKind
	atom    atom.Atom // element name without any leading '/'; 0 if not a known HTML name
	closing bool
}

// closer returns the closing element text that ends a skipped block.
func (k elementKind) closer() string {
	switch k {
	case kindScript:
		return "</script>"
	case kindStyle:
		return "</style>"
	case kindNoscript:
		return "</noscript>"
	case kindAnnotation:
		return "</annotation>"
	case kindAnnotationXML:
		return "</annotation-xml>"
	case kindTitle:
		return "</title>"
	case kindSubject:
		return "</subject>"
	}
	return ""
}

// classify inspects the construct whose '<' is at text[lt].
func classify(text []byte, lt int) element {
	rest := text[lt:]
	if scan.HasPrefixFold(rest, "<!--") {
		return element{kind: kindComment}
	}
	if (len(rest) >= 2 && scan.IsSpace(rest[1])) || scan.HasPrefixFold(rest[1:], "&nbsp;") {
		return element{kind: kindStrayAngle}
	}

	name := scan.ElementName(text, lt+1, true)
	if scan.HasPrefixFold(name, "![CDATA[") {
		return element{kind: kindCDATA}
	}

	el := element{kind: kindGeneric}
	if len(name) > 0 && name[0] == '/' {
		el.closing = true
		name = name[1:]
	}
	el.atom = lookupAtom(name)
	if el.closing {
		return el
	}

	switch el.atom {
	case atom.Script:
		el.kind = kindScript
	case atom.Style:
		el.kind = kindStyle
	case atom.Noscript:
		el.kind = kindNoscript
	case atom.Meta:
		el.kind = kindMeta
	case atom.Title:
		el.kind = kindTitle
	default:
		switch {
		case scan.EqualFold(name, "annotation"):
			el.kind = kindAnnotation
		case scan.EqualFold(name, "annotation-xml"):
			el.kind = kindAnnotationXML
		case scan.EqualFold(name, "subject"):
			el.kind = kindSubject
		}
	}
	return el
}

// lookupAtom maps an element name to its atom, ignoring case.
func lookupAtom(name []byte) atom.Atom {
	var buf [16]byte
	if len(name) == 0 || len(name) > len(buf) {
		return 0
	}
	for i, c := range name {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}
	return atom.Lookup(buf[:len(name)])
}

// isParagraphElement reports whether a starts a new paragraph.
func isParagraphElement(a atom.Atom) bool {
	switch a {
	case atom.Button, atom.Div, atom.Dl, atom.Dt,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Hr, atom.Input, atom.Ol, atom.Option, atom.P,
		atom.Select, atom.Table, atom.Tr, atom.Ul:
		return true
	}
	return false
}
