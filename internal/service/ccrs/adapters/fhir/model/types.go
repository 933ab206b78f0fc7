package model

import "encoding/xml"

// Attr is a helper for FHIR's <id value="..."/> style
type Attr struct {
	Value string `xml:"value,attr,omitempty"`
}

type Meta struct {
	XMLName xml.Name `xml:"meta"`
	Profile *Attr    `xml:"profile,omitempty"`
}

type Identifier struct {
	XMLName xml.Name `xml:"identifier"`
	System  *Attr    `xml:"system,omitempty"`
	Value   *Attr    `xml:"value,omitempty"`
}

type Coding struct {
	XMLName xml.Name `xml:"coding"`
	System  *Attr    `xml:"system,omitempty"`
	Code    *Attr    `xml:"code,omitempty"`
	Display *Attr    `xml:"display,omitempty"`
}

type CodeableConcept struct {
	XMLName xml.Name `xml:""`
	Coding  *Coding  `xml:"coding,omitempty"`
	Text    *Attr    `xml:"text,omitempty"`
}

// Reference carries either a same-document/relative reference string or a
// logical identifier, depending on what the target element expects.
type Reference struct {
	XMLName    xml.Name    `xml:""`
	Reference  *Attr       `xml:"reference,omitempty"`
	Identifier *Identifier `xml:"identifier,omitempty"`
}

type Period struct {
	XMLName xml.Name `xml:"period"`
	Start   *Attr    `xml:"start,omitempty"`
	End     *Attr    `xml:"end,omitempty"`
}
