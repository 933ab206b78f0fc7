package model

import "encoding/xml"

type Bundle struct {
	XMLName    xml.Name      `xml:"Bundle"`
	Xmlns      string        `xml:"xmlns,attr,omitempty"`
	ID         *Attr         `xml:"id,omitempty"`
	Identifier *Identifier   `xml:"identifier,omitempty"`
	Type       *Attr         `xml:"type,omitempty"` // always "transaction"
	Entry      []BundleEntry `xml:"entry,omitempty"`
}

type BundleEntry struct {
	XMLName  xml.Name       `xml:"entry"`
	FullURL  *Attr          `xml:"fullUrl,omitempty"`
	Resource EntryResource  `xml:"resource"`
	Request  *BundleRequest `xml:"request,omitempty"`
}

type EntryResource struct {
	// Exactly one of the below should be non-nil
	Encounter *Encounter `xml:"Encounter,omitempty"`
}

// BundleRequest is the transaction directive for an entry.
type BundleRequest struct {
	XMLName xml.Name `xml:"request"`
	Method  *Attr    `xml:"method,omitempty"` // POST or PUT
	URL     *Attr    `xml:"url,omitempty"`
}
