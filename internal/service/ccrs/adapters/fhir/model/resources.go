package model

import "encoding/xml"

type Encounter struct {
	XMLName         xml.Name         `xml:"Encounter"`
	ID              *Attr            `xml:"id,omitempty"`
	Meta            *Meta            `xml:"meta,omitempty"`
	Contained       []Contained      `xml:"contained,omitempty"`
	Status          *Attr            `xml:"status,omitempty"`
	Subject         *Reference       `xml:"subject,omitempty"`
	Period          *Period          `xml:"period,omitempty"`
	Account         *Reference       `xml:"account,omitempty"`
	Hospitalization *Hospitalization `xml:"hospitalization,omitempty"`
	ServiceProvider *Reference       `xml:"serviceProvider,omitempty"`
}

// Contained wraps one embedded sub-resource addressed by its local id.
type Contained struct {
	XMLName  xml.Name  `xml:"contained"`
	Account  *Account  `xml:"Account,omitempty"`
	Coverage *Coverage `xml:"Coverage,omitempty"`
	Location *Location `xml:"Location,omitempty"`
}

type Coverage struct {
	XMLName xml.Name         `xml:"Coverage"`
	ID      *Attr            `xml:"id,omitempty"`
	Type    *CodeableConcept `xml:"type,omitempty"`
	Period  *Period          `xml:"period,omitempty"`
}

type Account struct {
	XMLName  xml.Name          `xml:"Account"`
	ID       *Attr             `xml:"id,omitempty"`
	Type     *CodeableConcept  `xml:"type,omitempty"`
	Coverage []AccountCoverage `xml:"coverage,omitempty"`
}

type AccountCoverage struct {
	XMLName  xml.Name   `xml:"coverage"`
	Coverage *Reference `xml:"coverage,omitempty"`
}

type Location struct {
	XMLName              xml.Name         `xml:"Location"`
	ID                   *Attr            `xml:"id,omitempty"`
	Type                 *CodeableConcept `xml:"type,omitempty"`
	ManagingOrganization *Reference       `xml:"managingOrganization,omitempty"`
}

// Hospitalization holds the admit-from / discharged-to links. Origin is a
// structured reference while destination is a bare value attribute; the
// receiving system's schema is asymmetric here.
type Hospitalization struct {
	XMLName     xml.Name   `xml:"hospitalization"`
	Origin      *Reference `xml:"origin,omitempty"`
	Destination *Attr      `xml:"destination,omitempty"`
}
