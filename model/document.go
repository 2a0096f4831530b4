package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// UnknownCountry is the bucket used for links that carry no usable
// peer_country value.
const UnknownCountry = "Unknown"

// Link is a single peer link. The raw JSON object is kept verbatim so that
// fields this tool does not understand survive a round trip unchanged.
type Link struct {
	Raw json.RawMessage
}

func (l *Link) UnmarshalJSON(data []byte) error {
	l.Raw = append(l.Raw[:0], data...)
	return nil
}

func (l Link) MarshalJSON() ([]byte, error) {
	if len(l.Raw) == 0 {
		return []byte("{}"), nil
	}
	return l.Raw, nil
}

// PeerCountry returns the link's peer_country value. Links without the
// field, or with a null or non-string value, fall into UnknownCountry.
func (l Link) PeerCountry() string {
	var probe struct {
		PeerCountry *string `json:"peer_country"`
	}
	if err := json.Unmarshal(l.Raw, &probe); err != nil || probe.PeerCountry == nil {
		return UnknownCountry
	}
	return *probe.PeerCountry
}

// CountryGroup is one bucket of an AS record's grouped_by_country mapping.
type CountryGroup struct {
	Country string
	Count   int
	Peers   []Link
}

// CountryGroups is an ordered grouped_by_country mapping. It marshals as a
// JSON object whose keys appear in slice order, which carries the
// descending-count ordering through serialization.
type CountryGroups []CountryGroup

func (g CountryGroups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, cg := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(cg.Country)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteString(`:{"count":`)
		buf.WriteString(strconv.Itoa(cg.Count))
		buf.WriteString(`,"peers":`)
		peers, err := marshalNoEscape(cg.Peers)
		if err != nil {
			return nil, err
		}
		buf.Write(peers)
		buf.WriteByte('}')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Field is one AS record attribute kept in input encounter order.
type Field struct {
	Key   string
	Value json.RawMessage
}

// ASRecord is a single AS entry. Every input field is retained in encounter
// order; only links is interpreted, everything else (asn, as_info, anything
// future producers add) passes through untouched. A stale grouped_by_country
// from a previous run is discarded on decode and rebuilt from links.
type ASRecord struct {
	Fields []Field
	Links  []Link
	Groups CountryGroups
}

func (r *ASRecord) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return &SchemaError{Reason: "AS record must be a JSON object"}
	}
	r.Fields = r.Fields[:0]
	r.Links = nil
	r.Groups = nil
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key := keyTok.(string)
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		switch key {
		case "links":
			if err := json.Unmarshal(raw, &r.Links); err != nil {
				return &SchemaError{Reason: fmt.Sprintf("links must be an array of link objects: %v", err)}
			}
			r.Fields = append(r.Fields, Field{Key: key, Value: raw})
		case "grouped_by_country":
			// rebuilt from links on every run
		default:
			r.Fields = append(r.Fields, Field{Key: key, Value: raw})
		}
	}
	_, err = dec.Token()
	return err
}

func (r ASRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if f.Key == "links" {
			// the decoded links are authoritative
			links, err := marshalNoEscape(r.Links)
			if err != nil {
				return nil, err
			}
			buf.Write(links)
			continue
		}
		buf.Write(f.Value)
	}
	if len(r.Fields) > 0 {
		buf.WriteByte(',')
	}
	buf.WriteString(`"grouped_by_country":`)
	groups, err := marshalNoEscape(r.Groups)
	if err != nil {
		return nil, err
	}
	buf.Write(groups)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Document is the top-level mapping from ASN to AS record. Iteration and
// serialization preserve the order in which ASNs first appeared in the
// input, keeping output stable across runs.
type Document struct {
	order   []string
	records map[string]*ASRecord
}

func NewDocument() *Document {
	return &Document{records: make(map[string]*ASRecord)}
}

// Add inserts or replaces the record for asn. A replaced ASN keeps its
// original position.
func (d *Document) Add(asn string, rec *ASRecord) {
	if _, ok := d.records[asn]; !ok {
		d.order = append(d.order, asn)
	}
	d.records[asn] = rec
}

func (d *Document) Get(asn string) *ASRecord {
	return d.records[asn]
}

func (d *Document) Len() int {
	return len(d.order)
}

// ASNs returns the AS numbers in input encounter order.
func (d *Document) ASNs() []string {
	return d.order
}

func (d *Document) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return &SchemaError{Reason: "top level must be a JSON object keyed by ASN"}
	}
	d.order = nil
	d.records = make(map[string]*ASRecord)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		asn := keyTok.(string)
		rec := &ASRecord{}
		if err := dec.Decode(rec); err != nil {
			var schemaErr *SchemaError
			if errors.As(err, &schemaErr) {
				return &SchemaError{Reason: fmt.Sprintf("AS %q: %s", asn, schemaErr.Reason)}
			}
			return err
		}
		d.Add(asn, rec)
	}
	_, err = dec.Token()
	return err
}

func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, asn := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(asn)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		rec, err := marshalNoEscape(d.records[asn])
		if err != nil {
			return nil, err
		}
		buf.Write(rec)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape is json.Marshal without HTML escaping, so raw input bytes
// like "&" inside passthrough fields are not rewritten to &.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
