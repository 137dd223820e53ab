package model

import (
	"bytes"
	"encoding/json"
)

// Backup is the import/export document holding all three collections.
// Missing fields import as empty collections, replacing (not merging) the
// current contents.
type Backup struct {
	Customers []Customer `json:"customers"`
	Products  []Product  `json:"products"`
	Orders    []Order    `json:"orders"`
}

// ParseBackup decodes an exported document. Missing arrays default to
// empty; a parse failure yields ErrMalformedBackup.
func ParseBackup(data []byte) (*Backup, error) {
	var b Backup
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&b); err != nil {
		return nil, ErrMalformedBackup
	}
	if b.Customers == nil {
		b.Customers = []Customer{}
	}
	if b.Products == nil {
		b.Products = []Product{}
	}
	if b.Orders == nil {
		b.Orders = []Order{}
	}
	return &b, nil
}

// Marshal renders the pretty-printed export document
func (b *Backup) Marshal() ([]byte, error) {
	return json.MarshalIndent(b, "", "  ")
}
