package datastores

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type seedDocument struct {
	Contacts []seedContact `yaml:"contacts"`
}

type seedContact struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones"`
	Birthday string   `yaml:"birthday"`
}

// DecodeSeed reads a YAML seed document and validates every contact.
// Contacts sharing a name are merged, like repeated add commands.
func DecodeSeed(r io.Reader) ([]*Record, error) {
	var doc seedDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&doc)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	d := NewDirectory()
	for i, c := range doc.Contacts {
		record, ok := d.Find(c.Name)
		if !ok {
			record, err = NewRecord(c.Name)
			if err != nil {
				return nil, fmt.Errorf("seed contact #%d: %w", i+1, err)
			}
			d.AddRecord(record)
		}
		for _, phone := range c.Phones {
			err = record.AddPhone(phone)
			if err != nil {
				return nil, fmt.Errorf("seed contact %q: %w", c.Name, err)
			}
		}
		if c.Birthday != "" {
			err = record.AddBirthday(c.Birthday)
			if err != nil {
				return nil, fmt.Errorf("seed contact %q: %w", c.Name, err)
			}
		}
	}
	return d.Records(), nil
}

// LoadSeed adds the contacts of a YAML seed document to d.
// Nothing is added when the document is invalid.
func (d *Directory) LoadSeed(r io.Reader) error {
	records, err := DecodeSeed(r)
	if err != nil {
		return err
	}
	for _, record := range records {
		d.AddRecord(record)
	}
	return nil
}
