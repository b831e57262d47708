package datastores

import (
	"slices"
)

// Directory holds records keyed by name and iterates them in insertion order.
// It is not safe for concurrent use.
type Directory struct {
	index   map[string]int
	records []*Record
}

func NewDirectory(rs ...*Record) *Directory {
	d := &Directory{index: make(map[string]int, len(rs))}
	for _, r := range rs {
		d.AddRecord(r)
	}
	return d
}

// AddRecord stores r under its name. A record already stored under
// that name is replaced in place.
func (d *Directory) AddRecord(r *Record) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if i, ok := d.index[r.name]; ok {
		d.records[i] = r
		return
	}
	d.index[r.name] = len(d.records)
	d.records = append(d.records, r)
}

// Find returns the stored record itself; changes made to it are kept.
func (d *Directory) Find(name string) (*Record, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.records[i], true
}

func (d *Directory) Delete(name string) {
	i, ok := d.index[name]
	if !ok {
		return
	}
	delete(d.index, name)
	d.records = slices.Delete(d.records, i, i+1)
	for j := i; j < len(d.records); j++ {
		d.index[d.records[j].name] = j
	}
}

func (d *Directory) Len() int { return len(d.records) }

// Records returns the stored records in insertion order.
func (d *Directory) Records() []*Record { return slices.Clone(d.records) }
