// Package catalog implements the GRIB2 parameter catalogue: the
// Discipline -> Category -> Parameter hierarchy, built once at process
// startup into dense sorted arrays with binary-search lookup indices.
//
// The catalogue is assembled from the raw WMO Code Table 4.1/4.2 rows in
// data.go, compiled into the array-of-structs shape the four string
// indices need.
package catalog

import (
	"fmt"
	"sync"

	"slices"
)

// Parameter is one leaf of the catalogue: a physical quantity identified by
// the triple (discipline, category, number).
type Parameter struct {
	DisciplineID int
	CategoryID   int
	Number       int
	Name         string
	Unit         string
	Abbreviation string

	// dense 0-based index assigned at build time, ascending
	// (discipline, category, number) order.
	index int
}

// Category groups Parameters under one discipline.
type Category struct {
	ID         int
	Name       string
	Parameters []Parameter

	index int
}

// Discipline is the top level of the catalogue.
type Discipline struct {
	ID         int
	Name       string
	Categories []Category

	index int
}

// Catalog is the compiled, read-only parameter catalogue. The zero value is
// not usable; construct with Build.
type Catalog struct {
	disciplines []Discipline

	// flat, dense parameter list in build order, index == Parameter.index
	params []Parameter

	// four sorted lookup indices, see Build
	byDisciplineName []nameIndexEntry
	byCategoryName   []nameIndexEntry
	byParameterName  []nameIndexEntry
	byAbbreviation   []nameIndexEntry
}

type nameIndexEntry struct {
	key   string
	param int // index into params; for discipline/category indices this
	// instead indexes into disciplines/flattened categories, see lookup
	disciplineIdx int
	categoryIdx   int
}

type rawParameter struct {
	Number       int
	Name         string
	Unit         string
	Abbreviation string
}

type rawCategory struct {
	ID         int
	Name       string
	Parameters []rawParameter
}

type rawDiscipline struct {
	ID         int
	Name       string
	Categories []rawCategory
}

// missingID is appended to every category so that lookups by id
// that fall through to "missing" return a well-formed row.
const missingID = 255

var (
	buildOnce sync.Once
	builtin   *Catalog
)

// Default returns the process-wide catalogue compiled from the built-in
// WMO table rows in data.go. It is built once and is safe for concurrent
// read access from any number of goroutines thereafter.
func Default() *Catalog {
	buildOnce.Do(func() {
		builtin = Build(rawDisciplines)
	})
	return builtin
}

// Build compiles a catalogue from raw discipline rows, applying the skip
// and dedup rules and generating the four binary-search lookup indices.
func Build(raw []rawDiscipline) *Catalog {
	c := &Catalog{}
	seen := make(map[[3]int]bool)

	for _, rd := range raw {
		disc := Discipline{ID: rd.ID, Name: rd.Name, index: len(c.disciplines)}
		for _, rcat := range rd.Categories {
			cat := Category{ID: rcat.ID, Name: rcat.Name, index: len(disc.Categories)}
			for _, rp := range rcat.Parameters {
				if rp.Abbreviation == "" && rp.Number != missingID {
					// rule 1: drop abbreviation-less, non-terminator rows
					continue
				}
				key := [3]int{rd.ID, rcat.ID, rp.Number}
				if seen[key] {
					// rule 2: drop duplicate triples
					continue
				}
				seen[key] = true

				p := Parameter{
					DisciplineID: rd.ID,
					CategoryID:   rcat.ID,
					Number:       rp.Number,
					Name:         rp.Name,
					Unit:         rp.Unit,
					Abbreviation: rp.Abbreviation,
					index:        len(c.params),
				}
				cat.Parameters = append(cat.Parameters, p)
				c.params = append(c.params, p)
			}
			if !hasTerminator(cat.Parameters) {
				p := Parameter{
					DisciplineID: rd.ID, CategoryID: rcat.ID, Number: missingID,
					Name: "Missing", index: len(c.params),
				}
				cat.Parameters = append(cat.Parameters, p)
				c.params = append(c.params, p)
			}
			disc.Categories = append(disc.Categories, cat)
		}
		c.disciplines = append(c.disciplines, disc)
	}

	c.buildIndices()
	return c
}

func hasTerminator(params []Parameter) bool {
	for _, p := range params {
		if p.Number == missingID {
			return true
		}
	}
	return false
}

func (c *Catalog) buildIndices() {
	for di, d := range c.disciplines {
		c.byDisciplineName = append(c.byDisciplineName, nameIndexEntry{key: d.Name, disciplineIdx: di})
		for ci, cat := range d.Categories {
			c.byCategoryName = append(c.byCategoryName, nameIndexEntry{key: cat.Name, disciplineIdx: di, categoryIdx: ci})
			for _, p := range cat.Parameters {
				c.byParameterName = append(c.byParameterName, nameIndexEntry{key: p.Name, param: p.index})
				if p.Abbreviation != "" {
					c.byAbbreviation = append(c.byAbbreviation, nameIndexEntry{key: p.Abbreviation, param: p.index})
				}
			}
		}
	}

	cmp := func(a nameIndexEntry, key string) int {
		if a.key < key {
			return -1
		} else if a.key > key {
			return 1
		}
		return 0
	}
	sortFn := func(a, b nameIndexEntry) int { return cmp(a, b.key) }
	slices.SortFunc(c.byDisciplineName, sortFn)
	slices.SortFunc(c.byCategoryName, sortFn)
	slices.SortFunc(c.byParameterName, sortFn)
	slices.SortFunc(c.byAbbreviation, sortFn)
}

// FindDiscipline returns the Discipline with the given id, or nil.
func (c *Catalog) FindDiscipline(id int) *Discipline {
	for i := range c.disciplines {
		if c.disciplines[i].ID == id {
			return &c.disciplines[i]
		}
	}
	return nil
}

// FindCategory returns the Category with the given id within discipline
// disciplineID, or nil.
func (c *Catalog) FindCategory(disciplineID, categoryID int) *Category {
	d := c.FindDiscipline(disciplineID)
	if d == nil {
		return nil
	}
	for i := range d.Categories {
		if d.Categories[i].ID == categoryID {
			return &d.Categories[i]
		}
	}
	return nil
}

// FindParameter returns the Parameter for the (discipline, category,
// number) triple, or nil if unknown.
func (c *Catalog) FindParameter(disciplineID, categoryID, number int) *Parameter {
	cat := c.FindCategory(disciplineID, categoryID)
	if cat == nil {
		return nil
	}
	for i := range cat.Parameters {
		if cat.Parameters[i].Number == number {
			return &cat.Parameters[i]
		}
	}
	return nil
}

// FindParameterByTriple is a convenience overload taking the combined
// 24-bit packed triple (discipline<<16 | category<<8 | number).
func (c *Catalog) FindParameterByTriple(packed uint32) *Parameter {
	return c.FindParameter(int(packed>>16&0xFF), int(packed>>8&0xFF), int(packed&0xFF))
}

// FindDisciplineByName performs a binary search over the discipline-name
// index using byte-wise comparison.
func (c *Catalog) FindDisciplineByName(name string) *Discipline {
	i, ok := slices.BinarySearchFunc(c.byDisciplineName, name, func(e nameIndexEntry, key string) int {
		return stringCompare(e.key, key)
	})
	if !ok {
		return nil
	}
	return &c.disciplines[c.byDisciplineName[i].disciplineIdx]
}

// FindCategoryByName performs a binary search over the category-name index.
func (c *Catalog) FindCategoryByName(name string) *Category {
	i, ok := slices.BinarySearchFunc(c.byCategoryName, name, func(e nameIndexEntry, key string) int {
		return stringCompare(e.key, key)
	})
	if !ok {
		return nil
	}
	e := c.byCategoryName[i]
	return &c.disciplines[e.disciplineIdx].Categories[e.categoryIdx]
}

// FindParameterByName performs a binary search over the parameter-name
// index.
func (c *Catalog) FindParameterByName(name string) *Parameter {
	return c.findParamIndex(c.byParameterName, name)
}

// FindParameterByAbbreviation performs a binary search over the
// abbreviation index.
func (c *Catalog) FindParameterByAbbreviation(abbr string) *Parameter {
	return c.findParamIndex(c.byAbbreviation, abbr)
}

func (c *Catalog) findParamIndex(idx []nameIndexEntry, key string) *Parameter {
	i, ok := slices.BinarySearchFunc(idx, key, func(e nameIndexEntry, key string) int {
		return stringCompare(e.key, key)
	})
	if !ok {
		return nil
	}
	return &c.params[idx[i].param]
}

func stringCompare(a, b string) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Disciplines returns the catalogue's disciplines in stable
// ascending-id order, for tools that dump the table.
func (c *Catalog) Disciplines() []Discipline { return c.disciplines }

func (p *Parameter) String() string {
	return fmt.Sprintf("%d/%d/%d %s (%s) [%s]", p.DisciplineID, p.CategoryID, p.Number, p.Name, p.Abbreviation, p.Unit)
}
