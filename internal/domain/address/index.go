package address

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"kma-forecast/internal/domain/model"
	"kma-forecast/pkg/log"
	"kma-forecast/pkg/msg"
	"kma-forecast/pkg/util/numberutils"
)

// Source table columns (0-indexed). Other columns are ignored.
const (
	columnProvince     = 2
	columnCity         = 3
	columnNeighborhood = 4
	columnGridX        = 5
	columnGridY        = 6
)

// Index is the province → city → neighborhood → coordinate tree.
// Every level keeps source-row order. An Index is never modified after Build,
// so it is safe for concurrent use.
type Index struct {
	provinces []*provinceNode
	byName    map[string]*provinceNode
	places    int
}

type provinceNode struct {
	name   string
	cities []*cityNode
	byName map[string]*cityNode
}

type cityNode struct {
	name          string
	neighborhoods []string
	coordinates   map[string]model.Coordinate
}

// Build turns table rows into an Index. The first row is a header and is skipped.
// Empty city or neighborhood cells become the "" key at their level.
// Coordinate cells that are missing or not numeric resolve to 0.
func Build(rows [][]string) *Index {
	idx := &Index{byName: make(map[string]*provinceNode)}

	for i, row := range rows {
		if i == 0 {
			continue
		}
		rowNumber := i + 1

		province := cell(row, columnProvince)
		if province == "" {
			log.Debug("Skipping address row without province", zap.Int("row", rowNumber))
			continue
		}

		coordinate := model.NewCoordinate(
			coordinateCell(row, columnGridX, rowNumber),
			coordinateCell(row, columnGridY, rowNumber),
		)
		idx.insert(province, cell(row, columnCity), cell(row, columnNeighborhood), coordinate)
	}

	return idx
}

func (idx *Index) insert(province, city, neighborhood string, coordinate model.Coordinate) {
	p, ok := idx.byName[province]
	if !ok {
		p = &provinceNode{name: province, byName: make(map[string]*cityNode)}
		idx.byName[province] = p
		idx.provinces = append(idx.provinces, p)
	}

	c, ok := p.byName[city]
	if !ok {
		c = &cityNode{name: city, coordinates: make(map[string]model.Coordinate)}
		p.byName[city] = c
		p.cities = append(p.cities, c)
	}

	if _, exists := c.coordinates[neighborhood]; !exists {
		c.neighborhoods = append(c.neighborhoods, neighborhood)
		idx.places++
	}
	c.coordinates[neighborhood] = coordinate
}

func cell(row []string, column int) string {
	if column >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[column])
}

func coordinateCell(row []string, column int, rowNumber int) int {
	raw := cell(row, column)
	value, ok := numberutils.ToLenientInt(raw)
	if !ok {
		log.Warn(msg.GetMessage("address.bad-coordinate", raw, rowNumber),
			zap.Int("row", rowNumber), zap.Int("column", column))
		return 0
	}
	return value
}

// Provinces returns the province names in source order.
func (idx *Index) Provinces() []string {
	names := make([]string, 0, len(idx.provinces))
	for _, p := range idx.provinces {
		names = append(names, p.name)
	}
	return names
}

// Cities returns the city names of a province in source order.
func (idx *Index) Cities(province string) ([]string, error) {
	p, err := idx.province(province)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(p.cities))
	for _, c := range p.cities {
		names = append(names, c.name)
	}
	return names, nil
}

// Neighborhoods returns the neighborhood names of a city in source order.
func (idx *Index) Neighborhoods(province, city string) ([]string, error) {
	c, err := idx.city(province, city)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(c.neighborhoods))
	copy(names, c.neighborhoods)
	return names, nil
}

// Resolve returns the grid coordinate of a place. It fails with model.ErrPlaceNotFound
// when any of the three keys is absent at its level.
func (idx *Index) Resolve(province, city, neighborhood string) (model.Coordinate, error) {
	c, err := idx.city(province, city)
	if err != nil {
		return model.Coordinate{}, err
	}

	coordinate, ok := c.coordinates[neighborhood]
	if !ok {
		return model.Coordinate{}, fmt.Errorf("%w: neighborhood %q in %s %s", model.ErrPlaceNotFound, neighborhood, province, city)
	}
	return coordinate, nil
}

// Len returns the number of resolvable places.
func (idx *Index) Len() int {
	return idx.places
}

func (idx *Index) province(name string) (*provinceNode, error) {
	p, ok := idx.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: province %q", model.ErrPlaceNotFound, name)
	}
	return p, nil
}

func (idx *Index) city(province, name string) (*cityNode, error) {
	p, err := idx.province(province)
	if err != nil {
		return nil, err
	}

	c, ok := p.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: city %q in %s", model.ErrPlaceNotFound, name, province)
	}
	return c, nil
}
