package model

import "fmt"

// Coordinate is a point of the provider's forecast grid (nx, ny), not a latitude/longitude pair.
type Coordinate struct {
	X int `json:"nx"`
	Y int `json:"ny"`
}

func NewCoordinate(x, y int) Coordinate {
	return Coordinate{X: x, Y: y}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Place is a fully qualified three level address with its grid coordinate.
type Place struct {
	Province     string     `json:"province"`
	City         string     `json:"city"`
	Neighborhood string     `json:"neighborhood"`
	Coordinate   Coordinate `json:"coordinate"`
}
