package models

// Coordinate is a geographic point expressed as longitude and latitude in degrees.
type Coordinate struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// List returns the coordinate as [lon, lat], the order GeoJSON and map libraries expect.
func (c Coordinate) List() []float64 { return []float64{c.Lon, c.Lat} }
