package domain

type TruckLocation struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinates fall within the WGS84 range.
func (l TruckLocation) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}
