package request_models

// TripRequest carries everything the planner needs for one trip. DestLat and
// DestLon are optional, the frontend only sends them when the map widget has
// resolved the destination.
type TripRequest struct {
	Origin      string   `json:"origin"`
	Destination string   `json:"destination"`
	Date        string   `json:"date"`
	Travelers   int      `json:"travelers"`
	Budget      float64  `json:"budget"`
	Days        int      `json:"days"`
	DestLat     *float64 `json:"destLat,omitempty"`
	DestLon     *float64 `json:"destLon,omitempty"`
}
