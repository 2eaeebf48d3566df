package response

// TourismInfo is the static destination summary served at /api/tourism/info.
type TourismInfo struct {
	State               string   `json:"state"`
	Capital             string   `json:"capital"`
	PopularDestinations []string `json:"popularDestinations"`
	BestTime            string   `json:"bestTime"`
	Languages           []string `json:"languages"`
}
