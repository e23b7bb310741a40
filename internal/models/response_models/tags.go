package response_models

type TagResponse struct {
	ID       string `json:"id"`
	En       string `json:"en"`
	Vi       string `json:"vi"`
	Icon     string `json:"icon"`
	POICount int64  `json:"poi_count"`
}
