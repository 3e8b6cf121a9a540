package request

// SearchRoutesRequest carries the search query. From and To accept a
// station code or a fragment of the station name.
type SearchRoutesRequest struct {
	From string `json:"from" validate:"required,min=2,max=100"`
	To   string `json:"to" validate:"required,min=2,max=100"`
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}
