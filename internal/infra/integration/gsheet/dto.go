package gsheet

// The Apps Script endpoint multiplexes on an "action" field; every call is a
// POST (or GET with an action query param) against the single deployment URL.

type saveBookingRequest struct {
	Action    string `json:"action"`
	ID        string `json:"id"`
	PackageID string `json:"package_id"`
	Email     string `json:"email"`
	StartDate string `json:"start_date"`
}

type filterByTagsRequest struct {
	Action string   `json:"action"`
	Tags   []string `json:"tags"`
}

type ackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PackageRow is a raw sheet row before transformation. The sheet returns
// loosely-typed cells, so everything lands as json.RawMessage-friendly
// primitives and is coerced by the caller.
type PackageRow struct {
	ID          interface{} `json:"id"`
	Name        string      `json:"name"`
	Days        interface{} `json:"days"`
	Price       interface{} `json:"price"`
	Location    string      `json:"location"`
	Itinerary   string      `json:"itinerary"`
	Featured    interface{} `json:"featured"`
	ImageURL    string      `json:"image_url"`
	Description string      `json:"description"`
	Tags        string      `json:"tags"`
}

type packagesResponse struct {
	Packages []PackageRow `json:"packages"`
}
