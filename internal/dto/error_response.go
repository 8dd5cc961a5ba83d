package dto

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Error            string            `json:"error"`
	Code             int               `json:"code"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

// CountResponse wraps a single count.
type CountResponse struct {
	Count int64 `json:"count"`
}

// UsedColorsResponse lists colour tags already taken by the user.
type UsedColorsResponse struct {
	Colors []string `json:"colors"`
}
