package usecase

import "github.com/siyam-display/catalog-api/internal/entity"

type ListProductsInput struct {
	Category string `json:"category"`
	Search   string `json:"search"`
}

type ListProductsOutput struct {
	Products []*entity.Part `json:"products"`
	Count    int            `json:"count"`
}

type SearchOutput struct {
	Results []*entity.Part `json:"results"`
	Count   int            `json:"count"`

	// UsedFallback marks that the indexed search errored and the regex
	// path served the results. Operational signal only, not part of the
	// response body.
	UsedFallback bool `json:"-"`
}

type CaptureContactInput struct {
	Name     string `json:"name"`
	Company  string `json:"company"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	SiyamRef string `json:"siyam_ref"`
}

type ProcessedPart struct {
	SiyamRef string `json:"siyam_ref"`
	Action   string `json:"action"` // "created" or "updated"
}

type ImportReport struct {
	Processed []ProcessedPart `json:"processed"`
	Errors    []string        `json:"errors"`
}

type UploadedImage struct {
	FileName string `json:"fileName"`
	ImageURL string `json:"image_url"`
	ImageKey string `json:"image_key"`
}

type FailedUpload struct {
	FileName string `json:"fileName"`
	Error    string `json:"error"`
}

type UploadImagesOutput struct {
	Message    string          `json:"message"`
	Successful []UploadedImage `json:"successful"`
	Failed     []FailedUpload  `json:"failed,omitempty"`
}
