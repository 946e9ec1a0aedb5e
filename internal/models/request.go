package models

// ChargeRequest is the checkout payload. It is transient: everything the
// rest of the pipeline needs is copied onto the payment intent's metadata.
type ChargeRequest struct {
	SenderEmail string `json:"senderEmail"`
	FileCount   int    `json:"fileCount"`
	TotalPages  int    `json:"totalPages"`
	// Optional fax-variant fields, passed through as metadata when present.
	FaxNumber  string `json:"faxNumber,omitempty"`
	SenderName string `json:"senderName,omitempty"`
}

type PrecheckRequest struct {
	Files []PrecheckFile `json:"files"`
}

type PrecheckFile struct {
	Name  string `json:"name"`
	Size  int64  `json:"size"`
	Pages int    `json:"pages"`
}
