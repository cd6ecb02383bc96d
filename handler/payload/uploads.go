package payload

type UploadResponse struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	MimeType string `json:"mimetype"`
	Size     int64  `json:"size"`
}
