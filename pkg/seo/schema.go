package seo

// Meta is the head metadata contract rendered by the web client. The API
// ships it ready to print so the client holds no SEO rules of its own.
type Meta struct {
	Title       string    `json:"title" validate:"required,min=3"`
	Description string    `json:"description" validate:"required,min=10"`
	Keywords    []string  `json:"keywords" validate:"required"`
	Canonical   string    `json:"canonical" validate:"required,url"`
	Robots      string    `json:"robots" validate:"required"`
	OpenGraph   OpenGraph `json:"openGraph" validate:"required"`
	Twitter     Twitter   `json:"twitter" validate:"required"`
}

type OpenGraph struct {
	Type          string   `json:"type" validate:"required,oneof=website article"`
	Locale        string   `json:"locale" validate:"required,min=5"`
	URL           string   `json:"url" validate:"required,url"`
	SiteName      string   `json:"siteName" validate:"required,min=5"`
	Title         string   `json:"title" validate:"required,min=3"`
	Description   string   `json:"description" validate:"required,min=10"`
	Image         string   `json:"image" validate:"required,url"`
	ImageWidth    string   `json:"imageWidth" validate:"required"`
	ImageHeight   string   `json:"imageHeight" validate:"required"`
	ImageAlt      string   `json:"imageAlt" validate:"required,min=3"`
	PublishedTime string   `json:"publishedTime,omitempty"`
	ModifiedTime  string   `json:"modifiedTime,omitempty"`
	Authors       []string `json:"authors,omitempty"`
}

type Twitter struct {
	Card        string `json:"card" validate:"required,oneof=summary_large_image"`
	Site        string `json:"site"`
	Creator     string `json:"creator"`
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description" validate:"required,min=10"`
	Image       string `json:"image" validate:"required,url"`
}

// PageInput is what a route knows about itself before the defaults are
// folded in.
type PageInput struct {
	Title         string
	Description   string
	Keywords      []string
	Image         string
	Path          string
	Type          string
	PublishedTime string
	ModifiedTime  string
	Author        string
}
