package env

// SiteEnvironment drives SEO metadata and structured-data generation: the
// values end up in page titles, canonical URLs and JSON-LD publisher blocks.
type SiteEnvironment struct {
	Name          string `validate:"required,min=4"`
	URL           string `validate:"required,url"`
	Description   string `validate:"required,min=10"`
	DefaultImage  string `validate:"required"`
	TwitterHandle string `validate:"omitempty,startswith=@"`
}

type SitemapEnvironment struct {
	Schedule string `validate:"required"`
	Dir      string `validate:"required,dirpath"`
}
