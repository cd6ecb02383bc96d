package env

// StorageEnvironment configures the S3-compatible bucket that receives
// uploaded images. Endpoint is left empty for plain AWS S3 and set for
// R2/minio style providers.
type StorageEnvironment struct {
	Bucket    string `validate:"required"`
	Region    string `validate:"required"`
	Endpoint  string `validate:"omitempty,url"`
	AccessKey string `validate:"required"`
	SecretKey string `validate:"required"`
	PublicURL string `validate:"required,url"`
}
