package payload

import (
	"github.com/carmegar/blogpage/pkg/seo"
)

type MetaResponse struct {
	Meta   seo.Meta `json:"meta"`
	JsonLD string   `json:"json_ld"`
}
