package markdown

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/carmegar/blogpage/pkg/portal"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// headerImage matches a leading ![alt](url) line that holds the cover image.
var headerImage = regexp.MustCompile(`^!\[(.*?)]\((.*?)\)$`)

var renderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

// Parse splits a markdown document into its front matter, optional cover
// image and body. The front matter must sit between two "---" lines at the
// very top of the document.
func Parse(md string) (*Post, error) {
	lines := strings.Split(strings.ReplaceAll(md, "\r\n", "\n"), "\n")

	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return nil, fmt.Errorf("missing front matter opening delimiter")
	}

	closing := -1
	for index := 1; index < len(lines); index++ {
		if strings.TrimSpace(lines[index]) == delimiter {
			closing = index
			break
		}
	}

	if closing == -1 {
		return nil, fmt.Errorf("missing front matter closing delimiter")
	}

	var matter FrontMatter
	header := strings.Join(lines[1:closing], "\n")

	if err := yaml.Unmarshal([]byte(header), &matter); err != nil {
		return nil, fmt.Errorf("error parsing front matter: %v", err)
	}

	post := Post{FrontMatter: matter}
	body := lines[closing+1:]

	for len(body) > 0 && strings.TrimSpace(body[0]) == "" {
		body = body[1:]
	}

	if len(body) > 0 {
		if match := headerImage.FindStringSubmatch(strings.TrimSpace(body[0])); match != nil {
			post.ImageAlt = match[1]
			post.ImageURL = match[2]
			body = body[1:]
		}
	}

	post.Content = strings.TrimSpace(strings.Join(body, "\n"))

	return &post, nil
}

// ToHTML renders markdown into HTML, with GFM tables and fenced-code
// highlighting enabled.
func ToHTML(source string) (string, error) {
	var buffer bytes.Buffer

	if err := renderer.Convert([]byte(source), &buffer); err != nil {
		return "", fmt.Errorf("error rendering markdown: %v", err)
	}

	return buffer.String(), nil
}

func (p Parser) Fetch() (string, error) {
	response, err := http.Get(p.Url)

	if err != nil {
		return "", fmt.Errorf("error fetching remote markdown: %v", err)
	}

	defer portal.CloseWithLog(response.Body)

	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status fetching markdown: %d", response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)

	if err != nil {
		return "", fmt.Errorf("error reading remote markdown: %v", err)
	}

	return string(body), nil
}
