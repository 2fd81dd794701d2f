package output

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"audit-report/internal/classify"
)

// imagePolicy admits an image container only when its src is a base64
// data URI of an image type. Resolvers may be handed arbitrary strings.
var imagePolicy = func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.RequireParseableURLs(true)
	p.AllowDataURIImages()
	p.AllowAttrs("class").Matching(regexp.MustCompile(`^image-container$`)).OnElements("div")
	p.AllowAttrs("src", "alt").OnElements("img")
	return p
}()

// plain renders untrusted text for element content. Cells are plain text,
// so markup-like input is shown as typed.
func plain(s string) string { return html.EscapeString(s) }

// imageTag renders one image container, or "" when uri is not an inline
// image.
func imageTag(uri, id string) string {
	tag := imagePolicy.Sanitize(fmt.Sprintf(`<div class="image-container"><img src="%s" alt="Image %s"></div>`, attr(uri), attr(id)))
	if !strings.Contains(tag, "src=") {
		return ""
	}
	return tag
}

// attr renders untrusted text for a quoted attribute value.
func attr(s string) string { return html.EscapeString(s) }

// highlighted renders text with CJK runs wrapped in an emphasis span.
func highlighted(s string) string {
	var b strings.Builder
	for _, r := range classify.HighlightRuns(s) {
		if r.Emphasis {
			b.WriteString(`<span class="cjk">`)
			b.WriteString(plain(r.Text))
			b.WriteString(`</span>`)
			continue
		}
		b.WriteString(plain(r.Text))
	}
	return b.String()
}

// writeFileAtomic writes data next to path and renames it into place, so an
// interrupted run never leaves a partial file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
