package output

import (
	"bytes"
	"fmt"
	"time"

	"audit-report/internal/analyze"
	"audit-report/internal/classify"
	"audit-report/internal/media"
	"audit-report/internal/model"
)

// Label lengths in the navigation panel.
const (
	navSectionWidth = 50
	navItemWidth    = 60
)

// Options control how a report is rendered.
type Options struct {
	// Location is used for epoch timestamps; nil means time.Local.
	Location *time.Location

	// ShowLocations renders location items, coordinates stripped, instead of
	// suppressing them.
	ShowLocations bool
}

// WriteReport renders the report and writes it to path. The file is
// replaced atomically; on error nothing is written.
func WriteReport(path string, rep *model.Report, imgs media.Resolver, opts Options) error {
	var buf bytes.Buffer
	BuildReport(&buf, rep, imgs, opts)
	return writeFileAtomic(path, buf.Bytes())
}

// Render returns the report document as a string.
func Render(rep *model.Report, imgs media.Resolver, opts Options) string {
	var buf bytes.Buffer
	BuildReport(&buf, rep, imgs, opts)
	return buf.String()
}

// BuildReport writes the self-contained HTML document for rep into buf.
// Output depends only on its arguments.
func BuildReport(buf *bytes.Buffer, rep *model.Report, imgs media.Resolver, opts Options) {
	w := func(s string) { buf.WriteString(s) }
	wf := func(f string, a ...any) { buf.WriteString(fmt.Sprintf(f, a...)) }

	if imgs == nil {
		imgs = media.MapResolver(nil)
	}
	title := rep.Metadata.Title()
	counts, _ := analyze.Tally(rep.Sections, opts.ShowLocations)

	wf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>%s</style>
</head>
<body>
`, plain(title), stylesheet)

	// Navigation
	w(`<button class="toc-toggle" type="button" onclick="toggleTOC()">Contents</button>
<nav class="toc-sidebar" id="toc-sidebar">
<div class="toc-header">Table of Contents</div>
`)
	for _, s := range rep.Sections {
		if !classify.SectionEmitted(s) {
			continue
		}
		wf(`<div class="toc-section">
<a class="toc-section-title" href="#%s" data-scroll="section">%s</a>
<div class="toc-items">
`, attr(s.Anchor()), plain(classify.Truncate(s.Label, navSectionWidth)))
		for _, it := range classify.DisplayOrder(s) {
			if !classify.Visible(it, opts.ShowLocations) {
				continue
			}
			status := classify.ItemStatus(it)
			wf(`<a class="toc-item" href="#%s" data-scroll="item"><span class="toc-item-status %s">%s</span><span class="toc-item-label" title="%s">%s</span></a>
`, attr(it.Anchor()), status, plain(status.Badge()), attr(it.Label), plain(classify.Truncate(it.Label, navItemWidth)))
		}
		w("</div>\n</div>\n")
	}
	w("</nav>\n")

	// Header
	w(`<div class="container">
<div class="header">
`)
	wf("<h1>%s</h1>\n", plain(title))
	if rep.Logo != "" {
		wf(`<img src="%s" alt="Logo" class="header-logo">`+"\n", attr(rep.Logo))
	}
	w("</div>\n")

	if pairs := rep.Metadata.Pairs(); len(pairs) > 0 {
		w(`<div class="metadata">` + "\n")
		for _, p := range pairs {
			if p.Key == "" || p.Key == "audit_title" {
				continue
			}
			wf(`<div class="metadata-item"><div class="metadata-label">%s</div><div class="metadata-value">%s</div></div>`+"\n",
				plain(p.Key), plain(p.Value))
		}
		w("</div>\n")
	}

	// Status filter
	w(`<div class="filter-container">
<div class="filter-title">Status Filter</div>
<div class="filter-options">
`)
	for _, f := range []struct {
		status model.Status
		label  string
		n      int
	}{
		{model.StatusOK, "✓ OK", counts.OK},
		{model.StatusNonCompliant, "✗ Non-compliant", counts.NonCompliant},
		{model.StatusInfo, "ⓘ Info", counts.Info},
		{model.StatusNA, "— n.a.", counts.NA},
	} {
		wf(`<label class="filter-option filter-%s active"><input type="checkbox" data-filter="%s" checked> %s <span class="filter-count">%d</span></label>`+"\n",
			f.status, f.status, f.label, f.n)
	}
	wf(`</div>
<div class="filter-stats" id="filter-stats">Showing all %d items</div>
</div>
`, counts.Total)

	// Body
	for _, s := range rep.Sections {
		if !classify.SectionEmitted(s) {
			continue
		}
		cls := "section"
		if classify.IsTitlePage(s.Label) {
			cls += " title-page"
		}
		wf(`<div class="%s" id="%s">
<div class="section-header">%s</div>
<div class="section-content">
`, cls, attr(s.Anchor()), plain(s.Label))

		small := 0
		for _, it := range classify.DisplayOrder(s) {
			if !classify.Visible(it, opts.ShowLocations) {
				continue
			}
			var brk classify.Break
			brk, small = classify.NextBreak(small, len(it.MediaIDs()))
			writeItem(buf, it, brk, imgs, opts)
		}
		w("</div>\n</div>\n")
	}
	w("</div>\n")

	w(`<div class="lightbox" id="lightbox">
<span class="lightbox-close">&times;</span>
<img id="lightbox-img" src="" alt="Enlarged image">
</div>
<script>` + script + `</script>
</body>
</html>
`)
}

func writeItem(buf *bytes.Buffer, it model.Item, brk classify.Break, imgs media.Resolver, opts Options) {
	w := func(s string) { buf.WriteString(s) }
	wf := func(f string, a ...any) { buf.WriteString(fmt.Sprintf(f, a...)) }

	cls := "item"
	if brk != classify.BreakNone {
		cls += " " + string(brk)
	}
	wf(`<div class="%s" data-status="%s" id="%s">
<div class="item-label">%s</div>
`, cls, classify.ItemStatus(it), attr(it.Anchor()), plain(it.Label))

	if it.Primary != "" {
		_, display := classify.SplitPrimary(it.Primary)
		value := classify.FormatValue(display, it.Label, opts.Location)
		cls := "item-value"
		if c := classify.ColorClass(classify.Classify(value)); c != "" {
			cls += " " + c
		}
		wf(`<div class="%s">%s</div>`+"\n", cls, plain(value))
	}

	if notes, ok := Notes(it); ok {
		if classify.IsLocation(it.Label) {
			notes = plain(classify.StripCoordinates(notes))
		} else {
			notes = highlighted(notes)
		}
		wf(`<div class="item-notes">%s</div>`+"\n", notes)
	}

	var grid bytes.Buffer
	for _, id := range it.MediaIDs() {
		uri, ok := imgs.Resolve(id)
		if !ok {
			continue
		}
		if tag := imageTag(uri, id); tag != "" {
			grid.WriteString(tag + "\n")
		}
	}
	if grid.Len() > 0 {
		w(`<div class="images-grid">` + "\n")
		buf.Write(grid.Bytes())
		w("</div>\n")
	}
	w("</div>\n")
}

// Notes picks the annotation shown under an item: Note when present,
// otherwise Secondary when it differs from Primary.
func Notes(it model.Item) (string, bool) {
	if it.Note != "" {
		return it.Note, true
	}
	if it.Secondary != "" && it.Secondary != it.Primary {
		return it.Secondary, true
	}
	return "", false
}
