// Package portfolio assembles a user's published projects into a single
// downloadable PDF document.
package portfolio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"sharecase/internal/models"
	"sharecase/internal/services"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"gorm.io/gorm"
)

var (
	// ErrIdentityNotFound is returned when the requested user does not exist
	ErrIdentityNotFound = errors.New("identity not found")

	// ErrDocumentInit is returned when the document renderer fails before
	// any output is produced. Nothing is written to the caller in this case.
	ErrDocumentInit = errors.New("failed to initialize portfolio document")
)

// Fallback strings for unset project fields
const (
	fallbackName       = "Anonymous"
	fallbackTitle      = "Untitled Project"
	fallbackField      = "Not provided"
	fallbackList       = "None"
	imageFailureNotice = "Image not available or failed to download"
	noProjectsNotice   = "No projects available to showcase yet."
	footerNotice       = "Generated with ShareCase - sharecase.app"
	maxImageWidth      = 120.0
	pageMargin         = 20.0

	// Body text past this Y would collide with the footer rule at -30
	footerGuardY = 260.0
)

// AssetFetcher retrieves remote image bytes. Satisfied by assets.Fetcher.
type AssetFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Assembler builds portfolio documents from a user's published work
type Assembler struct {
	db       *gorm.DB
	fetcher  AssetFetcher
	projects *services.ProjectService
}

// NewAssembler creates a new Assembler
func NewAssembler(db *gorm.DB, fetcher AssetFetcher) *Assembler {
	return &Assembler{
		db:       db,
		fetcher:  fetcher,
		projects: services.NewProjectService(db, nil),
	}
}

// projectSection is one project's fully resolved content, ready to render.
// Image holds raw bytes when the fetch succeeded; ImageNotice carries the
// inline failure text when it did not. Both empty means the project simply
// has no image.
type projectSection struct {
	Title         string
	Problem       string
	Description   string
	Tags          string
	Collaborators string
	Image         []byte
	ImageType     string
	ImageNotice   string
}

// Generate renders the portfolio of userID into w using the named style.
// The whole document is composed before the first byte is written, so a
// failure here never leaves the caller with a partial stream. Per-image
// fetch failures are absorbed into inline notices and never fail the call.
func (a *Assembler) Generate(ctx context.Context, userID uuid.UUID, styleName string, w io.Writer) error {
	var user models.User
	if err := a.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrIdentityNotFound
		}
		return fmt.Errorf("failed to resolve identity: %w", err)
	}

	projects, err := a.projects.PublishedProjects(userID)
	if err != nil {
		return err
	}

	sections, err := a.buildSections(ctx, projects)
	if err != nil {
		return err
	}

	return a.render(&user, StyleFor(styleName), sections, w)
}

// buildSections resolves projects into renderable sections, strictly in
// order. Each image fetch is awaited before the next project is touched so
// that sections come out in the same order the projects were resolved.
func (a *Assembler) buildSections(ctx context.Context, projects []models.Project) ([]projectSection, error) {
	sections := make([]projectSection, 0, len(projects))

	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			// Caller went away; abandon remaining work
			return nil, err
		}

		section := projectSection{
			Title:         textOr(project.Title, fallbackTitle),
			Problem:       textOr(plainText(project.Problem), fallbackField),
			Description:   textOr(plainText(project.Description), fallbackField),
			Tags:          joinOr(project.Tags, fallbackList),
			Collaborators: joinOr(collaboratorNames(&project), fallbackList),
		}

		if url := project.PrimaryImage(); url != "" {
			data, err := a.fetcher.Fetch(ctx, url)
			if err != nil {
				log.Printf("⚠️  Image fetch failed for %q: %v", section.Title, err)
				section.ImageNotice = imageFailureNotice
			} else if format := imageFormat(data); format == "" {
				log.Printf("⚠️  Unsupported image format for %q (%s)", section.Title, url)
				section.ImageNotice = imageFailureNotice
			} else {
				section.Image = data
				section.ImageType = format
			}
		}

		sections = append(sections, section)
	}

	return sections, nil
}

// render composes the final document and streams it to w
func (a *Assembler) render(user *models.User, style Style, sections []projectSection, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("%s - ShareCase Portfolio", textOr(user.Name, fallbackName)), true)
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AddPage()

	// Core fonts are cp1252; translate user-authored text up front
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	a.renderHeader(pdf, tr, style, user)

	if len(sections) == 0 {
		pdf.Ln(10)
		pdf.SetFont(style.Font, "I", 12)
		pdf.SetTextColor(style.Primary.R, style.Primary.G, style.Primary.B)
		pdf.MultiCell(0, 7, tr(noProjectsNotice), "", "C", false)
	} else {
		for i := range sections {
			if i > 0 {
				pdf.AddPage()
			}
			a.renderSection(pdf, tr, style, &sections[i])
		}
	}

	a.renderFooter(pdf, style)

	if pdf.Err() {
		return fmt.Errorf("%w: %v", ErrDocumentInit, pdf.Error())
	}
	return pdf.Output(w)
}

func (a *Assembler) renderHeader(pdf *gofpdf.Fpdf, tr func(string) string, style Style, user *models.User) {
	pdf.SetFont(style.Font, "B", 24)
	pdf.SetTextColor(style.Primary.R, style.Primary.G, style.Primary.B)
	pdf.CellFormat(0, 12, tr(textOr(user.Name, fallbackName)), "", 1, "C", false, 0, "")

	if user.Email != "" {
		pdf.SetFont(style.Font, "", 11)
		pdf.SetTextColor(style.Accent.R, style.Accent.G, style.Accent.B)
		pdf.CellFormat(0, 6, tr(user.Email), "", 1, "C", false, 0, "")
	}

	if user.LinkedInURL != "" {
		link := normalizeLink(user.LinkedInURL)
		pdf.SetFont(style.Font, "U", 10)
		pdf.SetTextColor(style.Accent.R, style.Accent.G, style.Accent.B)
		pdf.CellFormat(0, 6, tr(link), "", 1, "C", false, 0, link)
	}

	pdf.Ln(2)
	pdf.SetDrawColor(style.Accent.R, style.Accent.G, style.Accent.B)
	pdf.SetLineWidth(0.5)
	pdf.Line(pageMargin, pdf.GetY(), 210-pageMargin, pdf.GetY())
	pdf.Ln(6)
}

func (a *Assembler) renderSection(pdf *gofpdf.Fpdf, tr func(string) string, style Style, section *projectSection) {
	pdf.SetFont(style.Font, "B", 16)
	pdf.SetTextColor(style.Primary.R, style.Primary.G, style.Primary.B)
	pdf.MultiCell(0, 9, tr(section.Title), "", "L", false)
	pdf.Ln(2)

	switch {
	case section.Image != nil:
		// One image per page, so the page number is a unique registry key
		name := fmt.Sprintf("project-image-%d", pdf.PageNo())
		opts := gofpdf.ImageOptions{ImageType: section.ImageType, ReadDpi: true}
		pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(section.Image))
		x := (210 - maxImageWidth) / 2
		pdf.ImageOptions(name, x, 0, maxImageWidth, 0, true, opts, 0, "")
		pdf.Ln(4)
		// The renderer parsed its own copy at registration; release ours
		// so at most one image is held during the render loop
		section.Image = nil
	case section.ImageNotice != "":
		pdf.SetFont(style.Font, "I", 10)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 6, tr(section.ImageNotice), "", 1, "L", false, 0, "")
		pdf.Ln(2)
	}

	a.renderField(pdf, tr, style, "Problem", section.Problem)
	a.renderField(pdf, tr, style, "Description", section.Description)
	a.renderField(pdf, tr, style, "Tags", section.Tags)
	a.renderField(pdf, tr, style, "Collaborators", section.Collaborators)
}

func (a *Assembler) renderField(pdf *gofpdf.Fpdf, tr func(string) string, style Style, label, value string) {
	pdf.SetFont(style.Font, "B", 11)
	pdf.SetTextColor(style.Accent.R, style.Accent.G, style.Accent.B)
	pdf.CellFormat(0, 6, label, "", 1, "L", false, 0, "")

	pdf.SetFont(style.Font, "", 11)
	pdf.SetTextColor(style.Primary.R, style.Primary.G, style.Primary.B)
	pdf.MultiCell(0, 5.5, tr(value), "", "L", false)
	pdf.Ln(3)
}

func (a *Assembler) renderFooter(pdf *gofpdf.Fpdf, style Style) {
	if pdf.GetY() > footerGuardY {
		pdf.AddPage()
	}
	pdf.SetY(-30)
	pdf.SetDrawColor(style.Accent.R, style.Accent.G, style.Accent.B)
	pdf.SetLineWidth(0.3)
	pdf.Line(pageMargin, pdf.GetY(), 210-pageMargin, pdf.GetY())
	pdf.Ln(3)
	pdf.SetFont(style.Font, "I", 9)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 5, footerNotice, "", 1, "C", false, 0, "")
}

// collaboratorNames returns the display names of a project's collaborators,
// dropping any whose profile did not resolve to a name
func collaboratorNames(project *models.Project) []string {
	names := make([]string, 0, len(project.Collaborators))
	for _, user := range project.Collaborators {
		if user.Name != "" {
			names = append(names, user.Name)
		}
	}
	return names
}

// imageFormat sniffs the renderer image type from raw bytes. Returns ""
// for formats the renderer cannot embed.
func imageFormat(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return "PNG"
	case "image/jpeg":
		return "JPG"
	case "image/gif":
		return "GIF"
	default:
		return ""
	}
}

// normalizeLink ensures an explicit scheme so the rendered link is clickable
func normalizeLink(url string) string {
	lower := strings.ToLower(url)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return url
	}
	return "https://" + url
}

func textOr(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}
