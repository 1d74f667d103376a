package services

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"

	"affiliatehub/internal/models"
)

//go:embed content_catalog.yaml
var defaultCatalog []byte

// Raw HTML in intros is escaped; WithUnsafe is not set.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

type catalogFile struct {
	Navigation []models.NavLink         `yaml:"navigation"`
	Sections   []*models.ContentSection `yaml:"sections"`
}

// ContentService serves the static informational pages. The catalog is parsed and
// rendered once at construction.
type ContentService struct {
	navigation []models.NavLink
	order      []string
	sections   map[string]*models.ContentSection
}

func NewContentService() (*ContentService, error) {
	return NewContentServiceFromYAML(defaultCatalog)
}

func NewContentServiceFromYAML(data []byte) (*ContentService, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse content catalog: %w", err)
	}

	s := &ContentService{
		navigation: file.Navigation,
		sections:   make(map[string]*models.ContentSection, len(file.Sections)),
	}
	for _, sec := range file.Sections {
		if sec.Slug == "" {
			return nil, fmt.Errorf("content section %q has no slug", sec.Title)
		}
		if _, dup := s.sections[sec.Slug]; dup {
			return nil, fmt.Errorf("duplicate content section %q", sec.Slug)
		}
		var buf bytes.Buffer
		if err := mdRenderer.Convert([]byte(sec.Intro), &buf); err != nil {
			return nil, fmt.Errorf("render intro of %q: %w", sec.Slug, err)
		}
		sec.IntroHTML = buf.String()
		if sec.Items == nil {
			sec.Items = []models.ContentItem{}
		}
		s.sections[sec.Slug] = sec
		s.order = append(s.order, sec.Slug)
	}
	return s, nil
}

func (s *ContentService) Navigation() []models.NavLink {
	return append([]models.NavLink(nil), s.navigation...)
}

// Sections lists the section slugs in catalog order.
func (s *ContentService) Sections() []string {
	return append([]string(nil), s.order...)
}

// Section returns a copy of the section, or nil for an unknown slug.
func (s *ContentService) Section(slug string) *models.ContentSection {
	sec, ok := s.sections[slug]
	if !ok {
		return nil
	}
	cp := *sec
	cp.Items = append([]models.ContentItem{}, sec.Items...)
	cp.Articles = append([]models.ContentArticle(nil), sec.Articles...)
	return &cp
}
