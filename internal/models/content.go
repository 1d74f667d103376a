package models

type ContentItem struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Href        string `json:"href" yaml:"href"`
	Group       string `json:"group,omitempty" yaml:"group"`
	Lessons     int    `json:"lessons,omitempty" yaml:"lessons"`
	Duration    string `json:"duration,omitempty" yaml:"duration"`
	ComingSoon  bool   `json:"comingSoon,omitempty" yaml:"comingSoon"`
}

type ContentArticle struct {
	Title string `json:"title" yaml:"title"`
	Href  string `json:"href" yaml:"href"`
}

// ContentSection is one informational page. IntroHTML is rendered from the markdown Intro.
type ContentSection struct {
	Slug      string           `json:"slug" yaml:"slug"`
	Title     string           `json:"title" yaml:"title"`
	Intro     string           `json:"-" yaml:"intro"`
	IntroHTML string           `json:"intro" yaml:"-"`
	Items     []ContentItem    `json:"items" yaml:"items"`
	Articles  []ContentArticle `json:"articles,omitempty" yaml:"articles"`
}

type NavLink struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}
