package content

import "html/template"

// Profile is the designer's personal information shown outside the portfolio.
type Profile struct {
	Name        string       `yaml:"name"`
	Nickname    string       `yaml:"nickname"`
	Title       string       `yaml:"title"`
	Headline    string       `yaml:"headline"`
	Intro       string       `yaml:"intro"`
	Email       string       `yaml:"email"`
	Location    string       `yaml:"location"`
	Portrait    string       `yaml:"portrait"`
	CV          string       `yaml:"cv"`
	Skills      []Skill      `yaml:"skills"`
	Experiences []Experience `yaml:"experiences"`
	Hobbies     []Hobby      `yaml:"hobbies"`
	Links       []Link       `yaml:"links"`
	FAQs        []FAQ        `yaml:"faqs"`
}

type Skill struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Tools       []string `yaml:"tools"`
	Accent      string   `yaml:"accent"`
	Wide        bool     `yaml:"wide"`
}

type Experience struct {
	Year        string `yaml:"year"`
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Description string `yaml:"description"`
}

type Hobby struct {
	Name    string `yaml:"name"`
	Caption string `yaml:"caption"`
	Image   string `yaml:"image"`
}

// Link groups.
const (
	LinkProfessional = "professional"
	LinkSocial       = "social"
)

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	Group string `yaml:"group"`
}

// FAQ answers are authored in markdown; Answer holds the rendered HTML.
type FAQ struct {
	Question string        `yaml:"question"`
	Source   string        `yaml:"answer"`
	Answer   template.HTML `yaml:"-"`
}

// LinksIn returns the links of one group in authored order.
func (p Profile) LinksIn(group string) []Link {
	var out []Link
	for _, l := range p.Links {
		if l.Group == group {
			out = append(out, l)
		}
	}
	return out
}

// DisplayName is the nickname when set, otherwise the full name.
func (p Profile) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.Name
}
