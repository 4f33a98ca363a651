package content

import (
	"fmt"
	"net/url"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nailaham15/nailah-s-portfolio/internal/gallery"
)

type sectionFile struct {
	Section     string      `yaml:"section"`
	Description string      `yaml:"description"`
	Records     []yamlShape `yaml:"records"`
}

// yamlShape is the union of the three record shapes. Each section file only
// fills the fields its shape uses.
type yamlShape struct {
	Project      `yaml:",inline"`
	VideoProject `yaml:",inline"`
	Product      `yaml:",inline"`

	VisualIdentity visualIdentity `yaml:"visual_identity"`
}

// Project is a UI/UX, graphic or architectural case study.
type Project struct {
	ID            int      `yaml:"id"`
	Title         string   `yaml:"title"`
	Description   string   `yaml:"description"`
	Image         string   `yaml:"image"`
	Tags          []string `yaml:"tags"`
	Tools         []string `yaml:"tools"`
	Overview      string   `yaml:"overview"`
	Role          string   `yaml:"role"`
	Process       []string `yaml:"process"`
	Features      []string `yaml:"features"`
	Contributions []string `yaml:"contributions"`
	Screens       []string `yaml:"screens"`
	Captions      []string `yaml:"captions"`
}

// VideoClip is one entry of a video project's gallery.
type VideoClip struct {
	URL       string `yaml:"url"`
	Thumbnail string `yaml:"thumbnail"`
	Caption   string `yaml:"caption"`
	IsImage   bool   `yaml:"is_image"`
	TikTok    bool   `yaml:"tiktok"`
}

// VideoProject is a video editing or motion graphics record.
type VideoProject struct {
	VideoURL         string      `yaml:"video_url"`
	Thumbnail        string      `yaml:"thumbnail"`
	KeyContributions []string    `yaml:"key_contributions"`
	Videos           []VideoClip `yaml:"videos"`
}

// ProductImage is one item of a product gallery.
type ProductImage struct {
	URL  string `yaml:"url"`
	Type string `yaml:"type"`
}

// Product is a Sunshine Tonic product, event or collaboration.
type Product struct {
	Name                 string         `yaml:"name"`
	Images               []ProductImage `yaml:"images"`
	Materials            []string       `yaml:"materials"`
	CustomizationOptions []string       `yaml:"customization_options"`
	Price                string         `yaml:"price"`
	Events               []string       `yaml:"events"`
	Collaborations       []string       `yaml:"collaborations"`
	ScopeAndRole         []string       `yaml:"scope_and_role"`
	ProjectImpact        []string       `yaml:"project_impact"`
	Results              string         `yaml:"results"`
	ShowInAll            *bool          `yaml:"show_in_all"`
}

// visual_identity is a paragraph for projects and a bullet list for videos.
type visualIdentity struct {
	Text  string
	Items []string
}

func (v *visualIdentity) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&v.Text)
	}
	return node.Decode(&v.Items)
}

func (r *renderer) projectEntry(s Section, p Project, identity visualIdentity) (Entry, error) {
	overview, err := r.Markdown(p.Overview)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{
		Section:     s,
		ID:          p.ID,
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Cover:       p.Image,
		Tags:        p.Tags,
		Tools:       p.Tools,
		Role:        strings.TrimSpace(p.Role),
		Overview:    overview,
		ShowInAll:   true,
	}
	e.Details = appendDetail(e.Details, Detail{Key: "record.process", Items: p.Process})
	e.Details = appendDetail(e.Details, Detail{Key: "record.features", Items: p.Features})
	e.Details = appendDetail(e.Details, Detail{Key: "record.contributions", Items: p.Contributions})
	e.Details = appendDetail(e.Details, Detail{Key: "record.visual_identity", Text: identity.Text, Items: identity.Items})

	screens := p.Screens
	if len(screens) == 0 && p.Image != "" {
		screens = []string{p.Image}
	}
	if len(p.Captions) > len(screens) {
		return Entry{}, fmt.Errorf("%d captions for %d screens", len(p.Captions), len(screens))
	}
	for i, src := range screens {
		caption := fmt.Sprintf("Image %d", i+1)
		if i < len(p.Captions) && strings.TrimSpace(p.Captions[i]) != "" {
			caption = strings.TrimSpace(p.Captions[i])
		}
		e.Media = append(e.Media, gallery.Item{URL: src, Kind: kindFromURL(src), Caption: caption})
	}
	return e, nil
}

func (r *renderer) videoEntry(p Project, v VideoProject, identity visualIdentity) (Entry, error) {
	overview, err := r.Markdown(p.Overview)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{
		Section:     SectionVideo,
		ID:          p.ID,
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Cover:       v.Thumbnail,
		Tags:        p.Tags,
		Tools:       p.Tools,
		Overview:    overview,
		ShowInAll:   true,
	}
	e.Details = appendDetail(e.Details, Detail{Key: "record.visual_identity", Text: identity.Text, Items: identity.Items})
	e.Details = appendDetail(e.Details, Detail{Key: "record.contributions", Items: v.KeyContributions})

	clips := v.Videos
	if len(clips) == 0 && v.VideoURL != "" {
		clips = []VideoClip{{URL: v.VideoURL, Thumbnail: v.Thumbnail, Caption: p.Title}}
	}
	for i, clip := range clips {
		caption := strings.TrimSpace(clip.Caption)
		if caption == "" {
			caption = fmt.Sprintf("Video %d", i+1)
		}
		item := gallery.Item{URL: clip.URL, Kind: gallery.KindVideo, Caption: caption, Poster: clip.Thumbnail}
		switch {
		case clip.TikTok || isTikTok(clip.URL):
			item.External = true
		case clip.IsImage:
			item.Kind = gallery.KindImage
			item.Poster = ""
		}
		e.Media = append(e.Media, item)
	}
	return e, nil
}

func (r *renderer) productEntry(p Project, prod Product) (Entry, error) {
	overview, err := r.Markdown(p.Overview)
	if err != nil {
		return Entry{}, err
	}
	title := strings.TrimSpace(prod.Name)
	if title == "" {
		title = strings.TrimSpace(p.Title)
	}
	e := Entry{
		Section:     SectionSunshine,
		ID:          p.ID,
		Title:       title,
		Description: strings.TrimSpace(p.Description),
		Cover:       p.Image,
		Tags:        p.Tags,
		Price:       strings.TrimSpace(prod.Price),
		Overview:    overview,
		ShowInAll:   prod.ShowInAll == nil || *prod.ShowInAll,
	}
	e.Details = appendDetail(e.Details, Detail{Key: "record.materials", Items: prod.Materials})
	e.Details = appendDetail(e.Details, Detail{Key: "record.customization", Items: prod.CustomizationOptions})
	e.Details = appendDetail(e.Details, Detail{Key: "record.events", Items: prod.Events})
	e.Details = appendDetail(e.Details, Detail{Key: "record.collaborations", Items: prod.Collaborations})
	e.Details = appendDetail(e.Details, Detail{Key: "record.scope", Items: prod.ScopeAndRole})
	e.Details = appendDetail(e.Details, Detail{Key: "record.impact", Items: prod.ProjectImpact})
	e.Details = appendDetail(e.Details, Detail{Key: "record.results", Text: strings.TrimSpace(prod.Results)})

	for i, img := range prod.Images {
		kind, err := gallery.ParseKind(img.Type)
		if err != nil {
			return Entry{}, fmt.Errorf("image %d: %w", i, err)
		}
		e.Media = append(e.Media, gallery.Item{URL: img.URL, Kind: kind, Caption: fmt.Sprintf("%s %d", title, i+1)})
	}
	return e, nil
}

func appendDetail(details []Detail, d Detail) []Detail {
	d.Text = strings.TrimSpace(d.Text)
	items := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		if it = strings.TrimSpace(it); it != "" {
			items = append(items, it)
		}
	}
	d.Items = items
	if d.Text == "" && len(d.Items) == 0 {
		return details
	}
	return append(details, d)
}

func kindFromURL(raw string) gallery.Kind {
	lower := strings.ToLower(raw)
	switch {
	case strings.HasSuffix(lower, ".pdf"):
		return gallery.KindPDF
	case strings.HasSuffix(lower, ".mp4"), strings.HasSuffix(lower, ".webm"), strings.HasSuffix(lower, ".mov"):
		return gallery.KindVideo
	default:
		return gallery.KindImage
	}
}

func isTikTok(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.ToLower(u.Hostname())
	return host == "tiktok.com" || strings.HasSuffix(host, ".tiktok.com")
}
