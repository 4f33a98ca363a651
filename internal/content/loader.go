package content

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nailaham15/nailah-s-portfolio/internal/gallery"
)

//go:embed data
var embedded embed.FS

// DefaultFS returns the content compiled into the binary.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

// Source returns os.DirFS(dir) when dir is set, otherwise DefaultFS.
func Source(dir string) fs.FS {
	if dir = strings.TrimSpace(dir); dir != "" {
		return os.DirFS(dir)
	}
	return DefaultFS()
}

const (
	profileFile = "profile.yaml"
	aboutPage   = "pages/about.md"
)

// ValidationError lists every content problem found while loading.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "content: invalid content: " + strings.Join(e.Problems, "; ")
}

// Load reads and validates every section file, the profile and the about page.
func Load(fsys fs.FS) (*Library, error) {
	r := newRenderer()
	lib := &Library{sections: map[Section]*SectionData{}}
	var problems []string

	for _, s := range Sections {
		data, errs, err := loadSection(r, fsys, s)
		if err != nil {
			return nil, err
		}
		problems = append(problems, errs...)
		lib.sections[s] = data
	}

	profile, err := loadProfile(r, fsys)
	if err != nil {
		return nil, err
	}
	lib.Profile = profile

	raw, err := fs.ReadFile(fsys, aboutPage)
	if err != nil {
		return nil, fmt.Errorf("content: read %s: %w", aboutPage, err)
	}
	if lib.About, err = r.page("about", raw); err != nil {
		return nil, err
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return lib, nil
}

func loadSection(r *renderer, fsys fs.FS, s Section) (*SectionData, []string, error) {
	name := string(s) + ".yaml"
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, nil, fmt.Errorf("content: read %s: %w", name, err)
	}
	var file sectionFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, nil, fmt.Errorf("content: decode %s: %w", name, err)
	}

	var problems []string
	if file.Section != "" && file.Section != string(s) {
		problems = append(problems, fmt.Sprintf("%s: declares section %q", name, file.Section))
	}
	data := &SectionData{Section: s, Description: strings.TrimSpace(file.Description)}
	seen := map[int]bool{}
	for i, rec := range file.Records {
		entry, err := buildEntry(r, s, rec)
		if err != nil {
			problems = append(problems, fmt.Sprintf("%s: record %d: %v", name, rec.ID, err))
			continue
		}
		if entry.ID <= 0 {
			problems = append(problems, fmt.Sprintf("%s: record #%d: missing id", name, i))
		}
		if seen[entry.ID] {
			problems = append(problems, fmt.Sprintf("%s: duplicate id %d", name, entry.ID))
		}
		seen[entry.ID] = true
		if entry.Title == "" {
			problems = append(problems, fmt.Sprintf("%s: record %d: missing title", name, entry.ID))
		}
		problems = append(problems, validateMedia(name, entry)...)
		data.Entries = append(data.Entries, entry)
	}
	return data, problems, nil
}

func buildEntry(r *renderer, s Section, rec yamlShape) (Entry, error) {
	switch s {
	case SectionVideo:
		return r.videoEntry(rec.Project, rec.VideoProject, rec.VisualIdentity)
	case SectionSunshine:
		return r.productEntry(rec.Project, rec.Product)
	default:
		return r.projectEntry(s, rec.Project, rec.VisualIdentity)
	}
}

func validateMedia(file string, e Entry) []string {
	if len(e.Media) == 0 {
		return []string{fmt.Sprintf("%s: record %d: %v", file, e.ID, gallery.ErrEmpty)}
	}
	var problems []string
	for i, item := range e.Media {
		if strings.TrimSpace(item.URL) == "" {
			problems = append(problems, fmt.Sprintf("%s: record %d: media %d has no url", file, e.ID, i))
		}
		if _, err := gallery.ParseKind(string(item.Kind)); err != nil {
			problems = append(problems, fmt.Sprintf("%s: record %d: media %d: %v", file, e.ID, i, err))
		}
	}
	return problems
}

func loadProfile(r *renderer, fsys fs.FS) (Profile, error) {
	raw, err := fs.ReadFile(fsys, profileFile)
	if err != nil {
		return Profile{}, fmt.Errorf("content: read %s: %w", profileFile, err)
	}
	var p Profile
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return Profile{}, fmt.Errorf("content: decode %s: %w", profileFile, err)
	}
	if strings.TrimSpace(p.Name) == "" {
		return Profile{}, errors.New("content: profile name is required")
	}
	for i := range p.FAQs {
		if p.FAQs[i].Answer, err = r.Markdown(p.FAQs[i].Source); err != nil {
			return Profile{}, err
		}
	}
	for _, l := range p.Links {
		if l.Group != LinkProfessional && l.Group != LinkSocial {
			return Profile{}, fmt.Errorf("content: link %q: unknown group %q", l.Label, l.Group)
		}
	}
	return p, nil
}

// Summary reports per-section counts for the CLI.
func (l *Library) Summary() []string {
	out := make([]string, 0, len(Sections))
	for _, s := range Sections {
		out = append(out, fmt.Sprintf("%s=%d", s, l.Count(s)))
	}
	sort.Strings(out)
	return out
}
