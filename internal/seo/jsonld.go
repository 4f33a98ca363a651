package seo

import (
	"encoding/json"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Person describes the site owner.
func Person(name, jobTitle, url, imageURL, email string, sameAs []string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     name,
	}
	if jobTitle != "" {
		m["jobTitle"] = jobTitle
	}
	if url != "" {
		m["url"] = url
	}
	if imageURL != "" {
		m["image"] = imageURL
	}
	if email != "" {
		m["email"] = "mailto:" + email
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url, inLanguage string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if inLanguage != "" {
		m["inLanguage"] = inLanguage
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// CreativeWork is one portfolio record in an ItemList.
type CreativeWork struct {
	Name        string
	Description string
	URL         string
	Image       string
	Keywords    []string
}

// ItemList lists portfolio records as CreativeWork entries.
func ItemList(name string, works []CreativeWork) map[string]any {
	el := make([]map[string]any, 0, len(works))
	for i, w := range works {
		item := map[string]any{
			"@type": "CreativeWork",
			"name":  w.Name,
		}
		if w.Description != "" {
			item["description"] = w.Description
		}
		if w.URL != "" {
			item["url"] = w.URL
		}
		if w.Image != "" {
			item["image"] = w.Image
		}
		if len(w.Keywords) > 0 {
			item["keywords"] = w.Keywords
		}
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"item":     item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"name":            name,
		"numberOfItems":   len(works),
		"itemListElement": el,
	}
}
