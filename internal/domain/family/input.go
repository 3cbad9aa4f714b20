package family

import (
	"strings"

	"family-site-go/internal/domain/validation"
	"family-site-go/pkg/optional"
)

type PublishInput struct {
	Title     string
	Summary   string
	Content   string
	MediaType string
	MediaURL  string
}

// UpdateInput carries only the fields an admin supplied. Blank Content or
// MediaURL clears the column.
type UpdateInput struct {
	ID          int64
	Title       optional.Value[string]
	Summary     optional.Value[string]
	Content     optional.Value[string]
	MediaType   optional.Value[string]
	MediaURL    optional.Value[string]
	IsPublished optional.Value[bool]
}

type Patch struct {
	Title       optional.Value[string]
	Summary     optional.Value[string]
	Content     optional.Value[*string]
	MediaType   optional.Value[MediaType]
	MediaURL    optional.Value[*string]
	IsPublished optional.Value[bool]
}

func (p Patch) Empty() bool {
	return !p.Title.IsSet() &&
		!p.Summary.IsSet() &&
		!p.Content.IsSet() &&
		!p.MediaType.IsSet() &&
		!p.MediaURL.IsSet() &&
		!p.IsPublished.IsSet()
}

func (p Patch) ApplyTo(item *Item) {
	if v, ok := p.Title.Get(); ok {
		item.Title = v
	}
	if v, ok := p.Summary.Get(); ok {
		item.Summary = v
	}
	if v, ok := p.Content.Get(); ok {
		item.Content = v
	}
	if v, ok := p.MediaType.Get(); ok {
		item.MediaType = v
	}
	if v, ok := p.MediaURL.Get(); ok {
		item.MediaURL = v
	}
	if v, ok := p.IsPublished.Get(); ok {
		item.IsPublished = v
	}
}

func ParseMediaType(value string) (MediaType, bool) {
	candidate := MediaType(strings.ToLower(strings.TrimSpace(value)))
	for _, mediaType := range MediaTypes {
		if mediaType == candidate {
			return mediaType, true
		}
	}
	return "", false
}

func (in PublishInput) validate() (*Item, error) {
	title := strings.TrimSpace(in.Title)
	summary := strings.TrimSpace(in.Summary)
	if title == "" || summary == "" {
		return nil, validation.New("title", "Title and summary are required")
	}

	mediaType := DefaultMediaType
	if strings.TrimSpace(in.MediaType) != "" {
		parsed, ok := ParseMediaType(in.MediaType)
		if !ok {
			return nil, validation.New("mediaType", "Invalid media type")
		}
		mediaType = parsed
	}

	return &Item{
		Title:       title,
		Summary:     summary,
		Content:     nullableText(in.Content),
		MediaType:   mediaType,
		MediaURL:    nullableText(in.MediaURL),
		IsPublished: true,
	}, nil
}

func (in UpdateInput) validate() (Patch, error) {
	var patch Patch

	if v, ok := in.Title.Get(); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return Patch{}, validation.New("title", "Title is required")
		}
		patch.Title = optional.Of(v)
	}
	if v, ok := in.Summary.Get(); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return Patch{}, validation.New("summary", "Summary is required")
		}
		patch.Summary = optional.Of(v)
	}
	patch.Content = optional.Map(in.Content, nullableText)
	if v, ok := in.MediaType.Get(); ok {
		mediaType, valid := ParseMediaType(v)
		if !valid {
			return Patch{}, validation.New("mediaType", "Invalid media type")
		}
		patch.MediaType = optional.Of(mediaType)
	}
	patch.MediaURL = optional.Map(in.MediaURL, nullableText)
	patch.IsPublished = in.IsPublished

	if patch.Empty() {
		return Patch{}, validation.New("", "No valid fields supplied")
	}
	return patch, nil
}

func nullableText(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
