package dto

import "wisdomhub/internal/domain"

// AuthorResponse is the wire representation of an author.
type AuthorResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Bio        string `json:"bio,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	QuoteCount int    `json:"quoteCount"`
}

// AuthorFromDomain converts a domain author to its wire representation.
func AuthorFromDomain(author *domain.Author) AuthorResponse {
	return AuthorResponse{
		ID:         author.ID,
		Name:       author.Name,
		Bio:        author.Bio,
		ImageURL:   author.ImageURL,
		QuoteCount: author.QuoteCount,
	}
}

// AuthorsFromDomain converts a list of domain authors.
func AuthorsFromDomain(authors []*domain.Author) []AuthorResponse {
	out := make([]AuthorResponse, len(authors))
	for i, author := range authors {
		out[i] = AuthorFromDomain(author)
	}

	return out
}

// CreateAuthorRequest is the admin payload for adding an author.
type CreateAuthorRequest struct {
	Name     string `json:"name" validate:"required,notempty"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl" validate:"omitempty,url"`
}

// ToDomain converts the request to a domain author.
func (r *CreateAuthorRequest) ToDomain() domain.Author {
	return domain.Author{
		Name:     r.Name,
		Bio:      r.Bio,
		ImageURL: r.ImageURL,
	}
}

// UpdateAuthorRequest is the admin payload for patching an author.
type UpdateAuthorRequest struct {
	Name     *string `json:"name" validate:"omitempty,notempty"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"imageUrl" validate:"omitempty,url"`
}

// ToPatch converts the request to a domain patch.
func (r *UpdateAuthorRequest) ToPatch() domain.AuthorPatch {
	return domain.AuthorPatch{
		Name:     r.Name,
		Bio:      r.Bio,
		ImageURL: r.ImageURL,
	}
}

// TagResponse is the wire representation of a tag.
type TagResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	QuoteCount int    `json:"quoteCount"`
}

// TagFromDomain converts a domain tag to its wire representation.
func TagFromDomain(tag *domain.Tag) TagResponse {
	return TagResponse{
		ID:         tag.ID,
		Name:       tag.Name,
		QuoteCount: tag.QuoteCount,
	}
}

// TagsFromDomain converts a list of domain tags.
func TagsFromDomain(tags []*domain.Tag) []TagResponse {
	out := make([]TagResponse, len(tags))
	for i, tag := range tags {
		out[i] = TagFromDomain(tag)
	}

	return out
}

// CreateTagRequest is the admin payload for adding a tag.
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,notempty,max=49"`
}
