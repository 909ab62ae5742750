// Package queries is the catalog of GraphQL documents sent to the Hashnode
// API. Every function is pure: it returns a document string and performs no
// I/O or validation.
package queries

import "fmt"

// FieldSet selects which subset of post fields a document requests.
type FieldSet int

const (
	// FieldSetBasic requests the core post projection: identity, title,
	// excerpt, slug, cover image, publication timestamp, read time, and
	// author.
	FieldSetBasic FieldSet = iota
	// FieldSetExtended requests the basic projection plus tags.
	FieldSetExtended
)

const basicPostFields = `id
title
brief
slug
url
coverImage {
  url
}
publishedAt
readTimeInMinutes
author {
  name
  username
  profilePicture
}`

const tagFields = `tags {
  name
  slug
}`

const contentFields = `content {
  html
  markdown
  text
}`

// postFields returns the field selection for the given tier.
func postFields(set FieldSet) string {
	if set == FieldSetExtended {
		return basicPostFields + "\n" + tagFields
	}
	return basicPostFields
}

// Publication returns the document for looking up publication metadata by
// host.
func Publication() string {
	return `query Publication($host: String!) {
  publication(host: $host) {
    id
    title
    displayTitle
    url
    favicon
    isTeam
    followersCount
    about {
      text
    }
    author {
      name
      username
      profilePicture
    }
  }
}`
}

// PublicationID returns the minimal document used to resolve a publication's
// id from its host. Search and webhook mutations key on the id, not the host.
func PublicationID() string {
	return `query PublicationID($host: String!) {
  publication(host: $host) {
    id
  }
}`
}

// Posts returns the document for listing a publication's posts with the given
// field-set tier.
func Posts(set FieldSet) string {
	return fmt.Sprintf(`query Posts($host: String!, $first: Int!) {
  publication(host: $host) {
    posts(first: $first) {
      edges {
        node {
          %s
        }
      }
    }
  }
}`, postFields(set))
}

// Post returns the document for fetching a single post by slug. The content
// block is always requested on top of the given field-set tier.
func Post(set FieldSet) string {
	return fmt.Sprintf(`query Post($host: String!, $slug: String!) {
  publication(host: $host) {
    post(slug: $slug) {
      %s
      %s
    }
  }
}`, postFields(set), contentFields)
}

// SearchPosts returns the document for full-text search across a
// publication's posts. The filter variable carries the publication id and the
// search term.
func SearchPosts() string {
	return fmt.Sprintf(`query SearchPosts($first: Int!, $filter: SearchPostsOfPublicationFilter!) {
  searchPostsOfPublication(first: $first, filter: $filter) {
    edges {
      node {
        %s
      }
    }
  }
}`, postFields(FieldSetBasic))
}

// SeriesList returns the document for listing a publication's series.
func SeriesList() string {
	return `query SeriesList($host: String!, $first: Int!) {
  publication(host: $host) {
    seriesList(first: $first) {
      edges {
        node {
          id
          name
          slug
          coverImage
          createdAt
          description {
            text
          }
        }
      }
    }
  }
}`
}

// Series returns the document for fetching a single series by slug.
func Series() string {
	return `query Series($host: String!, $slug: String!) {
  publication(host: $host) {
    series(slug: $slug) {
      id
      name
      slug
      coverImage
      createdAt
      description {
        text
      }
    }
  }
}`
}

// SeriesPosts returns the document for listing the posts inside one series.
func SeriesPosts() string {
	return fmt.Sprintf(`query SeriesPosts($host: String!, $slug: String!, $first: Int!) {
  publication(host: $host) {
    series(slug: $slug) {
      posts(first: $first) {
        edges {
          node {
            %s
          }
        }
      }
    }
  }
}`, postFields(FieldSetBasic))
}

// StaticPages returns the document for listing a publication's static pages.
func StaticPages() string {
	return `query StaticPages($host: String!, $first: Int!) {
  publication(host: $host) {
    staticPages(first: $first) {
      edges {
        node {
          id
          title
          slug
          hidden
        }
      }
    }
  }
}`
}

// StaticPage returns the document for fetching a single static page by slug,
// including its content block.
func StaticPage() string {
	return `query StaticPage($host: String!, $slug: String!) {
  publication(host: $host) {
    staticPage(slug: $slug) {
      id
      title
      slug
      hidden
      content {
        html
        markdown
        text
      }
    }
  }
}`
}

// Comments returns the document for listing the comments on one post by post
// id.
func Comments() string {
	return `query Comments($id: ID!, $first: Int!) {
  post(id: $id) {
    comments(first: $first) {
      edges {
        node {
          id
          dateAdded
          totalReactions
          content {
            html
            text
          }
          author {
            name
            username
            profilePicture
          }
        }
      }
    }
  }
}`
}

// RecommendedPublications returns the document for listing the publications
// recommended by a publication.
func RecommendedPublications() string {
	return `query RecommendedPublications($host: String!) {
  publication(host: $host) {
    recommendedPublications {
      node {
        id
        title
        url
        favicon
        followersCount
      }
    }
  }
}`
}

// Drafts returns the document for listing a publication's unpublished drafts.
// The remote rejects this query without a valid personal access token.
func Drafts() string {
	return `query Drafts($host: String!, $first: Int!) {
  publication(host: $host) {
    drafts(first: $first) {
      edges {
        node {
          id
          title
          updatedAt
          author {
            name
            username
            profilePicture
          }
        }
      }
    }
  }
}`
}

// CreateWebhook returns the mutation document for registering a webhook on a
// publication.
func CreateWebhook() string {
	return `mutation CreateWebhook($input: CreateWebhookInput!) {
  createWebhook(input: $input) {
    webhook {
      id
      url
      events
      secret
      createdAt
    }
  }
}`
}

// DeleteWebhook returns the mutation document for removing a webhook by id.
func DeleteWebhook() string {
	return `mutation DeleteWebhook($id: ID!) {
  deleteWebhook(id: $id) {
    webhook {
      id
    }
  }
}`
}
