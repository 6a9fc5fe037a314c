// model/post.go
package model

// Poll options and votes are parallel lists; voting itself happens client-side
// only and is never persisted.
type Poll struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Votes    []int    `json:"votes"`
}

type PostComment struct {
	User string `json:"user"`
	Date string `json:"date"`
	Text string `json:"text"`
}

type Post struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	PublishDate string        `json:"publish_date"`
	Tags        []string      `json:"tags"`
	HeroImage   string        `json:"hero_image"`
	ContentHTML string        `json:"content_html"`
	Poll        *Poll         `json:"poll,omitempty"`
	Comments    []PostComment `json:"comments,omitempty"`
}

// PostSummary is the listing-page projection of a Post.
type PostSummary struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Author      string   `json:"author"`
	PublishDate string   `json:"publish_date"`
	Tags        []string `json:"tags"`
	HeroImage   string   `json:"hero_image"`
	Snippet     string   `json:"snippet"`
}
