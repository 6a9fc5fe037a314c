// model/book.go
package model

import (
	json "github.com/goccy/go-json"
)

// Rating is always stored as {average, count}. Legacy data files carry a bare
// number instead; decoding accepts both so the rest of the system never sees
// the ambiguous shape.
type Rating struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var avg float64
	if err := json.Unmarshal(data, &avg); err == nil {
		r.Average = avg
		r.Count = 0
		return nil
	}
	type alias Rating
	return json.Unmarshal(data, (*alias)(r))
}

// Price is always stored as {base, final, discount_percent}. Legacy files may
// carry a bare number, which means base == final with no discount.
type Price struct {
	Base            float64 `json:"base"`
	Final           float64 `json:"final"`
	DiscountPercent float64 `json:"discount_percent"`
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var v float64
	if err := json.Unmarshal(data, &v); err == nil {
		p.Base = v
		p.Final = v
		p.DiscountPercent = 0
		return nil
	}
	type alias Price
	if err := json.Unmarshal(data, (*alias)(p)); err != nil {
		return err
	}
	if p.Final == 0 && p.DiscountPercent == 0 {
		p.Final = p.Base
	}
	return nil
}

type Review struct {
	User   string `json:"user"`
	Rating int    `json:"rating"`
	Date   string `json:"date"` // YYYY-MM-DD, stamped at creation
	Text   string `json:"text"`
}

type Book struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Author          string   `json:"author"`
	Genre           string   `json:"genre"`
	Rating          Rating   `json:"rating"`
	Price           Price    `json:"price"`
	CoverImage      string   `json:"cover_image"`
	LongDescription string   `json:"long_description"`
	AuthorBio       string   `json:"author_bio"`
	Tagline         string   `json:"tagline"`
	PublishDate     string   `json:"publish_date"`
	Reviews         []Review `json:"reviews"`
}

// UnmarshalJSON folds the legacy nested {"category": {"main": ...}} shape into
// Genre and backfills the rating count from the review list when absent.
func (b *Book) UnmarshalJSON(data []byte) error {
	type Alias Book
	aux := struct {
		*Alias
		Category struct {
			Main string `json:"main"`
		} `json:"category"`
	}{Alias: (*Alias)(b)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if b.Genre == "" {
		b.Genre = aux.Category.Main
	}
	if b.Rating.Count == 0 && len(b.Reviews) > 0 {
		b.Rating.Count = len(b.Reviews)
	}
	return nil
}
