// Package content holds the copy of the landing page: every text, label, price
// and media URL the sections render. Records are plain values; a *Page is never
// mutated once published through a Store.
package content

// Page aggregates the records of every section in reading order.
type Page struct {
	Title       string    `yaml:"title" validate:"required"`
	Description string    `yaml:"description" validate:"required"`
	Hero        Hero      `yaml:"hero"`
	Benefits    Benefits  `yaml:"benefits"`
	Carousel    Carousel  `yaml:"carousel"`
	Ticker      Ticker    `yaml:"ticker"`
	Steps       Steps     `yaml:"steps"`
	Features    Features  `yaml:"features"`
	Mentor      Mentor    `yaml:"mentor"`
	Pricing     Pricing   `yaml:"pricing"`
	Guarantee   Guarantee `yaml:"guarantee"`
	FAQ         FAQ       `yaml:"faq"`
	Footer      Footer    `yaml:"footer"`
}

// Heading is a section title with an optional highlighted tail.
type Heading struct {
	Text      string `yaml:"text" validate:"required"`
	Highlight string `yaml:"highlight"`
}

// Item is a title/description pair used by benefit and feature cards.
type Item struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

type Hero struct {
	Brand             string `yaml:"brand" validate:"required"`
	Headline          string `yaml:"headline" validate:"required"`
	HeadlineHighlight string `yaml:"headline_highlight" validate:"required"`
	Prompt            string `yaml:"prompt" validate:"required"`
	VideoPlaceholder  string `yaml:"video_placeholder" validate:"required"`
	CTA               string `yaml:"cta" validate:"required"`
	SocialProof       string `yaml:"social_proof" validate:"required"`
}

type Benefits struct {
	Title string `yaml:"title" validate:"required"`
	Intro Rich   `yaml:"intro" validate:"required"`
	Items []Item `yaml:"items" validate:"min=1,dive"`
}

// Carousel lists the testimonial screenshots shown in the marquee.
type Carousel struct {
	Heading Heading  `yaml:"heading"`
	Images  []string `yaml:"images" validate:"min=1,dive,url"`
	Caption string   `yaml:"caption" validate:"required"`
	CTA     string   `yaml:"cta" validate:"required"`
}

type Ticker struct {
	Text   string `yaml:"text" validate:"required"`
	Repeat int    `yaml:"repeat" validate:"min=1,max=100"`
}

// Step is one entry of the "how it works" timeline.
type Step struct {
	Icon        string `yaml:"icon" validate:"oneof=play trending-up award"`
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

type Steps struct {
	Heading Heading `yaml:"heading"`
	Items   []Step  `yaml:"items" validate:"min=1,dive"`
	CTA     string  `yaml:"cta" validate:"required"`
}

type Features struct {
	Heading Heading `yaml:"heading"`
	Items   []Item  `yaml:"items" validate:"min=1,dive"`
}

type Mentor struct {
	Title      string `yaml:"title" validate:"required"`
	Paragraphs []Rich `yaml:"paragraphs" validate:"min=1,dive,required"`
	PhotoURL   string `yaml:"photo_url" validate:"required,url"`
	PhotoAlt   string `yaml:"photo_alt" validate:"required"`
}

type Pricing struct {
	Headline     string `yaml:"headline" validate:"required"`
	Subheadline  string `yaml:"subheadline" validate:"required"`
	Plan         string `yaml:"plan" validate:"required"`
	Original     Price  `yaml:"original"`
	Offer        Price  `yaml:"offer"`
	OfferLead    string `yaml:"offer_lead" validate:"required"`
	Installments string `yaml:"installments" validate:"required"`
	Payment      string `yaml:"payment" validate:"required"`
	Access       string `yaml:"access" validate:"required"`
	Secure       string `yaml:"secure" validate:"required"`
	CTA          string `yaml:"cta" validate:"required"`
}

type Guarantee struct {
	Heading Heading `yaml:"heading"`
	Body    string  `yaml:"body" validate:"required"`
	Closing string  `yaml:"closing" validate:"required"`
	Seal    Seal    `yaml:"seal"`
}

// Seal is the badge copy of the guarantee seal.
type Seal struct {
	Days  int    `yaml:"days" validate:"min=1"`
	Unit  string `yaml:"unit" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// QA is one FAQ entry.
type QA struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}

type FAQ struct {
	Heading Heading `yaml:"heading"`
	Items   []QA    `yaml:"items" validate:"min=1,dive"`
}

type Link struct {
	Label string `yaml:"label" validate:"required"`
	URL   string `yaml:"url" validate:"required"`
}

type Footer struct {
	Company string `yaml:"company" validate:"required"`
	TaxID   string `yaml:"tax_id" validate:"required"`
	Links   []Link `yaml:"links" validate:"dive"`
}
