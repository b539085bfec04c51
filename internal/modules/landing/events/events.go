// Package events defines the payloads the landing module publishes on the bus.
package events

import "github.com/nfrund/funnel/internal/pubsub"

// PageViewed is published for every full page render.
type PageViewed struct {
	Path      string `json:"path"`
	Referrer  string `json:"referrer,omitempty"`
	UserAgent string `json:"userAgent,omitempty"`
}

// FAQToggled is published when a visitor opens or closes a question.
type FAQToggled struct {
	Index int  `json:"index"`
	Open  bool `json:"open"`
}

// CheckoutClicked is published when a visitor follows the purchase link.
type CheckoutClicked struct {
	Source   string `json:"source"`
	Referrer string `json:"referrer,omitempty"`
}

var (
	Viewed  = pubsub.NewEvent[PageViewed]("landing.page.viewed", "The landing page was rendered for a visitor.")
	Toggled = pubsub.NewEvent[FAQToggled]("landing.faq.toggled", "A FAQ entry was opened or closed.")
	Clicked = pubsub.NewEvent[CheckoutClicked]("landing.checkout.clicked", "A visitor left for the external checkout.")
)
