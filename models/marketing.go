package models

import "time"

type Advertisement struct {
	ID              int        `json:"id"`
	Type            string     `json:"type"`
	Title           string     `json:"title"`
	IsActive        bool       `json:"is_active"`
	TextContent     string     `json:"text_content"`
	ButtonText      string     `json:"button_text"`
	ButtonURL       string     `json:"button_url"`
	ImageURL        string     `json:"image_url"`
	ProductID       *int       `json:"product_id"`
	AdsenseClientID string     `json:"adsense_client_id"`
	AdsenseSlotID   string     `json:"adsense_slot_id"`
	StartDate       *time.Time `json:"start_date"`
	EndDate         *time.Time `json:"end_date"`
}

type Affiliate struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	ReferralLink string `json:"referral_link"`
	IsActive     bool   `json:"is_active"`
}

// AffiliateStat is one per-affiliate, per-day counter row.
type AffiliateStat struct {
	ID          int       `json:"id"`
	AffiliateID int       `json:"affiliate_id"`
	Date        time.Time `json:"date"`
	Clicks      int       `json:"clicks"`
	Signups     int       `json:"signups"`
	Sales       int       `json:"sales"`
	Commission  float64   `json:"commission"`
	IsPaid      bool      `json:"is_paid"`
}

type SocialMediaLink struct {
	ID        int    `json:"id"`
	Platform  string `json:"platform"`
	URL       string `json:"url"`
	IconClass string `json:"icon_class"`
	IsVisible bool   `json:"is_visible"`
	OrderNum  int    `json:"order_num"`
}

type AdsenseConfig struct {
	ID          int       `json:"id"`
	ClientID    string    `json:"client_id"`
	SlotHeader  string    `json:"slot_header"`
	SlotSidebar string    `json:"slot_sidebar"`
	SlotContent string    `json:"slot_content"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
