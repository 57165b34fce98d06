package models

type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

type ProductRequest struct {
	Name          string  `json:"name" form:"name" binding:"required,min=2,max=200"`
	Price         float64 `json:"price" form:"price" binding:"required,gt=0"`
	Description   string  `json:"description" form:"description"`
	Image         string  `json:"image" form:"image"`
	Link          string  `json:"link" form:"link" binding:"required,url"`
	SubcategoryID *int    `json:"subcategory_id" form:"subcategory_id"`
	ExternalID    string  `json:"external_id" form:"external_id" binding:"omitempty,max=100"`
}

type CategoryRequest struct {
	Name string `json:"name" form:"name" binding:"required,min=2,max=100"`
}

type ArticleRequest struct {
	Title   string `json:"title" form:"title" binding:"required,min=5,max=200"`
	Content string `json:"content" form:"content" binding:"required"`
	Author  string `json:"author" form:"author" binding:"omitempty,max=100"`
	Image   string `json:"image" form:"image"`
}

type SyncRequest struct {
	APIURL string `json:"api_url" form:"api_url" binding:"required,url"`
}

type SocialMediaRequest struct {
	Platform  string `json:"platform" form:"platform" binding:"required,max=50"`
	URL       string `json:"url" form:"url" binding:"required,url"`
	IsVisible *bool  `json:"is_visible" form:"is_visible"`
}

type TestimonialRequest struct {
	Author    string `json:"author" form:"author" binding:"required,min=2,max=100"`
	Content   string `json:"content" form:"content" binding:"required"`
	IsVisible bool   `json:"is_visible" form:"is_visible"`
}

// PublicTestimonialRequest carries the honeypot field; a filled FaxNumber
// marks the submission as spam and it is silently dropped.
type PublicTestimonialRequest struct {
	Author    string `json:"author" form:"author" binding:"required,min=2,max=100"`
	Content   string `json:"content" form:"content" binding:"required,min=10,max=500"`
	FaxNumber string `json:"fax_number" form:"fax_number"`
}

type ContactRequest struct {
	Name      string `json:"name" form:"name" binding:"required"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Subject   string `json:"subject" form:"subject" binding:"omitempty,max=200"`
	Message   string `json:"message" form:"message" binding:"required"`
	FaxNumber string `json:"fax_number" form:"fax_number"`
}

type MessageUpdateRequest struct {
	IsRead       bool   `json:"is_read" form:"is_read"`
	IsArchived   bool   `json:"is_archived" form:"is_archived"`
	ResponseText string `json:"response_text" form:"response_text"`
}

type AdvertisementRequest struct {
	Type            string `json:"type" form:"type" binding:"required,oneof=featured recommended best_seller sponsored relevant"`
	Title           string `json:"title" form:"title" binding:"required,max=200"`
	IsActive        bool   `json:"is_active" form:"is_active"`
	TextContent     string `json:"text_content" form:"text_content"`
	ButtonText      string `json:"button_text" form:"button_text"`
	ButtonURL       string `json:"button_url" form:"button_url" binding:"omitempty,url"`
	ImageURL        string `json:"image_url" form:"image_url"`
	ProductID       *int   `json:"product_id" form:"product_id"`
	AdsenseClientID string `json:"adsense_client_id" form:"adsense_client_id"`
	AdsenseSlotID   string `json:"adsense_slot_id" form:"adsense_slot_id"`
	StartDate       string `json:"start_date" form:"start_date"`
	EndDate         string `json:"end_date" form:"end_date"`
}

type AffiliateRequest struct {
	Name         string `json:"name" form:"name" binding:"required,max=100"`
	Email        string `json:"email" form:"email" binding:"required,email"`
	ReferralLink string `json:"referral_link" form:"referral_link" binding:"required,url"`
	IsActive     bool   `json:"is_active" form:"is_active"`
}

type AffiliateStatRequest struct {
	AffiliateID int     `json:"affiliate_id" form:"affiliate_id" binding:"required"`
	Date        string  `json:"date" form:"date" binding:"required"`
	Clicks      int     `json:"clicks" form:"clicks" binding:"gte=0"`
	Signups     int     `json:"signups" form:"signups" binding:"gte=0"`
	Sales       int     `json:"sales" form:"sales" binding:"gte=0"`
	Commission  float64 `json:"commission" form:"commission" binding:"gte=0"`
	IsPaid      bool    `json:"is_paid" form:"is_paid"`
}

type AdsenseConfigRequest struct {
	ClientID    string `json:"client_id" form:"client_id" binding:"required,max=100"`
	SlotHeader  string `json:"slot_header" form:"slot_header"`
	SlotSidebar string `json:"slot_sidebar" form:"slot_sidebar"`
	SlotContent string `json:"slot_content" form:"slot_content"`
	Status      string `json:"status" form:"status" binding:"omitempty,oneof=active inactive"`
}

type ChatbotRequest struct {
	Message string `json:"message" binding:"required"`
}
