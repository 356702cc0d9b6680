package models

// Content records as fetched from the content source. Every field is optional:
// a zero value means the author left it empty and the renderer falls back to
// the built-in copy. JSON tags mirror the source schema field names.

type NavLink struct {
	Key   string `json:"_key,omitempty"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

type SocialLink struct {
	Key      string `json:"_key,omitempty"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SiteSettings is the shared singleton consulted on every page render.
type SiteSettings struct {
	ID          string `json:"_id,omitempty"`
	SiteName    string `json:"siteName"`
	SiteTagline string `json:"siteTagline"`

	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`

	NavLinks      []NavLink `json:"navLinks"`
	NavButtonText string    `json:"navButtonText"`
	NavButtonURL  string    `json:"navButtonUrl"`

	FooterDescription  string    `json:"footerDescription"`
	FooterLinks        []NavLink `json:"footerLinks"`
	FooterContactTitle string    `json:"footerContactTitle"`
	FooterContactText  string    `json:"footerContactText"`
	CopyrightText      string    `json:"copyrightText"`

	BookingURLFreeConsult string `json:"bookingUrlFreeConsult"`
	BookingURLFullSession string `json:"bookingUrlFullSession"`

	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	SocialLinks []SocialLink `json:"socialLinks"`
}

type Pillar struct {
	Key         string `json:"_key,omitempty"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Service struct {
	Key         string `json:"_key,omitempty"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Approach struct {
	Key         string `json:"_key,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type StoryCard struct {
	Key     string  `json:"_key,omitempty"`
	Icon    string  `json:"icon"`
	Title   string  `json:"title"`
	Content []Block `json:"content"`
}

type CTAFeature struct {
	Key  string `json:"_key,omitempty"`
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// HomePageContent is the home page singleton, one flat record covering the
// hero, about, pillars, services, approach, story and CTA sections.
type HomePageContent struct {
	ID string `json:"_id,omitempty"`

	HeroSubtitle            string `json:"heroSubtitle"`
	HeroTitle               string `json:"heroTitle"`
	HeroDescription         string `json:"heroDescription"`
	HeroPrimaryButtonText   string `json:"heroPrimaryButtonText"`
	HeroSecondaryButtonText string `json:"heroSecondaryButtonText"`

	AboutLabel        string  `json:"aboutLabel"`
	AboutTitle        string  `json:"aboutTitle"`
	AboutContent      []Block `json:"aboutContent"`
	AboutImageCaption string  `json:"aboutImageCaption"`

	PillarsLabel       string   `json:"pillarsLabel"`
	PillarsTitle       string   `json:"pillarsTitle"`
	PillarsDescription string   `json:"pillarsDescription"`
	Pillars            []Pillar `json:"pillars"`

	ServicesLabel       string    `json:"servicesLabel"`
	ServicesTitle       string    `json:"servicesTitle"`
	ServicesDescription string    `json:"servicesDescription"`
	Services            []Service `json:"services"`
	ServicesClosing     string    `json:"servicesClosing"`
	ServicesButtonText  string    `json:"servicesButtonText"`
	ServicesButtonURL   string    `json:"servicesButtonUrl"`

	ApproachLabel       string     `json:"approachLabel"`
	ApproachTitle       string     `json:"approachTitle"`
	ApproachDescription string     `json:"approachDescription"`
	Approaches          []Approach `json:"approaches"`

	StoryLabel            string      `json:"storyLabel"`
	StoryTitle            string      `json:"storyTitle"`
	StoryContent          []Block     `json:"storyContent"`
	StoryQuote            string      `json:"storyQuote"`
	StoryQuoteAttribution string      `json:"storyQuoteAttribution"`
	StoryClosing          string      `json:"storyClosing"`
	StoryCards            []StoryCard `json:"storyCards"`

	CTATitle                string       `json:"ctaTitle"`
	CTADescription          string       `json:"ctaDescription"`
	CTAFeatures             []CTAFeature `json:"ctaFeatures"`
	CTAPrimaryTitle         string       `json:"ctaPrimaryTitle"`
	CTAPrimaryDescription   string       `json:"ctaPrimaryDescription"`
	CTAPrimaryButtonText    string       `json:"ctaPrimaryButtonText"`
	CTASecondaryTitle       string       `json:"ctaSecondaryTitle"`
	CTASecondaryDescription string       `json:"ctaSecondaryDescription"`
	CTASecondaryButtonText  string       `json:"ctaSecondaryButtonText"`
}

type CounsellingType struct {
	Key         string  `json:"_key,omitempty"`
	Icon        string  `json:"icon"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Extended    string  `json:"extended"`
	Highlight   string  `json:"highlight"`
	Content     []Block `json:"content"`
}

type SupportCategory struct {
	Key   string   `json:"_key,omitempty"`
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ServicesPageContent is the services page singleton: counselling types,
// areas of support and the two pricing tiers.
type ServicesPageContent struct {
	ID string `json:"_id,omitempty"`

	HeroTitle       string `json:"heroTitle"`
	HeroDescription string `json:"heroDescription"`

	CounsellingTypes []CounsellingType `json:"counsellingTypes"`

	AreasOfSupportTitle string            `json:"areasOfSupportTitle"`
	SupportCategories   []SupportCategory `json:"supportCategories"`

	PricingTitle       string `json:"pricingTitle"`
	PricingDescription string `json:"pricingDescription"`

	ConsultTitle       string `json:"consultTitle"`
	ConsultDescription string `json:"consultDescription"`
	ConsultButtonText  string `json:"consultButtonText"`
	ConsultButtonURL   string `json:"consultButtonUrl"`

	SessionTitle       string `json:"sessionTitle"`
	SessionPrice       string `json:"sessionPrice"`
	SessionDescription string `json:"sessionDescription"`
	SessionButtonText  string `json:"sessionButtonText"`
	SessionButtonURL   string `json:"sessionButtonUrl"`

	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}

// ContactPageContent is the contact page singleton: hero copy, form settings
// and the direct-contact details shown beside the form.
type ContactPageContent struct {
	ID string `json:"_id,omitempty"`

	HeroTitle       string `json:"heroTitle"`
	HeroDescription string `json:"heroDescription"`

	FormspreeID      string `json:"formspreeId"`
	FormTitle        string `json:"formTitle"`
	FormDescription  string `json:"formDescription"`
	SubmitButtonText string `json:"submitButtonText"`
	SuccessMessage   string `json:"successMessage"`

	ContactInfoTitle string `json:"contactInfoTitle"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	ResponseTime     string `json:"responseTime"`

	CTATitle       string `json:"ctaTitle"`
	CTADescription string `json:"ctaDescription"`
	CTAButtonText  string `json:"ctaButtonText"`
	CTAButtonURL   string `json:"ctaButtonUrl"`

	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
}
