package content

import "github.com/Rynhardt5/forest-and-flow/internal/models"

// View structs are fully resolved page data: every field is populated, either
// from the fetched record or from the default content table. Templates render
// them verbatim and contain no fallback logic of their own.

type Link struct {
	Label string
	Href  string
}

type SocialLinkView struct {
	Platform string
	URL      string
}

// SiteView carries the header, footer and booking data shared by every page.
type SiteView struct {
	Name    string
	Tagline string

	SEOTitle       string
	SEODescription string

	NavLinks      []Link
	NavButtonText string
	NavButtonURL  string

	FooterDescription  string
	FooterLinks        []Link
	FooterContactTitle string
	FooterContactText  string
	CopyrightText      string
	Year               int

	BookingFreeConsult string
	BookingFullSession string

	Email       string
	Phone       string
	Address     string
	SocialLinks []SocialLinkView
}

type HeroSection struct {
	Subtitle            string
	Title               string
	Description         string
	PrimaryButtonText   string
	PrimaryButtonURL    string
	SecondaryButtonText string
	SecondaryButtonURL  string
}

type AboutSection struct {
	Label        string
	Title        string
	Content      []models.Block
	ImageCaption string
	ImagePath    string
}

type PillarView struct {
	Icon        string
	Title       string
	Description string
}

type PillarsSection struct {
	Label       string
	Title       string
	Description string
	Items       []PillarView
}

type ServiceView struct {
	Icon        string
	Title       string
	Description string
}

type ServicesSection struct {
	Label       string
	Title       string
	Description string
	Items       []ServiceView
	Closing     string
	ButtonText  string
	ButtonURL   string
}

type ApproachView struct {
	Title       string
	Description string
}

type ApproachSection struct {
	Label       string
	Title       string
	Description string
	ImagePath   string
	Items       []ApproachView
}

type StoryCardView struct {
	Icon    string
	Title   string
	Content []models.Block
}

type StorySection struct {
	Label            string
	Title            string
	Content          []models.Block
	Quote            string
	QuoteAttribution string
	Closing          string
	Cards            []StoryCardView
}

type CTAFeatureView struct {
	Icon string
	Text string
}

type CTACard struct {
	Title       string
	Description string
	ButtonText  string
	ButtonURL   string
}

type CTASection struct {
	Title       string
	Description string
	Features    []CTAFeatureView
	Primary     CTACard
	Secondary   CTACard
}

// HomeView is the fully resolved home page.
type HomeView struct {
	Site           SiteView
	SEOTitle       string
	SEODescription string

	Hero     HeroSection
	About    AboutSection
	Pillars  PillarsSection
	Services ServicesSection
	Approach ApproachSection
	Story    StorySection
	CTA      CTASection
}

type CounsellingTypeView struct {
	Icon        string
	Title       string
	Description string
	Extended    string
	Highlight   string
	Content     []models.Block
}

type SupportCategoryView struct {
	Title string
	Items []string
}

type PricingTier struct {
	Badge       string
	Title       string
	Description string
	Price       string
	ButtonText  string
	ButtonURL   string
}

// ServicesView is the fully resolved services page.
type ServicesView struct {
	Site           SiteView
	SEOTitle       string
	SEODescription string

	HeroTitle       string
	HeroDescription string

	CounsellingTypes []CounsellingTypeView

	AreasOfSupportTitle string
	SupportCategories   []SupportCategoryView

	PricingTitle       string
	PricingDescription string
	Consult            PricingTier
	Session            PricingTier
}

// FormView is the state of the contact form as rendered: current input,
// per-field validation messages and the outcome banner, if any.
type FormView struct {
	RelayID          string
	Title            string
	Description      string
	SubmitButtonText string
	SuccessMessage   string

	Submitted    bool
	ErrorMessage string
	Input        models.ContactInput
	FieldErrors  map[string]string
}

// ContactView is the fully resolved contact page.
type ContactView struct {
	Site           SiteView
	SEOTitle       string
	SEODescription string

	HeroTitle       string
	HeroDescription string

	Form FormView

	ContactInfoTitle string
	Email            string
	Phone            string
	ResponseTime     string

	CTATitle       string
	CTADescription string
	CTAButtonText  string
	CTAButtonURL   string
}
