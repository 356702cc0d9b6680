package content

import (
	"time"

	"github.com/Rynhardt5/forest-and-flow/internal/models"
)

// Composition merges a fetched record with the default content table, field
// by field. A nil record composes exactly like an empty one: whole-record
// fallback is just every field falling back at once.

// ComposeSite resolves the shared settings record into the header/footer view.
func ComposeSite(s *models.SiteSettings) SiteView {
	if s == nil {
		s = &models.SiteSettings{}
	}

	freeConsult := Text(s.BookingURLFreeConsult, defaultSite.BookingFreeConsult)
	fullSession := Text(s.BookingURLFullSession, defaultSite.BookingFullSession)

	return SiteView{
		Name:    Text(s.SiteName, defaultSite.Name),
		Tagline: Text(s.SiteTagline, defaultSite.Tagline),

		SEOTitle:       Text(s.SEOTitle, defaultSite.SEOTitle),
		SEODescription: Text(s.SEODescription, defaultSite.SEODescription),

		NavLinks:      List(links(s.NavLinks), defaultSite.NavLinks),
		NavButtonText: Text(s.NavButtonText, defaultSite.NavButtonText),
		NavButtonURL:  Text(s.NavButtonURL, freeConsult),

		FooterDescription:  Text(s.FooterDescription, defaultSite.FooterDescription),
		FooterLinks:        List(links(s.FooterLinks), defaultSite.FooterLinks),
		FooterContactTitle: Text(s.FooterContactTitle, defaultSite.FooterContactTitle),
		FooterContactText:  Text(s.FooterContactText, defaultSite.FooterContactText),
		CopyrightText:      Text(s.CopyrightText, defaultSite.CopyrightText),
		Year:               time.Now().Year(),

		BookingFreeConsult: freeConsult,
		BookingFullSession: fullSession,

		Email:       Text(s.Email, defaultSite.Email),
		Phone:       s.Phone,
		Address:     s.Address,
		SocialLinks: socials(s.SocialLinks),
	}
}

// ComposeHome resolves the home page record against the defaults.
func ComposeHome(h *models.HomePageContent, s *models.SiteSettings) HomeView {
	if h == nil {
		h = &models.HomePageContent{}
	}
	site := ComposeSite(s)

	return HomeView{
		Site:           site,
		SEOTitle:       site.SEOTitle,
		SEODescription: site.SEODescription,

		Hero: HeroSection{
			Subtitle:            Text(h.HeroSubtitle, defaultHero.Subtitle),
			Title:               Text(h.HeroTitle, defaultHero.Title),
			Description:         Text(h.HeroDescription, defaultHero.Description),
			PrimaryButtonText:   Text(h.HeroPrimaryButtonText, defaultHero.PrimaryButtonText),
			PrimaryButtonURL:    site.BookingFreeConsult,
			SecondaryButtonText: Text(h.HeroSecondaryButtonText, defaultHero.SecondaryButtonText),
			SecondaryButtonURL:  defaultHero.SecondaryButtonURL,
		},

		About: AboutSection{
			Label:        Text(h.AboutLabel, defaultAbout.Label),
			Title:        Text(h.AboutTitle, defaultAbout.Title),
			Content:      List(h.AboutContent, defaultAbout.Content),
			ImageCaption: Text(h.AboutImageCaption, defaultAbout.ImageCaption),
			ImagePath:    defaultAbout.ImagePath,
		},

		Pillars: PillarsSection{
			Label:       Text(h.PillarsLabel, defaultPillars.Label),
			Title:       Text(h.PillarsTitle, defaultPillars.Title),
			Description: Text(h.PillarsDescription, defaultPillars.Description),
			Items:       List(pillars(h.Pillars), defaultPillars.Items),
		},

		Services: ServicesSection{
			Label:       Text(h.ServicesLabel, defaultServices.Label),
			Title:       Text(h.ServicesTitle, defaultServices.Title),
			Description: Text(h.ServicesDescription, defaultServices.Description),
			Items:       List(services(h.Services), defaultServices.Items),
			Closing:     Text(h.ServicesClosing, defaultServices.Closing),
			ButtonText:  Text(h.ServicesButtonText, defaultServices.ButtonText),
			ButtonURL:   Text(h.ServicesButtonURL, site.BookingFreeConsult),
		},

		Approach: ApproachSection{
			Label:       Text(h.ApproachLabel, defaultApproach.Label),
			Title:       Text(h.ApproachTitle, defaultApproach.Title),
			Description: Text(h.ApproachDescription, defaultApproach.Description),
			ImagePath:   defaultApproach.ImagePath,
			Items:       List(approaches(h.Approaches), defaultApproach.Items),
		},

		Story: StorySection{
			Label:            Text(h.StoryLabel, defaultStory.Label),
			Title:            Text(h.StoryTitle, defaultStory.Title),
			Content:          List(h.StoryContent, defaultStory.Content),
			Quote:            Text(h.StoryQuote, defaultStory.Quote),
			QuoteAttribution: Text(h.StoryQuoteAttribution, defaultStory.QuoteAttribution),
			Closing:          Text(h.StoryClosing, defaultStory.Closing),
			Cards:            List(storyCards(h.StoryCards), defaultStory.Cards),
		},

		CTA: CTASection{
			Title:       Text(h.CTATitle, defaultCTA.Title),
			Description: Text(h.CTADescription, defaultCTA.Description),
			Features:    List(ctaFeatures(h.CTAFeatures), defaultCTA.Features),
			Primary: CTACard{
				Title:       Text(h.CTAPrimaryTitle, defaultCTA.Primary.Title),
				Description: Text(h.CTAPrimaryDescription, defaultCTA.Primary.Description),
				ButtonText:  Text(h.CTAPrimaryButtonText, defaultCTA.Primary.ButtonText),
				ButtonURL:   site.BookingFreeConsult,
			},
			Secondary: CTACard{
				Title:       Text(h.CTASecondaryTitle, defaultCTA.Secondary.Title),
				Description: Text(h.CTASecondaryDescription, defaultCTA.Secondary.Description),
				ButtonText:  Text(h.CTASecondaryButtonText, defaultCTA.Secondary.ButtonText),
				ButtonURL:   site.BookingFullSession,
			},
		},
	}
}

// ComposeServices resolves the services page record against the defaults.
func ComposeServices(p *models.ServicesPageContent, s *models.SiteSettings) ServicesView {
	if p == nil {
		p = &models.ServicesPageContent{}
	}
	site := ComposeSite(s)

	return ServicesView{
		Site:           site,
		SEOTitle:       Text(p.SEOTitle, defaultServicesPage.SEOTitle),
		SEODescription: Text(p.SEODescription, defaultServicesPage.SEODescription),

		HeroTitle:       Text(p.HeroTitle, defaultServicesPage.HeroTitle),
		HeroDescription: Text(p.HeroDescription, defaultServicesPage.HeroDescription),

		CounsellingTypes: List(counsellingTypes(p.CounsellingTypes), defaultServicesPage.CounsellingTypes),

		AreasOfSupportTitle: Text(p.AreasOfSupportTitle, defaultServicesPage.AreasOfSupportTitle),
		SupportCategories:   List(supportCategories(p.SupportCategories), defaultServicesPage.SupportCategories),

		PricingTitle:       Text(p.PricingTitle, defaultServicesPage.PricingTitle),
		PricingDescription: Text(p.PricingDescription, defaultServicesPage.PricingDescription),
		Consult: PricingTier{
			Badge:       defaultServicesPage.Consult.Badge,
			Title:       Text(p.ConsultTitle, defaultServicesPage.Consult.Title),
			Description: Text(p.ConsultDescription, defaultServicesPage.Consult.Description),
			Price:       defaultServicesPage.Consult.Price,
			ButtonText:  Text(p.ConsultButtonText, defaultServicesPage.Consult.ButtonText),
			ButtonURL:   Text(p.ConsultButtonURL, site.BookingFreeConsult),
		},
		Session: PricingTier{
			Badge:       defaultServicesPage.Session.Badge,
			Title:       Text(p.SessionTitle, defaultServicesPage.Session.Title),
			Description: Text(p.SessionDescription, defaultServicesPage.Session.Description),
			Price:       Text(p.SessionPrice, defaultServicesPage.Session.Price),
			ButtonText:  Text(p.SessionButtonText, defaultServicesPage.Session.ButtonText),
			ButtonURL:   Text(p.SessionButtonURL, site.BookingFullSession),
		},
	}
}

// ComposeContact resolves the contact page record against the defaults.
// The form is rendered in its initial state; the handler overlays submission
// outcomes on the Form view.
func ComposeContact(p *models.ContactPageContent, s *models.SiteSettings) ContactView {
	if p == nil {
		p = &models.ContactPageContent{}
	}
	site := ComposeSite(s)

	return ContactView{
		Site:           site,
		SEOTitle:       Text(p.SEOTitle, defaultContactPage.SEOTitle),
		SEODescription: Text(p.SEODescription, defaultContactPage.SEODescription),

		HeroTitle:       Text(p.HeroTitle, defaultContactPage.HeroTitle),
		HeroDescription: Text(p.HeroDescription, defaultContactPage.HeroDescription),

		Form: FormView{
			RelayID:          p.FormspreeID,
			Title:            Text(p.FormTitle, defaultContactPage.FormTitle),
			Description:      Text(p.FormDescription, defaultContactPage.FormDescription),
			SubmitButtonText: Text(p.SubmitButtonText, defaultContactPage.SubmitButtonText),
			SuccessMessage:   Text(p.SuccessMessage, defaultContactPage.SuccessMessage),
		},

		ContactInfoTitle: Text(p.ContactInfoTitle, defaultContactPage.ContactInfoTitle),
		Email:            Text(p.Email, site.Email),
		Phone:            Text(p.Phone, site.Phone),
		ResponseTime:     Text(p.ResponseTime, defaultContactPage.ResponseTime),

		CTATitle:       Text(p.CTATitle, defaultContactPage.CTATitle),
		CTADescription: Text(p.CTADescription, defaultContactPage.CTADescription),
		CTAButtonText:  Text(p.CTAButtonText, defaultContactPage.CTAButtonText),
		CTAButtonURL:   Text(p.CTAButtonURL, defaultContactPage.CTAButtonURL),
	}
}

func links(in []models.NavLink) []Link {
	out := make([]Link, 0, len(in))
	for _, l := range in {
		out = append(out, Link{Label: l.Label, Href: Text(l.Href, "#")})
	}
	return out
}

func socials(in []models.SocialLink) []SocialLinkView {
	out := make([]SocialLinkView, 0, len(in))
	for _, l := range in {
		if l.URL == "" {
			continue
		}
		out = append(out, SocialLinkView{Platform: l.Platform, URL: l.URL})
	}
	return out
}

func pillars(in []models.Pillar) []PillarView {
	out := make([]PillarView, 0, len(in))
	for _, p := range in {
		out = append(out, PillarView{Icon: p.Icon, Title: p.Title, Description: p.Description})
	}
	return out
}

func services(in []models.Service) []ServiceView {
	out := make([]ServiceView, 0, len(in))
	for _, s := range in {
		out = append(out, ServiceView{Icon: s.Icon, Title: s.Title, Description: s.Description})
	}
	return out
}

func approaches(in []models.Approach) []ApproachView {
	out := make([]ApproachView, 0, len(in))
	for _, a := range in {
		out = append(out, ApproachView{Title: a.Title, Description: a.Description})
	}
	return out
}

func storyCards(in []models.StoryCard) []StoryCardView {
	out := make([]StoryCardView, 0, len(in))
	for _, c := range in {
		out = append(out, StoryCardView{Icon: c.Icon, Title: c.Title, Content: c.Content})
	}
	return out
}

func ctaFeatures(in []models.CTAFeature) []CTAFeatureView {
	out := make([]CTAFeatureView, 0, len(in))
	for _, f := range in {
		out = append(out, CTAFeatureView{Icon: f.Icon, Text: f.Text})
	}
	return out
}

func counsellingTypes(in []models.CounsellingType) []CounsellingTypeView {
	out := make([]CounsellingTypeView, 0, len(in))
	for _, t := range in {
		out = append(out, CounsellingTypeView{
			Icon:        t.Icon,
			Title:       t.Title,
			Description: t.Description,
			Extended:    t.Extended,
			Highlight:   t.Highlight,
			Content:     t.Content,
		})
	}
	return out
}

func supportCategories(in []models.SupportCategory) []SupportCategoryView {
	out := make([]SupportCategoryView, 0, len(in))
	for _, c := range in {
		out = append(out, SupportCategoryView{Title: c.Title, Items: c.Items})
	}
	return out
}
