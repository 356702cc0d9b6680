package content

import (
	"testing"
	"time"

	"github.com/Rynhardt5/forest-and-flow/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeSite_NilRecord(t *testing.T) {
	v := ComposeSite(nil)

	assert.Equal(t, "Forest & Flow", v.Name)
	assert.Equal(t, "Forest & Flow Counselling", v.SEOTitle)
	assert.Equal(t, defaultSite.NavLinks, v.NavLinks)
	assert.Equal(t, "Book a Consult", v.NavButtonText)
	assert.Equal(t, "#", v.NavButtonURL)
	assert.Equal(t, defaultSite.FooterLinks, v.FooterLinks)
	assert.Equal(t, "james@forestandflow.com.au", v.Email)
	assert.Equal(t, time.Now().Year(), v.Year)
	assert.Empty(t, v.SocialLinks)
}

func TestComposeSite_PartialRecord(t *testing.T) {
	v := ComposeSite(&models.SiteSettings{
		SiteName: "Custom Name",
		Email:    "hello@example.com",
	})

	assert.Equal(t, "Custom Name", v.Name)
	assert.Equal(t, "hello@example.com", v.Email)
	// Untouched fields still resolve to the defaults.
	assert.Equal(t, defaultSite.Tagline, v.Tagline)
	assert.Equal(t, defaultSite.NavLinks, v.NavLinks)
}

func TestComposeSite_BookingURLChain(t *testing.T) {
	// NavButtonURL falls back to the free-consult booking URL when unset.
	v := ComposeSite(&models.SiteSettings{
		BookingURLFreeConsult: "https://cal.example/free",
		BookingURLFullSession: "https://cal.example/full",
	})
	assert.Equal(t, "https://cal.example/free", v.NavButtonURL)
	assert.Equal(t, "https://cal.example/free", v.BookingFreeConsult)
	assert.Equal(t, "https://cal.example/full", v.BookingFullSession)

	// An explicit NavButtonURL wins over the booking chain.
	v = ComposeSite(&models.SiteSettings{
		NavButtonURL:          "/custom",
		BookingURLFreeConsult: "https://cal.example/free",
	})
	assert.Equal(t, "/custom", v.NavButtonURL)
}

func TestComposeSite_SocialLinksWithoutURLDropped(t *testing.T) {
	v := ComposeSite(&models.SiteSettings{
		SocialLinks: []models.SocialLink{
			{Platform: "Instagram", URL: "https://instagram.com/forestandflow"},
			{Platform: "Facebook"},
		},
	})
	require.Len(t, v.SocialLinks, 1)
	assert.Equal(t, "Instagram", v.SocialLinks[0].Platform)
}

func TestComposeHome_NilRecord(t *testing.T) {
	v := ComposeHome(nil, nil)

	assert.Equal(t, defaultHero.Title, v.Hero.Title)
	assert.Equal(t, defaultHero.Subtitle, v.Hero.Subtitle)
	assert.Equal(t, "#about", v.Hero.SecondaryButtonURL)

	assert.Equal(t, defaultAbout.Title, v.About.Title)
	assert.Len(t, v.About.Content, len(defaultAboutContent))

	require.Len(t, v.Pillars.Items, 5)
	assert.Equal(t, "Connection", v.Pillars.Items[0].Title)
	assert.Equal(t, "Integration", v.Pillars.Items[4].Title)

	require.Len(t, v.Services.Items, 4)
	assert.Equal(t, "Life Transitions", v.Services.Items[0].Title)

	require.Len(t, v.Approach.Items, 6)
	require.Len(t, v.Story.Cards, 2)
	assert.Equal(t, "Forest", v.Story.Cards[0].Title)
	assert.Equal(t, "Flow", v.Story.Cards[1].Title)

	require.Len(t, v.CTA.Features, 3)
	assert.Equal(t, defaultCTA.Primary.Title, v.CTA.Primary.Title)
}

func TestComposeHome_PartialRecordMerges(t *testing.T) {
	h := &models.HomePageContent{
		HeroTitle: "A new headline",
	}
	v := ComposeHome(h, nil)

	assert.Equal(t, "A new headline", v.Hero.Title)
	// Every other hero field still comes from the default table.
	assert.Equal(t, defaultHero.Subtitle, v.Hero.Subtitle)
	assert.Equal(t, defaultHero.Description, v.Hero.Description)
}

func TestComposeHome_ListFallbackIsAtomic(t *testing.T) {
	h := &models.HomePageContent{
		Pillars: []models.Pillar{
			{Icon: "Eye", Title: "Only One", Description: "Just this pillar."},
		},
	}
	v := ComposeHome(h, nil)

	// One authored pillar means one rendered pillar, never a merge with the
	// default five.
	require.Len(t, v.Pillars.Items, 1)
	assert.Equal(t, "Only One", v.Pillars.Items[0].Title)
}

func TestComposeHome_ButtonURLsFollowBooking(t *testing.T) {
	s := &models.SiteSettings{
		BookingURLFreeConsult: "https://cal.example/free",
		BookingURLFullSession: "https://cal.example/full",
	}
	v := ComposeHome(nil, s)

	assert.Equal(t, "https://cal.example/free", v.Hero.PrimaryButtonURL)
	assert.Equal(t, "https://cal.example/free", v.Services.ButtonURL)
	assert.Equal(t, "https://cal.example/free", v.CTA.Primary.ButtonURL)
	assert.Equal(t, "https://cal.example/full", v.CTA.Secondary.ButtonURL)
}

func TestComposeServices_NilRecord(t *testing.T) {
	v := ComposeServices(nil, nil)

	assert.Equal(t, defaultServicesPage.HeroTitle, v.HeroTitle)
	require.Len(t, v.CounsellingTypes, 3)
	assert.Equal(t, "Individual Counselling", v.CounsellingTypes[0].Title)
	assert.Equal(t, "Men's Counselling", v.CounsellingTypes[1].Title)
	assert.Equal(t, "Couples Counselling", v.CounsellingTypes[2].Title)

	require.Len(t, v.SupportCategories, 2)
	assert.Equal(t, "General Support", v.SupportCategories[0].Title)
	assert.Len(t, v.SupportCategories[0].Items, 6)

	assert.Equal(t, "Free", v.Consult.Price)
	assert.Equal(t, "$120", v.Session.Price)
	assert.Equal(t, "Start Here", v.Consult.Badge)
}

func TestComposeServices_PricingOverrides(t *testing.T) {
	p := &models.ServicesPageContent{
		SessionPrice:      "$140",
		SessionButtonURL:  "/book-now",
		ConsultButtonText: "Grab a slot",
	}
	v := ComposeServices(p, nil)

	assert.Equal(t, "$140", v.Session.Price)
	assert.Equal(t, "/book-now", v.Session.ButtonURL)
	assert.Equal(t, "Grab a slot", v.Consult.ButtonText)
	// The consult tier price is fixed.
	assert.Equal(t, "Free", v.Consult.Price)
}

func TestComposeContact_NilRecord(t *testing.T) {
	v := ComposeContact(nil, nil)

	assert.Equal(t, "Get in Touch", v.HeroTitle)
	assert.Equal(t, "Send a Message", v.Form.Title)
	assert.Equal(t, "Send Message", v.Form.SubmitButtonText)
	assert.Empty(t, v.Form.RelayID)
	assert.False(t, v.Form.Submitted)

	// Contact email falls back through the site settings default.
	assert.Equal(t, "james@forestandflow.com.au", v.Email)
	assert.Equal(t, "/services#pricing", v.CTAButtonURL)
}

func TestComposeContact_RelayIDFromRecord(t *testing.T) {
	p := &models.ContactPageContent{FormspreeID: "abcd1234"}
	v := ComposeContact(p, nil)
	assert.Equal(t, "abcd1234", v.Form.RelayID)
}
