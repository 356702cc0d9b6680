package content

import "github.com/Rynhardt5/forest-and-flow/internal/models"

// The default content table: complete hand-authored copy for every section.
// The site must render fully from this table alone, with zero records fetched.

const (
	defaultBookingURL = "#"
	defaultEmail      = "james@forestandflow.com.au"

	defaultSiteName    = "Forest & Flow"
	defaultSiteTagline = "Grounded like a tree, responsive like water. Compassionate, evidence-based counselling for men navigating life's challenges."
)

var defaultNavLinks = []Link{
	{Label: "About", Href: "/#about"},
	{Label: "Approach", Href: "/#approach"},
	{Label: "Story", Href: "/#story"},
	{Label: "Services", Href: "/services"},
}

var defaultFooterLinks = []Link{
	{Label: "About James", Href: "/#about"},
	{Label: "Services", Href: "/services"},
	{Label: "Approach", Href: "/#approach"},
	{Label: "Story", Href: "/#story"},
	{Label: "Book a Session", Href: "/#book"},
}

var defaultSite = SiteView{
	Name:    defaultSiteName,
	Tagline: defaultSiteTagline,

	SEOTitle:       "Forest & Flow Counselling",
	SEODescription: defaultSiteTagline,

	NavLinks:      defaultNavLinks,
	NavButtonText: "Book a Consult",
	NavButtonURL:  defaultBookingURL,

	FooterDescription:  "Grounded like a tree, responsive like water. Compassionate counselling for those ready to find calm, clarity, and confidence.",
	FooterLinks:        defaultFooterLinks,
	FooterContactTitle: "Get in Touch",
	FooterContactText:  "Ready to start your journey? Book a free consultation or reach out with any questions.",
	CopyrightText:      "Forest & Flow Counselling",

	BookingFreeConsult: defaultBookingURL,
	BookingFullSession: defaultBookingURL,

	Email: defaultEmail,
}

var defaultHero = HeroSection{
	Subtitle:            "Forest & Flow Counselling",
	Title:               "Grounded like a tree, responsive like water.",
	Description:         "Your path to calm, clarity and confidence begins here.",
	PrimaryButtonText:   "Book Free Consult",
	SecondaryButtonText: "Learn More",
	SecondaryButtonURL:  "#about",
}

var defaultAboutContent = []models.Block{
	models.Paragraph("Nothing brings me more joy than seeing people's faces light up with clarity and purpose as they discover more about who they are, what they want, and how to move toward it — especially when that growth strengthens their relationships and communities."),
	models.Paragraph("My mission is to offer a safe, grounded, and supportive space where you can explore your thoughts, emotions, patterns, and possibilities."),
	models.Paragraph("Forest & Flow Counselling provides professional, evidence-based therapy informed by holistic wisdom. 'Holistic' simply means I see you as a whole, multi-faceted human being — shaped by your past, connected to others, and capable of making the changes you desire."),
	models.Paragraph("I bring broad life experience, deep self-awareness, and postgraduate qualifications in Education, Coaching, and Counselling. I've also raised and have strong relationships with my two boys — my greatest achievements, so far."),
	models.Blockquote("However you arrive, and whatever you're carrying, you'll be met with care, respect, and a sincere commitment to you living your life on your terms."),
	models.Paragraph("At Forest & Flow, my aim is simple: to help you feel more present, more connected, and more empowered. Whether you're seeking clarity, healing, or a new direction, I'm here to walk alongside you as you find your way forward."),
}

var defaultAbout = AboutSection{
	Label:        "About Me",
	Title:        "Hi, I'm James",
	Content:      defaultAboutContent,
	ImageCaption: "That's Jasper — he occasionally joins sessions, on his own terms.",
	ImagePath:    "/static/img/james.jpg",
}

var defaultPillars = PillarsSection{
	Label:       "My Approach",
	Title:       "The Five Core Pillars",
	Description: "These five pillars shape every session and guide us toward meaningful, lasting change.",
	Items: []PillarView{
		{
			Icon:        "Users",
			Title:       "Connection",
			Description: "Real change begins with feeling genuinely seen and understood. In our work together, you'll have a steady, respectful space where you can speak freely and explore what's really going on.",
		},
		{
			Icon:        "Eye",
			Title:       "Clarity",
			Description: "Through reflective dialogue and practical insight, we'll map out what's happening beneath the surface—your patterns, needs, and strengths—so you can make decisions with confidence.",
		},
		{
			Icon:        "Brain",
			Title:       "Emotional Regulation",
			Description: "Together we'll explore evidence-based strategies to steady your mind and body, reduce overwhelm, and strengthen your capacity to respond rather than react.",
		},
		{
			Icon:        "Compass",
			Title:       "Self-Leadership",
			Description: "Developing the inner strength to lead your own life with purpose. This includes cultivating healthy boundaries, aligning decisions with your values, and stepping into a more grounded, centred version of yourself.",
		},
		{
			Icon:        "Layers",
			Title:       "Integration",
			Description: "We'll turn what you learn in session into practical steps you can use every day—helping you create meaningful, sustainable change that flows into your relationships, goals, and wellbeing.",
		},
	},
}

var defaultServices = ServicesSection{
	Label:       "How I Can Help",
	Title:       "Support Through Life's Challenges",
	Description: "Life can pull us in different directions, and sometimes we need an objective, professional sounding board to help us act with confidence.",
	Items: []ServiceView{
		{
			Icon:        "TreePine",
			Title:       "Life Transitions",
			Description: "Navigate major changes with clarity and confidence—career shifts, relationship changes, or finding new direction.",
		},
		{
			Icon:        "Heart",
			Title:       "Anxiety & Stress",
			Description: "Build practical tools to manage overwhelm, quiet the noise, and respond to life with calm and steadiness.",
		},
		{
			Icon:        "Target",
			Title:       "Goals & Purpose",
			Description: "Clarify what matters most to you and create actionable steps toward the life you want to build.",
		},
		{
			Icon:        "Waves",
			Title:       "Self-Esteem",
			Description: "Reconnect with your inherent worth, challenge limiting beliefs, and build genuine confidence from within.",
		},
	},
	Closing:    "Together, we'll slow things down, make sense of what's happening, and build the clarity and confidence you need to take your next steps with strength and trust in yourself.",
	ButtonText: "Book an Online Session",
}

var defaultApproach = ApproachSection{
	Label:       "My Approach",
	Title:       "Evidence-Based Methods, Holistic Wisdom",
	Description: "I integrate a range of evidence-based approaches to support meaningful, sustainable change. Each modality offers something different, and they help us explore your inner world, reshape unhelpful patterns, and build practical tools for everyday life.",
	ImagePath:   "/static/img/stream.jpg",
	Items: []ApproachView{
		{
			Title:       "Cognitive Behavioural Therapy (CBT)",
			Description: "CBT helps identify the thoughts and beliefs that shape how you feel and act. With this, we challenge unhelpful thinking patterns and build healthier, more constructive ways of responding to life's difficulties.",
		},
		{
			Title:       "Rational Emotive Behaviour Therapy (REBT)",
			Description: "REBT focuses on the core beliefs and philosophies that drive emotional reactions. It helps you understand why certain situations trigger strong feelings and teaches you how to respond with greater clarity and steadiness.",
		},
		{
			Title:       "Solution-Focused Therapy (SFT)",
			Description: "A practical, strengths-based approach that helps you move toward what is working rather than staying stuck in what isn't. SFT focuses on your existing resources, past successes, and small, achievable steps that create meaningful change.",
		},
		{
			Title:       "Acceptance and Commitment Therapy (ACT)",
			Description: "ACT supports psychological flexibility—helping you accept difficult thoughts and feelings, reconnect with your values, and take purposeful action even in the face of discomfort or uncertainty.",
		},
		{
			Title:       "Motivational Interviewing (MI)",
			Description: "A collaborative, conversational approach that helps you work through ambivalence and commit to change. It's especially useful when you're feeling stuck, uncertain, or divided about your next steps.",
		},
		{
			Title:       "Mindfulness & Present-Moment Awareness",
			Description: "Mindfulness is woven throughout my work. It's not about emptying your mind, but strengthening your ability to stay present, notice what's happening inside you, and respond with clarity rather than reactivity.",
		},
	},
}

var defaultStory = StorySection{
	Label: "About the Name",
	Title: `Why "Forest & Flow"?`,
	Content: []models.Block{
		models.Paragraph(`For a long time, I've felt an affinity with the Buddhist story behind the phrase "Chop Wood, Carry Water". In fact, I have it tattooed on my forearms! Its message is to value the simple tasks, though they are often boring, as these are the foundations of a meaningful life.`),
		models.Paragraph("It reminds us to find fulfilment in the daily journey rather than just the end goal. For me, the story is a reminder to accept things as they are, to find peace, and to do what I need to do to achieve my goals."),
	},
	Quote:            `"Before enlightenment; chop wood, carry water. After enlightenment; chop wood, carry water."`,
	QuoteAttribution: "— Zen Kōan",
	Closing:          "The other reason for the name is the simple, healing powers of nature. Walking in a forest and swimming in a body of water are some of the best things we can do for our minds, bodies, and souls. I recommend getting into nature at least once a week.",
	Cards: []StoryCardView{
		{
			Icon:  "TreePine",
			Title: "Forest",
			Content: []models.Block{
				models.Paragraph("Forests are made of trees, which form the basis of many ecosystems. They give us wood for us to build our houses and fires for warmth."),
				models.Paragraph("In forests, trees live not alone but in an ecosystem that is integrated and supportive of each other—just like our complex human societies. It speaks to the recognition of ourselves as part of something bigger than us."),
				models.Paragraph("Forests—especially Old Growth and Rainforests—feel timeless. They have taken millions of years to become what we see today. So it is with humans and our societies. We are part of a very long story, and that is worth remembering."),
			},
		},
		{
			Icon:  "Droplets",
			Title: "Flow",
			Content: []models.Block{
				models.Paragraph("Flow, as in the flow of water—adaptable, necessary for life, and very powerful."),
				models.Paragraph("It also refers to the state of flow—the mental state of being completely absorbed in an activity, bringing a feeling of energised focus, full involvement, and enjoyment. This is known as a peak state, commonly felt by artists and professional athletes."),
			},
		},
	},
}

var defaultCTA = CTASection{
	Title:       "Ready to Take the First Step?",
	Description: "Book a free 15-minute consultation to discuss your needs and see if I'm the right therapist for you. No pressure, just a conversation.",
	Features: []CTAFeatureView{
		{Icon: "Clock", Text: "15 minutes, completely free"},
		{Icon: "Video", Text: "Online video call at your convenience"},
		{Icon: "Calendar", Text: "Flexible scheduling available"},
	},
	Primary: CTACard{
		Title:       "Free 15-Minute Consult",
		Description: "A no-obligation chat to explore whether we're a good fit to work together.",
		ButtonText:  "Book Free Consult",
	},
	Secondary: CTACard{
		Title:       "Book a Full Session",
		Description: "Ready to begin? Schedule your first full counselling session online.",
		ButtonText:  "Book Session",
	},
}

var defaultServicesPage = struct {
	HeroTitle       string
	HeroDescription string

	CounsellingTypes []CounsellingTypeView

	AreasOfSupportTitle string
	SupportCategories   []SupportCategoryView

	PricingTitle       string
	PricingDescription string
	Consult            PricingTier
	Session            PricingTier

	SEOTitle       string
	SEODescription string
}{
	HeroTitle:       "Counselling That Meets You Where You Are",
	HeroDescription: "All sessions are currently conducted over Zoom and run for 60 minutes. Whether you're navigating personal challenges, relationship concerns, or seeking greater clarity in life, I'm here to help.",

	CounsellingTypes: []CounsellingTypeView{
		{
			Icon:        "User",
			Title:       "Individual Counselling",
			Description: "Individual counselling gives you a steady, confidential space to slow down, speak openly, and make sense of what's happening in your life. Whether you're dealing with anxiety, low self-esteem, depression, life transitions, or simply feeling stuck and unsure of your next step, this is a place to explore your experience without pressure or judgment.",
			Extended:    "Together, we'll look at the patterns beneath the surface, clarify what you want, and develop practical tools to help you move forward with confidence and calm. My approach blends evidence-based therapy with holistic wisdom, meeting you exactly where you are while supporting you to grow into where you want to be.",
			Highlight:   "If you're ready to understand yourself more deeply and create meaningful, sustainable change, individual counselling can help you get there.",
		},
		{
			Icon:        "Users",
			Title:       "Men's Counselling",
			Description: "Society has changed dramatically over the past 80 years, and men are feeling the pressure to adapt while still staying true to themselves. Maybe your partner wants you to open up more, your relationship with your kids feels distant, or you simply need a space to talk through things with someone who understands the realities men face today.",
			Extended:    "I work with men who are navigating these shifts—men who want stronger relationships, clearer direction, and a deeper connection to who they are. Together, we can bridge communication gaps, build emotional strength, and help you meet life's challenges without losing your sense of masculine identity or integrity.",
			Highlight:   "This is a place to speak honestly, gain clarity, and develop the confidence to lead your life with purpose.",
		},
		{
			Icon:        "Heart",
			Title:       "Couples Counselling",
			Description: "Relationships can be one of the greatest sources of strength in our lives—and also one of the greatest sources of stress when things feel out of sync. Couples counselling offers a steady, respectful space for both partners to be heard without judgement, understand each other more deeply, and rebuild trust and connection.",
			Extended:    "Whether you're navigating communication breakdowns, recurring conflicts, emotional distance, major life transitions, or simply wanting a stronger, healthier partnership, we'll work together to uncover the patterns beneath the surface and create practical ways forward.",
			Highlight:   "Couples counselling isn't about blame—it's about turning toward one another with clarity, honesty, and a shared commitment to grow.",
		},
	},

	AreasOfSupportTitle: "I Offer Support With a Range of Challenges",
	SupportCategories: []SupportCategoryView{
		{
			Title: "General Support",
			Items: []string{
				"Anxiety and stress",
				"Low self-esteem and self-worth",
				"Depression and low mood",
				"Life transitions and major changes",
				"Relationship concerns and communication issues",
				"Feeling stuck, overwhelmed, or directionless",
			},
		},
		{
			Title: "Men's Wellbeing",
			Items: []string{
				"Men's mental health",
				"Emotional resilience and regulation",
				"Identity, purpose, and confidence",
				"Fatherhood and family relationships",
				"Modern pressures on men and masculine expectations",
			},
		},
	},

	PricingTitle:       "Simple, Transparent Pricing",
	PricingDescription: "All sessions are conducted via secure video call and run for 60 minutes.",
	Consult: PricingTier{
		Badge:       "Start Here",
		Title:       "Free 15-Minute Consultation",
		Description: "A relaxed, no-pressure chat to see whether we're a good fit. Ask questions and get a feel for how I work.",
		Price:       "Free",
		ButtonText:  "Book Free Consult",
	},
	Session: PricingTier{
		Badge:       "All Sessions",
		Title:       "60-Minute Session",
		Description: "All counselling sessions—individual, men's, couples, or goal-focused—are conducted via secure video call.",
		Price:       "$120",
		ButtonText:  "Book Session",
	},

	SEOTitle:       "Services",
	SEODescription: "Professional counselling services including individual therapy, men's counselling, and couples counselling.",
}

var defaultContactPage = struct {
	HeroTitle       string
	HeroDescription string

	FormTitle        string
	FormDescription  string
	SubmitButtonText string
	SuccessMessage   string

	ContactInfoTitle string
	ResponseTime     string

	CTATitle       string
	CTADescription string
	CTAButtonText  string
	CTAButtonURL   string

	SEOTitle       string
	SEODescription string
}{
	HeroTitle:       "Get in Touch",
	HeroDescription: "Have a question or ready to start your journey? I'd love to hear from you. Fill out the form below or use the contact details to reach out directly.",

	FormTitle:        "Send a Message",
	FormDescription:  "Share what's on your mind and I'll get back to you soon.",
	SubmitButtonText: "Send Message",
	SuccessMessage:   "Thank you for reaching out! I'll respond within 24-48 hours.",

	ContactInfoTitle: "Other Ways to Reach Me",
	ResponseTime:     "I typically respond within 24-48 hours",

	CTATitle:       "Prefer to book directly?",
	CTADescription: "Skip the form and schedule a free 15-minute consultation.",
	CTAButtonText:  "Book Free Consult",
	CTAButtonURL:   "/services#pricing",

	SEOTitle:       "Contact",
	SEODescription: "Get in touch with Forest & Flow Counselling. Send a message or book a free consultation.",
}
