package render

import (
	"fmt"
	"html/template"
	"strings"
)

// Symbol is a graphical icon referenced from content by name. Each section
// accepts its own closed set of names; anything outside the set resolves to
// that section's default symbol, so a renamed icon in the CMS degrades to a
// generic glyph instead of breaking the render.
type Symbol int

const (
	SymbolUser Symbol = iota
	SymbolUsers
	SymbolEye
	SymbolBrain
	SymbolCompass
	SymbolLayers
	SymbolTreePine
	SymbolWaves
	SymbolTarget
	SymbolHeart
	SymbolDroplets
	SymbolCalendar
	SymbolClock
	SymbolVideo
	SymbolFacebook
	SymbolInstagram
	SymbolLinkedIn
	SymbolTwitter
	SymbolYouTube
	SymbolLink
)

func (s Symbol) id() string {
	switch s {
	case SymbolUser:
		return "user"
	case SymbolUsers:
		return "users"
	case SymbolEye:
		return "eye"
	case SymbolBrain:
		return "brain"
	case SymbolCompass:
		return "compass"
	case SymbolLayers:
		return "layers"
	case SymbolTreePine:
		return "tree-pine"
	case SymbolWaves:
		return "waves"
	case SymbolTarget:
		return "target"
	case SymbolHeart:
		return "heart"
	case SymbolDroplets:
		return "droplets"
	case SymbolCalendar:
		return "calendar"
	case SymbolClock:
		return "clock"
	case SymbolVideo:
		return "video"
	case SymbolFacebook:
		return "facebook"
	case SymbolInstagram:
		return "instagram"
	case SymbolLinkedIn:
		return "linkedin"
	case SymbolTwitter:
		return "twitter"
	case SymbolYouTube:
		return "youtube"
	default:
		return "link"
	}
}

// SVG returns the inline markup for the symbol, referencing the sprite sheet
// served under /static/.
func (s Symbol) SVG() template.HTML {
	return template.HTML(fmt.Sprintf(
		`<svg class="icon icon-%[1]s" width="24" height="24" aria-hidden="true"><use href="/static/icons.svg#%[1]s"></use></svg>`,
		s.id(),
	))
}

// PillarSymbol resolves a pillar icon name. Default: Users.
func PillarSymbol(name string) Symbol {
	switch name {
	case "Users":
		return SymbolUsers
	case "Eye":
		return SymbolEye
	case "Brain":
		return SymbolBrain
	case "Compass":
		return SymbolCompass
	case "Layers":
		return SymbolLayers
	default:
		return SymbolUsers
	}
}

// ServiceSymbol resolves a home-page service icon name. Default: TreePine.
func ServiceSymbol(name string) Symbol {
	switch name {
	case "TreePine":
		return SymbolTreePine
	case "Waves":
		return SymbolWaves
	case "Target":
		return SymbolTarget
	case "Heart":
		return SymbolHeart
	default:
		return SymbolTreePine
	}
}

// StorySymbol resolves a story card icon name. Default: TreePine.
func StorySymbol(name string) Symbol {
	switch name {
	case "TreePine":
		return SymbolTreePine
	case "Droplets":
		return SymbolDroplets
	default:
		return SymbolTreePine
	}
}

// CTASymbol resolves a CTA feature icon name. Default: Clock.
func CTASymbol(name string) Symbol {
	switch name {
	case "Calendar":
		return SymbolCalendar
	case "Clock":
		return SymbolClock
	case "Video":
		return SymbolVideo
	default:
		return SymbolClock
	}
}

// CounsellingSymbol resolves a counselling type icon name. Default: User.
func CounsellingSymbol(name string) Symbol {
	switch name {
	case "User":
		return SymbolUser
	case "Users":
		return SymbolUsers
	case "Heart":
		return SymbolHeart
	default:
		return SymbolUser
	}
}

// SocialSymbol resolves a social platform name. Default: a generic link glyph.
func SocialSymbol(platform string) Symbol {
	switch strings.ToLower(platform) {
	case "facebook":
		return SymbolFacebook
	case "instagram":
		return SymbolInstagram
	case "linkedin":
		return SymbolLinkedIn
	case "twitter":
		return SymbolTwitter
	case "youtube":
		return SymbolYouTube
	default:
		return SymbolLink
	}
}
