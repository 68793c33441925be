package dto

import (
	"github.com/wb-go/wbf/ginext"

	"aadhrita/internal/model"
	"aadhrita/pkg/imageurl"
)

const (
	FieldBadFormat     = "FIELD_BADFORMAT"
	FieldIncorrect     = "FIELD_INCORRECT"
	ServiceUnavailable = "SERVICE_UNAVAILABLE"
	InternalError      = "Service is currently unavailable. Please try again later."

	ItemNotFound     = "ITEM_NOT_FOUND"
	LoginRejected    = "LOGIN_REJECTED"
	NotAuthenticated = "NOT_AUTHENTICATED"
	AccessDenied     = "ACCESS_DENIED"
)

// Announcement priority modes (see config content.announcement_priority).
const (
	PriorityModeNumeric = "numeric"
	PriorityModeLabel   = "label"
)

type Response struct {
	Status string `json:"status"`
	Error  *Error `json:"error,omitempty"`
	Data   any    `json:"data,omitempty"`
}

type Error struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
}

type LoginRequest struct {
	UserID   string `json:"user_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type EventRequest struct {
	Name               string `json:"name" validate:"required,max=255"`
	Category           string `json:"category"`
	Date               string `json:"date"`
	Time               string `json:"time"`
	Description        string `json:"description"`
	PosterURL          string `json:"poster_url"`
	LogoURL            string `json:"logo_url"`
	AccentColor        string `json:"accent_color" validate:"omitempty,hexcolor"`
	RegistrationURL    string `json:"registration_url" validate:"omitempty,url"`
	EnableRegistration bool   `json:"enable_registration"`
}

type FAQRequest struct {
	EventID  string `json:"event_id" validate:"required"`
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer"`
	Priority int    `json:"priority" validate:"gte=0"`
}

// AnnouncementRequest accepts either a numeric priority or the legacy
// high/medium/low label, depending on the configured mode.
type AnnouncementRequest struct {
	Title         string `json:"title" validate:"required,max=255"`
	Content       string `json:"content"`
	Date          string `json:"date"`
	Priority      int    `json:"priority" validate:"gte=0"`
	PriorityLabel string `json:"priority_label" validate:"omitempty,prioritylabel"`
}

type GalleryRequest struct {
	ImageURL  string `json:"image_url" validate:"required"`
	Caption   string `json:"caption"`
	Year      string `json:"year"`
	EventName string `json:"event_name"`
}

type SponsorRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Category string `json:"category" validate:"required,sponsortier"`
	LogoURL  string `json:"logo_url"`
	Website  string `json:"website" validate:"omitempty,url"`
}

type TeamMemberRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Role       string `json:"role"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
	PhotoURL   string `json:"photo_url"`
	Type       string `json:"type" validate:"required,membertype"`
}

type BrandingRequest struct {
	FestName          string `json:"fest_name" validate:"required"`
	CollegeName       string `json:"college_name"`
	Location          string `json:"location"`
	LogoURL           string `json:"logo_url"`
	GlowColor         string `json:"glow_color" validate:"omitempty,hexcolor"`
	HeroTitle         string `json:"hero_title"`
	HeroSubtitle      string `json:"hero_subtitle"`
	HeroDate          string `json:"hero_date"`
	HeroVenue         string `json:"hero_venue"`
	FestIntro         string `json:"fest_intro"`
	FestTheme         string `json:"fest_theme"`
	FestHighlights    string `json:"fest_highlights"`
	CountdownDatetime string `json:"countdown_datetime"`
}

type AboutRequest struct {
	About   string `json:"about" validate:"max=4000"`
	Mission string `json:"mission" validate:"max=4000"`
	Vision  string `json:"vision" validate:"max=4000"`
	Stat1   string `json:"stat1" validate:"max=255"`
	Stat2   string `json:"stat2" validate:"max=255"`
	Stat3   string `json:"stat3" validate:"max=255"`
	Stat4   string `json:"stat4" validate:"max=255"`
}

// ImageRef carries a normalized source plus the category placeholder, so
// clients swap to the fallback on their first load failure.
type ImageRef struct {
	Src      string `json:"src"`
	Fallback string `json:"fallback"`
}

func NewImageRef(raw string, category imageurl.Category) ImageRef {
	src, fb := imageurl.Resolve(raw, category)
	return ImageRef{Src: src, Fallback: fb}
}

type EventResponse struct {
	model.Event
	Poster ImageRef `json:"poster"`
	Logo   ImageRef `json:"logo"`
}

func NewEventResponse(e model.Event) EventResponse {
	return EventResponse{
		Event:  e,
		Poster: NewImageRef(e.PosterURL, imageurl.CategoryEvent),
		Logo:   NewImageRef(e.LogoURL, imageurl.CategoryLogo),
	}
}

type GalleryResponse struct {
	model.GalleryImage
	Image ImageRef `json:"image"`
}

func NewGalleryResponse(g model.GalleryImage) GalleryResponse {
	return GalleryResponse{GalleryImage: g, Image: NewImageRef(g.ImageURL, imageurl.CategoryGallery)}
}

type SponsorResponse struct {
	model.Sponsor
	Logo ImageRef `json:"logo"`
}

func NewSponsorResponse(s model.Sponsor) SponsorResponse {
	return SponsorResponse{Sponsor: s, Logo: NewImageRef(s.LogoURL, imageurl.CategorySponsor)}
}

type TeamMemberResponse struct {
	model.TeamMember
	Photo ImageRef `json:"photo"`
}

func NewTeamMemberResponse(m model.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{TeamMember: m, Photo: NewImageRef(m.PhotoURL, imageurl.CategoryTeam)}
}

type BrandingResponse struct {
	model.Branding
	Logo ImageRef `json:"logo"`
}

func NewBrandingResponse(b model.Branding) BrandingResponse {
	return BrandingResponse{Branding: b, Logo: NewImageRef(b.LogoURL, imageurl.CategoryLogo)}
}

type AnnouncementResponse struct {
	model.Announcement
	PriorityLabel string `json:"priority_label,omitempty"`
}

// NewAnnouncementResponse attaches the legacy label when label mode is on.
func NewAnnouncementResponse(a model.Announcement, mode string) AnnouncementResponse {
	resp := AnnouncementResponse{Announcement: a}
	if mode == PriorityModeLabel {
		resp.PriorityLabel = PriorityToLabel(a.Priority)
	}
	return resp
}

// PriorityFromLabel maps the legacy high/medium/low labels onto the numeric
// scale; unknown labels land on medium.
func PriorityFromLabel(label string) int {
	switch label {
	case "high":
		return 3
	case "low":
		return 1
	default:
		return 2
	}
}

func PriorityToLabel(priority int) string {
	switch {
	case priority >= 3:
		return "high"
	case priority <= 1:
		return "low"
	default:
		return "medium"
	}
}

func BadResponseError(c *ginext.Context, code, desc string) {
	c.JSON(400, Response{
		Status: "error",
		Error: &Error{
			Code: code,
			Desc: desc,
		},
	})
}

func InternalServerError(c *ginext.Context) {
	c.JSON(500, Response{
		Status: "error",
		Error: &Error{
			Code: ServiceUnavailable,
			Desc: InternalError,
		},
	})
}

func NotFoundError(c *ginext.Context) {
	c.JSON(404, Response{
		Status: "error",
		Error: &Error{
			Code: ItemNotFound,
			Desc: "Item not found",
		},
	})
}

func LoginRejectedError(c *ginext.Context) {
	// One message for both bad identity and bad password.
	c.JSON(401, Response{
		Status: "error",
		Error: &Error{
			Code: LoginRejected,
			Desc: "Invalid credentials",
		},
	})
}

func NotAuthenticatedError(c *ginext.Context) {
	c.JSON(401, Response{
		Status: "error",
		Error: &Error{
			Code: NotAuthenticated,
			Desc: "Authentication required",
		},
	})
}

// AccessDeniedError is the explicit-denial contract: a signed-in identity
// without the admin role gets a visible denial pointing at sign-out, never a
// silent redirect.
func AccessDeniedError(c *ginext.Context) {
	c.JSON(403, Response{
		Status: "error",
		Error: &Error{
			Code: AccessDenied,
			Desc: "Your account does not have admin access. Sign out via POST /v1/admin/logout and use an admin account.",
		},
	})
}

func SuccessResponse(c *ginext.Context, data any) {
	c.JSON(200, Response{
		Status: "ok",
		Data:   data,
	})
}

func SuccessCreatedResponse(c *ginext.Context, data any) {
	c.JSON(201, Response{
		Status: "ok",
		Data:   data,
	})
}
