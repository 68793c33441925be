package service

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/wb-go/wbf/ginext"

	"aadhrita/internal/auth"
	"aadhrita/internal/dto"
	"aadhrita/internal/live"
	"aadhrita/internal/model"
	"aadhrita/internal/store"
	"aadhrita/pkg/validator"
)

type Service interface {
	Login(ctx *ginext.Context)
	Logout(ctx *ginext.Context)
	Me(ctx *ginext.Context)

	GetBranding(ctx *ginext.Context)
	GetAbout(ctx *ginext.Context)
	GetEvents(ctx *ginext.Context)
	GetGallery(ctx *ginext.Context)
	GetSponsors(ctx *ginext.Context)
	GetTeam(ctx *ginext.Context)
	GetAnnouncements(ctx *ginext.Context)

	CreateEvent(ctx *ginext.Context)
	CreateFAQ(ctx *ginext.Context)
	CreateAnnouncement(ctx *ginext.Context)
	CreateGalleryImage(ctx *ginext.Context)
	CreateSponsor(ctx *ginext.Context)
	CreateTeamMember(ctx *ginext.Context)

	UpdateItem(ctx *ginext.Context)
	DeleteItem(ctx *ginext.Context)

	SaveBranding(ctx *ginext.Context)
	SaveAbout(ctx *ginext.Context)
}

type service struct {
	store        store.ContentStore
	views        *live.Views
	auth         *auth.Manager
	log          *zerolog.Logger
	priorityMode string
}

func NewService(cs store.ContentStore, views *live.Views, am *auth.Manager, log *zerolog.Logger, priorityMode string) Service {
	if priorityMode != dto.PriorityModeLabel {
		priorityMode = dto.PriorityModeNumeric
	}
	return &service{
		store:        cs,
		views:        views,
		auth:         am,
		log:          log,
		priorityMode: priorityMode,
	}
}

func (s *service) Login(ctx *ginext.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	token, err := s.auth.Login(ctx, req.UserID, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrLoginRejected) {
			dto.LoginRejectedError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("login failed")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Str("user_id", req.UserID).Msg("admin logged in")
	dto.SuccessResponse(ctx, dto.LoginResponse{Token: token, UserID: req.UserID})
}

func (s *service) Logout(ctx *ginext.Context) {
	token := auth.TokenFromHeader(ctx.GetHeader("Authorization"))
	if err := s.auth.Logout(ctx, token); err != nil {
		s.log.Error().Err(err).Msg("logout failed")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessResponse(ctx, nil)
}

// Me reports the identity behind the session; the auth middleware has
// already rejected anyone without the admin role.
func (s *service) Me(ctx *ginext.Context) {
	userID := ctx.GetString("user_id")
	dto.SuccessResponse(ctx, dto.LoginResponse{UserID: userID})
}

func (s *service) GetBranding(ctx *ginext.Context) {
	b, err := s.views.Branding.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get branding")
		dto.InternalServerError(ctx)
		return
	}
	if b == nil {
		dto.SuccessResponse(ctx, nil)
		return
	}
	dto.SuccessResponse(ctx, dto.NewBrandingResponse(*b))
}

func (s *service) GetAbout(ctx *ginext.Context) {
	a, err := s.views.About.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get about")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessResponse(ctx, a)
}

func (s *service) GetEvents(ctx *ginext.Context) {
	events, err := s.views.Events.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get events")
		dto.InternalServerError(ctx)
		return
	}
	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.NewEventResponse(e))
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) GetGallery(ctx *ginext.Context) {
	images, err := s.views.Gallery.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get gallery")
		dto.InternalServerError(ctx)
		return
	}
	resp := make([]dto.GalleryResponse, 0, len(images))
	for _, g := range images {
		resp = append(resp, dto.NewGalleryResponse(g))
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) GetSponsors(ctx *ginext.Context) {
	sponsors, err := s.views.Sponsors.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get sponsors")
		dto.InternalServerError(ctx)
		return
	}
	resp := make([]dto.SponsorResponse, 0, len(sponsors))
	for _, sp := range sponsors {
		resp = append(resp, dto.NewSponsorResponse(sp))
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) GetTeam(ctx *ginext.Context) {
	members, err := s.views.Team.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get team")
		dto.InternalServerError(ctx)
		return
	}
	resp := make([]dto.TeamMemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, dto.NewTeamMemberResponse(m))
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) GetAnnouncements(ctx *ginext.Context) {
	items, err := s.views.Announcements.Get(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to get announcements")
		dto.InternalServerError(ctx)
		return
	}
	resp := make([]dto.AnnouncementResponse, 0, len(items))
	for _, a := range items {
		resp = append(resp, dto.NewAnnouncementResponse(a, s.priorityMode))
	}
	dto.SuccessResponse(ctx, resp)
}

func (s *service) CreateEvent(ctx *ginext.Context) {
	var req dto.EventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	created, err := s.store.CreateEvent(ctx, model.Event{
		Name:               req.Name,
		Category:           req.Category,
		Date:               req.Date,
		Time:               req.Time,
		Description:        req.Description,
		PosterURL:          req.PosterURL,
		LogoURL:            req.LogoURL,
		AccentColor:        req.AccentColor,
		RegistrationURL:    req.RegistrationURL,
		EnableRegistration: req.EnableRegistration,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create event")
		dto.InternalServerError(ctx)
		return
	}

	s.log.Info().Str("event_id", created.ID).Msg("event created")
	dto.SuccessCreatedResponse(ctx, dto.NewEventResponse(created))
}

func (s *service) CreateFAQ(ctx *ginext.Context) {
	var req dto.FAQRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	created, err := s.store.CreateFAQ(ctx, model.FAQ{
		EventID:  req.EventID,
		Question: req.Question,
		Answer:   req.Answer,
		Priority: req.Priority,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			dto.NotFoundError(ctx)
			return
		}
		s.log.Error().Err(err).Msg("failed to create faq")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessCreatedResponse(ctx, created)
}

func (s *service) CreateAnnouncement(ctx *ginext.Context) {
	var req dto.AnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	priority := req.Priority
	if s.priorityMode == dto.PriorityModeLabel && req.PriorityLabel != "" {
		priority = dto.PriorityFromLabel(req.PriorityLabel)
	}

	created, err := s.store.CreateAnnouncement(ctx, model.Announcement{
		Title:    req.Title,
		Content:  req.Content,
		Date:     req.Date,
		Priority: priority,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create announcement")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessCreatedResponse(ctx, dto.NewAnnouncementResponse(created, s.priorityMode))
}

func (s *service) CreateGalleryImage(ctx *ginext.Context) {
	var req dto.GalleryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	created, err := s.store.CreateGalleryImage(ctx, model.GalleryImage{
		ImageURL:  req.ImageURL,
		Caption:   req.Caption,
		Year:      req.Year,
		EventName: req.EventName,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create gallery image")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessCreatedResponse(ctx, dto.NewGalleryResponse(created))
}

func (s *service) CreateSponsor(ctx *ginext.Context) {
	var req dto.SponsorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	created, err := s.store.CreateSponsor(ctx, model.Sponsor{
		Name:     req.Name,
		Category: req.Category,
		LogoURL:  req.LogoURL,
		Website:  req.Website,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create sponsor")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessCreatedResponse(ctx, dto.NewSponsorResponse(created))
}

func (s *service) CreateTeamMember(ctx *ginext.Context) {
	var req dto.TeamMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	created, err := s.store.CreateTeamMember(ctx, model.TeamMember{
		Name:       req.Name,
		Role:       req.Role,
		Department: req.Department,
		Phone:      req.Phone,
		PhotoURL:   req.PhotoURL,
		Type:       req.Type,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create team member")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessCreatedResponse(ctx, dto.NewTeamMemberResponse(created))
}

// UpdateItem applies a partial update to /:kind/:id. Unknown patch keys are
// ignored; a missing id is a silent no-op per the store contract.
func (s *service) UpdateItem(ctx *ginext.Context) {
	kind := store.Kind(ctx.Param("kind"))
	if !isCollection(kind) {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Unknown collection")
		return
	}

	var patch map[string]any
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}

	if kind == store.KindAnnouncements && s.priorityMode == dto.PriorityModeLabel {
		if label, ok := patch["priority_label"].(string); ok {
			patch["priority"] = dto.PriorityFromLabel(label)
		}
	}

	if err := s.store.UpdateItem(ctx, kind, ctx.Param("id"), patch); err != nil {
		if errors.Is(err, store.ErrInvalidPatch) {
			dto.BadResponseError(ctx, dto.FieldBadFormat, "Patch value has wrong type")
			return
		}
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("failed to update item")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessResponse(ctx, nil)
}

func (s *service) DeleteItem(ctx *ginext.Context) {
	kind := store.Kind(ctx.Param("kind"))
	if !isCollection(kind) {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Unknown collection")
		return
	}

	if err := s.store.DeleteItem(ctx, kind, ctx.Param("id")); err != nil {
		s.log.Error().Err(err).Str("kind", string(kind)).Msg("failed to delete item")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessResponse(ctx, nil)
}

func (s *service) SaveBranding(ctx *ginext.Context) {
	var req dto.BrandingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	current, err := s.store.Branding(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load branding before save")
		dto.InternalServerError(ctx)
		return
	}
	b := model.Branding{
		FestName:          req.FestName,
		CollegeName:       req.CollegeName,
		Location:          req.Location,
		LogoURL:           req.LogoURL,
		GlowColor:         req.GlowColor,
		HeroTitle:         req.HeroTitle,
		HeroSubtitle:      req.HeroSubtitle,
		HeroDate:          req.HeroDate,
		HeroVenue:         req.HeroVenue,
		FestIntro:         req.FestIntro,
		FestTheme:         req.FestTheme,
		FestHighlights:    req.FestHighlights,
		CountdownDatetime: req.CountdownDatetime,
	}
	if current != nil {
		b.ID = current.ID
	}

	if err := s.store.SaveBranding(ctx, b); err != nil {
		s.log.Error().Err(err).Msg("failed to save branding")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessResponse(ctx, dto.NewBrandingResponse(b))
}

func (s *service) SaveAbout(ctx *ginext.Context) {
	var req dto.AboutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, "Invalid JSON format")
		return
	}
	if verr := validator.Validate(ctx, req); verr != nil {
		dto.BadResponseError(ctx, dto.FieldIncorrect, fmt.Sprintf("%v", verr))
		return
	}

	current, err := s.store.About(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load about before save")
		dto.InternalServerError(ctx)
		return
	}
	a := model.About{
		About:   req.About,
		Mission: req.Mission,
		Vision:  req.Vision,
		Stat1:   req.Stat1,
		Stat2:   req.Stat2,
		Stat3:   req.Stat3,
		Stat4:   req.Stat4,
	}
	if current != nil {
		a.ID = current.ID
	}

	if err := s.store.SaveAbout(ctx, a); err != nil {
		s.log.Error().Err(err).Msg("failed to save about")
		dto.InternalServerError(ctx)
		return
	}
	dto.SuccessResponse(ctx, a)
}

func isCollection(kind store.Kind) bool {
	for _, k := range store.Collections() {
		if k == kind {
			return true
		}
	}
	return false
}
