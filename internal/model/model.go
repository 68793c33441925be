package model

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Sponsor tiers.
const (
	SponsorTitle     = "Title"
	SponsorGold      = "Gold"
	SponsorSilver    = "Silver"
	SponsorSupporter = "Supporter"
)

type Event struct {
	ID                 string `db:"id" json:"id"`
	Name               string `db:"name" json:"name"`
	Category           string `db:"category" json:"category"`
	Date               string `db:"date" json:"date"`
	Time               string `db:"time" json:"time"`
	Description        string `db:"description" json:"description"`
	PosterURL          string `db:"poster_url" json:"poster_url"`
	LogoURL            string `db:"logo_url" json:"logo_url"`
	AccentColor        string `db:"accent_color" json:"accent_color"`
	RegistrationURL    string `db:"registration_url" json:"registration_url,omitempty"`
	EnableRegistration bool   `db:"enable_registration" json:"enable_registration"`
	FAQs               []FAQ  `db:"-" json:"faqs,omitempty"`
}

// FAQ entries belong to exactly one event and render in ascending priority.
type FAQ struct {
	ID       string `db:"id" json:"id"`
	EventID  string `db:"event_id" json:"event_id"`
	Question string `db:"question" json:"question"`
	Answer   string `db:"answer" json:"answer"`
	Priority int    `db:"priority" json:"priority"`
}

// Announcement priority is stored numerically; higher sorts first. The legacy
// high/medium/low labels map onto 3/2/1 at the DTO boundary.
type Announcement struct {
	ID       string `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Content  string `db:"content" json:"content"`
	Date     string `db:"date" json:"date"`
	Priority int    `db:"priority" json:"priority"`
}

type GalleryImage struct {
	ID        string `db:"id" json:"id"`
	ImageURL  string `db:"image_url" json:"image_url"`
	Caption   string `db:"caption" json:"caption,omitempty"`
	Year      string `db:"year" json:"year,omitempty"`
	EventName string `db:"event_name" json:"event_name,omitempty"`
}

type Sponsor struct {
	ID       string `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Category string `db:"category" json:"category"`
	LogoURL  string `db:"logo_url" json:"logo_url"`
	Website  string `db:"website" json:"website,omitempty"`
}

type TeamMember struct {
	ID         string `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Role       string `db:"role" json:"role"`
	Department string `db:"department" json:"department,omitempty"`
	Phone      string `db:"phone" json:"phone,omitempty"`
	PhotoURL   string `db:"photo_url" json:"photo_url"`
	Type       string `db:"type" json:"type"`
}

// Branding is a singleton row: fest identity plus the hero-section CMS copy.
type Branding struct {
	ID                string `db:"id" json:"id"`
	FestName          string `db:"fest_name" json:"fest_name"`
	CollegeName       string `db:"college_name" json:"college_name"`
	Location          string `db:"location" json:"location"`
	LogoURL           string `db:"logo_url" json:"logo_url"`
	GlowColor         string `db:"glow_color" json:"glow_color"`
	HeroTitle         string `db:"hero_title" json:"hero_title"`
	HeroSubtitle      string `db:"hero_subtitle" json:"hero_subtitle"`
	HeroDate          string `db:"hero_date" json:"hero_date"`
	HeroVenue         string `db:"hero_venue" json:"hero_venue"`
	FestIntro         string `db:"fest_intro" json:"fest_intro"`
	FestTheme         string `db:"fest_theme" json:"fest_theme"`
	FestHighlights    string `db:"fest_highlights" json:"fest_highlights"`
	CountdownDatetime string `db:"countdown_datetime" json:"countdown_datetime"`
}

// About is a singleton row of narrative copy and four freeform stat strings.
type About struct {
	ID      string `db:"id" json:"id"`
	About   string `db:"about" json:"about"`
	Mission string `db:"mission" json:"mission"`
	Vision  string `db:"vision" json:"vision"`
	Stat1   string `db:"stat1" json:"stat1"`
	Stat2   string `db:"stat2" json:"stat2"`
	Stat3   string `db:"stat3" json:"stat3"`
	Stat4   string `db:"stat4" json:"stat4"`
}

type UserRole struct {
	ID     string `db:"id" json:"id"`
	UserID string `db:"user_id" json:"user_id"`
	Role   string `db:"role" json:"role"`
}
