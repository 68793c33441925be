package localstore

import "aadhrita/internal/model"

// Default content written on first run so a fresh install renders a complete
// site before any admin has touched the panel.

var defaultBranding = model.Branding{
	ID:             "1",
	FestName:       "AADHRITA – 2026",
	CollegeName:    "National Institute of Technology",
	Location:       "Delhi",
	GlowColor:      "#7c3aed",
	HeroTitle:      "AADHRITA – 2026",
	HeroSubtitle:   "Where Innovation Meets Excellence",
	HeroDate:       "March 15-17, 2026",
	HeroVenue:      "National Institute of Technology, Delhi",
	FestTheme:      "Where Innovation Meets Excellence",
	FestHighlights: "50+ Technical Events,100+ Colleges Participating,₹10 Lakh Prize Pool,3 Days of Innovation",
}

var defaultAbout = model.About{
	ID:      "1",
	About:   "AADHRITA 2026 is the flagship national-level technical fest that brings together the brightest minds from across the country. Experience three days of intense competition, learning, and networking.",
	Mission: "To foster innovation, creativity, and technical excellence among students while providing a platform for showcasing cutting-edge technologies.",
	Vision:  "To become the premier technical fest in India, inspiring the next generation of engineers, scientists, and innovators.",
	Stat1:   "50+ Technical Events",
	Stat2:   "100+ Colleges Participating",
	Stat3:   "₹10 Lakh Prize Pool",
	Stat4:   "3 Days of Innovation",
}

var defaultEvents = []model.Event{
	{
		ID:          "1",
		Name:        "CodeStorm",
		Category:    "Coding",
		Date:        "March 15, 2026",
		Time:        "10:00 AM",
		Description: "An intense 24-hour hackathon where teams compete to build innovative solutions for real-world problems.",
		PosterURL:   "https://images.unsplash.com/photo-1504384308090-c894fdcc538d?w=800",
	},
	{
		ID:          "2",
		Name:        "RoboWars",
		Category:    "Robotics",
		Date:        "March 16, 2026",
		Time:        "2:00 PM",
		Description: "Battle robots clash in an arena of destruction. Design, build, and fight your way to victory.",
		PosterURL:   "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=800",
	},
	{
		ID:          "3",
		Name:        "TechQuiz",
		Category:    "Quiz",
		Date:        "March 15, 2026",
		Time:        "3:00 PM",
		Description: "Test your knowledge across domains - from quantum computing to ancient algorithms.",
		PosterURL:   "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=800",
	},
	{
		ID:          "4",
		Name:        "DesignX",
		Category:    "Design",
		Date:        "March 16, 2026",
		Time:        "10:00 AM",
		Description: "Showcase your UI/UX skills by designing solutions that are both beautiful and functional.",
		PosterURL:   "https://images.unsplash.com/photo-1561070791-2526d30994b5?w=800",
	},
	{
		ID:          "5",
		Name:        "CryptoHunt",
		Category:    "Puzzle",
		Date:        "March 17, 2026",
		Time:        "11:00 AM",
		Description: "Decode ciphers, crack puzzles, and hunt for the ultimate treasure in this cryptography challenge.",
		PosterURL:   "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=800",
	},
	{
		ID:          "6",
		Name:        "AI Summit",
		Category:    "AI/ML",
		Date:        "March 17, 2026",
		Time:        "9:00 AM",
		Description: "Present your AI/ML projects and compete for the best innovation in artificial intelligence.",
		PosterURL:   "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=800",
	},
}

var defaultFAQs = []model.FAQ{
	{ID: "1", EventID: "1", Question: "What is the team size?", Answer: "Teams of 2-4 members.", Priority: 1},
	{ID: "2", EventID: "1", Question: "Do I need my own laptop?", Answer: "Yes, bring your own laptops. Internet access is provided.", Priority: 2},
	{ID: "3", EventID: "2", Question: "Is there a weight limit?", Answer: "Robot weight limit is 15kg, remote controlled only.", Priority: 1},
}

var defaultAnnouncements = []model.Announcement{
	{
		ID:       "1",
		Title:    "Early Bird Registration Open!",
		Content:  "Register before February 28th and get 30% off on all events. Limited slots available!",
		Date:     "2026-01-15",
		Priority: 3,
	},
	{
		ID:       "2",
		Title:    "Workshop Series Announced",
		Content:  "Join our pre-fest workshops on AI, Blockchain, and Cloud Computing starting February 1st.",
		Date:     "2026-01-20",
		Priority: 2,
	},
	{
		ID:       "3",
		Title:    "Accommodation Available",
		Content:  "On-campus accommodation now available for outstation participants. Book your stay today!",
		Date:     "2026-01-25",
		Priority: 1,
	},
}

var defaultGallery = []model.GalleryImage{
	{ID: "1", ImageURL: "https://images.unsplash.com/photo-1540575467063-178a50c2df87?w=800", Caption: "Opening Ceremony 2025", Year: "2025"},
	{ID: "2", ImageURL: "https://images.unsplash.com/photo-1475721027785-f74eccf877e2?w=800", Caption: "Hackathon Arena", Year: "2025"},
	{ID: "3", ImageURL: "https://images.unsplash.com/photo-1515187029135-18ee286d815b?w=800", Caption: "Tech Talks Session", Year: "2025"},
	{ID: "4", ImageURL: "https://images.unsplash.com/photo-1591115765373-5207764f72e7?w=800", Caption: "Robotics Workshop", Year: "2025"},
	{ID: "5", ImageURL: "https://images.unsplash.com/photo-1505373877841-8d25f7d46678?w=800", Caption: "Prize Distribution", Year: "2025"},
	{ID: "6", ImageURL: "https://images.unsplash.com/photo-1559223607-a43c990c692c?w=800", Caption: "Cultural Night", Year: "2025"},
}

var defaultSponsors = []model.Sponsor{
	{ID: "1", Name: "TechCorp", Category: model.SponsorTitle, LogoURL: ""},
	{ID: "2", Name: "InnovateX", Category: model.SponsorGold, LogoURL: ""},
	{ID: "3", Name: "CloudNine", Category: model.SponsorSilver, LogoURL: ""},
}

var defaultTeam = []model.TeamMember{
	{ID: "1", Name: "Dr. A. Sharma", Role: "Faculty Coordinator", Department: "CSE", Type: "faculty"},
	{ID: "2", Name: "R. Verma", Role: "Student Convener", Department: "ECE", Type: "student"},
}
