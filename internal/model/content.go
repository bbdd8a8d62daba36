package model

import "time"

// Collection names as stored. The public admin surface and the repository
// share these; free-form collection strings never reach the store.
const (
	CollectionExperiences     = "experiences"
	CollectionEducation       = "education"
	CollectionSkills          = "skills"
	CollectionProjects        = "projects"
	CollectionCertificates    = "certificates"
	CollectionBlogs           = "blogs"
	CollectionSocialLinks     = "socialLinks"
	CollectionProfilePictures = "profilePictures"
	CollectionContactMessages = "contactSubmissions"
)

// Skill categories accepted by the skills manager.
const (
	SkillCategoryFrontend = "frontend"
	SkillCategoryBackend  = "backend"
	SkillCategoryTools    = "tools"
)

// Contact message status values.
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// Experience is one resume entry; seed entries carry IsDefault.
type Experience struct {
	ID          string `json:"id,omitempty"`
	Period      string `json:"period"`
	Position    string `json:"position"`
	Company     string `json:"company"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

type Education struct {
	ID          string `json:"id,omitempty"`
	Year        string `json:"year"`
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault,omitempty"`
}

type Skill struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Category  string `json:"category,omitempty"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// Project holds an ordered technology list and an ordered image list.
// Legacy records stored a single imageUrl; reads lift it into Images.
type Project struct {
	ID           string   `json:"id,omitempty"`
	Number       int      `json:"number,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	LiveURL      string   `json:"liveUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	Images       []string `json:"images,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	IsDefault    bool     `json:"isDefault,omitempty"`
}

type Certificate struct {
	ID            string `json:"id,omitempty"`
	Title         string `json:"title"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date"`
	ImageURL      string `json:"imageUrl,omitempty"`
	CredentialURL string `json:"credentialUrl,omitempty"`
}

// BlogPost's slug is derived from the title unless edited by hand, and is
// unique across published and unpublished posts.
type BlogPost struct {
	ID         string    `json:"id,omitempty"`
	Title      string    `json:"title"`
	Slug       string    `json:"slug"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage,omitempty"`
	Published  bool      `json:"published"`
	CreatedAt  time.Time `json:"createdAt,omitempty"`
	UpdatedAt  time.Time `json:"updatedAt,omitempty"`
}

// SocialLink deletion is refused while IsDefault is set.
type SocialLink struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Icon      string `json:"icon"`
	Order     int    `json:"order"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// ProfilePicture is an append-only history entry; the most recent one is
// the current picture.
type ProfilePicture struct {
	ID         string `json:"id,omitempty"`
	URL        string `json:"url"`
	FileName   string `json:"fileName"`
	UploadedAt string `json:"uploadedAt"`
}

// ContactMessage is created by the public form only; admins toggle status
// and delete.
type ContactMessage struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
