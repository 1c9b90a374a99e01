package models

import "time"

// Animal adoption statuses as reported by the backend.
const (
	AnimalStatusAvailable = "Available"
	AnimalStatusReserved  = "Reserved"
	AnimalStatusAdopted   = "Adopted"
)

// Volunteer request statuses.
const (
	RequestStatusPending  = "Pending"
	RequestStatusApproved = "Approved"
	RequestStatusRejected = "Rejected"
)

type Species struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BreedCount  int    `json:"breedCount"`
}

type Breed struct {
	ID        string `json:"id"`
	SpeciesID string `json:"speciesId"`
	Name      string `json:"name"`
}

type Animal struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	SpeciesID   string     `json:"speciesId"`
	SpeciesName string     `json:"speciesName,omitempty"`
	BreedID     string     `json:"breedId,omitempty"`
	BreedName   string     `json:"breedName,omitempty"`
	Status      string     `json:"status"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	Description string     `json:"description,omitempty"`
	PhotoKey    string     `json:"photoKey,omitempty"`
}

// NewAnimal is the registration payload for an animal.
type NewAnimal struct {
	Name        string     `json:"name"`
	SpeciesID   string     `json:"speciesId"`
	BreedID     string     `json:"breedId,omitempty"`
	BirthDate   *time.Time `json:"birthDate,omitempty"`
	Description string     `json:"description,omitempty"`
	PhotoKey    string     `json:"photoKey,omitempty"`
}

type Volunteer struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	FullName  string           `json:"fullName"`
	AvatarURL string           `json:"avatarUrl,omitempty"`
	Profile   VolunteerProfile `json:"profile"`
	JoinedAt  time.Time        `json:"joinedAt"`
}

type VolunteerRequest struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FullName  string    `json:"fullName"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Discussion struct {
	ID            string    `json:"id"`
	Topic         string    `json:"topic"`
	CreatedAt     time.Time `json:"createdAt"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	MessageCount  int       `json:"messageCount"`
}

type Message struct {
	ID           string    `json:"id"`
	DiscussionID string    `json:"discussionId"`
	AuthorID     string    `json:"authorId"`
	AuthorName   string    `json:"authorName"`
	Text         string    `json:"text"`
	SentAt       time.Time `json:"sentAt"`
}

// PresignedUpload is the file service's grant for a direct client upload:
// a time-limited URL the client PUTs raw bytes to, bypassing the main API.
type PresignedUpload struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// StoredFile identifies an uploaded object.
type StoredFile struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}
