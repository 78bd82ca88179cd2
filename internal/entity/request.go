package entity

import (
	"context"
	"regexp"
)

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *CreateUserRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}
	if r.Email == "" {
		problems["Email"] = append(problems["Email"], "Email is required")
	}

	if r.Username == "" {
		problems["Username"] = append(problems["Username"], "Username is required")
	}

	if len(r.Username) > 16 {
		problems["Username"] = append(problems["Username"], "User name is too long")
	}

	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	if len([]byte(r.Password)) > 72 {
		problems["Password"] = append(problems["Password"], "Password length should not exceed 72 bytes")
	}

	return problems
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (r *SignInRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Email == "" && r.Username == "" {
		problems["Email/Username"] = append(problems["Email/Username"], "Either Email or Username is required")
	}

	if r.Email != "" {
		emailRegex := `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
		if !regexp.MustCompile(emailRegex).MatchString(r.Email) {
			problems["Email"] = append(problems["Email"], "Invalid email format")
		}
	}

	if r.Password == "" {
		problems["Password"] = append(problems["Password"], "Password is required")
	}

	return problems
}

type UpsertProfileRequest struct {
	Name     string `json:"name"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	AgeYears int    `json:"age_years"`
	Bio      string `json:"bio"`
	PhotoURL string `json:"photo_url"`
}

func (r *UpsertProfileRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Name == "" {
		problems["Name"] = append(problems["Name"], "Name is required")
	}

	if r.Species == "" {
		problems["Species"] = append(problems["Species"], "Species is required")
	}

	if r.AgeYears < 0 {
		problems["AgeYears"] = append(problems["AgeYears"], "Age cannot be negative")
	}

	return problems
}

type SwipeRequest struct {
	ProfileID uint   `json:"profile_id"`
	Decision  string `json:"decision"` // "like" or "pass"
}

type FeedRequest struct {
	ExcludeProfiles []int `json:"exclude_profiles"`
}

type SendGiftRequest struct {
	PetID uint   `json:"pet_id"`
	Kind  string `json:"kind"`
}

type SendMessageRequest struct {
	Body string `json:"body"`
}

func (r *SendMessageRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Body == "" {
		problems["Body"] = append(problems["Body"], "Body is required")
	}

	return problems
}

type StartStreamRequest struct {
	Title    string `json:"title"`
	CoverURL string `json:"cover_url"`
}

func (r *StartStreamRequest) Validate(ctx context.Context) (problems map[string][]string) {
	problems = make(map[string][]string)

	if r.Title == "" {
		problems["Title"] = append(problems["Title"], "Title is required")
	}

	return problems
}
