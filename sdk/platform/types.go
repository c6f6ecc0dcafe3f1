package platform

import (
	"net/url"
	"strconv"
	"time"
)

// ListParams carries the page/limit/filter state of a list request.
type ListParams struct {
	Page    int
	Limit   int
	Search  string
	Filters map[string]string
}

func (p ListParams) values() url.Values {
	v := url.Values{}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	for k, val := range p.Filters {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// Page is one page of a server-side paginated list.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	Banned      bool      `json:"banned"`
	BanReason   string    `json:"ban_reason,omitempty"`
	PlanID      string    `json:"plan_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type ProgrammingLanguage struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Version      string `json:"version"`
	JudgeID      string `json:"judge_id"`
	Enabled      bool   `json:"enabled"`
	DisplayOrder int    `json:"display_order"`
}

type LanguageInput struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	JudgeID string `json:"judge_id"`
	Enabled bool   `json:"enabled"`
}

// SubscriptionPlan holds localized names keyed by language tag ("en", "vi", ...).
// Price is a decimal string to avoid float rounding on the wire.
type SubscriptionPlan struct {
	ID           string                `json:"id"`
	Names        map[string]string     `json:"names"`
	Descriptions map[string]string     `json:"descriptions,omitempty"`
	Price        string                `json:"price"`
	Currency     string                `json:"currency"`
	DurationDays int                   `json:"duration_days"`
	Active       bool                  `json:"active"`
	Features     []SubscriptionFeature `json:"features,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}

type PlanInput struct {
	Names        map[string]string `json:"names"`
	Descriptions map[string]string `json:"descriptions,omitempty"`
	Price        string            `json:"price"`
	Currency     string            `json:"currency"`
	DurationDays int               `json:"duration_days"`
}

type SubscriptionFeature struct {
	ID           string            `json:"id"`
	PlanID       string            `json:"plan_id"`
	Key          string            `json:"key"`
	Names        map[string]string `json:"names,omitempty"`
	Value        string            `json:"value,omitempty"`
	DisplayOrder int               `json:"display_order"`
}

type FeatureInput struct {
	Key   string            `json:"key"`
	Names map[string]string `json:"names,omitempty"`
	Value string            `json:"value,omitempty"`
}

type PaymentTransaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PlanID      string    `json:"plan_id"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	Provider    string    `json:"provider"`
	ProviderRef string    `json:"provider_ref,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type Solution struct {
	ID           string    `json:"id"`
	ProblemID    string    `json:"problem_id"`
	ProblemTitle string    `json:"problem_title"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	LanguageID   string    `json:"language_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	UserVote     int       `json:"user_vote"`
	CreatedAt    time.Time `json:"created_at"`
}

type Post struct {
	ID           string    `json:"id"`
	AuthorID     string    `json:"author_id"`
	AuthorName   string    `json:"author_name"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Tags         []string  `json:"tags,omitempty"`
	Pinned       bool      `json:"pinned"`
	CommentCount int       `json:"comment_count"`
	Upvotes      int       `json:"upvotes"`
	Downvotes    int       `json:"downvotes"`
	CreatedAt    time.Time `json:"created_at"`
}

type Comment struct {
	ID         string    `json:"id"`
	PostID     string    `json:"post_id"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	Upvotes    int       `json:"upvotes"`
	Downvotes  int       `json:"downvotes"`
	UserVote   int       `json:"user_vote"`
	CreatedAt  time.Time `json:"created_at"`
}

// AIPrompt maps a platform feature (hint generation, code review, ...) to a model and template.
type AIPrompt struct {
	ID          string    `json:"id"`
	FeatureKey  string    `json:"feature_key"`
	Model       string    `json:"model"`
	Template    string    `json:"template"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PromptInput struct {
	FeatureKey  string `json:"feature_key"`
	Model       string `json:"model"`
	Template    string `json:"template"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
}

type ProblemReport struct {
	ID            string     `json:"id"`
	ProblemID     string     `json:"problem_id"`
	ProblemTitle  string     `json:"problem_title"`
	ReporterID    string     `json:"reporter_id"`
	ReporterEmail string     `json:"reporter_email,omitempty"`
	Category      string     `json:"category"`
	Message       string     `json:"message"`
	Status        string     `json:"status"`
	Resolution    string     `json:"resolution,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty"`
}

// VoteResult is the server's view of a vote after it was applied.
type VoteResult struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
	UserVote  int `json:"user_vote"`
}

type LoginResult struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	User        User   `json:"user"`
}
