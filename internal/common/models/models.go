package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Roles stored on the users profile row.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User represents an authenticated account plus its application profile.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	FullName     string    `db:"full_name" json:"full_name"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"` // "admin" or "user"
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Task difficulty levels.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Course represents a self-paced course offered on the platform.
type Course struct {
	ID           uuid.UUID      `db:"id" json:"id"`
	Title        string         `db:"title" json:"title"`
	Description  *string        `db:"description" json:"description"`
	Category     *string        `db:"category" json:"category"`
	Features     pq.StringArray `db:"features" json:"features"`
	Mentors      pq.StringArray `db:"mentors" json:"mentors"`
	Tags         pq.StringArray `db:"tags" json:"tags"`
	DurationDays *int           `db:"duration_days" json:"duration_days"`
	Difficulty   *string        `db:"difficulty" json:"difficulty"`
	ImageURL     *string        `db:"image_url" json:"image_url"`
	VideoURL     *string        `db:"video_url" json:"video_url"`
	IsPublished  bool           `db:"is_published" json:"is_published"`
	Slug         string         `db:"slug" json:"slug"`
	CreatedBy    *uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt    time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updated_at"`

	// Joined certificate templates, populated on list fetches.
	Certificates []CourseCertificate `db:"-" json:"course_certificates,omitempty"`
}

// CourseCertificate links a course to a certificate template.
type CourseCertificate struct {
	CourseID      uuid.UUID `db:"course_id" json:"course_id"`
	CertificateID uuid.UUID `db:"certificate_id" json:"certificate_id"`
	Name          string    `db:"name" json:"name"`
}

// Internship lifecycle states.
const (
	InternshipUpcoming  = "upcoming"
	InternshipOngoing   = "ongoing"
	InternshipCompleted = "completed"
)

// Price types.
const (
	PriceFree = "free"
	PricePaid = "paid"
)

// Internship modes.
const (
	ModeOnline  = "online"
	ModeOffline = "offline"
	ModeHybrid  = "hybrid"
)

// Internship represents a mentored internship program.
type Internship struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	Title            string          `db:"title" json:"title"`
	Description      *string         `db:"description" json:"description"`
	LongDescription  *string         `db:"long_description" json:"long_description"`
	DurationDays     *int            `db:"duration_days" json:"duration_days"`
	StartDate        *time.Time      `db:"start_date" json:"start_date"`
	EndDate          *time.Time      `db:"end_date" json:"end_date"`
	PriceType        string          `db:"price_type" json:"price_type"`
	PriceValue       int             `db:"price_value" json:"price_value"`
	Tags             pq.StringArray  `db:"tags" json:"tags"`
	Mentors          pq.StringArray  `db:"mentors" json:"mentors"`
	Features         pq.StringArray  `db:"features" json:"features"`
	Requirements     pq.StringArray  `db:"requirements" json:"requirements"`
	Benefits         pq.StringArray  `db:"benefits" json:"benefits"`
	Location         *string         `db:"location" json:"location"`
	Mode             string          `db:"mode" json:"mode"`
	ApplicationLink  *string         `db:"application_link" json:"application_link"`
	MaxApplicants    *int            `db:"max_applicants" json:"max_applicants"`
	Status           string          `db:"status" json:"status"`
	OrganizationName *string         `db:"organization_name" json:"organization_name"`
	Rating           float64         `db:"rating" json:"rating"`
	ReviewCount      int             `db:"review_count" json:"review_count"`
	ImageURL         *string         `db:"image_url" json:"image_url"`
	IsPublished      bool            `db:"is_published" json:"is_published"`
	Slug             string          `db:"slug" json:"slug"`
	CertTemplate     json.RawMessage `db:"certificate_template" json:"certificate_template,omitempty"`
	CreatedBy        *uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`

	// Derived view, recomputed on every detail fetch. Never persisted.
	Stats *InternshipStats `db:"-" json:"stats,omitempty"`
	Tasks []Task           `db:"-" json:"tasks,omitempty"`
}

// TasksByDifficulty partitions a task list by difficulty level.
type TasksByDifficulty struct {
	Easy   int `json:"easy"`
	Medium int `json:"medium"`
	Hard   int `json:"hard"`
}

// InternshipStats summarizes one internship's tasks, submissions and
// enrollment. All counts are derived from already-fetched rows.
type InternshipStats struct {
	TotalStudents       int               `json:"total_students"`
	ActiveStudents      int               `json:"active_students"`
	CompletedStudents   int               `json:"completed_students"`
	TotalTasks          int               `json:"total_tasks"`
	MandatoryTasks      int               `json:"mandatory_tasks"`
	TasksByDifficulty   TasksByDifficulty `json:"tasks_by_difficulty"`
	TotalSubmissions    int               `json:"total_submissions"`
	PendingSubmissions  int               `json:"pending_submissions"`
	ApprovedSubmissions int               `json:"approved_submissions"`
	RejectedSubmissions int               `json:"rejected_submissions"`
}

// Task represents a single internship task.
type Task struct {
	ID                 uuid.UUID      `db:"id" json:"id"`
	InternshipID       uuid.UUID      `db:"internship_id" json:"internship_id"`
	Title              string         `db:"title" json:"title"`
	Description        *string        `db:"description" json:"description"`
	OrderNo            *int           `db:"order_no" json:"order_no"`
	AssignedDay        int            `db:"assigned_day" json:"assigned_day"`
	ResourceLinks      pq.StringArray `db:"resource_links" json:"resource_links"`
	ReferenceLinks     pq.StringArray `db:"reference_links" json:"reference_links"`
	Hints              pq.StringArray `db:"hints" json:"hints"`
	AttachmentURLs     pq.StringArray `db:"attachment_urls" json:"attachment_urls"`
	ExpectedOutput     *string        `db:"expected_output" json:"expected_output"`
	SubmissionFormat   *string        `db:"submission_format" json:"submission_format"`
	EvaluationCriteria pq.StringArray `db:"evaluation_criteria" json:"evaluation_criteria"`
	EstimatedTimeHrs   *float64       `db:"estimated_time_hrs" json:"estimated_time_hrs"`
	DifficultyLevel    string         `db:"difficulty_level" json:"difficulty_level"`
	VideoTutorialURL   *string        `db:"video_tutorial_url" json:"video_tutorial_url"`
	Tags               pq.StringArray `db:"tags" json:"tags"`
	IsMandatory        bool           `db:"is_mandatory" json:"is_mandatory"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`

	// Nested submissions, populated by the internship detail fetch.
	Submissions []Submission `db:"-" json:"submissions,omitempty"`
}

// CourseTask mirrors Task but belongs to a course.
type CourseTask struct {
	ID                 uuid.UUID      `db:"id" json:"id"`
	CourseID           uuid.UUID      `db:"course_id" json:"course_id"`
	Title              string         `db:"title" json:"title"`
	Description        *string        `db:"description" json:"description"`
	OrderNo            *int           `db:"order_no" json:"order_no"`
	AssignedDay        int            `db:"assigned_day" json:"assigned_day"`
	ResourceLinks      pq.StringArray `db:"resource_links" json:"resource_links"`
	ReferenceLinks     pq.StringArray `db:"reference_links" json:"reference_links"`
	Hints              pq.StringArray `db:"hints" json:"hints"`
	AttachmentURLs     pq.StringArray `db:"attachment_urls" json:"attachment_urls"`
	ExpectedOutput     *string        `db:"expected_output" json:"expected_output"`
	SubmissionFormat   *string        `db:"submission_format" json:"submission_format"`
	EvaluationCriteria pq.StringArray `db:"evaluation_criteria" json:"evaluation_criteria"`
	EstimatedTimeHrs   *float64       `db:"estimated_time_hrs" json:"estimated_time_hrs"`
	DifficultyLevel    string         `db:"difficulty_level" json:"difficulty_level"`
	VideoTutorialURL   *string        `db:"video_tutorial_url" json:"video_tutorial_url"`
	Tags               pq.StringArray `db:"tags" json:"tags"`
	IsMandatory        bool           `db:"is_mandatory" json:"is_mandatory"`
	CreatedAt          time.Time      `db:"created_at" json:"created_at"`
}

// Submission review states. Pending is the initial state; approved and
// rejected are terminal as far as this system's operations go.
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Submission represents a student's answer to one task.
type Submission struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	TaskID        uuid.UUID      `db:"task_id" json:"task_id"`
	UserID        uuid.UUID      `db:"user_id" json:"user_id"`
	Status        string         `db:"status" json:"status"`
	SubmittedAt   time.Time      `db:"submitted_at" json:"submitted_at"`
	ReviewedAt    *time.Time     `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewerID    *uuid.UUID     `db:"reviewer_id" json:"reviewer_id,omitempty"`
	TextAnswer    *string        `db:"text_answer" json:"text_answer,omitempty"`
	CodeSnippet   *string        `db:"code_snippet" json:"code_snippet,omitempty"`
	ExternalLinks pq.StringArray `db:"external_links" json:"external_links,omitempty"`
	FileURL       *string        `db:"file_url" json:"file_url,omitempty"`
	ImageURLs     pq.StringArray `db:"image_urls" json:"image_urls,omitempty"`
	VideoURL      *string        `db:"video_url" json:"video_url,omitempty"`
}

// SubmissionOverview is the joined row shown on the review list: the
// submission plus student, task and internship context.
type SubmissionOverview struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	Status          string     `db:"status" json:"status"`
	SubmittedAt     time.Time  `db:"submitted_at" json:"submitted_at"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	TaskID          uuid.UUID  `db:"task_id" json:"task_id"`
	StudentName     string     `db:"student_name" json:"student_name"`
	TaskTitle       string     `db:"task_title" json:"task_title"`
	AssignedDay     int        `db:"assigned_day" json:"assigned_day"`
	InternshipID    uuid.UUID  `db:"internship_id" json:"internship_id"`
	InternshipTitle string     `db:"internship_title" json:"internship_title"`
	ReviewedAt      *time.Time `db:"reviewed_at" json:"reviewed_at,omitempty"`
	ReviewerID      *uuid.UUID `db:"reviewer_id" json:"reviewer_id,omitempty"`
}

// Subscription statuses for internship enrollment.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionCompleted = "completed"
)

// Subscription represents one student's enrollment in an internship.
type Subscription struct {
	ID           uuid.UUID `db:"id" json:"id"`
	InternshipID uuid.UUID `db:"internship_id" json:"internship_id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Status       string    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Mentor represents an invited mentor profile.
type Mentor struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	FullName           string     `db:"full_name" json:"full_name"`
	Email              string     `db:"email" json:"email"`
	Domain             string     `db:"domain" json:"domain"`
	Specialization     *string    `db:"specialization" json:"specialization,omitempty"`
	ExperienceYears    *int       `db:"experience_years" json:"experience_years,omitempty"`
	LinkedinURL        *string    `db:"linkedin_url" json:"linkedin_url,omitempty"`
	ProfilePhotoURL    *string    `db:"profile_photo_url" json:"profile_photo_url,omitempty"`
	Bio                *string    `db:"bio" json:"bio,omitempty"`
	AvailabilityStatus *string    `db:"availability_status" json:"availability_status,omitempty"`
	JoinedOn           time.Time  `db:"joined_on" json:"joined_on"`
	LastActive         *time.Time `db:"last_active" json:"last_active,omitempty"`
	Verified           bool       `db:"verified" json:"verified"`
	Rating             float64    `db:"rating" json:"rating"`
	ReviewCount        int        `db:"review_count" json:"review_count"`
}

// CertificateTemplate represents a reusable certificate design.
type CertificateTemplate struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	Name         string          `db:"name" json:"name"`
	PreviewURL   *string         `db:"preview_url" json:"preview_url"`
	TemplateJSON json.RawMessage `db:"template_json" json:"template_json"`
	TemplateHTML *string         `db:"template_html" json:"template_html"`
	CreatedBy    *uuid.UUID      `db:"created_by" json:"created_by"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
}

// DashboardStats holds the platform-wide totals shown on the admin
// dashboard. Task and submission counts combine the internship and course
// variants.
type DashboardStats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalCourses      int `json:"totalCourses"`
	TotalInternships  int `json:"totalInternships"`
	TotalTasks        int `json:"totalTasks"`
	TotalSubmissions  int `json:"totalSubmissions"`
	TotalCertificates int `json:"totalCertificates"`
}
