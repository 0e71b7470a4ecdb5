package output

import (
	"time"

	"github.com/manav03panchal/ctt/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// CompanyOutput represents a company in JSON output.
type CompanyOutput struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	IsFavorite     bool   `json:"is_favorite"`
	LastUsed       string `json:"last_used,omitempty"`
	ElapsedSeconds int64  `json:"elapsed_seconds"`
	Elapsed        string `json:"elapsed"`
}

// NewCompanyOutput creates a CompanyOutput from a Company.
func NewCompanyOutput(c model.Company, seconds int64) *CompanyOutput {
	out := &CompanyOutput{
		ID:             c.ID,
		Name:           c.Name,
		IsFavorite:     c.IsFavorite,
		ElapsedSeconds: seconds,
		Elapsed:        FormatElapsed(seconds),
	}
	if c.HasBeenUsed() {
		out.LastUsed = c.LastUsedTime().Format(time.RFC3339)
	}
	return out
}

// CommentOutput represents a note in JSON output.
type CommentOutput struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Company   string `json:"company,omitempty"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// NewCommentOutput creates a CommentOutput from a Comment.
func NewCommentOutput(c model.Comment, companyName string) *CommentOutput {
	return &CommentOutput{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		Company:   companyName,
		Text:      c.Text,
		Timestamp: c.Time().Format(time.RFC3339),
	}
}

// StatusResponse represents the status output in JSON.
type StatusResponse struct {
	Status  string         `json:"status"`
	Company *CompanyOutput `json:"company,omitempty"`
}

// CompaniesResponse represents the companies list output in JSON.
type CompaniesResponse struct {
	Companies  []*CompanyOutput `json:"companies"`
	TotalCount int              `json:"total_count"`
}

// CommentsResponse represents the notes list output in JSON.
type CommentsResponse struct {
	Notes      []*CommentOutput `json:"notes"`
	TotalCount int              `json:"total_count"`
}

// ExportResponse represents the export command output in JSON.
type ExportResponse struct {
	Status string `json:"status"`
	Path   string `json:"path"`
}

// ImportResponse represents the import command output in JSON.
type ImportResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Companies int    `json:"companies,omitempty"`
	Notes     int    `json:"notes,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintStatus outputs status in JSON format.
func (j *JSONFormatter) PrintStatus(active *model.Company, seconds int64) error {
	resp := StatusResponse{Status: "idle"}
	if active != nil {
		resp.Status = "tracking"
		resp.Company = NewCompanyOutput(*active, seconds)
	}
	return j.JSON(resp)
}

// PrintCompanies outputs companies in JSON format.
func (j *JSONFormatter) PrintCompanies(companies []model.Company, timeLog model.TimeLog) error {
	outputs := make([]*CompanyOutput, len(companies))
	for i, c := range companies {
		outputs[i] = NewCompanyOutput(c, timeLog.Seconds(c.ID))
	}
	return j.JSON(CompaniesResponse{Companies: outputs, TotalCount: len(companies)})
}

// PrintCompany outputs a single company in JSON format.
func (j *JSONFormatter) PrintCompany(company model.Company, seconds int64) error {
	return j.JSON(NewCompanyOutput(company, seconds))
}

// PrintComments outputs notes in JSON format.
func (j *JSONFormatter) PrintComments(comments []model.Comment, names map[int64]string) error {
	outputs := make([]*CommentOutput, len(comments))
	for i, c := range comments {
		outputs[i] = NewCommentOutput(c, names[c.CompanyID])
	}
	return j.JSON(CommentsResponse{Notes: outputs, TotalCount: len(comments)})
}

// PrintComment outputs a single note in JSON format.
func (j *JSONFormatter) PrintComment(comment model.Comment, companyName string) error {
	return j.JSON(NewCommentOutput(comment, companyName))
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	return j.JSON(ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	})
}
