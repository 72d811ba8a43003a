package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"time"

	uuid "github.com/satori/go.uuid"
)

// UpdateFrequency describes how often a dataset is refreshed at the source.
type UpdateFrequency string

// Valid update frequencies
const (
	Never    UpdateFrequency = "never"
	Realtime UpdateFrequency = "realtime"
	Daily    UpdateFrequency = "daily"
	Weekly   UpdateFrequency = "weekly"
	Monthly  UpdateFrequency = "monthly"
	Yearly   UpdateFrequency = "yearly"
)

// PublicationRestriction describes whether a dataset record may be published.
type PublicationRestriction string

// Valid publication restrictions
const (
	NoRestriction    PublicationRestriction = "no_restriction"
	Draft            PublicationRestriction = "draft"
	LegalRestriction PublicationRestriction = "legal_restriction"
)

// Organization represents a government organization, keyed by SIRET.
type Organization struct {
	Siret   string `bson:"_id"      json:"siret"`
	Name    string `bson:"name"     json:"name"`
	LogoURL string `bson:"logo_url" json:"logo_url"`
}

// Tag represents a keyword attachable to datasets.
type Tag struct {
	ID   string `bson:"_id"  json:"id"`
	Name string `bson:"name" json:"name"`
}

// DataFormat represents a format a dataset is made available in.
type DataFormat struct {
	ID   int    `bson:"_id"  json:"id"`
	Name string `bson:"name" json:"name"`
}

// CatalogRecord holds the metadata about a dataset's addition to the
// catalogue: when it was created and which organization owns it.
type CatalogRecord struct {
	CreatedAt    time.Time    `bson:"created_at"   json:"created_at"`
	Organization Organization `bson:"organization" json:"organization"`
}

// Dataset represents a single catalogued dataset record.
type Dataset struct {
	ID                     string                 `bson:"_id"                     json:"id"`
	CatalogRecord          CatalogRecord          `bson:"catalog_record"          json:"catalog_record"`
	Title                  string                 `bson:"title"                   json:"title"`
	Description            string                 `bson:"description"             json:"description"`
	Service                string                 `bson:"service"                 json:"service"`
	GeographicalCoverage   string                 `bson:"geographical_coverage"   json:"geographical_coverage"`
	Formats                []DataFormat           `bson:"formats"                 json:"formats"`
	TechnicalSource        *string                `bson:"technical_source"        json:"technical_source"`
	ProducerEmail          *string                `bson:"producer_email"          json:"producer_email"`
	ContactEmails          []string               `bson:"contact_emails"          json:"contact_emails"`
	UpdateFrequency        *UpdateFrequency       `bson:"update_frequency"        json:"update_frequency"`
	LastUpdatedAt          *time.Time             `bson:"last_updated_at"         json:"last_updated_at"`
	URL                    *string                `bson:"url"                     json:"url"`
	License                *string                `bson:"license"                 json:"license"`
	Tags                   []Tag                  `bson:"tags"                    json:"tags"`
	ExtraFieldValues       []ExtraFieldValue      `bson:"extra_field_values"      json:"extra_field_values"`
	PublicationRestriction PublicationRestriction `bson:"publication_restriction" json:"publication_restriction"`
}

// DatasetResults represents a structure for a list of datasets
type DatasetResults struct {
	Items []*Dataset `json:"items"`
}

// DatasetSubmission is the request body for creating or fully replacing a
// dataset. References to formats and tags are submitted by id and resolved
// against the reference collections on write.
type DatasetSubmission struct {
	OrganizationSiret      string                  `json:"organization_siret,omitempty"`
	Title                  string                  `json:"title"`
	Description            string                  `json:"description"`
	Service                string                  `json:"service"`
	GeographicalCoverage   string                  `json:"geographical_coverage"`
	FormatIDs              []int                   `json:"format_ids"`
	TagIDs                 []string                `json:"tag_ids"`
	TechnicalSource        *string                 `json:"technical_source"`
	ProducerEmail          *string                 `json:"producer_email"`
	ContactEmails          []string                `json:"contact_emails"`
	UpdateFrequency        *UpdateFrequency        `json:"update_frequency"`
	LastUpdatedAt          *time.Time              `json:"last_updated_at"`
	URL                    *string                 `json:"url"`
	License                *string                 `json:"license"`
	ExtraFieldValues       []ExtraFieldValue       `json:"extra_field_values"`
	PublicationRestriction *PublicationRestriction `json:"publication_restriction"`
}

// CreateDatasetSubmission manages the creation of a dataset submission from a reader
func CreateDatasetSubmission(reader io.Reader) (*DatasetSubmission, error) {
	b, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.New("failed to read message body")
	}

	var submission DatasetSubmission
	if err = json.Unmarshal(b, &submission); err != nil {
		return nil, errors.New("failed to parse json body")
	}

	submission.CoerceEmptyOptionals()

	return &submission, nil
}

// CoerceEmptyOptionals maps empty string inputs for optional fields to nil.
// The backend distinguishes "not set" from "empty string" and only accepts
// the former, e.g. for a cleared select or date input.
func (s *DatasetSubmission) CoerceEmptyOptionals() {
	s.ProducerEmail = nilIfEmpty(s.ProducerEmail)
	s.URL = nilIfEmpty(s.URL)
	s.License = nilIfEmpty(s.License)
	s.TechnicalSource = nilIfEmpty(s.TechnicalSource)

	if s.UpdateFrequency != nil && *s.UpdateFrequency == "" {
		s.UpdateFrequency = nil
	}
}

func nilIfEmpty(value *string) *string {
	if value != nil && *value == "" {
		return nil
	}
	return value
}

// ValidateDatasetSubmission checks the content of the submission structure.
// forCreate additionally requires the owning organization's SIRET, which a
// full-replace update takes from the existing catalog record instead.
func ValidateDatasetSubmission(submission *DatasetSubmission, forCreate bool) error {
	var missingFields []string

	if forCreate && submission.OrganizationSiret == "" {
		missingFields = append(missingFields, "organization_siret")
	}
	if submission.Title == "" {
		missingFields = append(missingFields, "title")
	}
	if submission.Description == "" {
		missingFields = append(missingFields, "description")
	}
	if submission.Service == "" {
		missingFields = append(missingFields, "service")
	}
	if submission.GeographicalCoverage == "" {
		missingFields = append(missingFields, "geographical_coverage")
	}
	if len(submission.FormatIDs) == 0 {
		missingFields = append(missingFields, "format_ids")
	}

	if missingFields != nil {
		return fmt.Errorf("missing mandatory fields: %v", missingFields)
	}

	if submission.UpdateFrequency != nil {
		if err := ValidateUpdateFrequency(*submission.UpdateFrequency); err != nil {
			return err
		}
	}

	if submission.PublicationRestriction != nil {
		if err := ValidatePublicationRestriction(*submission.PublicationRestriction); err != nil {
			return err
		}
	}

	var invalidEmails []string
	if submission.ProducerEmail != nil && !looksLikeEmail(*submission.ProducerEmail) {
		invalidEmails = append(invalidEmails, *submission.ProducerEmail)
	}
	for _, email := range submission.ContactEmails {
		if !looksLikeEmail(email) {
			invalidEmails = append(invalidEmails, email)
		}
	}
	if invalidEmails != nil {
		return fmt.Errorf("invalid email addresses: %v", invalidEmails)
	}

	return nil
}

// ValidateUpdateFrequency checks the frequency is a known enum value
func ValidateUpdateFrequency(frequency UpdateFrequency) error {
	switch frequency {
	case Never, Realtime, Daily, Weekly, Monthly, Yearly:
		return nil
	}
	return fmt.Errorf("incorrect update frequency, can be one of the following: never, realtime, daily, weekly, monthly or yearly, got: %v", frequency)
}

// ValidatePublicationRestriction checks the restriction is a known enum value
func ValidatePublicationRestriction(restriction PublicationRestriction) error {
	switch restriction {
	case NoRestriction, Draft, LegalRestriction:
		return nil
	}
	return fmt.Errorf("incorrect publication restriction, can be one of the following: no_restriction, draft or legal_restriction, got: %v", restriction)
}

func looksLikeEmail(address string) bool {
	_, err := mail.ParseAddress(address)
	return err == nil
}

// NewDataset builds a dataset record from a validated submission and the
// resolved reference entities. The caller resolves format and tag ids first.
func NewDataset(submission *DatasetSubmission, organization Organization, formats []DataFormat, tags []Tag) *Dataset {
	restriction := NoRestriction
	if submission.PublicationRestriction != nil {
		restriction = *submission.PublicationRestriction
	}

	return &Dataset{
		ID: uuid.Must(uuid.NewV4()).String(),
		CatalogRecord: CatalogRecord{
			CreatedAt:    time.Now().UTC(),
			Organization: organization,
		},
		Title:                  submission.Title,
		Description:            submission.Description,
		Service:                submission.Service,
		GeographicalCoverage:   submission.GeographicalCoverage,
		Formats:                formats,
		TechnicalSource:        submission.TechnicalSource,
		ProducerEmail:          submission.ProducerEmail,
		ContactEmails:          submission.ContactEmails,
		UpdateFrequency:        submission.UpdateFrequency,
		LastUpdatedAt:          submission.LastUpdatedAt,
		URL:                    submission.URL,
		License:                submission.License,
		Tags:                   tags,
		ExtraFieldValues:       submission.ExtraFieldValues,
		PublicationRestriction: restriction,
	}
}

// Apply replaces every descriptive field of the dataset with the submission's
// content. PUT is a full replace: the catalog record and id are kept, all
// other fields are overwritten including ones the submission left null.
func (d *Dataset) Apply(submission *DatasetSubmission, formats []DataFormat, tags []Tag) {
	restriction := NoRestriction
	if submission.PublicationRestriction != nil {
		restriction = *submission.PublicationRestriction
	}

	d.Title = submission.Title
	d.Description = submission.Description
	d.Service = submission.Service
	d.GeographicalCoverage = submission.GeographicalCoverage
	d.Formats = formats
	d.TechnicalSource = submission.TechnicalSource
	d.ProducerEmail = submission.ProducerEmail
	d.ContactEmails = submission.ContactEmails
	d.UpdateFrequency = submission.UpdateFrequency
	d.LastUpdatedAt = submission.LastUpdatedAt
	d.URL = submission.URL
	d.License = submission.License
	d.Tags = tags
	d.ExtraFieldValues = submission.ExtraFieldValues
	d.PublicationRestriction = restriction
}
