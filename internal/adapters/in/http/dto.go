package http

import (
	"time"

	"treats/internal/core/application/usecases/queries"
	"treats/internal/core/domain/model/catalog"
	"treats/internal/core/domain/model/draft"
)

// ErrorResponse is the wire shape of every error payload.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// FormDataRequest carries the order-form fields over the wire. Missing fields
// decode to their zero values; normalization happens inside the domain, not
// here.
type FormDataRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	CommunicationMethod string `json:"communicationMethod"`
	PackageType         string `json:"packageType"`

	RiceKrispies int `json:"riceKrispies"`
	Oreos        int `json:"oreos"`
	Pretzels     int `json:"pretzels"`
	Marshmallows int `json:"marshmallows"`

	ColorScheme string `json:"colorScheme"`
	EventType   string `json:"eventType"`
	Theme       string `json:"theme"`
	DesignNotes string `json:"designNotes"`

	SelectedAdditionalDesigns []string `json:"selectedAdditionalDesigns"`

	PickupDate string `json:"pickupDate"`
	PickupTime string `json:"pickupTime"`

	ReferralSource string `json:"referralSource"`
	TermsAccepted  bool   `json:"termsAccepted"`

	VisitedSteps []string `json:"visitedSteps"`
	CurrentStep  int      `json:"currentStep"`
}

func (r FormDataRequest) toDomain() draft.FormData {
	return draft.FormData{
		FirstName:                 r.FirstName,
		LastName:                  r.LastName,
		Email:                     r.Email,
		Phone:                     r.Phone,
		CommunicationMethod:       r.CommunicationMethod,
		PackageType:               r.PackageType,
		RiceKrispies:              r.RiceKrispies,
		Oreos:                     r.Oreos,
		Pretzels:                  r.Pretzels,
		Marshmallows:              r.Marshmallows,
		ColorScheme:               r.ColorScheme,
		EventType:                 r.EventType,
		Theme:                     r.Theme,
		DesignNotes:               r.DesignNotes,
		SelectedAdditionalDesigns: r.SelectedAdditionalDesigns,
		PickupDate:                r.PickupDate,
		PickupTime:                r.PickupTime,
		ReferralSource:            r.ReferralSource,
		TermsAccepted:             r.TermsAccepted,
		VisitedSteps:              r.VisitedSteps,
		CurrentStep:               r.CurrentStep,
	}
}

// UpdateDraftRequest is a partial update. A nil part is left untouched; a
// non-nil empty orderNumber detaches the draft's order.
type UpdateDraftRequest struct {
	Form        *FormDataRequest `json:"form,omitempty"`
	CurrentStep *int             `json:"currentStep,omitempty"`
	OrderNumber *string          `json:"orderNumber,omitempty"`
}

// CreateDraftResponse returns the identifier assigned to a new draft.
type CreateDraftResponse struct {
	ID string `json:"id"`
}

// SubmitDraftResponse reports the outcome of a successful submission.
type SubmitDraftResponse struct {
	OrderNumber string    `json:"orderNumber"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// DraftSummaryResponse is one row of the draft listing.
type DraftSummaryResponse struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Email       string     `json:"email"`
	PackageType string     `json:"packageType"`
	PickupDate  string     `json:"pickupDate"`
	Rush        bool       `json:"rush"`
	OrderNumber *string    `json:"orderNumber,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

func draftSummaryFromQuery(row queries.ListDraftsQueryResponse) DraftSummaryResponse {
	return DraftSummaryResponse{
		ID:          row.ID.String(),
		Status:      row.Status,
		FirstName:   row.FirstName,
		LastName:    row.LastName,
		Email:       row.Email,
		PackageType: row.PackageType,
		PickupDate:  row.PickupDate,
		Rush:        row.Rush,
		OrderNumber: row.OrderNumber,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		SubmittedAt: row.SubmittedAt,
	}
}

// DraftResponse is the complete draft read model, form and details flattened
// back into the same shape the client submitted.
type DraftResponse struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Form   FormDataRequest `json:"form"`

	Rush        bool       `json:"rush"`
	OrderNumber *string    `json:"orderNumber,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	SubmittedAt *time.Time `json:"submittedAt,omitempty"`
}

func draftFromQuery(row queries.GetDraftQueryResponse) DraftResponse {
	return DraftResponse{
		ID:     row.ID.String(),
		Status: row.Status,
		Form: FormDataRequest{
			FirstName:                 row.FirstName,
			LastName:                  row.LastName,
			Email:                     row.Email,
			Phone:                     row.Phone,
			CommunicationMethod:       row.CommunicationMethod,
			PackageType:               row.PackageType,
			RiceKrispies:              row.RiceKrispies,
			Oreos:                     row.Oreos,
			Pretzels:                  row.Pretzels,
			Marshmallows:              row.Marshmallows,
			ColorScheme:               row.Details.ColorScheme,
			EventType:                 row.Details.EventType,
			Theme:                     row.Details.Theme,
			DesignNotes:               row.Details.DesignNotes,
			SelectedAdditionalDesigns: row.Details.SelectedDesigns,
			PickupDate:                row.PickupDate,
			PickupTime:                row.PickupTime,
			ReferralSource:            row.ReferralSource,
			TermsAccepted:             row.Details.TermsAccepted,
			VisitedSteps:              row.Details.VisitedSteps,
			CurrentStep:               row.Details.CurrentStep,
		},
		Rush:        row.Rush,
		OrderNumber: row.OrderNumber,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		SubmittedAt: row.SubmittedAt,
	}
}

// QuoteResponse is the price breakdown for a draft's current selections.
type QuoteResponse struct {
	PackagePrice float64 `json:"packagePrice"`
	DesignsPrice float64 `json:"designsPrice"`
	Total        float64 `json:"total"`
	Deposit      float64 `json:"deposit"`
	Balance      float64 `json:"balance"`
}

// Catalog wire types mirror the domain catalog entries one to one.
type (
	PackageOptionResponse struct {
		Key   string  `json:"key"`
		Label string  `json:"label"`
		Price float64 `json:"price"`
	}

	TreatOptionResponse struct {
		Key   string  `json:"key"`
		Label string  `json:"label"`
		Price float64 `json:"price"`
	}

	DesignOptionResponse struct {
		ID                 string   `json:"id"`
		Label              string   `json:"label"`
		BasePrice          float64  `json:"basePrice"`
		LargePriceIncrease float64  `json:"largePriceIncrease"`
		PerDozenPrice      *float64 `json:"perDozenPrice,omitempty"`
	}

	TimeSlotResponse struct {
		ID        string   `json:"id"`
		Label     string   `json:"label"`
		StartTime string   `json:"startTime"`
		EndTime   string   `json:"endTime"`
		Days      []string `json:"days"`
	}

	UnavailablePeriodResponse struct {
		ID        string `json:"id"`
		Reason    string `json:"reason"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}

	CatalogResponse struct {
		Packages           []PackageOptionResponse     `json:"packages"`
		Treats             []TreatOptionResponse       `json:"treats"`
		Designs            []DesignOptionResponse      `json:"designs"`
		TimeSlots          []TimeSlotResponse          `json:"timeSlots"`
		UnavailablePeriods []UnavailablePeriodResponse `json:"unavailablePeriods"`
	}
)

func catalogFromQuery(response queries.GetCatalogQueryResponse) CatalogResponse {
	out := CatalogResponse{
		Packages:           make([]PackageOptionResponse, len(response.Packages)),
		Treats:             make([]TreatOptionResponse, len(response.Treats)),
		Designs:            make([]DesignOptionResponse, len(response.Designs)),
		TimeSlots:          make([]TimeSlotResponse, len(response.TimeSlots)),
		UnavailablePeriods: make([]UnavailablePeriodResponse, len(response.UnavailablePeriods)),
	}

	for i, p := range response.Packages {
		out.Packages[i] = PackageOptionResponse{Key: p.Key, Label: p.Label, Price: p.Price}
	}
	for i, t := range response.Treats {
		out.Treats[i] = TreatOptionResponse{Key: t.Key, Label: t.Label, Price: t.Price}
	}
	for i, d := range response.Designs {
		out.Designs[i] = designOptionResponse(d)
	}
	for i, s := range response.TimeSlots {
		out.TimeSlots[i] = TimeSlotResponse{
			ID:        s.ID,
			Label:     s.Label,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Days:      s.Days,
		}
	}
	for i, p := range response.UnavailablePeriods {
		out.UnavailablePeriods[i] = UnavailablePeriodResponse{
			ID:        p.ID,
			Reason:    p.Reason,
			StartDate: p.StartDate,
			EndDate:   p.EndDate,
		}
	}

	return out
}

func designOptionResponse(d catalog.DesignOption) DesignOptionResponse {
	return DesignOptionResponse{
		ID:                 d.ID,
		Label:              d.Label,
		BasePrice:          d.BasePrice,
		LargePriceIncrease: d.LargePriceIncrease,
		PerDozenPrice:      d.PerDozenPrice,
	}
}
