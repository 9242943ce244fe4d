package models

// PackageRest is a purchasable licensing package from the static catalog
type PackageRest struct {
	ID           string   `json:"id"            validate:"required"`
	Country      string   `json:"country"       validate:"required"`
	Price        string   `json:"price"         validate:"required"`
	DisplayPrice string   `json:"display_price"`
	Description  string   `json:"description"`
	Timeline     []string `json:"timeline"`
}

// AppointmentSlotRest is a bookable appointment slot
type AppointmentSlotRest struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Fee       string `json:"fee"`
	Available bool   `json:"available"`
}

// VoucherSlotRest is a purchasable reservation for a third-party exam
// booking, priced in USD
type VoucherSlotRest struct {
	ID            string `json:"id"`
	ExamAuthority string `json:"exam_authority"`
	ExamDate      string `json:"exam_date"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	FinalPriceUSD string `json:"final_price"`
	Available     bool   `json:"available"`
}

// MilestoneSurchargeRest is an additional fee attached to one step of an
// already-submitted case
type MilestoneSurchargeRest struct {
	ID               string `json:"id"`
	CaseID           string `json:"case_id"`
	Name             string `json:"name"`
	AdditionalCharge string `json:"additional_charge"`
}

// DocumentCostRest is a single priced document within an
// additional-documents request
type DocumentCostRest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// AdditionalDocumentsRest is a request for extra documents, priced per
// document
type AdditionalDocumentsRest struct {
	Documents []DocumentCostRest `json:"documents"`
	TotalCost string             `json:"total_cost"`
}
