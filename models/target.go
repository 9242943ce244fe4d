package models

import "fmt"

// TargetKind discriminates the purchase target union
type TargetKind string

// All purchase target kinds
const (
	TargetPackage             TargetKind = "package"
	TargetAppointmentSlot     TargetKind = "appointment-slot"
	TargetVoucherSlot         TargetKind = "voucher-slot"
	TargetMilestoneSurcharge  TargetKind = "milestone-surcharge"
	TargetAdditionalDocuments TargetKind = "additional-documents"
)

// PurchaseTarget is the single object being paid for in a checkout session.
// Exactly one variant matching Kind is populated; the constructors below are
// the only supported way to build one.
type PurchaseTarget struct {
	Kind                TargetKind               `json:"kind"`
	Package             *PackageRest             `json:"package,omitempty"`
	AppointmentSlot     *AppointmentSlotRest     `json:"appointment_slot,omitempty"`
	VoucherSlot         *VoucherSlotRest         `json:"voucher_slot,omitempty"`
	MilestoneSurcharge  *MilestoneSurchargeRest  `json:"milestone_surcharge,omitempty"`
	AdditionalDocuments *AdditionalDocumentsRest `json:"additional_documents,omitempty"`
}

// NewPackageTarget returns a target for a catalog package purchase
func NewPackageTarget(p *PackageRest) PurchaseTarget {
	return PurchaseTarget{Kind: TargetPackage, Package: p}
}

// NewAppointmentSlotTarget returns a target for an appointment booking
func NewAppointmentSlotTarget(s *AppointmentSlotRest) PurchaseTarget {
	return PurchaseTarget{Kind: TargetAppointmentSlot, AppointmentSlot: s}
}

// NewVoucherSlotTarget returns a target for an exam voucher purchase
func NewVoucherSlotTarget(s *VoucherSlotRest) PurchaseTarget {
	return PurchaseTarget{Kind: TargetVoucherSlot, VoucherSlot: s}
}

// NewMilestoneSurchargeTarget returns a target for a case milestone surcharge
func NewMilestoneSurchargeTarget(m *MilestoneSurchargeRest) PurchaseTarget {
	return PurchaseTarget{Kind: TargetMilestoneSurcharge, MilestoneSurcharge: m}
}

// NewAdditionalDocumentsTarget returns a target for an additional-documents
// request
func NewAdditionalDocumentsTarget(d *AdditionalDocumentsRest) PurchaseTarget {
	return PurchaseTarget{Kind: TargetAdditionalDocuments, AdditionalDocuments: d}
}

// External reports whether the target was supplied from outside the checkout
// page. Externally supplied targets start the flow at payment details and
// back-navigation leaves the checkout entirely.
func (t PurchaseTarget) External() bool {
	switch t.Kind {
	case TargetAppointmentSlot, TargetVoucherSlot, TargetMilestoneSurcharge:
		return true
	}
	return false
}

// RefID returns the identifier of the populated variant
func (t PurchaseTarget) RefID() string {
	switch t.Kind {
	case TargetPackage:
		if t.Package != nil {
			return t.Package.ID
		}
	case TargetAppointmentSlot:
		if t.AppointmentSlot != nil {
			return t.AppointmentSlot.ID
		}
	case TargetVoucherSlot:
		if t.VoucherSlot != nil {
			return t.VoucherSlot.ID
		}
	case TargetMilestoneSurcharge:
		if t.MilestoneSurcharge != nil {
			return t.MilestoneSurcharge.ID
		}
	}
	return ""
}

// Validate checks the union invariant: the variant matching Kind is populated
// and every other variant is nil
func (t PurchaseTarget) Validate() error {
	populated := 0
	if t.Package != nil {
		populated++
	}
	if t.AppointmentSlot != nil {
		populated++
	}
	if t.VoucherSlot != nil {
		populated++
	}
	if t.MilestoneSurcharge != nil {
		populated++
	}
	if t.AdditionalDocuments != nil {
		populated++
	}

	if populated > 1 {
		return fmt.Errorf("purchase target has %d variants populated, want at most 1", populated)
	}

	switch t.Kind {
	case TargetPackage:
		if t.Package == nil {
			return fmt.Errorf("purchase target kind [%s] has no package", t.Kind)
		}
	case TargetAppointmentSlot:
		if t.AppointmentSlot == nil {
			return fmt.Errorf("purchase target kind [%s] has no appointment slot", t.Kind)
		}
	case TargetVoucherSlot:
		if t.VoucherSlot == nil {
			return fmt.Errorf("purchase target kind [%s] has no voucher slot", t.Kind)
		}
	case TargetMilestoneSurcharge:
		if t.MilestoneSurcharge == nil {
			return fmt.Errorf("purchase target kind [%s] has no milestone surcharge", t.Kind)
		}
	case TargetAdditionalDocuments:
		if t.AdditionalDocuments == nil {
			return fmt.Errorf("purchase target kind [%s] has no documents request", t.Kind)
		}
	default:
		return fmt.Errorf("unknown purchase target kind [%s]", t.Kind)
	}

	return nil
}
