package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/medlaunch/checkout.api.medlaunch.health/config"
	"github.com/medlaunch/checkout.api.medlaunch.health/dao"
	"github.com/medlaunch/checkout.api.medlaunch.health/data"
	"github.com/medlaunch/checkout.api.medlaunch.health/helpers"
	"github.com/medlaunch/checkout.api.medlaunch.health/models"
	"github.com/medlaunch/checkout.api.medlaunch.health/transformers"
)

// CheckoutService contains the stores and config for checkout session access
type CheckoutService struct {
	DAO     dao.DAO
	Store   dao.SessionStore
	Coupons CouponService
	Config  config.Config
}

// Step Enum Type
type Step int

// Enumeration containing all checkout steps, in order
const (
	SelectPackage Step = 1 + iota
	PaymentDetails
	UploadProof
	Confirmation
)

// String representation of checkout steps
var stepNames = [...]string{
	"select-package",
	"payment-details",
	"upload-proof",
	"confirmation",
}

func (step Step) String() string {
	return stepNames[step-1]
}

// StepFromString maps a stored step name back onto the enum
func StepFromString(name string) (Step, error) {
	for i, n := range stepNames {
		if n == name {
			return Step(i + 1), nil
		}
	}
	return 0, fmt.Errorf("unknown checkout step [%s]", name)
}

// CreateCheckoutSession creates a checkout session for the authenticated
// user. An externally supplied target (milestone step, appointment slot or
// voucher slot) starts the flow at payment details; otherwise the flow starts
// at package selection, optionally pre-selecting a catalog package. A
// promotion code is auto-applied once if present.
func (service *CheckoutService) CreateCheckoutSession(req *http.Request, incoming models.IncomingCheckoutRequest) (*models.CheckoutSessionRest, ResponseType, error) {
	userDetails, ok := req.Context().Value(helpers.ContextKeyUserDetails).(models.AuthUserDetails)
	if !ok {
		return nil, Error, fmt.Errorf("invalid AuthUserDetails in request context")
	}

	externalTargets := 0
	for _, id := range []string{incoming.MilestoneStepID, incoming.AppointmentSlotID, incoming.VoucherSlotID} {
		if id != "" {
			externalTargets++
		}
	}
	if externalTargets > 1 {
		return nil, InvalidData, fmt.Errorf("at most one external target may be supplied, got %d", externalTargets)
	}

	now := time.Now().Truncate(time.Millisecond)
	session := &models.CheckoutSessionDB{
		ID:        uuid.NewString(),
		UserID:    userDetails.ID,
		Step:      SelectPackage.String(),
		CaseID:    incoming.CaseID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	ctx := req.Context()

	switch {
	case incoming.MilestoneStepID != "":
		step, err := service.DAO.GetMilestoneStep(ctx, incoming.MilestoneStepID)
		if err != nil {
			return nil, Error, fmt.Errorf("error getting milestone step: [%v]", err)
		}
		if step == nil {
			return nil, NotFound, fmt.Errorf("milestone step not found. id: %s", incoming.MilestoneStepID)
		}
		session.TargetKind = string(models.TargetMilestoneSurcharge)
		session.TargetRefID = step.ID
		if session.CaseID == "" {
			session.CaseID = step.CaseID
		}
		session.ExternalEntry = true
		session.Step = PaymentDetails.String()

	case incoming.AppointmentSlotID != "":
		slot, err := service.DAO.GetAppointmentSlot(ctx, incoming.AppointmentSlotID)
		if err != nil {
			return nil, Error, fmt.Errorf("error getting appointment slot: [%v]", err)
		}
		if slot == nil {
			return nil, NotFound, fmt.Errorf("appointment slot not found. id: %s", incoming.AppointmentSlotID)
		}
		if !slot.Available {
			return nil, Forbidden, fmt.Errorf("appointment slot [%s] is no longer available", slot.ID)
		}
		session.TargetKind = string(models.TargetAppointmentSlot)
		session.TargetRefID = slot.ID
		session.ExternalEntry = true
		session.Step = PaymentDetails.String()

	case incoming.VoucherSlotID != "":
		slot, err := service.DAO.GetVoucherSlot(ctx, incoming.VoucherSlotID)
		if err != nil {
			return nil, Error, fmt.Errorf("error getting voucher slot: [%v]", err)
		}
		if slot == nil {
			return nil, NotFound, fmt.Errorf("voucher slot not found. id: %s", incoming.VoucherSlotID)
		}
		if !slot.Available {
			return nil, Forbidden, fmt.Errorf("voucher slot [%s] is no longer available", slot.ID)
		}
		session.TargetKind = string(models.TargetVoucherSlot)
		session.TargetRefID = slot.ID
		session.ExternalEntry = true
		session.Step = PaymentDetails.String()

	default:
		session.TargetKind = string(models.TargetPackage)
		if incoming.PackageID != "" {
			// An unknown package id is treated the same as a removed one:
			// the flow simply starts with nothing selected.
			if p := data.LookupPackage(incoming.PackageID); p != nil {
				session.SelectedPackageID = p.ID
			}
		}
	}

	if incoming.Promotion != "" && !session.Coupon.Applied {
		target, _, err := service.resolveTarget(ctx, session)
		if err == nil {
			if original, _, amountErr := PayableAmount(target, models.CouponStateDB{}, &service.Config); amountErr == nil {
				// Auto-application failures are recorded in the coupon state,
				// never fatal to session creation.
				service.Coupons.Apply(ctx, session, incoming.Promotion, original.StringFixed(2))
			}
		}
	}

	err := service.Store.Save(ctx, session)
	if err != nil {
		return nil, Error, fmt.Errorf("error saving checkout session: [%v]", err)
	}

	return service.sessionToRest(ctx, session)
}

// GetCheckoutSession restores a checkout session by id. A stored package that
// has since been removed from the catalog resets the session to package
// selection rather than resurrecting a stale reference.
func (service *CheckoutService) GetCheckoutSession(ctx context.Context, id string) (*models.CheckoutSessionRest, ResponseType, error) {
	session, err := service.Store.Load(ctx, id)
	if err != nil {
		return nil, Error, fmt.Errorf("error loading checkout session: [%v]", err)
	}
	if session == nil {
		return nil, NotFound, fmt.Errorf("checkout session not found. id: %s", id)
	}

	if session.TargetKind == string(models.TargetPackage) && session.SelectedPackageID != "" {
		if data.LookupPackage(session.SelectedPackageID) == nil {
			session.SelectedPackageID = ""
			session.Step = SelectPackage.String()
			session.UpdatedAt = time.Now().Truncate(time.Millisecond)
			if err = service.Store.Save(ctx, session); err != nil {
				return nil, Error, fmt.Errorf("error saving checkout session: [%v]", err)
			}
		}
	}

	return service.sessionToRest(ctx, session)
}

// SelectPackageForSession records the user's package choice and moves the
// session to payment details
func (service *CheckoutService) SelectPackageForSession(ctx context.Context, session *models.CheckoutSessionDB, packageID string) (*models.CheckoutSessionRest, ResponseType, error) {
	if session.Step != SelectPackage.String() {
		return nil, Forbidden, fmt.Errorf("cannot select a package at step [%s]", session.Step)
	}

	p := data.LookupPackage(packageID)
	if p == nil {
		return nil, InvalidData, fmt.Errorf("package [%s] not found in catalog", packageID)
	}

	session.TargetKind = string(models.TargetPackage)
	session.SelectedPackageID = p.ID
	session.Step = PaymentDetails.String()
	session.UpdatedAt = time.Now().Truncate(time.Millisecond)

	err := service.Store.Save(ctx, session)
	if err != nil {
		return nil, Error, fmt.Errorf("error saving checkout session: [%v]", err)
	}

	return service.sessionToRest(ctx, session)
}

// AdvanceStep moves the session one step forward. The payment-details advance
// is an operator-asserted claim with no guard; verification happens against
// the uploaded proof later.
func (service *CheckoutService) AdvanceStep(ctx context.Context, session *models.CheckoutSessionDB) (*models.CheckoutSessionRest, ResponseType, error) {
	step, err := StepFromString(session.Step)
	if err != nil {
		return nil, Error, err
	}

	switch step {
	case SelectPackage:
		if session.SelectedPackageID == "" {
			return nil, Forbidden, fmt.Errorf("a package must be selected before payment details")
		}
		session.Step = PaymentDetails.String()
	case PaymentDetails:
		session.Step = UploadProof.String()
	case UploadProof:
		return nil, Forbidden, fmt.Errorf("the checkout advances past proof upload only on submission")
	case Confirmation:
		return nil, Forbidden, fmt.Errorf("checkout session already confirmed")
	}

	session.UpdatedAt = time.Now().Truncate(time.Millisecond)
	if err = service.Store.Save(ctx, session); err != nil {
		return nil, Error, fmt.Errorf("error saving checkout session: [%v]", err)
	}

	return service.sessionToRest(ctx, session)
}

// BackStep moves the session one step backward. Back from payment details is
// only available when the target was chosen inside the flow; externally
// supplied targets return to their listing page instead. Confirmation is
// terminal.
func (service *CheckoutService) BackStep(ctx context.Context, session *models.CheckoutSessionDB) (*models.CheckoutSessionRest, ResponseType, error) {
	step, err := StepFromString(session.Step)
	if err != nil {
		return nil, Error, err
	}

	switch step {
	case SelectPackage:
		return nil, InvalidData, fmt.Errorf("no step before package selection")
	case PaymentDetails:
		if session.ExternalEntry {
			return nil, Forbidden, fmt.Errorf("checkout was entered with an external target; return to the listing page")
		}
		session.Step = SelectPackage.String()
	case UploadProof:
		session.Step = PaymentDetails.String()
	case Confirmation:
		return nil, Forbidden, fmt.Errorf("no backward transition from confirmation")
	}

	session.UpdatedAt = time.Now().Truncate(time.Millisecond)
	if err = service.Store.Save(ctx, session); err != nil {
		return nil, Error, fmt.Errorf("error saving checkout session: [%v]", err)
	}

	return service.sessionToRest(ctx, session)
}

// ApplyCoupon validates a coupon code against the remote coupon service and
// records the outcome on the session
func (service *CheckoutService) ApplyCoupon(ctx context.Context, session *models.CheckoutSessionDB, code string) (*models.CheckoutSessionRest, ResponseType, error) {
	target, responseType, err := service.resolveTarget(ctx, session)
	if err != nil {
		return nil, responseType, err
	}

	original, _, err := PayableAmount(target, models.CouponStateDB{}, &service.Config)
	if err != nil {
		return nil, InvalidData, fmt.Errorf("cannot apply a coupon before a priced target is chosen: [%v]", err)
	}

	responseType, err = service.Coupons.Apply(ctx, session, code, original.StringFixed(2))
	if err != nil {
		return nil, responseType, err
	}

	if err = service.Store.Save(ctx, session); err != nil {
		return nil, Error, fmt.Errorf("error saving checkout session: [%v]", err)
	}

	return service.sessionToRest(ctx, session)
}

// RemoveCoupon resets the session coupon state to its defaults. Removing an
// absent coupon is a no-op.
func (service *CheckoutService) RemoveCoupon(ctx context.Context, session *models.CheckoutSessionDB) (*models.CheckoutSessionRest, ResponseType, error) {
	session.Coupon = models.CouponStateDB{}
	session.UpdatedAt = time.Now().Truncate(time.Millisecond)

	if err := service.Store.Save(ctx, session); err != nil {
		return nil, Error, fmt.Errorf("error saving checkout session: [%v]", err)
	}

	return service.sessionToRest(ctx, session)
}

// MarkProofValidated records that a proof file passed validation at the
// upload step. The file itself is not stored here; it travels again with the
// submission request.
func (service *CheckoutService) MarkProofValidated(ctx context.Context, session *models.CheckoutSessionDB) (*models.CheckoutSessionRest, ResponseType, error) {
	step, err := StepFromString(session.Step)
	if err != nil {
		return nil, Error, err
	}
	if step != UploadProof {
		return nil, Forbidden, fmt.Errorf("cannot upload proof at step [%s]", session.Step)
	}

	session.ProofUploaded = true
	session.UpdatedAt = time.Now().Truncate(time.Millisecond)

	if err := service.Store.Save(ctx, session); err != nil {
		return nil, Error, fmt.Errorf("error saving checkout session: [%v]", err)
	}

	return service.sessionToRest(ctx, session)
}

// GetCheckoutResources returns the static package catalog together with the
// currently available appointment and voucher slots
func (service *CheckoutService) GetCheckoutResources(ctx context.Context) (*models.CheckoutResourcesRest, ResponseType, error) {
	var apptSlots []models.AppointmentSlotDB
	var voucherSlots []models.VoucherSlotDB

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slots, err := service.DAO.ListAvailableAppointmentSlots(gctx)
		if err != nil {
			return fmt.Errorf("error listing appointment slots: [%v]", err)
		}
		apptSlots = slots
		return nil
	})
	g.Go(func() error {
		slots, err := service.DAO.ListAvailableVoucherSlots(gctx)
		if err != nil {
			return fmt.Errorf("error listing voucher slots: [%v]", err)
		}
		voucherSlots = slots
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, Error, err
	}

	slotTransformer := transformers.SlotTransformer{}
	resources := &models.CheckoutResourcesRest{
		Packages:         data.Packages(),
		AppointmentSlots: make([]models.AppointmentSlotRest, 0, len(apptSlots)),
		VoucherSlots:     make([]models.VoucherSlotRest, 0, len(voucherSlots)),
	}
	for _, slot := range apptSlots {
		resources.AppointmentSlots = append(resources.AppointmentSlots, slotTransformer.AppointmentSlotToRest(slot))
	}
	for _, slot := range voucherSlots {
		resources.VoucherSlots = append(resources.VoucherSlots, slotTransformer.VoucherSlotToRest(slot))
	}

	return resources, Success, nil
}

// resolveTarget rebuilds the purchase target union from the identifiers kept
// in the stored session
func (service *CheckoutService) resolveTarget(ctx context.Context, session *models.CheckoutSessionDB) (models.PurchaseTarget, ResponseType, error) {
	slotTransformer := transformers.SlotTransformer{}

	switch models.TargetKind(session.TargetKind) {
	case models.TargetMilestoneSurcharge:
		step, err := service.DAO.GetMilestoneStep(ctx, session.TargetRefID)
		if err != nil {
			return models.PurchaseTarget{}, Error, fmt.Errorf("error getting milestone step: [%v]", err)
		}
		if step == nil {
			return models.PurchaseTarget{}, NotFound, fmt.Errorf("milestone step not found. id: %s", session.TargetRefID)
		}
		surcharge := slotTransformer.MilestoneStepToRest(*step)
		return models.NewMilestoneSurchargeTarget(&surcharge), Success, nil

	case models.TargetAppointmentSlot:
		slot, err := service.DAO.GetAppointmentSlot(ctx, session.TargetRefID)
		if err != nil {
			return models.PurchaseTarget{}, Error, fmt.Errorf("error getting appointment slot: [%v]", err)
		}
		if slot == nil {
			return models.PurchaseTarget{}, NotFound, fmt.Errorf("appointment slot not found. id: %s", session.TargetRefID)
		}
		rest := slotTransformer.AppointmentSlotToRest(*slot)
		return models.NewAppointmentSlotTarget(&rest), Success, nil

	case models.TargetVoucherSlot:
		slot, err := service.DAO.GetVoucherSlot(ctx, session.TargetRefID)
		if err != nil {
			return models.PurchaseTarget{}, Error, fmt.Errorf("error getting voucher slot: [%v]", err)
		}
		if slot == nil {
			return models.PurchaseTarget{}, NotFound, fmt.Errorf("voucher slot not found. id: %s", session.TargetRefID)
		}
		rest := slotTransformer.VoucherSlotToRest(*slot)
		return models.NewVoucherSlotTarget(&rest), Success, nil

	default:
		target := models.PurchaseTarget{Kind: models.TargetPackage}
		if session.SelectedPackageID != "" {
			target.Package = data.LookupPackage(session.SelectedPackageID)
		}
		return target, Success, nil
	}
}

func (service *CheckoutService) sessionToRest(ctx context.Context, session *models.CheckoutSessionDB) (*models.CheckoutSessionRest, ResponseType, error) {
	target, responseType, err := service.resolveTarget(ctx, session)
	if err != nil {
		return nil, responseType, err
	}

	rest := transformers.CheckoutTransformer{}.TransformToRest(*session)
	rest.Target = target
	if target.Kind == models.TargetPackage {
		rest.SelectedPackage = target.Package
	}
	rest.Currency = service.Config.Currency

	// An un-priced session (nothing selected yet) is served with zero amounts.
	if target.Package != nil || target.External() || target.AdditionalDocuments != nil {
		original, payable, amountErr := PayableAmount(target, session.Coupon, &service.Config)
		if amountErr != nil {
			return nil, Error, fmt.Errorf("error computing payable amount: [%v]", amountErr)
		}
		rest.OriginalAmount = original.StringFixed(2)
		rest.PayableAmount = payable.StringFixed(2)
	} else {
		rest.OriginalAmount = "0.00"
		rest.PayableAmount = "0.00"
	}

	rest.Links = models.CheckoutLinksRest{
		Self:    fmt.Sprintf("/checkouts/%s", session.ID),
		Journey: service.Config.CheckoutWebURL + "/checkout/" + session.ID,
	}
	if session.Step == Confirmation.String() {
		rest.Links.ThankYou = service.Config.CheckoutWebURL + "/thank-you?checkout=" + session.ID
	}

	return &rest, Success, nil
}
