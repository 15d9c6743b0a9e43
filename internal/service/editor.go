package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/Tyler2517/creditkeeper/internal/constants"
	"github.com/Tyler2517/creditkeeper/internal/model"
	"github.com/Tyler2517/creditkeeper/pkg/backend"
	"go.uber.org/zap"
)

// Phase is the editor's explicit state. The suspension point between a
// credit-affecting save and its commit is a phase of its own, not a flag.
type Phase string

const (
	PhaseViewing               Phase = "VIEWING"
	PhaseEditing               Phase = "EDITING"
	PhaseAwaitingJustification Phase = "AWAITING_JUSTIFICATION"
	PhaseSubmitting            Phase = "SUBMITTING"
)

const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldCredit = "credit"
	FieldNote   = "note"
)

var (
	errStale              = errors.New("result discarded after navigation")
	errEmptyJustification = errors.New("justification must not be empty")
)

// LedgerReloader is signaled after a credit-affecting commit has fully
// resolved, with the id of the customer that was committed.
type LedgerReloader interface {
	Reload(ctx context.Context, customerID int64)
}

// Editor holds one customer record being viewed or edited. The last
// backend-confirmed record is the baseline; every credit change relative to it
// must be justified before it is persisted. An epoch counter guards in-flight
// requests: a result is applied only if no navigation happened since it was
// issued.
type Editor struct {
	mu      sync.Mutex
	backend backend.Client
	ledger  LedgerReloader
	logger  *zap.Logger

	phase         Phase
	customerID    int64
	epoch         uint64
	loaded        *model.Customer
	draft         model.Customer
	justification string
}

func NewEditor(backendClient backend.Client, ledger LedgerReloader, logger *zap.Logger) *Editor {
	return &Editor{backend: backendClient, ledger: ledger, logger: logger, phase: PhaseViewing}
}

// Load fetches the customer and resets the reconciliation baseline. On failure
// no stale record is left behind; the caller gets an explicit error to render.
func (e *Editor) Load(ctx context.Context, customerID int64) (EditorState, error) {
	e.mu.Lock()
	e.epoch++
	epoch := e.epoch
	e.customerID = customerID
	e.loaded = nil
	e.draft = model.Customer{}
	e.justification = ""
	e.phase = PhaseViewing
	e.mu.Unlock()

	customer, err := e.backend.GetCustomer(ctx, customerID)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.epoch != epoch {
		e.logger.Warn("Discarding load result after navigation",
			zap.Int64("customerID", customerID))
		return e.stateLocked(), NewServiceError(constants.ErrCodeStaleResult, errStale)
	}

	if err != nil {
		e.logger.Warn("Failed to load customer",
			zap.Int64("customerID", customerID),
			zap.Error(err))
		return e.stateLocked(), mapBackendError(err)
	}

	e.loaded = &customer
	e.draft = customer
	return e.stateLocked(), nil
}

func (e *Editor) BeginEdit() (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loaded == nil {
		return e.stateLocked(), NewServiceError(constants.ErrCodeNoCustomerLoaded,
			errors.New(constants.ErrMsgNoCustomerLoaded))
	}

	if e.phase == PhaseSubmitting || e.phase == PhaseAwaitingJustification {
		return e.stateLocked(), NewServiceError(constants.ErrCodeSaveInFlight,
			errors.New(constants.ErrMsgSaveInFlight))
	}

	e.phase = PhaseEditing
	return e.stateLocked(), nil
}

// EditField mutates the draft only; the baseline is untouched. Credit input
// goes through the canonical parse policy and invalid values leave the draft
// unchanged.
func (e *Editor) EditField(cmd EditFieldCommand) (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseEditing {
		return e.stateLocked(), NewServiceError(constants.ErrCodeNotEditing,
			errors.New(constants.ErrMsgNotEditing))
	}

	switch cmd.Field {
	case FieldName:
		e.draft.Name = cmd.Value
	case FieldEmail:
		e.draft.Email = cmd.Value
	case FieldNote:
		e.draft.Note = cmd.Value
	case FieldCredit:
		amount, err := model.ParseCredit(cmd.Value)
		if err != nil {
			return e.stateLocked(), NewServiceError(constants.ErrCodeCreditInvalid, err)
		}
		e.draft.Credit = amount
	default:
		return e.stateLocked(), NewServiceError(constants.ErrCodeUnknownField,
			fmt.Errorf("unknown field %q", cmd.Field))
	}

	return e.stateLocked(), nil
}

// RequestSave compares the draft credit to the baseline with exact decimal
// equality. Equal credit commits immediately; a differing credit suspends the
// save until a justification is confirmed, and nothing is sent yet.
func (e *Editor) RequestSave(ctx context.Context) (SaveOutcome, error) {
	e.mu.Lock()

	switch e.phase {
	case PhaseSubmitting:
		e.mu.Unlock()
		return SaveOutcome{}, NewServiceError(constants.ErrCodeSaveInFlight,
			errors.New(constants.ErrMsgSaveInFlight))
	case PhaseEditing:
	default:
		e.mu.Unlock()
		return SaveOutcome{}, NewServiceError(constants.ErrCodeNotEditing,
			errors.New(constants.ErrMsgNotEditing))
	}

	if e.loaded == nil {
		e.mu.Unlock()
		return SaveOutcome{}, NewServiceError(constants.ErrCodeNoCustomerLoaded,
			errors.New(constants.ErrMsgNoCustomerLoaded))
	}

	if !e.draft.Credit.Equal(e.loaded.Credit) {
		e.phase = PhaseAwaitingJustification
		prompt := e.promptLocked()
		customerID := e.customerID
		e.mu.Unlock()

		e.logger.Info("Credit change detected, awaiting justification",
			zap.Int64("customerID", customerID))
		return SaveOutcome{JustificationRequired: true, Prompt: prompt}, nil
	}

	return e.commitLocked(ctx, "")
}

// ConfirmJustification validates the justification locally before any request
// is issued; an empty text after trimming keeps the save suspended.
func (e *Editor) ConfirmJustification(ctx context.Context, text string) (SaveOutcome, error) {
	trimmed := strings.TrimSpace(text)

	e.mu.Lock()

	switch e.phase {
	case PhaseSubmitting:
		e.mu.Unlock()
		return SaveOutcome{}, NewServiceError(constants.ErrCodeSaveInFlight,
			errors.New(constants.ErrMsgSaveInFlight))
	case PhaseAwaitingJustification:
	default:
		e.mu.Unlock()
		return SaveOutcome{}, NewServiceError(constants.ErrCodeNotEditing,
			errors.New(constants.ErrMsgNotEditing))
	}

	if trimmed == "" {
		prompt := e.promptLocked()
		e.mu.Unlock()
		return SaveOutcome{JustificationRequired: true, Prompt: prompt},
			NewServiceError(constants.ErrCodeJustificationRequired, errEmptyJustification)
	}

	e.justification = trimmed
	return e.commitLocked(ctx, trimmed)
}

// CancelJustification closes the modal and rolls the draft credit back to the
// baseline, regardless of how many edits preceded it. No request is sent.
func (e *Editor) CancelJustification() (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase != PhaseAwaitingJustification {
		return e.stateLocked(), NewServiceError(constants.ErrCodeNotEditing,
			errors.New(constants.ErrMsgNotEditing))
	}

	e.draft.Credit = e.loaded.Credit
	e.justification = ""
	e.phase = PhaseEditing
	return e.stateLocked(), nil
}

// CancelEdit discards all draft changes by resetting from the baseline.
func (e *Editor) CancelEdit() (EditorState, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.phase == PhaseSubmitting {
		return e.stateLocked(), NewServiceError(constants.ErrCodeSaveInFlight,
			errors.New(constants.ErrMsgSaveInFlight))
	}

	if e.loaded == nil {
		return e.stateLocked(), NewServiceError(constants.ErrCodeNoCustomerLoaded,
			errors.New(constants.ErrMsgNoCustomerLoaded))
	}

	e.draft = *e.loaded
	e.justification = ""
	e.phase = PhaseViewing
	return e.stateLocked(), nil
}

func (e *Editor) State() EditorState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stateLocked()
}

// commitLocked sends the draft to the backend. It is entered with the mutex
// held and releases it around the network call; the captured epoch decides
// whether the result may still be applied.
func (e *Editor) commitLocked(ctx context.Context, justification string) (SaveOutcome, error) {
	e.phase = PhaseSubmitting
	epoch := e.epoch
	customerID := e.customerID
	request := backend.UpdateCustomerRequest{
		Name:                   e.draft.Name,
		Email:                  e.draft.Email,
		Credit:                 e.draft.Credit,
		Note:                   e.draft.Note,
		TransactionDescription: justification,
	}
	e.mu.Unlock()

	updated, err := e.backend.UpdateCustomer(ctx, customerID, request)

	e.mu.Lock()

	if e.epoch != epoch {
		e.mu.Unlock()
		e.logger.Warn("Discarding save result after navigation",
			zap.Int64("customerID", customerID))
		return SaveOutcome{}, NewServiceError(constants.ErrCodeStaleResult, errStale)
	}

	if err != nil {
		if justification != "" {
			// credit-path failure: undo the pending change and close the modal
			e.draft.Credit = e.loaded.Credit
			e.justification = ""
		}
		e.phase = PhaseEditing
		e.mu.Unlock()

		e.logger.Error("Customer update failed",
			zap.Int64("customerID", customerID),
			zap.Error(err))
		return SaveOutcome{}, mapBackendError(err)
	}

	e.loaded = &updated
	e.draft = updated
	e.justification = ""
	e.phase = PhaseViewing
	e.mu.Unlock()

	e.logger.Info("Customer saved",
		zap.Int64("customerID", customerID),
		zap.String("credit", updated.Credit.StringFixed(2)),
		zap.Bool("creditChanged", justification != ""))

	if justification != "" && e.ledger != nil {
		// only after the commit resolved, and always for the committed id
		e.ledger.Reload(ctx, customerID)
	}

	return SaveOutcome{Saved: true, Customer: updated}, nil
}

func (e *Editor) promptLocked() string {
	return fmt.Sprintf("changing from $%s to $%s",
		e.loaded.Credit.StringFixed(2), e.draft.Credit.StringFixed(2))
}

func (e *Editor) stateLocked() EditorState {
	state := EditorState{CustomerID: e.customerID, Phase: e.phase}

	if e.loaded != nil {
		loaded := *e.loaded
		draft := e.draft
		state.Loaded = &loaded
		state.Draft = &draft
	}

	if e.phase == PhaseAwaitingJustification && e.loaded != nil {
		state.Prompt = e.promptLocked()
	}

	return state
}
